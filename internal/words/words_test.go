package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markaronin/wordle-solver/internal/solver"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParse(t *testing.T) {
	in := "# answers\nstank\n\n  Blank  \nstank\nthank\n"

	got, err := Parse(strings.NewReader(in), "test")

	require.NoError(t, err)
	assert.Equal(t, []string{"stank", "blank", "thank"}, solver.Strings(got))
}

func TestParse_RejectsMalformedLine(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantLine int
	}{
		{"four letters", "stank\nabcd\nblank\n", 2},
		{"six letters", "stanks\n", 1},
		{"digits", "stank\nblank\nbl4nk\n", 3},
		{"inner space", "st nk\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in), "list.txt")
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, solver.ErrInvalidWordFormat))

			var le *LineError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, "list.txt", le.Source)
			assert.Equal(t, tt.wantLine, le.Line)
			assert.Contains(t, err.Error(), "list.txt:")
		})
	}
}

func TestLoadLists_Embedded(t *testing.T) {
	lists, err := LoadLists(Sources{})
	require.NoError(t, err)

	answers, guesses := lists.Stats()
	assert.Greater(t, answers, 100)
	assert.Greater(t, guesses, answers)
	for _, a := range lists.Answers {
		assert.True(t, lists.IsAllowed(a), "answer %s must be guessable", a)
	}
}

func TestLoadLists_Files(t *testing.T) {
	answers := writeList(t, "answers.txt", "stank\nblank\n")
	guesses := writeList(t, "guesses.txt", "crane\nblank\nslate\n")

	lists, err := LoadLists(Sources{Answers: answers, Guesses: guesses})
	require.NoError(t, err)

	assert.Equal(t, []string{"stank", "blank"}, solver.Strings(lists.Answers))
	assert.Equal(t, []string{"crane", "blank", "slate", "stank"}, solver.Strings(lists.Guesses))
	assert.False(t, lists.IsAllowed(solver.MustParseWord("zzzzz")))
}

func TestLoadLists_SingleFile(t *testing.T) {
	only := writeList(t, "words.txt", "stank\nblank\n")

	for _, src := range []Sources{{Guesses: only}, {Answers: only}} {
		lists, err := LoadLists(src)
		require.NoError(t, err)
		assert.Equal(t, lists.Answers, lists.Guesses)
	}
}

func TestLoadLists_Errors(t *testing.T) {
	_, err := LoadLists(Sources{Guesses: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeList(t, "bad.txt", "stank\nabcd\n")
	_, err = LoadLists(Sources{Answers: bad, Guesses: bad})
	assert.ErrorIs(t, err, solver.ErrInvalidWordFormat)
}

func TestFingerprint(t *testing.T) {
	w := solver.MustParseWord
	a := New([]solver.Word{w("crane")}, []solver.Word{w("stank"), w("blank")})
	b := New([]solver.Word{w("crane")}, []solver.Word{w("stank"), w("blank")})
	c := New([]solver.Word{w("crane")}, []solver.Word{w("blank"), w("stank")})

	assert.Len(t, a.Fingerprint(), 64)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "order matters")
}
