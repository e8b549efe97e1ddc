package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"valid", "crane", false},
		{"too short", "abcd", true},
		{"too long", "abcdef", true},
		{"empty", "", true},
		{"uppercase", "Crane", true},
		{"digit", "cr4ne", true},
		{"non ascii", "crän", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidWordFormat), "error %v should wrap ErrInvalidWordFormat", err)
				var we *WordError
				require.True(t, errors.As(err, &we))
				assert.Equal(t, tt.text, we.Text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.text, w.String())
		})
	}
}

func TestWord_LetterAtAndContains(t *testing.T) {
	w := MustParseWord("llama")

	assert.Equal(t, byte('l'), w.LetterAt(0))
	assert.Equal(t, byte('m'), w.LetterAt(3))
	assert.True(t, w.Contains('a'))
	assert.True(t, w.Contains('l'))
	assert.False(t, w.Contains('z'))
	assert.Equal(t, "alm", w.Letters().String())
}

func TestWord_Equality(t *testing.T) {
	a := MustParseWord("stank")
	b := MustParseWord("stank")
	assert.True(t, a == b)

	seen := map[Word]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

func TestMustParseWord_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseWord("abcd") })
}

func TestStrings(t *testing.T) {
	words := []Word{MustParseWord("stank"), MustParseWord("blank")}
	assert.Equal(t, []string{"stank", "blank"}, Strings(words))
}
