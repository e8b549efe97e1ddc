package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markaronin/wordle-solver/internal/solver"
)

var testAnswers = []solver.Word{
	solver.MustParseWord("stank"),
	solver.MustParseWord("blank"),
	solver.MustParseWord("thank"),
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 10, 15, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-14", DateKey(ts))
}

func TestPicker_Index(t *testing.T) {
	p := NewPicker("salt", testAnswers)
	day := time.Date(2026, 10, 15, 1, 0, 0, 0, time.UTC)

	idx, err := p.Index(day)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, len(testAnswers))

	later, err := p.Index(day.Add(20 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, idx, later, "same UTC day, same index")
}

func TestPicker_SaltChangesSequence(t *testing.T) {
	a, b := NewPicker("one", testAnswers), NewPicker("two", testAnswers)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differs := false
	for i := 0; i < 30 && !differs; i++ {
		ia, _ := a.Index(day.AddDate(0, 0, i))
		ib, _ := b.Index(day.AddDate(0, 0, i))
		differs = ia != ib
	}
	assert.True(t, differs)
}

func TestPicker_Answer(t *testing.T) {
	p := NewPicker("salt", testAnswers)
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	w, err := p.Answer(day)
	require.NoError(t, err)
	idx, _ := p.Index(day)
	assert.Equal(t, testAnswers[idx], w)

	_, err = NewPicker("salt", nil).Answer(day)
	assert.ErrorIs(t, err, ErrNoAnswers)
}
