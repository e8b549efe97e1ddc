package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveScore scores a guess without any caching.
func naiveScore(state State, guess Word, possible []Word) float64 {
	total := 0
	for _, a := range possible {
		total += CountMatches(state.Derive(guess, a), possible) - 1
	}
	return float64(total) / float64(len(possible))
}

func TestSelectBestGuess_NoCandidates(t *testing.T) {
	list := words(t, testAnswers...)
	state := FromFeedback(Feedback{Greys: FullLetterSet})

	res, err := SelectBestGuess(context.Background(), state, list, list, SearchParams{})

	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Nil(t, res)
}

func TestSelectBestGuess_ShortcutUnderThree(t *testing.T) {
	guesses := words(t, testAnswers...)
	answers := words(t, "stank", "blank")
	called := false

	res, err := SelectBestGuess(context.Background(), NewState(), guesses, answers, SearchParams{
		RecordScores: true,
		Progress:     func(int, int) { called = true },
	})

	require.NoError(t, err)
	assert.Equal(t, "stank", res.Guess.String())
	assert.True(t, res.Shortcut)
	assert.Zero(t, res.Derivations)
	assert.Empty(t, res.Scores)
	assert.False(t, called, "scoring loop must not run")
}

func TestSelectBestGuess_ShortcutSingle(t *testing.T) {
	list := words(t, testAnswers...)
	state := FromFeedback(exampleFeedback())

	res, err := SelectBestGuess(context.Background(), state, list, list, SearchParams{})

	require.NoError(t, err)
	assert.Equal(t, "tangy", res.Guess.String())
	assert.Equal(t, []string{"tangy"}, Strings(res.Possible))
}

func TestSelectBestGuess_PerfectSplitScoresZero(t *testing.T) {
	answers := words(t, "abcde", "fghij", "klmno")
	guesses := words(t, "abcde", "afkzz")

	res, err := SelectBestGuess(context.Background(), NewState(), guesses, answers, SearchParams{RecordScores: true})

	require.NoError(t, err)
	assert.Equal(t, "afkzz", res.Guess.String())
	assert.Zero(t, res.Score)
	require.Len(t, res.Scores, 2)
	assert.InDelta(t, 2.0/3.0, res.Scores[0].Score, 1e-9)
	assert.Zero(t, res.Scores[1].Score)
	assert.Equal(t, 6, res.Derivations)
	assert.Positive(t, res.CacheHits, "abcde leaves the same state for fghij and klmno")
}

func TestSelectBestGuess_GuessingTheOnlyAnswerCostsNothing(t *testing.T) {
	a := MustParseWord("crane")
	possible := []Word{a}
	assert.Zero(t, naiveScore(NewState(), a, possible))
}

func TestSelectBestGuess_TiesGoToFirstGuess(t *testing.T) {
	answers := words(t, "stank", "blank", "thank", "shank")
	// Neither guess shares a letter with any answer, so both score the same.
	guesses := words(t, "pzzzz", "qzzzz", "vzzzz")

	res, err := SelectBestGuess(context.Background(), NewState(), guesses, answers, SearchParams{RecordScores: true})

	require.NoError(t, err)
	assert.Equal(t, "pzzzz", res.Guess.String())
	assert.InDelta(t, 3.0, res.Score, 1e-9)
	for _, s := range res.Scores {
		assert.InDelta(t, res.Score, s.Score, 1e-9)
	}
}

func TestSelectBestGuess_MatchesUncachedScores(t *testing.T) {
	list := words(t, testAnswers...)
	state := FromFeedback(Feedback{Greys: LettersOf("qxz")})

	res, err := SelectBestGuess(context.Background(), state, list, list, SearchParams{RecordScores: true})
	require.NoError(t, err)
	require.Len(t, res.Scores, len(list))

	possible := FilterAnswers(state, list)
	best := 0
	for i, g := range list {
		want := naiveScore(state, g, possible)
		assert.InDelta(t, want, res.Scores[i].Score, 1e-9, "guess %s", g)
		assert.Equal(t, g, res.Scores[i].Guess)
		if want < naiveScore(state, list[best], possible) {
			best = i
		}
	}
	assert.Equal(t, list[best], res.Guess)
	assert.Equal(t, len(list)*len(possible), res.Derivations)
}

func TestSelectBestGuess_Deterministic(t *testing.T) {
	list := words(t, testAnswers...)
	state := NewState()

	first, err := SelectBestGuess(context.Background(), state, list, list, SearchParams{})
	require.NoError(t, err)
	second, err := SelectBestGuess(context.Background(), state, list, list, SearchParams{})
	require.NoError(t, err)

	assert.Equal(t, first.Guess, second.Guess)
	assert.Equal(t, first.Score, second.Score)
}

func TestSelectBestGuess_Progress(t *testing.T) {
	list := words(t, testAnswers...)
	var calls []int

	_, err := SelectBestGuess(context.Background(), NewState(), list, list, SearchParams{
		Progress: func(done, total int) {
			assert.Equal(t, len(list), total)
			calls = append(calls, done)
		},
	})

	require.NoError(t, err)
	require.Len(t, calls, len(list))
	assert.Equal(t, 1, calls[0])
	assert.Equal(t, len(list), calls[len(calls)-1])
}

func TestSelectBestGuess_Cancelled(t *testing.T) {
	list := words(t, testAnswers...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := SelectBestGuess(ctx, NewState(), list, list, SearchParams{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestResult_Top(t *testing.T) {
	r := &Result{Scores: []GuessScore{
		{Guess: MustParseWord("aaaaa"), Score: 2},
		{Guess: MustParseWord("bbbbb"), Score: 1},
		{Guess: MustParseWord("ccccc"), Score: 1},
		{Guess: MustParseWord("ddddd"), Score: 0.5},
	}}

	top := r.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, "ddddd", top[0].Guess.String())
	assert.Equal(t, "bbbbb", top[1].Guess.String())
	assert.Equal(t, "ccccc", top[2].Guess.String())
	assert.Len(t, r.Top(10), 4)
	assert.Nil(t, r.Top(0))
	assert.Equal(t, "aaaaa", r.Scores[0].Guess.String(), "Top must not reorder Scores")
}
