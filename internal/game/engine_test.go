package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessFeedback(t *testing.T) {
	g, err := New("robot", 0)
	require.NoError(t, err)
	assert.Equal(t, "ROBOT", g.Answer)
	assert.Equal(t, DefaultMaxTries, g.MaxTries)
	assert.Len(t, g.ID, 16)

	res, err := g.Guess("error")
	require.NoError(t, err)
	assert.Equal(t, Result{Status: StatusPlaying, Feedback: "RYRGR", Answer: AnswerUnknown}, res)
	assert.Equal(t, []string{"ERROR"}, g.Guesses)
}

func TestGuessWin(t *testing.T) {
	g, err := New("RETRY", 6)
	require.NoError(t, err)

	res, err := g.Guess("RETRY")
	require.NoError(t, err)
	assert.Equal(t, Result{Status: StatusWon, Feedback: "WIN", Answer: "RETRY"}, res)
	assert.Equal(t, StatusWon, g.State())

	_, err = g.Guess("RETRY")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestGuessExceeded(t *testing.T) {
	g, err := New("RETRY", 2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := g.Guess("CRANE")
		require.NoError(t, err)
		assert.Equal(t, StatusPlaying, res.Status)
	}
	res, err := g.Guess("CRANE")
	require.NoError(t, err)
	assert.Equal(t, Result{Status: StatusExceeded, Feedback: "FAIL", Answer: "RETRY"}, res)
	assert.Equal(t, StatusExceeded, g.State())
	assert.Equal(t, 3, g.Tries)
}

func TestGuessInvalid(t *testing.T) {
	g, err := New("RETRY", 6)
	require.NoError(t, err)

	for _, bad := range []string{"", "ABCD", "ABCDEF", "AB1DE"} {
		_, err := g.Guess(bad)
		assert.ErrorIs(t, err, ErrInvalidGuess, bad)
	}
	assert.Equal(t, 0, g.Tries)

	_, err = New("nope", 6)
	assert.ErrorIs(t, err, ErrInvalidGuess)
}
