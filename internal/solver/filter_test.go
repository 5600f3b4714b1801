package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/feedback"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

// Heavy on repeated letters on purpose.
var sample = []string{
	"ABIDE", "ALLOY", "LOYAL", "LLAMA", "HELLO", "SPEED", "ERROR", "ROBOT", "RETRY",
	"EERIE", "THERE", "THREE", "CRANE", "TRACE", "GUESS", "SHEEP", "GEESE", "EAGLE",
	"ABOVE", "ABOUT", "ACORN", "AFOOT", "AFORE", "LEVEL", "SKILL", "APPLE", "PAPER",
}

func mustEval(t *testing.T, guess, answer string) feedback.Feedback {
	t.Helper()
	fb, err := feedback.Evaluate(guess, answer)
	require.NoError(t, err)
	return fb
}

// allPatterns enumerates every 3^5 feedback.
func allPatterns() []feedback.Feedback {
	marks := []feedback.Mark{feedback.Exact, feedback.Present, feedback.Absent}
	var out []feedback.Feedback
	var rec func(prefix feedback.Feedback)
	rec = func(prefix feedback.Feedback) {
		if len(prefix) == feedback.Length {
			out = append(out, append(feedback.Feedback(nil), prefix...))
			return
		}
		for _, m := range marks {
			rec(append(prefix, m))
		}
	}
	rec(nil)
	return out
}

func TestFilterKeepsItsOwnFeedback(t *testing.T) {
	for _, g := range sample {
		for _, c := range sample {
			fb := mustEval(t, g, c)
			got, err := Filter([]string{c}, g, fb)
			require.NoError(t, err)
			assert.Equal(t, []string{c}, got, "guess %s answer %s fb %s", g, c, fb)
		}
	}
}

func TestFilterMatchesBruteForce(t *testing.T) {
	dict := words.Default().Words()
	dict = append(dict, sample...)
	for _, g := range sample {
		for _, a := range sample {
			fb := mustEval(t, g, a)
			fast, err := Filter(dict, g, fb)
			require.NoError(t, err)
			slow, err := BruteForceFilter(dict, g, fb)
			require.NoError(t, err)
			assert.Equal(t, slow, fast, "guess %s fb %s", g, fb)
			assert.Contains(t, fast, a)
		}
	}
}

func TestFilterMatchesBruteForceForEveryPattern(t *testing.T) {
	// Includes feedback no answer can produce (e.g. R before Y on a repeated letter).
	for _, g := range []string{"SPEED", "ERROR", "LLAMA", "EERIE", "GEESE", "CRANE"} {
		for _, fb := range allPatterns() {
			fast, err := Filter(sample, g, fb)
			require.NoError(t, err)
			slow, err := BruteForceFilter(sample, g, fb)
			require.NoError(t, err)
			assert.Equal(t, slow, fast, "guess %s fb %s", g, fb)
		}
	}
}

func TestFilterImpossibleOrder(t *testing.T) {
	// The scorer gives Y to the first E, so an R on it followed by Y on the
	// second is never observed.
	fb, err := feedback.Parse("RRRYR")
	require.NoError(t, err)
	got, err := Filter(sample, "SPEED", fb)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterPresentAndAbsentSameLetter(t *testing.T) {
	// SPEED vs ABIDE: one E present, the other absent. E is not banned, but
	// the candidate must hold exactly one E, not at positions 2 or 3, and at
	// least one D away from position 4.
	fb := mustEval(t, "SPEED", "ABIDE")
	require.Equal(t, "RRYRY", fb.String())

	got, err := Filter([]string{"ABIDE", "EAGLE", "THERE", "GUIDE", "SPEED", "DIODE"}, "SPEED", fb)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABIDE", "GUIDE", "DIODE"}, got)
}

func TestFilterMonotonicAndIdempotent(t *testing.T) {
	for _, g := range sample {
		for _, a := range sample {
			fb := mustEval(t, g, a)
			once, err := Filter(sample, g, fb)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(once), len(sample))

			twice, err := Filter(once, g, fb)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := append([]string(nil), sample...)
	_, err := Filter(in, "CRANE", mustEval(t, "CRANE", "TRACE"))
	require.NoError(t, err)
	assert.Equal(t, sample, in)
}

func TestFilterInvalidFeedback(t *testing.T) {
	_, err := Filter(sample, "CRANE", feedback.Feedback{feedback.Exact})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	assert.ErrorIs(t, err, feedback.ErrLengthMismatch)

	_, err = Filter(sample, "CRANE", feedback.Feedback{'G', 'G', 'X', 'G', 'G'})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	assert.ErrorIs(t, err, feedback.ErrInvalidSymbol)

	_, err = Filter(sample, "CRAN", feedback.AllExact())
	assert.ErrorIs(t, err, feedback.ErrLengthMismatch)
}

func TestReplayMatchesIncremental(t *testing.T) {
	history := []GuessRecord{
		{Guess: "CRANE", Feedback: mustEval(t, "CRANE", "THERE")},
		{Guess: "EERIE", Feedback: mustEval(t, "EERIE", "THERE")},
	}
	step, err := Filter(sample, history[0].Guess, history[0].Feedback)
	require.NoError(t, err)
	step, err = Filter(step, history[1].Guess, history[1].Feedback)
	require.NoError(t, err)

	replayed, err := Replay(sample, history)
	require.NoError(t, err)
	assert.Equal(t, step, replayed)
	assert.Contains(t, replayed, "THERE")
}
