// apps/wordlebot/internal/solver/filter.go
//
// Candidate elimination.
//
// Filter keeps exactly the words w for which Evaluate(guess, w) would have
// produced the observed feedback. Instead of re-scoring every candidate it
// derives constraints from (guess, feedback) once:
//   - greens:    position -> required letter; every other position must NOT
//                hold the letter that was guessed there (it would have been G).
//   - minCount:  per letter, the number of non-Absent occurrences in the guess.
//   - capped:    a letter with at least one Absent occurrence appears exactly
//                minCount times. A letter whose every occurrence was Absent is
//                therefore banned outright; one that was Present somewhere and
//                Absent elsewhere is only count- and position-constrained.
//   - ordering:  for a repeated letter the scorer hands out Present left to
//                right, so an Absent followed by a Present of the same letter
//                can never be observed and matches nothing.

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/feedback"
)

// ErrInvalidFeedback wraps length and symbol errors found in feedback handed to Filter.
var ErrInvalidFeedback = errors.New("solver: invalid feedback")

type constraints struct {
	guess    string
	fb       feedback.Feedback
	minCount [256]int
	capped   [256]bool
	letters  []byte // distinct guess letters
	possible bool
}

func derive(guess string, fb feedback.Feedback) (*constraints, error) {
	if err := fb.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}
	guess = strings.ToUpper(guess)
	if len(guess) != feedback.Length {
		return nil, fmt.Errorf("%w: guess %q", feedback.ErrLengthMismatch, guess)
	}

	c := &constraints{guess: guess, fb: fb, possible: true}
	var seen [256]bool
	var sawAbsent [256]bool
	for i := 0; i < len(guess); i++ {
		ch := guess[i]
		if !seen[ch] {
			seen[ch] = true
			c.letters = append(c.letters, ch)
		}
		switch fb[i] {
		case feedback.Exact:
			c.minCount[ch]++
		case feedback.Present:
			if sawAbsent[ch] {
				c.possible = false
			}
			c.minCount[ch]++
		case feedback.Absent:
			sawAbsent[ch] = true
			c.capped[ch] = true
		}
	}
	return c, nil
}

func (c *constraints) match(word string) bool {
	if !c.possible || len(word) != len(c.guess) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if (word[i] == c.guess[i]) != (c.fb[i] == feedback.Exact) {
			return false
		}
	}
	var counts [256]int
	for i := 0; i < len(word); i++ {
		counts[word[i]]++
	}
	for _, ch := range c.letters {
		n := counts[ch]
		if n < c.minCount[ch] {
			return false
		}
		if c.capped[ch] && n != c.minCount[ch] {
			return false
		}
	}
	return true
}

// Filter returns the subset of candidates consistent with guess scoring fb.
// Candidates are expected in dictionary form (uppercase).
// The input slice is never modified; the result is a new slice.
func Filter(candidates []string, guess string, fb feedback.Feedback) ([]string, error) {
	c, err := derive(guess, fb)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if c.match(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// BruteForceFilter re-scores guess against every candidate and keeps exact
// matches. Slower than Filter; kept as the reference it is checked against.
func BruteForceFilter(candidates []string, guess string, fb feedback.Feedback) ([]string, error) {
	if err := fb.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		got, err := feedback.Evaluate(guess, w)
		if err != nil {
			if errors.Is(err, feedback.ErrLengthMismatch) && len(guess) == feedback.Length {
				continue
			}
			return nil, err
		}
		if got.Equal(fb) {
			out = append(out, w)
		}
	}
	return out, nil
}
