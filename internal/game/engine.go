// apps/wordlebot/internal/game/engine.go
//
// Answer-holder for a single game; the reference oracle the solver plays against.
// Responsibilities:
//   - Create games with a fixed answer (or a random dictionary word).
//   - Validate and score guesses with the two-pass evaluator.
//   - Track state transitions: playing → won/exceeded.
//
// Tries are counted before checking: the guess after the last allowed one
// reports FAIL together with the answer. A correct guess reports WIN.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/feedback"
)

// DefaultMaxTries is the classic six rows.
const DefaultMaxTries = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
)

// New constructs a new game for answer. maxTries <= 0 means DefaultMaxTries.
func New(answer string, maxTries int) (*Game, error) {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	if len(answer) != feedback.Length || !isAlpha(answer) {
		return nil, ErrInvalidGuess
	}
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	return &Game{
		ID:       randomID(),
		Answer:   answer,
		MaxTries: maxTries,
		Guesses:  []string{},
	}, nil
}

// Guess scores one guess and advances the game.
func (g *Game) Guess(guess string) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Finished {
		return Result{}, ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != feedback.Length || !isAlpha(guess) {
		return Result{}, ErrInvalidGuess
	}

	g.Tries++
	if g.Tries > g.MaxTries {
		g.Finished = true
		return Result{Status: StatusExceeded, Feedback: feedback.FailSentinel, Answer: g.Answer}, nil
	}

	g.Guesses = append(g.Guesses, guess)
	if guess == g.Answer {
		g.Finished, g.Won = true, true
		return Result{Status: StatusWon, Feedback: feedback.WinSentinel, Answer: g.Answer}, nil
	}

	fb, err := feedback.Evaluate(guess, g.Answer)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: StatusPlaying, Feedback: fb.String(), Answer: AnswerUnknown}, nil
}

// State reports the current status.
func (g *Game) State() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.Won:
		return StatusWon
	case g.Finished:
		return StatusExceeded
	}
	return StatusPlaying
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
