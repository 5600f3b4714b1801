// apps/wordlebot/internal/oracle/oracle.go
//
// The feedback oracle is whatever holds the hidden answer and scores guesses:
// an in-process game (Local) or the oracle HTTP server (HTTP).
//
// Calls are synchronous request/response with no built-in timeout; callers
// that need one pass a context with a deadline.

package oracle

import (
	"context"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/game"
)

// Oracle scores guesses against a hidden answer.
type Oracle interface {
	Submit(ctx context.Context, guess string) (game.Result, error)
}

// Func adapts a plain function to Oracle.
type Func func(ctx context.Context, guess string) (game.Result, error)

// Submit calls f.
func (f Func) Submit(ctx context.Context, guess string) (game.Result, error) { return f(ctx, guess) }

// Local plays against an in-process game.
type Local struct {
	g *game.Game
}

// NewLocal starts a local game for answer.
func NewLocal(answer string, maxTries int) (*Local, error) {
	g, err := game.New(answer, maxTries)
	if err != nil {
		return nil, err
	}
	return &Local{g: g}, nil
}

// Submit scores guess; ctx is honoured only before the call.
func (l *Local) Submit(ctx context.Context, guess string) (game.Result, error) {
	if err := ctx.Err(); err != nil {
		return game.Result{}, err
	}
	return l.g.Guess(guess)
}

// Game exposes the underlying game (tests, diagnostics).
func (l *Local) Game() *game.Game { return l.g }
