// apps/wordlebot/internal/solver/solver.go
//
// Solver drives one game: guess, read feedback, eliminate, pick the next guess.
//
// State transitions (one per Advance):
//   playing → won               oracle says WIN / all-G
//   playing → lost_exhausted    try budget used up (ours, or the oracle's FAIL)
//   playing → lost_no_candidates filtering left nothing (or the dictionary was empty)
//
// Oracle failures and malformed feedback are returned to the caller and leave
// the state untouched; terminal outcomes are states, never errors.

package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/feedback"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/game"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/oracle"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

// DefaultMaxTries matches the oracle's default budget.
const DefaultMaxTries = 6

// Status is the solver's state.
type Status string

const (
	StatusPlaying          Status = "playing"
	StatusWon              Status = "won"
	StatusLostExhausted    Status = "lost_exhausted"
	StatusLostNoCandidates Status = "lost_no_candidates"
)

// Terminal reports whether no further Advance will change the state.
func (s Status) Terminal() bool { return s != StatusPlaying }

// GuessRecord pairs a guess with the feedback it drew. Feedback is nil when
// the oracle answered FAIL instead of scoring the guess.
type GuessRecord struct {
	Guess    string
	Feedback feedback.Feedback
}

// Outcome is the feedback string, or FAIL for an unscored guess.
func (r GuessRecord) Outcome() string {
	if r.Feedback == nil {
		return feedback.FailSentinel
	}
	return r.Feedback.String()
}

// String renders the record as WORD:FEEDBACK.
func (r GuessRecord) String() string { return r.Guess + ":" + r.Outcome() }

// Selector picks the next guess from the surviving candidates (never empty).
type Selector func(candidates []string) string

// First picks the first candidate in the current ordering.
func First(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

// Options configures a Solver. Zero values select the defaults.
type Options struct {
	MaxTries int           // default DefaultMaxTries
	Order    words.Order   // initial candidate ordering, default shuffle
	Seed     int64         // shuffle seed
	Select   Selector      // default First
	Delay    time.Duration // pause between turns in Run
	Logger   *zerolog.Logger
}

// Solver holds the state of one game. It is not safe for concurrent use;
// run independent games with independent Solvers.
type Solver struct {
	oracle oracle.Oracle
	opts   Options
	log    zerolog.Logger

	candidates []string
	guess      string
	tries      int
	status     Status
	history    []GuessRecord
	revealed   string
}

// New builds a solver over its own copy of dict. An empty dictionary yields a
// solver already in StatusLostNoCandidates.
func New(dict *words.Dictionary, o oracle.Oracle, opts Options) *Solver {
	if opts.MaxTries <= 0 {
		opts.MaxTries = DefaultMaxTries
	}
	if opts.Order == "" {
		opts.Order = words.OrderShuffle
	}
	if opts.Select == nil {
		opts.Select = First
	}
	lg := log.Logger
	if opts.Logger != nil {
		lg = *opts.Logger
	}

	s := &Solver{
		oracle:     o,
		opts:       opts,
		log:        lg,
		candidates: dict.Ordered(opts.Order, opts.Seed),
		status:     StatusPlaying,
	}
	if len(s.candidates) == 0 {
		s.status = StatusLostNoCandidates
		s.log.Warn().Msg("no words in the word list")
		return s
	}
	s.guess = opts.Select(s.candidates)
	s.log.Debug().Str("guess", s.guess).Int("candidates", len(s.candidates)).Msg("starting new game")
	return s
}

// Advance plays one turn. It is a no-op once the solver is terminal.
func (s *Solver) Advance(ctx context.Context) (Status, error) {
	if s.status.Terminal() {
		return s.status, nil
	}
	if err := ctx.Err(); err != nil {
		return s.status, err
	}

	res, err := s.oracle.Submit(ctx, s.guess)
	if err != nil {
		return s.status, fmt.Errorf("submit %s: %w", s.guess, err)
	}
	attempt := s.tries + 1

	switch {
	case feedback.IsWinSentinel(res.Feedback) || res.Status == game.StatusWon:
		s.commit(attempt, feedback.AllExact())
		s.finish(StatusWon, res.Answer)
		return s.status, nil
	case feedback.IsFailSentinel(res.Feedback) || res.Status == game.StatusExceeded:
		s.commit(attempt, nil)
		s.finish(StatusLostExhausted, res.Answer)
		return s.status, nil
	}

	fb, err := feedback.Parse(res.Feedback)
	if err != nil {
		return s.status, fmt.Errorf("oracle feedback for %s: %w", s.guess, err)
	}
	s.commit(attempt, fb)

	if fb.Win() {
		s.finish(StatusWon, res.Answer)
		return s.status, nil
	}
	if s.tries >= s.opts.MaxTries {
		s.finish(StatusLostExhausted, res.Answer)
		return s.status, nil
	}

	next, err := Filter(s.candidates, s.guess, fb)
	if err != nil {
		return s.status, err
	}
	s.candidates = next
	if len(next) == 0 {
		s.finish(StatusLostNoCandidates, res.Answer)
		return s.status, nil
	}
	s.guess = s.opts.Select(next)
	return s.status, nil
}

// Run advances until the game ends, ctx is done, or the oracle fails.
func (s *Solver) Run(ctx context.Context) (Status, error) {
	for !s.status.Terminal() {
		if _, err := s.Advance(ctx); err != nil {
			return s.status, err
		}
		if s.status.Terminal() || s.opts.Delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return s.status, ctx.Err()
		case <-time.After(s.opts.Delay):
		}
	}
	return s.status, nil
}

func (s *Solver) commit(attempt int, fb feedback.Feedback) {
	s.tries = attempt
	s.history = append(s.history, GuessRecord{Guess: s.guess, Feedback: fb})
	s.log.Info().
		Int("attempt", attempt).
		Str("guess", s.guess).
		Str("feedback", GuessRecord{Feedback: fb}.Outcome()).
		Msg("guess scored")
}

func (s *Solver) finish(st Status, answer string) {
	s.status = st
	if answer != "" && answer != game.AnswerUnknown {
		s.revealed = answer
	}
	ev := s.log.Info()
	if st != StatusWon {
		ev = s.log.Warn()
	}
	ev.Str("status", string(st)).
		Int("tries", s.tries).
		Int("candidates", len(s.candidates)).
		Str("answer", s.revealed).
		Msg("game over")
}

// Status returns the current state.
func (s *Solver) Status() Status { return s.status }

// Tries returns how many guesses have been scored.
func (s *Solver) Tries() int { return s.tries }

// MaxTries returns the configured budget.
func (s *Solver) MaxTries() int { return s.opts.MaxTries }

// Guess returns the guess the next Advance will submit (or the last one
// submitted, once terminal).
func (s *Solver) Guess() string { return s.guess }

// Candidates returns a copy of the surviving candidates.
func (s *Solver) Candidates() []string { return append([]string(nil), s.candidates...) }

// History returns a copy of the guesses made so far.
func (s *Solver) History() []GuessRecord { return append([]GuessRecord(nil), s.history...) }

// RevealedAnswer is the answer the oracle disclosed at the end, if any.
func (s *Solver) RevealedAnswer() string { return s.revealed }

// Replay recomputes a candidate set from scratch out of a full guess history.
// Unscored guesses carry no information and are skipped.
func Replay(candidates []string, history []GuessRecord) ([]string, error) {
	out := append([]string(nil), candidates...)
	for _, r := range history {
		if r.Feedback == nil {
			continue
		}
		var err error
		if out, err = Filter(out, r.Guess, r.Feedback); err != nil {
			return nil, err
		}
	}
	return out, nil
}
