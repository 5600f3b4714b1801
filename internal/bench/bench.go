// Package bench plays many independent games concurrently and aggregates
// the outcomes. Each game gets its own Solver and candidate set; only the
// dictionary is shared, read-only.
package bench

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/oracle"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/solver"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

// Options configures a batch.
type Options struct {
	Answers  []string // defaults to every dictionary word
	Workers  int      // defaults to GOMAXPROCS
	Solver   solver.Options
	OnResult func(Result) error // called serially after each game
}

// Result is the outcome of one game.
type Result struct {
	BatchID  string
	Answer   string
	Started  time.Time
	Solver   *solver.Solver
	Status   solver.Status
	Tries    int
	Duration time.Duration
}

// Report aggregates a batch.
type Report struct {
	BatchID      string
	Games        int
	Won          int
	Exhausted    int
	NoCandidates int
	Distribution map[int]int // tries -> wins
	MeanTries    float64     // over won games
	Elapsed      time.Duration
}

// WinRate is Won/Games, or 0 for an empty batch.
func (r Report) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Won) / float64(r.Games)
}

func (r *Report) add(res Result) {
	r.Games++
	switch res.Status {
	case solver.StatusWon:
		r.Won++
		r.Distribution[res.Tries]++
	case solver.StatusLostExhausted:
		r.Exhausted++
	case solver.StatusLostNoCandidates:
		r.NoCandidates++
	}
}

// Run plays one game per answer. The first oracle or sink error cancels the batch.
func Run(ctx context.Context, dict *words.Dictionary, opts Options) (Report, error) {
	answers := opts.Answers
	if len(answers) == 0 {
		answers = dict.Words()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	maxTries := opts.Solver.MaxTries
	if maxTries <= 0 {
		maxTries = solver.DefaultMaxTries
	}
	// Per-game narration is too chatty for a batch.
	quiet := log.Logger.Level(zerolog.WarnLevel)
	sopts := opts.Solver
	sopts.MaxTries = maxTries
	if sopts.Logger == nil {
		sopts.Logger = &quiet
	}

	rep := Report{BatchID: uuid.NewString(), Distribution: map[int]int{}}
	start := time.Now()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, answer := range answers {
		g.Go(func() error {
			o, err := oracle.NewLocal(answer, maxTries)
			if err != nil {
				return err
			}
			began := time.Now()
			sv := solver.New(dict, o, sopts)
			st, err := sv.Run(gctx)
			if err != nil {
				return err
			}
			res := Result{
				BatchID:  rep.BatchID,
				Answer:   o.Game().Answer,
				Started:  began,
				Solver:   sv,
				Status:   st,
				Tries:    sv.Tries(),
				Duration: time.Since(began),
			}

			mu.Lock()
			defer mu.Unlock()
			rep.add(res)
			if opts.OnResult != nil {
				return opts.OnResult(res)
			}
			return nil
		})
	}
	err := g.Wait()

	total := 0
	for tries, n := range rep.Distribution {
		total += tries * n
	}
	if rep.Won > 0 {
		rep.MeanTries = float64(total) / float64(rep.Won)
	}
	rep.Elapsed = time.Since(start)
	log.Info().
		Str("batch", rep.BatchID).
		Int("games", rep.Games).
		Int("won", rep.Won).
		Int("exhausted", rep.Exhausted).
		Int("noCandidates", rep.NoCandidates).
		Float64("meanTries", rep.MeanTries).
		Dur("elapsed", rep.Elapsed).
		Msg("batch finished")
	return rep, err
}
