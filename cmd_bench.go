package main

import (
	"context"
	"fmt"
	"math/rand"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/bench"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/config"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/results"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/solver"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

type benchFlags struct {
	games   int
	workers int
	order   string
	save    bool
}

func newBenchCmd(cfg *config.Config) *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play many games and report win rate and tries distribution",
		Long: `Play one game per answer (all dictionary words, or a seeded sample with
--games) concurrently, each with its own candidate list.

Examples:
  wordlebot bench --games 500 --workers 8
  wordlebot bench --save && wordlebot history --batch <id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, cfg, f)
		},
	}
	cmd.Flags().IntVar(&f.games, "games", 0, "number of answers to sample (0 = every word)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent games (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&f.order, "order", string(cfg.Order), "candidate order: source|alpha|shuffle")
	cmd.Flags().BoolVar(&f.save, "save", false, "record every run in the history database")
	cmd.Flags().IntVar(&cfg.MaxTries, "max-tries", cfg.MaxTries, "try budget")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed")
	return cmd
}

func runBench(cmd *cobra.Command, cfg *config.Config, f benchFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	order, err := words.ParseOrder(f.order)
	if err != nil {
		return err
	}
	dict := loadDictionary(cfg)

	answers := dict.Words()
	if f.games > 0 && f.games < len(answers) {
		rng := rand.New(rand.NewSource(cfg.Seed))
		rng.Shuffle(len(answers), func(i, j int) { answers[i], answers[j] = answers[j], answers[i] })
		answers = answers[:f.games]
	}

	opts := bench.Options{
		Answers: answers,
		Workers: f.workers,
		Solver:  solver.Options{MaxTries: cfg.MaxTries, Order: order, Seed: cfg.Seed},
	}
	if f.save {
		hist, err := results.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer hist.Close()
		opts.OnResult = func(r bench.Result) error {
			run := results.FromSolver(r.Solver, r.Started, cfg.Seed)
			run.BatchID = r.BatchID
			_, err := hist.Save(context.WithoutCancel(ctx), run, r.Answer)
			return err
		}
	}

	rep, err := bench.Run(ctx, dict, opts)
	if err != nil {
		return err
	}
	printReport(cmd, rep)
	if f.save {
		log.Info().Str("batch", rep.BatchID).Str("db", cfg.DBPath).Msg("runs saved")
	}
	return nil
}

func printReport(cmd *cobra.Command, rep bench.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "batch       %s\n", rep.BatchID)
	fmt.Fprintf(out, "games       %d\n", rep.Games)
	fmt.Fprintf(out, "won         %d (%.1f%%)\n", rep.Won, 100*rep.WinRate())
	fmt.Fprintf(out, "exhausted   %d\n", rep.Exhausted)
	fmt.Fprintf(out, "no cands    %d\n", rep.NoCandidates)
	fmt.Fprintf(out, "mean tries  %.2f\n", rep.MeanTries)
	tries := make([]int, 0, len(rep.Distribution))
	for t := range rep.Distribution {
		tries = append(tries, t)
	}
	sort.Ints(tries)
	for _, t := range tries {
		fmt.Fprintf(out, "  %2d: %d\n", t, rep.Distribution[t])
	}
	fmt.Fprintf(out, "elapsed     %s\n", rep.Elapsed)
}
