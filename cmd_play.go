package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/config"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/daily"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/oracle"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/results"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/solver"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

type playFlags struct {
	answer string
	daily  bool
	order  string
	save   bool
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var f playFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve one game",
		Long: `Solve one game against the built-in answer holder, or against a remote
oracle server when --oracle (ORACLE_URL) is set.

Examples:
  # Fixed answer, alphabetical candidate order
  wordlebot play --answer retry --order alpha

  # Today's answer on a remote oracle
  wordlebot play --oracle http://localhost:5175 --daily`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfg, f)
		},
	}
	cmd.Flags().StringVar(&f.answer, "answer", "", "answer for the game (default: random dictionary word)")
	cmd.Flags().BoolVar(&f.daily, "daily", false, "play the date-seeded daily answer")
	cmd.Flags().StringVar(&f.order, "order", string(cfg.Order), "candidate order: source|alpha|shuffle")
	cmd.Flags().BoolVar(&f.save, "save", false, "record the run in the history database")
	cmd.Flags().IntVar(&cfg.MaxTries, "max-tries", cfg.MaxTries, "try budget")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed")
	cmd.Flags().DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause between turns")
	cmd.Flags().StringVar(&cfg.OracleURL, "oracle", cfg.OracleURL, "remote oracle base URL")
	cmd.Flags().StringVar(&cfg.OracleSecret, "secret", cfg.OracleSecret, "oracle token secret")
	return cmd
}

func runPlay(cmd *cobra.Command, cfg *config.Config, f playFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	order, err := words.ParseOrder(f.order)
	if err != nil {
		return err
	}
	dict := loadDictionary(cfg)

	var (
		o      oracle.Oracle
		answer string
	)
	if cfg.OracleURL != "" {
		remote, err := oracle.NewHTTP(ctx, cfg.OracleURL,
			oracle.NewGameRequest{Answer: f.answer, Daily: f.daily, MaxTries: cfg.MaxTries},
			oracle.WithSecret(cfg.OracleSecret))
		if err != nil {
			return err
		}
		log.Info().Str("oracle", cfg.OracleURL).Str("gameId", remote.GameID()).Msg("remote game started")
		o, answer = remote, strings.ToUpper(f.answer)
	} else {
		answer = f.answer
		switch {
		case answer != "":
		case f.daily:
			answer = daily.Answer(dict, time.Now(), cfg.DailySalt)
		default:
			answer = dict.Random()
		}
		local, err := oracle.NewLocal(answer, cfg.MaxTries)
		if err != nil {
			return fmt.Errorf("answer %q: %w", answer, err)
		}
		o, answer = local, local.Game().Answer
	}

	started := time.Now()
	sv := solver.New(dict, o, solver.Options{
		MaxTries: cfg.MaxTries,
		Order:    order,
		Seed:     cfg.Seed,
		Delay:    cfg.Delay,
	})
	st, err := sv.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, h := range sv.History() {
		fmt.Fprintf(out, "%d  %s  %s\n", i+1, h.Guess, h.Outcome())
	}
	switch st {
	case solver.StatusWon:
		fmt.Fprintf(out, "WON in %d tries: %s\n", sv.Tries(), sv.Guess())
	case solver.StatusLostExhausted:
		fmt.Fprintf(out, "EXCEEDED %d tries (answer %s)\n", sv.MaxTries(), orUnknown(sv.RevealedAnswer(), answer))
	case solver.StatusLostNoCandidates:
		fmt.Fprintf(out, "NO CANDIDATES left after %d tries\n", sv.Tries())
	}

	if f.save {
		if answer == "" {
			answer = sv.RevealedAnswer()
		}
		hist, err := results.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer hist.Close()
		run, err := hist.Save(ctx, results.FromSolver(sv, started, cfg.Seed), answer)
		if err != nil {
			return err
		}
		log.Info().Str("run", run.ID).Str("db", cfg.DBPath).Msg("run saved")
	}
	return nil
}

func orUnknown(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return "unknown"
}
