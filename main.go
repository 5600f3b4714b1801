// Command wordlebot solves five-letter word games by constraint elimination,
// and can host the feedback oracle it plays against.
package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/config"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordlebot",
		Short: "Five-letter word game solver",
		Long: `wordlebot guesses, reads per-letter feedback (G/Y/R) and narrows its
candidate list until the answer is found or the try budget runs out.

It can play against a built-in answer holder, a remote oracle server, or
host that oracle server itself.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg.LogLevel)
		},
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	root.PersistentFlags().StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "word list file (default: built-in list)")
	root.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "run history database")

	root.AddCommand(newPlayCmd(cfg))
	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newBenchCmd(cfg))
	root.AddCommand(newHistoryCmd(cfg))
	return root
}

// setupLogging applies the level and switches to console output on a terminal.
func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// loadDictionary loads the configured word list once per process; every
// solver derives its own candidate list from it.
func loadDictionary(cfg *config.Config) *words.Dictionary {
	d := words.Load(cfg.WordsFile)
	log.Debug().Int("words", d.Len()).Str("source", cfg.WordsFile).Msg("dictionary loaded")
	return d
}
