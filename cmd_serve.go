package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/config"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/store"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the feedback oracle HTTP server",
		Long: `Run the oracle server: POST /game/new starts a game, POST /game/guess
scores a guess. When ORACLE_SECRET (--secret) is set, game endpoints require
an HS256 bearer token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict := loadDictionary(cfg)
			srv := httpserver.New(store.NewMemoryStore(), httpserver.Config{
				Dict:      dict,
				Secret:    cfg.OracleSecret,
				DailySalt: cfg.DailySalt,
				MaxTries:  cfg.MaxTries,
			})
			log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Bool("auth", cfg.OracleSecret != "").Msg("starting oracle server")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	cmd.Flags().StringVar(&cfg.OracleSecret, "secret", cfg.OracleSecret, "token secret (empty disables auth)")
	cmd.Flags().IntVar(&cfg.MaxTries, "max-tries", cfg.MaxTries, "default try budget for new games")
	return cmd
}
