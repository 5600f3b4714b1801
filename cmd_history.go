package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/config"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/results"
)

func newHistoryCmd(cfg *config.Config) *cobra.Command {
	var (
		limit int
		batch string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs and summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hist, err := results.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer hist.Close()

			ctx := cmd.Context()
			runs, err := hist.List(ctx, limit)
			if err != nil {
				return err
			}
			sum, err := hist.Summary(ctx, batch)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %s  %-18s %d/%d  %s\n",
					r.StartedAt.Format("2006-01-02 15:04:05"), shortID(r.ID), r.Status, r.Tries, r.MaxTries,
					strings.Join(r.History, " "))
			}
			fmt.Fprintf(out, "games %d  won %d  exhausted %d  no-candidates %d  mean tries %.2f\n",
				sum.Games, sum.Won, sum.Exhausted, sum.NoCandidates, sum.MeanTries)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "runs to list")
	cmd.Flags().StringVar(&batch, "batch", "", "restrict the summary to one bench batch")
	return cmd
}

// shortID trims a run ID for the listing.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
