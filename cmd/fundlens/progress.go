package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"FundLens/internal/model"
	"FundLens/internal/progress"
	"FundLens/internal/report"
)

func progressCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show XP, level, streak and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := opts.app.tracker.Load(cmd.Context())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Progress     model.UserProgress     `json:"progress"`
					Accuracy     float64                `json:"accuracy"`
					XPToNext     int                    `json:"xpToNextLevel"`
					Achievements []progress.Achievement `json:"achievements"`
				}{p, progress.Accuracy(p), progress.XPToNextLevel(p), progress.Achievements(p)})
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), report.FormatProgress(p))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print progress as JSON")
	cmd.AddCommand(progressResetCmd(opts))
	return cmd
}

func progressResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored progress with a fresh record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to reset progress without --yes")
			}
			p := opts.app.tracker.Reset(cmd.Context())
			opts.app.metrics.ObserveProgress(p)
			opts.app.flushTelemetry()
			_, err := fmt.Fprint(cmd.OutOrStdout(), report.FormatProgress(p))
			return err
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
