package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"FundLens/internal/scheduler"
)

func daemonCmd(opts *rootOptions) *cobra.Command {
	var runNow bool
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the progress digest and streak reminder on a schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			ctx := cmd.Context()

			sched := scheduler.NewScheduler(ctx, a.tracker, a.recorder, a.metrics, a.cfg.Telemetry.TextfilePath, a.log)
			if err := sched.RegisterAll(a.cfg.Schedule.DigestCron, a.cfg.Schedule.StreakCron); err != nil {
				return err
			}
			if runNow {
				a.log.Info("running digest now")
				sched.RunDigestNow()
			}
			sched.Start()
			defer sched.Stop()

			a.log.Info("fundlens daemon running, press Ctrl+C to stop",
				zap.String("digest", a.cfg.Schedule.DigestCron),
				zap.String("streak", a.cfg.Schedule.StreakCron),
			)
			<-ctx.Done()
			a.log.Info("shutdown signal received, stopping")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runNow, "run-now", false, "run the digest once at startup")
	return cmd
}
