package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"FundLens/internal/calculator"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
	"FundLens/internal/practice"
	"FundLens/internal/recorder"
	"FundLens/internal/report"
)

func practiceCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Estimate fund metrics and earn XP",
	}
	cmd.AddCommand(practiceListCmd(opts), practiceNewCmd(opts), practiceSubmitCmd(opts))
	return cmd
}

func (a *app) pending() *practice.Pending {
	return practice.NewPending(a.store, a.cfg.Storage.Key+"-pending-scenario")
}

func practiceListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List canned scenarios and random templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, s := range practice.Scenarios(opts.app.now().Year()) {
				fmt.Fprintf(out, "%-20s %s - %s\n", s.ID, s.Name, s.Description)
			}
			for _, t := range practice.Templates() {
				fmt.Fprintf(out, "%-20s %s - %s\n", t.Slug, t.Name, t.Description)
			}
			return nil
		},
	}
}

func practiceNewCmd(opts *rootOptions) *cobra.Command {
	var (
		id     string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a practice scenario (random unless --scenario is given)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			ctx := cmd.Context()

			var s model.PracticeScenario
			if id != "" {
				found, ok := practice.Find(id, a.now().Year())
				if !ok {
					return fmt.Errorf("unknown scenario %q (see `fundlens practice list`)", id)
				}
				s = found
			} else {
				seed := uint64(a.now().UnixNano())
				sess := practice.NewGenerator(rand.New(rand.NewPCG(seed, seed>>1)), a.now).Random()
				s = sess.Scenario
				a.log.Debug("random scenario generated", zap.String("id", s.ID), zap.String("template", sess.Template))
			}
			if err := a.pending().Save(ctx, s); err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			writeScenario(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "scenario", "", "canned scenario ID or template slug")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the scenario as JSON")
	return cmd
}

func writeScenario(w io.Writer, s model.PracticeScenario) {
	d := s.FundData
	m := calculator.FormatMillions
	fmt.Fprintf(w, "%s (%s)\n%s\n\n", s.Name, s.ID, s.Description)
	fmt.Fprintf(w, "  Fund Size            %s\n", m(d.FundSize))
	fmt.Fprintf(w, "  Paid-In Capital      %s\n", m(d.PaidInCapital))
	fmt.Fprintf(w, "  Distributed Capital  %s\n", m(d.DistributedCapital))
	fmt.Fprintf(w, "  Unrealized Value     %s\n", m(d.UnrealizedValue))
	fmt.Fprintf(w, "  Vintage / Current    %d / %d\n", d.VintageYear, d.CurrentYear)
	fmt.Fprintf(w, "  Companies            %d (%d exits, %d write-offs)\n\n", d.NumberOfCompanies, d.NumberOfExits, d.NumberOfWriteOffs)
	fmt.Fprintln(w, "Estimate:")
	for _, t := range s.TargetMetrics {
		name := string(t.Metric)
		if def, ok := metrics.Lookup(t.Metric); ok {
			name = def.Name
		}
		fmt.Fprintf(w, "  %-8s (±%s)  --%s\n", name, strconv.FormatFloat(t.Tolerance, 'f', -1, 64), t.Metric)
	}
}

func practiceSubmitCmd(opts *rootOptions) *cobra.Command {
	var (
		tvpi, dpi, irr float64
		extra          map[string]string
	)
	cmd := &cobra.Command{
		Use:   "submit <scenario-id>",
		Short: "Grade estimates for a scenario and record progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			ctx := cmd.Context()

			s, err := a.pending().Resolve(ctx, args[0], a.now().Year())
			if err != nil {
				return err
			}

			estimates := map[model.MetricKey]float64{}
			flags := cmd.Flags()
			if flags.Changed("tvpi") {
				estimates[model.KeyTVPI] = tvpi
			}
			if flags.Changed("dpi") {
				estimates[model.KeyDPI] = dpi
			}
			if flags.Changed("irr") {
				estimates[model.KeyIRR] = irr
			}
			for k, v := range extra {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return fmt.Errorf("estimate %s: %w", k, err)
				}
				estimates[model.MetricKey(k)] = f
			}

			g := practice.GradeEstimates(s, estimates)
			p := a.tracker.Record(ctx, g.AllCorrect)

			actuals := make(map[model.MetricKey]float64, len(g.Estimates))
			for _, e := range g.Estimates {
				actuals[e.Metric] = e.Actual
			}
			if err := a.recorder.RecordAttempt(&recorder.Attempt{
				ScenarioID: s.ID,
				Estimates:  estimates,
				Actuals:    actuals,
				Correct:    g.AllCorrect,
				XP:         p.XP,
				Level:      p.Level,
				Streak:     p.Streak,
			}); err != nil {
				a.log.Error("record attempt", zap.Error(err))
			}
			a.metrics.ObserveAttempt(g.AllCorrect)
			a.metrics.ObserveProgress(p)
			a.flushTelemetry()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.FormatGrade(g))
			fmt.Fprintln(out)
			fmt.Fprint(out, report.FormatProgress(p))
			return nil
		},
	}
	cmd.Flags().Float64Var(&tvpi, "tvpi", 0, "TVPI estimate")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "DPI estimate")
	cmd.Flags().Float64Var(&irr, "irr", 0, "IRR estimate in percent")
	cmd.Flags().StringToStringVar(&extra, "estimate", nil, "other estimates as metric=value")
	return cmd
}
