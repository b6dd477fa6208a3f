package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"FundLens/internal/calculator"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
	"FundLens/internal/recorder"
	"FundLens/internal/report"
)

type fundInput struct {
	preset string
	file   string
}

func (in *fundInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.preset, "preset", "", "evaluate a named fund preset")
	cmd.Flags().StringVar(&in.file, "file", "", "evaluate fund data from a YAML file")
	cmd.MarkFlagsMutuallyExclusive("preset", "file")
}

// load resolves the fund record and checks it at the input boundary. Negative
// values are rejected; inconsistent portfolio counts only warn.
func (in *fundInput) load(a *app) (model.FundData, string, error) {
	year := a.now().Year()

	var (
		d      model.FundData
		source string
	)
	switch {
	case in.preset != "":
		p, ok := a.presets.Find(in.preset)
		if !ok {
			return d, "", fmt.Errorf("unknown preset %q (see `fundlens presets`)", in.preset)
		}
		d, source = p.FundData, p.ID
	case in.file != "":
		data, err := os.ReadFile(in.file)
		if err != nil {
			return d, "", fmt.Errorf("read fund file: %w", err)
		}
		if err := yaml.Unmarshal(data, &d); err != nil {
			return d, "", fmt.Errorf("parse fund file: %w", err)
		}
		if d.CurrentYear == 0 {
			d.CurrentYear = year
		}
		source = in.file
	default:
		d, source = model.DefaultFundData(year), "default"
	}

	if err := d.Validate(); err != nil {
		if !errors.Is(err, model.ErrPortfolioCounts) {
			return d, "", err
		}
		a.log.Warn("fund data is inconsistent, metrics may be misleading", zap.Error(err))
	}
	return d, source, nil
}

type evaluationJSON struct {
	Source   string                           `json:"source"`
	FundData model.FundData                   `json:"fundData"`
	Metrics  []model.MetricResult             `json:"metrics"`
	Health   metrics.HealthSummary            `json:"health"`
	Flow     *calculator.CapitalFlowBreakdown `json:"capitalFlow,omitempty"`
}

// finiteValues zeroes values JSON cannot carry. DisplayValue already reads N/A.
func finiteValues(rs []model.MetricResult) []model.MetricResult {
	for i := range rs {
		if math.IsNaN(rs[i].Value) || math.IsInf(rs[i].Value, 0) {
			rs[i].Value = 0
		}
	}
	return rs
}

func evaluateCmd(opts *rootOptions) *cobra.Command {
	var (
		in      fundInput
		asJSON  bool
		flow    bool
		explain string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute all fund metrics and their benchmark tiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			if explain != "" {
				def, ok := metrics.Lookup(model.MetricKey(explain))
				if !ok {
					return fmt.Errorf("unknown metric %q", explain)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), metrics.Tooltip(def))
				return err
			}

			d, source, err := in.load(a)
			if err != nil {
				return err
			}
			results := metrics.Evaluate(d)
			a.recordEvaluation(source, results)

			out := cmd.OutOrStdout()
			if asJSON {
				payload := evaluationJSON{
					Source:   source,
					FundData: d,
					Metrics:  finiteValues(results.Ordered()),
					Health:   metrics.Health(results),
				}
				if flow {
					cf := calculator.CapitalFlow(d)
					payload.Flow = &cf
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			if err := report.RenderTiles(out, results, opts.color(cmd)); err != nil {
				return err
			}
			if flow {
				_, err = io.WriteString(out, "\n"+report.FormatCapitalFlow(calculator.CapitalFlow(d)))
			}
			return err
		},
	}
	in.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&flow, "capital-flow", false, "include the capital flow breakdown")
	cmd.Flags().StringVar(&explain, "explain", "", "print the formula and benchmarks of one metric key")
	return cmd
}

func exportCmd(opts *rootOptions) *cobra.Command {
	var (
		in  fundInput
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the metrics as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			d, source, err := in.load(a)
			if err != nil {
				return err
			}
			results := metrics.Evaluate(d)
			a.recordEvaluation(source, results)

			if out == "-" {
				return report.WriteCSV(cmd.OutOrStdout(), results, d)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := report.WriteCSV(f, results, d); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			a.log.Info("metrics exported", zap.String("path", out), zap.String("source", source))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "vc-metrics.csv", "output file, - for stdout")
	return cmd
}

func presetsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the historical fund presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := opts.app.presets.All()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			for _, p := range all {
				tvpi := metrics.Evaluate(p.FundData)[model.KeyTVPI].DisplayValue
				fmt.Fprintf(out, "%-20s %s (TVPI %s)\n", p.ID, p.Name, tvpi)
				fmt.Fprintf(out, "  %s\n", p.Description)
				for _, h := range p.Highlights {
					fmt.Fprintf(out, "  * %s\n", h)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print presets as JSON")
	return cmd
}

func (a *app) recordEvaluation(source string, results metrics.Results) {
	if err := a.recorder.RecordEvaluation(recorder.NewEvaluation(source, results)); err != nil {
		a.log.Error("record evaluation", zap.Error(err))
	}
	a.metrics.Evaluations.Inc()
	a.flushTelemetry()
}
