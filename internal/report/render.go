package report

import (
	"fmt"
	"io"
	"strings"

	"FundLens/internal/calculator"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
	"FundLens/internal/practice"
	"FundLens/internal/progress"
)

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

var sections = []struct {
	title    string
	category model.Category
}{
	{"Fund Performance", model.CategoryFund},
	{"Deal Metrics", model.CategoryDeal},
	{"Portfolio Metrics", model.CategoryPortfolio},
}

func tierLabel(t model.Tier, color bool) string {
	label := strings.ToUpper(string(t))
	if !color {
		return label
	}
	switch t {
	case model.TierExcellent:
		return ansiGreen + label + ansiReset
	case model.TierGood:
		return ansiYellow + label + ansiReset
	default:
		return ansiRed + label + ansiReset
	}
}

// FormatTiles renders the metric tiles grouped by category with the overall
// health line at the top.
func FormatTiles(results metrics.Results, color bool) string {
	var b strings.Builder

	h := metrics.Health(results)
	b.WriteString(fmt.Sprintf("Fund Health: %s (%.0f%% good or better)\n", tierLabel(h.Status, color), h.Percentage))
	b.WriteString(fmt.Sprintf("  excellent %d | good %d | poor %d\n", h.Excellent, h.Good, h.Poor))

	for _, s := range sections {
		group := results.ByCategory(s.category)
		if len(group) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s\n", s.title))
		for _, r := range group {
			b.WriteString(fmt.Sprintf("  %-24s %12s  %s\n", r.Name, r.DisplayValue, tierLabel(r.Performance, color)))
		}
	}
	return b.String()
}

// RenderTiles writes FormatTiles to w.
func RenderTiles(w io.Writer, results metrics.Results, color bool) error {
	_, err := io.WriteString(w, FormatTiles(results, color))
	return err
}

// FormatCapitalFlow renders the capital flow table.
func FormatCapitalFlow(cf calculator.CapitalFlowBreakdown) string {
	var b strings.Builder
	m := calculator.FormatMillions

	b.WriteString("Capital Flow\n")
	b.WriteString(fmt.Sprintf("  Fund Size          %10s\n", m(cf.FundSize)))
	pct := func(v float64) string { return calculator.FormatValue(v, model.UnitPercentage) }
	b.WriteString(fmt.Sprintf("  Paid-In            %10s (%s called)\n", m(cf.PaidIn), pct(cf.CapitalCalledPct)))
	b.WriteString(fmt.Sprintf("  Uncalled           %10s\n", m(cf.Uncalled)))
	b.WriteString(fmt.Sprintf("  Invested           %10s (%s deployed)\n", m(cf.TotalInvested), pct(cf.DeploymentPct)))
	b.WriteString(fmt.Sprintf("  Uninvested Cash    %10s\n", m(cf.UninvestedCash)))
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Distributed        %10s\n", m(cf.Distributed)))
	b.WriteString(fmt.Sprintf("  Unrealized         %10s\n", m(cf.Unrealized)))
	b.WriteString(fmt.Sprintf("  Total Value        %10s\n", m(cf.TotalValue)))
	b.WriteString(fmt.Sprintf("  Realized Gain      %10s\n", m(cf.RealizedGain)))
	b.WriteString(fmt.Sprintf("  Unrealized Gain    %10s\n", m(cf.UnrealizedGain)))
	return b.String()
}

// FormatProgress renders the progress card.
func FormatProgress(p model.UserProgress) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Level %d | %d XP (%d to next level)\n", p.Level, p.XP, progress.XPToNextLevel(p)))
	b.WriteString(fmt.Sprintf("Streak: %d day(s) | last practice %s\n", p.Streak, p.LastPracticeDate))
	b.WriteString(fmt.Sprintf("Accuracy: %.0f%% (%d/%d correct)\n", progress.Accuracy(p), p.CorrectEstimates, p.TotalAttempts))

	if a := progress.Achievements(p); len(a) > 0 {
		b.WriteString("Achievements:\n")
		for _, ach := range a {
			b.WriteString(fmt.Sprintf("  * %s - %s\n", ach.Title, ach.Description))
		}
	}
	return b.String()
}

// FormatGrade renders the outcome of a practice submission.
func FormatGrade(g practice.Grade) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Scenario %s\n", g.ScenarioID))
	for _, e := range g.Estimates {
		b.WriteString(fmt.Sprintf("  %-8s estimate %.2f | actual %s | diff %.2f (±%.2f) %s\n",
			e.Metric, e.Estimate, e.Display, e.Difference, e.Tolerance, e.Accuracy))
	}
	if g.AllCorrect {
		b.WriteString("All estimates within tolerance ✅\n")
	} else {
		b.WriteString("Some estimates were outside tolerance ❌\n")
	}
	return b.String()
}
