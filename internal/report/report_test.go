package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/calculator"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
	"FundLens/internal/practice"
)

func TestWriteCSV(t *testing.T) {
	d := model.DefaultFundData(2024)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, metrics.Evaluate(d), d))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+20+1+1+6)

	assert.Equal(t, "Metric,Value,Performance,Category", lines[0])
	assert.Equal(t, "TVPI,2.00x,good,fund", lines[1])
	assert.Equal(t, "", lines[21])
	assert.Equal(t, "Fund Data", lines[22])
	assert.Equal(t, "Fund Size,$100.0M", lines[23])
	assert.Equal(t, "Paid-In Capital,$80.0M", lines[24])
	assert.Equal(t, "Vintage Year,2019", lines[27])
	assert.Equal(t, "Number of Companies,25", lines[28])
}

func TestWriteCSV_QuotesNames(t *testing.T) {
	d := model.DefaultFundData(2024)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, metrics.Evaluate(d), d))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	for _, rec := range records[1:21] {
		assert.Len(t, rec, 4)
	}
}

func TestFormatTiles(t *testing.T) {
	out := FormatTiles(metrics.Evaluate(model.DefaultFundData(2024)), false)

	assert.Contains(t, out, "Fund Health: EXCELLENT (80% good or better)")
	assert.Contains(t, out, "excellent 10 | good 6 | poor 4")
	fund := strings.Index(out, "Fund Performance")
	deal := strings.Index(out, "Deal Metrics")
	port := strings.Index(out, "Portfolio Metrics")
	assert.True(t, fund >= 0 && fund < deal && deal < port)
	assert.NotContains(t, out, "\033[")
}

func TestFormatTiles_Color(t *testing.T) {
	out := FormatTiles(metrics.Evaluate(model.DefaultFundData(2024)), true)
	assert.Contains(t, out, ansiGreen+"EXCELLENT"+ansiReset)
	assert.Contains(t, out, ansiRed+"POOR"+ansiReset)
}

func TestRenderTiles(t *testing.T) {
	var buf bytes.Buffer
	res := metrics.Evaluate(model.DefaultFundData(2024))
	require.NoError(t, RenderTiles(&buf, res, false))
	assert.Equal(t, FormatTiles(res, false), buf.String())
}

func TestFormatCapitalFlow(t *testing.T) {
	out := FormatCapitalFlow(calculator.CapitalFlow(model.DefaultFundData(2024)))
	assert.Contains(t, out, "$20.0M")
	assert.Contains(t, out, "$160.0M")
	assert.Contains(t, out, "80.0% called")
	assert.Contains(t, out, "$21.3M") // realized gain 21.25M rounds half up
	assert.Contains(t, out, "$63.8M")
}

func TestFormatProgress(t *testing.T) {
	p := model.UserProgress{
		TotalAttempts: 12, CorrectEstimates: 9, Streak: 3,
		LastPracticeDate: "2024-05-02", XP: 114, Level: 2,
	}
	out := FormatProgress(p)
	assert.Contains(t, out, "Level 2 | 114 XP (86 to next level)")
	assert.Contains(t, out, "Accuracy: 75% (9/12 correct)")
	assert.Contains(t, out, "Dedicated Learner")
	assert.Contains(t, out, "On Fire")
	assert.NotContains(t, out, "Expert Level")
}

func TestFormatGrade(t *testing.T) {
	s, ok := practice.Find("seed-fund-1", 2024)
	require.True(t, ok)
	g := practice.GradeEstimates(s, map[model.MetricKey]float64{model.KeyTVPI: 2.1, model.KeyDPI: 0.33})
	out := FormatGrade(g)
	assert.Contains(t, out, "Scenario seed-fund-1")
	assert.Contains(t, out, "within tolerance")
}
