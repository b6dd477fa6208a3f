package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"FundLens/internal/calculator"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
)

// WriteCSV writes every metric in catalog order followed by a Fund Data
// section with the headline inputs.
func WriteCSV(w io.Writer, results metrics.Results, d model.FundData) error {
	cw := csv.NewWriter(w)

	rows := [][]string{{"Metric", "Value", "Performance", "Category"}}
	for _, r := range results.Ordered() {
		rows = append(rows, []string{r.Name, r.DisplayValue, string(r.Performance), string(r.Category)})
	}
	rows = append(rows,
		[]string{},
		[]string{"Fund Data"},
		[]string{"Fund Size", calculator.FormatMillions(d.FundSize)},
		[]string{"Paid-In Capital", calculator.FormatMillions(d.PaidInCapital)},
		[]string{"Distributed Capital", calculator.FormatMillions(d.DistributedCapital)},
		[]string{"Unrealized Value", calculator.FormatMillions(d.UnrealizedValue)},
		[]string{"Vintage Year", strconv.Itoa(d.VintageYear)},
		[]string{"Number of Companies", strconv.Itoa(d.NumberOfCompanies)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
