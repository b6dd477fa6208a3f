package calculator

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// NotAvailable is displayed for values that cannot be computed.
const NotAvailable = "N/A"

// FormatValue renders a metric value for display according to its unit.
func FormatValue(value float64, unit model.Unit) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}
	switch unit {
	case model.UnitMultiplier:
		return fixed(value, 2) + "x"
	case model.UnitPercentage:
		return fixed(value, 1) + "%"
	case model.UnitCurrency:
		return FormatMillions(value)
	case model.UnitYears:
		return fixed(value, 0) + " yrs"
	case model.UnitNumber:
		return fixed(value, 0)
	default:
		return fixed(value, 2)
	}
}

// FormatMillions renders a dollar amount as "$X.XM".
func FormatMillions(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}
	return "$" + fixed(value/1_000_000, 1) + "M"
}

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1100

// fixed rounds half away from zero on the exact binary value, so 1.125 reads
// 1.13 while 1.005 (stored just below) reads 1.00.
func fixed(v float64, prec int) string {
	d := decimal.RequireFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	s := d.Round(int32(prec)).StringFixed(int32(prec))
	// -0.0 would otherwise print with a sign
	if len(s) > 0 && s[0] == '-' && decimal.RequireFromString(s).IsZero() {
		return s[1:]
	}
	return s
}
