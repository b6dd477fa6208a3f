package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFundData_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FundData)
		errMsg string
		counts bool
	}{
		{"default is valid", func(*FundData) {}, "", false},
		{"negative fund size", func(d *FundData) { d.FundSize = -1 }, "negative values not allowed: fund_size", false},
		{"infinite paid-in", func(d *FundData) { d.PaidInCapital = math.Inf(1) }, "non-finite values not allowed: paid_in_capital", false},
		{"NaN ownership", func(d *FundData) { d.AverageOwnership = math.NaN() }, "non-finite values not allowed: average_ownership", false},
		{"negative infinity", func(d *FundData) { d.UnrealizedValue = math.Inf(-1) }, "non-finite values not allowed: unrealized_value", false},
		{"portfolio counts", func(d *FundData) { d.NumberOfExits = 30 }, "exits + write-offs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultFundData(2024)
			tt.mutate(&d)
			err := d.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
			assert.Equal(t, tt.counts, errors.Is(err, ErrPortfolioCounts))
		})
	}
}
