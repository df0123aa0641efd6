package riskstat

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// AnnualizedSharpeRatio returns, for each column of a returns table,
// (mean*P) / (std*sqrt(P)) where P is periodsPerYear.
//
// periodsPerYear depends on the sampling of the returns, typically 252 for
// daily trading data. A column with a zero standard deviation, or fewer than
// two values, is an ErrInsufficientData.
func AnnualizedSharpeRatio(returns *Table, periodsPerYear int) (Summary, error) {
	if periodsPerYear <= 0 {
		return Summary{}, fmt.Errorf("periods per year %d: %w", periodsPerYear, ErrInvalidParameter)
	}
	p := float64(periodsPerYear)
	values := make([]float64, len(returns.cols))
	for j, col := range returns.cols {
		x := present(col)
		if len(x) < 2 {
			return Summary{}, fmt.Errorf("sharpe ratio of %q needs 2 values, got %d: %w", returns.names[j], len(x), ErrInsufficientData)
		}
		mean, std := stat.MeanStdDev(x, nil)
		if std == 0 {
			return Summary{}, fmt.Errorf("sharpe ratio of %q has zero volatility: %w", returns.names[j], ErrInsufficientData)
		}
		values[j] = (mean * p) / (std * math.Sqrt(p))
	}
	return Summary{names: slices.Clone(returns.names), values: values}, nil
}
