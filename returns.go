package riskstat

import (
	"fmt"
	"math"
	"slices"
)

// PercentChange returns the period over period change of a price table.
//
// The value on row t is (p[t]-p[t-1])/p[t-1]. The first row is NaN, and so is
// any row where one of the two prices is missing or the prior price is zero.
// The table must be sorted by date.
func PercentChange(prices *Table) (*Table, error) {
	if !prices.Sorted() {
		return nil, fmt.Errorf("percent change: %w", ErrUnsortedIndex)
	}
	return prices.mapColumns(percentChange), nil
}

func percentChange(col []float64) []float64 {
	out := make([]float64, len(col))
	for i := range col {
		if i == 0 || col[i-1] == 0 {
			out[i] = math.NaN()
			continue
		}
		// NaN on either side propagates.
		out[i] = (col[i] - col[i-1]) / col[i-1]
	}
	return out
}

// CumulativeReturn compounds a returns table.
//
// The value on row i is the product of (1+r[j]) for j <= i, the growth of one
// unit invested just before the first row. Missing returns are NaN in the
// output and do not interrupt the product.
func CumulativeReturn(returns *Table) *Table {
	return returns.mapColumns(func(col []float64) []float64 {
		out := make([]float64, len(col))
		acc := 1.0
		for i, r := range col {
			if math.IsNaN(r) {
				out[i] = math.NaN()
				continue
			}
			acc *= 1 + r
			out[i] = acc
		}
		return out
	})
}

// present returns the non NaN values of col.
func present(col []float64) []float64 {
	return slices.DeleteFunc(slices.Clone(col), math.IsNaN)
}
