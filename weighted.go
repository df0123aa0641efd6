package riskstat

import (
	"fmt"
	"slices"
)

// WeightedReturn returns the series named name holding, on every row, the dot
// product of the row values with weights.
//
// There must be one weight per column of t; select the columns first with
// Table.Select. Weights are not required to sum to 1. A row with a missing
// value is NaN.
func WeightedReturn(t *Table, weights []float64, name string) (Series, error) {
	if len(weights) != len(t.cols) {
		return Series{}, fmt.Errorf("%d weights for %d columns: %w", len(weights), len(t.cols), ErrDimensionMismatch)
	}
	values := make([]float64, len(t.days))
	for i := range t.days {
		var sum float64
		for j, w := range weights {
			sum += t.cols[j][i] * w
		}
		values[i] = sum
	}
	return Series{name: name, days: slices.Clone(t.days), values: values}, nil
}

// EqualWeights returns n weights of 1/n each.
func EqualWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights
}
