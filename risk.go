package riskstat

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// StdDev returns the sample standard deviation (N-1 denominator) of each
// column. Missing values are skipped; a column with fewer than two values is
// an ErrInsufficientData.
func StdDev(t *Table) (Summary, error) {
	return aggregate(t, "standard deviation", 2, func(x []float64) float64 { return stat.StdDev(x, nil) })
}

// Mean returns the arithmetic mean of each column, missing values skipped.
func Mean(t *Table) (Summary, error) {
	return aggregate(t, "mean", 1, func(x []float64) float64 { return stat.Mean(x, nil) })
}

// AnnualizedStdDev returns StdDev scaled by the square root of periodsPerYear.
func AnnualizedStdDev(t *Table, periodsPerYear int) (Summary, error) {
	if periodsPerYear <= 0 {
		return Summary{}, fmt.Errorf("periods per year %d: %w", periodsPerYear, ErrInvalidParameter)
	}
	std, err := StdDev(t)
	if err != nil {
		return Summary{}, err
	}
	return std.Scale(math.Sqrt(float64(periodsPerYear))), nil
}

// aggregate applies f on the present values of every column, requiring at
// least need of them.
func aggregate(t *Table, what string, need int, f func([]float64) float64) (Summary, error) {
	values := make([]float64, len(t.cols))
	for j, col := range t.cols {
		x := present(col)
		if len(x) < need {
			return Summary{}, fmt.Errorf("%s of %q needs %d values, got %d: %w", what, t.names[j], need, len(x), ErrInsufficientData)
		}
		values[j] = f(x)
	}
	return Summary{names: slices.Clone(t.names), values: values}, nil
}

// Box holds the five numbers of a box plot.
type Box struct {
	Min, Q1, Median, Q3, Max float64
}

// Quartiles returns the box plot numbers of each column, in column order.
// Missing values are skipped.
//
// The quantile p of n sorted values is interpolated at the position p*(n-1)
// between its two neighbors, the convention of box plots.
func Quartiles(t *Table) ([]Box, error) {
	boxes := make([]Box, len(t.cols))
	for j, col := range t.cols {
		x := present(col)
		if len(x) == 0 {
			return nil, fmt.Errorf("quartiles of %q: %w", t.names[j], ErrInsufficientData)
		}
		slices.Sort(x)
		boxes[j] = Box{
			Min:    x[0],
			Q1:     quantile(x, 0.25),
			Median: quantile(x, 0.5),
			Q3:     quantile(x, 0.75),
			Max:    x[len(x)-1],
		}
	}
	return boxes, nil
}

// quantile interpolates the quantile p of the sorted values x.
func quantile(x []float64, p float64) float64 {
	h := p * float64(len(x)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(x) {
		return x[i]
	}
	return x[i] + (h-lo)*(x[i+1]-x[i])
}

// EWMStdDev returns the exponentially weighted standard deviation of each
// column, evaluated on every row.
//
// On row t the observation k rows back weighs 0.5^(k/halflife). The variance
// is the unbiased weighted variance sum(w(x-m)^2) / (sum(w) - sum(w^2)/sum(w)).
// Missing observations are skipped but still count in k. Rows with fewer than
// two observations are NaN.
func EWMStdDev(t *Table, halflife float64) (*Table, error) {
	if !(halflife > 0) || math.IsInf(halflife, 0) {
		return nil, fmt.Errorf("half-life %v: %w", halflife, ErrInvalidParameter)
	}
	if !t.Sorted() {
		return nil, fmt.Errorf("ewm std: %w", ErrUnsortedIndex)
	}
	decay := math.Pow(0.5, 1/halflife)
	return t.mapColumns(func(col []float64) []float64 { return ewmStdDev(col, decay) }), nil
}

func ewmStdDev(col []float64, decay float64) []float64 {
	out := make([]float64, len(col))
	xs := make([]float64, 0, len(col))
	ws := make([]float64, 0, len(col))
	for i := range col {
		xs, ws = xs[:0], ws[:0]
		w := 1.0
		for k := i; k >= 0; k-- {
			if !math.IsNaN(col[k]) {
				xs = append(xs, col[k])
				ws = append(ws, w)
			}
			w *= decay
		}
		out[i] = weightedStdDev(xs, ws)
	}
	return out
}

// weightedStdDev is the bias corrected standard deviation of xs under
// reliability weights ws.
func weightedStdDev(xs, ws []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	m := stat.Mean(xs, ws)
	var sumW, sumW2, ss float64
	for i, x := range xs {
		sumW += ws[i]
		sumW2 += ws[i] * ws[i]
		ss += ws[i] * (x - m) * (x - m)
	}
	den := sumW - sumW2/sumW
	if den <= 0 {
		return math.NaN()
	}
	return math.Sqrt(ss / den)
}
