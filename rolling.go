package riskstat

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/riskstat/date"
	"gonum.org/v1/gonum/stat"
)

// RollingStdDev returns, for each column, the sample standard deviation over
// a trailing window of rows ending on the current row.
//
// The first window-1 rows are NaN, and so is any row whose window holds a
// missing value. window must be at least 2 and the table sorted by date.
func RollingStdDev(t *Table, window int) (*Table, error) {
	if err := checkWindow(window, t.days); err != nil {
		return nil, err
	}
	return t.mapColumns(func(col []float64) []float64 {
		return rolling(window, col, nil, func(x, _ []float64) float64 { return stat.StdDev(x, nil) })
	}), nil
}

// RollingVariance returns the sample variance of s over a trailing window,
// with the same windowing rule as RollingStdDev.
func RollingVariance(s Series, window int) (Series, error) {
	if err := checkWindow(window, s.days); err != nil {
		return Series{}, err
	}
	values := rolling(window, s.values, nil, func(x, _ []float64) float64 { return stat.Variance(x, nil) })
	return Series{name: s.name, days: slices.Clone(s.days), values: values}, nil
}

// RollingCovariance returns the sample covariance of a and b over a trailing
// window. Both series must share the same index, otherwise it is an
// ErrMisalignedSeries.
func RollingCovariance(a, b Series, window int) (Series, error) {
	if !a.alignedWith(b) {
		return Series{}, fmt.Errorf("covariance of %q and %q: %w", a.name, b.name, ErrMisalignedSeries)
	}
	if err := checkWindow(window, a.days); err != nil {
		return Series{}, err
	}
	values := rolling(window, a.values, b.values, func(x, y []float64) float64 { return stat.Covariance(x, y, nil) })
	return Series{name: a.name, days: slices.Clone(a.days), values: values}, nil
}

// Beta returns the rolling beta of a against the benchmark b: the rolling
// covariance of a and b divided by the rolling variance of b.
//
// Rows where the variance of b is exactly zero are NaN.
func Beta(a, b Series, window int) (Series, error) {
	cov, err := RollingCovariance(a, b, window)
	if err != nil {
		return Series{}, err
	}
	variance, err := RollingVariance(b, window)
	if err != nil {
		return Series{}, err
	}
	for i, v := range variance.values {
		if v == 0 {
			cov.values[i] = math.NaN()
			continue
		}
		cov.values[i] /= v
	}
	return cov, nil
}

func checkWindow(window int, days []date.Date) error {
	if window < 2 {
		return fmt.Errorf("window %d must be at least 2: %w", window, ErrInvalidParameter)
	}
	if !date.IsSorted(days) {
		return fmt.Errorf("rolling window: %w", ErrUnsortedIndex)
	}
	return nil
}

// rolling evaluates f on every full trailing window of x (and y if not nil).
// Windows that are not full or hold a NaN give NaN.
func rolling(window int, x, y []float64, f func(x, y []float64) float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		start := i - window + 1
		if start < 0 {
			out[i] = math.NaN()
			continue
		}
		wx := x[start : i+1]
		var wy []float64
		if y != nil {
			wy = y[start : i+1]
		}
		if slices.ContainsFunc(wx, math.IsNaN) || slices.ContainsFunc(wy, math.IsNaN) {
			out[i] = math.NaN()
			continue
		}
		out[i] = f(wx, wy)
	}
	return out
}
