package riskstat

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Matrix is a square matrix with named rows and columns.
type Matrix struct {
	names  []string
	values [][]float64
}

// Names returns a copy of the row (and column) names.
func (m Matrix) Names() []string { return slices.Clone(m.names) }

// Len returns the number of rows.
func (m Matrix) Len() int { return len(m.names) }

// At returns the value at row i and column j.
func (m Matrix) At(i, j int) float64 { return m.values[i][j] }

// Get returns the value for the pair of names, NaN and false if one is unknown.
func (m Matrix) Get(a, b string) (float64, bool) {
	i, j := slices.Index(m.names, a), slices.Index(m.names, b)
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.values[i][j], true
}

// CorrelationMatrix returns the pairwise Pearson correlation of all the columns.
//
// Each pair uses the rows where both values are present. The matrix is
// symmetric and its diagonal is exactly 1 for any column with a nonzero
// variance. Pairs without two common observations or involving a constant
// column are NaN.
func CorrelationMatrix(t *Table) Matrix {
	n := len(t.cols)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c := correlation(t.cols[i], t.cols[j])
			if i == j && !math.IsNaN(c) {
				c = 1
			}
			values[i][j], values[j][i] = c, c
		}
	}
	return Matrix{names: slices.Clone(t.names), values: values}
}

func correlation(a, b []float64) float64 {
	var x, y []float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x, y = append(x, a[i]), append(y, b[i])
	}
	if len(x) < 2 || stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
