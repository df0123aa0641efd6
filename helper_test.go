package riskstat

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/riskstat/date"
	"github.com/stretchr/testify/require"
)

// day is a helper to create April 2019 dates.
func day(d int) date.Date { return date.New(2019, time.April, d) }

// days returns n consecutive days starting on 2019-01-01.
func days(n int) []date.Date {
	ds := make([]date.Date, n)
	for i := range ds {
		ds[i] = date.New(2019, time.January, 1).Add(i)
	}
	return ds
}

// columns is a helper to build a sorted table out of named columns of equal length.
func columns(t *testing.T, names []string, cols ...[]float64) *Table {
	t.Helper()
	require.Equal(t, len(names), len(cols))
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, len(cols))
		for j := range cols {
			rows[i][j] = cols[j][i]
		}
	}
	tbl, err := FromGrid(days(n), names, rows)
	require.NoError(t, err)
	return tbl
}

// wave returns n deterministic pseudo returns.
func wave(n int, phase, scale float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = scale * (math.Sin(float64(i)*0.7+phase) + 0.3*math.Cos(float64(i)*1.3))
	}
	return x
}

var nan = math.NaN()
