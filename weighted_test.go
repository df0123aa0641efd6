package riskstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedReturn(t *testing.T) {
	tbl := columns(t, []string{"a", "b"}, []float64{0.01, 0.02}, []float64{0.03, -0.01})

	got, err := WeightedReturn(tbl, []float64{0.5, 0.5}, "Weighted")
	require.NoError(t, err)

	assert.Equal(t, "Weighted", got.Name())
	assert.Equal(t, tbl.Days(), got.Days())
	v := got.Values()
	assert.InDelta(t, 0.02, v[0], 1e-12)
	assert.InDelta(t, 0.005, v[1], 1e-12)
}

func TestWeightedReturnEqualWeights(t *testing.T) {
	tbl := columns(t, []string{"AAPL", "COST", "GOOG"},
		[]float64{0.03, nan},
		[]float64{0.06, 0.01},
		[]float64{0.09, 0.02},
	)
	weights := EqualWeights(3)
	assert.InDelta(t, 1.0, weights[0]+weights[1]+weights[2], 1e-12)

	got, err := WeightedReturn(tbl, weights, "Weighted")
	require.NoError(t, err)
	v := got.Values()
	assert.InDelta(t, 0.06, v[0], 1e-12)
	assert.True(t, math.IsNaN(v[1]), "a missing value makes the row missing")

	with, err := tbl.WithColumn(got)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "COST", "GOOG", "Weighted"}, with.Names())
}

func TestWeightedReturnDimensionMismatch(t *testing.T) {
	tbl := columns(t, []string{"a", "b"}, []float64{0.01}, []float64{0.02})
	_, err := WeightedReturn(tbl, []float64{1}, "w")
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
