package riskstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualizedSharpeRatio(t *testing.T) {
	tbl := columns(t, []string{"sp500"}, []float64{-0.01, 0.02, -0.005})

	got, err := AnnualizedSharpeRatio(tbl, 252)
	require.NoError(t, err)
	sharpe, ok := got.Get("sp500")
	require.True(t, ok)

	// mean*252 = 0.42, std*sqrt(252) = 0.255147
	assert.InDelta(t, 0.42/(0.01607275*math.Sqrt(252)), sharpe, 1e-5)
	assert.InDelta(t, 1.64611, sharpe, 1e-4)
}

func TestAnnualizedSharpeRatioPeriods(t *testing.T) {
	tbl := columns(t, []string{"a"}, wave(50, 0.2, 0.01))
	daily, err := AnnualizedSharpeRatio(tbl, 252)
	require.NoError(t, err)
	custom, err := AnnualizedSharpeRatio(tbl, 237)
	require.NoError(t, err)

	d, _ := daily.Get("a")
	c, _ := custom.Get("a")
	// the ratio scales with sqrt(periodsPerYear).
	assert.InDelta(t, d/math.Sqrt(252), c/math.Sqrt(237), 1e-12)
}

func TestAnnualizedSharpeRatioErrors(t *testing.T) {
	flat := columns(t, []string{"cash"}, []float64{0.5, 0.5, 0.5})
	_, err := AnnualizedSharpeRatio(flat, 252)
	assert.ErrorIs(t, err, ErrInsufficientData)

	short := columns(t, []string{"a"}, []float64{0.01, nan})
	_, err = AnnualizedSharpeRatio(short, 252)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = AnnualizedSharpeRatio(short, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestMean(t *testing.T) {
	tbl := columns(t, []string{"a"}, []float64{1, nan, 3})
	got, err := Mean(tbl)
	require.NoError(t, err)
	m, _ := got.Get("a")
	assert.Equal(t, 2.0, m)
}
