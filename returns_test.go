package riskstat

import (
	"math"
	"testing"

	"github.com/etnz/riskstat/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	prices := columns(t, []string{"close"}, []float64{100, 110, 99, 0, 5, nan, 7})

	got, err := PercentChange(prices)
	require.NoError(t, err)
	col, err := got.Column("close")
	require.NoError(t, err)
	r := col.Values()

	assert.True(t, math.IsNaN(r[0]), "first row is undefined")
	assert.InDelta(t, 0.10, r[1], 1e-12)
	assert.InDelta(t, -0.10, r[2], 1e-12)
	assert.InDelta(t, -1.0, r[3], 1e-12)
	assert.True(t, math.IsNaN(r[4]), "change from a zero price is NaN")
	assert.True(t, math.IsNaN(r[5]), "missing price gives NaN")
	assert.True(t, math.IsNaN(r[6]), "missing prior price gives NaN")
}

func TestPercentChangeUnsorted(t *testing.T) {
	tbl, err := FromGrid([]date.Date{day(2), day(1)}, []string{"close"}, [][]float64{{2}, {1}})
	require.NoError(t, err)
	_, err = PercentChange(tbl)
	assert.ErrorIs(t, err, ErrUnsortedIndex)
}

// TestReconstructPrices checks that compounding the returns of a price series
// gives back the prices.
func TestReconstructPrices(t *testing.T) {
	p := []float64{100, 102, 99.5, 105.25, 110, 93.1, 94}
	prices := columns(t, []string{"close"}, p)

	returns, err := PercentChange(prices)
	require.NoError(t, err)
	cum := CumulativeReturn(returns.DropIncomplete())

	col, err := cum.Column("close")
	require.NoError(t, err)
	require.Equal(t, len(p)-1, col.Len())
	for i, c := range col.Values() {
		assert.InDelta(t, p[i+1], c*p[0], 1e-9, "row %d", i)
	}
}

func TestCumulativeReturn(t *testing.T) {
	tbl := columns(t, []string{"a"}, []float64{0.1, nan, -0.5, 1})
	col, err := CumulativeReturn(tbl).Column("a")
	require.NoError(t, err)
	got := col.Values()

	assert.InDelta(t, 1.1, got[0], 1e-12)
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 0.55, got[2], 1e-12)
	assert.InDelta(t, 1.1, got[3], 1e-12)
}
