package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/analysis"
	"github.com/etnz/riskstat/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG")

func grid(t *testing.T, names []string, rows ...[]float64) *riskstat.Table {
	t.Helper()
	days := make([]date.Date, len(rows))
	for i := range rows {
		days[i] = date.New(2024, 3, 1).Add(i)
	}
	tab, err := riskstat.FromGrid(days, names, rows)
	require.NoError(t, err)
	return tab
}

func TestLine(t *testing.T) {
	tab := grid(t, []string{"a", "b"},
		[]float64{math.NaN(), 1},
		[]float64{1.01, 1.02},
		[]float64{1.03, 0.99},
		[]float64{1.02, 1.01},
	)
	img, err := Line(tab, "Cumulative")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngHeader))
}

func TestLineNoData(t *testing.T) {
	tab := grid(t, []string{"a"}, []float64{math.NaN()}, []float64{math.NaN()})
	_, err := Line(tab, "Empty")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBar(t *testing.T) {
	s, err := riskstat.NewSummary([]string{"a", "b", "c"}, []float64{1.2, math.NaN(), -0.3})
	require.NoError(t, err)
	img, err := Bar(s, "Sharpe")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngHeader))

	s, err = riskstat.NewSummary([]string{"a"}, []float64{math.NaN()})
	require.NoError(t, err)
	_, err = Bar(s, "Sharpe")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSplitNumber(t *testing.T) {
	tests := []struct{ n, want int }{{3, 3}, {12, 4}, {30, 10}, {31, 6}, {500, 6}}
	for _, tt := range tests {
		if got := splitNumber(tt.n); got != tt.want {
			t.Errorf("splitNumber(%d) = %d want %d", tt.n, got, tt.want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	returns := grid(t, []string{"a", "b"},
		[]float64{0.01, 0.02},
		[]float64{-0.01, 0.01},
		[]float64{0.02, -0.01},
		[]float64{0.00, 0.01},
		[]float64{0.01, 0.00},
	)
	rolling, err := riskstat.RollingStdDev(returns, 3)
	require.NoError(t, err)
	ewm, err := riskstat.EWMStdDev(returns, 2)
	require.NoError(t, err)
	sharpe, err := riskstat.AnnualizedSharpeRatio(returns, 252)
	require.NoError(t, err)
	a, _ := returns.Column("a")
	b, _ := returns.Column("b")
	// the beta window is longer than the data, the chart is skipped.
	beta, err := riskstat.Beta(a, b, 10)
	require.NoError(t, err)
	betas, err := riskstat.FromSeries(beta)
	require.NoError(t, err)

	r := &analysis.Report{
		Benchmark:     "b",
		RollingWindow: 3,
		BetaWindow:    10,
		Halflife:      2,
		Returns:       returns,
		Cumulative:    riskstat.CumulativeReturn(returns),
		RollingStdDev: rolling,
		EWMStdDev:     ewm,
		Sharpe:        sharpe,
		Beta:          betas,
	}

	dir := filepath.Join(t.TempDir(), "charts")
	written, err := WriteReport(dir, r)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "cumulative.png"),
		filepath.Join(dir, "ewm_std.png"),
		filepath.Join(dir, "rolling_std.png"),
		filepath.Join(dir, "sharpe.png"),
	}, written)
	for _, path := range written {
		img, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(img, pngHeader), path)
	}
}
