// Package chart renders tables and summaries of the analysis as PNG charts.
package chart

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/analysis"
	"github.com/vicanso/go-charts/v2"
)

// ErrNoData is returned when there is nothing left to plot.
var ErrNoData = errors.New("no data to plot")

// labelFormat is the date layout of the x axis.
const labelFormat = "Jan 02 '06"

// Line renders one line per column of t. Rows holding a NaN are dropped first.
func Line(t *riskstat.Table, title string) ([]byte, error) {
	t = t.DropIncomplete()
	if t.Len() == 0 || len(t.Names()) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoData)
	}

	names := t.Names()
	values := make([][]float64, len(names))
	var labels []string
	for on, row := range t.Rows() {
		labels = append(labels, on.Format(labelFormat))
		for j, v := range row {
			values[j] = append(values[j], v)
		}
	}

	p, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: splitNumber(len(labels)),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: names,
			Top:  charts.PositionBottom,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart %q: %w", title, err)
	}
	return p.Bytes()
}

// Bar renders one bar per entry of s. NaN entries are skipped.
func Bar(s riskstat.Summary, title string) ([]byte, error) {
	var names []string
	var values []float64
	for name, v := range s.All() {
		if math.IsNaN(v) {
			continue
		}
		names = append(names, name)
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoData)
	}

	p, err := charts.BarRender([][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(names),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart %q: %w", title, err)
	}
	return p.Bytes()
}

// splitNumber returns the number of x axis labels for n points.
func splitNumber(n int) int {
	if n <= 30 {
		return max(n/3, 3)
	}
	return 6
}

// plot is a chart file and the function rendering it.
type plot struct {
	file   string
	render func() ([]byte, error)
}

// WriteReport writes the charts of r as PNG files in dir, which is created if
// needed. It returns the paths of the files written.
//
// Charts without any complete row, like a rolling beta over a too short
// period, are skipped.
func WriteReport(dir string, r *analysis.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	plots := []plot{
		{"cumulative.png", func() ([]byte, error) { return Line(r.Cumulative, "Cumulative Returns") }},
		{"rolling_std.png", func() ([]byte, error) {
			return Line(r.RollingStdDev, fmt.Sprintf("%d-Day Rolling Standard Deviation", r.RollingWindow))
		}},
		{"ewm_std.png", func() ([]byte, error) {
			return Line(r.EWMStdDev, fmt.Sprintf("Exponentially Weighted Standard Deviation (half-life %g)", r.Halflife))
		}},
		{"sharpe.png", func() ([]byte, error) { return Bar(r.Sharpe, "Annualized Sharpe Ratios") }},
	}
	if r.Beta != nil && len(r.Beta.Names()) > 0 {
		plots = append(plots, plot{"beta.png", func() ([]byte, error) {
			return Line(r.Beta, fmt.Sprintf("%d-Day Rolling Beta against %s", r.BetaWindow, r.Benchmark))
		}})
	}

	var written []string
	for _, c := range plots {
		img, err := c.render()
		if err != nil {
			if errors.Is(err, ErrNoData) {
				continue
			}
			return written, err
		}
		path := filepath.Join(dir, c.file)
		if err := os.WriteFile(path, img, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	slices.Sort(written)
	return written, nil
}
