package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/analysis"
	md "github.com/nao1215/markdown"
)

// ReportOptions tune the markdown report.
type ReportOptions struct {
	// Investment is the initial amount used to show the growth of each column.
	// The growth column is omitted when zero.
	Investment float64
	Currency   string // ISO code of the investment, defaults to USD.
}

// ReportMarkdown renders an analysis report to a markdown string.
func ReportMarkdown(r *analysis.Report, opts ReportOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Title)
	doc.PlainText(fmt.Sprintf("%d common days over %d calendar days, from %s, %d periods per year.", r.Returns.Len(), r.Span.Days(), r.Span, r.PeriodsPerYear))
	if r.Benchmark != "" {
		doc.PlainText(fmt.Sprintf("Benchmark: %s", md.Bold(r.Benchmark)))
	}

	names := r.Returns.Names()

	doc.H2("Performance")
	header := []string{"Name", "Cumulative Return", "Sharpe Ratio"}
	align := []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight}
	if opts.Investment != 0 {
		header = append(header, "Growth of "+formatMoney(opts.Investment, opts.Currency))
		align = append(align, md.AlignRight)
	}
	perf := md.TableSet{Header: header, Alignment: align}
	last := r.Cumulative.Len() - 1
	for _, name := range names {
		growth := math.NaN()
		if last >= 0 {
			growth = r.Cumulative.Value(last, name)
		}
		sharpe, _ := r.Sharpe.Get(name)
		row := []string{name, percent(growth - 1), ratio(sharpe)}
		if opts.Investment != 0 {
			row = append(row, formatMoney(opts.Investment*growth, opts.Currency))
		}
		perf.Rows = append(perf.Rows, row)
	}
	doc.Table(perf)

	doc.H2("Volatility")
	vol := md.TableSet{
		Header:    []string{"Name", "Std Dev", "Annualized", "Min", "Q1", "Median", "Q3", "Max"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
	}
	for j, name := range names {
		std, _ := r.StdDev.Get(name)
		annual, _ := r.AnnualizedStdDev.Get(name)
		row := []string{name, percent(std), percent(annual)}
		if j < len(r.Boxes) {
			b := r.Boxes[j]
			row = append(row, percent(b.Min), percent(b.Q1), percent(b.Median), percent(b.Q3), percent(b.Max))
		}
		vol.Rows = append(vol.Rows, row)
	}
	doc.Table(vol)
	if r.Benchmark != "" {
		if len(r.Riskier) == 0 {
			doc.PlainText(fmt.Sprintf("No column is riskier than %s.", r.Benchmark))
		} else {
			doc.PlainText(fmt.Sprintf("Riskier than %s: %s.", r.Benchmark, strings.Join(r.Riskier, ", ")))
		}
	}

	doc.H2("Recent Volatility")
	doc.PlainText(fmt.Sprintf("Latest %d-day rolling and %g-day half-life exponentially weighted standard deviations.", r.RollingWindow, r.Halflife))
	recent := md.TableSet{
		Header:    []string{"Name", "Rolling", "EWM"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
	}
	for _, name := range names {
		recent.Rows = append(recent.Rows, []string{name, percent(latest(r.RollingStdDev, name)), percent(latest(r.EWMStdDev, name))})
	}
	doc.Table(recent)

	doc.H2("Correlation")
	doc.Table(matrixTable(r.Correlation))

	if r.Beta != nil && len(r.Beta.Names()) > 0 {
		doc.H2("Beta")
		doc.PlainText(fmt.Sprintf("Rolling %d-day beta against %s.", r.BetaWindow, r.Benchmark))
		beta := md.TableSet{
			Header:    []string{"Name", "Latest", "Average"},
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		}
		for _, name := range r.Beta.Names() {
			beta.Rows = append(beta.Rows, []string{name, ratio(latest(r.Beta, name)), ratio(average(r.Beta, name))})
		}
		doc.Table(beta)
	}

	return doc.String()
}

// latest returns the last valid value of a column, NaN if there is none.
func latest(t *riskstat.Table, name string) float64 {
	if t == nil {
		return math.NaN()
	}
	for i := t.Len() - 1; i >= 0; i-- {
		if v := t.Value(i, name); !math.IsNaN(v) {
			return v
		}
	}
	return math.NaN()
}

// average returns the mean of the valid values of a column.
func average(t *riskstat.Table, name string) float64 {
	var sum float64
	var n int
	for i := range t.Len() {
		if v := t.Value(i, name); !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// missing is printed in place of NaN.
const missing = "-"

func percent(v float64) string {
	if math.IsNaN(v) {
		return missing
	}
	return fmt.Sprintf("%+.2f%%", v*100)
}

func ratio(v float64) string {
	if math.IsNaN(v) {
		return missing
	}
	return fmt.Sprintf("%.2f", v)
}

func formatMoney(v float64, currency string) string {
	if math.IsNaN(v) {
		return missing
	}
	if currency == "" {
		currency = money.USD
	}
	return money.NewFromFloat(v, currency).Display()
}
