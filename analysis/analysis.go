// Package analysis runs a complete returns and risk analysis described by a
// YAML configuration: load every source, derive returns, build the weighted
// portfolios, align everything on common dates and compute the statistics.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/date"
	"github.com/etnz/riskstat/ingest"
	"go.uber.org/zap"
)

// Options tune a Run.
type Options struct {
	// Logger receives progress information, nothing is logged if nil.
	Logger *zap.Logger
}

// Report holds every result of an analysis.
type Report struct {
	Title          string
	Benchmark      string
	PeriodsPerYear int
	RollingWindow  int
	BetaWindow     int
	Halflife       float64

	// Span is the date range common to all sources.
	Span date.Range

	// Returns is the combined, aligned, daily returns table.
	Returns    *riskstat.Table
	Cumulative *riskstat.Table

	StdDev           riskstat.Summary
	AnnualizedStdDev riskstat.Summary
	// Riskier lists the columns with a higher standard deviation than the benchmark.
	Riskier []string
	Boxes   []riskstat.Box

	RollingStdDev *riskstat.Table
	EWMStdDev     *riskstat.Table
	Correlation   riskstat.Matrix
	// Beta holds one column per configured asset: its rolling beta against the benchmark.
	Beta *riskstat.Table

	// Sharpe holds the annualized Sharpe ratios, NaN for columns without volatility.
	Sharpe riskstat.Summary
}

// Run executes the analysis described by c.
func Run(c *Config, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tables := make([]*riskstat.Table, 0, len(c.Sources))
	for _, s := range c.Sources {
		t, err := loadSource(s, log)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", s.Name, err)
		}
		for _, p := range c.Portfolios {
			if p.Source != s.Name {
				continue
			}
			if t, err = addPortfolio(t, p); err != nil {
				return nil, fmt.Errorf("portfolio %q: %w", p.Name, err)
			}
			log.Debug("portfolio built", zap.String("portfolio", p.Name), zap.String("source", s.Name))
		}
		tables = append(tables, t)
	}

	combined, err := riskstat.InnerJoin(tables...)
	if err != nil {
		return nil, err
	}
	span, ok := date.Span(combined.Days())
	if !ok {
		return nil, fmt.Errorf("sources have no date in common: %w", riskstat.ErrInsufficientData)
	}
	log.Info("sources joined",
		zap.Int("rows", combined.Len()),
		zap.Strings("columns", combined.Names()),
		zap.Stringer("from", span.From),
		zap.Stringer("to", span.To),
	)

	r := &Report{
		Title:          c.Title,
		Benchmark:      c.Benchmark,
		PeriodsPerYear: c.PeriodsPerYear,
		RollingWindow:  c.RollingWindow,
		BetaWindow:     c.BetaWindow,
		Halflife:       c.Halflife,
		Span:           span,
		Returns:        combined,
		Cumulative:     riskstat.CumulativeReturn(combined),
		Correlation:    riskstat.CorrelationMatrix(combined),
	}
	if err := r.computeRisk(combined, c); err != nil {
		return nil, err
	}
	if r.Sharpe, err = sharpeRatios(combined, c.PeriodsPerYear, log); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Report) computeRisk(combined *riskstat.Table, c *Config) error {
	var err error
	if r.StdDev, err = riskstat.StdDev(combined); err != nil {
		return err
	}
	if r.AnnualizedStdDev, err = riskstat.AnnualizedStdDev(combined, c.PeriodsPerYear); err != nil {
		return err
	}
	if r.Boxes, err = riskstat.Quartiles(combined); err != nil {
		return err
	}
	if r.RollingStdDev, err = riskstat.RollingStdDev(combined, c.RollingWindow); err != nil {
		return err
	}
	if r.EWMStdDev, err = riskstat.EWMStdDev(combined, c.Halflife); err != nil {
		return err
	}
	if c.Benchmark == "" {
		return nil
	}
	if r.Riskier, err = r.StdDev.Greater(c.Benchmark); err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}
	market, err := combined.Column(c.Benchmark)
	if err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}
	betas := make([]riskstat.Series, 0, len(c.Beta))
	for _, name := range c.Beta {
		asset, err := combined.Column(name)
		if err != nil {
			return fmt.Errorf("beta: %w", err)
		}
		beta, err := riskstat.Beta(asset, market, c.BetaWindow)
		if err != nil {
			return fmt.Errorf("beta of %q: %w", name, err)
		}
		betas = append(betas, beta)
	}
	r.Beta, err = riskstat.FromSeries(betas...)
	return err
}

// sharpeRatios computes the ratio column by column so that a single column
// without volatility is reported as NaN instead of failing the analysis.
func sharpeRatios(t *riskstat.Table, periodsPerYear int, log *zap.Logger) (riskstat.Summary, error) {
	names := t.Names()
	values := make([]float64, len(names))
	for i, name := range names {
		col, err := t.Select(name)
		if err != nil {
			return riskstat.Summary{}, err
		}
		s, err := riskstat.AnnualizedSharpeRatio(col, periodsPerYear)
		switch {
		case errors.Is(err, riskstat.ErrInsufficientData):
			log.Warn("sharpe ratio undefined", zap.String("column", name), zap.Error(err))
			values[i] = math.NaN()
		case err != nil:
			return riskstat.Summary{}, err
		default:
			values[i], _ = s.Get(name)
		}
	}
	return riskstat.NewSummary(names, values)
}

func loadSource(s SourceConfig, log *zap.Logger) (*riskstat.Table, error) {
	var t *riskstat.Table
	var err error
	switch s.Format {
	case "json":
		t, err = ingest.ReadJSONFile(s.Path, ingest.JSONOptions{
			Dates:      s.Dates,
			DateLayout: s.DateLayout,
			Columns:    s.Paths,
			Currency:   s.Currency,
		})
		if err == nil && len(s.Rename) > 0 {
			t, err = renameAll(t, s.Rename)
		}
	default:
		t, err = ingest.ReadCSVFile(s.Path, ingest.CSVOptions{
			Date:       s.Date,
			DateLayout: s.DateLayout,
			Columns:    s.Columns,
			Rename:     s.Rename,
			Currency:   s.Currency,
			Symbol:     s.Symbol,
			Value:      s.Value,
		})
	}
	if err != nil {
		return nil, err
	}

	read := t.Len()
	t = t.SortByDate()
	if s.Kind == Prices {
		if t, err = riskstat.PercentChange(t); err != nil {
			return nil, err
		}
	}
	t = t.DropIncomplete()
	log.Info("source loaded",
		zap.String("source", s.Name),
		zap.String("kind", s.Kind),
		zap.Int("rows", read),
		zap.Int("dropped", read-t.Len()),
	)
	return t, nil
}

func renameAll(t *riskstat.Table, names map[string]string) (*riskstat.Table, error) {
	for _, from := range t.Names() {
		if to, ok := names[from]; ok {
			var err error
			if t, err = t.Rename(from, to); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func addPortfolio(t *riskstat.Table, p PortfolioConfig) (*riskstat.Table, error) {
	columns := p.Columns
	if len(columns) == 0 {
		columns = t.Names()
	}
	assets, err := t.Select(columns...)
	if err != nil {
		return nil, err
	}
	weights := p.Weights
	if len(weights) == 0 {
		weights = riskstat.EqualWeights(len(columns))
	}
	w, err := riskstat.WeightedReturn(assets, weights, p.Name)
	if err != nil {
		return nil, err
	}
	if t, err = t.WithColumn(w); err != nil {
		return nil, err
	}
	return t.DropIncomplete(), nil
}
