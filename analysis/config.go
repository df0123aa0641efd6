package analysis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/riskstat/date"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	Prices  = "prices"
	Returns = "returns"
)

// Config is the on-disk configuration shape (YAML) of an analysis.
type Config struct {
	Title string `yaml:"title"`

	// Frequency of the observations (daily, weekly...), used to default PeriodsPerYear.
	Frequency      string  `yaml:"frequency"`
	PeriodsPerYear int     `yaml:"periods_per_year"`
	RollingWindow  int     `yaml:"rolling_window"`
	BetaWindow     int     `yaml:"beta_window"`
	Halflife       float64 `yaml:"halflife"`

	// Benchmark is the column every portfolio is compared to.
	Benchmark string `yaml:"benchmark"`
	// Beta lists the columns whose rolling beta against the benchmark is computed.
	Beta []string `yaml:"beta"`

	Sources    []SourceConfig    `yaml:"sources"`
	Portfolios []PortfolioConfig `yaml:"portfolios"`
}

// SourceConfig describes one input file.
type SourceConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	// Kind is either "prices" (returns are derived) or "returns" (default).
	Kind string `yaml:"kind"`
	// Format is "csv" or "json", guessed from the file extension if empty.
	Format string `yaml:"format"`

	Date       string            `yaml:"date_column"`
	DateLayout string            `yaml:"date_layout"`
	Currency   string            `yaml:"currency"`
	Columns    []string          `yaml:"columns"`
	Rename     map[string]string `yaml:"rename"`

	// Long CSV layout.
	Symbol string `yaml:"symbol_column"`
	Value  string `yaml:"value_column"`

	// JSON documents.
	Dates string            `yaml:"dates"`
	Paths map[string]string `yaml:"paths"`
}

// PortfolioConfig builds a weighted portfolio out of columns of a source.
type PortfolioConfig struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Columns of the source, all of them if empty.
	Columns []string `yaml:"columns"`
	// Weights, one per column. Equal weights if empty.
	Weights []float64 `yaml:"weights"`
}

// Load reads, completes with defaults and validates a configuration file.
// Relative source paths are resolved against the configuration file directory.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range c.Sources {
		if p := c.Sources[i].Path; p != "" && !filepath.IsAbs(p) {
			c.Sources[i].Path = filepath.Join(dir, p)
		}
	}
	return c, nil
}

// Parse decodes a YAML configuration, applies the defaults and validates it.
func Parse(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.setDefaults(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) setDefaults() error {
	if c.Title == "" {
		c.Title = "Portfolio analysis"
	}
	if c.Frequency == "" {
		c.Frequency = date.Daily.String()
	}
	if c.PeriodsPerYear == 0 {
		p, err := date.ParsePeriod(c.Frequency)
		if err != nil {
			return err
		}
		c.PeriodsPerYear = p.PeriodsPerYear()
	}
	if c.RollingWindow == 0 {
		c.RollingWindow = 21
	}
	if c.BetaWindow == 0 {
		c.BetaWindow = 60
	}
	if c.Halflife == 0 {
		c.Halflife = 21
	}
	for i := range c.Sources {
		s := &c.Sources[i]
		if s.Kind == "" {
			s.Kind = Returns
		}
		if s.Format == "" {
			s.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(s.Path)), ".")
		}
	}
	return nil
}

// Validate checks the configuration is complete and consistent.
func (c *Config) Validate() error {
	var errs []error
	if c.PeriodsPerYear <= 0 {
		errs = append(errs, fmt.Errorf("periods_per_year must be positive, got %d", c.PeriodsPerYear))
	}
	if c.RollingWindow < 2 {
		errs = append(errs, fmt.Errorf("rolling_window must be at least 2, got %d", c.RollingWindow))
	}
	if c.BetaWindow < 2 {
		errs = append(errs, fmt.Errorf("beta_window must be at least 2, got %d", c.BetaWindow))
	}
	if c.Halflife <= 0 {
		errs = append(errs, fmt.Errorf("halflife must be positive, got %v", c.Halflife))
	}
	if len(c.Sources) == 0 {
		errs = append(errs, errors.New("at least one source is required"))
	}
	if len(c.Beta) > 0 && c.Benchmark == "" {
		errs = append(errs, errors.New("beta requires a benchmark"))
	}

	names := make(map[string]bool)
	for i, s := range c.Sources {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("sources[%d]: name is required", i))
		} else if names[s.Name] {
			errs = append(errs, fmt.Errorf("sources[%d]: duplicate name %q", i, s.Name))
		}
		names[s.Name] = true
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("source %q: path is required", s.Name))
		}
		if s.Kind != Prices && s.Kind != Returns {
			errs = append(errs, fmt.Errorf("source %q: kind must be %q or %q, got %q", s.Name, Prices, Returns, s.Kind))
		}
		switch s.Format {
		case "csv":
			if (s.Symbol == "") != (s.Value == "") {
				errs = append(errs, fmt.Errorf("source %q: symbol_column and value_column go together", s.Name))
			}
		case "json":
			if s.Dates == "" || len(s.Paths) == 0 {
				errs = append(errs, fmt.Errorf("source %q: json sources need dates and paths", s.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("source %q: unknown format %q", s.Name, s.Format))
		}
	}
	for i, p := range c.Portfolios {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("portfolios[%d]: name is required", i))
		}
		if !names[p.Source] {
			errs = append(errs, fmt.Errorf("portfolio %q: unknown source %q", p.Name, p.Source))
		}
	}
	return errors.Join(errs...)
}
