package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/riskstat/analysis"
	"github.com/etnz/riskstat/chart"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type analyzeCmd struct {
	config     string
	charts     string
	raw        bool
	investment float64
	currency   string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run the complete analysis described by a YAML file" }
func (*analyzeCmd) Usage() string {
	return `rstat analyze -config <file.yaml> [-charts <dir>] [-raw]

  Loads every source of the configuration, derives daily returns, builds the
  weighted portfolios, aligns everything on common dates and prints a report:
  cumulative returns, volatility, correlation, rolling beta and Sharpe ratios.

Usage Examples:
# Prints the report and writes the charts in ./charts
$ rstat analyze -config whale.yaml -charts charts

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "analysis configuration file (YAML)")
	f.StringVar(&c.charts, "charts", "", "directory where to write PNG charts")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown")
	f.Float64Var(&c.investment, "investment", 10000, "initial investment to show the growth of, 0 to hide it")
	f.StringVar(&c.currency, "currency", "USD", "currency of the initial investment")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.config == "" {
		fmt.Fprintln(os.Stderr, "-config is required")
		return subcommands.ExitUsageError
	}

	log, err := newLogger()
	if err != nil {
		return fail("Error creating logger", err)
	}
	defer log.Sync()

	cfg, err := analysis.Load(c.config)
	if err != nil {
		return fail("Error loading configuration", err)
	}
	report, err := analysis.Run(cfg, analysis.Options{Logger: log})
	if err != nil {
		return fail("Error running analysis", err)
	}

	printMarkdown(renderer.ReportMarkdown(report, renderer.ReportOptions{
		Investment: c.investment,
		Currency:   c.currency,
	}), c.raw)

	if c.charts != "" {
		written, err := chart.WriteReport(c.charts, report)
		if err != nil {
			return fail("Error writing charts", err)
		}
		log.Info("charts written", zap.String("dir", c.charts), zap.Strings("files", written))
	}
	return subcommands.ExitSuccess
}
