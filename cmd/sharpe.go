package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/date"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

type sharpeCmd struct {
	tableFlags
	periods   int
	frequency string
	raw       bool
}

func (*sharpeCmd) Name() string { return "sharpe" }
func (*sharpeCmd) Synopsis() string {
	return "annualized Sharpe ratio of each column of a returns table"
}
func (*sharpeCmd) Usage() string {
	return `rstat sharpe -i <returns.csv> [-periods <n> | -frequency <daily|weekly|monthly|quarterly|yearly>]

  Prints the annualized Sharpe ratio, mean return over standard deviation
  scaled by the square root of the number of periods per year, of every
  column. Rows with a missing value are dropped first.
`
}

func (c *sharpeCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.IntVar(&c.periods, "periods", 0, "periods per year, overrides -frequency")
	f.StringVar(&c.frequency, "frequency", "daily", "sampling frequency of the returns")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown")
}

func (c *sharpeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.missingInput() {
		return subcommands.ExitUsageError
	}
	periods := c.periods
	if periods == 0 {
		p, err := date.ParsePeriod(c.frequency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing frequency: %v\n", err)
			return subcommands.ExitUsageError
		}
		periods = p.PeriodsPerYear()
	}

	returns, err := c.read()
	if err != nil {
		return fail("Error reading returns", err)
	}
	s, err := riskstat.AnnualizedSharpeRatio(returns.DropIncomplete(), periods)
	if err != nil {
		return fail("Error computing Sharpe ratios", err)
	}
	printMarkdown(renderer.SummaryMarkdown("Annualized Sharpe Ratios", "Sharpe Ratio", s, renderer.Ratio), c.raw)
	return subcommands.ExitSuccess
}
