package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/ingest"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	tableFlags
	output     string
	cumulative bool
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "convert a price table into daily returns" }
func (*returnsCmd) Usage() string {
	return `rstat returns -i <prices.csv> [-o <returns.csv>] [-cumulative]

  Reads closing prices, one column per instrument, and writes the daily
  percent change of each column. The first row has no prior price and is
  left empty. With -cumulative, writes the growth of one unit instead.

Usage Examples:
$ rstat returns -i sp500_history.csv -layout 2-Jan-06 -currency USD -o sp500_returns.csv

`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.StringVar(&c.output, "o", "", "output CSV file, stdout if empty")
	f.BoolVar(&c.cumulative, "cumulative", false, "write cumulative returns")
}

func (c *returnsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.missingInput() {
		return subcommands.ExitUsageError
	}
	prices, err := c.read()
	if err != nil {
		return fail("Error reading prices", err)
	}
	returns, err := riskstat.PercentChange(prices)
	if err != nil {
		return fail("Error computing returns", err)
	}
	if c.cumulative {
		returns = riskstat.CumulativeReturn(returns.DropIncomplete())
	}

	w := stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			return fail("Error creating output", err)
		}
		defer out.Close()
		w = out
	}
	if err := ingest.WriteCSV(w, returns); err != nil {
		return fail("Error writing returns", err)
	}
	return subcommands.ExitSuccess
}
