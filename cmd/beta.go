package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

type betaCmd struct {
	tableFlags
	asset     string
	benchmark string
	window    int
	tail      int
	raw       bool
}

func (*betaCmd) Name() string     { return "beta" }
func (*betaCmd) Synopsis() string { return "rolling beta of an asset against a benchmark" }
func (*betaCmd) Usage() string {
	return `rstat beta -i <returns.csv> -asset <column> -benchmark <column> [-window <n>] [-tail <n>]

  Prints the rolling beta, covariance over benchmark variance, of the asset
  returns, most recent first. Days before the first full window have no beta.
`
}

func (c *betaCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.StringVar(&c.asset, "asset", "", "column of the asset")
	f.StringVar(&c.benchmark, "benchmark", "", "column of the benchmark")
	f.IntVar(&c.window, "window", 60, "rolling window in rows")
	f.IntVar(&c.tail, "tail", 10, "number of days to print, all if 0")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown")
}

func (c *betaCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.missingInput() {
		return subcommands.ExitUsageError
	}
	if c.asset == "" || c.benchmark == "" {
		fmt.Fprintln(os.Stderr, "-asset and -benchmark are required")
		return subcommands.ExitUsageError
	}

	returns, err := c.read()
	if err != nil {
		return fail("Error reading returns", err)
	}
	returns = returns.DropIncomplete()
	asset, err := returns.Column(c.asset)
	if err != nil {
		return fail("Error", err)
	}
	benchmark, err := returns.Column(c.benchmark)
	if err != nil {
		return fail("Error", err)
	}
	beta, err := riskstat.Beta(asset, benchmark, c.window)
	if err != nil {
		return fail("Error computing beta", err)
	}
	t, err := riskstat.FromSeries(beta)
	if err != nil {
		return fail("Error", err)
	}
	if c.tail > 0 {
		t = t.Tail(c.tail)
	}
	title := fmt.Sprintf("%d-Day Rolling Beta of %s against %s", c.window, c.asset, c.benchmark)
	printMarkdown(renderer.TableMarkdown(title, t, renderer.Ratio), c.raw)
	return subcommands.ExitSuccess
}
