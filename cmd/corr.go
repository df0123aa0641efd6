package cmd

import (
	"context"
	"flag"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

type corrCmd struct {
	tableFlags
	raw bool
}

func (*corrCmd) Name() string     { return "corr" }
func (*corrCmd) Synopsis() string { return "correlation matrix of the columns of a returns table" }
func (*corrCmd) Usage() string {
	return `rstat corr -i <returns.csv>

  Prints the Pearson correlation of every pair of columns, computed on the
  days where both have a value.
`
}

func (c *corrCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.BoolVar(&c.raw, "raw", false, "print raw markdown")
}

func (c *corrCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.missingInput() {
		return subcommands.ExitUsageError
	}
	returns, err := c.read()
	if err != nil {
		return fail("Error reading returns", err)
	}
	printMarkdown(renderer.MatrixMarkdown("Correlation", riskstat.CorrelationMatrix(returns)), c.raw)
	return subcommands.ExitSuccess
}
