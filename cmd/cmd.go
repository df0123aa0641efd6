// Package cmd implements the rstat CLI application: returns and risk
// statistics over date-indexed CSV tables.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/ingest"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, "statistics")
	}
	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
}

// Commands returns the statistics subcommands.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&analyzeCmd{},
		&returnsCmd{},
		&sharpeCmd{},
		&betaCmd{},
		&corrCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose turns on development logging.
var Verbose = flag.Bool("v", false, "verbose output with debug logs")

// stdout receives the command results.
var stdout io.Writer = os.Stdout

// newLogger returns the application logger, a development one in verbose mode.
func newLogger() (*zap.Logger, error) {
	if *Verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// printMarkdown renders markdown for the terminal, or prints it as is in raw mode.
func printMarkdown(in string, raw bool) {
	if raw {
		fmt.Fprint(stdout, in)
		return
	}
	out, err := glamour.Render(in, "dark")
	if err != nil {
		// fallback to the raw markdown
		fmt.Fprint(stdout, in)
		return
	}
	fmt.Fprint(stdout, out)
}

// tableFlags are the flags shared by the commands reading a wide CSV file.
type tableFlags struct {
	input    string
	date     string
	layout   string
	currency string
}

func (t *tableFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&t.input, "i", "", "input CSV file, one date column and one column per instrument")
	f.StringVar(&t.date, "date", ingest.DefaultDateColumn, "header of the date column")
	f.StringVar(&t.layout, "layout", "", "date layout, like 1/2/2006, defaults to ISO dates")
	f.StringVar(&t.currency, "currency", "", "currency code of amounts written like $1,234.50")
}

// missingInput reports a usage error when -i is not set.
func (t *tableFlags) missingInput() bool {
	if t.input == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return true
	}
	return false
}

// read reads the input table sorted by date.
func (t *tableFlags) read() (*riskstat.Table, error) {
	tab, err := ingest.ReadCSVFile(t.input, ingest.CSVOptions{
		Date:       t.date,
		DateLayout: t.layout,
		Currency:   t.currency,
	})
	if err != nil {
		return nil, err
	}
	return tab.SortByDate(), nil
}

// fail reports err on stderr.
func fail(format string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	return subcommands.ExitFailure
}
