package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/riskstat/ingest"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs c with args and returns what it printed.
func execute(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	status := c.Execute(context.Background(), fs)
	return buf.String(), status
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const pricesCSV = `Date,A,B
2024-01-03,99,55
2024-01-01,100,50
2024-01-02,110,50
`

func TestReturnsCmd(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "prices.csv", pricesCSV)

	out, status := execute(t, &returnsCmd{}, "-i", in)
	require.Equal(t, subcommands.ExitSuccess, status)

	returns, err := ingest.ReadCSV(strings.NewReader(out), ingest.CSVOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, returns.Len())
	assert.True(t, math.IsNaN(returns.Value(0, "A")))
	assert.InDelta(t, 0.1, returns.Value(1, "A"), 1e-12)
	assert.InDelta(t, -0.1, returns.Value(2, "A"), 1e-12)
	assert.InDelta(t, 0.1, returns.Value(2, "B"), 1e-12)
}

func TestReturnsCmdCumulativeToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "prices.csv", pricesCSV)
	output := filepath.Join(dir, "growth.csv")

	out, status := execute(t, &returnsCmd{}, "-i", in, "-o", output, "-cumulative")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Empty(t, out)

	growth, err := ingest.ReadCSVFile(output, ingest.CSVOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, growth.Len())
	// the growth of one unit is the price ratio to the first price.
	assert.InDelta(t, 0.99, growth.Value(1, "A"), 1e-12)
	assert.InDelta(t, 1.1, growth.Value(1, "B"), 1e-12)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"analyze without config", &analyzeCmd{}, nil},
		{"returns without input", &returnsCmd{}, nil},
		{"sharpe without input", &sharpeCmd{}, nil},
		{"sharpe bad frequency", &sharpeCmd{}, []string{"-i", "x.csv", "-frequency", "hourly"}},
		{"beta without asset", &betaCmd{}, []string{"-i", "x.csv", "-benchmark", "B"}},
		{"corr without input", &corrCmd{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, status := execute(t, tt.cmd, tt.args...)
			assert.Equal(t, subcommands.ExitUsageError, status)
		})
	}
}

func TestReadFailure(t *testing.T) {
	_, status := execute(t, &corrCmd{}, "-i", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Equal(t, subcommands.ExitFailure, status)
}

// returnsFixture writes n days of returns where B follows A with some noise.
func returnsFixture(t *testing.T, dir string, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Date,A,B\n")
	for i := range n {
		a := 0.01*math.Sin(float64(i)) + 0.002
		fmt.Fprintf(&b, "2024-%02d-%02d,%g,%g\n", 1+i/28, 1+i%28, a, 0.5*a+0.001*math.Cos(float64(3*i)))
	}
	return writeFile(t, dir, "returns.csv", b.String())
}

func TestSharpeCmd(t *testing.T) {
	in := returnsFixture(t, t.TempDir(), 40)

	out, status := execute(t, &sharpeCmd{}, "-i", in, "-raw")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Annualized Sharpe Ratios")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
}

func TestBetaCmd(t *testing.T) {
	in := returnsFixture(t, t.TempDir(), 40)

	out, status := execute(t, &betaCmd{}, "-i", in, "-asset", "B", "-benchmark", "A", "-window", "10", "-tail", "5", "-raw")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "10-Day Rolling Beta of B against A")
	assert.Equal(t, 5, strings.Count(out, "2024-02-"))

	_, status = execute(t, &betaCmd{}, "-i", in, "-asset", "C", "-benchmark", "A")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestCorrCmd(t *testing.T) {
	in := returnsFixture(t, t.TempDir(), 40)

	out, status := execute(t, &corrCmd{}, "-i", in, "-raw")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Correlation")
	assert.Contains(t, out, "1.00")
}

func TestAnalyzeCmd(t *testing.T) {
	dir := t.TempDir()
	returnsFixture(t, dir, 40)
	config := writeFile(t, dir, "analysis.yaml", `
title: Two Funds
benchmark: A
beta: [B]
rolling_window: 5
beta_window: 10
halflife: 5
sources:
  - name: funds
    path: returns.csv
portfolios:
  - name: Mix
    source: funds
    weights: [0.5, 0.5]
`)
	charts := filepath.Join(dir, "charts")

	out, status := execute(t, &analyzeCmd{}, "-config", config, "-raw", "-charts", charts, "-investment", "0")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Two Funds")
	assert.Contains(t, out, "Mix")
	assert.NotContains(t, out, "Growth of")

	for _, name := range []string{"cumulative.png", "rolling_std.png", "ewm_std.png", "sharpe.png", "beta.png"} {
		assert.FileExists(t, filepath.Join(charts, name))
	}
}

func TestTopicCmd(t *testing.T) {
	out, status := execute(t, &topicCmd{}, "-raw")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# rstat")

	out, status = execute(t, &topicCmd{}, "-raw", "statistics")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Statistics")

	_, status = execute(t, &topicCmd{}, "unknown")
	assert.Equal(t, subcommands.ExitFailure, status)
}
