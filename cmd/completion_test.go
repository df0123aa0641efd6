package cmd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	root := Completion()

	var names []string
	for name := range root.Sub {
		names = append(names, name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"analyze", "beta", "corr", "returns", "sharpe", "topic"}, names)

	analyze := root.Sub["analyze"]
	require.NotNil(t, analyze)
	for _, flag := range []string{"config", "charts", "raw", "investment", "currency"} {
		assert.Contains(t, analyze.Flags, flag)
	}
	assert.Empty(t, analyze.Flags["raw"].Predict(""))

	sharpe := root.Sub["sharpe"]
	require.NotNil(t, sharpe)
	assert.ElementsMatch(t, []string{"daily", "weekly", "monthly", "quarterly", "yearly"}, sharpe.Flags["frequency"].Predict(""))

	assert.ElementsMatch(t, []string{"analysis", "inputs", "statistics"}, root.Sub["topic"].Args.Predict(""))

	for _, name := range []string{"returns", "sharpe", "beta", "corr"} {
		assert.Contains(t, root.Sub[name].Flags, "i", name)
	}
}
