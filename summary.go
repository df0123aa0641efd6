package riskstat

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Summary holds one scalar per column, in column order.
//
// It is the result of the per-column aggregates like StdDev or
// AnnualizedSharpeRatio.
type Summary struct {
	names  []string
	values []float64
}

// NewSummary returns a summary. names and values must have the same length.
func NewSummary(names []string, values []float64) (Summary, error) {
	if len(names) != len(values) {
		return Summary{}, fmt.Errorf("summary has %d names and %d values: %w", len(names), len(values), ErrDimensionMismatch)
	}
	if err := checkNames(names); err != nil {
		return Summary{}, err
	}
	return Summary{names: slices.Clone(names), values: slices.Clone(values)}, nil
}

// Len returns the number of entries.
func (s Summary) Len() int { return len(s.names) }

// Names returns a copy of the entry names.
func (s Summary) Names() []string { return slices.Clone(s.names) }

// Get returns the value for name, NaN and false if it is unknown.
func (s Summary) Get(name string) (float64, bool) {
	i := slices.Index(s.names, name)
	if i < 0 {
		return math.NaN(), false
	}
	return s.values[i], true
}

// All returns an iterator over name/value pairs in order.
func (s Summary) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for i, name := range s.names {
			if !yield(name, s.values[i]) {
				return
			}
		}
	}
}

// Scale returns a new summary with every value multiplied by c.
func (s Summary) Scale(c float64) Summary {
	values := make([]float64, len(s.values))
	for i, v := range s.values {
		values[i] = v * c
	}
	return Summary{names: slices.Clone(s.names), values: values}
}

// Greater returns the names whose value is strictly greater than the value of
// reference, in order. The reference itself is never part of the result.
func (s Summary) Greater(reference string) ([]string, error) {
	ref, ok := s.Get(reference)
	if !ok {
		return nil, fmt.Errorf("unknown reference %q: %w", reference, ErrMalformedInput)
	}
	var names []string
	for name, v := range s.All() {
		if name != reference && v > ref {
			names = append(names, name)
		}
	}
	return names, nil
}
