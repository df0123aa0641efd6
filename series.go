package riskstat

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/etnz/riskstat/date"
)

// Series is a single named column of values indexed by date.
//
// Series are returned by Table.Column and by the pairwise window statistics.
// The zero value is an empty unnamed series.
type Series struct {
	name   string
	days   []date.Date
	values []float64
}

// NewSeries returns a series named name. days and values must have the same
// length and days must be unique.
func NewSeries(name string, days []date.Date, values []float64) (Series, error) {
	if len(days) != len(values) {
		return Series{}, fmt.Errorf("series %q has %d days and %d values: %w", name, len(days), len(values), ErrMalformedInput)
	}
	if err := checkUnique(days); err != nil {
		return Series{}, fmt.Errorf("series %q: %w", name, err)
	}
	return Series{name: name, days: slices.Clone(days), values: slices.Clone(values)}, nil
}

// Name returns the series name.
func (s Series) Name() string { return s.name }

// Len returns the number of observations, missing ones included.
func (s Series) Len() int { return len(s.days) }

// Days returns a copy of the date index.
func (s Series) Days() []date.Date { return slices.Clone(s.days) }

// Values returns a copy of the values, NaN for missing observations.
func (s Series) Values() []float64 { return slices.Clone(s.values) }

// At returns the i-th observation.
func (s Series) At(i int) (date.Date, float64) { return s.days[i], s.values[i] }

// Get returns the value on day, and false if the day is not in the index.
func (s Series) Get(day date.Date) (float64, bool) {
	i := slices.Index(s.days, day)
	if i < 0 {
		return math.NaN(), false
	}
	return s.values[i], true
}

// Points returns an iterator over all date/value pairs in index order.
func (s Series) Points() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Rename returns a copy of the series with a new name.
func (s Series) Rename(name string) Series {
	s.name = name
	return s
}

// Scale returns a new series with every value multiplied by c.
func (s Series) Scale(c float64) Series {
	values := make([]float64, len(s.values))
	for i, v := range s.values {
		values[i] = v * c
	}
	return Series{name: s.name, days: s.days, values: values}
}

// alignedWith reports whether both series share the exact same date index.
func (s Series) alignedWith(o Series) bool { return slices.Equal(s.days, o.days) }
