package date

import (
	"fmt"
	"strings"
)

// Period is the sampling frequency of a series.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

type frequency struct {
	name, unit string
	// conventional number of observations in a year, daily uses 252 trading days.
	perYear int
}

// frequencies describes each Period, indexed by Period.
var frequencies = [...]frequency{
	Daily:     {"daily", "day", 252},
	Weekly:    {"weekly", "week", 52},
	Monthly:   {"monthly", "month", 12},
	Quarterly: {"quarterly", "quarter", 4},
	Yearly:    {"yearly", "year", 1},
}

// Periods returns every Period, from the shortest to the longest.
func Periods() []Period { return []Period{Daily, Weekly, Monthly, Quarterly, Yearly} }

func (p Period) String() string { return p.frequency().name }

// PeriodsPerYear returns the conventional number of observations in a year.
func (p Period) PeriodsPerYear() int { return p.frequency().perYear }

func (p Period) frequency() frequency {
	if p < 0 || int(p) >= len(frequencies) {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return frequencies[p]
}

// ParsePeriod parses a frequency like "daily" or its unit like "day", ignoring case.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Periods() {
		if f := frequencies[p]; s == f.name || s == f.unit {
			return p, nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}
