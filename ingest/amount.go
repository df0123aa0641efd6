package ingest

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/riskstat"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// missing are the cell contents read as a missing value.
var missing = map[string]bool{
	"":     true,
	"nan":  true,
	"NaN":  true,
	"NA":   true,
	"N/A":  true,
	"null": true,
}

// malformed returns an error wrapping riskstat.ErrMalformedInput.
func malformed(format string, args ...any) error {
	return errors.Wrapf(riskstat.ErrMalformedInput, format, args...)
}

// ParseAmount parses a numeric cell.
//
// If currency is an ISO 4217 code, its symbol and its thousands separator are
// removed first, and its decimal separator is read as the decimal point:
// "$2,933.68" in "USD" is 2933.68. Missing cells ("", "NaN", "null"...) are NaN.
func ParseAmount(s, currency string) (float64, error) {
	s = strings.TrimSpace(s)
	if missing[s] {
		return math.NaN(), nil
	}
	if currency != "" {
		cur := money.GetCurrency(currency)
		if cur == nil {
			return 0, malformed("unknown currency %q", currency)
		}
		s = strings.ReplaceAll(s, cur.Grapheme, "")
		if cur.Thousand != "" {
			s = strings.ReplaceAll(s, cur.Thousand, "")
		}
		if cur.Decimal != "" && cur.Decimal != "." {
			s = strings.ReplaceAll(s, cur.Decimal, ".")
		}
		s = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, malformed("invalid amount %q: %v", s, err)
	}
	return d.InexactFloat64(), nil
}
