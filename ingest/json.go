package ingest

import (
	"encoding/json"
	"io"
	"os"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/date"
	"github.com/pkg/errors"
)

// JSONOptions locates a table inside a JSON document with jsonpath
// expressions, for instance "$.prices[*].date" for the dates and
// "$.prices[*].close" for a column.
//
// Every expression must select an array, all of the same length.
type JSONOptions struct {
	Dates      string            // jsonpath of the dates.
	DateLayout string            // time layout of dates, permissive ISO if empty.
	Columns    map[string]string // column name to the jsonpath of its values.
	Currency   string            // ISO 4217 code used to parse string values.
}

// ReadJSONFile is ReadJSON on a file.
func ReadJSONFile(path string, opt JSONOptions) (*riskstat.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	t, err := ReadJSON(f, opt)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", path)
	}
	return t, nil
}

// ReadJSON reads a table from a JSON document. Columns are sorted by name,
// rows keep the document order. Values can be numbers, strings or null.
func ReadJSON(r io.Reader, opt JSONOptions) (*riskstat.Table, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, malformed("invalid json: %v", err)
	}

	rawDays, err := selectArray(doc, opt.Dates)
	if err != nil {
		return nil, err
	}
	days := make([]date.Date, len(rawDays))
	for i, v := range rawDays {
		s, ok := v.(string)
		if !ok {
			return nil, malformed("date %v at %d is not a string", v, i)
		}
		if days[i], err = date.ParseLayout(s, opt.DateLayout); err != nil {
			return nil, malformed("date at %d: %v", i, err)
		}
	}

	names := make([]string, 0, len(opt.Columns))
	for name := range opt.Columns {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]float64, len(days))
	for i := range rows {
		rows[i] = make([]float64, len(names))
	}
	for j, name := range names {
		values, err := selectArray(doc, opt.Columns[name])
		if err != nil {
			return nil, errors.WithMessagef(err, "column %q", name)
		}
		if len(values) != len(days) {
			return nil, malformed("column %q has %d values for %d dates", name, len(values), len(days))
		}
		for i, v := range values {
			if rows[i][j], err = toFloat(v, opt.Currency); err != nil {
				return nil, errors.WithMessagef(err, "column %q at %d", name, i)
			}
		}
	}
	return riskstat.FromGrid(days, names, rows)
}

func selectArray(doc any, path string) ([]any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, malformed("jsonpath %q: %v", path, err)
	}
	values, ok := v.([]any)
	if !ok {
		return nil, malformed("jsonpath %q does not select an array", path)
	}
	return values, nil
}

func toFloat(v any, currency string) (float64, error) {
	switch v := v.(type) {
	case nil:
		return ParseAmount("", currency)
	case float64:
		return v, nil
	case string:
		return ParseAmount(v, currency)
	default:
		return 0, malformed("unexpected value %v", v)
	}
}
