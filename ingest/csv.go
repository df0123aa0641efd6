package ingest

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/date"
	"github.com/pkg/errors"
)

// DefaultDateColumn is the header of the date column when none is given.
const DefaultDateColumn = "Date"

// CSVOptions describes the layout of a CSV source.
//
// The wide layout has one date column and one column per instrument. The long
// layout, selected by Symbol, has one row per (date, symbol) observation and
// the value in the Value column; it is pivoted into one column per symbol.
type CSVOptions struct {
	Date       string            // Header of the date column, DefaultDateColumn if empty.
	DateLayout string            // time layout of dates, permissive ISO if empty.
	Columns    []string          // Value columns to keep, all of them if empty.
	Rename     map[string]string // Renames columns after reading.
	Currency   string            // ISO 4217 code used to parse currency formatted cells.

	Symbol string // Long layout: header of the symbol column.
	Value  string // Long layout: header of the value column.
}

// ReadCSVFile is ReadCSV on a file.
func ReadCSVFile(path string, opt CSVOptions) (*riskstat.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	t, err := ReadCSV(f, opt)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", path)
	}
	return t, nil
}

// ReadCSV reads a table from a CSV with a header line.
//
// In the wide layout, rows keep the file order: use SortByDate for files in
// reverse chronological order.
func ReadCSV(r io.Reader, opt CSVOptions) (*riskstat.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(riskstat.ErrMalformedInput, err.Error())
	}
	if len(records) == 0 {
		return nil, malformed("missing header")
	}
	header, records := records[0], records[1:]
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	if opt.Date == "" {
		opt.Date = DefaultDateColumn
	}
	dateIdx := slices.Index(header, opt.Date)
	if dateIdx < 0 {
		return nil, malformed("no date column %q in %v", opt.Date, header)
	}

	var t *riskstat.Table
	if opt.Symbol != "" {
		t, err = readLong(header, records, dateIdx, opt)
	} else {
		t, err = readWide(header, records, dateIdx, opt)
	}
	if err != nil {
		return nil, err
	}
	return rename(t, opt.Rename)
}

func readWide(header []string, records [][]string, dateIdx int, opt CSVOptions) (*riskstat.Table, error) {
	names := opt.Columns
	if len(names) == 0 {
		names = slices.Delete(slices.Clone(header), dateIdx, dateIdx+1)
	}
	idx := make([]int, len(names))
	for j, name := range names {
		if idx[j] = slices.Index(header, name); idx[j] < 0 {
			return nil, malformed("no column %q in %v", name, header)
		}
	}

	days := make([]date.Date, 0, len(records))
	rows := make([][]float64, 0, len(records))
	for line, rec := range records {
		on, err := date.ParseLayout(strings.TrimSpace(rec[dateIdx]), opt.DateLayout)
		if err != nil {
			return nil, malformed("line %d: %v", line+2, err)
		}
		row := make([]float64, len(idx))
		for j, k := range idx {
			if row[j], err = ParseAmount(rec[k], opt.Currency); err != nil {
				return nil, errors.WithMessagef(err, "line %d column %q", line+2, names[j])
			}
		}
		days, rows = append(days, on), append(rows, row)
	}
	return riskstat.FromGrid(days, names, rows)
}

func readLong(header []string, records [][]string, dateIdx int, opt CSVOptions) (*riskstat.Table, error) {
	symbolIdx := slices.Index(header, opt.Symbol)
	if symbolIdx < 0 {
		return nil, malformed("no symbol column %q in %v", opt.Symbol, header)
	}
	valueIdx := slices.Index(header, opt.Value)
	if valueIdx < 0 {
		return nil, malformed("no value column %q in %v", opt.Value, header)
	}

	rows := make([]riskstat.Row, 0, len(records))
	for line, rec := range records {
		symbol := strings.TrimSpace(rec[symbolIdx])
		if len(opt.Columns) > 0 && !slices.Contains(opt.Columns, symbol) {
			continue
		}
		on, err := date.ParseLayout(strings.TrimSpace(rec[dateIdx]), opt.DateLayout)
		if err != nil {
			return nil, malformed("line %d: %v", line+2, err)
		}
		v, err := ParseAmount(rec[valueIdx], opt.Currency)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d symbol %q", line+2, symbol)
		}
		rows = append(rows, riskstat.Row{Day: on, Column: symbol, Value: v})
	}
	t, err := riskstat.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if len(opt.Columns) > 0 {
		// keep the requested order.
		return t.Select(opt.Columns...)
	}
	// otherwise symbols are sorted, like a pivot table.
	names := t.Names()
	slices.Sort(names)
	return t.Select(names...)
}

func rename(t *riskstat.Table, names map[string]string) (*riskstat.Table, error) {
	// iterate over the table names for a deterministic result.
	for _, from := range t.Names() {
		to, ok := names[from]
		if !ok {
			continue
		}
		var err error
		if t, err = t.Rename(from, to); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WriteCSV writes a table with a date column first, then one column per
// table column. Missing values are empty cells.
func WriteCSV(w io.Writer, t *riskstat.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{DefaultDateColumn}, t.Names()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for on, row := range t.Rows() {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, on.String())
		for _, v := range row {
			rec = append(rec, fmtFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
