package riskstat

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/etnz/riskstat/date"
)

// Row is a single observation used to build a Table with FromRows.
type Row struct {
	Day    date.Date
	Column string
	Value  float64
}

// Table is an immutable, date-indexed table of named float64 columns.
//
// Missing values are NaN. All the columns share the same index. Operations on
// a Table never modify it, they return a new one.
type Table struct {
	days  []date.Date
	names []string
	cols  [][]float64 // cols[j][i] is the value of column j on days[i]
}

// FromRows builds a table out of (day, column, value) observations.
//
// The result is sorted by date, columns appear in their first appearance order,
// and cells without an observation are NaN. The same (day, column) pair
// observed twice is an ErrMalformedInput.
func FromRows(rows []Row) (*Table, error) {
	var names []string
	histories := make(map[string]*date.History[float64])
	for _, r := range rows {
		if r.Column == "" {
			return nil, fmt.Errorf("row on %s has no column name: %w", r.Day, ErrMalformedInput)
		}
		if r.Day.IsZero() {
			return nil, fmt.Errorf("row for %q has no date: %w", r.Column, ErrMalformedInput)
		}
		h, ok := histories[r.Column]
		if !ok {
			h = new(date.History[float64])
			histories[r.Column] = h
			names = append(names, r.Column)
		}
		if err := h.Append(r.Day, r.Value); err != nil {
			return nil, fmt.Errorf("column %q: %w: %w", r.Column, ErrMalformedInput, err)
		}
	}

	// the index is the union of all days.
	seen := make(map[date.Date]bool)
	var days []date.Date
	for _, name := range names {
		for on := range histories[name].Values() {
			if !seen[on] {
				seen[on] = true
				days = append(days, on)
			}
		}
	}
	slices.SortFunc(days, date.Date.Compare)

	cols := make([][]float64, len(names))
	for j, name := range names {
		col := make([]float64, len(days))
		for i, on := range days {
			v, ok := histories[name].Get(on)
			if !ok {
				v = math.NaN()
			}
			col[i] = v
		}
		cols[j] = col
	}
	return &Table{days: days, names: names, cols: cols}, nil
}

// FromGrid builds a table out of a rectangular grid where values[i] is the row
// observed on days[i], one value per name.
//
// Row order is preserved, use SortByDate to get a chronological table.
// Duplicate days or names, and ragged rows are ErrMalformedInput.
func FromGrid(days []date.Date, names []string, values [][]float64) (*Table, error) {
	if len(days) != len(values) {
		return nil, fmt.Errorf("grid has %d days and %d rows: %w", len(days), len(values), ErrMalformedInput)
	}
	if err := checkUnique(days); err != nil {
		return nil, err
	}
	if err := checkNames(names); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, len(days))
	}
	for i, row := range values {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row on %s has %d values want %d: %w", days[i], len(row), len(names), ErrMalformedInput)
		}
		for j, v := range row {
			cols[j][i] = v
		}
	}
	return &Table{days: slices.Clone(days), names: slices.Clone(names), cols: cols}, nil
}

// FromSeries builds a table out of series sharing the same index.
func FromSeries(series ...Series) (*Table, error) {
	t := &Table{}
	if len(series) > 0 {
		t.days = slices.Clone(series[0].days)
	}
	for _, s := range series {
		var err error
		if t, err = t.WithColumn(s); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// checkUnique returns an ErrMalformedInput if a day appears twice.
func checkUnique(days []date.Date) error {
	seen := make(map[date.Date]bool, len(days))
	for _, on := range days {
		if seen[on] {
			return fmt.Errorf("%w: %s appears twice", ErrMalformedInput, on)
		}
		seen[on] = true
	}
	return nil
}

// checkNames returns an ErrDuplicateColumn if a name appears twice.
func checkNames(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = true
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.days) }

// Names returns a copy of the column names in order.
func (t *Table) Names() []string { return slices.Clone(t.names) }

// Days returns a copy of the date index.
func (t *Table) Days() []date.Date { return slices.Clone(t.days) }

// Sorted reports whether the index is in strictly increasing date order.
func (t *Table) Sorted() bool { return date.IsSorted(t.days) }

// Has reports whether the table has a column with that name.
func (t *Table) Has(name string) bool { return slices.Contains(t.names, name) }

// Column returns the named column as a Series.
func (t *Table) Column(name string) (Series, error) {
	j := slices.Index(t.names, name)
	if j < 0 {
		return Series{}, fmt.Errorf("unknown column %q: %w", name, ErrMalformedInput)
	}
	return Series{name: name, days: slices.Clone(t.days), values: slices.Clone(t.cols[j])}, nil
}

// Value returns the value of column name at row i, NaN if the column is unknown.
func (t *Table) Value(i int, name string) float64 {
	j := slices.Index(t.names, name)
	if j < 0 {
		return math.NaN()
	}
	return t.cols[j][i]
}

// Rows returns an iterator over the rows in index order.
// Each row is a fresh slice with one value per column.
func (t *Table) Rows() iter.Seq2[date.Date, []float64] {
	return func(yield func(date.Date, []float64) bool) {
		for i, on := range t.days {
			if !yield(on, t.row(i)) {
				return
			}
		}
	}
}

func (t *Table) row(i int) []float64 {
	row := make([]float64, len(t.cols))
	for j, col := range t.cols {
		row[j] = col[i]
	}
	return row
}

// pick returns a new table restricted to the given row indexes, in that order.
func (t *Table) pick(rows []int) *Table {
	days := make([]date.Date, len(rows))
	for k, i := range rows {
		days[k] = t.days[i]
	}
	cols := make([][]float64, len(t.cols))
	for j, col := range t.cols {
		c := make([]float64, len(rows))
		for k, i := range rows {
			c[k] = col[i]
		}
		cols[j] = c
	}
	return &Table{days: days, names: slices.Clone(t.names), cols: cols}
}

// DropIncomplete returns a new table without the rows holding a NaN in any column.
func (t *Table) DropIncomplete() *Table {
	var keep []int
	for i := range t.days {
		if !slices.ContainsFunc(t.row(i), math.IsNaN) {
			keep = append(keep, i)
		}
	}
	return t.pick(keep)
}

// SortByDate returns a new table with rows in ascending date order.
func (t *Table) SortByDate() *Table {
	rows := make([]int, len(t.days))
	for i := range rows {
		rows[i] = i
	}
	slices.SortFunc(rows, func(a, b int) int { return t.days[a].Compare(t.days[b]) })
	return t.pick(rows)
}

// Tail returns a new table with the last n rows at most.
func (t *Table) Tail(n int) *Table {
	start := max(len(t.days)-n, 0)
	rows := make([]int, 0, len(t.days)-start)
	for i := start; i < len(t.days); i++ {
		rows = append(rows, i)
	}
	return t.pick(rows)
}

// Select returns the projection of the table on the named columns, in that order.
func (t *Table) Select(names ...string) (*Table, error) {
	if err := checkNames(names); err != nil {
		return nil, err
	}
	cols := make([][]float64, len(names))
	for k, name := range names {
		j := slices.Index(t.names, name)
		if j < 0 {
			return nil, fmt.Errorf("unknown column %q: %w", name, ErrMalformedInput)
		}
		cols[k] = slices.Clone(t.cols[j])
	}
	return &Table{days: slices.Clone(t.days), names: slices.Clone(names), cols: cols}, nil
}

// Rename returns a new table where column from is called to.
func (t *Table) Rename(from, to string) (*Table, error) {
	j := slices.Index(t.names, from)
	if j < 0 {
		return nil, fmt.Errorf("unknown column %q: %w", from, ErrMalformedInput)
	}
	if from != to && t.Has(to) {
		return nil, fmt.Errorf("rename %q: %w: %q", from, ErrDuplicateColumn, to)
	}
	r := t.clone()
	r.names[j] = to
	return r, nil
}

// WithColumn returns a new table with s appended as its last column.
// s must share the table index, and its name must be new.
func (t *Table) WithColumn(s Series) (*Table, error) {
	if t.Has(s.name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, s.name)
	}
	if len(t.names) > 0 && !slices.Equal(t.days, s.days) {
		return nil, fmt.Errorf("column %q: %w", s.name, ErrMisalignedSeries)
	}
	r := t.clone()
	r.days = slices.Clone(s.days)
	r.names = append(r.names, s.name)
	r.cols = append(r.cols, slices.Clone(s.values))
	return r, nil
}

func (t *Table) clone() *Table {
	cols := make([][]float64, len(t.cols))
	for j, col := range t.cols {
		cols[j] = slices.Clone(col)
	}
	return &Table{days: slices.Clone(t.days), names: slices.Clone(t.names), cols: cols}
}

// mapColumns returns a new table with the same index and names where each
// column has been transformed by f. f must return a slice of the same length.
func (t *Table) mapColumns(f func(col []float64) []float64) *Table {
	cols := make([][]float64, len(t.cols))
	for j, col := range t.cols {
		cols[j] = f(col)
	}
	return &Table{days: slices.Clone(t.days), names: slices.Clone(t.names), cols: cols}
}
