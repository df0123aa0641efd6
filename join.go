package riskstat

import (
	"fmt"

	"github.com/etnz/riskstat/date"
)

// InnerJoin combines tables on their common dates.
//
// The result holds only the dates present in every table, in ascending order,
// and the columns of every table in the order the tables were supplied. A
// column name present in two tables is an ErrDuplicateColumn.
func InnerJoin(tables ...*Table) (*Table, error) {
	var names []string
	indexes := make([][]date.Date, len(tables))
	for k, t := range tables {
		names = append(names, t.names...)
		indexes[k] = t.days
	}
	if err := checkNames(names); err != nil {
		return nil, fmt.Errorf("inner join: %w", err)
	}

	days := date.Intersect(indexes...)
	var cols [][]float64
	for _, t := range tables {
		// position of each common day in t.
		pos := make(map[date.Date]int, len(t.days))
		for i, on := range t.days {
			pos[on] = i
		}
		rows := make([]int, len(days))
		for i, on := range days {
			rows[i] = pos[on]
		}
		cols = append(cols, t.pick(rows).cols...)
	}
	return &Table{days: days, names: names, cols: cols}, nil
}
