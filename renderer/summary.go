package renderer

import (
	"bytes"

	"github.com/etnz/riskstat"
	md "github.com/nao1215/markdown"
)

// Format turns a value into a table cell.
type Format func(float64) string

var (
	Percent Format = percent
	Ratio   Format = ratio
)

// SummaryMarkdown renders one row per entry of s.
func SummaryMarkdown(title, header string, s riskstat.Summary, format Format) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{
		Header:    []string{"Name", header},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
	for name, v := range s.All() {
		table.Rows = append(table.Rows, []string{name, format(v)})
	}
	doc.Table(table)

	return doc.String()
}

// TableMarkdown renders every row of t, most recent first.
func TableMarkdown(title string, t *riskstat.Table, format Format) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{
		Header:    append([]string{"Date"}, t.Names()...),
		Alignment: []md.TableAlignment{md.AlignLeft},
	}
	for range t.Names() {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	days := t.Days()
	for i := len(days) - 1; i >= 0; i-- {
		row := []string{days[i].String()}
		for _, name := range t.Names() {
			row = append(row, format(t.Value(i, name)))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// MatrixMarkdown renders a square matrix with row and column names.
func MatrixMarkdown(title string, m riskstat.Matrix) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.Table(matrixTable(m))

	return doc.String()
}

func matrixTable(m riskstat.Matrix) md.TableSet {
	table := md.TableSet{
		Header:    append([]string{""}, m.Names()...),
		Alignment: []md.TableAlignment{md.AlignLeft},
	}
	for i, name := range m.Names() {
		row := []string{name}
		for j := range m.Len() {
			row = append(row, ratio(m.At(i, j)))
		}
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Rows = append(table.Rows, row)
	}
	return table
}
