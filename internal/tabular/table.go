package tabular

import (
	"strings"

	"github.com/mtuoc/MTUOC-TBX/internal/term"
	"github.com/mtuoc/MTUOC-TBX/pkg/log"
)

// Table is a rectangular set of rows sharing one header.
type Table struct {
	Columns []string
	Rows    []term.Record
}

// NewTable reconciles records with differing key sets. The header is the
// union of keys in first-seen order; each row gets every column, blank
// where the record had no value.
func NewTable(records []term.Record) *Table {
	seen := make(map[string]bool)
	var columns []string
	for _, rec := range records {
		for _, col := range rec.Columns() {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}

	rows := make([]term.Record, 0, len(records))
	for _, rec := range records {
		values := rec.Map()
		row := make(term.Record, len(columns))
		for i, col := range columns {
			row[i] = term.Field{Column: col, Value: values[col]}
		}
		rows = append(rows, row)
	}
	return &Table{Columns: columns, Rows: rows}
}

// Cells returns the rows as plain string slices aligned with Columns.
func (t *Table) Cells() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		values := row.Map()
		cells := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = values[col]
		}
		out[i] = cells
	}
	return out
}

// cleanHeader trims header cells. A UTF-8 BOM left by spreadsheet exports
// is dropped as well.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}
	return out
}

// fromCells builds a table from a header and raw data rows. Short rows are
// padded with blanks, columns with an empty name are dropped and fully
// blank rows are skipped.
func fromCells(header []string, data [][]string) *Table {
	t := &Table{}
	keep := make([]int, 0, len(header))
	for i, h := range header {
		if h == "" {
			log.Warn("skipping column %d: blank header", i+1)
			continue
		}
		keep = append(keep, i)
		t.Columns = append(t.Columns, h)
	}

	for _, cells := range data {
		row := make(term.Record, 0, len(keep))
		blank := true
		for _, i := range keep {
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			if strings.TrimSpace(v) != "" {
				blank = false
			}
			row = append(row, term.Field{Column: header[i], Value: v})
		}
		if blank {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
