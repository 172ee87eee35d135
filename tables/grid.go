package tables

import (
	"strconv"
	"strings"

	"github.com/tsawler/boxtree/dom"
)

// Grid summarises the row structure of a table.
type Grid struct {
	Rows    []*dom.Node
	Columns int
}

// NewGrid discovers the rows of table and its column count.
func NewGrid(table *dom.Node) Grid {
	rows := dom.Rows(table)
	return Grid{
		Rows:    rows,
		Columns: columnsOf(rows),
	}
}

// MaxColumns returns the number of columns of a table: the largest sum of
// colspans over its rows, and never less than 1. A nil table has 1 column.
func MaxColumns(table *dom.Node) int {
	return columnsOf(dom.Rows(table))
}

func columnsOf(rows []*dom.Node) int {
	max := 1
	for _, row := range rows {
		span := 0
		for _, cell := range dom.Cells(row) {
			span += spanOf(cell)
		}
		if span > max {
			max = span
		}
	}
	return max
}

// Colspan returns the colspan attribute of a cell. ok is false when the
// attribute is absent, not an integer, or less than 1.
func Colspan(cell *dom.Node) (span int, ok bool) {
	raw, present := cell.Attr("colspan")
	if !present {
		return 1, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1, false
	}
	return n, true
}

func spanOf(cell *dom.Node) int {
	n, _ := Colspan(cell)
	return n
}
