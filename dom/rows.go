package dom

// Rows returns the rows of a table: its direct tr children first, then the
// tr children of each thead and tbody section in document order.
//
// Bare rows always come before section rows, even when a section precedes
// them in the markup. tfoot is not searched.
func Rows(table *Node) []*Node {
	if table == nil {
		return nil
	}
	rows := table.ElementChildren("tr")
	for _, section := range table.ElementChildren("thead", "tbody") {
		rows = append(rows, section.ElementChildren("tr")...)
	}
	return rows
}

// Cells returns the td and th children of a row.
func Cells(row *Node) []*Node {
	return row.ElementChildren("td", "th")
}
