package tables

import (
	"fmt"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/style"
)

// Border model values.
const (
	CollapseModel = "collapse"
	SpacingModel  = "separate"
)

// BorderModel returns SpacingModel when the merged table style sets a
// border-spacing and does not collapse borders, and CollapseModel otherwise.
func BorderModel(tableStyle style.Declarations) string {
	if tableStyle.Get(style.BorderSpacing) != "" && tableStyle.Get(style.BorderCollapse) != "collapse" {
		return SpacingModel
	}
	return CollapseModel
}

// ResolveCellStyle computes the style of a td or th: the table's border,
// border geometry for the table's border model, a percentage width, and
// finally the cell's own cascade on top.
//
// It returns a *StructuralError when the cell has no table ancestor.
func ResolveCellStyle(cell *dom.Node) (style.Declarations, error) {
	table := cell.Closest("table")
	if table == nil {
		tag := "cell"
		if cell != nil && cell.Tag != "" {
			tag = cell.Tag
		}
		return nil, &StructuralError{Tag: tag}
	}
	return resolve(cell, table.Style.Merged(), MaxColumns(table)), nil
}

// ResolveInGrid is ResolveCellStyle for callers that already hold the
// table's merged style and grid, such as the converter walking a table.
func ResolveInGrid(cell *dom.Node, tableStyle style.Declarations, grid Grid) style.Declarations {
	return resolve(cell, tableStyle, grid.Columns)
}

func resolve(cell *dom.Node, tableStyle style.Declarations, columns int) style.Declarations {
	base := style.Declarations{}
	for _, prop := range []string{style.Border, style.BorderColor, style.BorderWidth, style.BorderStyle} {
		if v := tableStyle.Get(prop); v != "" {
			base[prop] = v
		}
	}

	borderWidth := tableStyle.Get(style.BorderWidth)
	if borderWidth == "" {
		borderWidth = "0"
	}

	if BorderModel(tableStyle) == SpacingModel {
		base[style.Margin] = tableStyle.Get(style.BorderSpacing)
	} else {
		base["border-right-width"] = "0"
		base["border-bottom-width"] = "0"
		if cell.IndexOfType() == 0 {
			base["border-left-width"] = "0"
			base["border-top-width"] = "0"
		} else {
			base["border-left-width"] = borderWidth
			base["border-top-width"] = borderWidth
		}
	}

	if columns < 1 {
		columns = 1
	}
	basePercent := 100 / float64(columns)
	base[style.Width] = formatPercent(basePercent)
	if span, ok := Colspan(cell); ok {
		base[style.Width] = formatPercent(float64(span) * basePercent)
	}

	return style.Merge(base, cell.Style.Merged())
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.5f%%", v)
}
