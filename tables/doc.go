// Package tables resolves the grid of HTML tables and the style of their cells.
//
// # Grid
//
// A table's rows are its direct tr children followed by the tr children of
// each thead and tbody section (see [dom.Rows]). The column count is the
// largest sum of colspans over those rows, and never less than 1:
//
//	cols := tables.MaxColumns(table)
//
// # Cell Styles
//
// [ResolveCellStyle] computes the style a td or th is laid out with:
//
//  1. The table's border, border-color, border-width and border-style
//  2. Border geometry for the table's border model
//  3. A percentage width of 100/columns, multiplied by a valid colspan
//  4. The cell's own cascade, which overrides everything above
//
// In the spacing model (border-spacing set, border-collapse not "collapse")
// each cell keeps the table border and gets the spacing as its margin. In
// the collapse model right and bottom borders are 0, and left and top
// borders are drawn only for cells that are not the first of their tag in
// the row; the outer edge comes from the table's own border.
//
// A cell with no table ancestor yields a [*StructuralError]; it is the only
// failure in the package. Malformed colspan attributes count as 1.
package tables
