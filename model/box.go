package model

import (
	"strings"

	"github.com/tsawler/boxtree/style"
)

// BoxKind represents the type of a layout box
type BoxKind int

const (
	BoxUnknown BoxKind = iota
	BoxDocument
	BoxBlock
	BoxInline
	BoxText
	BoxLineBreak
	BoxListItem
	BoxTable
	BoxTableSection
	BoxTableRow
	BoxTableCell
	BoxImage
	BoxSVG
)

func (k BoxKind) String() string {
	switch k {
	case BoxDocument:
		return "Document"
	case BoxBlock:
		return "Block"
	case BoxInline:
		return "Inline"
	case BoxText:
		return "Text"
	case BoxLineBreak:
		return "LineBreak"
	case BoxListItem:
		return "ListItem"
	case BoxTable:
		return "Table"
	case BoxTableSection:
		return "TableSection"
	case BoxTableRow:
		return "TableRow"
	case BoxTableCell:
		return "TableCell"
	case BoxImage:
		return "Image"
	case BoxSVG:
		return "SVG"
	default:
		return "Unknown"
	}
}

// Box is a node of the layout-annotated tree handed to the pagination engine.
type Box struct {
	Kind BoxKind
	Tag  string // source element tag, empty for text runs

	// Text holds the content of a text run.
	Text string

	// Attributes are forwarded unchanged for images and SVG content.
	Attributes map[string]string

	// Style is the merged cascade of the source element. For table cells it
	// is the resolved cell style (borders, width, cell overrides).
	Style style.Declarations

	// Marker is set on list items that draw a marker.
	Marker *Marker

	// Columns is the resolved column count of a table box.
	Columns int

	Children []*Box
}

// Append adds children to b and returns b.
func (b *Box) Append(children ...*Box) *Box {
	b.Children = append(b.Children, children...)
	return b
}

// Walk visits b and its descendants depth first. Returning false from fn
// skips the children of the visited box.
func (b *Box) Walk(fn func(*Box) bool) {
	if b == nil {
		return
	}
	if !fn(b) {
		return
	}
	for _, c := range b.Children {
		c.Walk(fn)
	}
}

// Find returns every box of the given kind in document order.
func (b *Box) Find(kind BoxKind) []*Box {
	var out []*Box
	b.Walk(func(c *Box) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TextContent returns the text of all runs below b, with list markers
// prefixed to their items and line breaks as newlines.
func (b *Box) TextContent() string {
	var sb strings.Builder
	b.Walk(func(c *Box) bool {
		switch c.Kind {
		case BoxText:
			sb.WriteString(c.Text)
		case BoxLineBreak:
			sb.WriteString("\n")
		case BoxListItem:
			if c.Marker != nil && c.Marker.Kind == MarkerText {
				sb.WriteString(c.Marker.Text)
				sb.WriteString(" ")
			}
		}
		return true
	})
	return sb.String()
}
