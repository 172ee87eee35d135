package lists

import (
	"strconv"
	"strings"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/model"
	"github.com/tsawler/boxtree/style"
)

// Resolve returns the marker drawn before a list item, or nil when the item
// has no marker. Malformed start and value attributes are ignored.
func Resolve(item *dom.Node) *model.Marker {
	styleType := ListStyleType(item)
	ordered := IsOrdered(item)

	system := Classify(styleType, ordered)
	switch system {
	case None:
		return nil
	case Image:
		return model.ImageMarker(ImageURL(styleType))
	case Bullet:
		return model.TextMarker(BulletGlyph)
	}

	position := item.IndexOfType()
	return model.TextMarker(Format(system, Number(item), position) + ".")
}

// OwningList returns the closest ol or ul above the item, or nil.
func OwningList(item *dom.Node) *dom.Node {
	if item == nil {
		return nil
	}
	return item.Parent.Closest("ol", "ul")
}

// ListStyleType returns the effective list style of an item: its own
// list-style-type or list-style, falling back to those of its owning list.
func ListStyleType(item *dom.Node) string {
	if item == nil {
		return ""
	}
	if v := listStyleOf(item.Style.Merged()); v != "" {
		return v
	}
	if list := OwningList(item); list != nil {
		return listStyleOf(list.Style.Merged())
	}
	return ""
}

func listStyleOf(decls style.Declarations) string {
	if v := strings.TrimSpace(decls.Get(style.ListStyleType)); v != "" {
		return v
	}
	return strings.TrimSpace(decls.Get(style.ListStyle))
}

// IsOrdered reports whether the item belongs to an ordered list: its
// closest list is an ol, or its direct parent is one.
func IsOrdered(item *dom.Node) bool {
	if item == nil {
		return false
	}
	if list := OwningList(item); list != nil && list.Tag == "ol" {
		return true
	}
	return item.Parent.IsElement("ol")
}

// Number returns the 0-based, override-adjusted index of an ordered item.
//
// The list's start attribute shifts every item. The nearest li at or before
// the item with an integer value attribute restarts numbering from that
// value; the walk skips elements that are not li.
func Number(item *dom.Node) int {
	position := item.IndexOfType()

	offset := 0
	if start, ok := intAttr(OwningList(item), "start"); ok {
		offset = start - 1
	}
	number := position + offset

	for cur := item; cur != nil; cur = cur.PreviousElementSibling() {
		if cur.Tag != "li" {
			continue
		}
		if value, ok := intAttr(cur, "value"); ok {
			number = value + (position - cur.IndexOfType()) - 1
			break
		}
	}
	return number
}

func intAttr(n *dom.Node, name string) (int, bool) {
	raw, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}
