package htmldoc

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/boxtree/style"
)

// orderedTypes maps the type attribute of ol and li to list-style-type.
// The values are case sensitive: "a" and "A" differ.
var orderedTypes = map[string]string{
	"1": "decimal",
	"a": "lower-alpha",
	"A": "upper-alpha",
	"i": "lower-roman",
	"I": "upper-roman",
}

// presentationalHints maps legacy attributes to declarations. They form the
// first cascade entry so that inline styles override them.
func presentationalHints(n *html.Node, attrs map[string]string) style.Declarations {
	hints := style.Declarations{}

	switch n.DataAtom {
	case atom.Ol, atom.Ul, atom.Li:
		if t, ok := listType(attrs["type"]); ok {
			hints[style.ListStyleType] = t
		}

	case atom.Table:
		if raw, ok := attrs["border"]; ok {
			width := 1
			if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v >= 0 {
				width = v
			}
			hints[style.BorderWidth] = strconv.Itoa(width) + "px"
			if width > 0 {
				hints[style.BorderStyle] = "solid"
			}
		}
		if raw, ok := attrs["cellspacing"]; ok {
			if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v >= 0 {
				hints[style.BorderSpacing] = strconv.Itoa(v) + "px"
			}
		}

	case atom.Td, atom.Th:
		if raw := strings.TrimSpace(attrs["width"]); raw != "" {
			if _, err := strconv.Atoi(raw); err == nil {
				raw += "px"
			}
			hints[style.Width] = raw
		}
	}

	return hints
}

func listType(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if t, ok := orderedTypes[raw]; ok {
		return t, true
	}
	switch strings.ToLower(raw) {
	case "disc", "circle", "square", "none":
		return strings.ToLower(raw), true
	}
	return "", false
}
