package style

import (
	"strconv"
	"strings"
)

// Common property names read by the resolvers.
const (
	ListStyleType  = "list-style-type"
	ListStyle      = "list-style"
	Border         = "border"
	BorderColor    = "border-color"
	BorderWidth    = "border-width"
	BorderStyle    = "border-style"
	BorderCollapse = "border-collapse"
	BorderSpacing  = "border-spacing"
	Width          = "width"
	Margin         = "margin"
	WhiteSpace     = "white-space"
)

// Declarations maps lowercase CSS property names to their values.
type Declarations map[string]string

// Get returns the value of property, or "" when it is not set.
func (d Declarations) Get(property string) string {
	if d == nil {
		return ""
	}
	return d[property]
}

// Clone returns a copy of d. The copy of a nil map is an empty map.
func (d Declarations) Clone() Declarations {
	out := make(Declarations, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Cascade is an ordered sequence of declaration blocks. Later entries win.
type Cascade []Declarations

// Merged merges the cascade left to right.
func (c Cascade) Merged() Declarations {
	return Merge(c...)
}

// Get returns the cascaded value of a single property.
func (c Cascade) Get(property string) string {
	for i := len(c) - 1; i >= 0; i-- {
		if v, ok := c[i][property]; ok {
			return v
		}
	}
	return ""
}

// Merge applies each entry in order, later values overriding earlier ones.
// The result is always a new, non-nil map.
func Merge(entries ...Declarations) Declarations {
	out := make(Declarations)
	for _, entry := range entries {
		for k, v := range entry {
			out[k] = v
		}
	}
	return out
}

// ParseInline parses the value of an HTML style attribute
// (e.g. "border: 1px solid black; list-style-type: lower-roman").
func ParseInline(text string) Declarations {
	decls := make(Declarations)
	for _, decl := range splitDeclarations(text) {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		if property == "" || value == "" {
			continue
		}
		expandShorthand(decls, property, value)
	}
	return decls
}

// splitDeclarations splits on semicolons outside parentheses and quotes, so
// values like url("data:image/png;base64,...") stay whole.
func splitDeclarations(text string) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			out = append(out, text[start:i])
			start = i + 1
		}
	}
	return append(out, text[start:])
}

func expandShorthand(decls Declarations, property, value string) {
	switch property {
	case "margin", "padding":
		decls[property] = value
		expandBox(decls, property, value)
	case "border":
		decls[property] = value
		expandBorder(decls, value)
	default:
		decls[property] = value
	}
}

// expandBox expands margin/padding shorthand.
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
// "10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBox(decls Declarations, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-right"] = parts[0]
		decls[prefix+"-bottom"] = parts[0]
		decls[prefix+"-left"] = parts[0]
	case 2:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-bottom"] = parts[0]
		decls[prefix+"-right"] = parts[1]
		decls[prefix+"-left"] = parts[1]
	case 3:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-right"] = parts[1]
		decls[prefix+"-left"] = parts[1]
		decls[prefix+"-bottom"] = parts[2]
	case 4:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-right"] = parts[1]
		decls[prefix+"-bottom"] = parts[2]
		decls[prefix+"-left"] = parts[3]
	}
}

// expandBorder splits "1px solid black" into width, style and color.
func expandBorder(decls Declarations, value string) {
	for _, part := range strings.Fields(value) {
		switch {
		case isBorderStyle(part):
			decls[BorderStyle] = part
		case isLength(part):
			decls[BorderWidth] = part
		default:
			decls[BorderColor] = part
		}
	}
}

func isBorderStyle(s string) bool {
	switch strings.ToLower(s) {
	case "none", "hidden", "dotted", "dashed", "solid", "double",
		"groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

func isLength(s string) bool {
	switch strings.ToLower(s) {
	case "thin", "medium", "thick":
		return true
	}
	_, ok := ParseLength(s)
	return ok
}

// ParseLength parses a length value with an optional unit ("2px", "1.5pt", "0").
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	end := len(val)
	for end > 0 {
		c := val[end-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '%' {
			end--
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	num, err := strconv.ParseFloat(val[:end], 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
