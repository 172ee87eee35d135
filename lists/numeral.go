package lists

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NumeralSystem is the marker style derived from a list-style value.
type NumeralSystem int

const (
	Decimal NumeralSystem = iota
	LowerAlpha
	UpperAlpha
	LowerRoman
	UpperRoman
	None
	Image
	Bullet
)

// String returns a string representation of the numeral system
func (s NumeralSystem) String() string {
	switch s {
	case Decimal:
		return "decimal"
	case LowerAlpha:
		return "lower-alpha"
	case UpperAlpha:
		return "upper-alpha"
	case LowerRoman:
		return "lower-roman"
	case UpperRoman:
		return "upper-roman"
	case None:
		return "none"
	case Image:
		return "image"
	case Bullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// BulletGlyph is the marker text of unordered list items.
const BulletGlyph = "•"

// Classify maps a list-style-type (or list-style) value to a numeral system.
// "none" and "url(" match anywhere in the value so that shorthand values
// such as "square url(a.png) inside" are recognised.
func Classify(styleType string, ordered bool) NumeralSystem {
	switch {
	case strings.Contains(styleType, "none"):
		return None
	case strings.Contains(styleType, "url("):
		return Image
	case !ordered:
		return Bullet
	case strings.Contains(styleType, "lower-alpha"), strings.Contains(styleType, "lower-latin"):
		return LowerAlpha
	case strings.Contains(styleType, "upper-alpha"), strings.Contains(styleType, "upper-latin"):
		return UpperAlpha
	case strings.Contains(styleType, "lower-roman"):
		return LowerRoman
	case strings.Contains(styleType, "upper-roman"):
		return UpperRoman
	default:
		return Decimal
	}
}

// ImageURL extracts the URL of a url(...) value, dropping quote characters.
// It returns "" when the value holds no url(.
func ImageURL(styleType string) string {
	start := strings.Index(styleType, "url(")
	if start < 0 {
		return ""
	}
	open := start + len("url")
	depth := 0
	end := len(styleType)
	for i := open; i < len(styleType); i++ {
		switch styleType[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			end = i
			break
		}
	}
	url := styleType[open+1 : end]
	url = strings.ReplaceAll(url, `"`, "")
	url = strings.ReplaceAll(url, `'`, "")
	return strings.TrimSpace(url)
}

// Alpha returns the alphabetic numeral for a 0-based index: 0 is "a",
// 25 is "z", 26 is "aa". Negative indexes fall back to decimal.
func Alpha(index int) string {
	if index < 0 {
		return strconv.Itoa(index + 1)
	}
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('a'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// Roman returns the lowercase Roman numeral for n, or "" when n < 1.
func Roman(n int) string {
	var sb strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}

// Format renders the numeral text of a marker, without the trailing ".".
// index is the override-adjusted 0-based index; position is the raw
// 0-based sibling position, which Roman numerals are rendered from.
func Format(system NumeralSystem, index, position int) string {
	switch system {
	case LowerAlpha:
		return Alpha(index)
	case UpperAlpha:
		return toUpper(Alpha(index))
	case LowerRoman:
		return Roman(position + 1)
	case UpperRoman:
		return toUpper(Roman(position + 1))
	default:
		return strconv.Itoa(index + 1)
	}
}

// toUpper builds a new Caser per call; a Caser must not be shared between
// goroutines.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
