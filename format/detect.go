// Package format provides input format detection for the boxtree library.
package format

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML or XHTML document or fragment.
	HTML
	// Markdown indicates CommonMark or GitHub-flavoured Markdown.
	Markdown
)

// sniffLen is the number of leading bytes inspected by content detection.
const sniffLen = 512

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	default:
		return ""
	}
}

// MediaType returns the IANA media type of the format.
func (f Format) MediaType() string {
	switch f {
	case HTML:
		return "text/html"
	case Markdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".md", ".markdown", ".mdown", ".mkd":
		return Markdown
	default:
		return Unknown
	}
}

// DetectFromMagic inspects the leading bytes of a document. Markup that
// starts with a doctype, an XML declaration or an element tag is HTML.
// Text starting with a Markdown block marker is Markdown.
func DetectFromMagic(data []byte) Format {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	data = bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(data) == 0 {
		return Unknown
	}

	if detectHTMLMagic(data) {
		return HTML
	}
	if !utf8.Valid(trimPartialRune(data)) {
		return Unknown
	}
	if detectMarkdownMagic(data) {
		return Markdown
	}
	return Unknown
}

// DetectFromReader peeks at the start of br without consuming it.
func DetectFromReader(br *bufio.Reader) (Format, error) {
	data, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return Unknown, err
	}
	return DetectFromMagic(data), nil
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	upper := strings.ToUpper(string(data))
	switch {
	case strings.HasPrefix(upper, "<!DOCTYPE HTML"), strings.HasPrefix(upper, "<HTML"):
		return true
	case strings.HasPrefix(upper, "<?XML"):
		return strings.Contains(upper, "<HTML")
	case strings.HasPrefix(upper, "<!--"):
		return true
	}

	// A fragment such as "<table>" or "<ol start=3>".
	if len(data) >= 2 && data[0] == '<' {
		c := data[1]
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return false
}

// detectMarkdownMagic checks the first line for a Markdown block marker:
// ATX headings, list items, block quotes, fences, tables and front matter.
func detectMarkdownMagic(data []byte) bool {
	line := data
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	s := strings.TrimRight(string(line), "\r")

	switch {
	case strings.HasPrefix(s, "#"):
		rest := strings.TrimLeft(s, "#")
		return len(s)-len(rest) <= 6 && (rest == "" || rest[0] == ' ')
	case strings.HasPrefix(s, "- "), strings.HasPrefix(s, "* "), strings.HasPrefix(s, "+ "):
		return true
	case strings.HasPrefix(s, "> "), strings.HasPrefix(s, "```"), strings.HasPrefix(s, "~~~"):
		return true
	case strings.HasPrefix(s, "|"), s == "---":
		return true
	}
	return orderedItem(s)
}

// orderedItem reports whether s starts like "1. " or "12) ".
func orderedItem(s string) bool {
	i := 0
	for i < len(s) && i < 9 && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(s) {
		return false
	}
	return (s[i] == '.' || s[i] == ')') && s[i+1] == ' '
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off by sniffLen.
func trimPartialRune(data []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		r, size := utf8.DecodeLastRune(data)
		if r != utf8.RuneError || size != 1 {
			return data
		}
		data = data[:len(data)-1]
	}
	return data
}
