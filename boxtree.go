// Package boxtree provides a fluent API for converting HTML and Markdown
// documents into layout trees ready for pagination.
//
// Basic usage:
//
//	doc, err := boxtree.Open("report.html").Document()
//	if err != nil {
//	    // handle error
//	}
//	for _, item := range doc.ListItems() {
//	    fmt.Println(item.Marker.Text, item.TextContent())
//	}
//
// With options:
//
//	doc, err := boxtree.FromString(page).
//	    ExcludeNavigation(htmldoc.NavigationExclusionStandard).
//	    Logger(logger).
//	    Parallel(4).
//	    Document()
//
// For lower-level control the htmldoc, layout, lists and tables packages
// can be used directly.
package boxtree

import (
	"io"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/format"
)

// Open returns a Builder for the file at filename. The format is detected
// from the extension, then from the content.
//
// Example:
//
//	doc, err := boxtree.Open("document.html").Document()
func Open(filename string) *Builder {
	return &Builder{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Builder that reads its document from r. The format is
// sniffed from the content, and anything that is not recognisably Markdown is
// parsed as HTML. The reader is consumed by the first terminal call.
//
// Example:
//
//	resp, err := http.Get(url)
//	// ...
//	defer resp.Body.Close()
//	doc, err := boxtree.FromReader(resp.Body).Document()
func FromReader(r io.Reader) *Builder {
	return &Builder{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromString returns a Builder for an HTML string.
//
// Example:
//
//	root, err := boxtree.FromString(`<ol start="3"><li>c</li></ol>`).Root()
func FromString(s string) *Builder {
	return &Builder{
		source:    s,
		hasSource: true,
		format:    format.HTML,
		options:   defaultOptions(),
	}
}

// FromMarkdown returns a Builder for a Markdown string. GitHub tables and
// raw HTML are supported.
//
// Example:
//
//	doc, err := boxtree.FromMarkdown("1. one\n2. two\n").Document()
func FromMarkdown(s string) *Builder {
	return &Builder{
		source:    s,
		hasSource: true,
		format:    format.Markdown,
		options:   defaultOptions(),
	}
}

// FromNode returns a Builder for an already built dom tree. The tree is
// read, never modified. Navigation exclusion does not apply.
//
// Example:
//
//	body := dom.NewElement("body", nil)
//	// ... build the tree
//	root, err := boxtree.FromNode(body).Root()
func FromNode(n *dom.Node) *Builder {
	return &Builder{
		node:    n,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := boxtree.Must(boxtree.Open("document.html").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
