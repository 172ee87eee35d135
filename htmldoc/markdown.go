package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// OpenMarkdown renders Markdown (with GitHub tables and task lists) to HTML
// and parses the result. Raw HTML in the source is kept, so lists with a
// start attribute or styled tables survive the round trip.
//
// Markdown has no <title>; the first h1 becomes the document title.
func OpenMarkdown(r io.Reader, opts Options) (*Reader, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markdown: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	reader, err := OpenReaderWithOptions(&buf, opts)
	if err != nil {
		return nil, err
	}
	if reader.metadata.Title == "" {
		if h1 := reader.root.Find("h1"); h1 != nil {
			reader.metadata.Title = strings.TrimSpace(h1.TextContent())
		}
	}
	return reader, nil
}
