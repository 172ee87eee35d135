package boxtree

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/format"
	"github.com/tsawler/boxtree/htmldoc"
	"github.com/tsawler/boxtree/layout"
	"github.com/tsawler/boxtree/model"
)

var (
	// ErrNoSource is returned when a Builder has nothing to convert.
	ErrNoSource = errors.New("boxtree: no source specified")

	// ErrUnsupportedFormat is returned for files that are neither HTML nor
	// Markdown.
	ErrUnsupportedFormat = errors.New("boxtree: unsupported file format")
)

// Builder provides a fluent interface for converting documents.
// Each configuration method returns a new Builder instance, making it
// safe for concurrent use and allowing method chaining.
type Builder struct {
	// Source (exactly one is set)
	filename  string
	reader    io.Reader
	source    string
	hasSource bool
	node      *dom.Node

	// format overrides detection when not Unknown
	format format.Format

	// Configuration
	options ConvertOptions
}

// clone creates a shallow copy of the Builder with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (b *Builder) clone() *Builder {
	return &Builder{
		filename:  b.filename,
		reader:    b.reader,
		source:    b.source,
		hasSource: b.hasSource,
		node:      b.node,
		format:    b.format,
		options:   b.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Builder instance)
// ============================================================================

// Logger sets the logger that records table grids, list markers and
// conversion failures. A nil logger disables logging.
//
// Example:
//
//	logger, _ := zap.NewDevelopment()
//	doc, err := boxtree.Open("doc.html").Logger(logger).Document()
func (b *Builder) Logger(logger *zap.Logger) *Builder {
	nb := b.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	nb.options.logger = logger
	return nb
}

// Parallel converts up to n top-level subtrees concurrently. The result is
// identical to a sequential conversion.
//
// Example:
//
//	doc, err := boxtree.Open("large.html").Parallel(8).Document()
func (b *Builder) Parallel(n int) *Builder {
	nb := b.clone()
	if n < 1 {
		n = 1
	}
	nb.options.parallelism = n
	return nb
}

// ExcludeNavigation drops navigation and boilerplate before conversion.
//
// Example:
//
//	doc, err := boxtree.Open("article.html").
//	    ExcludeNavigation(htmldoc.NavigationExclusionStandard).
//	    Document()
func (b *Builder) ExcludeNavigation(mode htmldoc.NavigationExclusionMode) *Builder {
	nb := b.clone()
	nb.options.navigation = mode
	return nb
}

// Format forces the input format instead of detecting it.
//
// Example:
//
//	doc, err := boxtree.Open("README").Format(format.Markdown).Document()
func (b *Builder) Format(f format.Format) *Builder {
	nb := b.clone()
	nb.format = f
	return nb
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Document converts the source and returns the document with its metadata.
//
// Example:
//
//	doc, err := boxtree.Open("doc.html").Document()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Metadata.Title, doc.Stats().TableCount)
func (b *Builder) Document() (*model.Document, error) {
	return b.DocumentContext(context.Background())
}

// DocumentContext is Document with a context that can cancel the conversion.
func (b *Builder) DocumentContext(ctx context.Context) (*model.Document, error) {
	root, meta, err := b.load()
	if err != nil {
		return nil, err
	}

	conv := layout.NewConverter(
		layout.WithLogger(b.options.logger),
		layout.WithParallelism(b.options.parallelism),
	)
	box, err := conv.Convert(ctx, root)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{Metadata: meta, Root: box}
	stats := doc.Stats()
	b.options.logger.Debug("converted document",
		zap.Int("boxes", stats.BoxCount),
		zap.Int("list_items", stats.ListItemCount),
		zap.Int("tables", stats.TableCount),
		zap.Int("cells", stats.CellCount))
	return doc, nil
}

// Root converts the source and returns only the root box.
//
// Example:
//
//	root, err := boxtree.FromString(html).Root()
func (b *Builder) Root() (*model.Box, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// Text converts the source and returns its text, with list markers in front
// of their items.
//
// Example:
//
//	text, err := boxtree.Open("doc.html").Text()
func (b *Builder) Text() (string, error) {
	doc, err := b.Document()
	if err != nil {
		return "", err
	}
	return doc.ExtractText(), nil
}

// load builds the dom tree and metadata from whichever source is set.
func (b *Builder) load() (*dom.Node, model.Metadata, error) {
	switch {
	case b.node != nil:
		return b.node, model.Metadata{Custom: make(map[string]string)}, nil
	case b.hasSource:
		return b.parse(strings.NewReader(b.source), b.format)
	case b.reader != nil:
		return b.parseStream(b.reader)
	case b.filename != "":
		return b.parseFile()
	default:
		return nil, model.Metadata{}, ErrNoSource
	}
}

func (b *Builder) parseFile() (*dom.Node, model.Metadata, error) {
	f, err := os.Open(b.filename)
	if err != nil {
		return nil, model.Metadata{}, fmt.Errorf("failed to open %s: %w", b.filename, err)
	}
	defer f.Close()

	ft := b.format
	if ft == format.Unknown {
		ft = format.Detect(b.filename)
	}
	br := bufio.NewReader(f)
	if ft == format.Unknown {
		ft, err = format.DetectFromReader(br)
		if err != nil {
			return nil, model.Metadata{}, fmt.Errorf("failed to read %s: %w", b.filename, err)
		}
	}
	if ft == format.Unknown {
		return nil, model.Metadata{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, b.filename)
	}
	return b.parse(br, ft)
}

func (b *Builder) parseStream(r io.Reader) (*dom.Node, model.Metadata, error) {
	ft := b.format
	br := bufio.NewReader(r)
	if ft == format.Unknown {
		var err error
		ft, err = format.DetectFromReader(br)
		if err != nil {
			return nil, model.Metadata{}, fmt.Errorf("failed to read input: %w", err)
		}
	}
	return b.parse(br, ft)
}

func (b *Builder) parse(r io.Reader, ft format.Format) (*dom.Node, model.Metadata, error) {
	opts := htmldoc.Options{NavigationExclusion: b.options.navigation}

	var (
		hr  *htmldoc.Reader
		err error
	)
	if ft == format.Markdown {
		hr, err = htmldoc.OpenMarkdown(r, opts)
	} else {
		hr, err = htmldoc.OpenReaderWithOptions(r, opts)
	}
	if err != nil {
		return nil, model.Metadata{}, err
	}
	defer hr.Close()

	b.options.logger.Debug("parsed document",
		zap.Stringer("format", formatOrHTML(ft)),
		zap.Stringer("navigation", b.options.navigation))
	return hr.Root(), hr.Metadata(), nil
}

func formatOrHTML(ft format.Format) format.Format {
	if ft == format.Unknown {
		return format.HTML
	}
	return ft
}
