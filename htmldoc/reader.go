package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/model"
	"github.com/tsawler/boxtree/style"
)

// Reader holds a parsed document: its element tree and metadata.
type Reader struct {
	root     *dom.Node
	metadata model.Metadata
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	return OpenWithOptions(filename, Options{})
}

// OpenWithOptions opens an HTML file with the given options.
func OpenWithOptions(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReaderWithOptions(f, opts)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithOptions(r, Options{})
}

// OpenReaderWithOptions parses HTML from an io.Reader with the given options.
func OpenReaderWithOptions(r io.Reader, opts Options) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		metadata: model.Metadata{Custom: make(map[string]string)},
	}

	reader.extractHead(doc)
	if htmlNode := findElement(doc, "html"); htmlNode != nil {
		reader.metadata.Language = normalizeLanguage(getAttr(htmlNode, "lang"))
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	checker := newExclusionChecker(opts.NavigationExclusion, doc)
	reader.root = build(body, checker)
	if reader.root == nil {
		reader.root = dom.NewElement("body", nil)
	}

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Root returns the body element of the document.
func (r *Reader) Root() *dom.Node {
	return r.root
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := r.metadata
	meta.Keywords = append([]string(nil), r.metadata.Keywords...)
	meta.Custom = make(map[string]string, len(r.metadata.Custom))
	for k, v := range r.metadata.Custom {
		meta.Custom[k] = v
	}
	return meta
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.metadata.Title = strings.TrimSpace(textContent(c))
			case "meta":
				name := getAttr(c, "name")
				if name == "" {
					name = getAttr(c, "property")
				}
				content := getAttr(c, "content")
				if name != "" && content != "" {
					r.setMeta(strings.ToLower(name), content)
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

func (r *Reader) setMeta(name, content string) {
	switch name {
	case "author":
		r.metadata.Author = content
	case "description":
		r.metadata.Subject = content
	case "keywords":
		for _, kw := range strings.Split(content, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				r.metadata.Keywords = append(r.metadata.Keywords, kw)
			}
		}
	default:
		r.metadata.Custom[name] = content
	}
}

// normalizeLanguage canonicalises a BCP 47 tag, keeping the raw value when
// it does not parse.
func normalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

// build converts an html.Node subtree to a dom subtree, attaching the
// cascade of each element. Skipped and excluded elements return nil.
func build(n *html.Node, ec *exclusionChecker) *dom.Node {
	switch n.Type {
	case html.TextNode:
		return dom.NewText(n.Data)
	case html.ElementNode:
	case html.DocumentNode:
		node := dom.NewElement("body", nil)
		appendChildren(node, n, ec)
		return node
	default:
		return nil
	}

	if shouldSkipElement(n.Data) || ec.shouldExclude(n) {
		return nil
	}

	attrs := attributes(n)
	node := &dom.Node{
		Type:       dom.ElementNode,
		Tag:        n.Data,
		Attributes: attrs,
		Style:      cascade(n, attrs),
	}
	appendChildren(node, n, ec)
	return node
}

func appendChildren(node *dom.Node, n *html.Node, ec *exclusionChecker) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := build(c, ec); child != nil {
			node.AppendChild(child)
		}
	}
}

// attributes copies the attributes of n. Namespaced attributes keep their
// prefix, e.g. "xlink:href".
func attributes(n *html.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		attrs[key] = a.Val
	}
	return attrs
}

// cascade returns the element's cascade: presentational hints first, then
// the inline style attribute.
func cascade(n *html.Node, attrs map[string]string) style.Cascade {
	var c style.Cascade
	if hints := presentationalHints(n, attrs); len(hints) > 0 {
		c = append(c, hints)
	}
	if inline, ok := attrs["style"]; ok {
		if decls := style.ParseInline(inline); len(decls) > 0 {
			c = append(c, decls)
		}
	}
	return c
}

// shouldSkipElement returns true for elements that never produce layout.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "head", "title", "meta", "link",
		"math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent extracts all text content from a node and its descendants.
func textContent(n *html.Node) string {
	var result strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			result.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return result.String()
}
