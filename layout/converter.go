package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/lists"
	"github.com/tsawler/boxtree/model"
	"github.com/tsawler/boxtree/style"
	"github.com/tsawler/boxtree/tables"
)

// ErrNilRoot is returned when Convert is called without a tree.
var ErrNilRoot = errors.New("layout: nil root node")

// Converter turns a dom tree into a layout tree. It is safe for concurrent
// use; each call to Convert works on its own state.
type Converter struct {
	logger      *zap.Logger
	parallelism int
}

// NewConverter creates a converter. Without options it logs nothing and
// converts sequentially.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:      zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tableScope carries the resolved table around its cells so the grid is
// computed once per table.
type tableScope struct {
	node  *dom.Node
	style style.Declarations
	grid  tables.Grid
}

// walker holds the state of one conversion.
type walker struct {
	ctx    context.Context
	logger *zap.Logger
}

// Convert returns a document box whose children are the converted children
// of root. List items carry their markers and table cells their resolved
// style. A cell outside any table aborts the conversion with an error
// wrapping tables.ErrOutsideTable. A nil ctx is treated as
// context.Background.
func (c *Converter) Convert(ctx context.Context, root *dom.Node) (*model.Box, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{ctx: ctx, logger: c.logger}
	doc := &model.Box{
		Kind:  model.BoxDocument,
		Tag:   root.Tag,
		Style: root.Style.Merged(),
	}

	var scope *tableScope
	if root.IsElement("table") {
		scope = w.enterTable(root)
		doc.Columns = scope.grid.Columns
	}
	pre := preformatted(root, false)

	var (
		children []*model.Box
		err      error
	)
	if c.parallelism > 1 && len(root.Children) > 1 {
		children, err = w.convertParallel(root.Children, scope, pre, c.parallelism)
	} else {
		children, err = w.convertChildren(root.Children, scope, pre)
	}
	if err != nil {
		return nil, err
	}
	doc.Children = children
	return doc, nil
}

// convertParallel converts siblings concurrently and stitches the results
// back in source order.
func (w *walker) convertParallel(nodes []*dom.Node, scope *tableScope, pre bool, limit int) ([]*model.Box, error) {
	g, groupCtx := errgroup.WithContext(w.ctx)
	g.SetLimit(limit)

	sub := &walker{ctx: groupCtx, logger: w.logger}
	results := make([]*model.Box, len(nodes))
	for i := range nodes {
		i := i
		g.Go(func() error {
			box, err := sub.convertAt(nodes, i, scope, pre)
			if err != nil {
				return err
			}
			results[i] = box
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compact(results), nil
}

func (w *walker) convertChildren(nodes []*dom.Node, scope *tableScope, pre bool) ([]*model.Box, error) {
	var out []*model.Box
	for i := range nodes {
		box, err := w.convertAt(nodes, i, scope, pre)
		if err != nil {
			return nil, err
		}
		if box != nil {
			out = append(out, box)
		}
	}
	return out, nil
}

// convertAt converts nodes[i]. The siblings decide whether whitespace-only
// text survives. A nil box means the node produces no layout.
func (w *walker) convertAt(nodes []*dom.Node, i int, scope *tableScope, pre bool) (*model.Box, error) {
	if err := w.ctx.Err(); err != nil {
		return nil, err
	}

	n := nodes[i]
	switch n.Type {
	case dom.TextNode:
		return textBox(nodes, i, pre), nil
	case dom.ElementNode:
		return w.convertElement(n, scope, pre)
	default:
		return nil, nil
	}
}

func (w *walker) convertElement(n *dom.Node, scope *tableScope, pre bool) (*model.Box, error) {
	box := &model.Box{
		Kind:  model.BoxBlock,
		Tag:   n.Tag,
		Style: n.Style.Merged(),
	}

	switch n.Tag {
	case "br":
		box.Kind = model.BoxLineBreak
		return box, nil

	case "img":
		box.Kind = model.BoxImage
		box.Attributes = cloneAttributes(n.Attributes)
		return box, nil

	case "svg":
		return svgBox(n), nil

	case "li":
		box.Kind = model.BoxListItem
		box.Marker = lists.Resolve(n)
		if box.Marker != nil {
			w.logger.Debug("resolved list marker",
				zap.Int("index", n.IndexOfType()),
				zap.Stringer("kind", box.Marker.Kind),
				zap.String("text", box.Marker.Text),
				zap.String("url", box.Marker.URL))
		}

	case "table":
		box.Kind = model.BoxTable
		scope = w.enterTable(n)
		box.Columns = scope.grid.Columns

	case "thead", "tbody", "tfoot":
		box.Kind = model.BoxTableSection

	case "tr":
		box.Kind = model.BoxTableRow

	case "td", "th":
		box.Kind = model.BoxTableCell
		decls, err := cellStyle(n, scope)
		if err != nil {
			w.logger.Warn("table cell has no table", zap.String("tag", n.Tag), zap.Error(err))
			return nil, fmt.Errorf("converting <%s>: %w", n.Tag, err)
		}
		box.Style = decls

	default:
		if isInline(n.Tag) {
			box.Kind = model.BoxInline
		}
	}

	children, err := w.convertChildren(n.Children, scope, preformatted(n, pre))
	if err != nil {
		return nil, err
	}
	box.Children = children
	return box, nil
}

func (w *walker) enterTable(n *dom.Node) *tableScope {
	scope := &tableScope{
		node:  n,
		style: n.Style.Merged(),
		grid:  tables.NewGrid(n),
	}
	w.logger.Debug("resolved table grid",
		zap.Int("columns", scope.grid.Columns),
		zap.Int("rows", len(scope.grid.Rows)),
		zap.String("border_model", tables.BorderModel(scope.style)))
	return scope
}

// cellStyle uses the enclosing table scope when the cell belongs to it and
// falls back to a full resolution otherwise.
func cellStyle(cell *dom.Node, scope *tableScope) (style.Declarations, error) {
	if scope != nil && cell.Closest("table") == scope.node {
		return tables.ResolveInGrid(cell, scope.style, scope.grid), nil
	}
	return tables.ResolveCellStyle(cell)
}

// svgBox forwards an SVG subtree unchanged: tags keep their case and
// attributes and style are copied as they are.
func svgBox(n *dom.Node) *model.Box {
	box := &model.Box{
		Kind:       model.BoxSVG,
		Tag:        n.Tag,
		Attributes: cloneAttributes(n.Attributes),
		Style:      n.Style.Merged(),
	}
	for _, c := range n.Children {
		switch c.Type {
		case dom.ElementNode:
			box.Children = append(box.Children, svgBox(c))
		case dom.TextNode:
			if strings.TrimSpace(c.Text) != "" {
				box.Children = append(box.Children, &model.Box{Kind: model.BoxText, Text: c.Text})
			}
		}
	}
	return box
}

func textBox(nodes []*dom.Node, i int, pre bool) *model.Box {
	text := nodes[i].Text
	if pre {
		if text == "" {
			return nil
		}
		return &model.Box{Kind: model.BoxText, Text: text}
	}
	if isBlank(text) {
		// Whitespace between two inline neighbours is a word space.
		if flowsInline(nodes, i-1) && flowsInline(nodes, i+1) {
			return &model.Box{Kind: model.BoxText, Text: " "}
		}
		return nil
	}
	return &model.Box{Kind: model.BoxText, Text: collapseWhitespace(text)}
}

func flowsInline(nodes []*dom.Node, i int) bool {
	if i < 0 || i >= len(nodes) {
		return false
	}
	n := nodes[i]
	switch n.Type {
	case dom.TextNode:
		return !isBlank(n.Text)
	case dom.ElementNode:
		return isInline(n.Tag) || n.Tag == "img" || n.Tag == "br"
	}
	return false
}

func preformatted(n *dom.Node, inherited bool) bool {
	if inherited || n.IsElement("pre", "textarea", "listing") {
		return true
	}
	return strings.HasPrefix(n.Style.Get(style.WhiteSpace), "pre")
}

// isInline reports whether tag is phrasing content that flows within a line.
func isInline(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.A, atom.Abbr, atom.B, atom.Bdi, atom.Bdo, atom.Big, atom.Cite,
		atom.Code, atom.Data, atom.Del, atom.Dfn, atom.Em, atom.Font, atom.I,
		atom.Ins, atom.Kbd, atom.Label, atom.Mark, atom.Q, atom.S, atom.Samp,
		atom.Small, atom.Span, atom.Strike, atom.Strong, atom.Sub, atom.Sup,
		atom.Time, atom.Tt, atom.U, atom.Var:
		return true
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// collapseWhitespace folds runs of white space into single spaces, keeping
// one leading and one trailing space when the text had them.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	if first, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(first) {
		sb.WriteByte(' ')
	}
	sb.WriteString(strings.Join(fields, " "))
	if last, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(last) {
		sb.WriteByte(' ')
	}
	return sb.String()
}

func cloneAttributes(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

func compact(boxes []*model.Box) []*model.Box {
	out := boxes[:0]
	for _, b := range boxes {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}
