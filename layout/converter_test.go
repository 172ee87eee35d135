package layout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/boxtree/dom"
	"github.com/tsawler/boxtree/htmldoc"
	"github.com/tsawler/boxtree/model"
	"github.com/tsawler/boxtree/style"
	"github.com/tsawler/boxtree/tables"
)

func parse(t *testing.T, src string) *dom.Node {
	t.Helper()
	r, err := htmldoc.OpenReader(strings.NewReader(src))
	require.NoError(t, err)
	return r.Root()
}

func convert(t *testing.T, src string, opts ...Option) *model.Box {
	t.Helper()
	root, err := NewConverter(opts...).Convert(context.Background(), parse(t, src))
	require.NoError(t, err)
	return root
}

func markers(root *model.Box) []string {
	var out []string
	for _, item := range root.Find(model.BoxListItem) {
		switch {
		case item.Marker == nil:
			out = append(out, "")
		case item.Marker.Kind == model.MarkerImage:
			out = append(out, "url:"+item.Marker.URL)
		default:
			out = append(out, item.Marker.Text)
		}
	}
	return out
}

func TestConvert_ListMarkers(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "decimal",
			html: `<ol><li>a</li><li>b</li><li>c</li></ol>`,
			want: []string{"1.", "2.", "3."},
		},
		{
			name: "start offset",
			html: `<ol start="5"><li>a</li><li>b</li></ol>`,
			want: []string{"5.", "6."},
		},
		{
			name: "value override continues",
			html: `<ol><li>a</li><li value="10">b</li><li>c</li></ol>`,
			want: []string{"1.", "10.", "11."},
		},
		{
			name: "lower alpha with start",
			html: `<ol start="3" style="list-style-type: lower-alpha"><li>a</li><li>b</li></ol>`,
			want: []string{"c.", "d."},
		},
		{
			name: "roman ignores start",
			html: `<ol start="4" type="I"><li>a</li><li>b</li></ol>`,
			want: []string{"I.", "II."},
		},
		{
			name: "bullets",
			html: `<ul><li>a</li><li>b</li></ul>`,
			want: []string{"•", "•"},
		},
		{
			name: "none",
			html: `<ul style="list-style: none"><li>a</li></ul>`,
			want: []string{""},
		},
		{
			name: "image",
			html: `<ul style="list-style-type: url('dot.png')"><li>a</li></ul>`,
			want: []string{"url:dot.png"},
		},
		{
			name: "nested lists number independently",
			html: `<ol><li>a<ol type="a"><li>x</li><li>y</li></ol></li><li>b</li></ol>`,
			want: []string{"1.", "a.", "b.", "2."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markers(convert(t, tt.html)))
		})
	}
}

func TestConvert_TableCells(t *testing.T) {
	root := convert(t, `<table style="border: 2px solid black; border-collapse: collapse">
		<thead><tr><th>a</th><th>b</th><th>c</th></tr></thead>
		<tbody><tr><td colspan="2">wide</td><td>x</td></tr></tbody>
	</table>`)

	tbls := root.Find(model.BoxTable)
	require.Len(t, tbls, 1)
	assert.Equal(t, 3, tbls[0].Columns)
	assert.Len(t, root.Find(model.BoxTableSection), 2)
	assert.Len(t, root.Find(model.BoxTableRow), 2)

	cells := root.Find(model.BoxTableCell)
	require.Len(t, cells, 6)

	first := cells[0].Style
	assert.Equal(t, "33.33333%", first.Get(style.Width))
	assert.Equal(t, "0", first.Get("border-left-width"))
	assert.Equal(t, "2px", first.Get(style.BorderWidth))

	second := cells[1].Style
	assert.Equal(t, "2px", second.Get("border-left-width"))
	assert.Equal(t, "0", second.Get("border-right-width"))

	wide := cells[3].Style
	assert.Equal(t, "66.66667%", wide.Get(style.Width))
}

func TestConvert_SpacingModel(t *testing.T) {
	root := convert(t, `<table cellspacing="3" border="1"><tr><td>a</td><td style="width: 80%">b</td></tr></table>`)

	cells := root.Find(model.BoxTableCell)
	require.Len(t, cells, 2)
	assert.Equal(t, "3px", cells[0].Style.Get(style.Margin))
	assert.Equal(t, "1px", cells[0].Style.Get(style.BorderWidth))
	assert.Equal(t, "50.00000%", cells[0].Style.Get(style.Width))
	assert.Equal(t, "80%", cells[1].Style.Get(style.Width), "cell style is applied last")
}

func TestConvert_NestedTablesUseOwnGrid(t *testing.T) {
	root := convert(t, `<table><tr><td>outer<table><tr><td>1</td><td>2</td><td>3</td><td>4</td></tr></table></td><td>b</td></tr></table>`)

	cells := root.Find(model.BoxTableCell)
	require.Len(t, cells, 6)
	assert.Equal(t, "50.00000%", cells[0].Style.Get(style.Width))
	assert.Equal(t, "25.00000%", cells[1].Style.Get(style.Width))
	assert.Equal(t, "50.00000%", cells[5].Style.Get(style.Width))
}

func TestConvert_CellOutsideTable(t *testing.T) {
	body := dom.NewElement("body", nil)
	div := body.AppendChild(dom.NewElement("div", nil))
	div.AppendChild(dom.NewElement("td", nil))

	core, logs := observer.New(zapcore.WarnLevel)
	_, err := NewConverter(WithLogger(zap.New(core))).Convert(context.Background(), body)

	require.Error(t, err)
	assert.True(t, errors.Is(err, tables.ErrOutsideTable))
	var se *tables.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "td", se.Tag)
	assert.Equal(t, 1, logs.FilterMessage("table cell has no table").Len())
}

func TestConvert_TableRootSubtree(t *testing.T) {
	table := parse(t, `<table><tr><td>a</td><td>b</td></tr></table>`).Find("table")
	require.NotNil(t, table)

	root, err := NewConverter().Convert(context.Background(), table)
	require.NoError(t, err)
	assert.Equal(t, 2, root.Columns)
	assert.Len(t, root.Find(model.BoxTableCell), 2)
}

func TestConvert_PassThrough(t *testing.T) {
	root := convert(t, `<div><p>Hello <b>bold</b> <i>world</i></p><img src="a.png" alt="A"><br>`+
		`<svg viewBox="0 0 4 4"><linearGradient id="g"></linearGradient></svg></div>`)

	require.Len(t, root.Children, 1)
	div := root.Children[0]
	assert.Equal(t, model.BoxBlock, div.Kind)

	p := div.Children[0]
	assert.Equal(t, "Hello bold world", p.TextContent())
	assert.Len(t, p.Find(model.BoxInline), 2)

	imgs := root.Find(model.BoxImage)
	require.Len(t, imgs, 1)
	assert.Equal(t, "a.png", imgs[0].Attributes["src"])

	assert.Len(t, root.Find(model.BoxLineBreak), 1)

	svgs := root.Find(model.BoxSVG)
	require.Len(t, svgs, 2)
	assert.Equal(t, "0 0 4 4", svgs[0].Attributes["viewBox"])
	assert.Equal(t, "linearGradient", svgs[1].Tag)
}

func TestConvert_Whitespace(t *testing.T) {
	root := convert(t, "<ul>\n  <li>one\n   two</li>\n  <li>three</li>\n</ul><pre>  a\n  b</pre>")

	ul := root.Children[0]
	require.Len(t, ul.Children, 2, "whitespace between items is dropped")
	assert.Equal(t, "one two", ul.Children[0].Children[0].Text)

	pre := root.Children[1]
	assert.Equal(t, "  a\n  b", pre.Children[0].Text)
}

func TestConvert_ParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString(`<section><ol start="4"><li>a</li><li value="9">b</li><li>c</li></ol>`)
		sb.WriteString(`<table border="1"><tr><td colspan="3">x</td></tr><tr><td>1</td><td>2</td><td>3</td></tr></table></section>`)
	}
	src := sb.String()

	sequential := convert(t, src)
	parallel := convert(t, src, WithParallelism(8))

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel conversion differs (-sequential +parallel):\n%s", diff)
	}
}

func TestConvert_ParallelError(t *testing.T) {
	body := dom.NewElement("body", nil)
	for i := 0; i < 5; i++ {
		body.AppendChild(dom.NewElement("p", nil))
	}
	body.AppendChild(dom.NewElement("th", nil))

	_, err := NewConverter(WithParallelism(3)).Convert(context.Background(), body)
	assert.ErrorIs(t, err, tables.ErrOutsideTable)
}

func TestConvert_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConverter().Convert(ctx, parse(t, `<p>x</p>`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvert_NilContext(t *testing.T) {
	//nolint:staticcheck // a nil context falls back to Background
	root, err := NewConverter(WithParallelism(2)).Convert(nil, parse(t, `<ol><li>a</li></ol><p>b</p>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1."}, markers(root))
}

func TestConvert_DataURIMarker(t *testing.T) {
	root := convert(t, `<ul style="list-style: url('data:image/svg+xml;utf8,<svg/>')"><li>a</li></ul>`)
	assert.Equal(t, []string{"url:data:image/svg+xml;utf8,<svg/>"}, markers(root))
}

func TestConvert_NilRoot(t *testing.T) {
	_, err := NewConverter().Convert(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilRoot)
}

func TestConvert_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	convert(t, `<ol><li>a</li></ol><table><tr><td>x</td></tr></table>`, WithLogger(zap.New(core)))

	markerLogs := logs.FilterMessage("resolved list marker").All()
	require.Len(t, markerLogs, 1)
	assert.Equal(t, "1.", markerLogs[0].ContextMap()["text"])

	gridLogs := logs.FilterMessage("resolved table grid").All()
	require.Len(t, gridLogs, 1)
	assert.Equal(t, int64(1), gridLogs[0].ContextMap()["columns"])
	assert.Equal(t, tables.CollapseModel, gridLogs[0].ContextMap()["border_model"])
}

func TestOptions(t *testing.T) {
	c := NewConverter(WithLogger(nil), WithParallelism(-2))
	assert.NotNil(t, c.logger)
	assert.Equal(t, 1, c.parallelism)
}
