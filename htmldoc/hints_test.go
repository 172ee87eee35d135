package htmldoc

import (
	"strings"
	"testing"

	"github.com/tsawler/boxtree/style"
)

func TestPresentationalHints(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		tag      string
		property string
		want     string
	}{
		{"ol lower alpha", `<ol type="a"><li>x</li></ol>`, "ol", style.ListStyleType, "lower-alpha"},
		{"ol upper alpha", `<ol type="A"><li>x</li></ol>`, "ol", style.ListStyleType, "upper-alpha"},
		{"ol lower roman", `<ol type="i"><li>x</li></ol>`, "ol", style.ListStyleType, "lower-roman"},
		{"ol upper roman", `<ol type="I"><li>x</li></ol>`, "ol", style.ListStyleType, "upper-roman"},
		{"ol decimal", `<ol type="1"><li>x</li></ol>`, "ol", style.ListStyleType, "decimal"},
		{"ul square", `<ul type="SQUARE"><li>x</li></ul>`, "ul", style.ListStyleType, "square"},
		{"li roman", `<ol><li type="I">x</li></ol>`, "li", style.ListStyleType, "upper-roman"},
		{"unknown type ignored", `<ol type="q"><li>x</li></ol>`, "ol", style.ListStyleType, ""},
		{"table border", `<table border="2"><tr><td>x</td></tr></table>`, "table", style.BorderWidth, "2px"},
		{"table border style", `<table border="2"><tr><td>x</td></tr></table>`, "table", style.BorderStyle, "solid"},
		{"table empty border", `<table border><tr><td>x</td></tr></table>`, "table", style.BorderWidth, "1px"},
		{"table zero border", `<table border="0"><tr><td>x</td></tr></table>`, "table", style.BorderStyle, ""},
		{"table cellspacing", `<table cellspacing="4"><tr><td>x</td></tr></table>`, "table", style.BorderSpacing, "4px"},
		{"bad cellspacing", `<table cellspacing="wide"><tr><td>x</td></tr></table>`, "table", style.BorderSpacing, ""},
		{"td pixel width", `<table><tr><td width="80">x</td></tr></table>`, "td", style.Width, "80px"},
		{"th percent width", `<table><tr><th width="25%">x</th></tr></table>`, "th", style.Width, "25%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := OpenReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("OpenReader() failed: %v", err)
			}
			node := r.Root().Find(tt.tag)
			if node == nil {
				t.Fatalf("no <%s> in tree", tt.tag)
			}
			if got := node.Style.Get(tt.property); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.property, got, tt.want)
			}
		})
	}
}

func TestPresentationalHints_InlineWins(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<ol type="i" style="list-style-type: lower-alpha"><li>x</li></ol>`))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	if got := r.Root().Find("ol").Style.Merged().Get(style.ListStyleType); got != "lower-alpha" {
		t.Errorf("list-style-type = %q, want lower-alpha", got)
	}
}
