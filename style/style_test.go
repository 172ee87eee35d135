package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_LaterWins(t *testing.T) {
	got := Merge(
		Declarations{"border-width": "1px", "border-style": "solid"},
		nil,
		Declarations{"border-width": "3px"},
	)
	want := Declarations{"border-width": "3px", "border-style": "solid"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_DoesNotAlias(t *testing.T) {
	first := Declarations{"width": "10%"}
	got := Merge(first)
	got["width"] = "20%"
	if first["width"] != "10%" {
		t.Errorf("Merge() result aliases its input")
	}
	if Merge() == nil {
		t.Errorf("Merge() with no entries returned nil")
	}
}

func TestCascade_Get(t *testing.T) {
	c := Cascade{
		{ListStyleType: "decimal"},
		{ListStyleType: "lower-roman"},
		{BorderWidth: "2px"},
	}
	if got := c.Get(ListStyleType); got != "lower-roman" {
		t.Errorf("Get(list-style-type) = %q, want lower-roman", got)
	}
	if got := c.Get(BorderSpacing); got != "" {
		t.Errorf("Get(border-spacing) = %q, want empty", got)
	}
	if got := c.Merged().Get(BorderWidth); got != "2px" {
		t.Errorf("Merged().Get(border-width) = %q, want 2px", got)
	}
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Declarations
	}{
		{
			name:  "simple",
			input: "List-Style-Type: upper-alpha; border-collapse:collapse",
			want:  Declarations{"list-style-type": "upper-alpha", "border-collapse": "collapse"},
		},
		{
			name:  "malformed declarations skipped",
			input: "color; : red; width: ; ;border-spacing: 4px",
			want:  Declarations{"border-spacing": "4px"},
		},
		{
			name:  "important stripped",
			input: "list-style: none !important",
			want:  Declarations{"list-style": "none"},
		},
		{
			name:  "url value keeps colon",
			input: "list-style-type: url('http://x/a.png')",
			want:  Declarations{"list-style-type": "url('http://x/a.png')"},
		},
		{
			name:  "data uri keeps semicolon",
			input: `list-style: url("data:image/png;base64,iVBORw0KGgo="); border-collapse: collapse`,
			want: Declarations{
				"list-style":      `url("data:image/png;base64,iVBORw0KGgo=")`,
				"border-collapse": "collapse",
			},
		},
		{
			name:  "quoted semicolon",
			input: "list-style-type: url('a;b.png');width:10px",
			want:  Declarations{"list-style-type": "url('a;b.png')", "width": "10px"},
		},
		{
			name:  "unbalanced paren swallows rest",
			input: "list-style: url(a.png; width: 10px",
			want:  Declarations{"list-style": "url(a.png; width: 10px"},
		},
		{
			name:  "border shorthand",
			input: "border: 1px solid #333",
			want: Declarations{
				"border":       "1px solid #333",
				"border-width": "1px",
				"border-style": "solid",
				"border-color": "#333",
			},
		},
		{
			name:  "margin two values",
			input: "margin: 1px 2px",
			want: Declarations{
				"margin":        "1px 2px",
				"margin-top":    "1px",
				"margin-bottom": "1px",
				"margin-right":  "2px",
				"margin-left":   "2px",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"2px", 2, true},
		{"1.5pt", 1.5, true},
		{"0", 0, true},
		{"50%", 50, true},
		{"black", 0, false},
		{"#fff", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLength(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseLength(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
