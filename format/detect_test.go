package format

import (
	"bufio"
	"io"
	"strings"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, "HTML"},
		{Markdown, "Markdown"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_ExtensionAndMediaType(t *testing.T) {
	tests := []struct {
		format    Format
		ext       string
		mediaType string
	}{
		{HTML, ".html", "text/html"},
		{Markdown, ".md", "text/markdown"},
		{Unknown, "", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.ext {
			t.Errorf("%v.Extension() = %q, want %q", tt.format, got, tt.ext)
		}
		if got := tt.format.MediaType(); got != tt.mediaType {
			t.Errorf("%v.MediaType() = %q, want %q", tt.format, got, tt.mediaType)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.html", HTML},
		{"document.HTML", HTML},
		{"document.Html", HTML},
		{"document.htm", HTML},
		{"document.HTM", HTML},
		{"document.xhtml", HTML},
		{"notes.md", Markdown},
		{"notes.MD", Markdown},
		{"notes.markdown", Markdown},
		{"notes.mkd", Markdown},
		{"document.pdf", Unknown},
		{"document.txt", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/file.html", HTML},
		{"/path/to/readme.md", Markdown},
		{"/path.md/to/file", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"doctype", "<!DOCTYPE html><html></html>", HTML},
		{"doctype lower", "<!doctype html>", HTML},
		{"html tag", "<html><body></body></html>", HTML},
		{"leading whitespace", "\n\t  <HTML>", HTML},
		{"byte order mark", "\uFEFF<!DOCTYPE html>", HTML},
		{"xhtml", `<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml">`, HTML},
		{"plain xml", `<?xml version="1.0"?><feed></feed>`, Unknown},
		{"fragment", `<ol start="3"><li>x</li></ol>`, HTML},
		{"comment", "<!-- generated --><p>x</p>", HTML},
		{"heading", "# Title\n\nBody", Markdown},
		{"deep heading", "###### Six", Markdown},
		{"hashtag", "#hashtag", Unknown},
		{"bullet list", "- one\n- two", Markdown},
		{"star list", "* one", Markdown},
		{"ordered list", "3. three\n4. four", Markdown},
		{"paren list", "1) one", Markdown},
		{"quote", "> quoted", Markdown},
		{"fence", "```go\nfunc main() {}\n```", Markdown},
		{"table", "| a | b |\n|---|---|", Markdown},
		{"front matter", "---\ntitle: x\n---", Markdown},
		{"prose", "Just some words.", Unknown},
		{"number", "2024 was a year", Unknown},
		{"empty", "", Unknown},
		{"whitespace only", "   \n", Unknown},
		{"binary", "\x00\x01\x02\x03", Unknown},
		{"less than", "< 3 apples", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic([]byte(tt.data)); got != tt.want {
				t.Errorf("DetectFromMagic(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic_LongInput(t *testing.T) {
	data := "- item\n" + strings.Repeat("é", 600)
	if got := DetectFromMagic([]byte(data)); got != Markdown {
		t.Errorf("DetectFromMagic(long) = %v, want Markdown", got)
	}
}

func TestDetectFromReader_DoesNotConsume(t *testing.T) {
	src := "<table><tr><td>x</td></tr></table>"
	br := bufio.NewReader(strings.NewReader(src))

	got, err := DetectFromReader(br)
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if got != HTML {
		t.Errorf("DetectFromReader() = %v, want HTML", got)
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(rest) != src {
		t.Errorf("reader consumed input: got %q", rest)
	}
}
