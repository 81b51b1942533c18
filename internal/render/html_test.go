package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/treykane/mathmark/internal/delim"
)

func TestMarkdownHTMLKeepsMathForTypesetter(t *testing.T) {
	out, err := MarkdownHTML("# Title\n\nInline $a_b$ and *text*.\n", delim.DefaultSet())
	if err != nil {
		t.Fatalf("markdown html: %v", err)
	}
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Fatalf("expected heading, got %q", out)
	}
	if !strings.Contains(out, "$a_b$") {
		t.Fatalf("expected math span to survive with its underscore, got %q", out)
	}
	if strings.Contains(out, "<em>b") {
		t.Fatalf("expected no emphasis inside math, got %q", out)
	}
	if !strings.Contains(out, "<em>text</em>") {
		t.Fatalf("expected emphasis outside math, got %q", out)
	}
}

func TestWriteHTMLKaTeX(t *testing.T) {
	var out bytes.Buffer
	err := WriteHTML(&out, Page{
		Title:  "Notes",
		Source: "$$x^2$$",
		Set:    delim.DefaultSet(),
		Engine: KaTeX,
	})
	if err != nil {
		t.Fatalf("write html: %v", err)
	}
	page := out.String()
	for _, want := range []string{
		"<title>Notes</title>",
		"auto-render.min.js",
		`{"left":"$$","right":"$$","display":true}`,
		`{"left":"$","right":"$","display":false}`,
		"$$x^2$$",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected page to contain %q, got:\n%s", want, page)
		}
	}
	if strings.Index(page, `"left":"$$"`) > strings.Index(page, `"left":"$"`) {
		t.Fatal("expected display delimiters to be listed first")
	}
}

func TestWriteHTMLMathJax(t *testing.T) {
	var out bytes.Buffer
	err := WriteHTML(&out, Page{
		Source: "text",
		Set:    delim.NewSet("@", "@", "@@", "@@"),
		Engine: MathJax,
	})
	if err != nil {
		t.Fatalf("write html: %v", err)
	}
	page := out.String()
	for _, want := range []string{
		"<title>mathmark</title>",
		"tex-chtml.js",
		`inlineMath: [["@","@"]]`,
		`displayMath: [["@@","@@"]]`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected page to contain %q, got:\n%s", want, page)
		}
	}
	if strings.Contains(page, "katex") {
		t.Fatal("expected no katex assets in a mathjax page")
	}
}
