package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"github.com/treykane/mathmark/internal/delim"
)

// Page describes a standalone HTML export.
type Page struct {
	Title  string
	Source string
	Set    delim.Set
	Engine Engine
}

type katexDelimiter struct {
	Left    string `json:"left"`
	Right   string `json:"right"`
	Display bool   `json:"display"`
}

type pageData struct {
	Title       string
	Body        template.HTML
	KaTeX       bool
	Delimiters  []katexDelimiter
	InlineMath  [][]string
	DisplayMath [][]string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .KaTeX}}
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css">
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js"></script>
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js"></script>
<script>
document.addEventListener("DOMContentLoaded", function () {
  renderMathInElement(document.body, {delimiters: {{.Delimiters}}});
});
</script>
{{- else}}
<script>
window.MathJax = {tex: {inlineMath: {{.InlineMath}}, displayMath: {{.DisplayMath}}, processEscapes: true}};
</script>
<script defer src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
{{- end}}
</head>
<body>
{{.Body}}
</body>
</html>
`))

// MarkdownHTML converts src to an HTML fragment. Math spans survive the
// conversion with their delimiters, ready for a math typesetter.
func MarkdownHTML(src string, set delim.Set) (string, error) {
	var out bytes.Buffer
	if err := goldmark.Convert([]byte(SafeMarkdown(src, set)), &out); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return out.String(), nil
}

// WriteHTML writes page as a complete HTML document that typesets its math
// with the configured engine and delimiters.
func WriteHTML(w io.Writer, page Page) error {
	body, err := MarkdownHTML(page.Source, page.Set)
	if err != nil {
		return err
	}

	data := pageData{
		Title:       page.Title,
		Body:        template.HTML(body),
		KaTeX:       page.Engine != MathJax,
		InlineMath:  [][]string{{page.Set.Inline.Left, page.Set.Inline.Right}},
		DisplayMath: [][]string{{page.Set.Display.Left, page.Set.Display.Right}},
	}
	if data.Title == "" {
		data.Title = "mathmark"
	}
	for _, p := range page.Set.Ordered() {
		data.Delimiters = append(data.Delimiters, katexDelimiter{
			Left:    p.Left,
			Right:   p.Right,
			Display: p.Mode == delim.Display,
		})
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("write html page: %w", err)
	}
	return nil
}
