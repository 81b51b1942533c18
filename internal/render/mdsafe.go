package render

import (
	"strings"

	"github.com/treykane/mathmark/internal/delim"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`^`, `\^`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
)

// SafeMarkdown backslash-escapes the characters a markdown renderer would
// reinterpret inside math spans. Delimiters and text outside spans are kept
// as they are, so a math renderer can still find the spans after the
// markdown pass. Display spans holding a blank line are not math blocks and
// are left alone.
func SafeMarkdown(src string, set delim.Set) string {
	return delim.Replace(src, set.Ordered(), func(sp delim.Span) (string, bool) {
		if sp.Pair.Mode == delim.Display && strings.Contains(sp.Content, "\n\n") {
			return "", false
		}
		return sp.Pair.Left + markdownEscaper.Replace(sp.Content) + sp.Pair.Right, true
	})
}
