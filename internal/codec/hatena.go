package codec

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/treykane/mathmark/internal/delim"
)

// HatenaName is the registry key of the Hatena blog format.
const HatenaName = "hatena"

const (
	// hatenaLineBreak stands in for a newline inside a display tag.
	hatenaLineBreak = "   "

	// hatenaDisplayMarker opens every display tag, already escaped.
	hatenaDisplayMarker = hatenaLineBreak + `\\displaystyle`
)

var (
	// hatenaTag matches [tex:...]. The content holds at most one newline, and
	// a backslash only escapes a closing bracket when it is doubled.
	hatenaTag = regexp2.MustCompile(
		`\[tex:((?:\\\\\]|\\(?!\])|[^\n\]\\])*\n?(?:\\\\\]|\\(?!\])|[^\n\]\\])*)\]`,
		regexp2.IgnoreCase,
	)

	hatenaEscaper = strings.NewReplacer(
		`\`, `\\`,
		`*`, `\*`,
		`^`, `\^`,
		`_`, `\_`,
		`[`, `\\[`,
		`]`, `\\]`,
	)

	hatenaEscapedChar    = regexp.MustCompile(`\\([\\\]\[^*_])`)
	hatenaEscapedBracket = regexp.MustCompile(`\\([\[\]])`)
	newlineRun           = regexp.MustCompile(`\n+`)
)

// Hatena encodes math as Hatena blog [tex:...] tags.
type Hatena struct{}

func (Hatena) Name() string { return HatenaName }

// EncodeSpan escapes content for a [tex:...] tag. Display content becomes a
// single line: it is prefixed with \displaystyle and every newline is
// replaced by three spaces. Display content holding a blank line is not a
// math block and is rejected.
func (Hatena) EncodeSpan(content string, mode delim.Mode) (string, bool) {
	if mode == delim.Display {
		if strings.Contains(content, "\n\n") {
			return "", false
		}
		content = hatenaLineBreak + `\displaystyle` + strings.ReplaceAll(content, "\n", hatenaLineBreak)
	}
	return "[tex:" + hatenaEscaper.Replace(content) + "]", true
}

// Decode turns [tex:...] tags back into delimiter-wrapped math. Empty tags
// and source the pattern cannot process are returned unchanged.
func (Hatena) Decode(src string, set delim.Set) string {
	out, err := hatenaTag.ReplaceFunc(src, func(m regexp2.Match) string {
		content := strings.ReplaceAll(m.GroupByNumber(1).String(), "\n", "")
		if content == "" {
			return m.String()
		}
		if rest, ok := strings.CutPrefix(content, hatenaDisplayMarker); ok {
			rest = strings.ReplaceAll(rest, hatenaLineBreak, "\n")
			rest = newlineRun.ReplaceAllString(rest, "\n")
			return set.Display.Left + hatenaUnescape(rest) + set.Display.Right
		}
		return set.Inline.Left + hatenaUnescape(content) + set.Inline.Right
	}, -1, -1)
	if err != nil {
		return src
	}
	return out
}

func hatenaUnescape(s string) string {
	s = hatenaEscapedChar.ReplaceAllString(s, "$1")
	return hatenaEscapedBracket.ReplaceAllString(s, "$1")
}
