// Package delim locates math spans inside free text.
//
// A span is the shortest text strictly between one occurrence of a pair's left
// delimiter and the next occurrence of its right delimiter. Delimiters are
// always literal strings. Inline pairs never match across a line break;
// display pairs may.
//
// Two right-delimiter shapes are handled differently:
//
//   - a single-character right delimiter ends the content at its first
//     occurrence, and the content may not be empty (so "$$" is never an
//     inline span of "$"/"$");
//   - a longer right delimiter ends the content at its first occurrence that
//     starts after the first content character, so the content always holds
//     at least one character and may begin with the right delimiter itself.
//
// Scanning is global and non-overlapping: after a match the scan resumes at
// the end of the match, even when the caller rejects it, and after a failed
// attempt it resumes one byte after the failed left delimiter.
package delim

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Mode tells whether a pair delimits inline or display math.
type Mode int

const (
	Inline Mode = iota
	Display
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Display:
		return "display"
	default:
		return "unknown"
	}
}

// Pair is a delimiter pair and the mode of the math it encloses.
type Pair struct {
	Left  string
	Right string
	Mode  Mode
}

// Span is one math span found in a source string. Start and End are byte
// offsets of the whole match, delimiters included.
type Span struct {
	Start   int
	End     int
	Content string
	Pair    Pair
}

// MatchAt reports the span of p whose left delimiter starts at offset i of
// src, if there is one.
func (p Pair) MatchAt(src string, i int) (Span, bool) {
	if p.Left == "" || p.Right == "" || i < 0 || i > len(src) || !strings.HasPrefix(src[i:], p.Left) {
		return Span{}, false
	}
	start := i + len(p.Left)
	limit := len(src)
	if p.Mode == Inline {
		if nl := strings.IndexByte(src[start:], '\n'); nl >= 0 {
			limit = start + nl
		}
	}
	if start >= limit {
		return Span{}, false
	}

	var end int
	if utf8.RuneCountInString(p.Right) == 1 {
		j := strings.Index(src[start:limit], p.Right)
		if j <= 0 {
			return Span{}, false
		}
		end = start + j
	} else {
		_, first := utf8.DecodeRuneInString(src[start:limit])
		j := strings.Index(src[start+first:limit], p.Right)
		if j < 0 {
			return Span{}, false
		}
		end = start + first + j
	}

	return Span{
		Start:   i,
		End:     end + len(p.Right),
		Content: src[start:end],
		Pair:    p,
	}, true
}

// Find returns every span of p in src, left to right.
func (p Pair) Find(src string) []Span {
	return Scan(src, []Pair{p}, nil)
}

// Scan finds the spans of pairs in src, left to right. The pairs are applied
// in the given order: each pair scans the whole text left uncovered by the
// spans earlier pairs kept, so a later pair never cuts into an earlier
// pair's span. A span is kept when accept returns true (a nil accept keeps
// every span). A rejected span still ends its pair's match, so that pair
// resumes after it, but its text stays open to the later pairs.
func Scan(src string, pairs []Pair, accept func(Span) bool) []Span {
	matches := scan(src, pairs, func(sp Span) (string, bool) {
		return "", accept == nil || accept(sp)
	})
	spans := make([]Span, len(matches))
	for n, m := range matches {
		spans[n] = m.Span
	}
	return spans
}

// Replace rewrites the spans found by Scan with the text returned by fn.
// Returning false from fn rejects the span, leaving its text to the
// remaining pairs and otherwise untouched.
func Replace(src string, pairs []Pair, fn func(Span) (string, bool)) string {
	matches := scan(src, pairs, fn)
	if len(matches) == 0 {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, m := range matches {
		b.WriteString(src[last:m.Start])
		b.WriteString(m.out)
		last = m.End
	}
	b.WriteString(src[last:])
	return b.String()
}

type match struct {
	Span
	out string
}

// region is a byte range of the source no kept span covers yet.
type region struct {
	start, end int
}

func scan(src string, pairs []Pair, fn func(Span) (string, bool)) []match {
	var matches []match
	regions := []region{{0, len(src)}}
	for _, p := range pairs {
		if p.Left == "" || p.Right == "" {
			continue
		}
		var open []region
		for _, r := range regions {
			open = append(open, p.scanRegion(src, r, fn, &matches)...)
		}
		regions = open
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].Start < matches[b].Start })
	return matches
}

// scanRegion appends the kept spans of p inside r to matches and returns the
// parts of r they leave uncovered.
func (p Pair) scanRegion(src string, r region, fn func(Span) (string, bool), matches *[]match) []region {
	var open []region
	sub := src[:r.end]
	gap := r.start
	for i := r.start; i < r.end; {
		k := strings.Index(sub[i:], p.Left)
		if k < 0 {
			break
		}
		i += k

		sp, ok := p.MatchAt(sub, i)
		if !ok {
			i++
			continue
		}
		if out, keep := fn(sp); keep {
			*matches = append(*matches, match{Span: sp, out: out})
			if sp.Start > gap {
				open = append(open, region{gap, sp.Start})
			}
			gap = sp.End
		}
		i = sp.End
	}
	if r.end > gap {
		open = append(open, region{gap, r.end})
	}
	return open
}
