package delim

import (
	"reflect"
	"strings"
	"testing"
)

func contents(spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, sp.Content)
	}
	return out
}

func TestFind(t *testing.T) {
	dollar := Pair{Left: "$", Right: "$", Mode: Inline}
	dollarDisplay := Pair{Left: "$", Right: "$", Mode: Display}
	double := Pair{Left: "$$", Right: "$$", Mode: Display}
	paren := Pair{Left: `\(`, Right: `\)`, Mode: Inline}
	because := Pair{Left: "∵", Right: "∎", Mode: Inline}

	tests := []struct {
		name string
		pair Pair
		src  string
		want []string
	}{
		{name: "single span", pair: dollar, src: "$a+b$", want: []string{"a+b"}},
		{name: "two spans", pair: dollar, src: "x $a$ and $b$ y", want: []string{"a", "b"}},
		{name: "empty content never matches", pair: dollar, src: "$$", want: []string{}},
		{name: "unterminated", pair: dollar, src: "cost $5 today", want: []string{}},
		{name: "inline stops at line end", pair: dollar, src: "$a\nb$", want: []string{}},
		{name: "inline per line", pair: dollar, src: "$a\n$b$", want: []string{"b"}},
		{name: "display crosses lines", pair: dollarDisplay, src: "$a\nb$", want: []string{"a\nb"}},
		{name: "multi-char right", pair: double, src: "$$x^2$$", want: []string{"x^2"}},
		{name: "multi-char shortest", pair: double, src: "$$a$$ $$b$$", want: []string{"a", "b"}},
		{name: "multi-char extra closer", pair: double, src: "$$a$$$", want: []string{"a"}},
		{name: "multi-char only delimiters", pair: double, src: "$$$$", want: []string{}},
		{name: "multi-char absorbs leading closer", pair: paren, src: `\(\)x\)`, want: []string{`\)x`}},
		{name: "multi-char single content char", pair: paren, src: `\(a\)`, want: []string{"a"}},
		{name: "single rune right delimiter", pair: because, src: "∵a∎ ∵∎ ∵b∎", want: []string{"a", "b"}},
		{name: "no delimiters", pair: dollar, src: "plain text", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contents(tt.pair.Find(tt.src))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Find(%q): got %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestFindReportsOffsets(t *testing.T) {
	spans := Pair{Left: "$$", Right: "$$", Mode: Display}.Find("ab $$x$$ cd")
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	if spans[0].Start != 3 || spans[0].End != 8 {
		t.Fatalf("expected offsets 3..8, got %d..%d", spans[0].Start, spans[0].End)
	}
	if spans[0].Pair.Mode != Display {
		t.Fatalf("expected display span, got %s", spans[0].Pair.Mode)
	}
}

func TestScanDefaultOrderKeepsDisplaySpansWhole(t *testing.T) {
	set := DefaultSet()
	spans := Scan("$$x^2$$ and $y$", set.Ordered(), nil)
	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %d", len(spans))
	}
	if spans[0].Pair.Mode != Display || spans[0].Content != "x^2" {
		t.Fatalf("expected display span x^2, got %s %q", spans[0].Pair.Mode, spans[0].Content)
	}
	if spans[1].Pair.Mode != Inline || spans[1].Content != "y" {
		t.Fatalf("expected inline span y, got %s %q", spans[1].Pair.Mode, spans[1].Content)
	}
}

func TestScanOrderMattersWhenShortDelimiterPrefixesLongOne(t *testing.T) {
	set := NewSet(`\(`, `\)`, `\(\(`, `\)\)`)
	src := `\(\(a\)\)`

	ordered := Scan(src, set.Ordered(), nil)
	if len(ordered) != 1 || ordered[0].Pair.Mode != Display || ordered[0].Content != "a" {
		t.Fatalf("expected one display span %q, got %+v", "a", ordered)
	}

	reversed := Scan(src, []Pair{set.Inline, set.Display}, nil)
	if len(reversed) != 1 || reversed[0].Pair.Mode != Inline || reversed[0].Content != `\(a` {
		t.Fatalf("expected the inline pair to split the display span, got %+v", reversed)
	}
}

func TestScanRejectedSpanIsNotReopenedBySamePair(t *testing.T) {
	set := DefaultSet()
	src := "$$a\n\nb$$c$$"
	spans := Scan(src, set.Ordered(), func(sp Span) bool {
		return !strings.Contains(sp.Content, "\n\n")
	})
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %+v", spans)
	}
	if spans[0].Pair.Mode != Inline || spans[0].Content != "c" || spans[0].Start != 7 {
		t.Fatalf("expected inline span c at 7, got %s %q at %d", spans[0].Pair.Mode, spans[0].Content, spans[0].Start)
	}
}

func TestScanRejectedSpanStaysOpenToLaterPairs(t *testing.T) {
	set := DefaultSet()
	src := "$$a\n\n$b$$$\n$c$"
	spans := Scan(src, set.Ordered(), func(sp Span) bool {
		return sp.Pair.Mode != Display
	})
	if got := contents(spans); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("expected inline spans inside and after the rejected span, got %q", got)
	}
}

func TestScanEarlierPairSpansAreSettledFirst(t *testing.T) {
	set := DefaultSet()
	spans := Scan("$a$$x^2$$", set.Ordered(), nil)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %+v", spans)
	}
	if spans[0].Pair.Mode != Display || spans[0].Content != "x^2" || spans[0].Start != 2 {
		t.Fatalf("expected display span x^2 at 2, got %s %q at %d", spans[0].Pair.Mode, spans[0].Content, spans[0].Start)
	}
}

func TestScanReturnsSpansInSourceOrder(t *testing.T) {
	set := DefaultSet()
	spans := Scan("$a$ $$b$$ $c$ $$d$$", set.Ordered(), nil)
	var starts []int
	for _, sp := range spans {
		starts = append(starts, sp.Start)
	}
	if !reflect.DeepEqual(starts, []int{0, 4, 10, 14}) {
		t.Fatalf("unexpected span starts %v", starts)
	}
}

func TestReplace(t *testing.T) {
	set := DefaultSet()
	got := Replace("a $x$ b $$y$$ c", set.Ordered(), func(sp Span) (string, bool) {
		return "<" + sp.Pair.Mode.String() + ":" + sp.Content + ">", true
	})
	want := "a <inline:x> b <display:y> c"
	if got != want {
		t.Fatalf("Replace: got %q, want %q", got, want)
	}
}

func TestReplaceWithoutSpansReturnsInput(t *testing.T) {
	src := "nothing to see $ here"
	got := Replace(src, DefaultSet().Ordered(), func(Span) (string, bool) { return "X", true })
	if got != src {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}
