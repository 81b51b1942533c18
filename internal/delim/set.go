package delim

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyDelimiter   = errors.New("delimiter is empty")
	ErrNewlineDelimiter = errors.New("delimiter contains a newline")
	ErrAmbiguous        = errors.New("delimiter pairs cannot be told apart")
	ErrOverlap          = errors.New("delimiter pairs disagree on which is more specific")
)

// Set is the configured pair of inline and display delimiters.
type Set struct {
	Inline  Pair
	Display Pair
}

// DefaultSet returns the $...$ / $$...$$ configuration.
func DefaultSet() Set {
	return NewSet("$", "$", "$$", "$$")
}

// NewSet builds a Set from the four delimiter strings.
func NewSet(inlineLeft, inlineRight, displayLeft, displayRight string) Set {
	return Set{
		Inline:  Pair{Left: inlineLeft, Right: inlineRight, Mode: Inline},
		Display: Pair{Left: displayLeft, Right: displayRight, Mode: Display},
	}
}

// Pair returns the pair configured for the given mode.
func (s Set) Pair(m Mode) Pair {
	if m == Display {
		return s.Display
	}
	return s.Inline
}

// Ordered returns both pairs, the more specific one first.
//
// A pair is more specific than another when the other's left delimiter is a
// proper prefix of its own, or, for equal left delimiters, when the other's
// right delimiter is a proper prefix of its own. Unrelated pairs fall back to
// the longer left delimiter first, inline before display on a tie.
func (s Set) Ordered() []Pair {
	pairs := []Pair{s.Inline, s.Display}
	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if isProperPrefix(b.Left, a.Left) {
			return true
		}
		if isProperPrefix(a.Left, b.Left) {
			return false
		}
		if a.Left == b.Left {
			return isProperPrefix(b.Right, a.Right)
		}
		return len(a.Left) > len(b.Left)
	})
	return pairs
}

// Validate reports configurations the scanner cannot process reliably.
func (s Set) Validate() error {
	for _, p := range []Pair{s.Inline, s.Display} {
		for _, d := range []string{p.Left, p.Right} {
			if d == "" {
				return fmt.Errorf("%s pair: %w", p.Mode, ErrEmptyDelimiter)
			}
			if strings.ContainsAny(d, "\r\n") {
				return fmt.Errorf("%s pair %q: %w", p.Mode, d, ErrNewlineDelimiter)
			}
		}
	}

	ordered := s.Ordered()
	first, second := ordered[0], ordered[1]
	if first.Left == second.Left && !isProperPrefix(second.Right, first.Right) {
		return fmt.Errorf("both pairs open with %q: %w", first.Left, ErrAmbiguous)
	}
	if isProperPrefix(second.Left, first.Left) && isProperPrefix(first.Right, second.Right) {
		return fmt.Errorf("%s pair %q...%q and %s pair %q...%q: %w",
			first.Mode, first.Left, first.Right, second.Mode, second.Left, second.Right, ErrOverlap)
	}
	return nil
}

func isProperPrefix(prefix, s string) bool {
	return len(prefix) < len(s) && strings.HasPrefix(s, prefix)
}
