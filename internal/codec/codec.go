// Package codec converts delimiter-wrapped math to and from the escaped
// notation of a target publishing platform.
//
// A Codec only knows how to render one span and how to recognise its own
// notation; Encode and EncodeAll drive the span scanner from package delim.
// Codecs are looked up by name through a Registry built at startup.
package codec

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/treykane/mathmark/internal/delim"
)

var (
	ErrUnknownFormat   = errors.New("unknown target format")
	ErrDuplicateFormat = errors.New("target format already registered")
	ErrEmptyName       = errors.New("codec name is empty")
)

// Codec is the encode/decode pair for one target format.
type Codec interface {
	// Name is the registry key, lower case.
	Name() string

	// EncodeSpan converts the content of one span. Returning false keeps the
	// span out of the output untouched.
	EncodeSpan(content string, mode delim.Mode) (string, bool)

	// Decode replaces every recognised tag in src with math wrapped in the
	// delimiters of set.
	Decode(src string, set delim.Set) string
}

// Encode rewrites the spans of a single pair.
func Encode(c Codec, src string, p delim.Pair) string {
	return delim.Replace(src, []delim.Pair{p}, func(sp delim.Span) (string, bool) {
		return c.EncodeSpan(sp.Content, sp.Pair.Mode)
	})
}

// EncodeAll rewrites the spans of both pairs of set. The spans of the more
// specific pair are settled over the whole text first, and the other pair
// only scans what they leave uncovered.
func EncodeAll(c Codec, src string, set delim.Set) string {
	return delim.Replace(src, set.Ordered(), func(sp delim.Span) (string, bool) {
		return c.EncodeSpan(sp.Content, sp.Pair.Mode)
	})
}

// DecodeAll turns every tag of c in src back into math wrapped with the
// delimiters of set.
func DecodeAll(c Codec, src string, set delim.Set) string {
	return c.Decode(src, set)
}

// Registry maps format names to codecs.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry returns a registry holding the given codecs.
func NewRegistry(codecs ...Codec) (*Registry, error) {
	r := &Registry{codecs: map[string]Codec{}}
	for _, c := range codecs {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a registry with every format shipped in this package.
func Builtin() *Registry {
	return &Registry{codecs: map[string]Codec{
		HatenaName: Hatena{},
	}}
}

// Register adds c under its name. Existing formats are never replaced.
func (r *Registry) Register(c Codec) error {
	name := normalizeName(c.Name())
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.codecs[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateFormat)
	}
	r.codecs[name] = c
	return nil
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name string) (Codec, error) {
	c, ok := r.codecs[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return c, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.codecs[normalizeName(name)]
	return ok
}

// Names lists the registered formats in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the format after name in sorted order, wrapping around.
func (r *Registry) Next(name string) string {
	names := r.Names()
	if len(names) == 0 {
		return ""
	}
	current := normalizeName(name)
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
