package render

import "strings"

// Engine is the math typesetter an exported page loads.
type Engine string

const (
	KaTeX   Engine = "katex"
	MathJax Engine = "mathjax"
)

// DefaultEngine is used when no valid engine is configured.
const DefaultEngine = KaTeX

// Engines lists the supported engines.
func Engines() []Engine {
	return []Engine{KaTeX, MathJax}
}

// ParseEngine resolves a case-insensitive engine name.
func ParseEngine(name string) (Engine, bool) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case KaTeX:
		return KaTeX, true
	case MathJax:
		return MathJax, true
	default:
		return "", false
	}
}
