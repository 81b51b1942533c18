// terminal.go renders markdown for the editor's preview pane.
//
// Creating a Glamour TermRenderer parses style JSON and allocates internal
// buffers, so renderers are cached per word-wrap width in a small LRU guarded
// by a mutex (previews render on background goroutines). The style comes from
// MATHMARK_GLAMOUR_STYLE or GLAMOUR_STYLE and defaults to "dark".
package render

import (
	"container/list"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/treykane/mathmark/internal/delim"
	"github.com/treykane/mathmark/internal/logging"
)

var renderLog = logging.New("render")

var (
	// maxRendererCacheEntries bounds the number of width-specific Glamour
	// renderers retained in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu    sync.Mutex
	rendererCache      = map[int]*glamour.TermRenderer{}
	rendererCacheOrder = list.New() // front = least recent
	rendererCacheNodes = map[int]*list.Element{}
)

// Preview renders src for a terminal of the given width: math spans are made
// markdown-safe first. If Glamour fails the markdown-safe text is returned so
// the user still sees content.
func Preview(src string, set delim.Set, width int) string {
	safe := SafeMarkdown(src, set)
	out, err := Terminal(safe, width)
	if err != nil {
		renderLog.Error("render preview", "width", width, "error", err)
		return safe
	}
	return out
}

// Terminal converts markdown to ANSI-formatted text wrapped at width.
func Terminal(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func getRenderer(width int) (*glamour.TermRenderer, error) {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		if node, ok := rendererCacheNodes[width]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	rendererCacheNodes[width] = rendererCacheOrder.PushBack(width)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		width, _ := oldest.Value.(int)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, width)
		delete(rendererCacheNodes, width)
	}
}

func cachedRendererCount() int {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	return len(rendererCache)
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[int]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[int]*list.Element{}
}

// glamourStyleOption resolves the Glamour style. "auto" queries the terminal
// background, which can leak OSC responses into the editor, so it is opt-in.
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("MATHMARK_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	switch style {
	case "auto":
		return glamour.WithAutoStyle()
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
