// render.go implements the debounced preview pane.
//
// Every edit bumps renderSeq and schedules a previewRequestMsg after
// PreviewDebounce. A request or result whose sequence number is no longer
// current is dropped, so holding a key down renders once after the last
// keystroke instead of once per keystroke. Rendering itself runs as a tea.Cmd
// off the update loop.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/mathmark/internal/delim"
	"github.com/treykane/mathmark/internal/render"
)

// previewRequestMsg is emitted by the debounce timer.
type previewRequestMsg struct {
	seq int
}

// previewResultMsg carries a finished render back to the update loop.
type previewResultMsg struct {
	seq     int
	width   int
	content string
}

// requestPreview schedules a render of the markdown pane. It returns nil
// while the preview is hidden or has no width yet.
func (m *Model) requestPreview() tea.Cmd {
	if !m.showPreview || m.preview.Width <= 0 {
		return nil
	}
	m.renderSeq++
	seq := m.renderSeq
	return tea.Tick(PreviewDebounce, func(time.Time) tea.Msg {
		return previewRequestMsg{seq: seq}
	})
}

func (m *Model) handlePreviewRequest(msg previewRequestMsg) tea.Cmd {
	if msg.seq != m.renderSeq || !m.showPreview {
		return nil
	}
	m.rendering = true
	return renderPreviewCmd(m.input.Value(), m.set, m.preview.Width, msg.seq)
}

func (m *Model) handlePreviewResult(msg previewResultMsg) {
	if msg.seq != m.renderSeq {
		return
	}
	m.rendering = false
	m.preview.SetContent(msg.content)
}

// renderPreviewCmd renders text on a background goroutine.
func renderPreviewCmd(text string, set delim.Set, width, seq int) tea.Cmd {
	return func() tea.Msg {
		return previewResultMsg{
			seq:     seq,
			width:   width,
			content: render.Preview(text, set, width),
		}
	}
}
