package app

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard access is swappable so tests never touch the system clipboard.
var (
	clipboardWrite = clipboard.WriteAll
	clipboardRead  = clipboard.ReadAll
)

// copyEscapedToClipboard copies the escaped pane, ready to paste into a blog
// editor.
func (m *Model) copyEscapedToClipboard() {
	content := m.escaped.Value()
	if content == "" {
		m.setStatus("Nothing to copy")
		return
	}
	if err := clipboardWrite(content); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.setStatus(fmt.Sprintf("Copied %s text (%d chars)", m.codec.Name(), len([]rune(content))))
}

// pasteFromClipboard inserts clipboard text at the cursor of the focused
// pane. Pasting tags into the escaped pane decodes them into the markdown
// pane.
func (m *Model) pasteFromClipboard() (tea.Model, tea.Cmd) {
	value, err := clipboardRead()
	if err != nil {
		m.setStatusError("Clipboard paste failed", err)
		return m, nil
	}
	if value == "" {
		m.setStatus("Clipboard is empty")
		return m, nil
	}
	if m.focus == focusEscaped {
		m.escaped.InsertString(value)
		m.syncInput()
	} else {
		m.input.InsertString(value)
		m.syncEscaped()
	}
	m.setStatus("Pasted from clipboard")
	return m, m.requestPreview()
}
