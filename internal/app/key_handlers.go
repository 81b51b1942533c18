package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey dispatches bound keys to their action and types everything else
// into the focused pane.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action := m.actionForKey(msg.String()); action != "" {
		return m.handleAction(action)
	}
	return m.updateFocusedPane(msg)
}

func (m *Model) handleAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		if err := m.saveDraft(); err != nil {
			appLog.Warn("save draft on quit", "error", err)
		}
		return m, tea.Quit
	case actionFocusToggle:
		m.toggleFocus()
	case actionPreviewToggle:
		m.showPreview = !m.showPreview
		m.applyLayout(m.calculateLayout())
		if !m.showPreview {
			m.rendering = false
			m.setStatus("Preview hidden")
			return m, nil
		}
		m.setStatus("Preview shown")
		return m, m.requestPreview()
	case actionCopyEscaped:
		m.copyEscapedToClipboard()
	case actionPaste:
		return m.pasteFromClipboard()
	case actionTargetCycle:
		m.cycleTarget()
	case actionSave:
		m.saveAll()
	case actionPreviewPageUp:
		m.preview.LineUp(max(1, m.preview.Height))
	case actionPreviewPageDown:
		m.preview.LineDown(max(1, m.preview.Height))
	case actionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.applyLayout(m.calculateLayout())
	}
	return m, nil
}
