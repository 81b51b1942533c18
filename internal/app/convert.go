package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/mathmark/internal/codec"
)

// syncEscaped re-encodes the markdown pane into the escaped pane.
func (m *Model) syncEscaped() {
	m.escaped.SetValue(codec.EncodeAll(m.codec, m.input.Value(), m.set))
}

// syncInput decodes the escaped pane back into the markdown pane.
func (m *Model) syncInput() {
	m.input.SetValue(codec.DecodeAll(m.codec, m.escaped.Value(), m.set))
}

// updateFocusedPane forwards msg to the focused pane. When the pane's text
// changes the other pane is rewritten and a preview is scheduled.
func (m *Model) updateFocusedPane(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusEscaped:
		before := m.escaped.Value()
		m.escaped, cmd = m.escaped.Update(msg)
		if m.escaped.Value() == before {
			return m, cmd
		}
		m.syncInput()
	default:
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		m.syncEscaped()
	}
	return m, tea.Batch(cmd, m.requestPreview())
}

// toggleFocus moves keyboard focus to the other pane.
func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusEscaped
		m.input.Blur()
		m.escaped.Focus()
		m.setStatus("Editing escaped text")
		return
	}
	m.focus = focusInput
	m.escaped.Blur()
	m.input.Focus()
	m.setStatus("Editing markdown")
}

// cycleTarget switches to the next registered format and re-encodes.
func (m *Model) cycleTarget() {
	next := m.registry.Next(m.codec.Name())
	cdc, err := m.registry.Lookup(next)
	if err != nil {
		m.setStatusError("No target format available", err, "target", next)
		return
	}
	m.codec = cdc
	m.settings.Target = cdc.Name()
	m.syncEscaped()
	m.setStatus("Target: " + cdc.Name())
}
