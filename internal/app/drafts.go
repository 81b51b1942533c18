package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/mathmark/internal/config"
)

// draftAutoSaveTickMsg is emitted by the periodic autosave timer.
type draftAutoSaveTickMsg struct{}

// scheduleDraftAutosave emits a draftAutoSaveTickMsg after
// DraftAutoSaveInterval. Each handled tick schedules the next one, so the
// loop runs for the lifetime of the editor.
func (m *Model) scheduleDraftAutosave() tea.Cmd {
	return tea.Tick(DraftAutoSaveInterval, func(time.Time) tea.Msg {
		return draftAutoSaveTickMsg{}
	})
}

// handleDraftAutoSaveTick saves the draft when it changed. Failures are only
// logged so a broken disk never interrupts typing.
func (m *Model) handleDraftAutoSaveTick(_ draftAutoSaveTickMsg) (tea.Model, tea.Cmd) {
	if err := m.saveDraft(); err != nil {
		appLog.Warn("auto-save draft", "error", err)
	}
	return m, m.scheduleDraftAutosave()
}

// saveDraft writes the markdown pane to the draft file unless it is
// unchanged since the last save.
func (m *Model) saveDraft() error {
	text := m.input.Value()
	if text == m.savedDraft {
		return nil
	}
	if err := config.SaveDraft(text); err != nil {
		return err
	}
	m.savedDraft = text
	m.draftSavedAt = time.Now()
	return nil
}

// saveAll writes the draft and the current settings.
func (m *Model) saveAll() {
	if err := m.saveDraft(); err != nil {
		m.setStatusError("Draft save failed", err)
		return
	}
	if err := config.Save(m.settings); err != nil {
		m.setStatusError("Settings save failed", err)
		return
	}
	m.setStatus("Saved draft and settings")
}
