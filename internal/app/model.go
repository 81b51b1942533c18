package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/mathmark/internal/codec"
	"github.com/treykane/mathmark/internal/config"
	"github.com/treykane/mathmark/internal/delim"
)

// focus names the pane that receives typed keys.
type focus int

const (
	focusInput focus = iota
	focusEscaped
)

// Model holds the Bubble Tea state for the editor.
//
// The markdown pane holds the raw text with math delimiters. The escaped pane
// always shows that text run through the active codec; editing either pane
// rewrites the other one.
type Model struct {
	settings config.Config
	registry *codec.Registry
	codec    codec.Codec
	set      delim.Set

	// UI widgets
	input   textarea.Model
	escaped textarea.Model
	preview viewport.Model
	spinner spinner.Model
	help    help.Model

	focus       focus
	showPreview bool
	showHelp    bool
	status        string
	statusIsError bool

	// Layout sizing
	width  int
	height int

	// Debounced preview bookkeeping
	renderSeq int
	rendering bool

	keyForAction map[string][]string
	keyToAction  map[string]string

	// Draft bookkeeping
	savedDraft   string
	draftSavedAt time.Time
}

// New prepares the editor from cfg, resolving the target format in reg and
// restoring the draft of the previous session.
func New(cfg config.Config, reg *codec.Registry) (*Model, error) {
	set := cfg.Delimiters()
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid delimiters: %w", err)
	}
	cdc, err := cfg.Codec(reg)
	if err != nil {
		return nil, err
	}
	cfg.Target = cdc.Name()

	draft, err := config.LoadDraft()
	if err != nil {
		appLog.Warn("load draft", "error", err)
	}

	input := newPane("Markdown with $inline$ and $$display$$ math", inputAccent, true)
	escaped := newPane("Escaped output, paste tags here to decode", escapedAccent, false)

	spin := spinner.New()
	spin.Spinner = spinner.Line

	m := &Model{
		settings:    cfg,
		registry:    reg,
		codec:       cdc,
		set:         set,
		input:       input,
		escaped:     escaped,
		preview:     viewport.New(0, 0),
		spinner:     spin,
		help:        help.New(),
		focus:       focusInput,
		showPreview: true,
		status:      "Ready",
		savedDraft:  draft,
	}
	m.loadKeybindings(cfg)
	m.input.SetValue(draft)
	m.syncEscaped()
	m.input.Focus()
	if draft != "" {
		m.setStatus("Restored draft")
	}
	return m, nil
}

func newPane(placeholder string, accent lipgloss.Color, lineNumbers bool) textarea.Model {
	pane := textarea.New()
	pane.Placeholder = placeholder
	pane.CharLimit = 0
	pane.MaxHeight = 0
	applyPaneTheme(&pane, accent, lineNumbers)
	return pane
}

// Init starts the spinner, the cursor blink and the draft autosave loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textarea.Blink, m.scheduleDraftAutosave())
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout(m.calculateLayout())
		return m, m.requestPreview()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case previewRequestMsg:
		return m, m.handlePreviewRequest(msg)
	case previewResultMsg:
		m.handlePreviewResult(msg)
		return m, nil
	case draftAutoSaveTickMsg:
		return m.handleDraftAutoSaveTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocusedPane(msg)
}
