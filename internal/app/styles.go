package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

const (
	inputAccent   = lipgloss.Color("204")
	escapedAccent = lipgloss.Color("211")
)

var (
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPane  = paneStyle.Copy().BorderForeground(inputAccent)
	blurredPane  = paneStyle.Copy().BorderForeground(lipgloss.Color("240"))
	previewPane  = paneStyle.Copy().BorderForeground(lipgloss.Color("62"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStatus  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	targetBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("211")).Padding(0, 1)
	previewBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("117")).Padding(0, 1)
)

// applyPaneTheme styles a textarea pane. The accent colours the prompt and
// line numbers so the two panes are told apart at a glance.
func applyPaneTheme(editor *textarea.Model, accent lipgloss.Color, lineNumbers bool) {
	focused, blurred := textarea.DefaultStyles()

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorLine := lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255"))
	lineNumber := lipgloss.NewStyle().Foreground(accent)
	prompt := lipgloss.NewStyle().Foreground(accent)

	focused.Base = base
	focused.Text = base
	focused.CursorLine = cursorLine
	focused.CursorLineNumber = lineNumber.Bold(true)
	focused.LineNumber = lineNumber
	focused.Prompt = prompt
	focused.Placeholder = mutedStyle

	blurred.Base = base
	blurred.Text = mutedStyle
	blurred.CursorLine = mutedStyle
	blurred.CursorLineNumber = mutedStyle
	blurred.LineNumber = mutedStyle
	blurred.Prompt = prompt
	blurred.Placeholder = mutedStyle

	editor.FocusedStyle = focused
	editor.BlurredStyle = blurred
	editor.Prompt = "│ "
	editor.EndOfBufferCharacter = ' '
	editor.ShowLineNumbers = lineNumbers
}
