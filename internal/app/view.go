package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the whole screen.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	layout := m.calculateLayout()

	editors := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPane("Markdown", m.input.View(), layout.InputWidth, layout.EditorHeight, m.focus == focusInput),
		m.renderPane("Escaped "+targetBadge.Render(m.codec.Name()), m.escaped.View(), layout.EscapedWidth, layout.EditorHeight, m.focus == focusEscaped),
	)
	rows := []string{editors}
	if layout.PreviewHeight > 0 {
		rows = append(rows, m.renderPreview(layout.PreviewWidth, layout.PreviewHeight))
	}
	rows = append(rows, m.renderFooter(m.width, layout.FooterHeight))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderPane(title, content string, width, height int, focused bool) string {
	style := blurredPane
	if focused {
		style = focusedPane
	}
	return renderBox(style, titleStyle.Render(title), content, width, height)
}

func (m *Model) renderPreview(width, height int) string {
	title := titleStyle.Render("Preview")
	if m.rendering {
		title += " " + m.spinner.View()
	}
	if percent := m.preview.ScrollPercent(); m.preview.TotalLineCount() > m.preview.Height {
		title += " " + previewBadge.Render(fmt.Sprintf("%3.f%%", percent*100))
	}
	return renderBox(previewPane, title, m.preview.View(), width, height)
}

// renderBox draws a bordered pane of exactly width by height cells.
func renderBox(style lipgloss.Style, title, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := innerWidth(style, width)
	body := padBlock(content, inner, innerHeight(style, height))
	block := truncate(title, inner)
	if body != "" {
		block += "\n" + body
	}
	return style.
		Width(max(0, width-style.GetHorizontalBorderSize())).
		Height(max(0, height-style.GetVerticalBorderSize())).
		Render(block)
}

func (m *Model) renderFooter(width, height int) string {
	status := statusStyle.Render(m.status)
	if m.statusIsError {
		status = errorStatus.Render(m.status)
	}
	if !m.draftSavedAt.IsZero() {
		status += mutedStyle.Render(" · draft saved " + m.draftSavedAt.Format("15:04:05"))
	}
	lines := []string{truncate(status, width)}
	if m.showHelp {
		lines = append(lines, m.help.FullHelpView(helpKeys{m: m}.FullHelp()))
	} else {
		lines = append(lines, m.help.ShortHelpView(helpKeys{m: m}.ShortHelp()))
	}
	return padBlock(strings.Join(lines, "\n"), width, height)
}
