// layout.go centralizes the terminal layout calculations.
//
// The markdown and escaped panes share the top row side by side. The preview
// takes the bottom half of the screen when it is shown, and the footer
// reserves FooterRows rows, more while the full key reference is open. Every
// pane draws a one-row title above its content.
package app

import "github.com/charmbracelet/lipgloss"

// LayoutDimensions holds the outer size of every pane.
type LayoutDimensions struct {
	InputWidth    int
	EscapedWidth  int
	EditorHeight  int
	PreviewWidth  int
	PreviewHeight int // zero while the preview is hidden
	FooterHeight  int
}

// calculateLayout computes all pane sizes from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	footer := m.footerHeight()
	contentHeight := max(0, m.height-footer)
	inputWidth, escapedWidth := splitWidth(m.width)

	editorHeight := contentHeight
	previewHeight := 0
	if m.showPreview {
		previewHeight = contentHeight / 2
		editorHeight = contentHeight - previewHeight
	}

	return LayoutDimensions{
		InputWidth:    inputWidth,
		EscapedWidth:  escapedWidth,
		EditorHeight:  editorHeight,
		PreviewWidth:  m.width,
		PreviewHeight: previewHeight,
		FooterHeight:  footer,
	}
}

// footerHeight is one status row plus the help rows.
func (m *Model) footerHeight() int {
	if !m.showHelp {
		return FooterRows
	}
	return 1 + lipgloss.Height(m.help.FullHelpView(helpKeys{m: m}.FullHelp()))
}

// applyLayout resizes the widgets to the inner area of their panes.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.input.SetWidth(innerWidth(focusedPane, layout.InputWidth))
	m.input.SetHeight(innerHeight(focusedPane, layout.EditorHeight))
	m.escaped.SetWidth(innerWidth(focusedPane, layout.EscapedWidth))
	m.escaped.SetHeight(innerHeight(focusedPane, layout.EditorHeight))
	m.preview.Width = innerWidth(previewPane, layout.PreviewWidth)
	m.preview.Height = innerHeight(previewPane, layout.PreviewHeight)
	m.help.Width = m.width
}

func innerWidth(style lipgloss.Style, outer int) int {
	return max(0, outer-style.GetHorizontalFrameSize())
}

// innerHeight leaves a row for the pane title.
func innerHeight(style lipgloss.Style, outer int) int {
	return max(0, outer-style.GetVerticalFrameSize()-1)
}
