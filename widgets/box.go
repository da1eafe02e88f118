package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teakit/core"
)

// Box frames a body with a rounded border and a bracketed title.
type Box struct {
	Title string
	Body  core.Renderable
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	innerW := max(1, width-4)
	innerH := max(1, height-2)
	body := ""
	if b.Body != nil {
		body = b.Body.Render(innerW, max(1, innerH-1))
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSubtle).
		Padding(0, 1).
		Width(width - 2).
		Height(innerH)
	if b.Title == "" {
		return style.Render(body)
	}
	return style.Render("[" + b.Title + "]\n" + body)
}
