package widgets

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingDisplay is a spinner with a label that its owner shows while
// background work runs.
type LoadingDisplay struct {
	Visibility
	spinner spinner.Model
	label   string
}

func NewLoadingDisplay(label string) *LoadingDisplay {
	return &LoadingDisplay{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorWarn)),
		),
		label: label,
	}
}

func (l *LoadingDisplay) Label() string { return l.label }

func (l *LoadingDisplay) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *LoadingDisplay) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(tick)
	return cmd
}

func (l *LoadingDisplay) Render(width, height int) string {
	if !l.Visible() {
		return ""
	}
	line := l.spinner.View()
	if l.label != "" {
		line += " " + l.label
	}
	return line
}
