package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teakit/core"
)

var (
	radioOnStyle    = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	radioOffStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)
	radioLabelStyle = lipgloss.NewStyle().Foreground(ColorText)
)

// RadioStatus is a progress marker that looks like a radio button but
// cannot be toggled by the user. Its value only changes when a TurnOn or
// TurnOff request reaches Receive.
type RadioStatus struct {
	ref    core.WidgetRef
	label  string
	value  bool
	poster core.Poster
}

type RadioOption func(*RadioStatus)

func WithRadioRef(ref core.WidgetRef) RadioOption {
	return func(r *RadioStatus) { r.ref = ref }
}

// WithRadioValue sets the value shown before any request arrives.
func WithRadioValue(on bool) RadioOption {
	return func(r *RadioStatus) { r.value = on }
}

func NewRadioStatus(label string, poster core.Poster, opts ...RadioOption) *RadioStatus {
	if poster == nil {
		panic("widgets.NewRadioStatus: poster cannot be nil")
	}
	r := &RadioStatus{label: label, poster: poster}
	for _, opt := range opts {
		opt(r)
	}
	if r.ref == "" {
		r.ref = core.NewRef("radio")
	}
	return r
}

func (r *RadioStatus) Ref() core.WidgetRef { return r.ref }
func (r *RadioStatus) Label() string       { return r.label }
func (r *RadioStatus) Value() bool         { return r.value }
func (r *RadioStatus) Interactive() bool   { return false }
func (r *RadioStatus) CanFocus() bool      { return false }

// TurnOn asks for the marker to light up. The value changes once the
// request has been delivered.
func (r *RadioStatus) TurnOn() {
	r.poster.Post(core.TurnOnMsg{Ref: r.ref})
}

func (r *RadioStatus) TurnOff() {
	r.poster.Post(core.TurnOffMsg{Ref: r.ref})
}

// Toggle is what user activation would call. It does nothing.
func (r *RadioStatus) Toggle() {}

func (r *RadioStatus) Receive(req core.ChangeRequest) tea.Cmd {
	if req == nil || req.Target() != r.ref {
		return nil
	}
	switch req.(type) {
	case core.TurnOnMsg:
		r.value = true
	case core.TurnOffMsg:
		r.value = false
	}
	return nil
}

func (r *RadioStatus) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			r.Toggle()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			r.Toggle()
		}
	case core.ChangeRequest:
		return r.Receive(msg)
	}
	return nil
}

func (r *RadioStatus) Render(width, height int) string {
	mark := radioOffStyle.Render("○")
	if r.value {
		mark = radioOnStyle.Render("◉")
	}
	line := mark + " " + radioLabelStyle.Render(r.label)
	if width > 0 {
		line = padRight(line, width)
	}
	return line
}
