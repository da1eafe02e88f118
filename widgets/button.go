package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teakit/core"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorAccent).
			Padding(0, 2)
	buttonFocusedStyle = buttonStyle.
				Background(ColorSuccess).
				Bold(true)
	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Background(ColorSurface1).
				Padding(0, 2).
				Faint(true)
)

// ButtonPressedMsg is emitted when an enabled, visible button is pressed.
type ButtonPressedMsg struct {
	Ref core.WidgetRef
}

// ControllableButton is a push button that its owner can show, hide,
// enable and disable directly.
type ControllableButton struct {
	Visibility
	ref     core.WidgetRef
	label   string
	focused bool
}

type ButtonOption func(*ControllableButton)

func WithButtonRef(ref core.WidgetRef) ButtonOption {
	return func(b *ControllableButton) { b.ref = ref }
}

func NewControllableButton(label string, opts ...ButtonOption) *ControllableButton {
	b := &ControllableButton{label: label}
	for _, opt := range opts {
		opt(b)
	}
	if b.ref == "" {
		b.ref = core.NewRef("button")
	}
	return b
}

func (b *ControllableButton) Ref() core.WidgetRef { return b.ref }
func (b *ControllableButton) Label() string       { return b.label }
func (b *ControllableButton) SetLabel(label string) {
	b.label = label
}

func (b *ControllableButton) Focus()        { b.focused = true }
func (b *ControllableButton) Blur()         { b.focused = false }
func (b *ControllableButton) Focused() bool { return b.focused }

// Press returns a command emitting ButtonPressedMsg, or nil when the
// button is hidden or disabled.
func (b *ControllableButton) Press() tea.Cmd {
	if !b.Visible() || !b.Enabled() {
		return nil
	}
	ref := b.ref
	return func() tea.Msg { return ButtonPressedMsg{Ref: ref} }
}

func (b *ControllableButton) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !b.focused {
		return nil
	}
	switch key.String() {
	case "enter", " ":
		return b.Press()
	}
	return nil
}

func (b *ControllableButton) Render(width, height int) string {
	if !b.Visible() {
		return ""
	}
	style := buttonStyle
	switch {
	case !b.Enabled():
		style = buttonDisabledStyle
	case b.focused:
		style = buttonFocusedStyle
	}
	return style.Render(b.label)
}
