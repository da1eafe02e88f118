package core

import tea "github.com/charmbracelet/bubbletea"

// Renderable is anything a widget can draw into a width x height cell box.
type Renderable interface {
	Render(width, height int) string
}

// Text renders a plain string unchanged.
type Text string

func (t Text) Render(width, height int) string { return string(t) }

type RenderFunc func(width, height int) string

func (f RenderFunc) Render(width, height int) string { return f(width, height) }

// Receiver is a widget whose displayed state changes only through
// change requests delivered on the update loop.
type Receiver interface {
	Ref() WidgetRef
	Receive(req ChangeRequest) tea.Cmd
}

// Controllable widgets can be shown, hidden, enabled and disabled in place.
// These calls are synchronous and belong on the update loop.
type Controllable interface {
	Show()
	Hide()
	Enable()
	Disable()
	Visible() bool
	Enabled() bool
}
