package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// WidgetRef addresses a widget that accepts change requests.
type WidgetRef string

// NewRef returns a unique ref with the given prefix.
func NewRef(prefix string) WidgetRef {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "widget"
	}
	return WidgetRef(prefix + "-" + uuid.NewString())
}

func (r WidgetRef) String() string { return string(r) }

type RequestKind int

const (
	KindTurnOn RequestKind = iota
	KindTurnOff
	KindChangeContent
)

func (k RequestKind) String() string {
	switch k {
	case KindTurnOn:
		return "turn_on"
	case KindTurnOff:
		return "turn_off"
	case KindChangeContent:
		return "change_content"
	default:
		return "unknown"
	}
}

// ChangeRequest is a one-shot message asking the target widget to change
// what it shows. It is applied by the target's own Receive.
type ChangeRequest interface {
	Target() WidgetRef
	Kind() RequestKind
}

type TurnOnMsg struct {
	Ref WidgetRef
}

func (m TurnOnMsg) Target() WidgetRef { return m.Ref }
func (m TurnOnMsg) Kind() RequestKind { return KindTurnOn }

type TurnOffMsg struct {
	Ref WidgetRef
}

func (m TurnOffMsg) Target() WidgetRef { return m.Ref }
func (m TurnOffMsg) Kind() RequestKind { return KindTurnOff }

// ChangeContentMsg replaces the content of a text display. An AlignUnset
// Align keeps the display's current alignment.
type ChangeContentMsg struct {
	Ref     WidgetRef
	Content Renderable
	Align   Alignment
}

func (m ChangeContentMsg) Target() WidgetRef { return m.Ref }
func (m ChangeContentMsg) Kind() RequestKind { return KindChangeContent }

type Alignment string

const (
	AlignUnset  Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ParseAlignment normalizes an alignment name. Unknown names are returned
// as-is and render left aligned.
func ParseAlignment(s string) Alignment {
	return Alignment(strings.ToLower(strings.TrimSpace(s)))
}

func (a Alignment) Position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
