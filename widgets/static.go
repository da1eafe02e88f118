package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teakit/core"
)

// StaticStatus is a live text line. Its content and alignment only change
// when a ChangeContent request reaches Receive.
type StaticStatus struct {
	ref     core.WidgetRef
	content core.Renderable
	align   core.Alignment
	poster  core.Poster
	style   lipgloss.Style
}

type StaticOption func(*StaticStatus)

func WithStaticRef(ref core.WidgetRef) StaticOption {
	return func(s *StaticStatus) { s.ref = ref }
}

func WithAlignment(align core.Alignment) StaticOption {
	return func(s *StaticStatus) { s.align = align }
}

func WithStaticStyle(style lipgloss.Style) StaticOption {
	return func(s *StaticStatus) { s.style = style }
}

func NewStaticStatus(content core.Renderable, poster core.Poster, opts ...StaticOption) *StaticStatus {
	if poster == nil {
		panic("widgets.NewStaticStatus: poster cannot be nil")
	}
	s := &StaticStatus{
		content: content,
		poster:  poster,
		style:   lipgloss.NewStyle().Foreground(ColorText),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ref == "" {
		s.ref = core.NewRef("static")
	}
	return s
}

func (s *StaticStatus) Ref() core.WidgetRef       { return s.ref }
func (s *StaticStatus) Content() core.Renderable  { return s.content }
func (s *StaticStatus) Alignment() core.Alignment { return s.align }

// ChangeContent asks for new content and keeps the current alignment.
func (s *StaticStatus) ChangeContent(content core.Renderable) {
	s.poster.Post(core.ChangeContentMsg{Ref: s.ref, Content: content})
}

func (s *StaticStatus) ChangeContentAligned(content core.Renderable, align core.Alignment) {
	s.poster.Post(core.ChangeContentMsg{Ref: s.ref, Content: content, Align: align})
}

func (s *StaticStatus) ChangeText(text string) {
	s.ChangeContent(core.Text(text))
}

func (s *StaticStatus) Receive(req core.ChangeRequest) tea.Cmd {
	if req == nil || req.Target() != s.ref {
		return nil
	}
	msg, ok := req.(core.ChangeContentMsg)
	if !ok {
		return nil
	}
	s.content = msg.Content
	if msg.Align != core.AlignUnset {
		s.align = msg.Align
	}
	return nil
}

func (s *StaticStatus) Update(msg tea.Msg) tea.Cmd {
	if req, ok := msg.(core.ChangeRequest); ok {
		return s.Receive(req)
	}
	return nil
}

func (s *StaticStatus) Render(width, height int) string {
	text := ""
	if s.content != nil {
		text = s.content.Render(width, height)
	}
	style := s.style.Align(s.align.Position())
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}
