package tabs

import (
	"fmt"

	"github.com/jask/teakit/core"
)

// TabPane is the content shown while its header is active.
type TabPane struct {
	id      string
	title   string
	content core.Renderable
}

func NewTabPane(title string, content core.Renderable) *TabPane {
	return &TabPane{title: title, content: content}
}

// WithID sets the pane id and returns the pane.
func (p *TabPane) WithID(id string) *TabPane {
	p.id = id
	return p
}

func (p *TabPane) ID() string                   { return p.id }
func (p *TabPane) Title() string                { return p.title }
func (p *TabPane) Content() core.Renderable     { return p.content }
func (p *TabPane) SetContent(c core.Renderable) { p.content = c }

func (p *TabPane) Render(width, height int) string {
	if p.content == nil {
		return ""
	}
	return p.content.Render(width, height)
}

// wrapContent returns content as a pane. An existing pane is returned
// untouched; anything else is wrapped in a fresh pane with no id.
func wrapContent(title string, content any) *TabPane {
	switch c := content.(type) {
	case *TabPane:
		if c == nil {
			return NewTabPane(title, nil)
		}
		return c
	case core.Renderable:
		return NewTabPane(title, c)
	case string:
		return NewTabPane(title, core.Text(c))
	case fmt.Stringer:
		return NewTabPane(title, core.Text(c.String()))
	case nil:
		return NewTabPane(title, nil)
	default:
		return NewTabPane(title, core.Text(fmt.Sprint(c)))
	}
}

// resolve works out the title and id a pane will carry without touching
// it. The pane's own values win over the fallbacks.
func resolve(p *TabPane, title string, ids ...string) (string, string) {
	t := p.title
	if t == "" {
		t = title
	}
	id := p.id
	for _, candidate := range ids {
		if id != "" {
			break
		}
		id = candidate
	}
	return t, id
}
