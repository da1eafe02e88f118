package tabs

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// mountPanesMsg tells a switcher to mount its pending panes. It is emitted
// by the command Mount returns, so it lands after the update that asked
// for the mount has rendered.
type mountPanesMsg struct {
	switcher *ContentSwitcher
}

// ContentSwitcher holds every pane and shows the current one.
type ContentSwitcher struct {
	panes   []*TabPane
	pending []*TabPane
	current string
}

func NewContentSwitcher(initial string) *ContentSwitcher {
	return &ContentSwitcher{current: initial}
}

// Mount queues a pane and returns the command that mounts it. Queued panes
// mount in the order Mount was called whatever order the commands resolve.
func (s *ContentSwitcher) Mount(p *TabPane) tea.Cmd {
	s.pending = append(s.pending, p)
	return func() tea.Msg { return mountPanesMsg{switcher: s} }
}

// mount attaches panes immediately. Used while composing, before the first
// render.
func (s *ContentSwitcher) mount(panes ...*TabPane) {
	s.panes = append(s.panes, panes...)
}

// Update mounts pending panes when their mount message arrives and reports
// the ids mounted.
func (s *ContentSwitcher) Update(msg tea.Msg) []string {
	m, ok := msg.(mountPanesMsg)
	if !ok || m.switcher != s || len(s.pending) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.pending))
	for _, p := range s.pending {
		ids = append(ids, p.ID())
	}
	s.panes = append(s.panes, s.pending...)
	s.pending = nil
	return ids
}

// Children returns the mounted panes in order.
func (s *ContentSwitcher) Children() []*TabPane { return slices.Clone(s.panes) }

func (s *ContentSwitcher) Mounted() int { return len(s.panes) }
func (s *ContentSwitcher) Pending() int { return len(s.pending) }

// Count is the number of panes requested into the switcher, mounted or not.
func (s *ContentSwitcher) Count() int { return len(s.panes) + len(s.pending) }

func (s *ContentSwitcher) Current() string { return s.current }

func (s *ContentSwitcher) SetCurrent(id string) { s.current = id }

// Get finds a mounted pane. Pending panes are not returned.
func (s *ContentSwitcher) Get(id string) (*TabPane, bool) {
	for _, p := range s.panes {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Render draws the current pane, or nothing while it is not mounted.
func (s *ContentSwitcher) Render(width, height int) string {
	p, ok := s.Get(s.current)
	if !ok {
		return ""
	}
	return p.Render(width, height)
}
