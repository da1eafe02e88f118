package tabs

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/teakit/widgets"
)

// ContentTab is one header in a Tabs row.
type ContentTab struct {
	Label string
	ID    string
}

type TabsStyles struct {
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Separator lipgloss.Style
	Rule      lipgloss.Style
}

func DefaultTabsStyles() TabsStyles {
	return TabsStyles{
		Active:    lipgloss.NewStyle().Foreground(widgets.ColorBg).Background(widgets.ColorAccent).Bold(true).Padding(0, 1),
		Inactive:  lipgloss.NewStyle().Foreground(widgets.ColorMuted).Padding(0, 1),
		Separator: lipgloss.NewStyle().Foreground(widgets.ColorBorder),
		Rule:      lipgloss.NewStyle().Foreground(widgets.ColorBorder),
	}
}

// Tabs is the header row. It tracks which header is active; the owning
// container keeps the content switcher in step with it.
type Tabs struct {
	tabs       []ContentTab
	active     string
	styles     TabsStyles
	labelWidth int
}

// NewTabs builds a header row. An empty or unknown active id falls back to
// the first header.
func NewTabs(active string, tabs ...ContentTab) *Tabs {
	t := &Tabs{tabs: slices.Clone(tabs), styles: DefaultTabsStyles()}
	if active != "" && t.index(active) >= 0 {
		t.active = active
	} else if len(t.tabs) > 0 {
		t.active = t.tabs[0].ID
	}
	return t
}

// AddTab appends a header. The first header added to an empty row becomes
// active.
func (t *Tabs) AddTab(tab ContentTab) {
	t.tabs = append(t.tabs, tab)
	if t.active == "" {
		t.active = tab.ID
	}
}

func (t *Tabs) Tabs() []ContentTab { return slices.Clone(t.tabs) }
func (t *Tabs) Len() int           { return len(t.tabs) }
func (t *Tabs) Active() string     { return t.active }

func (t *Tabs) SetStyles(s TabsStyles) { t.styles = s }

// SetLabelWidth caps each rendered label at n cells. Zero means no cap.
func (t *Tabs) SetLabelWidth(n int) { t.labelWidth = max(0, n) }

func (t *Tabs) SetActive(id string) bool {
	if t.index(id) < 0 {
		return false
	}
	t.active = id
	return true
}

// Next activates the following header, wrapping at the end, and returns
// its id.
func (t *Tabs) Next() string { return t.move(1) }

func (t *Tabs) Prev() string { return t.move(-1) }

func (t *Tabs) move(delta int) string {
	if len(t.tabs) == 0 {
		return ""
	}
	idx := t.index(t.active)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(t.tabs)) % len(t.tabs)
	}
	t.active = t.tabs[idx].ID
	return t.active
}

func (t *Tabs) index(id string) int {
	for i, tab := range t.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Render draws the header row and a rule beneath it.
func (t *Tabs) Render(width, height int) string {
	parts := make([]string, 0, len(t.tabs)*2)
	sep := t.styles.Separator.Render("│")
	for i, tab := range t.tabs {
		if i > 0 {
			parts = append(parts, sep)
		}
		label := tab.Label
		if t.labelWidth > 0 {
			label = ansi.Truncate(label, t.labelWidth, "…")
		}
		style := t.styles.Inactive
		if tab.ID == t.active {
			style = t.styles.Active
		}
		parts = append(parts, style.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width <= 0 {
		return row
	}
	row = ansi.Truncate(row, width, "")
	if height == 1 {
		return row
	}
	return row + "\n" + t.styles.Rule.Render(strings.Repeat("─", width))
}
