package tabs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/teakit/core"
)

var (
	ErrNotComposed = errors.New("tabbed content not composed")
	ErrComposed    = errors.New("tabbed content already composed")
	ErrDuplicateID = errors.New("duplicate pane id")
)

// Entry is one (title, content) pair given at construction. Content may
// be a *TabPane, a core.Renderable, a string or nil.
type Entry struct {
	Title   string
	Content any
}

// TabActivatedMsg reports a change of active tab.
type TabActivatedMsg struct {
	Container core.WidgetRef
	TabID     string
}

// PanesMountedMsg reports appended panes that are now mounted and can be
// looked up in the switcher.
type PanesMountedMsg struct {
	Container core.WidgetRef
	IDs       []string
}

// TabbedContent pairs a Tabs header row with a ContentSwitcher. After
// Compose the headers, the switcher's children and Contents stay in the
// same order, one for one.
type TabbedContent struct {
	ref        core.WidgetRef
	entries    []Entry
	panes      []*TabPane
	initial    string
	tabs       *Tabs
	switcher   *ContentSwitcher
	keys       KeyMap
	styles     TabsStyles
	labelWidth int
	log        zerolog.Logger
}

type Option func(*TabbedContent)

// WithInitial selects the tab active after Compose.
func WithInitial(id string) Option {
	return func(c *TabbedContent) { c.initial = id }
}

func WithRef(ref core.WidgetRef) Option {
	return func(c *TabbedContent) { c.ref = ref }
}

func WithKeyMap(km KeyMap) Option {
	return func(c *TabbedContent) { c.keys = km }
}

func WithTabsStyles(s TabsStyles) Option {
	return func(c *TabbedContent) { c.styles = s }
}

func WithLabelWidth(n int) Option {
	return func(c *TabbedContent) { c.labelWidth = n }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *TabbedContent) { c.log = log }
}

func New(entries []Entry, opts ...Option) *TabbedContent {
	c := &TabbedContent{
		entries: slices.Clone(entries),
		keys:    DefaultKeyMap(),
		styles:  DefaultTabsStyles(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ref == "" {
		c.ref = core.NewRef("tabbed")
	}
	c.log = c.log.With().Str("component", "tabbed").Str("ref", c.ref.String()).Logger()
	return c
}

func (c *TabbedContent) Ref() core.WidgetRef { return c.ref }
func (c *TabbedContent) Keys() KeyMap        { return c.keys }
func (c *TabbedContent) Composed() bool      { return c.tabs != nil && c.switcher != nil }

// Tabs and Switcher return the sub-widgets, nil before Compose.
func (c *TabbedContent) Tabs() *Tabs                { return c.tabs }
func (c *TabbedContent) Switcher() *ContentSwitcher { return c.switcher }

// Compose builds the header row and content switcher from the entries.
// Panes without an id get tab-<position>, counting from 1.
func (c *TabbedContent) Compose() error {
	if c.Composed() {
		return fmt.Errorf("compose %s: %w", c.ref, ErrComposed)
	}

	type planned struct {
		pane      *TabPane
		title, id string
	}
	plan := make([]planned, 0, len(c.entries))
	seen := make(map[string]struct{}, len(c.entries))
	for i, e := range c.entries {
		index := i + 1
		title := e.Title
		if title == "" {
			title = fmt.Sprintf("Tab %d", index)
		}
		pane := wrapContent(title, e.Content)
		t, id := resolve(pane, title, fmt.Sprintf("tab-%d", index))
		if _, dup := seen[id]; dup {
			return fmt.Errorf("compose %s: %w: %q", c.ref, ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		plan = append(plan, planned{pane: pane, title: t, id: id})
	}

	panes := make([]*TabPane, 0, len(plan))
	headers := make([]ContentTab, 0, len(plan))
	for _, p := range plan {
		p.pane.title, p.pane.id = p.title, p.id
		panes = append(panes, p.pane)
		headers = append(headers, ContentTab{Label: p.title, ID: p.id})
	}

	tabs := NewTabs(c.initial, headers...)
	tabs.SetStyles(c.styles)
	tabs.SetLabelWidth(c.labelWidth)
	if c.initial != "" && tabs.Active() != c.initial {
		c.log.Warn().Str("initial", c.initial).Str("active", tabs.Active()).Msg("initial tab not found; using first tab")
	}
	switcher := NewContentSwitcher(tabs.Active())
	switcher.mount(panes...)

	c.tabs, c.switcher, c.panes = tabs, switcher, panes
	c.entries = nil
	c.log.Debug().Int("panes", len(panes)).Str("active", tabs.Active()).Msg("composed")
	return nil
}

type paneOptions struct {
	title string
	id    string
}

type PaneOption func(*paneOptions)

// PaneTitle is used when the appended content is not already a titled pane.
func PaneTitle(title string) PaneOption {
	return func(o *paneOptions) { o.title = title }
}

// PaneID is used when the appended content carries no id of its own.
func PaneID(id string) PaneOption {
	return func(o *paneOptions) { o.id = id }
}

// Append adds a pane after composition. The header is added at once; the
// pane is mounted by the returned command, after the current update has
// rendered. Until then the header exists but Switcher().Get cannot find
// the pane. A pane with no id gets tab-<Count()+1>, or the next free
// tab-<k> after it when an earlier pane already took that id.
func (c *TabbedContent) Append(content any, opts ...PaneOption) (tea.Cmd, error) {
	if !c.Composed() {
		return nil, fmt.Errorf("append to %s: %w", c.ref, ErrNotComposed)
	}
	var o paneOptions
	for _, opt := range opts {
		opt(&o)
	}

	index := c.switcher.Count() + 1
	title := o.title
	if title == "" {
		title = fmt.Sprintf("Tab %d", index)
	}
	pane := wrapContent(title, content)
	t, id := resolve(pane, title, o.id, c.freeID(index))
	if c.indexOf(id) >= 0 {
		return nil, fmt.Errorf("append to %s: %w: %q", c.ref, ErrDuplicateID, id)
	}
	pane.title, pane.id = t, id

	c.panes = append(c.panes, pane)
	header := ContentTab{Label: pane.title, ID: pane.id}
	mount := c.switcher.Mount(pane)
	c.tabs.AddTab(header)
	if c.switcher.Current() == "" {
		c.switcher.SetCurrent(c.tabs.Active())
	}
	c.log.Debug().Str("pane", id).Int("headers", c.tabs.Len()).Int("mounted", c.switcher.Mounted()).Msg("pane appended")
	return mount, nil
}

// Contents returns the panes in header order, including appended panes
// that are not mounted yet. Empty before Compose.
func (c *TabbedContent) Contents() []*TabPane { return slices.Clone(c.panes) }

func (c *TabbedContent) Len() int { return len(c.panes) }

func (c *TabbedContent) Pane(id string) (*TabPane, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.panes[i], true
	}
	return nil, false
}

func (c *TabbedContent) freeID(from int) string {
	for k := from; ; k++ {
		if id := fmt.Sprintf("tab-%d", k); c.indexOf(id) < 0 {
			return id
		}
	}
}

func (c *TabbedContent) indexOf(id string) int {
	for i, p := range c.panes {
		if p.id == id {
			return i
		}
	}
	return -1
}

// Active is the active tab id. Before Compose it is the configured
// initial id.
func (c *TabbedContent) Active() string {
	if !c.Composed() {
		return c.initial
	}
	return c.tabs.Active()
}

// Activate moves the header row and the switcher to id together. It
// returns nil when id is unknown or already active.
func (c *TabbedContent) Activate(id string) tea.Cmd {
	if !c.Composed() || id == c.tabs.Active() {
		return nil
	}
	if !c.tabs.SetActive(id) {
		return nil
	}
	return c.activated()
}

func (c *TabbedContent) step(delta int) tea.Cmd {
	if !c.Composed() || c.tabs.Len() < 2 {
		return nil
	}
	if delta > 0 {
		c.tabs.Next()
	} else {
		c.tabs.Prev()
	}
	return c.activated()
}

func (c *TabbedContent) activated() tea.Cmd {
	id := c.tabs.Active()
	c.switcher.SetCurrent(id)
	ref := c.ref
	return func() tea.Msg { return TabActivatedMsg{Container: ref, TabID: id} }
}

// Find returns the pane whose title is closest to query, ignoring case.
// Ties go to the earlier pane.
func (c *TabbedContent) Find(query string) (*TabPane, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(c.panes) == 0 {
		return nil, false
	}
	best, bestDist := -1, 0
	for i, p := range c.panes {
		d := levenshtein.ComputeDistance(query, strings.ToLower(p.title))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return c.panes[best], true
}

func (c *TabbedContent) Update(msg tea.Msg) tea.Cmd {
	if !c.Composed() {
		return nil
	}
	switch msg := msg.(type) {
	case mountPanesMsg:
		ids := c.switcher.Update(msg)
		if len(ids) == 0 {
			return nil
		}
		c.log.Debug().Strs("panes", ids).Msg("panes mounted")
		ref := c.ref
		return func() tea.Msg { return PanesMountedMsg{Container: ref, IDs: ids} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Next):
			return c.step(1)
		case key.Matches(msg, c.keys.Prev):
			return c.step(-1)
		}
	}
	return nil
}

// Children yields the header row then the switcher, nil before Compose.
func (c *TabbedContent) Children() []core.Renderable {
	if !c.Composed() {
		return nil
	}
	return []core.Renderable{c.tabs, c.switcher}
}

func (c *TabbedContent) Render(width, height int) string {
	if !c.Composed() {
		return ""
	}
	header := c.tabs.Render(width, 2)
	body := c.switcher.Render(width, max(1, height-2))
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
