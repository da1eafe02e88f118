package tabs

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/teakit/core"
)

func headerIDs(t *Tabs) []string {
	out := make([]string, 0, t.Len())
	for _, tab := range t.Tabs() {
		out = append(out, tab.ID)
	}
	return out
}

func paneIDs(panes []*TabPane) []string {
	out := make([]string, 0, len(panes))
	for _, p := range panes {
		out = append(out, p.ID())
	}
	return out
}

func composed(t *testing.T, n int, opts ...Option) *TabbedContent {
	t.Helper()
	entries := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, Entry{Title: fmt.Sprintf("Pane %d", i), Content: fmt.Sprintf("body %d", i)})
	}
	c := New(entries, opts...)
	require.NoError(t, c.Compose())
	return c
}

// mountAll runs the command returned by Append and feeds its message back
// to the container, as the update loop would after the next render.
func mountAll(t *testing.T, c *TabbedContent, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	next := c.Update(cmd())
	if next == nil {
		return nil
	}
	return next()
}

func TestComposeAssignsSequentialIDs(t *testing.T) {
	for _, n := range []int{1, 3, 7} {
		c := composed(t, n)
		want := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			want = append(want, fmt.Sprintf("tab-%d", i))
		}
		assert.Equal(t, want, paneIDs(c.Contents()))
		assert.Equal(t, want, headerIDs(c.Tabs()))
		assert.Equal(t, want, paneIDs(c.Switcher().Children()))
		assert.Equal(t, "tab-1", c.Active())
		assert.Equal(t, "tab-1", c.Switcher().Current())
	}
}

func TestComposeWrapsContentAndKeepsExplicitPanes(t *testing.T) {
	explicit := NewTabPane("Settings", core.Text("cfg")).WithID("settings")
	unnamed := NewTabPane("", core.Text("x"))
	c := New([]Entry{
		{Title: "Login", Content: core.Text("login")},
		{Content: "no title"},
		{Title: "ignored", Content: explicit},
		{Title: "Named", Content: unnamed},
		{Title: "Empty"},
	})
	require.NoError(t, c.Compose())

	assert.Equal(t, []string{"tab-1", "tab-2", "settings", "tab-4", "tab-5"}, paneIDs(c.Contents()))
	labels := make([]string, 0)
	for _, tab := range c.Tabs().Tabs() {
		labels = append(labels, tab.Label)
	}
	assert.Equal(t, []string{"Login", "Tab 2", "Settings", "Named", "Empty"}, labels)
	assert.Same(t, explicit, c.Contents()[2])
	assert.Equal(t, "", c.Contents()[4].Render(10, 1))
}

func TestComposeUsesInitialOrFallsBackToFirst(t *testing.T) {
	c := composed(t, 3, WithInitial("tab-2"))
	assert.Equal(t, "tab-2", c.Active())
	assert.Equal(t, "tab-2", c.Switcher().Current())
	assert.Contains(t, c.Render(40, 6), "body 2")

	missing := composed(t, 2, WithInitial("nope"))
	assert.Equal(t, "tab-1", missing.Active())
}

func TestComposeTwiceFails(t *testing.T) {
	c := composed(t, 1)
	err := c.Compose()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrComposed))
}

func TestComposeRejectsDuplicateIDs(t *testing.T) {
	a := NewTabPane("A", nil).WithID("dup")
	b := NewTabPane("B", nil).WithID("dup")
	c := New([]Entry{{Content: a}, {Content: b}})
	err := c.Compose()
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.False(t, c.Composed())
	assert.Empty(t, c.Contents())
}

func TestAppendAssignsNextIDAndDefersMount(t *testing.T) {
	c := composed(t, 3)

	cmd, err := c.Append(core.Text("fresh"), PaneTitle("Result"))
	require.NoError(t, err)

	assert.Equal(t, []string{"tab-1", "tab-2", "tab-3", "tab-4"}, headerIDs(c.Tabs()))
	assert.Equal(t, []string{"tab-1", "tab-2", "tab-3", "tab-4"}, paneIDs(c.Contents()))
	assert.Equal(t, 3, c.Switcher().Mounted(), "mount must wait for the next update")
	_, found := c.Switcher().Get("tab-4")
	assert.False(t, found)

	msg := mountAll(t, c, cmd)
	assert.Equal(t, PanesMountedMsg{Container: c.Ref(), IDs: []string{"tab-4"}}, msg)
	assert.Equal(t, []string{"tab-1", "tab-2", "tab-3", "tab-4"}, paneIDs(c.Switcher().Children()))
	last := c.Tabs().Tabs()[3]
	assert.Equal(t, ContentTab{Label: "Result", ID: "tab-4"}, last)
}

func TestAppendTwiceInOneUpdateKeepsIDsDistinctAndOrder(t *testing.T) {
	c := composed(t, 2)
	first, err := c.Append("one")
	require.NoError(t, err)
	second, err := c.Append("two")
	require.NoError(t, err)

	assert.Equal(t, []string{"tab-1", "tab-2", "tab-3", "tab-4"}, headerIDs(c.Tabs()))

	// Commands may resolve in any order; panes still mount in append order.
	mountAll(t, c, second)
	assert.Nil(t, c.Update(first()))
	assert.Equal(t, []string{"tab-1", "tab-2", "tab-3", "tab-4"}, paneIDs(c.Switcher().Children()))
	assert.Zero(t, c.Switcher().Pending())
}

func TestAppendKeepsExplicitIDs(t *testing.T) {
	c := composed(t, 1)
	_, err := c.Append(NewTabPane("Log", nil).WithID("log"))
	require.NoError(t, err)
	_, err = c.Append("notes", PaneID("notes"), PaneTitle("Notes"))
	require.NoError(t, err)
	_, err = c.Append("third")
	require.NoError(t, err)
	assert.Equal(t, []string{"tab-1", "log", "notes", "tab-4"}, headerIDs(c.Tabs()))
}

func TestAppendSkipsGeneratedIDsTakenExplicitly(t *testing.T) {
	c := composed(t, 1)
	_, err := c.Append("x", PaneID("tab-3"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = c.Append("bare")
		require.NoError(t, err)
	}
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"tab-1", "tab-3", "tab-4", "tab-5", "tab-6"}, headerIDs(c.Tabs()))
	assert.Equal(t, "Tab 3", c.Contents()[2].Title(), "titles still follow the pane count")
}

func TestAppendBeforeComposeFailsWithoutPartialState(t *testing.T) {
	c := New([]Entry{{Title: "A", Content: "a"}})
	pane := NewTabPane("", nil)

	cmd, err := c.Append(pane)
	require.ErrorIs(t, err, ErrNotComposed)
	assert.Nil(t, cmd)
	assert.Empty(t, c.Contents())
	assert.Nil(t, c.Tabs())
	assert.Nil(t, c.Switcher())
	assert.Empty(t, pane.ID(), "pane must not be touched")
	assert.Empty(t, pane.Title())
}

func TestAppendRejectsDuplicateIDWithoutPartialState(t *testing.T) {
	c := composed(t, 2)
	pane := NewTabPane("Again", nil).WithID("tab-1")

	_, err := c.Append(pane)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 2, c.Tabs().Len())
	assert.Equal(t, 2, c.Len())
	assert.Zero(t, c.Switcher().Pending())
}

func TestAppendToEmptyContainerActivatesFirstPane(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Compose())
	assert.Empty(t, c.Active())

	cmd, err := c.Append("hello")
	require.NoError(t, err)
	assert.Equal(t, "tab-1", c.Active())
	assert.Equal(t, "tab-1", c.Switcher().Current())
	assert.NotContains(t, c.Render(20, 4), "hello")

	mountAll(t, c, cmd)
	assert.Contains(t, c.Render(20, 4), "hello")
}

func TestKeyNavigationKeepsHeaderAndSwitcherTogether(t *testing.T) {
	c := composed(t, 3)

	cmd := c.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Equal(t, TabActivatedMsg{Container: c.Ref(), TabID: "tab-2"}, cmd())
	assert.Equal(t, "tab-2", c.Switcher().Current())

	c.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	c.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "tab-3", c.Active())
	assert.Equal(t, "tab-3", c.Switcher().Current())

	assert.Nil(t, c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}))
}

func TestActivate(t *testing.T) {
	c := composed(t, 2)
	assert.Nil(t, c.Activate("tab-1"), "already active")
	assert.Nil(t, c.Activate("missing"))
	cmd := c.Activate("tab-2")
	require.NotNil(t, cmd)
	assert.Equal(t, "tab-2", c.Switcher().Current())

	single := composed(t, 1)
	assert.Nil(t, single.Update(tea.KeyMsg{Type: tea.KeyTab}))
}

func TestFindPicksClosestTitle(t *testing.T) {
	c := New([]Entry{{Title: "Login"}, {Title: "Exchange"}, {Title: "Settings"}})
	require.NoError(t, c.Compose())

	p, ok := c.Find("exchang")
	require.True(t, ok)
	assert.Equal(t, "tab-2", p.ID())

	p, ok = c.Find("SETTINGS")
	require.True(t, ok)
	assert.Equal(t, "tab-3", p.ID())

	_, ok = c.Find("  ")
	assert.False(t, ok)
}

func TestRenderStacksHeaderOverActivePane(t *testing.T) {
	c := composed(t, 2)
	children := c.Children()
	require.Len(t, children, 2)
	assert.Same(t, c.Tabs(), children[0])
	assert.Same(t, c.Switcher(), children[1])

	out := c.Render(40, 6)
	assert.Contains(t, out, "Pane 1")
	assert.Contains(t, out, "Pane 2")
	assert.Contains(t, out, "body 1")
	assert.NotContains(t, out, "body 2")

	assert.Empty(t, New(nil).Render(10, 10))
	assert.Nil(t, New(nil).Children())
}

func TestPaneLookup(t *testing.T) {
	c := composed(t, 2)
	p, ok := c.Pane("tab-2")
	require.True(t, ok)
	assert.Equal(t, "Pane 2", p.Title())
	_, ok = c.Pane("tab-9")
	assert.False(t, ok)
}
