package tabs

import (
	"strings"
	"testing"
)

func TestTabsDefaultsToFirstHeader(t *testing.T) {
	tabs := NewTabs("", ContentTab{Label: "A", ID: "a"}, ContentTab{Label: "B", ID: "b"})
	if tabs.Active() != "a" {
		t.Fatalf("active = %q, want a", tabs.Active())
	}
	if !tabs.SetActive("b") || tabs.Active() != "b" {
		t.Fatalf("SetActive(b) should succeed")
	}
	if tabs.SetActive("zzz") {
		t.Fatalf("SetActive on unknown id should fail")
	}
}

func TestTabsNextPrevWrap(t *testing.T) {
	tabs := NewTabs("c", ContentTab{ID: "a"}, ContentTab{ID: "b"}, ContentTab{ID: "c"})
	if got := tabs.Next(); got != "a" {
		t.Fatalf("Next from last = %q, want a", got)
	}
	if got := tabs.Prev(); got != "c" {
		t.Fatalf("Prev from first = %q, want c", got)
	}
	if got := NewTabs("").Next(); got != "" {
		t.Fatalf("Next on empty row = %q", got)
	}
}

func TestTabsAddTabActivatesFirst(t *testing.T) {
	tabs := NewTabs("")
	tabs.AddTab(ContentTab{Label: "Only", ID: "only"})
	tabs.AddTab(ContentTab{Label: "Second", ID: "second"})
	if tabs.Active() != "only" || tabs.Len() != 2 {
		t.Fatalf("unexpected state active=%q len=%d", tabs.Active(), tabs.Len())
	}
}

func TestTabsRenderTruncatesLabels(t *testing.T) {
	tabs := NewTabs("", ContentTab{Label: "A very long header", ID: "a"}, ContentTab{Label: "B", ID: "b"})
	tabs.SetLabelWidth(6)
	out := tabs.Render(0, 1)
	if strings.Contains(out, "very long header") {
		t.Fatalf("label should be truncated: %q", out)
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("truncated label should end with ellipsis: %q", out)
	}
	two := tabs.Render(30, 2)
	if lines := strings.Split(two, "\n"); len(lines) != 2 || !strings.Contains(lines[1], "─") {
		t.Fatalf("expected header and rule, got %q", two)
	}
}

func TestSwitcherMountsPendingInOrder(t *testing.T) {
	s := NewContentSwitcher("")
	s.mount(NewTabPane("first", nil).WithID("first"))
	a := s.Mount(NewTabPane("a", nil).WithID("a"))
	b := s.Mount(NewTabPane("b", nil).WithID("b"))
	if s.Count() != 3 || s.Mounted() != 1 || s.Pending() != 2 {
		t.Fatalf("count=%d mounted=%d pending=%d", s.Count(), s.Mounted(), s.Pending())
	}
	if ids := s.Update(b()); len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("mounted ids = %v", ids)
	}
	if ids := s.Update(a()); ids != nil {
		t.Fatalf("second flush should mount nothing, got %v", ids)
	}
	other := NewContentSwitcher("")
	other.Mount(NewTabPane("x", nil))
	if ids := other.Update(a()); ids != nil {
		t.Fatalf("mount message for another switcher must be ignored")
	}
}
