package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewRefIsUniqueAndPrefixed(t *testing.T) {
	a, b := NewRef("radio"), NewRef("radio")
	if a == b {
		t.Fatalf("expected distinct refs, got %q twice", a)
	}
	if !strings.HasPrefix(a.String(), "radio-") {
		t.Fatalf("ref %q should carry its prefix", a)
	}
	if got := NewRef("  "); !strings.HasPrefix(got.String(), "widget-") {
		t.Fatalf("blank prefix should default to widget, got %q", got)
	}
}

func TestRequestKinds(t *testing.T) {
	cases := []struct {
		req  ChangeRequest
		kind RequestKind
		name string
	}{
		{TurnOnMsg{Ref: "r"}, KindTurnOn, "turn_on"},
		{TurnOffMsg{Ref: "r"}, KindTurnOff, "turn_off"},
		{ChangeContentMsg{Ref: "r"}, KindChangeContent, "change_content"},
	}
	for _, tc := range cases {
		if tc.req.Kind() != tc.kind || tc.req.Kind().String() != tc.name {
			t.Fatalf("%T kind = %v, want %v", tc.req, tc.req.Kind(), tc.name)
		}
		if tc.req.Target() != "r" {
			t.Fatalf("%T target = %q", tc.req, tc.req.Target())
		}
	}
	if RequestKind(42).String() != "unknown" {
		t.Fatalf("out of range kind should stringify as unknown")
	}
}

func TestAlignmentPosition(t *testing.T) {
	if ParseAlignment(" Center ") != AlignCenter {
		t.Fatalf("ParseAlignment should normalize case and space")
	}
	if AlignRight.Position() != lipgloss.Right || AlignCenter.Position() != lipgloss.Center {
		t.Fatalf("unexpected positions")
	}
	if ParseAlignment("diagonal").Position() != lipgloss.Left || AlignUnset.Position() != lipgloss.Left {
		t.Fatalf("unknown and unset alignments render left")
	}
}
