// Package tabs contains the dynamic tabbed container.
//
// Allowed here:
// - pane wrapping and id assignment, the header list (Tabs), the content switcher
// - composition and append of (header, pane) pairs, tab navigation
//
// Not allowed here:
// - status widget state (widgets) or request routing (core)
package tabs
