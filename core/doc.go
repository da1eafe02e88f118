// Package core contains the request contracts shared by every widget.
//
// Allowed here:
// - change-request messages and the refs they address
// - the mailbox that queues requests for the update loop, and the router that delivers them
// - capability interfaces implemented by widgets (Receiver, Controllable, Renderable)
//
// Not allowed here:
// - concrete widget state or rendering (widgets)
// - tab and pane composition (tabs)
package core
