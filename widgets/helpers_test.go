package widgets

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/jask/teakit/core"
)

// drain delivers everything queued in mb to the given receivers, the way
// the update loop would on its next turn.
func drain(t *testing.T, mb *core.Mailbox, receivers ...core.Receiver) {
	t.Helper()
	router := core.NewRouter(mb, zerolog.Nop())
	router.Register(receivers...)
	router.Handle(core.DeliveryMsg{Requests: mb.Drain()})
}
