package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Router delivers change requests to the widget they address. It is the
// only place a status widget's Receive is invoked, and it runs inside the
// owning model's Update.
type Router struct {
	mailbox   *Mailbox
	receivers map[WidgetRef]Receiver
	log       zerolog.Logger
}

func NewRouter(mailbox *Mailbox, log zerolog.Logger) *Router {
	if mailbox == nil {
		panic("core.NewRouter: mailbox cannot be nil")
	}
	return &Router{
		mailbox:   mailbox,
		receivers: make(map[WidgetRef]Receiver),
		log:       log.With().Str("component", "router").Logger(),
	}
}

func (r *Router) Register(receivers ...Receiver) {
	for _, rc := range receivers {
		if rc == nil {
			continue
		}
		ref := rc.Ref()
		if ref == "" {
			panic("core.Router: receiver must declare a ref")
		}
		if _, exists := r.receivers[ref]; exists {
			panic(fmt.Sprintf("core.Router: duplicate receiver ref %q", ref))
		}
		r.receivers[ref] = rc
	}
}

func (r *Router) Unregister(ref WidgetRef) {
	delete(r.receivers, ref)
}

func (r *Router) Len() int { return len(r.receivers) }

// Listen waits for the next delivery from the mailbox. Handle re-arms it
// after each delivery, so call Listen once from Init.
func (r *Router) Listen() tea.Cmd {
	return r.mailbox.Next()
}

// Handle applies a DeliveryMsg or a bare ChangeRequest. A delivery reaches
// Update strictly in submission order: requests are applied up to the
// first other message, which is re-emitted ahead of a DeliveryMsg holding
// the remainder. Listen is re-armed only once the whole delivery has been
// applied, so later posts cannot overtake it.
func (r *Router) Handle(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case DeliveryMsg:
		cmds := make([]tea.Cmd, 0, len(msg.Requests)+1)
		for i, m := range msg.Requests {
			req, ok := m.(ChangeRequest)
			if !ok {
				next := r.Listen()
				if rest := msg.Requests[i+1:]; len(rest) > 0 {
					next = emit(DeliveryMsg{Requests: rest})
				}
				cmds = append(cmds, tea.Sequence(emit(m), next))
				return true, tea.Batch(cmds...)
			}
			if cmd := r.Dispatch(req); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		cmds = append(cmds, r.Listen())
		return true, tea.Batch(cmds...)
	case ChangeRequest:
		return true, r.Dispatch(msg)
	}
	return false, nil
}

// Dispatch hands one request to its target. Requests for unknown refs
// are dropped.
func (r *Router) Dispatch(req ChangeRequest) tea.Cmd {
	rc, ok := r.receivers[req.Target()]
	if !ok {
		r.log.Warn().
			Str("ref", req.Target().String()).
			Str("kind", req.Kind().String()).
			Msg("change request for unknown widget dropped")
		return nil
	}
	r.log.Trace().
		Str("ref", req.Target().String()).
		Str("kind", req.Kind().String()).
		Msg("change request applied")
	return rc.Receive(req)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
