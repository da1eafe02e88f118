package core

//go:generate mockgen -source=mailbox.go -destination=mocks/mock_poster.go -package=mocks

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Poster submits a message for later, ordered delivery on the update loop.
type Poster interface {
	Post(msg tea.Msg)
}

// DeliveryMsg carries every message queued in a Mailbox at the moment it
// was drained, in submission order.
type DeliveryMsg struct {
	Requests []tea.Msg
}

// Mailbox is an unbounded FIFO of messages bound for the update loop.
// Post is safe from any goroutine and never blocks. A single consumer
// drains it through Next; keep at most one Next command outstanding and
// issue the next one only after the previous delivery has been applied.
type Mailbox struct {
	mu     sync.Mutex
	queue  []tea.Msg
	ready  chan struct{}
	done   chan struct{}
	closed bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

func (b *Mailbox) Post(msg tea.Msg) {
	if msg == nil {
		return
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// Drain removes and returns everything queued, oldest first.
func (b *Mailbox) Drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}

func (b *Mailbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Next waits until at least one message is queued and yields the whole
// queue as one DeliveryMsg. It yields nil once the mailbox is closed and
// empty.
func (b *Mailbox) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			if msgs := b.Drain(); len(msgs) > 0 {
				return DeliveryMsg{Requests: msgs}
			}
			select {
			case <-b.ready:
			case <-b.done:
				if msgs := b.Drain(); len(msgs) > 0 {
					return DeliveryMsg{Requests: msgs}
				}
				return nil
			}
		}
	}
}

// Close drops later posts and releases a waiting Next. Messages already
// queued are still delivered.
func (b *Mailbox) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
}
