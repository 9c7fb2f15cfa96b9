package app

import (
	"sync"
	"time"
)

// dismissAfter is how long a toast stays visible before the fire-and-forget
// timer clears it.
const dismissAfter = 4 * time.Second

// Notification is the transient toast shown after a mutation.
type Notification struct {
	Message string
	Visible bool
}

// Notifier holds the current toast. The auto-dismiss timer is the one piece
// of the core that runs off the main thread, so this type carries its own
// lock.
type Notifier struct {
	mu      sync.Mutex
	current Notification
	timer   *time.Timer
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify replaces the current toast and re-arms the auto-dismiss timer.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = Notification{Message: message, Visible: true}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(dismissAfter, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.current.Visible = false
	})
}

// Current returns the toast state.
func (n *Notifier) Current() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
