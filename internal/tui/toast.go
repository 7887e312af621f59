package tui

import (
	"sync"

	"github.com/techsolutions/horabank/internal/service"
)

// ToastNotifier collects store notifications for display. The stores
// call Notify from inside their operations; the TUI drains the queue
// after each operation settles and shows the entries as a toast line.
type ToastNotifier struct {
	mu      sync.Mutex
	pending []service.Notification
}

// NewToastNotifier returns an empty notifier ready to be shared between
// the stores and the TUI.
func NewToastNotifier() *ToastNotifier {
	return &ToastNotifier{}
}

// Notify implements [service.Notifier].
func (n *ToastNotifier) Notify(notification service.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, notification)
}

// Drain returns the queued notifications and empties the queue.
func (n *ToastNotifier) Drain() []service.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.pending
	n.pending = nil
	return out
}
