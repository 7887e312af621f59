package service

import (
	"github.com/techsolutions/horabank/internal/logger"
)

//go:generate mockgen -source=notifier.go -destination=../mock/notifier_mock.go -package=mock

// Notification variants understood by every notifier implementation.
const (
	VariantSuccess     = "success"
	VariantDestructive = "destructive"
)

// Notification is a transient user-facing message. The stores emit one per
// settled operation outcome; what a notifier does with it (status line,
// log entry) is its own business; the stores never depend on a result.
type Notification struct {
	Title       string
	Description string
	Variant     string
}

// Notifier receives store notifications. Implementations must be cheap and
// non-blocking; they are called from inside store operations.
type Notifier interface {
	Notify(n Notification)
}

// logNotifier writes notifications to the application log. It is the
// default sink when no interactive UI is attached.
type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that records notifications on log.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) Notify(notification Notification) {
	evt := n.logger.Info()
	if notification.Variant == VariantDestructive {
		evt = n.logger.Warn()
	}

	evt.
		Str("title", notification.Title).
		Str("variant", notification.Variant).
		Msg(notification.Description)
}
