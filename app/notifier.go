package app

import (
	"chartcore/internal"
	"chartcore/ports"
)

// LogNotifier is the default notification sink when the host wires no
// toast mechanism: notifications land in the log at their severity.
type LogNotifier struct {
	logger *internal.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *internal.Logger) *LogNotifier {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &LogNotifier{logger: logger}
}

// Notify implements ports.Notifier.
func (n *LogNotifier) Notify(note ports.Notification) {
	switch note.Severity {
	case ports.SeverityError:
		n.logger.Error("%s: %s", note.Title, note.Message)
	case ports.SeverityWarning:
		n.logger.Warn("%s: %s", note.Title, note.Message)
	default:
		n.logger.Info("%s: %s", note.Title, note.Message)
	}
}
