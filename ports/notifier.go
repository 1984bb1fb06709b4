package ports

// Severity grades a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is the fixed payload shape pushed to the host's toast
// mechanism, e.g. when a load cycle truncates an oversized record set.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier delivers non-blocking notifications to the host UI.
type Notifier interface {
	Notify(n Notification)
}

// Interaction is the payload sent when a user interacts with a plotted
// element.
type Interaction struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Record any     `json:"record,omitempty"`
}

// InteractionSink receives plotted-element interactions for navigation
// or drill-down handling by the host.
type InteractionSink interface {
	Interact(i Interaction)
}
