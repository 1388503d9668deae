package ports

// Engine labels.
const (
	EnginePickOrder  = "pick_order"
	EngineRecipients = "recipients"
)

// Draw outcome labels.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeFailed       = "failed"
)

// DrawMetrics records draw activity.
type DrawMetrics interface {
	ObserveDraw(engine, outcome string)
	ObserveAssignmentAttempts(attempts int)
	ObserveNotification(status NotificationStatus)
}
