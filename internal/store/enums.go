package store

// PaymentStatus represents the lifecycle state of a payment.
// Transitions are pending→completed or pending→failed only; completed is
// terminal.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)
