package webhook

import "time"

// EventLog is the idempotency/audit record for a gateway event. EventID is
// the gateway-assigned identifier and is unique; inserting a duplicate is
// ignored, not an error.
type EventLog struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	Payload     []byte    `json:"payload"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Gateway event types this core reacts to. Anything else is a logged no-op.
const (
	TypeCheckoutCompleted = "checkout.session.completed"
	TypePaymentSucceeded  = "payment_intent.succeeded"
	TypePaymentFailed     = "payment_intent.payment_failed"
	TypeChargeRefunded    = "charge.refunded"
)
