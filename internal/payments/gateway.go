package payments

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutItem is one line of a checkout session.
type CheckoutItem struct {
	PetID uuid.UUID
	Name  string
	Price decimal.Decimal
}

// CheckoutParams carries everything the gateway needs to build a session.
// OrderID and UserID travel as opaque metadata and come back on the
// checkout.session.completed event.
type CheckoutParams struct {
	Items           []CheckoutItem
	ShippingAddress string
	OrderID         uuid.UUID
	UserID          uuid.UUID
	CustomerEmail   string
}

// CheckoutSession is the gateway's handle for a hosted payment page.
type CheckoutSession struct {
	ID  string
	URL string
}

// Event is a verified gateway notification. Object is the raw JSON of the
// event's payload object (session, payment intent or charge).
type Event struct {
	ID     string
	Type   string
	Object json.RawMessage
}

// SessionDetails is the reconciliation view of a finished session.
type SessionDetails struct {
	PaymentStatus string
	Metadata      map[string]string
}

// Gateway is the narrow contract this service consumes from the payment
// provider. The provider itself (session hosting, charging, refunds) stays
// external.
type Gateway interface {
	// Configured reports whether the gateway has credentials. Callers must
	// check it before opening any reservation transaction.
	Configured() bool
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	// VerifyWebhookSignature authenticates a raw webhook delivery and
	// returns the decoded event.
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	GetSessionDetails(ctx context.Context, sessionID string) (SessionDetails, error)
}
