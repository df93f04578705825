package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// PaymentStatus tracks the gateway-side state of an order's payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order is the aggregate root for a direct purchase. PaymentIntentID and
// StripeSessionID are set at most once, by the gateway flow.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentIntentID *string         `json:"payment_intent_id,omitempty"`
	StripeSessionID *string         `json:"stripe_session_id,omitempty"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	RefundedAt      *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem is one reserved pet on an order. Rows are insertion-ordered and
// immutable after the order is created.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	PetID     uuid.UUID       `json:"pet_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// Total sums the line prices of items.
func Total(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}
