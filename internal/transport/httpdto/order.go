package httpdto

// OrderItemRequest is one line of a create-order request. Price is a decimal
// string ("100.00").
type OrderItemRequest struct {
	PetID string `json:"pet_id" binding:"required"`
	Price string `json:"price" binding:"required"`
}

// CreateOrderRequest is used for POST /v1/orders and
// POST /v1/orders/checkout-session
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
}

// PaymentSessionResponse is returned after creating a checkout session
type PaymentSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	OrderID   string `json:"order_id"`
}
