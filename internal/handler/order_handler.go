package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pawmart/internal/domain/order"
	"pawmart/internal/services"
	"pawmart/internal/transport/httpdto"
	pawmart_errors "pawmart/pkg/errors"
)

// OrderCreator is the slice of OrderService this handler consumes.
type OrderCreator interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, items []services.OrderItemInput, shippingAddress string) (order.Order, error)
	CreatePaymentSession(ctx context.Context, userID uuid.UUID, items []services.OrderItemInput, shippingAddress string) (services.PaymentSession, error)
	GetOrder(ctx context.Context, id uuid.UUID) (order.Order, error)
}

type OrderHandler struct {
	service OrderCreator
}

func NewOrderHandler(service OrderCreator) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, items, shipping, ok := h.bindOrderRequest(c)
	if !ok {
		return
	}

	o, err := h.service.CreateOrder(c.Request.Context(), userID, items, shipping)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(o))
}

func (h *OrderHandler) CreateCheckoutSession(c *gin.Context) {
	userID, items, shipping, ok := h.bindOrderRequest(c)
	if !ok {
		return
	}

	session, err := h.service.CreatePaymentSession(c.Request.Context(), userID, items, shipping)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.PaymentSessionResponse{
		SessionID: session.SessionID,
		URL:       session.URL,
		OrderID:   session.OrderID.String(),
	}))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid order id", "INVALID_REQUEST"))
		return
	}
	o, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(o))
}

func (h *OrderHandler) bindOrderRequest(c *gin.Context) (uuid.UUID, []services.OrderItemInput, string, bool) {
	var req httpdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return uuid.Nil, nil, "", false
	}

	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, pawmart_errors.ErrUnauthorized)
		return uuid.Nil, nil, "", false
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		petID, err := uuid.Parse(it.PetID)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid pet_id", "INVALID_REQUEST"))
			return uuid.Nil, nil, "", false
		}
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid price", "INVALID_REQUEST"))
			return uuid.Nil, nil, "", false
		}
		items = append(items, services.OrderItemInput{PetID: petID, Price: price})
	}
	return userID, items, req.ShippingAddress, true
}
