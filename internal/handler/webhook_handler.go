package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawmart/internal/transport/httpdto"
	pawmart_errors "pawmart/pkg/errors"
	"pawmart/pkg/logger"
)

// EventProcessor is the slice of WebhookService this handler consumes.
type EventProcessor interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}

type WebhookHandler struct {
	service EventProcessor
	logger  *logger.Logger
}

func NewWebhookHandler(service EventProcessor, l *logger.Logger) *WebhookHandler {
	return &WebhookHandler{service: service, logger: l}
}

// HandleStripe accepts the gateway's signed payload. Signature failure is a
// client error and terminal; handler failure is a 500 so the gateway retries
// the delivery.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unreadable payload", "INVALID_REQUEST"))
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.service.HandleEvent(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, pawmart_errors.ErrSignatureInvalid) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid signature", "SIGNATURE_INVALID"))
			return
		}
		if h.logger != nil {
			h.logger.Errorf("webhook processing failed: %v", err)
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("event processing failed", "INTERNAL_ERROR"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
