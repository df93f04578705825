package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pawmart_errors "pawmart/pkg/errors"
)

type fakeProcessor struct {
	err       error
	payload   []byte
	signature string
}

func (f *fakeProcessor) HandleEvent(_ context.Context, payload []byte, signature string) error {
	f.payload = payload
	f.signature = signature
	return f.err
}

func postWebhook(h *WebhookHandler, body, signature string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/webhooks/stripe", h.HandleStripe)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleStripe(t *testing.T) {
	t.Run("passes payload and signature through", func(t *testing.T) {
		proc := &fakeProcessor{}
		w := postWebhook(NewWebhookHandler(proc, nil), `{"id":"evt_1"}`, "t=1,v1=abc")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if string(proc.payload) != `{"id":"evt_1"}` || proc.signature != "t=1,v1=abc" {
			t.Fatalf("processor got payload=%q signature=%q", proc.payload, proc.signature)
		}
		if !strings.Contains(w.Body.String(), `"received":true`) {
			t.Fatalf("body = %s", w.Body.String())
		}
	})

	t.Run("invalid signature is a terminal 400", func(t *testing.T) {
		proc := &fakeProcessor{err: fmt.Errorf("%w: bad digest", pawmart_errors.ErrSignatureInvalid)}
		w := postWebhook(NewWebhookHandler(proc, nil), "{}", "t=1,v1=bad")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "SIGNATURE_INVALID") {
			t.Fatalf("body = %s", w.Body.String())
		}
	})

	t.Run("processing failure is a 500 so the gateway retries", func(t *testing.T) {
		proc := &fakeProcessor{err: errors.New("db down")}
		w := postWebhook(NewWebhookHandler(proc, nil), "{}", "t=1,v1=abc")

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})
}
