package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"pawmart/internal/domain/order"
	"pawmart/internal/payments"
	mock_payments "pawmart/internal/payments/mocks"
	mock_repository "pawmart/internal/repository/mocks"
	pawmart_errors "pawmart/pkg/errors"
)

func checkoutEvent(t *testing.T, eventID string, orderID uuid.UUID) ([]byte, payments.Event) {
	t.Helper()
	obj, err := json.Marshal(map[string]any{
		"id":             "cs_test_1",
		"payment_intent": "pi_test_1",
		"metadata":       map[string]string{"order_id": orderID.String()},
	})
	if err != nil {
		t.Fatal(err)
	}
	return []byte("payload"), payments.Event{ID: eventID, Type: "checkout.session.completed", Object: obj}
}

func orderFixture(orderID, userID uuid.UUID, petIDs ...uuid.UUID) order.Order {
	o := order.Order{ID: orderID, UserID: userID, Status: order.StatusPending, PaymentStatus: order.PaymentPending}
	for _, id := range petIDs {
		o.Items = append(o.Items, order.OrderItem{PetID: id, OrderID: orderID})
	}
	return o
}

func TestHandleEvent(t *testing.T) {
	orderID := uuid.New()
	userID := uuid.New()
	petID := uuid.New()

	t.Run("rejects a bad signature before touching the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		gateway.EXPECT().VerifyWebhookSignature([]byte("payload"), "t=1,v1=bad").
			Return(payments.Event{}, fmt.Errorf("%w: bad digest", pawmart_errors.ErrSignatureInvalid))

		svc := NewWebhookService(stubTxRunner{err: errors.New("must not run")}, nil, nil, nil, gateway, nil, nil)
		err := svc.HandleEvent(context.Background(), []byte("payload"), "t=1,v1=bad")
		if !errors.Is(err, pawmart_errors.ErrSignatureInvalid) {
			t.Fatalf("err = %v, want ErrSignatureInvalid", err)
		}
	})

	t.Run("checkout completion marks the order paid and the pets sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		payload, ev := checkoutEvent(t, "evt_1", orderID)
		gateway.EXPECT().VerifyWebhookSignature(payload, "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		orders.EXPECT().GetByID(gomock.Any(), gomock.Any(), orderID).Return(orderFixture(orderID, userID, petID), nil)
		orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), orderID, "pi_test_1", gomock.Any()).Return(nil)
		pets.EXPECT().MarkSold(gomock.Any(), gomock.Any(), petID, userID).Return(nil)

		svc := NewWebhookService(stubTxRunner{}, orders, pets, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), payload, "sig"); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	})

	t.Run("redelivered event is reprocessed to the same state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		payload, ev := checkoutEvent(t, "evt_1", orderID)
		svc := NewWebhookService(stubTxRunner{}, orders, pets, logs, gateway, nil, nil)

		// first delivery
		gateway.EXPECT().VerifyWebhookSignature(payload, "sig").Return(ev, nil).Times(2)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		// duplicate delivery: the log row already exists but the handler runs again
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		orders.EXPECT().GetByID(gomock.Any(), gomock.Any(), orderID).Return(orderFixture(orderID, userID, petID), nil).Times(2)
		orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), orderID, "pi_test_1", gomock.Any()).Return(nil).Times(2)
		pets.EXPECT().MarkSold(gomock.Any(), gomock.Any(), petID, userID).Return(nil).Times(2)

		if err := svc.HandleEvent(context.Background(), payload, "sig"); err != nil {
			t.Fatalf("first delivery: %v", err)
		}
		if err := svc.HandleEvent(context.Background(), payload, "sig"); err != nil {
			t.Fatalf("redelivery: %v", err)
		}
	})

	t.Run("unknown order is acknowledged, not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		payload, ev := checkoutEvent(t, "evt_2", orderID)
		gateway.EXPECT().VerifyWebhookSignature(payload, "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		orders.EXPECT().GetByID(gomock.Any(), gomock.Any(), orderID).Return(order.Order{}, pawmart_errors.ErrNotFound)

		svc := NewWebhookService(stubTxRunner{}, orders, nil, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), payload, "sig"); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	})

	t.Run("missing order_id metadata is acknowledged, not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		ev := payments.Event{ID: "evt_3", Type: "checkout.session.completed", Object: json.RawMessage(`{"id":"cs_x","metadata":{}}`)}
		gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		svc := NewWebhookService(stubTxRunner{}, nil, nil, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), []byte("x"), "sig"); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	})

	t.Run("payment failure cancels the order and releases the pets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		ev := payments.Event{ID: "evt_4", Type: "payment_intent.payment_failed", Object: json.RawMessage(`{"id":"pi_test_1"}`)}
		gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), gomock.Any(), "pi_test_1").Return(orderFixture(orderID, userID, petID), nil)
		orders.EXPECT().MarkPaymentFailed(gomock.Any(), gomock.Any(), orderID).Return(nil)
		pets.EXPECT().Release(gomock.Any(), gomock.Any(), petID).Return(nil)

		svc := NewWebhookService(stubTxRunner{}, orders, pets, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), []byte("x"), "sig"); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	})

	t.Run("refund releases the pets and marks the order refunded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		ev := payments.Event{ID: "evt_5", Type: "charge.refunded", Object: json.RawMessage(`{"id":"ch_1","payment_intent":"pi_test_1"}`)}
		gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), gomock.Any(), "pi_test_1").Return(orderFixture(orderID, userID, petID), nil)
		orders.EXPECT().MarkRefunded(gomock.Any(), gomock.Any(), orderID, gomock.Any()).Return(nil)
		pets.EXPECT().Release(gomock.Any(), gomock.Any(), petID).Return(nil)

		svc := NewWebhookService(stubTxRunner{}, orders, pets, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), []byte("x"), "sig"); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	})

	t.Run("unhandled event types are logged and acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		ev := payments.Event{ID: "evt_6", Type: "customer.created", Object: json.RawMessage(`{}`)}
		gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		svc := NewWebhookService(stubTxRunner{}, nil, nil, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), []byte("x"), "sig"); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	})

	t.Run("handler failure surfaces so the gateway retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		logs := mock_repository.NewMockWebhookLogRepository(ctrl)

		payload, ev := checkoutEvent(t, "evt_7", orderID)
		gateway.EXPECT().VerifyWebhookSignature(payload, "sig").Return(ev, nil)
		logs.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		orders.EXPECT().GetByID(gomock.Any(), gomock.Any(), orderID).Return(order.Order{}, errors.New("connection reset"))

		svc := NewWebhookService(stubTxRunner{}, orders, nil, logs, gateway, nil, nil)
		if err := svc.HandleEvent(context.Background(), payload, "sig"); err == nil {
			t.Fatal("expected error")
		}
	})
}
