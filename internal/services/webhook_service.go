package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/domain/order"
	"pawmart/internal/domain/webhook"
	"pawmart/internal/payments"
	"pawmart/internal/redis"
	"pawmart/internal/repository"
	pawmart_errors "pawmart/pkg/errors"
	"pawmart/pkg/logger"
)

// WebhookService turns at-least-once, possibly reordered gateway deliveries
// into idempotent state transitions. Every handler assigns absolute target
// state, so replaying an event is harmless and whichever event applies last
// defines the final state.
type WebhookService struct {
	tx      repository.TxRunner
	orders  repository.OrderRepository
	pets    repository.PetRepository
	logs    repository.WebhookLogRepository
	gateway payments.Gateway
	cache   *redis.CacheStore
	logger  *logger.Logger
}

func NewWebhookService(
	tx repository.TxRunner,
	orders repository.OrderRepository,
	pets repository.PetRepository,
	logs repository.WebhookLogRepository,
	gateway payments.Gateway,
	cache *redis.CacheStore,
	l *logger.Logger,
) *WebhookService {
	return &WebhookService{
		tx:      tx,
		orders:  orders,
		pets:    pets,
		logs:    logs,
		gateway: gateway,
		cache:   cache,
		logger:  l,
	}
}

// HandleEvent verifies, deduplicates and applies one gateway notification.
// Signature failure returns before any transaction opens; a handler failure
// rolls back everything including the idempotency log row, so the gateway's
// retry reprocesses the event from scratch.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.gateway.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return err
	}

	var touched []uuid.UUID
	err = s.tx.InTx(ctx, func(tx repository.DBTX) error {
		inserted, err := s.logs.InsertIfAbsent(ctx, tx, &webhook.EventLog{
			EventID:   ev.ID,
			EventType: ev.Type,
			Payload:   ev.Object,
		})
		if err != nil {
			return err
		}
		if !inserted {
			// Already logged, but the earlier delivery may have failed after
			// the insert. Handlers are absolute-state setters, so re-running
			// them is safe and restores accuracy.
			s.logf("webhook event %s (%s) redelivered, reprocessing", ev.ID, ev.Type)
		}

		switch ev.Type {
		case webhook.TypeCheckoutCompleted:
			touched, err = s.handleCheckoutCompleted(ctx, tx, ev)
		case webhook.TypePaymentSucceeded:
			// Informational only; reserved for future reconciliation.
		case webhook.TypePaymentFailed:
			touched, err = s.handlePaymentFailed(ctx, tx, ev)
		case webhook.TypeChargeRefunded:
			touched, err = s.handleChargeRefunded(ctx, tx, ev)
		default:
			s.logf("webhook event %s: unhandled type %s", ev.ID, ev.Type)
		}
		return err
	})
	if err != nil {
		return err
	}

	s.invalidatePets(ctx, touched)
	return nil
}

// checkoutSessionObject is the slice of a Stripe checkout session this
// handler needs.
type checkoutSessionObject struct {
	ID            string            `json:"id"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

func (s *WebhookService) handleCheckoutCompleted(ctx context.Context, tx repository.DBTX, ev payments.Event) ([]uuid.UUID, error) {
	var sess checkoutSessionObject
	if err := json.Unmarshal(ev.Object, &sess); err != nil {
		return nil, err
	}

	orderID, err := uuid.Parse(sess.Metadata["order_id"])
	if err != nil {
		s.logf("webhook event %s: session %s has no usable order_id metadata", ev.ID, sess.ID)
		return nil, nil
	}

	o, err := s.orders.GetByID(ctx, tx, orderID)
	if errors.Is(err, pawmart_errors.ErrNotFound) {
		// Not our order (or deleted); acknowledge so the gateway stops
		// retrying an event we can never apply.
		s.logf("webhook event %s: order %s not found, skipping", ev.ID, orderID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.orders.MarkPaid(ctx, tx, o.ID, sess.PaymentIntent, time.Now()); err != nil {
		return nil, err
	}
	for _, it := range o.Items {
		if err := s.pets.MarkSold(ctx, tx, it.PetID, o.UserID); err != nil {
			return nil, err
		}
	}
	s.logf("order %s paid, %d pet(s) sold to %s", o.ID, len(o.Items), o.UserID)
	return petIDs(o.Items), nil
}

// paymentIntentObject covers both payment_intent.* events (ID) and
// charge.refunded (PaymentIntent reference).
type paymentIntentObject struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
}

func (s *WebhookService) handlePaymentFailed(ctx context.Context, tx repository.DBTX, ev payments.Event) ([]uuid.UUID, error) {
	var intent paymentIntentObject
	if err := json.Unmarshal(ev.Object, &intent); err != nil {
		return nil, err
	}

	o, err := s.orders.GetByPaymentIntentID(ctx, tx, intent.ID)
	if errors.Is(err, pawmart_errors.ErrNotFound) {
		s.logf("webhook event %s: no order for payment intent %s", ev.ID, intent.ID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.orders.MarkPaymentFailed(ctx, tx, o.ID); err != nil {
		return nil, err
	}
	if err := s.releasePets(ctx, tx, o.Items); err != nil {
		return nil, err
	}
	s.logf("order %s cancelled after payment failure, %d pet(s) released", o.ID, len(o.Items))
	return petIDs(o.Items), nil
}

func (s *WebhookService) handleChargeRefunded(ctx context.Context, tx repository.DBTX, ev payments.Event) ([]uuid.UUID, error) {
	var charge paymentIntentObject
	if err := json.Unmarshal(ev.Object, &charge); err != nil {
		return nil, err
	}

	o, err := s.orders.GetByPaymentIntentID(ctx, tx, charge.PaymentIntent)
	if errors.Is(err, pawmart_errors.ErrNotFound) {
		s.logf("webhook event %s: no order for refunded payment intent %s", ev.ID, charge.PaymentIntent)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.orders.MarkRefunded(ctx, tx, o.ID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.releasePets(ctx, tx, o.Items); err != nil {
		return nil, err
	}
	s.logf("order %s refunded, %d pet(s) released", o.ID, len(o.Items))
	return petIDs(o.Items), nil
}

func (s *WebhookService) releasePets(ctx context.Context, tx repository.DBTX, items []order.OrderItem) error {
	for _, it := range items {
		if err := s.pets.Release(ctx, tx, it.PetID); err != nil {
			return err
		}
	}
	return nil
}

func (s *WebhookService) logf(template string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Infof(template, args...)
	}
}

func (s *WebhookService) invalidatePets(ctx context.Context, ids []uuid.UUID) {
	if s.cache == nil || len(ids) == 0 {
		return
	}
	if err := s.cache.InvalidatePets(ctx, ids); err != nil && s.logger != nil {
		s.logger.Warnf("pet cache invalidation failed: %v", err)
	}
}
