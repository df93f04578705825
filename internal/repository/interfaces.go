package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/domain/adoption"
	"pawmart/internal/domain/order"
	"pawmart/internal/domain/pet"
	"pawmart/internal/domain/user"
	"pawmart/internal/domain/webhook"
)

// Repositories take an explicit tx so callers can compose several of them
// inside one transaction. Passing nil falls back to the repository's own
// connection for standalone reads.

type PetRepository interface {
	Create(ctx context.Context, tx DBTX, p *pet.Pet) error
	GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (pet.Pet, error)
	GetByIDs(ctx context.Context, tx DBTX, ids []uuid.UUID) ([]pet.Pet, error)

	// MarkPending reserves a pet for a direct order. The direct-order path
	// does not compare-and-swap against the current status.
	MarkPending(ctx context.Context, tx DBTX, id uuid.UUID) error
	// MarkSold assigns terminal ownership. Absolute state setter: reapplying
	// it with the same owner is a no-op, which is what webhook replay needs.
	MarkSold(ctx context.Context, tx DBTX, id uuid.UUID, ownerID uuid.UUID) error
	// Release puts a pet back on the market and clears the claimant.
	Release(ctx context.Context, tx DBTX, id uuid.UUID) error
	// MarkAdopted is guarded: it fails (false, nil) when the pet already
	// reached a terminal state through a competing claim.
	MarkAdopted(ctx context.Context, tx DBTX, id uuid.UUID, ownerID uuid.UUID) (bool, error)
	// RevertUnlessAdopted releases the pet except when an adoption already
	// finalized it.
	RevertUnlessAdopted(ctx context.Context, tx DBTX, id uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx DBTX, o *order.Order) error
	GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (order.Order, error)
	GetByPaymentIntentID(ctx context.Context, tx DBTX, paymentIntentID string) (order.Order, error)
	GetItems(ctx context.Context, tx DBTX, orderID uuid.UUID) ([]order.OrderItem, error)

	SetStripeSession(ctx context.Context, tx DBTX, orderID uuid.UUID, sessionID string) error
	MarkPaid(ctx context.Context, tx DBTX, orderID uuid.UUID, paymentIntentID string, paidAt time.Time) error
	MarkPaymentFailed(ctx context.Context, tx DBTX, orderID uuid.UUID) error
	MarkRefunded(ctx context.Context, tx DBTX, orderID uuid.UUID, refundedAt time.Time) error
}

type AdoptionRepository interface {
	Create(ctx context.Context, tx DBTX, a *adoption.Application) error
	GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (adoption.Application, error)
	HasActiveForUserAndPet(ctx context.Context, tx DBTX, userID, petID uuid.UUID) (bool, error)

	// SetDecision updates a pending application; returns false when the
	// application was already decided (e.g. cascade-rejected by a competing
	// approval committed first).
	SetDecision(ctx context.Context, tx DBTX, id uuid.UUID, status adoption.Status, notes string, decidedAt time.Time) (bool, error)
	// RejectOtherPending force-rejects every other pending application for
	// the pet and returns how many lost the race.
	RejectOtherPending(ctx context.Context, tx DBTX, petID, excludeID uuid.UUID, note string, decidedAt time.Time) (int64, error)
	CountPendingForPet(ctx context.Context, tx DBTX, petID, excludeID uuid.UUID) (int64, error)
}

type WebhookLogRepository interface {
	// InsertIfAbsent records the event for dedup/audit. A conflict on
	// event_id is silently ignored; the return value reports whether this
	// delivery was the first.
	InsertIfAbsent(ctx context.Context, tx DBTX, log *webhook.EventLog) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (user.User, error)
}
