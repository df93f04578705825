package pet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the fulfillment state of a pet listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
	StatusAdopted   Status = "adopted"
	StatusRejected  Status = "rejected"
)

// Pet is a claimable marketplace listing. OwnerID is the claimant: it is
// non-null exactly when the pet reached a terminal state (sold/adopted).
type Pet struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Species       string          `json:"species"`
	Breed         string          `json:"breed,omitempty"`
	AgeMonths     int             `json:"age_months"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
	PhotoURL      string          `json:"photo_url,omitempty"`
	Status        Status          `json:"status"`
	OwnerID       *uuid.UUID      `json:"owner_id,omitempty"`
	IsForAdoption bool            `json:"is_for_adoption"`
	ShelterID     *uuid.UUID      `json:"shelter_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Terminal reports whether s is a final ownership state.
func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusAdopted
}

var transitions = map[Status][]Status{
	// available → sold happens when checkout completion lands after an
	// out-of-order payment failure already released the reservation.
	StatusAvailable: {StatusPending, StatusSold, StatusAdopted, StatusRejected},
	// pending → available covers payment failure and refunds; pending → sold
	// covers checkout completion. pending → pending is the webhook-replay case.
	StatusPending: {StatusPending, StatusAvailable, StatusSold},
	// sold → sold and adopted → adopted absorb redelivered events;
	// sold → available is the refund release.
	StatusSold:     {StatusSold, StatusAvailable},
	StatusAdopted:  {StatusAdopted},
	StatusRejected: {StatusAvailable},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ClaimConsistent checks the ownership invariant for a (status, owner) pair:
// terminal states require a claimant, available forbids one.
func ClaimConsistent(status Status, owner *uuid.UUID) bool {
	if status.Terminal() {
		return owner != nil
	}
	if status == StatusAvailable {
		return owner == nil
	}
	return true
}
