package adoption

import (
	"time"

	"github.com/google/uuid"
)

// Status is the decision state of an adoption application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// CascadeRejectionNote is written on every pending application that loses
// the race when a competing application is approved.
const CascadeRejectionNote = "pet already adopted by another user"

// Application is a non-exclusive claim on a pet flagged for adoption. Unlike
// the order path it does not reserve the pet; exclusivity is established only
// at decision time.
type Application struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	PetID      uuid.UUID  `json:"pet_id"`
	ShelterID  *uuid.UUID `json:"shelter_id,omitempty"`
	Message    string     `json:"message,omitempty"`
	AdminNotes string     `json:"admin_notes,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

// Active reports whether s counts against the one-active-claim-per-(user,pet)
// rule.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// Decidable reports whether s is a status an admin may assign in a decision.
func Decidable(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}
