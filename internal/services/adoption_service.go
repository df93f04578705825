package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/domain/adoption"
	"pawmart/internal/domain/pet"
	"pawmart/internal/redis"
	"pawmart/internal/repository"
	pawmart_errors "pawmart/pkg/errors"
	"pawmart/pkg/logger"
)

type AdoptionService struct {
	tx     repository.TxRunner
	apps   repository.AdoptionRepository
	pets   repository.PetRepository
	cache  *redis.CacheStore
	logger *logger.Logger
}

func NewAdoptionService(
	tx repository.TxRunner,
	apps repository.AdoptionRepository,
	pets repository.PetRepository,
	cache *redis.CacheStore,
	l *logger.Logger,
) *AdoptionService {
	return &AdoptionService{
		tx:     tx,
		apps:   apps,
		pets:   pets,
		cache:  cache,
		logger: l,
	}
}

// CreateApplication files a non-exclusive claim. Unlike the order path it
// deliberately does not reserve the pet: any number of applications may be
// pending until an admin decides one.
func (s *AdoptionService) CreateApplication(ctx context.Context, userID, petID uuid.UUID, shelterID *uuid.UUID, message string) (adoption.Application, error) {
	if userID == uuid.Nil || petID == uuid.Nil {
		return adoption.Application{}, pawmart_errors.ErrInvalidInput
	}

	app := adoption.Application{
		UserID:    userID,
		PetID:     petID,
		ShelterID: shelterID,
		Message:   message,
		Status:    adoption.StatusPending,
	}

	err := s.tx.InTx(ctx, func(tx repository.DBTX) error {
		p, err := s.pets.GetByID(ctx, tx, petID)
		if err != nil {
			return err
		}
		if p.Status != pet.StatusAvailable {
			return pawmart_errors.ErrNotAvailable
		}
		if !p.IsForAdoption {
			return pawmart_errors.ErrNotForAdoption
		}

		active, err := s.apps.HasActiveForUserAndPet(ctx, tx, userID, petID)
		if err != nil {
			return err
		}
		if active {
			return pawmart_errors.ErrAlreadyExists
		}

		return s.apps.Create(ctx, tx, &app)
	})
	if err != nil {
		return adoption.Application{}, err
	}
	return app, nil
}

// Decide finalizes one application. Approval is the tie-break point: the pet
// is claimed with a guarded update and every competing pending application is
// force-rejected in the same transaction, so a racing second approval either
// fails the guard or finds its application already rejected.
func (s *AdoptionService) Decide(ctx context.Context, applicationID uuid.UUID, newStatus adoption.Status, notes string) (adoption.Application, error) {
	if !adoption.Decidable(newStatus) {
		return adoption.Application{}, pawmart_errors.ErrInvalidInput
	}

	var decided adoption.Application
	now := time.Now()
	err := s.tx.InTx(ctx, func(tx repository.DBTX) error {
		app, err := s.apps.GetByID(ctx, tx, applicationID)
		if err != nil {
			return err
		}

		ok, err := s.apps.SetDecision(ctx, tx, applicationID, newStatus, notes, now)
		if err != nil {
			return err
		}
		if !ok {
			// Already decided, possibly by a cascade from a competing
			// approval that committed first.
			return pawmart_errors.ErrConflict
		}

		switch newStatus {
		case adoption.StatusApproved:
			adopted, err := s.pets.MarkAdopted(ctx, tx, app.PetID, app.UserID)
			if err != nil {
				return err
			}
			if !adopted {
				return pawmart_errors.ErrConflict
			}
			losers, err := s.apps.RejectOtherPending(ctx, tx, app.PetID, applicationID, adoption.CascadeRejectionNote, now)
			if err != nil {
				return err
			}
			if losers > 0 {
				s.logf("application %s approved for pet %s, %d competing application(s) rejected", applicationID, app.PetID, losers)
			}

		case adoption.StatusRejected:
			pending, err := s.apps.CountPendingForPet(ctx, tx, app.PetID, applicationID)
			if err != nil {
				return err
			}
			if pending == 0 {
				// No claim left on the pet; put it back on the market unless
				// another path already finalized it.
				if err := s.pets.RevertUnlessAdopted(ctx, tx, app.PetID); err != nil {
					return err
				}
			}
		}

		decided = app
		decided.Status = newStatus
		decided.AdminNotes = notes
		decided.DecidedAt = &now
		return nil
	})
	if err != nil {
		return adoption.Application{}, err
	}

	s.invalidatePet(ctx, decided.PetID)
	return decided, nil
}

func (s *AdoptionService) GetApplication(ctx context.Context, id uuid.UUID) (adoption.Application, error) {
	return s.apps.GetByID(ctx, nil, id)
}

func (s *AdoptionService) logf(template string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Infof(template, args...)
	}
}

func (s *AdoptionService) invalidatePet(ctx context.Context, petID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePet(ctx, petID); err != nil && s.logger != nil {
		s.logger.Warnf("pet cache invalidation failed: %v", err)
	}
}
