package services

import (
	"context"

	"github.com/google/uuid"

	"pawmart/internal/domain/pet"
	"pawmart/internal/redis"
	"pawmart/internal/repository"
	"pawmart/pkg/logger"
)

// PetService serves single-listing reads with a cache-aside Redis layer.
// Catalog management (creating and editing listings) lives elsewhere.
type PetService struct {
	pets   repository.PetRepository
	cache  *redis.CacheStore
	logger *logger.Logger
}

func NewPetService(pets repository.PetRepository, cache *redis.CacheStore, l *logger.Logger) *PetService {
	return &PetService{pets: pets, cache: cache, logger: l}
}

func (s *PetService) GetPet(ctx context.Context, id uuid.UUID) (pet.Pet, error) {
	if s.cache != nil {
		cached, err := s.cache.GetPet(ctx, id)
		if err != nil && s.logger != nil {
			s.logger.Warnf("pet cache read failed: %v", err)
		}
		if cached != nil {
			return *cached, nil
		}
	}

	p, err := s.pets.GetByID(ctx, nil, id)
	if err != nil {
		return pet.Pet{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetPet(ctx, p); err != nil && s.logger != nil {
			s.logger.Warnf("pet cache write failed: %v", err)
		}
	}
	return p, nil
}
