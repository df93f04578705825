package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pawmart/internal/domain/pet"
	"pawmart/internal/domain/user"
)

func userFixture(id uuid.UUID) user.User {
	return user.User{ID: id, Email: "buyer@example.com", Username: "buyer", Role: user.RoleUser}
}

func petFixtures(ids ...uuid.UUID) []pet.Pet {
	out := make([]pet.Pet, len(ids))
	for i, id := range ids {
		out[i] = pet.Pet{
			ID:      id,
			Name:    "Biscuit",
			Species: "dog",
			Price:   decimal.RequireFromString("120.00"),
			Status:  pet.StatusAvailable,
		}
	}
	return out
}
