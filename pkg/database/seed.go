package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedResult summarizes what development seeding created.
type SeedResult struct {
	AdminID uuid.UUID
	UserIDs []uuid.UUID
	PetIDs  []uuid.UUID
}

// SeedAdmin ensures an admin account exists and returns its id.
func SeedAdmin(email string) (uuid.UUID, error) {
	id := uuid.New()
	err := DB.QueryRow(`
        INSERT INTO users (id, email, username, role, created_at)
        VALUES ($1, $2, $3, 'admin', now())
        ON CONFLICT (email) DO UPDATE SET role = 'admin'
        RETURNING id
    `, id, email, "admin").Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed admin: %w", err)
	}
	return id, nil
}

// SeedDevelopment creates a couple of buyers and sample listings, some of
// them flagged for adoption.
func SeedDevelopment() (*SeedResult, error) {
	adminID, err := SeedAdmin("admin@pawmart.local")
	if err != nil {
		return nil, err
	}
	result := &SeedResult{AdminID: adminID}

	for i := 1; i <= 3; i++ {
		id := uuid.New()
		email := fmt.Sprintf("buyer%d@pawmart.local", i)
		err := DB.QueryRow(`
            INSERT INTO users (id, email, username, role, created_at)
            VALUES ($1, $2, $3, 'user', now())
            ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
            RETURNING id
        `, id, email, fmt.Sprintf("buyer%d", i)).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", email, err)
		}
		result.UserIDs = append(result.UserIDs, id)
	}

	pets := []struct {
		name        string
		species     string
		breed       string
		ageMonths   int
		price       string
		forAdoption bool
	}{
		{"Biscuit", "dog", "beagle", 18, "350.00", false},
		{"Clementine", "cat", "tabby", 10, "120.00", false},
		{"Pepper", "dog", "border collie", 30, "0.00", true},
		{"Mochi", "rabbit", "holland lop", 7, "80.00", false},
		{"Atlas", "cat", "maine coon", 26, "0.00", true},
	}
	for _, p := range pets {
		id := uuid.New()
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return nil, err
		}
		_, err = DB.Exec(`
            INSERT INTO pets (id, name, species, breed, age_months, price, status, is_for_adoption, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, 'available', $7, now(), now())
        `, id, p.name, p.species, p.breed, p.ageMonths, price, p.forAdoption)
		if err != nil {
			return nil, fmt.Errorf("failed to seed pet %s: %w", p.name, err)
		}
		result.PetIDs = append(result.PetIDs, id)
	}

	return result, nil
}
