package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/domain/pet"
	pawmart_errors "pawmart/pkg/errors"
)

type petRepository struct {
	db DBTX
}

func NewPetRepository(db DBTX) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) exec(tx DBTX) DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}

const petColumns = `id, name, species, breed, age_months, price, description, photo_url, status, owner_id, is_for_adoption, shelter_id, created_at, updated_at`

func scanPet(row interface{ Scan(dest ...interface{}) error }) (pet.Pet, error) {
	var p pet.Pet
	var breed, description, photoURL sql.NullString
	var ownerID, shelterID uuid.NullUUID
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&breed,
		&p.AgeMonths,
		&p.Price,
		&description,
		&photoURL,
		&p.Status,
		&ownerID,
		&p.IsForAdoption,
		&shelterID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return pet.Pet{}, err
	}
	p.Breed = breed.String
	p.Description = description.String
	p.PhotoURL = photoURL.String
	if ownerID.Valid {
		id := ownerID.UUID
		p.OwnerID = &id
	}
	if shelterID.Valid {
		id := shelterID.UUID
		p.ShelterID = &id
	}
	return p, nil
}

func (r *petRepository) Create(ctx context.Context, tx DBTX, p *pet.Pet) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = pet.StatusAvailable
	}
	_, err := r.exec(tx).ExecContext(ctx, `
        INSERT INTO pets (id, name, species, breed, age_months, price, description, photo_url, status, owner_id, is_for_adoption, shelter_id, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
    `,
		p.ID,
		p.Name,
		p.Species,
		nullString(p.Breed),
		p.AgeMonths,
		p.Price,
		nullString(p.Description),
		nullString(p.PhotoURL),
		p.Status,
		nullUUID(p.OwnerID),
		p.IsForAdoption,
		nullUUID(p.ShelterID),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return pawmart_errors.ErrAlreadyExists
	}
	return err
}

func (r *petRepository) GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (pet.Pet, error) {
	row := r.exec(tx).QueryRowContext(ctx, `
        SELECT `+petColumns+` FROM pets WHERE id = $1
    `, id)
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pet.Pet{}, pawmart_errors.ErrNotFound
	}
	return p, err
}

func (r *petRepository) GetByIDs(ctx context.Context, tx DBTX, ids []uuid.UUID) ([]pet.Pet, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.exec(tx).QueryContext(ctx, `
        SELECT `+petColumns+` FROM pets WHERE id IN (`+buildPlaceholders(1, len(ids))+`)
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pets []pet.Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (r *petRepository) MarkPending(ctx context.Context, tx DBTX, id uuid.UUID) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE pets SET status = $1, updated_at = $2 WHERE id = $3
    `, pet.StatusPending, time.Now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}

func (r *petRepository) MarkSold(ctx context.Context, tx DBTX, id uuid.UUID, ownerID uuid.UUID) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE pets SET status = $1, owner_id = $2, updated_at = $3 WHERE id = $4
    `, pet.StatusSold, ownerID, time.Now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}

func (r *petRepository) Release(ctx context.Context, tx DBTX, id uuid.UUID) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE pets SET status = $1, owner_id = NULL, updated_at = $2 WHERE id = $3
    `, pet.StatusAvailable, time.Now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}

func (r *petRepository) MarkAdopted(ctx context.Context, tx DBTX, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	// Row-scoped guard: a pet that already reached a terminal state through
	// a competing claim must not be reassigned.
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE pets
        SET status = $1, owner_id = $2, is_for_adoption = FALSE, updated_at = $3
        WHERE id = $4 AND status NOT IN ($5, $6)
    `, pet.StatusAdopted, ownerID, time.Now(), id, pet.StatusAdopted, pet.StatusSold)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *petRepository) RevertUnlessAdopted(ctx context.Context, tx DBTX, id uuid.UUID) error {
	_, err := r.exec(tx).ExecContext(ctx, `
        UPDATE pets SET status = $1, owner_id = NULL, updated_at = $2
        WHERE id = $3 AND status <> $4
    `, pet.StatusAvailable, time.Now(), id, pet.StatusAdopted)
	return err
}

func requireAffected(res sql.Result, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
