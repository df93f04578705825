package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/domain/adoption"
	pawmart_errors "pawmart/pkg/errors"
)

type adoptionRepository struct {
	db DBTX
}

func NewAdoptionRepository(db DBTX) AdoptionRepository {
	return &adoptionRepository{db: db}
}

func (r *adoptionRepository) exec(tx DBTX) DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}

const applicationColumns = `id, user_id, pet_id, shelter_id, message, admin_notes, status, created_at, updated_at, decided_at`

func scanApplication(row interface{ Scan(dest ...interface{}) error }) (adoption.Application, error) {
	var a adoption.Application
	var shelterID uuid.NullUUID
	var message, notes sql.NullString
	var decidedAt sql.NullTime
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.PetID,
		&shelterID,
		&message,
		&notes,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&decidedAt,
	)
	if err != nil {
		return adoption.Application{}, err
	}
	if shelterID.Valid {
		id := shelterID.UUID
		a.ShelterID = &id
	}
	a.Message = message.String
	a.AdminNotes = notes.String
	if decidedAt.Valid {
		t := decidedAt.Time
		a.DecidedAt = &t
	}
	return a, nil
}

func (r *adoptionRepository) Create(ctx context.Context, tx DBTX, a *adoption.Application) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = adoption.StatusPending
	}
	_, err := r.exec(tx).ExecContext(ctx, `
        INSERT INTO adoption_applications (id, user_id, pet_id, shelter_id, message, admin_notes, status, created_at, updated_at, decided_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `,
		a.ID,
		a.UserID,
		a.PetID,
		nullUUID(a.ShelterID),
		nullString(a.Message),
		nullString(a.AdminNotes),
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
		a.DecidedAt,
	)
	// The partial unique index on (user_id, pet_id) for active applications
	// is the DB-level duplicate-claim guard; surface it as a conflict.
	if isUniqueViolation(err) {
		return pawmart_errors.ErrAlreadyExists
	}
	return err
}

func (r *adoptionRepository) GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (adoption.Application, error) {
	row := r.exec(tx).QueryRowContext(ctx, `
        SELECT `+applicationColumns+` FROM adoption_applications WHERE id = $1
    `, id)
	a, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return adoption.Application{}, pawmart_errors.ErrNotFound
	}
	return a, err
}

func (r *adoptionRepository) HasActiveForUserAndPet(ctx context.Context, tx DBTX, userID, petID uuid.UUID) (bool, error) {
	var count int64
	err := r.exec(tx).QueryRowContext(ctx, `
        SELECT COUNT(1) FROM adoption_applications
        WHERE user_id = $1 AND pet_id = $2 AND status IN ($3, $4)
    `, userID, petID, adoption.StatusPending, adoption.StatusApproved).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *adoptionRepository) SetDecision(ctx context.Context, tx DBTX, id uuid.UUID, status adoption.Status, notes string, decidedAt time.Time) (bool, error) {
	// Only pending applications are decidable; an application that lost a
	// cascade in a concurrent transaction stays lost.
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE adoption_applications
        SET status = $1, admin_notes = $2, decided_at = $3, updated_at = $4
        WHERE id = $5 AND status = $6
    `, status, nullString(notes), decidedAt, time.Now(), id, adoption.StatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *adoptionRepository) RejectOtherPending(ctx context.Context, tx DBTX, petID, excludeID uuid.UUID, note string, decidedAt time.Time) (int64, error) {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE adoption_applications
        SET status = $1, admin_notes = $2, decided_at = $3, updated_at = $4
        WHERE pet_id = $5 AND id <> $6 AND status = $7
    `, adoption.StatusRejected, note, decidedAt, time.Now(), petID, excludeID, adoption.StatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *adoptionRepository) CountPendingForPet(ctx context.Context, tx DBTX, petID, excludeID uuid.UUID) (int64, error) {
	var count int64
	err := r.exec(tx).QueryRowContext(ctx, `
        SELECT COUNT(1) FROM adoption_applications
        WHERE pet_id = $1 AND id <> $2 AND status = $3
    `, petID, excludeID, adoption.StatusPending).Scan(&count)
	return count, err
}
