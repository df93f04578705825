package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"pawmart/internal/domain/user"
	pawmart_errors "pawmart/pkg/errors"
)

// Accounts are managed outside this service; the fulfillment core only reads
// them (buyer email for checkout, admin role for decisions).
type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) exec(tx DBTX) DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userRepository) GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.exec(tx).QueryRowContext(ctx, `
        SELECT id, email, username, role, created_at FROM users WHERE id = $1
    `, id).Scan(&u.ID, &u.Email, &u.Username, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, pawmart_errors.ErrNotFound
	}
	return u, err
}
