package repository

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/user"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.Role().String()).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

// AppendBookingID maintains the denormalized booking list on the user row.
// Best-effort cache only; bookings remains the source of truth.
func (r *UserRepository) AppendBookingID(ctx context.Context, tx db.DBTX, userID, bookingID uuid.UUID) error {
	const query = `
		UPDATE users
		SET booking_ids = array_append(booking_ids, $2)
		WHERE id = $1 AND NOT (booking_ids @> ARRAY[$2]::uuid[])`

	if _, err := tx.Exec(ctx, query, userID, bookingID); err != nil {
		return infra.WrapRepoErr("failed to append booking ID", err)
	}

	return nil
}

func (r *UserRepository) RemoveBookingID(ctx context.Context, tx db.DBTX, userID, bookingID uuid.UUID) error {
	const query = `UPDATE users SET booking_ids = array_remove(booking_ids, $2) WHERE id = $1`

	if _, err := tx.Exec(ctx, query, userID, bookingID); err != nil {
		return infra.WrapRepoErr("failed to remove booking ID", err)
	}

	return nil
}
