package readstore

import (
	"context"
	"strings"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, role, cardinality(booking_ids), created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.BookingCount, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	const query = `
		SELECT u.id, u.name, u.email, u.role,
		       (SELECT COUNT(*) FROM bookings b WHERE b.user_id = u.id),
		       u.created_at
		FROM users u
		ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.BookingCount, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}

	return result, nil
}

// FindAuthByEmail returns the credential snapshot used by login and
// command-side ownership checks.
func (r *UserReadStore) FindAuthByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `SELECT id, name, email, password_hash, role FROM users WHERE email = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.PasswordHash, &snap.Role,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &snap, nil
}

func (r *UserReadStore) FindAuthByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `SELECT id, name, email, password_hash, role FROM users WHERE id = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.PasswordHash, &snap.Role,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &snap, nil
}
