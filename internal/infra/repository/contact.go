package repository

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactRepository struct {
	db db.DBTX
}

func NewContactRepository(dbtx db.DBTX) *ContactRepository {
	return &ContactRepository{db: dbtx}
}

func (r *ContactRepository) Create(ctx context.Context, tx db.DBTX, c shared.ContactMessage) (uuid.UUID, error) {
	const query = `
		INSERT INTO contacts (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, uuid.New(), c.Name, c.Email, c.Message).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create contact message", err)
	}

	return id, nil
}
