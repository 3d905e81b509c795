package readstore

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
)

type ContactReadStore struct {
	db db.DBTX
}

func NewContactReadStore(dbtx db.DBTX) *ContactReadStore {
	return &ContactReadStore{db: dbtx}
}

func (r *ContactReadStore) FindAll(ctx context.Context) ([]*queries.ContactView, error) {
	const query = `SELECT id, name, email, message, created_at FROM contacts ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contact messages", err)
	}
	defer rows.Close()

	var result []*queries.ContactView
	for rows.Next() {
		var v queries.ContactView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Message, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contact rows", err)
	}

	return result, nil
}
