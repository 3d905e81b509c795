package repository

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsRepository struct {
	db db.DBTX
}

func NewRatingStatsRepository(dbtx db.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{db: dbtx}
}

// RecalcRoomRating rederives average_rating and review_count from the
// reviews table. Runs in the same transaction as the review write so the
// projection never drifts.
func (r *RatingStatsRepository) RecalcRoomRating(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error {
	const query = `
		UPDATE rooms SET
			average_rating = COALESCE(stats.avg_rating, 0),
			review_count   = stats.cnt
		FROM (
			SELECT ROUND(AVG(rating)::numeric, 1) AS avg_rating, COUNT(*) AS cnt
			FROM reviews
			WHERE room_id = $1
		) AS stats
		WHERE rooms.id = $1`

	tag, err := tx.Exec(ctx, query, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalculate room rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
