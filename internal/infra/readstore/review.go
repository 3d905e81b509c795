package readstore

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewQuery = `
	SELECT v.id, v.booking_id, v.room_id, r.name, v.user_id, u.name,
	       v.rating, v.comment, v.created_at
	FROM reviews v
	JOIN rooms r ON r.id = v.room_id
	JOIN users u ON u.id = v.user_id`

func scanReviewView(row pgx.Row) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := row.Scan(
		&v.ID, &v.BookingID, &v.RoomID, &v.RoomName, &v.UserID, &v.UserName,
		&v.Rating, &v.Comment, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	v, err := scanReviewView(r.db.QueryRow(ctx, reviewViewQuery+` WHERE v.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}

	return v, nil
}

func (r *ReviewReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*queries.ReviewView, error) {
	v, err := scanReviewView(r.db.QueryRow(ctx, reviewViewQuery+` WHERE v.booking_id = $1`, bookingID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found for booking", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by booking ID", err)
	}

	return v, nil
}

func (r *ReviewReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReviewView, error) {
	return r.collect(ctx, reviewViewQuery+` WHERE v.room_id = $1 ORDER BY v.created_at DESC`, roomID)
}

func (r *ReviewReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReviewView, error) {
	return r.collect(ctx, reviewViewQuery+` WHERE v.user_id = $1 ORDER BY v.created_at DESC`, userID)
}

func (r *ReviewReadStore) collect(ctx context.Context, query string, args ...any) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		v, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}

	return result, nil
}
