package readstore

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `
	id, name, room_type, price, amenities, description, available,
	main_image, additional_images, average_rating, review_count, created_at`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query := `SELECT ` + roomViewColumns + ` FROM rooms WHERE id = $1`

	var v queries.RoomView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Type, &v.Price, &v.Amenities, &v.Description, &v.Available,
		&v.MainImage, &v.AdditionalImages, &v.AverageRating, &v.ReviewCount, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return &v, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomListItem, error) {
	const query = `
		SELECT id, name, room_type, price, available, main_image, average_rating, review_count
		FROM rooms
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomListItem
	for rows.Next() {
		var item queries.RoomListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Price, &item.Available,
			&item.MainImage, &item.AverageRating, &item.ReviewCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}

func (r *RoomReadStore) FindFeatured(ctx context.Context, limit int32) ([]*queries.RoomListItem, error) {
	const query = `
		SELECT id, name, room_type, price, available, main_image, average_rating, review_count
		FROM rooms
		ORDER BY average_rating DESC, review_count DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomListItem
	for rows.Next() {
		var item queries.RoomListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Price, &item.Available,
			&item.MainImage, &item.AverageRating, &item.ReviewCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}

func (r *RoomReadStore) Statistics(ctx context.Context) (*queries.RoomStatistics, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM rooms)                               AS total_rooms,
			(SELECT COUNT(*) FROM rooms WHERE available)               AS available_rooms,
			(SELECT COUNT(*) FROM rooms WHERE NOT available)           AS booked_rooms,
			COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews), 0) AS average_rating,
			COALESCE((
				SELECT ROUND(100.0 * COUNT(*) FILTER (WHERE rating >= 4) / NULLIF(COUNT(*), 0), 1)
				FROM reviews
			), 0) AS satisfaction_rate`

	var s queries.RoomStatistics
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalRooms, &s.AvailableRooms, &s.BookedRooms, &s.AverageRating, &s.SatisfactionRate,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute room statistics", err)
	}

	return &s, nil
}

func (r *RoomReadStore) RatingStats(ctx context.Context, roomID uuid.UUID) (*queries.RoomRatingStats, error) {
	const query = `
		SELECT
			COUNT(*)                                          AS total_reviews,
			COALESCE(ROUND(AVG(rating)::numeric, 1), 0)       AS average_rating,
			COUNT(*) FILTER (WHERE rating = 1)                AS rating_1,
			COUNT(*) FILTER (WHERE rating = 2)                AS rating_2,
			COUNT(*) FILTER (WHERE rating = 3)                AS rating_3,
			COUNT(*) FILTER (WHERE rating = 4)                AS rating_4,
			COUNT(*) FILTER (WHERE rating = 5)                AS rating_5
		FROM reviews
		WHERE room_id = $1`

	stats := queries.RoomRatingStats{RoomID: roomID}
	err := r.db.QueryRow(ctx, query, roomID).Scan(
		&stats.TotalReviews, &stats.AverageRating,
		&stats.Rating1Count, &stats.Rating2Count, &stats.Rating3Count,
		&stats.Rating4Count, &stats.Rating5Count,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute rating stats", err)
	}

	return &stats, nil
}
