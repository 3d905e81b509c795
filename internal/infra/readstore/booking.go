package readstore

import (
	"context"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewQuery = `
	SELECT b.id, b.user_id, b.room_id, r.name, r.main_image,
	       b.check_in, b.check_out, b.total_price, b.status, b.created_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id`

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.UserID, &v.RoomID, &v.RoomName, &v.RoomImage,
		&v.CheckIn, &v.CheckOut, &v.TotalPrice, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBookingView(r.db.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return v, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return r.collect(ctx, bookingViewQuery+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
}

func (r *BookingReadStore) FindAllActive(ctx context.Context) ([]*queries.BookingView, error) {
	return r.collect(ctx, bookingViewQuery+` WHERE b.status = 'booked' ORDER BY b.check_in`)
}

// FindExpiredActive returns booked stays whose check-out is on or before asOf.
func (r *BookingReadStore) FindExpiredActive(ctx context.Context, asOf time.Time) ([]*queries.BookingView, error) {
	query := bookingViewQuery + ` WHERE b.status = 'booked' AND b.check_out <= $1 ORDER BY b.check_out`
	return r.collect(ctx, query, pgconv.DateOnly(asOf))
}

func (r *BookingReadStore) collect(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}
