package repository

import (
	"context"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/booking"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, user_id, room_id, check_in, check_out, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.RoomID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(),
		b.TotalPrice(), b.Status().String(), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		// The no-overlap exclusion constraint is the last line of defense
		// when two transactions pass the overlap check simultaneously.
		if pgconv.IsExclusionViolation(err) || pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking dates conflict", err, infra.KindConflict)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("room or user not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, bookingID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, user_id, room_id, check_in, check_out, total_price, status, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var snap shared.BookingSnapshot
	err := tx.QueryRow(ctx, query, bookingID).Scan(
		&snap.ID, &snap.UserID, &snap.RoomID, &snap.CheckIn, &snap.CheckOut,
		&snap.TotalPrice, &snap.Status, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	return &snap, nil
}

// CountOverlapping counts booked stays intersecting the half-open range
// [checkIn, checkOut). Cancelled and completed bookings never block.
func (r *BookingRepository) CountOverlapping(ctx context.Context, tx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND status = 'booked'
		  AND check_in < $3
		  AND check_out > $2`

	var count int64
	err := tx.QueryRow(ctx, query, roomID, pgconv.DateOnly(checkIn), pgconv.DateOnly(checkOut)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}

	return count, nil
}

func (r *BookingRepository) HasActiveByRoomID(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM bookings WHERE room_id = $1 AND status = 'booked')`

	var exists bool
	if err := tx.QueryRow(ctx, query, roomID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active bookings", err)
	}

	return exists, nil
}

func (r *BookingRepository) DeleteActiveByRoomID(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE room_id = $1 AND status = 'booked'`, roomID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete active bookings", err)
	}

	return tag.RowsAffected(), nil
}

func (r *BookingRepository) ActiveRoomIDsByUserID(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT DISTINCT room_id FROM bookings WHERE user_id = $1 AND status = 'booked'`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active room IDs", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect active room IDs", err)
	}

	return ids, nil
}
