package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTotalPrice  = errors.New("total price must be positive")
	ErrCancelAfterCheckIn = errors.New("cannot cancel on or after check-in date")
	ErrNotYetCheckedOut   = errors.New("cannot complete before check-out date")
	ErrAlreadyTerminal    = errors.New("booking is already cancelled or completed")
)

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	roomID     uuid.UUID
	stay       StayPeriod
	totalPrice float64
	status     Status
	createdAt  time.Time
}

func NewBooking(userID, roomID uuid.UUID, stay StayPeriod, totalPrice float64, now time.Time) (*Booking, error) {
	if totalPrice <= 0 {
		return nil, ErrInvalidTotalPrice
	}
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		roomID:     roomID,
		stay:       stay,
		totalPrice: totalPrice,
		status:     StatusBooked,
		createdAt:  now,
	}, nil
}

func ReconstructBooking(
	id, userID, roomID uuid.UUID,
	stay StayPeriod,
	totalPrice float64,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		roomID:     roomID,
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) Stay() StayPeriod     { return b.stay }
func (b *Booking) TotalPrice() float64  { return b.totalPrice }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}

// Cancel transitions booked → cancelled and returns the refund amount.
// Cancellation is only allowed strictly before the check-in day.
func (b *Booking) Cancel(today time.Time) (float64, error) {
	if b.status.IsTerminal() {
		return 0, ErrAlreadyTerminal
	}
	if b.stay.Contains(today) || b.stay.ExpiredAsOf(today) {
		return 0, ErrCancelAfterCheckIn
	}
	b.status = StatusCancelled
	return b.totalPrice, nil
}

// Complete transitions booked → completed once the stay has expired.
func (b *Booking) Complete(today time.Time) error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !b.stay.ExpiredAsOf(today) {
		return ErrNotYetCheckedOut
	}
	b.status = StatusCompleted
	return nil
}
