//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/Harishsingh-01/roomeaseserver/internal/domain/booking"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	UserID     uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		UserID:     uuid.New(),
		RoomID:     uuid.New(),
		CheckIn:    now.AddDate(0, 0, 7),
		CheckOut:   now.AddDate(0, 0, 10),
		TotalPrice: 360,
		Status:     dombooking.StatusBooked.String(),
		CreatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Clone deep-copies the builder so tests can derive variants (an overlapping
// stay, the same stay by another user) from one baseline.
func (b *BookingBuilder) Clone() *BookingBuilder {
	var c BookingBuilder
	if err := copier.Copy(&c, b); err != nil {
		panic(err)
	}
	return &c
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.RoomID, stay, b.TotalPrice, b.CreatedAt)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         uuid.New(),
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		CheckIn:    truncateToDate(b.CheckIn),
		CheckOut:   truncateToDate(b.CheckOut),
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithTotalPrice(price float64) *BookingBuilder {
	b.TotalPrice = price
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled.String()
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = dombooking.StatusCompleted.String()
	return b
}
