package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type RoomSnapshot struct {
	ID            uuid.UUID
	Name          string
	Price         float64
	Available     bool
	AverageRating float64
	ReviewCount   int32
}

type BookingSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
}

type ReviewSnapshot struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	UserID    uuid.UUID
	RoomID    uuid.UUID
	Rating    int
	Comment   string
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type PaymentRecord struct {
	BookingID     uuid.UUID
	UserID        uuid.UUID
	Amount        float64
	Method        string
	TransactionID string
}

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// RoomPatch carries partial room updates; nil fields are left untouched.
type RoomPatch struct {
	Name             *string
	RoomType         *string
	Price            *float64
	Amenities        []string
	Description      *string
	Available        *bool
	MainImage        *string
	AdditionalImages []string
}
