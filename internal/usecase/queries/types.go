package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Read models (DTO for read side)
type RoomView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Price            float64   `json:"price"`
	Amenities        []string  `json:"amenities"`
	Description      string    `json:"description"`
	Available        bool      `json:"available"`
	MainImage        string    `json:"main_image"`
	AdditionalImages []string  `json:"additional_images"`
	AverageRating    float64   `json:"average_rating"`
	ReviewCount      int32     `json:"review_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type RoomListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Price         float64   `json:"price"`
	Available     bool      `json:"available"`
	MainImage     string    `json:"main_image"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int32     `json:"review_count"`
}

type RoomStatistics struct {
	TotalRooms       int64   `json:"total_rooms"`
	AvailableRooms   int64   `json:"available_rooms"`
	BookedRooms      int64   `json:"booked_rooms"`
	AverageRating    float64 `json:"average_rating"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

type RoomRatingStats struct {
	RoomID        uuid.UUID `json:"room_id"`
	TotalReviews  int64     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int64     `json:"rating_1_count"`
	Rating2Count  int64     `json:"rating_2_count"`
	Rating3Count  int64     `json:"rating_3_count"`
	Rating4Count  int64     `json:"rating_4_count"`
	Rating5Count  int64     `json:"rating_5_count"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	RoomImage  string    `json:"room_image"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	RoomID    uuid.UUID `json:"room_id"`
	RoomName  string    `json:"room_name"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type UserView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BookingCount int64     `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContactView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
