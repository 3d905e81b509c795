package response

import (
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
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

func FromReviewView(v *queries.ReviewView) ReviewResponse {
	return ReviewResponse{
		ID:        v.ID,
		BookingID: v.BookingID,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		UserID:    v.UserID,
		UserName:  v.UserName,
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
	}
}

func FromReviewViews(views []*queries.ReviewView) []ReviewResponse {
	result := make([]ReviewResponse, len(views))
	for i, v := range views {
		result[i] = FromReviewView(v)
	}
	return result
}

type CreateReviewResponse struct {
	ReviewID uuid.UUID `json:"review_id"`
}
