//go:build unit || e2e

package builder

import (
	"time"

	domreview "github.com/Harishsingh-01/roomeaseserver/internal/domain/review"
	reqdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	RoomID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		BookingID: uuid.New(),
		UserID:    uuid.New(),
		RoomID:    uuid.New(),
		Rating:    5,
		Comment:   "Excellent stay!",
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.BookingID, r.UserID, r.RoomID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:        uuid.New(),
		BookingID: r.BookingID,
		UserID:    r.UserID,
		RoomID:    r.RoomID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRoomID(roomID uuid.UUID) *ReviewBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Poor stay"
	return r
}
