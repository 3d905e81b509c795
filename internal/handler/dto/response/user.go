package response

import (
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BookingCount int64     `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) UserResponse {
	return UserResponse{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Role:         v.Role,
		BookingCount: v.BookingCount,
		CreatedAt:    v.CreatedAt,
	}
}

func FromUserViews(views []*queries.UserView) []UserResponse {
	result := make([]UserResponse, len(views))
	for i, v := range views {
		result[i] = FromUserView(v)
	}
	return result
}

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContactViews(views []*queries.ContactView) []ContactResponse {
	result := make([]ContactResponse, len(views))
	for i, v := range views {
		result[i] = ContactResponse{
			ID:        v.ID,
			Name:      v.Name,
			Email:     v.Email,
			Message:   v.Message,
			CreatedAt: v.CreatedAt,
		}
	}
	return result
}
