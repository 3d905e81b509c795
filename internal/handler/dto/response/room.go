package response

import (
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
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

func FromRoomView(v *queries.RoomView) RoomResponse {
	return RoomResponse{
		ID:               v.ID,
		Name:             v.Name,
		Type:             v.Type,
		Price:            v.Price,
		Amenities:        v.Amenities,
		Description:      v.Description,
		Available:        v.Available,
		MainImage:        v.MainImage,
		AdditionalImages: v.AdditionalImages,
		AverageRating:    v.AverageRating,
		ReviewCount:      v.ReviewCount,
		CreatedAt:        v.CreatedAt,
	}
}

type RoomListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Price         float64   `json:"price"`
	Available     bool      `json:"available"`
	MainImage     string    `json:"main_image"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int32     `json:"review_count"`
}

func FromRoomListItems(items []*queries.RoomListItem) []RoomListItemResponse {
	result := make([]RoomListItemResponse, len(items))
	for i, item := range items {
		result[i] = RoomListItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			Type:          item.Type,
			Price:         item.Price,
			Available:     item.Available,
			MainImage:     item.MainImage,
			AverageRating: item.AverageRating,
			ReviewCount:   item.ReviewCount,
		}
	}
	return result
}

type RoomStatisticsResponse struct {
	TotalRooms       int64   `json:"total_rooms"`
	AvailableRooms   int64   `json:"available_rooms"`
	BookedRooms      int64   `json:"booked_rooms"`
	AverageRating    float64 `json:"average_rating"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

func FromRoomStatistics(s *queries.RoomStatistics) RoomStatisticsResponse {
	return RoomStatisticsResponse{
		TotalRooms:       s.TotalRooms,
		AvailableRooms:   s.AvailableRooms,
		BookedRooms:      s.BookedRooms,
		AverageRating:    s.AverageRating,
		SatisfactionRate: s.SatisfactionRate,
	}
}

type CreateRoomResponse struct {
	RoomID uuid.UUID `json:"room_id"`
}
