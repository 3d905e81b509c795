package request

import (
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"
)

type CreateRoomRequest struct {
	Name             string   `json:"name" binding:"required"`
	Type             string   `json:"type" binding:"required"`
	Price            float64  `json:"price" binding:"required,gt=0"`
	Amenities        []string `json:"amenities"`
	Description      string   `json:"description"`
	MainImage        string   `json:"main_image" binding:"required"`
	AdditionalImages []string `json:"additional_images" binding:"omitempty,max=3"`
}

type UpdateRoomRequest struct {
	Name             *string  `json:"name"`
	Type             *string  `json:"type"`
	Price            *float64 `json:"price" binding:"omitempty,gt=0"`
	Amenities        []string `json:"amenities"`
	Description      *string  `json:"description"`
	Available        *bool    `json:"available"`
	MainImage        *string  `json:"main_image"`
	AdditionalImages []string `json:"additional_images" binding:"omitempty,max=3"`
}

func (r UpdateRoomRequest) ToPatch() shared.RoomPatch {
	return shared.RoomPatch{
		Name:             r.Name,
		RoomType:         r.Type,
		Price:            r.Price,
		Amenities:        r.Amenities,
		Description:      r.Description,
		Available:        r.Available,
		MainImage:        r.MainImage,
		AdditionalImages: r.AdditionalImages,
	}
}
