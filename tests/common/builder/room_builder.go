//go:build unit || e2e

package builder

import (
	domroom "github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	reqdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Name             string
	RoomType         string
	Price            float64
	Amenities        []string
	Description      string
	MainImage        string
	AdditionalImages []string
	Available        bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Name:             "Deluxe Suite",
		RoomType:         "suite",
		Price:            120,
		Amenities:        []string{"wifi", "ac"},
		Description:      "Spacious suite with balcony",
		MainImage:        "https://img.example.com/rooms/main.jpg",
		AdditionalImages: []string{"https://img.example.com/rooms/1.jpg"},
		Available:        true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(r.Name, r.RoomType, r.Price, r.Amenities, r.Description, r.MainImage, r.AdditionalImages)
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:        uuid.New(),
		Name:      r.Name,
		Price:     r.Price,
		Available: r.Available,
	}
}

func (r *RoomBuilder) BuildCreateCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{
		Name:             r.Name,
		Type:             r.RoomType,
		Price:            r.Price,
		Amenities:        r.Amenities,
		Description:      r.Description,
		MainImage:        r.MainImage,
		AdditionalImages: r.AdditionalImages,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:             r.Name,
		Type:             r.RoomType,
		Price:            r.Price,
		Amenities:        r.Amenities,
		Description:      r.Description,
		MainImage:        r.MainImage,
		AdditionalImages: r.AdditionalImages,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithRoomType(roomType string) *RoomBuilder {
	r.RoomType = roomType
	return r
}

func (r *RoomBuilder) WithPrice(price float64) *RoomBuilder {
	r.Price = price
	return r
}

func (r *RoomBuilder) WithMainImage(url string) *RoomBuilder {
	r.MainImage = url
	return r
}

func (r *RoomBuilder) WithAdditionalImages(urls []string) *RoomBuilder {
	r.AdditionalImages = urls
	return r
}

func (r *RoomBuilder) AsUnavailable() *RoomBuilder {
	r.Available = false
	return r
}
