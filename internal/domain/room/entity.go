package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const MaxAdditionalImages = 3

var (
	ErrEmptyName          = errors.New("room name is required")
	ErrEmptyType          = errors.New("room type is required")
	ErrInvalidPrice       = errors.New("room price must be positive")
	ErrMainImageRequired  = errors.New("main image URL is required")
	ErrTooManyExtraImages = errors.New("maximum 3 additional images allowed")
)

// Room is the bookable unit. The available flag is a materialized projection
// of booking state; conflict detection never trusts it alone.
type Room struct {
	id               uuid.UUID
	name             string
	roomType         string
	price            float64
	amenities        []string
	description      string
	available        bool
	mainImage        string
	additionalImages []string
}

func NewRoom(name, roomType string, price float64, amenities []string, description, mainImage string, additionalImages []string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(roomType) == "" {
		return nil, ErrEmptyType
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if strings.TrimSpace(mainImage) == "" {
		return nil, ErrMainImageRequired
	}
	extras := compactImages(additionalImages)
	if len(extras) > MaxAdditionalImages {
		return nil, ErrTooManyExtraImages
	}

	return &Room{
		id:               uuid.New(),
		name:             name,
		roomType:         roomType,
		price:            price,
		amenities:        amenities,
		description:      description,
		available:        true,
		mainImage:        mainImage,
		additionalImages: extras,
	}, nil
}

// compactImages drops empty entries, matching how uploads arrive with holes.
func compactImages(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}
	return out
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Name() string               { return r.name }
func (r *Room) Type() string               { return r.roomType }
func (r *Room) Price() float64             { return r.price }
func (r *Room) Amenities() []string        { return r.amenities }
func (r *Room) Description() string        { return r.description }
func (r *Room) Available() bool            { return r.available }
func (r *Room) MainImage() string          { return r.mainImage }
func (r *Room) AdditionalImages() []string { return r.additionalImages }
