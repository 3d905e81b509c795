package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCommentLength = 500

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("review comment is required")
	ErrCommentTooLong = errors.New("review comment exceeds maximum length")
)

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(trimmed) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: trimmed}, nil
}

func (c Comment) String() string {
	return c.value
}

// Review belongs to exactly one booking; uniqueness per booking is enforced
// by the store.
type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(bookingID, userID, roomID uuid.UUID, rating int, comment string, now time.Time) (*Review, error) {
	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return nil, err
	}
	return &Review{
		id:        uuid.New(),
		bookingID: bookingID,
		userID:    userID,
		roomID:    roomID,
		rating:    r,
		comment:   c,
		createdAt: now,
	}, nil
}

func ReconstructReview(id, bookingID, userID, roomID uuid.UUID, rating Rating, comment Comment, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		roomID:    roomID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) RoomID() uuid.UUID    { return r.roomID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
