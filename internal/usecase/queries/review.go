package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*ReviewView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
}

type ReviewViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*ReviewView, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*ReviewView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reviewQueriesImpl) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*ReviewView, error) {
	return q.repo.FindByBookingID(ctx, bookingID)
}

func (q *reviewQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByRoomID(ctx, roomID)
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
