package queries

import (
	"context"

	"github.com/google/uuid"
)

const featuredRoomLimit = 3

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomListItem, error)
	ListFeatured(ctx context.Context) ([]*RoomListItem, error)
	Statistics(ctx context.Context) (*RoomStatistics, error)
	RatingStats(ctx context.Context, roomID uuid.UUID) (*RoomRatingStats, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomListItem, error)
	FindFeatured(ctx context.Context, limit int32) ([]*RoomListItem, error)
	Statistics(ctx context.Context) (*RoomStatistics, error)
	RatingStats(ctx context.Context, roomID uuid.UUID) (*RoomRatingStats, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomListItem, error) {
	return q.repo.FindAll(ctx)
}

func (q *roomQueriesImpl) ListFeatured(ctx context.Context) ([]*RoomListItem, error) {
	return q.repo.FindFeatured(ctx, featuredRoomLimit)
}

func (q *roomQueriesImpl) Statistics(ctx context.Context) (*RoomStatistics, error) {
	return q.repo.Statistics(ctx)
}

func (q *roomQueriesImpl) RatingStats(ctx context.Context, roomID uuid.UUID) (*RoomRatingStats, error) {
	return q.repo.RatingStats(ctx, roomID)
}
