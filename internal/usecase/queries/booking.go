package queries

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingAccessDenied = errs.New("booking access denied")

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListActive(ctx context.Context) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindAllActive(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != RoleAdmin && view.UserID != actorID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListActive(ctx context.Context) ([]*BookingView, error) {
	return q.repo.FindAllActive(ctx)
}
