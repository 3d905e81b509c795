package commands

import (
	"context"

	domreview "github.com/Harishsingh-01/roomeaseserver/internal/domain/review"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/clock"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/errs"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by user")
	ErrDuplicateReview     = errs.New("duplicate review for booking")
	ErrReviewNotFoundWrite = errs.New("review not found")
	ErrBookingNotEligible  = errs.New("booking not eligible for review")
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingSnap, derr := tx.Reads().BookingByID(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		if bookingSnap.UserID != userID {
			return ErrBookingNotEligible
		}

		rev, derr := domreview.NewReview(req.BookingID, userID, bookingSnap.RoomID, req.Rating, req.Comment, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}
		createdID = id

		return tx.RatingStats().RecalcRoomRating(ctx, tx.DB(), bookingSnap.RoomID)
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return err
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		if derr = tx.Reviews().Update(ctx, tx.DB(), reviewID, rating.Value(), comment.String()); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcRoomRating(ctx, tx.DB(), snap.RoomID)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if actorRole != queries.RoleAdmin && snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcRoomRating(ctx, tx.DB(), snap.RoomID)
	})
}
