package commands

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

// DeleteUser removes the account and its bookings (foreign key cascade),
// then releases any room left without a booked stay.
func (u *userUseCaseImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomIDs, txErr := tx.Bookings().ActiveRoomIDsByUserID(ctx, tx.DB(), userID)
		if txErr != nil {
			return txErr
		}

		if txErr = tx.Users().Delete(ctx, tx.DB(), userID); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return txErr
		}

		// The cascade may leave rooms flagged unavailable with no remaining
		// booked stay; re-derive each one.
		for _, roomID := range roomIDs {
			if txErr = releaseRoomIfFree(ctx, tx, roomID); txErr != nil {
				return txErr
			}
		}

		return nil
	})
}
