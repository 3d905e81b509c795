package commands

import (
	"context"
	"log/slog"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name             string
	Type             string
	Price            float64
	Amenities        []string
	Description      string
	MainImage        string
	AdditionalImages []string
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, patch shared.RoomPatch) error
	DeleteRoom(ctx context.Context, roomID uuid.UUID) error
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomUseCase(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (r *roomUseCaseImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (uuid.UUID, error) {
	newRoom, err := room.NewRoom(
		req.Name, req.Type, req.Price, req.Amenities,
		req.Description, req.MainImage, req.AdditionalImages,
	)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Rooms().Create(ctx, tx.DB(), newRoom)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return createdID, nil
}

// UpdateRoom applies an admin patch. Forcing available=true is an override:
// any booked stay still holding the room is discarded in the same
// transaction so the flag and the bookings cannot disagree.
func (r *roomUseCaseImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, patch shared.RoomPatch) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Rooms().LockByID(ctx, tx.DB(), roomID); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return txErr
		}

		if txErr := tx.Rooms().Update(ctx, tx.DB(), roomID, patch); txErr != nil {
			return txErr
		}

		if patch.Available != nil && *patch.Available {
			dropped, txErr := tx.Bookings().DeleteActiveByRoomID(ctx, tx.DB(), roomID)
			if txErr != nil {
				return txErr
			}
			if dropped > 0 {
				slog.Info("admin released room with active bookings", "room_id", roomID, "dropped", dropped)
			}
		}

		return nil
	})
}

// DeleteRoom removes the room; bookings, reviews and payments follow via
// foreign key cascade.
func (r *roomUseCaseImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		txErr := tx.Rooms().Delete(ctx, tx.DB(), roomID)
		if infra.IsKind(txErr, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return txErr
	})
}
