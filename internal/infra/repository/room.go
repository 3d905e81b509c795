package repository

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/pgconv"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (id, name, room_type, price, amenities, description, available, main_image, additional_images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rm.ID(), rm.Name(), rm.Type(), rm.Price(), rm.Amenities(),
		rm.Description(), rm.Available(), rm.MainImage(), rm.AdditionalImages(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("room already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, roomID uuid.UUID, patch shared.RoomPatch) error {
	// COALESCE keeps columns untouched when the patch field is nil.
	const query = `
		UPDATE rooms SET
			name              = COALESCE($2, name),
			room_type         = COALESCE($3, room_type),
			price             = COALESCE($4, price),
			amenities         = COALESCE($5, amenities),
			description       = COALESCE($6, description),
			available         = COALESCE($7, available),
			main_image        = COALESCE($8, main_image),
			additional_images = COALESCE($9, additional_images)
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		roomID, patch.Name, patch.RoomType, patch.Price, patch.Amenities,
		patch.Description, patch.Available, patch.MainImage, patch.AdditionalImages,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) SetAvailability(ctx context.Context, tx db.DBTX, roomID uuid.UUID, available bool) error {
	tag, err := tx.Exec(ctx, `UPDATE rooms SET available = $2 WHERE id = $1`, roomID, available)
	if err != nil {
		return infra.WrapRepoErr("failed to set room availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) LockByID(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	const query = `
		SELECT id, name, price, available, average_rating, review_count
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	var snap shared.RoomSnapshot
	err := tx.QueryRow(ctx, query, roomID).Scan(
		&snap.ID, &snap.Name, &snap.Price, &snap.Available, &snap.AverageRating, &snap.ReviewCount,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	return &snap, nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
