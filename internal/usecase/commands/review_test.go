//go:build unit

package commands_test

import (
	"context"
	"testing"

	domreview "github.com/Harishsingh-01/roomeaseserver/internal/domain/review"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/clock"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewCommands(store *fakeStore) commands.ReviewCommands {
	return commands.NewReviewUseCase(newFakeUoW(store), clock.NewMockClock(date(2026, 3, 20)))
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(store *fakeStore) *uuid.UUID {
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		store.seedRoom(roomSnap)
		bookingSnap := builder.NewBookingBuilder().
			WithUserID(userID).
			WithRoomID(roomSnap.ID).
			AsCompleted().
			BuildSnapshot()
		store.seedBooking(bookingSnap)
		return &bookingSnap.ID
	}

	t.Run("owner reviews a booking and the room rating is refreshed", func(t *testing.T) {
		store := newFakeStore()
		bookingID := seed(store)

		result, err := newReviewCommands(store).CreateReview(ctx, commands.CreateReviewRequest{
			BookingID: *bookingID,
			Rating:    4,
			Comment:   "Great location",
		}, userID)
		require.NoError(t, err)

		stored := store.reviews[result.ReviewID]
		require.NotNil(t, stored)
		assert.Equal(t, 4, stored.Rating)
		assert.Equal(t, "Great location", stored.Comment)
		assert.Equal(t, 1, store.recalcs[stored.RoomID])
	})

	t.Run("someone else's booking is not eligible", func(t *testing.T) {
		store := newFakeStore()
		bookingID := seed(store)

		_, err := newReviewCommands(store).CreateReview(ctx, commands.CreateReviewRequest{
			BookingID: *bookingID,
			Rating:    4,
			Comment:   "Great location",
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrBookingNotEligible)
	})

	t.Run("unknown booking", func(t *testing.T) {
		store := newFakeStore()
		_, err := newReviewCommands(store).CreateReview(ctx, commands.CreateReviewRequest{
			BookingID: uuid.New(),
			Rating:    4,
			Comment:   "Great location",
		}, userID)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("one review per booking", func(t *testing.T) {
		store := newFakeStore()
		bookingID := seed(store)
		uc := newReviewCommands(store)

		req := commands.CreateReviewRequest{BookingID: *bookingID, Rating: 4, Comment: "Great location"}
		_, err := uc.CreateReview(ctx, req, userID)
		require.NoError(t, err)

		_, err = uc.CreateReview(ctx, req, userID)
		require.ErrorIs(t, err, commands.ErrDuplicateReview)
	})

	t.Run("invalid rating never reaches the store", func(t *testing.T) {
		store := newFakeStore()
		bookingID := seed(store)

		_, err := newReviewCommands(store).CreateReview(ctx, commands.CreateReviewRequest{
			BookingID: *bookingID,
			Rating:    6,
			Comment:   "Great location",
		}, userID)
		require.ErrorIs(t, err, domreview.ErrInvalidRating)
		assert.Empty(t, store.reviews)
	})
}

func TestUpdateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(store *fakeStore) uuid.UUID {
		snap := builder.NewReviewBuilder().WithUserID(userID).BuildSnapshot()
		store.reviews[snap.ID] = snap
		return snap.ID
	}

	t.Run("owner updates rating and comment", func(t *testing.T) {
		store := newFakeStore()
		reviewID := seed(store)

		err := newReviewCommands(store).UpdateReview(ctx, reviewID, commands.UpdateReviewRequest{
			Rating:  2,
			Comment: "Noisy at night",
		}, userID)
		require.NoError(t, err)

		assert.Equal(t, 2, store.reviews[reviewID].Rating)
		assert.Equal(t, "Noisy at night", store.reviews[reviewID].Comment)
		assert.Equal(t, 1, store.recalcs[store.reviews[reviewID].RoomID])
	})

	t.Run("only the author may update", func(t *testing.T) {
		store := newFakeStore()
		reviewID := seed(store)

		err := newReviewCommands(store).UpdateReview(ctx, reviewID, commands.UpdateReviewRequest{
			Rating:  2,
			Comment: "Noisy at night",
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrReviewNotOwned)
	})

	t.Run("unknown review", func(t *testing.T) {
		err := newReviewCommands(newFakeStore()).UpdateReview(ctx, uuid.New(), commands.UpdateReviewRequest{
			Rating:  2,
			Comment: "Noisy at night",
		}, userID)
		require.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(store *fakeStore) uuid.UUID {
		snap := builder.NewReviewBuilder().WithUserID(userID).BuildSnapshot()
		store.reviews[snap.ID] = snap
		return snap.ID
	}

	t.Run("owner deletes their review", func(t *testing.T) {
		store := newFakeStore()
		reviewID := seed(store)
		roomID := store.reviews[reviewID].RoomID

		require.NoError(t, newReviewCommands(store).DeleteReview(ctx, reviewID, userID, queries.RoleUser))
		assert.Empty(t, store.reviews)
		assert.Equal(t, 1, store.recalcs[roomID])
	})

	t.Run("admins may delete any review", func(t *testing.T) {
		store := newFakeStore()
		reviewID := seed(store)

		require.NoError(t, newReviewCommands(store).DeleteReview(ctx, reviewID, uuid.New(), queries.RoleAdmin))
		assert.Empty(t, store.reviews)
	})

	t.Run("other users may not", func(t *testing.T) {
		store := newFakeStore()
		reviewID := seed(store)

		err := newReviewCommands(store).DeleteReview(ctx, reviewID, uuid.New(), queries.RoleUser)
		require.ErrorIs(t, err, commands.ErrReviewNotOwned)
	})
}
