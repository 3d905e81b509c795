//go:build unit

package room_test

import (
	"testing"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(room.Room{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, err := room.NewRoom(
			"Deluxe Suite", "suite", 120,
			[]string{"wifi", "ac"},
			"Spacious suite with balcony",
			"https://img.example.com/rooms/main.jpg",
			[]string{"https://img.example.com/rooms/1.jpg"},
		)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Room mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.Available(), "new rooms start available")
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.RoomBuilder) { b.WithName("") },
				errIs:  room.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.RoomBuilder) { b.WithName("   ") },
				errIs:  room.ErrEmptyName,
			},
		})
	})

	t.Run("type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty type",
				mutate: func(b *builder.RoomBuilder) { b.WithRoomType("") },
				errIs:  room.ErrEmptyType,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.RoomBuilder) { b.WithPrice(0) },
				errIs:  room.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.RoomBuilder) { b.WithPrice(-50) },
				errIs:  room.ErrInvalidPrice,
			},
			{
				name:   "minimal positive price",
				mutate: func(b *builder.RoomBuilder) { b.WithPrice(0.01) },
			},
		})
	})

	t.Run("image validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing main image",
				mutate: func(b *builder.RoomBuilder) { b.WithMainImage("") },
				errIs:  room.ErrMainImageRequired,
			},
			{
				name: "three additional images",
				mutate: func(b *builder.RoomBuilder) {
					b.WithAdditionalImages([]string{"a.jpg", "b.jpg", "c.jpg"})
				},
			},
			{
				name: "four additional images",
				mutate: func(b *builder.RoomBuilder) {
					b.WithAdditionalImages([]string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"})
				},
				errIs: room.ErrTooManyExtraImages,
			},
		})
	})

	t.Run("empty additional image entries are dropped", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().
			WithAdditionalImages([]string{"a.jpg", "", "  ", "b.jpg"}).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []string{"a.jpg", "b.jpg"}, actual.AdditionalImages())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
