//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/authtest"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/dbtest"
	"github.com/Harishsingh-01/roomeaseserver/tests/common/httptest"
	"github.com/Harishsingh-01/roomeaseserver/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	confirmBookingURL = "/api/payments/confirm-booking"
	userBookingsURL   = "/api/bookings/userbookings"
	cancelBookingURL  = "/api/bookings/%s/cancel"
	roomURL           = "/api/rooms/%s"
	addRoomURL        = "/api/admin/addroom"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) stay() (time.Time, time.Time) {
	checkIn := time.Now().UTC().AddDate(0, 0, 7)
	return checkIn, checkIn.AddDate(0, 0, 3)
}

func (s *BookingSuite) confirmBooking(t *testing.T, token string, roomID uuid.UUID, checkIn, checkOut time.Time, totalPrice float64) *response.CreateBookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalPrice:    totalPrice,
		PaymentMethod: "card",
		TransactionID: uuid.New().String(),
	}, token)

	var created response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return &created
}

func (s *BookingSuite) getRoom(t *testing.T, roomID uuid.UUID) response.RoomResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil, "")
	var room response.RoomResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &room)
	return room
}

// =============================================================================
// TestBookingLifecycle - Book, conflict, cancel, rebook
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: Booking holds the room and cancelling releases it", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, addRoomURL, request.CreateRoomRequest{
			Name:      "Deluxe Suite",
			Type:      "suite",
			Price:     120,
			Amenities: []string{"wifi", "ac"},
			MainImage: "https://img.example.com/main.jpg",
		}, adminToken)
		var createdRoom response.CreateRoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &createdRoom)

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		checkIn, checkOut := s.stay()

		booked := s.confirmBooking(t, guestToken, createdRoom.RoomID, checkIn, checkOut, 360)
		require.Equal(t, 360.0, booked.TotalPrice, "3 nights at 120")
		require.False(t, s.getRoom(t, createdRoom.RoomID).Available)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, userBookingsURL, nil, guestToken)
		var bookings []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &bookings)
		require.Len(t, bookings, 1)
		require.Equal(t, "booked", bookings[0].Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelBookingURL, booked.BookingID), nil, guestToken)
		var cancelled response.CancelBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, 360.0, cancelled.Refund, "cancel before check-in refunds in full")
		require.Equal(t, "cancelled", cancelled.Status)

		require.True(t, s.getRoom(t, createdRoom.RoomID).Available, "cancelling the only stay frees the room")

		// Released room can be booked again for the same dates
		rebooked := s.confirmBooking(t, guestToken, createdRoom.RoomID, checkIn, checkOut, 360)
		require.NotEqual(t, booked.BookingID, rebooked.BookingID)
	})

	s.Run("Error case: Overlapping dates conflict", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Conflict Room", 100)
		firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", "user")
		secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", "user")

		checkIn, checkOut := s.stay()
		s.confirmBooking(t, firstToken, roomID, checkIn, checkOut, 300)

		// Partially overlapping stay by another guest
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
			RoomID:        roomID,
			CheckIn:       checkIn.AddDate(0, 0, 1),
			CheckOut:      checkOut.AddDate(0, 0, 2),
			TotalPrice:    400,
			PaymentMethod: "upi",
			TransactionID: uuid.New().String(),
		}, secondToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: Cancelling someone else's booking is forbidden", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Owned Room", 100)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "user")
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "user")

		checkIn, checkOut := s.stay()
		booked := s.confirmBooking(t, ownerToken, roomID, checkIn, checkOut, 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelBookingURL, booked.BookingID), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Booking not owned by user")
	})

	s.Run("Error case: Booking requires authentication", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Open Room", 100)
		checkIn, checkOut := s.stay()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
			RoomID:        roomID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalPrice:    300,
			PaymentMethod: "card",
			TransactionID: uuid.New().String(),
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Unknown payment method", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Cash Room", 100)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "payer@example.com", "user")
		checkIn, checkOut := s.stay()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
			RoomID:        roomID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalPrice:    300,
			PaymentMethod: "cheque",
			TransactionID: uuid.New().String(),
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid payment method")
	})
}

// =============================================================================
// TestBookingConsistency - Concurrency and atomicity of the booking write path
// =============================================================================

func (s *BookingSuite) TestBookingConsistency() {
	s.Run("Normal case: One winner among parallel bookings for the same dates", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Contended Room", 100)
		checkIn, checkOut := s.stay()

		const attempts = 5
		tokens := make([]string, attempts)
		for i := range tokens {
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, fmt.Sprintf("racer%d@example.com", i), "user")
		}

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
					RoomID:        roomID,
					CheckIn:       checkIn,
					CheckOut:      checkOut,
					TotalPrice:    300,
					PaymentMethod: "card",
					TransactionID: uuid.New().String(),
				}, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one parallel booking wins")
		require.Equal(t, attempts-1, conflicted)

		var stored int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT count(*) FROM bookings WHERE room_id = $1 AND status = 'booked'`, roomID).Scan(&stored))
		require.Equal(t, 1, stored)
	})

	s.Run("Error case: Booking rolls back fully when the room flip fails", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Pinned Room", 100)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		checkIn, checkOut := s.stay()

		// Pin the availability flag so the mid-transaction UPDATE fails after
		// the booking row is already inserted.
		_, err := s.DB.Exec(context.Background(),
			`ALTER TABLE rooms ADD CONSTRAINT rooms_pinned_available CHECK (available)`)
		require.NoError(t, err)
		defer func() {
			_, dropErr := s.DB.Exec(context.Background(),
				`ALTER TABLE rooms DROP CONSTRAINT rooms_pinned_available`)
			require.NoError(t, dropErr)
		}()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
			RoomID:        roomID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalPrice:    300,
			PaymentMethod: "card",
			TransactionID: uuid.New().String(),
		}, token)
		require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

		var bookings int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT count(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&bookings))
		require.Zero(t, bookings, "failed flip must not leave a booking behind")

		var payments int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT count(*) FROM payments`).Scan(&payments))
		require.Zero(t, payments)

		require.True(t, s.getRoom(t, roomID).Available)
	})

	s.Run("Error case: Confirmed amount must match the room price", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Priced Room", 100)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		checkIn, checkOut := s.stay()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmBookingURL, request.CreateBookingRequest{
			RoomID:        roomID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalPrice:    120,
			PaymentMethod: "card",
			TransactionID: uuid.New().String(),
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Total price does not match the room price for the stay")
	})
}

// =============================================================================
// TestAdminBookingAccess - Role checks on the admin surface
// =============================================================================

func (s *BookingSuite) TestAdminBookingAccess() {
	s.Run("Normal case: Admin sees active bookings across users", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Watched Room", 100)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		checkIn, checkOut := s.stay()
		s.confirmBooking(t, guestToken, roomID, checkIn, checkOut, 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/booked-rooms", nil, adminToken)
		var bookings []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &bookings)
		require.Len(t, bookings, 1)
	})

	s.Run("Error case: Plain users cannot reach the admin surface", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/booked-rooms", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
