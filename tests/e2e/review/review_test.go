//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
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
	addReviewURL   = "/api/reviews/add"
	roomReviewsURL = "/api/reviews/room/%s"
	reviewURL      = "/api/reviews/%s"
	roomURL        = "/api/rooms/%s"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func (s *ReviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

// books a room for the guest and returns the room and booking IDs
func (s *ReviewSuite) seedBooking(t *testing.T, guestToken string) (uuid.UUID, uuid.UUID) {
	t.Helper()

	roomID := dbtest.CreateTestRoom(t, s.DB, "Reviewed Room", 100)
	checkIn := time.Now().UTC().AddDate(0, 0, 7)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/confirm-booking",
		request.CreateBookingRequest{
			RoomID:        roomID,
			CheckIn:       checkIn,
			CheckOut:      checkIn.AddDate(0, 0, 2),
			TotalPrice:    200,
			PaymentMethod: "card",
			TransactionID: uuid.New().String(),
		}, guestToken)

	var created response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return roomID, created.BookingID
}

func (s *ReviewSuite) addReview(t *testing.T, token string, bookingID uuid.UUID, rating int, comment string) *response.CreateReviewResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, addReviewURL,
		request.CreateReviewRequest{BookingID: bookingID, Rating: rating, Comment: comment}, token)

	var created response.CreateReviewResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return &created
}

// =============================================================================
// TestCreateReview - Review creation and rating aggregation
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("Normal case: Review shows up on the room and moves its rating", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		roomID, bookingID := s.seedBooking(t, guestToken)

		s.addReview(t, guestToken, bookingID, 4, "Great location")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomReviewsURL, roomID), nil, "")
		var reviews []response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviews)
		require.Len(t, reviews, 1)
		require.EqualValues(t, 4, reviews[0].Rating)
		require.Equal(t, "Great location", reviews[0].Comment)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil, "")
		var room response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &room)
		require.Equal(t, 4.0, room.AverageRating)
		require.EqualValues(t, 1, room.ReviewCount)
	})

	s.Run("Error case: Second review for the same booking conflicts", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		_, bookingID := s.seedBooking(t, guestToken)

		s.addReview(t, guestToken, bookingID, 4, "Great location")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, addReviewURL,
			request.CreateReviewRequest{BookingID: bookingID, Rating: 5, Comment: "Trying again"}, guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Review already exists")
	})

	s.Run("Error case: Reviewing someone else's booking is forbidden", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "user")
		_, bookingID := s.seedBooking(t, guestToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, addReviewURL,
			request.CreateReviewRequest{BookingID: bookingID, Rating: 1, Comment: "Not my stay"}, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Booking not eligible")
	})
}

// =============================================================================
// TestModifyReview - Update and delete ownership rules
// =============================================================================

func (s *ReviewSuite) TestModifyReview() {
	s.Run("Normal case: Author updates their review and the rating follows", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		roomID, bookingID := s.seedBooking(t, guestToken)
		created := s.addReview(t, guestToken, bookingID, 5, "Excellent stay!")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reviewURL, created.ReviewID),
			request.UpdateReviewRequest{Rating: 2, Comment: "Noisy at night"}, guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil, "")
		var room response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &room)
		require.Equal(t, 2.0, room.AverageRating)
	})

	s.Run("Error case: Non-author update is forbidden", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "user")
		_, bookingID := s.seedBooking(t, guestToken)
		created := s.addReview(t, guestToken, bookingID, 5, "Excellent stay!")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reviewURL, created.ReviewID),
			request.UpdateReviewRequest{Rating: 1, Comment: "Hijacked"}, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Review not owned")
	})

	s.Run("Normal case: Admin removes a review", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")
		roomID, bookingID := s.seedBooking(t, guestToken)
		created := s.addReview(t, guestToken, bookingID, 1, "Spam review")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reviewURL, created.ReviewID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomReviewsURL, roomID), nil, "")
		var reviews []response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviews)
		require.Empty(t, reviews)
	})
}
