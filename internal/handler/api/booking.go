package api

import (
	"errors"
	"net/http"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/booking"
	reqdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	resdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/middleware"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Confirm booking
// @Description Book a room atomically with its payment record
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments/confirm-booking [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingRequest{
		RoomID:        req.RoomID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, booking.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-in must be before check-out"})
		case errors.Is(err, booking.ErrInvalidTotalPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid total price"})
		case errors.Is(err, commands.ErrTotalPriceMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Total price does not match the room price for the stay"})
		case errors.Is(err, commands.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is already booked for these dates"})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not available"})
		case errors.Is(err, shared.ErrMaxRetriesExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary conflict, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary User bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings/userbookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role.String(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booked stay before check-in and release the room
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	result, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, userID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrBookingNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking not owned by user"})
		case errors.Is(err, booking.ErrCancelAfterCheckIn):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot cancel on or after check-in date"})
		case errors.Is(err, shared.ErrMaxRetriesExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary conflict, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelBookingResult(result))
}

// @Summary Send booking email
// @Description Email the booking confirmation to the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendBookingEmailRequest true "Booking reference"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/send-booking-email [post]
func (h *BookingHandler) SendBookingEmail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SendBookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.bookingCommands.SendBookingEmail(c.Request.Context(), req.BookingID, userID); err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking email sent"})
}
