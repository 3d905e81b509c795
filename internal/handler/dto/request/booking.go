package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	CheckIn       time.Time `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut      time.Time `json:"check_out" binding:"required" time_format:"2006-01-02"`
	TotalPrice    float64   `json:"total_price" binding:"required,gt=0"`
	PaymentMethod string    `json:"payment_method" binding:"required"`
	TransactionID string    `json:"transaction_id" binding:"required"`
}

type SendBookingEmailRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}
