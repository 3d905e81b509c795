package response

import (
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	RoomImage  string    `json:"room_image"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		RoomID:     v.RoomID,
		RoomName:   v.RoomName,
		RoomImage:  v.RoomImage,
		CheckIn:    v.CheckIn.Format("2006-01-02"),
		CheckOut:   v.CheckOut.Format("2006-01-02"),
		TotalPrice: v.TotalPrice,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []BookingResponse {
	result := make([]BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}

type CreateBookingResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	TotalPrice float64   `json:"total_price"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) CreateBookingResponse {
	return CreateBookingResponse{BookingID: r.BookingID, TotalPrice: r.TotalPrice}
}

type CancelBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Refund    float64   `json:"refund"`
	Status    string    `json:"status"`
}

func FromCancelBookingResult(r *commands.CancelBookingResult) CancelBookingResponse {
	return CancelBookingResponse{BookingID: r.BookingID, Refund: r.Refund, Status: r.Status}
}
