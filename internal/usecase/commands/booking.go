package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/booking"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/clock"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/errs"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound         = errs.New("room not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrRoomUnavailable      = errs.New("room is not available")
	ErrBookingConflict      = errs.New("booking dates conflict with an existing booking")
	ErrBookingNotOwned      = errs.New("booking not owned by user")
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
	ErrTotalPriceMismatch   = errs.New("total price does not match the room price for the stay")
)

var allowedPaymentMethods = map[string]struct{}{
	"card":        {},
	"upi":         {},
	"net banking": {},
}

type CreateBookingRequest struct {
	RoomID        uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	TotalPrice    float64
	PaymentMethod string
	TransactionID string
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	TotalPrice float64
}

type CancelBookingResult struct {
	BookingID uuid.UUID
	Refund    float64
	Status    string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) (*CancelBookingResult, error)
	// CompleteExpired closes out booked stays whose check-out has passed and
	// releases their rooms. Returns the number of bookings completed.
	CompleteExpired(ctx context.Context) (int, error)
	SendBookingEmail(ctx context.Context, bookingID, userID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	mailer         Mailer
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, mailer Mailer, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		mailer:         mailer,
		clock:          clk,
	}
}

// CreateBooking re-derives availability from booked rows under a per-room
// lock, so the available flag can never admit a double booking on its own.
func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	if _, ok := allowedPaymentMethods[req.PaymentMethod]; !ok {
		return nil, ErrInvalidPaymentMethod
	}

	stay, err := booking.NewStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.TotalPrice <= 0 {
		return nil, booking.ErrInvalidTotalPrice
	}

	var result CreateBookingResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomSnap, txErr := tx.Rooms().LockByID(ctx, tx.DB(), req.RoomID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return txErr
		}

		overlaps, txErr := tx.Bookings().CountOverlapping(ctx, tx.DB(), req.RoomID, stay.CheckIn(), stay.CheckOut())
		if txErr != nil {
			return txErr
		}
		if overlaps > 0 {
			return ErrBookingConflict
		}
		if !roomSnap.Available {
			return ErrRoomUnavailable
		}

		// The confirmation event carries the amount the payment collaborator
		// actually charged; it must agree with the room's price for the stay.
		if math.Abs(req.TotalPrice-roomSnap.Price*float64(stay.Nights())) >= 0.01 {
			return ErrTotalPriceMismatch
		}

		newBooking, txErr := booking.NewBooking(userID, req.RoomID, stay, req.TotalPrice, b.clock.Now())
		if txErr != nil {
			return txErr
		}

		bookingID, txErr := tx.Bookings().Create(ctx, tx.DB(), newBooking)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return txErr
		}

		if txErr = tx.Rooms().SetAvailability(ctx, tx.DB(), req.RoomID, false); txErr != nil {
			return txErr
		}

		payment := shared.PaymentRecord{
			BookingID:     bookingID,
			UserID:        userID,
			Amount:        req.TotalPrice,
			Method:        req.PaymentMethod,
			TransactionID: req.TransactionID,
		}
		if _, txErr = tx.Payments().Create(ctx, tx.DB(), payment); txErr != nil {
			return txErr
		}

		result = CreateBookingResult{BookingID: bookingID, TotalPrice: req.TotalPrice}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Denormalized cache on the user row, written after commit: a failed
	// statement would abort the booking transaction, and bookings stays the
	// source of truth anyway.
	if cacheErr := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().AppendBookingID(ctx, tx.DB(), userID, result.BookingID)
	}); cacheErr != nil {
		slog.Warn("failed to append booking to user cache", "booking_id", result.BookingID, "error", cacheErr.Error())
	}

	return &result, nil
}

func (b *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) (*CancelBookingResult, error) {
	today := clock.Today(b.clock)

	var (
		result       CancelBookingResult
		ownerID      uuid.UUID
		cancelledNow bool
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return txErr
		}

		if actorRole != queries.RoleAdmin && snap.UserID != actorID {
			return ErrBookingNotOwned
		}

		entity, txErr := reconstructBooking(snap)
		if txErr != nil {
			return txErr
		}

		refund, cancelErr := entity.Cancel(today)
		if cancelErr != nil {
			// Cancelling a terminal booking replays the outcome instead of
			// failing: a second cancel returns the same refund, cancelling
			// a completed stay refunds nothing.
			if errors.Is(cancelErr, booking.ErrAlreadyTerminal) {
				result = CancelBookingResult{
					BookingID: snap.ID,
					Refund:    replayRefund(snap),
					Status:    snap.Status,
				}
				return nil
			}
			return cancelErr
		}

		if txErr = tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); txErr != nil {
			return txErr
		}

		if txErr = releaseRoomIfFree(ctx, tx, snap.RoomID); txErr != nil {
			return txErr
		}

		ownerID = snap.UserID
		cancelledNow = true
		result = CancelBookingResult{
			BookingID: snap.ID,
			Refund:    refund,
			Status:    entity.Status().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Cache maintenance stays outside the cancellation transaction so a
	// failure here cannot abort it. Terminal replays skip it; the entry was
	// already removed by the first cancel.
	if cancelledNow {
		if cacheErr := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().RemoveBookingID(ctx, tx.DB(), ownerID, bookingID)
		}); cacheErr != nil {
			slog.Warn("failed to remove booking from user cache", "booking_id", bookingID, "error", cacheErr.Error())
		}
	}

	return &result, nil
}

func (b *bookingUseCaseImpl) CompleteExpired(ctx context.Context) (int, error) {
	today := clock.Today(b.clock)

	expired, err := b.uow.CommandReads().ExpiredActiveBookings(ctx, today)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, snap := range expired {
		// One transaction per booking so a single failure doesn't block the
		// rest of the sweep.
		err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, txErr := tx.Bookings().LockByID(ctx, tx.DB(), snap.ID)
			if txErr != nil {
				if infra.IsKind(txErr, infra.KindNotFound) {
					return nil // deleted since the scan; nothing to do
				}
				return txErr
			}

			entity, txErr := reconstructBooking(locked)
			if txErr != nil {
				return txErr
			}

			if completeErr := entity.Complete(today); completeErr != nil {
				// Cancelled or already completed since the scan; skip.
				return nil
			}

			if txErr = tx.Bookings().UpdateStatus(ctx, tx.DB(), locked.ID, entity.Status()); txErr != nil {
				return txErr
			}

			return releaseRoomIfFree(ctx, tx, locked.RoomID)
		})
		if err != nil {
			slog.Error("failed to complete expired booking", "booking_id", snap.ID, "error", err.Error())
			continue
		}
		completed++
	}

	if completed > 0 {
		slog.Info("expired bookings swept", "completed", completed)
	}
	return completed, nil
}

func (b *bookingUseCaseImpl) SendBookingEmail(ctx context.Context, bookingID, userID uuid.UUID) error {
	view, err := b.bookingQueries.GetByID(ctx, userID, queries.RoleUser, bookingID)
	if err != nil {
		return err
	}

	userSnap, err := b.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking for <b>%s</b> from %s to %s is confirmed. Total: %.2f.</p>",
		userSnap.Name, view.RoomName,
		view.CheckIn.Format("2006-01-02"), view.CheckOut.Format("2006-01-02"),
		view.TotalPrice,
	)
	return b.mailer.Send(ctx, userSnap.Email, "Booking confirmation", body)
}

// releaseRoomIfFree flips a room back to available only when no booked stay
// remains, taking the room lock first so the check-and-set is race free.
func releaseRoomIfFree(ctx context.Context, tx shared.Tx, roomID uuid.UUID) error {
	if _, err := tx.Rooms().LockByID(ctx, tx.DB(), roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil // room deleted; nothing to release
		}
		return err
	}

	hasActive, err := tx.Bookings().HasActiveByRoomID(ctx, tx.DB(), roomID)
	if err != nil {
		return err
	}
	if hasActive {
		return nil
	}

	return tx.Rooms().SetAvailability(ctx, tx.DB(), roomID, true)
}

func reconstructBooking(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	stay, err := booking.NewStayPeriod(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		snap.ID, snap.UserID, snap.RoomID, stay,
		snap.TotalPrice, booking.Status(snap.Status), snap.CreatedAt,
	), nil
}

func replayRefund(snap *shared.BookingSnapshot) float64 {
	if snap.Status == booking.StatusCancelled.String() {
		return snap.TotalPrice
	}
	return 0
}
