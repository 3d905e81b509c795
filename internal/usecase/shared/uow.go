package shared

import (
	"context"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/booking"
	"github.com/Harishsingh-01/roomeaseserver/internal/domain/review"
	"github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	"github.com/Harishsingh-01/roomeaseserver/internal/domain/user"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Users() UserRepository
	Payments() PaymentRepository
	Contacts() ContactRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewByBookingID(ctx context.Context, bookingID uuid.UUID) (*ReviewSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ExpiredActiveBookings(ctx context.Context, asOf time.Time) ([]*BookingSnapshot, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, roomID uuid.UUID, patch RoomPatch) error
	SetAvailability(ctx context.Context, tx db.DBTX, roomID uuid.UUID, available bool) error
	// LockByID takes a row-level lock so availability decisions for the same
	// room serialize within concurrent transactions.
	LockByID(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (*RoomSnapshot, error)
	Delete(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, status booking.Status) error
	LockByID(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*BookingSnapshot, error)
	CountOverlapping(ctx context.Context, tx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	HasActiveByRoomID(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (bool, error)
	DeleteActiveByRoomID(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (int64, error)
	ActiveRoomIDsByUserID(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rating int, comment string) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcRoomRating(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	AppendBookingID(ctx context.Context, tx db.DBTX, userID, bookingID uuid.UUID) error
	RemoveBookingID(ctx context.Context, tx db.DBTX, userID, bookingID uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p PaymentRecord) (uuid.UUID, error)
}

type ContactRepository interface {
	Create(ctx context.Context, tx db.DBTX, c ContactMessage) (uuid.UUID, error)
}
