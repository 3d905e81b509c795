//go:build unit

package commands_test

import (
	"context"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/booking"
	"github.com/Harishsingh-01/roomeaseserver/internal/domain/review"
	"github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	"github.com/Harishsingh-01/roomeaseserver/internal/domain/user"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/db"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database. It mirrors the
// constraints the schema enforces (overlap exclusion, one review per booking,
// unique emails, FK cascades) so command flows can be exercised end to end
// without a server.
type fakeStore struct {
	rooms    map[uuid.UUID]*shared.RoomSnapshot
	bookings map[uuid.UUID]*shared.BookingSnapshot
	reviews  map[uuid.UUID]*shared.ReviewSnapshot
	users    map[uuid.UUID]*shared.UserSnapshot
	payments []shared.PaymentRecord
	contacts []shared.ContactMessage
	recalcs  map[uuid.UUID]int

	// failUserCache makes the booking_ids cache statements fail, like a
	// broken UPDATE would.
	failUserCache bool
	stmtFailures  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:    make(map[uuid.UUID]*shared.RoomSnapshot),
		bookings: make(map[uuid.UUID]*shared.BookingSnapshot),
		reviews:  make(map[uuid.UUID]*shared.ReviewSnapshot),
		users:    make(map[uuid.UUID]*shared.UserSnapshot),
		recalcs:  make(map[uuid.UUID]int),
	}
}

func (s *fakeStore) seedRoom(snap *shared.RoomSnapshot) {
	s.rooms[snap.ID] = snap
}

func (s *fakeStore) seedBooking(snap *shared.BookingSnapshot) {
	s.bookings[snap.ID] = snap
}

func (s *fakeStore) seedUser(snap *shared.UserSnapshot) {
	s.users[snap.ID] = snap
}

func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) shared.UnitOfWork {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.stmtFailures = 0
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		return err
	}
	// Postgres aborts the whole transaction once any statement fails; the
	// commit then errors even if the closure swallowed the failure.
	if u.store.stmtFailures > 0 {
		return infra.WrapRepoErr("transaction aborted by failed statement", nil)
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Rooms() shared.RoomRepository            { return &fakeRoomRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository      { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Reviews() shared.ReviewRepository        { return &fakeReviewRepo{store: t.store} }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository {
	return &fakeRatingStatsRepo{store: t.store}
}
func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{store: t.store} }
func (t *fakeTx) Payments() shared.PaymentRepository { return &fakePaymentRepo{store: t.store} }
func (t *fakeTx) Contacts() shared.ContactRepository { return &fakeContactRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap, ok := r.store.reviews[id]
	if !ok {
		return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ReviewByBookingID(_ context.Context, bookingID uuid.UUID) (*shared.ReviewSnapshot, error) {
	for _, snap := range r.store.reviews {
		if snap.BookingID == bookingID {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	snap, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, snap := range r.store.users {
		if snap.Email == email {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ExpiredActiveBookings(_ context.Context, asOf time.Time) ([]*shared.BookingSnapshot, error) {
	var out []*shared.BookingSnapshot
	for _, snap := range r.store.bookings {
		if snap.Status == booking.StatusBooked.String() && !snap.CheckOut.After(asOf) {
			cp := *snap
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	store *fakeStore
}

func (r *fakeRoomRepo) Create(_ context.Context, _ db.DBTX, rm *room.Room) (uuid.UUID, error) {
	r.store.rooms[rm.ID()] = &shared.RoomSnapshot{
		ID:        rm.ID(),
		Name:      rm.Name(),
		Price:     rm.Price(),
		Available: rm.Available(),
	}
	return rm.ID(), nil
}

func (r *fakeRoomRepo) Update(_ context.Context, _ db.DBTX, roomID uuid.UUID, patch shared.RoomPatch) error {
	snap, ok := r.store.rooms[roomID]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	if patch.Name != nil {
		snap.Name = *patch.Name
	}
	if patch.Price != nil {
		snap.Price = *patch.Price
	}
	if patch.Available != nil {
		snap.Available = *patch.Available
	}
	return nil
}

func (r *fakeRoomRepo) SetAvailability(_ context.Context, _ db.DBTX, roomID uuid.UUID, available bool) error {
	snap, ok := r.store.rooms[roomID]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	snap.Available = available
	return nil
}

func (r *fakeRoomRepo) LockByID(_ context.Context, _ db.DBTX, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.store.rooms[roomID]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, _ db.DBTX, roomID uuid.UUID) error {
	if _, ok := r.store.rooms[roomID]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(r.store.rooms, roomID)
	for id, snap := range r.store.bookings {
		if snap.RoomID == roomID {
			delete(r.store.bookings, id)
		}
	}
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	for _, snap := range r.store.bookings {
		if snap.RoomID == b.RoomID() && snap.Status == booking.StatusBooked.String() &&
			overlaps(b.Stay().CheckIn(), b.Stay().CheckOut(), snap.CheckIn, snap.CheckOut) {
			return uuid.Nil, infra.WrapRepoErr("booking overlaps an existing stay", nil, infra.KindConflict)
		}
	}
	r.store.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:         b.ID(),
		UserID:     b.UserID(),
		RoomID:     b.RoomID(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		TotalPrice: b.TotalPrice(),
		Status:     b.Status().String(),
		CreatedAt:  b.CreatedAt(),
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, bookingID uuid.UUID, status booking.Status) error {
	snap, ok := r.store.bookings[bookingID]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.Status = status.String()
	return nil
}

func (r *fakeBookingRepo) LockByID(_ context.Context, _ db.DBTX, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.store.bookings[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeBookingRepo) CountOverlapping(_ context.Context, _ db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	var n int64
	for _, snap := range r.store.bookings {
		if snap.RoomID == roomID && snap.Status == booking.StatusBooked.String() &&
			overlaps(checkIn, checkOut, snap.CheckIn, snap.CheckOut) {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) HasActiveByRoomID(_ context.Context, _ db.DBTX, roomID uuid.UUID) (bool, error) {
	for _, snap := range r.store.bookings {
		if snap.RoomID == roomID && snap.Status == booking.StatusBooked.String() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) DeleteActiveByRoomID(_ context.Context, _ db.DBTX, roomID uuid.UUID) (int64, error) {
	var n int64
	for id, snap := range r.store.bookings {
		if snap.RoomID == roomID && snap.Status == booking.StatusBooked.String() {
			delete(r.store.bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) ActiveRoomIDsByUserID(_ context.Context, _ db.DBTX, userID uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, snap := range r.store.bookings {
		if snap.UserID == userID && snap.Status == booking.StatusBooked.String() {
			if _, ok := seen[snap.RoomID]; !ok {
				seen[snap.RoomID] = struct{}{}
				out = append(out, snap.RoomID)
			}
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	store *fakeStore
}

func (r *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	for _, snap := range r.store.reviews {
		if snap.BookingID == rev.BookingID() {
			return uuid.Nil, infra.WrapRepoErr("review already exists for booking", nil, infra.KindDuplicateKey)
		}
	}
	r.store.reviews[rev.ID()] = &shared.ReviewSnapshot{
		ID:        rev.ID(),
		BookingID: rev.BookingID(),
		UserID:    rev.UserID(),
		RoomID:    rev.RoomID(),
		Rating:    rev.Rating().Value(),
		Comment:   rev.Comment().String(),
	}
	return rev.ID(), nil
}

func (r *fakeReviewRepo) Update(_ context.Context, _ db.DBTX, reviewID uuid.UUID, rating int, comment string) error {
	snap, ok := r.store.reviews[reviewID]
	if !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	snap.Rating = rating
	snap.Comment = comment
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	if _, ok := r.store.reviews[reviewID]; !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	delete(r.store.reviews, reviewID)
	return nil
}

type fakeRatingStatsRepo struct {
	store *fakeStore
}

func (r *fakeRatingStatsRepo) RecalcRoomRating(_ context.Context, _ db.DBTX, roomID uuid.UUID) error {
	r.store.recalcs[roomID]++
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	for _, snap := range r.store.users {
		if snap.Email == u.Email() {
			return uuid.Nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
		}
	}
	r.store.users[u.ID()] = &shared.UserSnapshot{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
	return u.ID(), nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	if _, ok := r.store.users[userID]; !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	delete(r.store.users, userID)
	// FK cascade
	for id, snap := range r.store.bookings {
		if snap.UserID == userID {
			delete(r.store.bookings, id)
		}
	}
	return nil
}

func (r *fakeUserRepo) AppendBookingID(_ context.Context, _ db.DBTX, _, _ uuid.UUID) error {
	if r.store.failUserCache {
		r.store.stmtFailures++
		return infra.WrapRepoErr("failed to append booking ID", nil)
	}
	return nil
}

func (r *fakeUserRepo) RemoveBookingID(_ context.Context, _ db.DBTX, _, _ uuid.UUID) error {
	if r.store.failUserCache {
		r.store.stmtFailures++
		return infra.WrapRepoErr("failed to remove booking ID", nil)
	}
	return nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p shared.PaymentRecord) (uuid.UUID, error) {
	r.store.payments = append(r.store.payments, p)
	return uuid.New(), nil
}

type fakeContactRepo struct {
	store *fakeStore
}

func (r *fakeContactRepo) Create(_ context.Context, _ db.DBTX, c shared.ContactMessage) (uuid.UUID, error) {
	r.store.contacts = append(r.store.contacts, c)
	return uuid.New(), nil
}
