package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-in must be before check-out")
)

// StayPeriod is a half-open date range [checkIn, checkOut). Both bounds are
// normalized to midnight UTC; a one-night stay has checkOut = checkIn + 1 day.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !in.Before(out) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / (24 * time.Hour))
}

// Overlaps uses half-open interval semantics: [a,b) and [c,d) overlap
// iff a < d && c < b. Back-to-back stays (b == c) do not overlap.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Contains reports whether the given day falls inside the stay,
// check-in day inclusive, check-out day exclusive.
func (s StayPeriod) Contains(day time.Time) bool {
	d := truncateToDate(day)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// ExpiredAsOf reports whether the stay is entirely in the past.
func (s StayPeriod) ExpiredAsOf(day time.Time) bool {
	return !s.checkOut.After(truncateToDate(day))
}
