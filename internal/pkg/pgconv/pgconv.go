package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this codebase cares about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeExclusionViolation  = "23P01"
)

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func IsPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code
}

func IsUniqueViolation(err error) bool {
	return IsPgErrCode(err, CodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return IsPgErrCode(err, CodeForeignKeyViolation)
}

func IsExclusionViolation(err error) bool {
	return IsPgErrCode(err, CodeExclusionViolation)
}

// DateOnly normalizes a timestamp to midnight UTC for date-column round trips.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
