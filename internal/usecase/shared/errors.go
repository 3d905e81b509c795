package shared

import "github.com/Harishsingh-01/roomeaseserver/internal/pkg/errs"

// ErrMaxRetriesExceeded marks transactions that kept hitting retryable
// conflicts; handlers translate it to a transient failure response.
var ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
