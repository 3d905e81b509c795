package commands

import "context"

// Outbound ports implemented in infra; kept here so commands stay mockable.

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type OTPStore interface {
	Save(ctx context.Context, email, code string) error
	Verify(ctx context.Context, email, code string) (bool, error)
}
