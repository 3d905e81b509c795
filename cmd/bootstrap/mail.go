package bootstrap

import (
	"github.com/Harishsingh-01/roomeaseserver/internal/infra/mail"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) commands.Mailer {
	return mail.NewSMTPMailer(cfg.SMTP)
}
