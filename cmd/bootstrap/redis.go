package bootstrap

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra/otp"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewOTPStore,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client, cleanup := otp.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client
}

func NewOTPStore(client *redis.Client) commands.OTPStore {
	return otp.NewRedisStore(client)
}
