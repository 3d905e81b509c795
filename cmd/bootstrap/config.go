package bootstrap

import (
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
