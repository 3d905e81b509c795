package bootstrap

import (
	"context"

	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"
	"github.com/Harishsingh-01/roomeaseserver/internal/sweep"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweepModule = fx.Module("sweep",
	fx.Invoke(
		RegisterSweeper,
	),
)

func RegisterSweeper(lc fx.Lifecycle, bookings commands.BookingCommands, cfg config.Config) error {
	sweeper, err := sweep.NewSweeper(bookings, cfg.Sweep)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return sweeper.Stop()
		},
	})

	return nil
}
