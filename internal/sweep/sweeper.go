package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
)

// Sweeper runs the daily expired-booking job: booked stays past check-out
// become completed and their rooms are released.
type Sweeper struct {
	scheduler gocron.Scheduler
	bookings  commands.BookingCommands
}

func NewSweeper(bookings commands.BookingCommands, cfg config.SweepConfig) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Sweeper{scheduler: scheduler, bookings: bookings}

	var hour, minute int
	if _, err := fmt.Sscanf(cfg.At, "%d:%d", &hour, &minute); err != nil {
		return nil, fmt.Errorf("invalid sweep time %q: %w", cfg.At, err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(s.run),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule sweep job: %w", err)
	}

	return s, nil
}

func (s *Sweeper) Start() {
	s.scheduler.Start()
	slog.Info("expired-booking sweeper started")
}

func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Sweeper) run() {
	completed, err := s.bookings.CompleteExpired(context.Background())
	if err != nil {
		slog.Error("expired-booking sweep failed", "error", err.Error())
		return
	}
	slog.Info("expired-booking sweep finished", "completed", completed)
}
