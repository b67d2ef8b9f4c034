package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

// Sweeper periodically releases lapsed reservations across every raffle.
type Sweeper struct {
	sweep    commands.SweepCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(sweep commands.SweepCommands, cfg config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sweep:    sweep,
		interval: cfg.Sweeper.Interval,
		logger:   logger,
	}
}

// RegisterSweeper ties the sweeper loop to the application lifecycle.
// Nothing is started when the sweeper is disabled.
func RegisterSweeper(lc fx.Lifecycle, s *Sweeper, cfg config.Config) {
	if !cfg.Sweeper.Enabled {
		s.logger.Info("expiry sweeper disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}

func (s *Sweeper) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
	s.logger.Info("expiry sweeper started", "interval", s.interval.String())
}

// Stop cancels the loop and waits for an in-flight pass to return.
func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("expiry sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single pass and reports how many tickets it released.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	results, err := s.sweep.SweepAll(ctx, time.Time{})

	released := 0
	for _, r := range results {
		if r.ReleasedTickets == 0 {
			continue
		}
		released += r.ReleasedTickets
		s.logger.Info("released lapsed reservations",
			"raffle_id", r.RaffleID,
			"reservations", len(r.ExpiredReservations),
			"tickets", r.ReleasedTickets)
	}
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("expiry sweep incomplete", "error", err.Error())
	}
	return released
}
