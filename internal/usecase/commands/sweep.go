package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type SweepResult struct {
	RaffleID            uuid.UUID   `json:"raffle_id"`
	ReleasedTickets     int         `json:"released_tickets"`
	ExpiredReservations []uuid.UUID `json:"expired_reservations"`
}

type SweepCommands interface {
	// SweepRaffle releases the raffle's reservations lapsed at now. A zero now
	// means the current time.
	SweepRaffle(ctx context.Context, raffleID uuid.UUID, now time.Time) (*SweepResult, error)
	// SweepAll sweeps every raffle that has lapsed reservations, one raffle
	// lock at a time. Failures on one raffle do not stop the others.
	SweepAll(ctx context.Context, now time.Time) ([]*SweepResult, error)
}

type sweepCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSweepCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) SweepCommands {
	return &sweepCommandsImpl{
		uow:    uow,
		clock:  clock,
		logger: logger,
	}
}

func (c *sweepCommandsImpl) SweepRaffle(ctx context.Context, raffleID uuid.UUID, now time.Time) (*SweepResult, error) {
	if now.IsZero() {
		now = c.clock.Now()
	}
	now = truncate(now)

	result := &SweepResult{RaffleID: raffleID, ExpiredReservations: []uuid.UUID{}}
	err := runInRaffle(ctx, c.uow, c.logger, raffleID, now, func(ctx context.Context, rt *raffleTx) error {
		exp, err := rt.expireDue(ctx)
		if err != nil {
			return err
		}
		result.ReleasedTickets = exp.ReleasedTickets
		result.ExpiredReservations = append(result.ExpiredReservations[:0], exp.ReservationIDs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *sweepCommandsImpl) SweepAll(ctx context.Context, now time.Time) ([]*SweepResult, error) {
	if now.IsZero() {
		now = c.clock.Now()
	}
	now = truncate(now)

	raffleIDs, err := c.uow.CommandReads().RafflesWithDueReservations(ctx, now)
	if err != nil {
		return nil, err
	}

	var (
		results []*SweepResult
		failed  []error
	)
	for _, id := range raffleIDs {
		if ctx.Err() != nil {
			failed = append(failed, ctx.Err())
			break
		}
		res, err := c.SweepRaffle(ctx, id, now)
		if err != nil {
			c.logger.Warn("sweep failed", "raffle_id", id, "error", err.Error())
			failed = append(failed, errs.Wrapf(err, "sweep raffle %s", id))
			continue
		}
		results = append(results, res)
	}
	if len(failed) > 0 {
		return results, errs.Join(failed...)
	}
	return results, nil
}
