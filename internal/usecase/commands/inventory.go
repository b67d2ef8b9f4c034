package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/queries"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRaffleExists = errs.Mark(errs.New("raffle inventory already initialized"), errs.ErrAlreadyInitialized)

type InitializeInventoryCommand struct {
	RaffleID     uuid.UUID
	TotalTickets int
	// Status is the starting status; empty means active.
	Status   raffle.Status
	Settings raffle.Settings
}

type ChangeStatusCommand struct {
	RaffleID uuid.UUID
	Status   raffle.Status
}

type InventoryCommands interface {
	Initialize(ctx context.Context, cmd InitializeInventoryCommand) (*queries.InventorySnapshot, error)
	ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (*queries.InventorySnapshot, error)
}

type inventoryCommandsImpl struct {
	uow                shared.UnitOfWork
	clock              clock.Clock
	logger             *slog.Logger
	defaultReservation time.Duration
}

func NewInventoryCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger, cfg config.Config) InventoryCommands {
	return &inventoryCommandsImpl{
		uow:                uow,
		clock:              clock,
		logger:             logger,
		defaultReservation: time.Duration(cfg.Raffle.DefaultReservationMinutes) * time.Minute,
	}
}

func (c *inventoryCommandsImpl) Initialize(ctx context.Context, cmd InitializeInventoryCommand) (*queries.InventorySnapshot, error) {
	if cmd.RaffleID == uuid.Nil {
		return nil, errs.Mark(errs.New("raffle id is required"), errs.ErrInvalidArgument)
	}
	settings := cmd.Settings
	if settings.ReservationTime == 0 {
		settings.ReservationTime = c.defaultReservation
	}
	now := truncate(c.clock.Now())

	r, err := raffle.New(cmd.RaffleID, cmd.TotalTickets, settings, cmd.Status, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.WithinRaffle(ctx, cmd.RaffleID, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Raffles().FindByID(ctx, cmd.RaffleID)
		switch {
		case err == nil:
			return errs.Mark(errs.Newf("raffle %s", cmd.RaffleID), ErrRaffleExists)
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := tx.Raffles().Create(ctx, r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(errs.Newf("raffle %s", cmd.RaffleID), ErrRaffleExists)
			}
			return err
		}
		if err := tx.Tickets().CreateRange(ctx, cmd.RaffleID, cmd.TotalTickets); err != nil {
			return err
		}
		return reconcile(ctx, tx, r, c.logger)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("raffle inventory initialized",
		"raffle_id", cmd.RaffleID,
		"total_tickets", cmd.TotalTickets,
		"status", r.Status(),
	)
	return queries.NewInventorySnapshot(r), nil
}

func (c *inventoryCommandsImpl) ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (*queries.InventorySnapshot, error) {
	if !cmd.Status.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown raffle status %q", cmd.Status), errs.ErrInvalidArgument)
	}
	now := truncate(c.clock.Now())

	var snapshot *queries.InventorySnapshot
	err := runInRaffle(ctx, c.uow, c.logger, cmd.RaffleID, now, func(ctx context.Context, rt *raffleTx) error {
		from := rt.raffle.Status()
		if err := rt.raffle.ChangeStatus(cmd.Status, now); err != nil {
			return err
		}
		if from != rt.raffle.Status() {
			c.logger.Info("raffle status changed",
				"raffle_id", cmd.RaffleID,
				"from", from,
				"to", rt.raffle.Status(),
			)
		}
		snapshot = queries.NewInventorySnapshot(rt.raffle)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
