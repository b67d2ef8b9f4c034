package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/queries"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const cancelledPaymentNote = "reservation cancelled"

var ErrInvalidTTL = errs.Mark(errs.New("reservation ttl cannot be negative"), errs.ErrInvalidArgument)

type ReserveCommand struct {
	RaffleID  uuid.UUID
	BuyerRef  string
	Selection reservation.Selection
	// TTL overrides the raffle's reservation time when positive.
	TTL time.Duration
}

type ReservationCommands interface {
	Reserve(ctx context.Context, cmd ReserveCommand) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	lucky  *reservation.LuckyMachine
	logger *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	clock clock.Clock,
	lucky *reservation.LuckyMachine,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		clock:  clock,
		lucky:  lucky,
		logger: logger,
	}
}

func (c *reservationCommandsImpl) Reserve(ctx context.Context, cmd ReserveCommand) (*queries.ReservationView, error) {
	buyer, err := reservation.NewBuyerRef(cmd.BuyerRef)
	if err != nil {
		return nil, err
	}
	if cmd.TTL < 0 {
		return nil, ErrInvalidTTL
	}
	if cmd.Selection == nil {
		return nil, reservation.ErrNoNumbers
	}
	now := truncate(c.clock.Now())

	var view *queries.ReservationView
	err = runInRaffle(ctx, c.uow, c.logger, cmd.RaffleID, now, func(ctx context.Context, rt *raffleTx) error {
		if _, err := rt.expireDue(ctx); err != nil {
			return err
		}
		if err := rt.raffle.CheckAcceptsReservations(); err != nil {
			return err
		}

		settings := rt.raffle.Settings()
		held, err := rt.Tickets().CountHeldByBuyer(ctx, cmd.RaffleID, buyer.String())
		if err != nil {
			return err
		}
		if err := reservation.CheckPersonalLimit(settings.MaxTicketsPerPerson, held, cmd.Selection.Requested()); err != nil {
			return err
		}

		numbers, err := c.selectNumbers(ctx, rt, cmd.Selection)
		if err != nil {
			return err
		}

		ttl := settings.ReservationTime
		if cmd.TTL > 0 {
			ttl = cmd.TTL
		}
		res, err := reservation.NewReservation(cmd.RaffleID, buyer, numbers, now, ttl)
		if err != nil {
			return err
		}
		if err := rt.reserve(ctx, res); err != nil {
			return err
		}
		view = queries.NewReservationView(res)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("tickets reserved",
		"raffle_id", cmd.RaffleID,
		"reservation_id", view.ID,
		"tickets", len(view.TicketNumbers),
		"expires_at", view.ExpiresAt,
	)
	return view, nil
}

func (c *reservationCommandsImpl) selectNumbers(ctx context.Context, rt *raffleTx, sel reservation.Selection) ([]int, error) {
	switch s := sel.(type) {
	case reservation.ByNumbers:
		return reservation.NormalizeNumbers(s.Numbers, rt.raffle.TotalTickets())
	case reservation.ByCount:
		if s.Count < 1 {
			return nil, reservation.ErrInvalidCount
		}
		if available := rt.raffle.Counts().Available; available < s.Count {
			return nil, errs.Mark(
				errs.Newf("requested %d, only %d available", s.Count, available),
				reservation.ErrInsufficientInventory,
			)
		}
		var picker reservation.Picker = reservation.LowestFirst{}
		limit := s.Count
		if s.Lucky {
			picker = c.lucky
			limit = 0
		}
		available, err := rt.Tickets().AvailableNumbers(ctx, rt.raffle.ID(), limit)
		if err != nil {
			return nil, err
		}
		return picker.Pick(available, s.Count)
	default:
		return nil, errs.Mark(errs.Newf("unsupported selection %T", sel), errs.ErrInvalidArgument)
	}
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID) (*queries.ReservationView, error) {
	raffleID, err := c.uow.CommandReads().RaffleOfReservation(ctx, reservationID)
	if err != nil {
		return nil, shared.NotFoundAs(err, "reservation")
	}
	now := truncate(c.clock.Now())

	var (
		view     *queries.ReservationView
		released int
	)
	err = runInRaffle(ctx, c.uow, c.logger, raffleID, now, func(ctx context.Context, rt *raffleTx) error {
		// A lapsed hold expires here and the cancel below becomes a no-op.
		if _, err := rt.expireDue(ctx); err != nil {
			return err
		}
		res, err := rt.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return shared.NotFoundAs(err, "reservation")
		}
		released = 0
		if res.IsActive() {
			if released, err = rt.release(ctx, res); err != nil {
				return err
			}
			if err := res.MarkReleased(now); err != nil {
				return err
			}
			if err := rt.Reservations().Save(ctx, res); err != nil {
				return err
			}
			if err := rt.closePending(ctx, res.ID(), cancelledPaymentNote); err != nil {
				return err
			}
		}
		view = queries.NewReservationView(res)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if released > 0 {
		c.logger.Info("reservation cancelled",
			"raffle_id", raffleID,
			"reservation_id", reservationID,
			"tickets", released,
		)
	}
	return view, nil
}
