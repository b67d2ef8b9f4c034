package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const expiredPaymentNote = "reservation expired"

var ErrTicketMissing = errs.Mark(errs.New("ticket row missing for raffle"), errs.ErrInvariantViolation)

// raffleTx is one write transaction on a single raffle, holding its lock.
// Every ticket transition goes through it so the counters follow.
type raffleTx struct {
	shared.Tx
	raffle *raffle.Raffle
	now    time.Time
	logger *slog.Logger
}

func runInRaffle(
	ctx context.Context,
	uow shared.UnitOfWork,
	logger *slog.Logger,
	raffleID uuid.UUID,
	now time.Time,
	fn func(ctx context.Context, rt *raffleTx) error,
) error {
	return uow.WithinRaffle(ctx, raffleID, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Raffles().FindByID(ctx, raffleID)
		if err != nil {
			return shared.NotFoundAs(err, "raffle")
		}
		rt := &raffleTx{Tx: tx, raffle: r, now: now, logger: logger}
		if err := fn(ctx, rt); err != nil {
			return err
		}
		return rt.commit(ctx)
	})
}

// commit checks the counters against ticket state and stores the raffle.
func (rt *raffleTx) commit(ctx context.Context) error {
	if err := reconcile(ctx, rt.Tx, rt.raffle, rt.logger); err != nil {
		return err
	}
	return rt.Raffles().Save(ctx, rt.raffle)
}

func reconcile(ctx context.Context, tx shared.Tx, r *raffle.Raffle, logger *slog.Logger) error {
	actual, err := tx.Tickets().CountByState(ctx, r.ID())
	if err != nil {
		return err
	}
	if err := r.Reconcile(actual); err != nil {
		counts := r.Counts()
		logger.Error("raffle counters disagree with ticket states",
			"raffle_id", r.ID(),
			"counter_available", counts.Available,
			"counter_reserved", counts.Reserved,
			"counter_sold", counts.Sold,
			"tickets_available", actual.Available,
			"tickets_reserved", actual.Reserved,
			"tickets_sold", actual.Sold,
			"total", r.TotalTickets(),
			"stack", errs.ExtractStackLines(err, 8),
		)
		return err
	}
	return nil
}

func (rt *raffleTx) loadTickets(ctx context.Context, numbers []int) ([]*ticket.Ticket, error) {
	tickets, err := rt.Tickets().FindByNumbers(ctx, rt.raffle.ID(), numbers)
	if err != nil {
		return nil, err
	}
	if len(tickets) != len(numbers) {
		return nil, errs.Mark(
			errs.Newf("raffle %s: found %d of %d tickets", rt.raffle.ID(), len(tickets), len(numbers)),
			ErrTicketMissing,
		)
	}
	return tickets, nil
}

// reserve holds every ticket of res or none. All unavailable numbers are
// reported, not just the first.
func (rt *raffleTx) reserve(ctx context.Context, res *reservation.Reservation) error {
	tickets, err := rt.loadTickets(ctx, res.TicketNumbers())
	if err != nil {
		return err
	}
	var taken []int
	for _, t := range tickets {
		if t.State() != ticket.StateAvailable {
			taken = append(taken, t.Number())
		}
	}
	if len(taken) > 0 {
		return errs.Mark(errs.Newf("tickets %v are not available", taken), ticket.ErrNotAvailable)
	}

	if err := rt.Reservations().Create(ctx, res); err != nil {
		return err
	}
	for _, t := range tickets {
		if _, err := t.Reserve(res.BuyerRef(), res.ID(), rt.now, res.ExpiresAt()); err != nil {
			return err
		}
	}
	if err := rt.Tickets().Save(ctx, tickets...); err != nil {
		return err
	}
	return rt.raffle.Apply(ticket.TransitionReserve, len(tickets), rt.now)
}

// release returns every ticket of res to the pool. Tickets that are no longer
// reserved under res are an error.
func (rt *raffleTx) release(ctx context.Context, res *reservation.Reservation) (int, error) {
	tickets, err := rt.loadTickets(ctx, res.TicketNumbers())
	if err != nil {
		return 0, err
	}
	for _, t := range tickets {
		if _, err := t.Release(res.ID()); err != nil {
			return 0, err
		}
	}
	if err := rt.Tickets().Save(ctx, tickets...); err != nil {
		return 0, err
	}
	if err := rt.raffle.Apply(ticket.TransitionRelease, len(tickets), rt.now); err != nil {
		return 0, err
	}
	return len(tickets), nil
}

// settle sells the tickets of p and assigns bonus numbers when the raffle
// grants opportunities.
func (rt *raffleTx) settle(ctx context.Context, p *payment.Payment) error {
	tickets, err := rt.loadTickets(ctx, p.TicketNumbers())
	if err != nil {
		return err
	}
	bonus := rt.raffle.Settings().BonusCount()
	for _, t := range tickets {
		if _, err := t.Settle(p.BuyerRef(), p.ReservationID(), rt.now); err != nil {
			return err
		}
		if bonus > 0 {
			if err := t.AssignBonusNumbers(ticket.BonusNumbers(t.Number(), rt.raffle.TotalTickets(), bonus)); err != nil {
				return err
			}
		}
	}
	if err := rt.Tickets().Save(ctx, tickets...); err != nil {
		return err
	}
	return rt.raffle.Apply(ticket.TransitionSettle, len(tickets), rt.now)
}

// closePending rejects the pending payments of a reservation that is being
// closed without settlement.
func (rt *raffleTx) closePending(ctx context.Context, reservationID uuid.UUID, note string) error {
	payments, err := rt.Payments().ListByReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if !p.IsPending() {
			continue
		}
		if _, err := p.Reject(note, rt.now); err != nil {
			return err
		}
		if err := rt.Payments().Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

type expiry struct {
	ReservationIDs  []uuid.UUID
	ReleasedTickets int
}

// expireDue releases every active reservation of the raffle whose hold has
// lapsed at rt.now. Running it twice releases nothing the second time.
func (rt *raffleTx) expireDue(ctx context.Context) (expiry, error) {
	var out expiry
	lapsed, err := rt.Reservations().ListLapsed(ctx, rt.raffle.ID(), rt.now)
	if err != nil {
		return out, err
	}
	for _, res := range lapsed {
		tickets, err := rt.Tickets().FindByReservation(ctx, rt.raffle.ID(), res.ID())
		if err != nil {
			return out, err
		}
		released := 0
		for _, t := range tickets {
			if t.State() != ticket.StateReserved {
				continue
			}
			if _, err := t.Release(res.ID()); err != nil {
				return out, err
			}
			released++
		}
		if released > 0 {
			if err := rt.Tickets().Save(ctx, tickets...); err != nil {
				return out, err
			}
			if err := rt.raffle.Apply(ticket.TransitionRelease, released, rt.now); err != nil {
				return out, err
			}
		}
		if err := res.MarkExpired(rt.now); err != nil {
			return out, err
		}
		if err := rt.Reservations().Save(ctx, res); err != nil {
			return out, err
		}
		if err := rt.closePending(ctx, res.ID(), expiredPaymentNote); err != nil {
			return out, err
		}
		out.ReservationIDs = append(out.ReservationIDs, res.ID())
		out.ReleasedTickets += released
	}
	if len(lapsed) > 0 {
		rt.logger.Info("expired reservations released",
			"raffle_id", rt.raffle.ID(),
			"reservations", len(lapsed),
			"tickets", out.ReleasedTickets,
		)
	}
	return out, nil
}

// settlementErr keeps engine errors as they are and turns anything else
// (driver, commit, lock failures) into a retryable SettlementFailed.
func settlementErr(err error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindUnknown {
		return err
	}
	return errs.Mark(errs.Wrap(err, "settlement did not complete"), errs.ErrSettlementFailed)
}

func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
