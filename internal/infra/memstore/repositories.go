package memstore

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"

	"github.com/google/uuid"
)

type raffleRepo struct{ tx *tx }

func (r *raffleRepo) Create(_ context.Context, rf *raffle.Raffle) error {
	if err := r.tx.checkWrite(rf.ID()); err != nil {
		return err
	}
	if r.tx.currentRaffle(rf.ID()) != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "raffle already exists", nil)
	}
	r.tx.dirty.raffle = rf.Clone()
	r.tx.dirty.created = true
	return nil
}

func (r *raffleRepo) FindByID(_ context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	rf := r.tx.currentRaffle(id)
	if rf == nil {
		return nil, notFound("raffle not found")
	}
	return rf.Clone(), nil
}

func (r *raffleRepo) Save(_ context.Context, rf *raffle.Raffle) error {
	if err := r.tx.checkWrite(rf.ID()); err != nil {
		return err
	}
	if r.tx.currentRaffle(rf.ID()) == nil {
		return notFound("raffle not found")
	}
	r.tx.dirty.raffle = rf.Clone()
	return nil
}

type ticketRepo struct{ tx *tx }

func (r *ticketRepo) CreateRange(_ context.Context, raffleID uuid.UUID, total int) error {
	if err := r.tx.checkWrite(raffleID); err != nil {
		return err
	}
	if r.tx.ticketCount(raffleID) > 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "tickets already exist", nil)
	}
	fresh := make([]*ticket.Ticket, total)
	for i := range fresh {
		tk, err := ticket.New(raffleID, i+1)
		if err != nil {
			return err
		}
		fresh[i] = tk
	}
	r.tx.dirty.freshTickets = fresh
	return nil
}

func (r *ticketRepo) FindByNumbers(_ context.Context, raffleID uuid.UUID, numbers []int) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(numbers))
	for _, n := range numbers {
		if tk := r.tx.ticketAt(raffleID, n); tk != nil {
			out = append(out, tk.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *ticket.Ticket) int { return cmp.Compare(a.Number(), b.Number()) })
	return out, nil
}

func (r *ticketRepo) FindByReservation(_ context.Context, raffleID, reservationID uuid.UUID) ([]*ticket.Ticket, error) {
	var out []*ticket.Ticket
	r.tx.eachTicket(raffleID, func(tk *ticket.Ticket) bool {
		if tk.State() != ticket.StateAvailable && tk.ReservationID() == reservationID {
			out = append(out, tk.Clone())
		}
		return true
	})
	return out, nil
}

func (r *ticketRepo) AvailableNumbers(_ context.Context, raffleID uuid.UUID, limit int) ([]int, error) {
	var out []int
	r.tx.eachTicket(raffleID, func(tk *ticket.Ticket) bool {
		if tk.State() == ticket.StateAvailable {
			out = append(out, tk.Number())
		}
		return limit <= 0 || len(out) < limit
	})
	return out, nil
}

func (r *ticketRepo) ListHeld(_ context.Context, raffleID uuid.UUID) ([]*ticket.Ticket, error) {
	var out []*ticket.Ticket
	r.tx.eachTicket(raffleID, func(tk *ticket.Ticket) bool {
		if tk.IsHeld() {
			out = append(out, tk.Clone())
		}
		return true
	})
	return out, nil
}

func (r *ticketRepo) CountHeldByBuyer(_ context.Context, raffleID uuid.UUID, buyerRef string) (int, error) {
	n := 0
	r.tx.eachTicket(raffleID, func(tk *ticket.Ticket) bool {
		if tk.IsHeld() && tk.BuyerRef() == buyerRef {
			n++
		}
		return true
	})
	return n, nil
}

func (r *ticketRepo) CountByState(_ context.Context, raffleID uuid.UUID) (ticket.Counts, error) {
	var c ticket.Counts
	r.tx.eachTicket(raffleID, func(tk *ticket.Ticket) bool {
		c.Add(tk.State(), 1)
		return true
	})
	return c, nil
}

func (r *ticketRepo) Save(_ context.Context, tickets ...*ticket.Ticket) error {
	for _, tk := range tickets {
		if err := r.tx.checkWrite(tk.RaffleID()); err != nil {
			return err
		}
		if r.tx.ticketAt(tk.RaffleID(), tk.Number()) == nil {
			return notFound("ticket not found")
		}
		r.tx.dirty.tickets[tk.Number()] = tk.Clone()
	}
	return nil
}

type reservationRepo struct{ tx *tx }

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if err := r.tx.checkWrite(res.RaffleID()); err != nil {
		return err
	}
	if r.tx.reservationByID(res.ID()) != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "reservation already exists", nil)
	}
	r.tx.dirty.reservations[res.ID()] = res.Clone()
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res := r.tx.reservationByID(id)
	if res == nil {
		return nil, notFound("reservation not found")
	}
	return res.Clone(), nil
}

func (r *reservationRepo) ListLapsed(_ context.Context, raffleID uuid.UUID, now time.Time) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	r.tx.eachReservation(raffleID, func(res *reservation.Reservation) {
		if res.HasLapsed(now) {
			out = append(out, res.Clone())
		}
	})
	slices.SortFunc(out, func(a, b *reservation.Reservation) int {
		if c := a.ExpiresAt().Compare(b.ExpiresAt()); c != 0 {
			return c
		}
		ai, bi := a.ID(), b.ID()
		return slices.Compare(ai[:], bi[:])
	})
	return out, nil
}

func (r *reservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	if err := r.tx.checkWrite(res.RaffleID()); err != nil {
		return err
	}
	if r.tx.reservationByID(res.ID()) == nil {
		return notFound("reservation not found")
	}
	r.tx.dirty.reservations[res.ID()] = res.Clone()
	return nil
}

type paymentRepo struct{ tx *tx }

func (r *paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if err := r.tx.checkWrite(p.RaffleID()); err != nil {
		return err
	}
	if r.tx.paymentByID(p.ID()) != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "payment already exists", nil)
	}
	if r.tx.reservationByID(p.ReservationID()) == nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "payment references unknown reservation", nil)
	}
	r.tx.dirty.payments[p.ID()] = p.Clone()
	r.tx.dirty.paymentOrder = append(r.tx.dirty.paymentOrder, p.ID())
	return nil
}

func (r *paymentRepo) FindByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	p := r.tx.paymentByID(id)
	if p == nil {
		return nil, notFound("payment not found")
	}
	return p.Clone(), nil
}

func (r *paymentRepo) ListByReservation(_ context.Context, reservationID uuid.UUID) ([]*payment.Payment, error) {
	res := r.tx.reservationByID(reservationID)
	if res == nil {
		return nil, nil
	}
	var out []*payment.Payment
	r.tx.eachPayment(res.RaffleID(), func(p *payment.Payment) {
		if p.ReservationID() == reservationID {
			out = append(out, p.Clone())
		}
	})
	return out, nil
}

func (r *paymentRepo) ListByRaffle(_ context.Context, raffleID uuid.UUID, status *payment.Status) ([]*payment.Payment, error) {
	out := []*payment.Payment{}
	r.tx.eachPayment(raffleID, func(p *payment.Payment) {
		if status == nil || p.Status() == *status {
			out = append(out, p.Clone())
		}
	})
	return out, nil
}

func (r *paymentRepo) Save(_ context.Context, p *payment.Payment) error {
	if err := r.tx.checkWrite(p.RaffleID()); err != nil {
		return err
	}
	if r.tx.paymentByID(p.ID()) == nil {
		return notFound("payment not found")
	}
	r.tx.dirty.payments[p.ID()] = p.Clone()
	return nil
}
