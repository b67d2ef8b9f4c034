package memstore

import (
	"log/slog"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// overlay holds what a write transaction changed. Nothing in it is visible
// outside the transaction until apply.
type overlay struct {
	raffle       *raffle.Raffle
	created      bool
	freshTickets []*ticket.Ticket
	tickets      map[int]*ticket.Ticket
	reservations map[uuid.UUID]*reservation.Reservation
	payments     map[uuid.UUID]*payment.Payment
	paymentOrder []uuid.UUID
}

type tx struct {
	store *Store

	// write transactions
	raffleID uuid.UUID
	base     *raffleState
	dirty    *overlay

	// read transactions
	locked map[uuid.UUID]*raffleSlot
}

func newWriteTx(s *Store, raffleID uuid.UUID, base *raffleState) *tx {
	return &tx{
		store:    s,
		raffleID: raffleID,
		base:     base,
		dirty: &overlay{
			tickets:      make(map[int]*ticket.Ticket),
			reservations: make(map[uuid.UUID]*reservation.Reservation),
			payments:     make(map[uuid.UUID]*payment.Payment),
		},
	}
}

func newReadTx(s *Store) *tx {
	return &tx{store: s, locked: make(map[uuid.UUID]*raffleSlot)}
}

func (t *tx) Raffles() shared.RaffleRepository           { return &raffleRepo{t} }
func (t *tx) Tickets() shared.TicketRepository           { return &ticketRepo{t} }
func (t *tx) Reservations() shared.ReservationRepository { return &reservationRepo{t} }
func (t *tx) Payments() shared.PaymentRepository         { return &paymentRepo{t} }

func (t *tx) writable() bool {
	return t.dirty != nil
}

// state returns the committed state of a raffle, read-locking it for the rest
// of a read transaction. Write transactions only see their own raffle.
func (t *tx) state(raffleID uuid.UUID) *raffleState {
	if t.writable() {
		if raffleID != t.raffleID {
			return nil
		}
		return t.base
	}
	if sl, ok := t.locked[raffleID]; ok {
		return sl.state
	}
	sl := t.store.slot(raffleID, false)
	if sl == nil {
		return nil
	}
	sl.mu.RLock()
	t.locked[raffleID] = sl
	return sl.state
}

func (t *tx) unlockAll() {
	for id, sl := range t.locked {
		sl.mu.RUnlock()
		delete(t.locked, id)
	}
}

// own reports whether raffleID is the raffle this write transaction locked.
func (t *tx) own(raffleID uuid.UUID) bool {
	return t.writable() && raffleID == t.raffleID
}

func (t *tx) checkWrite(raffleID uuid.UUID) error {
	if !t.writable() {
		return infra.WrapRepoErr(slog.Default(), infra.KindReadOnly, "write in read-only transaction", nil)
	}
	if raffleID != t.raffleID {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "write to a raffle outside the transaction lock", nil)
	}
	return nil
}

func (t *tx) currentRaffle(raffleID uuid.UUID) *raffle.Raffle {
	if t.own(raffleID) && t.dirty.raffle != nil {
		return t.dirty.raffle
	}
	if st := t.state(raffleID); st != nil {
		return st.raffle
	}
	return nil
}

func (t *tx) ticketCount(raffleID uuid.UUID) int {
	if t.own(raffleID) && t.dirty.freshTickets != nil {
		return len(t.dirty.freshTickets)
	}
	if st := t.state(raffleID); st != nil {
		return len(st.tickets)
	}
	return 0
}

func (t *tx) ticketAt(raffleID uuid.UUID, number int) *ticket.Ticket {
	if number < 1 || number > t.ticketCount(raffleID) {
		return nil
	}
	if t.own(raffleID) {
		if tk, ok := t.dirty.tickets[number]; ok {
			return tk
		}
		if t.dirty.freshTickets != nil {
			return t.dirty.freshTickets[number-1]
		}
	}
	return t.state(raffleID).tickets[number-1]
}

// eachTicket visits the raffle's tickets in number order.
func (t *tx) eachTicket(raffleID uuid.UUID, fn func(*ticket.Ticket) bool) {
	n := t.ticketCount(raffleID)
	for i := 1; i <= n; i++ {
		if !fn(t.ticketAt(raffleID, i)) {
			return
		}
	}
}

func (t *tx) reservationByID(id uuid.UUID) *reservation.Reservation {
	if t.writable() {
		if res, ok := t.dirty.reservations[id]; ok {
			return res
		}
		if t.base != nil {
			return t.base.reservations[id]
		}
		return nil
	}
	raffleID, ok := t.store.raffleOf(t.store.reservations, id)
	if !ok {
		return nil
	}
	if st := t.state(raffleID); st != nil {
		return st.reservations[id]
	}
	return nil
}

// eachReservation visits the raffle's reservations, staged ones included.
func (t *tx) eachReservation(raffleID uuid.UUID, fn func(*reservation.Reservation)) {
	st := t.state(raffleID)
	if st != nil {
		for id, res := range st.reservations {
			if t.own(raffleID) {
				if staged, ok := t.dirty.reservations[id]; ok {
					res = staged
				}
			}
			fn(res)
		}
	}
	if t.own(raffleID) {
		for id, res := range t.dirty.reservations {
			if st != nil {
				if _, ok := st.reservations[id]; ok {
					continue
				}
			}
			fn(res)
		}
	}
}

func (t *tx) paymentByID(id uuid.UUID) *payment.Payment {
	if t.writable() {
		if p, ok := t.dirty.payments[id]; ok {
			return p
		}
		if t.base != nil {
			return t.base.payments[id]
		}
		return nil
	}
	raffleID, ok := t.store.raffleOf(t.store.payments, id)
	if !ok {
		return nil
	}
	if st := t.state(raffleID); st != nil {
		return st.payments[id]
	}
	return nil
}

// eachPayment visits the raffle's payments in creation order.
func (t *tx) eachPayment(raffleID uuid.UUID, fn func(*payment.Payment)) {
	if st := t.state(raffleID); st != nil {
		for _, id := range st.paymentOrder {
			p := st.payments[id]
			if t.own(raffleID) {
				if staged, ok := t.dirty.payments[id]; ok {
					p = staged
				}
			}
			fn(p)
		}
	}
	if t.own(raffleID) {
		for _, id := range t.dirty.paymentOrder {
			fn(t.dirty.payments[id])
		}
	}
}

// apply folds the overlay into base and returns the new committed state.
func (t *tx) apply(base *raffleState) *raffleState {
	o := t.dirty
	st := base
	if o.created {
		st = &raffleState{
			reservations: make(map[uuid.UUID]*reservation.Reservation),
			payments:     make(map[uuid.UUID]*payment.Payment),
		}
	}
	if st == nil {
		return nil
	}
	if o.raffle != nil {
		st.raffle = o.raffle
	}
	if o.freshTickets != nil {
		st.tickets = o.freshTickets
	}
	for n, tk := range o.tickets {
		st.tickets[n-1] = tk
	}
	for id, res := range o.reservations {
		st.reservations[id] = res
	}
	for id, p := range o.payments {
		st.payments[id] = p
	}
	st.paymentOrder = append(st.paymentOrder, o.paymentOrder...)
	return st
}
