// Package memstore is the in-process UnitOfWork. Each raffle has its own
// RWMutex: write transactions hold it exclusively and stage changes in an
// overlay that is applied on commit and dropped on rollback.
package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommitHook runs before a write transaction is applied. A non-nil error
// rolls the transaction back and is returned to the caller.
type CommitHook func(raffleID uuid.UUID) error

type Store struct {
	mu           sync.RWMutex
	slots        map[uuid.UUID]*raffleSlot
	reservations map[uuid.UUID]uuid.UUID // reservation id -> raffle id
	payments     map[uuid.UUID]uuid.UUID // payment id -> raffle id
	hook         CommitHook
	logger       *slog.Logger
}

type raffleSlot struct {
	mu    sync.RWMutex
	state *raffleState // nil until the raffle is created
}

type raffleState struct {
	raffle       *raffle.Raffle
	tickets      []*ticket.Ticket // tickets[n-1] is number n
	reservations map[uuid.UUID]*reservation.Reservation
	payments     map[uuid.UUID]*payment.Payment
	paymentOrder []uuid.UUID
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		slots:        make(map[uuid.UUID]*raffleSlot),
		reservations: make(map[uuid.UUID]uuid.UUID),
		payments:     make(map[uuid.UUID]uuid.UUID),
		logger:       logger,
	}
}

func (s *Store) SetCommitHook(hook CommitHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = hook
}

func (s *Store) slot(raffleID uuid.UUID, create bool) *raffleSlot {
	s.mu.RLock()
	sl, ok := s.slots[raffleID]
	s.mu.RUnlock()
	if ok || !create {
		return sl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok = s.slots[raffleID]; !ok {
		sl = &raffleSlot{}
		s.slots[raffleID] = sl
	}
	return sl
}

func (s *Store) WithinRaffle(ctx context.Context, raffleID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sl := s.slot(raffleID, true)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	t := newWriteTx(s, raffleID, sl.state)
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	hook := s.hook
	s.mu.RUnlock()
	if hook != nil {
		if err := hook(raffleID); err != nil {
			s.logger.Warn("commit rejected, rolling back", "raffle_id", raffleID, "error", err.Error())
			return err
		}
	}

	sl.state = t.apply(sl.state)
	s.index(raffleID, t.dirty)
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := newReadTx(s)
	defer t.unlockAll()
	return fn(ctx, t)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &commandReads{store: s}
}

func (s *Store) index(raffleID uuid.UUID, o *overlay) {
	if len(o.reservations) == 0 && len(o.payments) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range o.reservations {
		s.reservations[id] = raffleID
	}
	for id := range o.payments {
		s.payments[id] = raffleID
	}
}

func (s *Store) raffleOf(m map[uuid.UUID]uuid.UUID, id uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raffleID, ok := m[id]
	return raffleID, ok
}

type commandReads struct {
	store *Store
}

func (r *commandReads) RaffleOfReservation(_ context.Context, reservationID uuid.UUID) (uuid.UUID, error) {
	if id, ok := r.store.raffleOf(r.store.reservations, reservationID); ok {
		return id, nil
	}
	return uuid.Nil, notFound("reservation not found")
}

func (r *commandReads) RaffleOfPayment(_ context.Context, paymentID uuid.UUID) (uuid.UUID, error) {
	if id, ok := r.store.raffleOf(r.store.payments, paymentID); ok {
		return id, nil
	}
	return uuid.Nil, notFound("payment not found")
}

func (r *commandReads) RafflesWithDueReservations(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	r.store.mu.RLock()
	ids := make([]uuid.UUID, 0, len(r.store.slots))
	slots := make([]*raffleSlot, 0, len(r.store.slots))
	for id, sl := range r.store.slots {
		ids = append(ids, id)
		slots = append(slots, sl)
	}
	r.store.mu.RUnlock()

	var due []uuid.UUID
	for i, sl := range slots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sl.mu.RLock()
		if sl.state != nil && hasLapsed(sl.state, now) {
			due = append(due, ids[i])
		}
		sl.mu.RUnlock()
	}
	slices.SortFunc(due, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return due, nil
}

func hasLapsed(st *raffleState, now time.Time) bool {
	for _, res := range st.reservations {
		if res.HasLapsed(now) {
			return true
		}
	}
	return false
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}
