package raffle

import (
	"time"

	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxTickets bounds a single raffle's inventory.
const MaxTickets = 1_000_000

var (
	ErrInvalidTotal         = errs.Mark(errs.New("total tickets out of range"), errs.ErrInvalidArgument)
	ErrInvalidInitialStatus = errs.Mark(errs.New("raffle must start as draft, scheduled or active"), errs.ErrInvalidArgument)
	ErrStatusTransition     = errs.Mark(errs.New("raffle status transition not allowed"), errs.ErrInvalidState)
	ErrNotAcceptingHolds    = errs.Mark(errs.New("raffle is not accepting reservations"), errs.ErrInvalidState)
	ErrCounterDrift         = errs.Mark(errs.New("raffle counters disagree with tickets"), errs.ErrInvariantViolation)
)

// Raffle holds the per-raffle counters. Counters only move through Apply, one
// ticket transition at a time, and are checked against ticket state by Reconcile.
type Raffle struct {
	id        uuid.UUID
	total     int
	counts    ticket.Counts
	status    Status
	settings  Settings
	createdAt time.Time
	updatedAt time.Time
}

func New(id uuid.UUID, total int, settings Settings, status Status, now time.Time) (*Raffle, error) {
	if total < 1 || total > MaxTickets {
		return nil, errs.Mark(errs.Newf("total tickets %d not in [1, %d]", total, MaxTickets), ErrInvalidTotal)
	}
	if status == "" {
		status = StatusActive
	}
	switch status {
	case StatusDraft, StatusScheduled, StatusActive:
	default:
		return nil, ErrInvalidInitialStatus
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := settings.validateFor(total); err != nil {
		return nil, err
	}
	return &Raffle{
		id:        id,
		total:     total,
		counts:    ticket.Counts{Available: total},
		status:    status,
		settings:  settings,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	total int,
	counts ticket.Counts,
	status Status,
	settings Settings,
	createdAt, updatedAt time.Time,
) *Raffle {
	return &Raffle{
		id:        id,
		total:     total,
		counts:    counts,
		status:    status,
		settings:  settings,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Apply records n tickets making transition tr and re-derives the status.
func (r *Raffle) Apply(tr ticket.Transition, n int, now time.Time) error {
	if n == 0 {
		return nil
	}
	next := r.counts
	next.Add(tr.From, -n)
	next.Add(tr.To, n)
	if next.Available < 0 || next.Reserved < 0 || next.Sold < 0 || next.Total() != r.total {
		return errs.Mark(
			errs.Newf("applying %s->%s x%d to %+v breaks counters (total %d)", tr.From, tr.To, n, r.counts, r.total),
			ErrCounterDrift,
		)
	}
	r.counts = next
	r.deriveStatus()
	r.updatedAt = now
	return nil
}

// Reconcile checks the counters against counts taken from ticket state.
func (r *Raffle) Reconcile(actual ticket.Counts) error {
	if actual != r.counts || actual.Total() != r.total {
		return errs.Mark(
			errs.Newf("raffle %s counters %+v, tickets %+v, total %d", r.id, r.counts, actual, r.total),
			ErrCounterDrift,
		)
	}
	return nil
}

func (r *Raffle) deriveStatus() {
	switch r.status {
	case StatusActive, StatusPaused:
		if r.counts.Available == 0 && r.counts.Sold > 0 {
			r.status = StatusSoldOut
		}
	case StatusSoldOut:
		if r.counts.Available > 0 {
			r.status = StatusActive
		}
	}
}

// ChangeStatus applies an externally requested lifecycle transition.
func (r *Raffle) ChangeStatus(target Status, now time.Time) error {
	if r.status == target {
		return nil
	}
	if !r.status.CanTransitionTo(target) {
		return errs.Mark(errs.Newf("cannot move raffle from %s to %s", r.status, target), ErrStatusTransition)
	}
	r.status = target
	r.deriveStatus()
	r.updatedAt = now
	return nil
}

// CheckAcceptsReservations passes a sold-out raffle through: an empty
// inventory is reported by the ticket selection, not as a lifecycle error.
func (r *Raffle) CheckAcceptsReservations() error {
	switch r.status {
	case StatusActive, StatusSoldOut:
		return nil
	default:
		return errs.Mark(errs.Newf("raffle %s is %s", r.id, r.status), ErrNotAcceptingHolds)
	}
}

func (r *Raffle) Clone() *Raffle {
	c := *r
	return &c
}

func (r *Raffle) ID() uuid.UUID         { return r.id }
func (r *Raffle) TotalTickets() int     { return r.total }
func (r *Raffle) Counts() ticket.Counts { return r.counts }
func (r *Raffle) Status() Status        { return r.status }
func (r *Raffle) Settings() Settings    { return r.settings }
func (r *Raffle) CreatedAt() time.Time  { return r.createdAt }
func (r *Raffle) UpdatedAt() time.Time  { return r.updatedAt }
