package reservation

import (
	"slices"
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTTL = errs.Mark(errs.New("reservation time must be positive"), errs.ErrInvalidArgument)
	ErrNotActive  = errs.Mark(errs.New("reservation is no longer active"), errs.ErrInvalidState)
)

// Reservation groups the tickets one buyer holds from one request.
type Reservation struct {
	id        uuid.UUID
	raffleID  uuid.UUID
	numbers   []int
	buyerRef  BuyerRef
	status    Status
	createdAt time.Time
	expiresAt time.Time
	closedAt  *time.Time
}

func NewReservation(raffleID uuid.UUID, buyer BuyerRef, numbers []int, now time.Time, ttl time.Duration) (*Reservation, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}
	if buyer.String() == "" {
		return nil, ErrEmptyBuyerRef
	}
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	return &Reservation{
		id:        uuid.New(),
		raffleID:  raffleID,
		numbers:   sorted,
		buyerRef:  buyer,
		status:    StatusActive,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructReservation(
	id, raffleID uuid.UUID,
	numbers []int,
	buyerRef string,
	status Status,
	createdAt, expiresAt time.Time,
	closedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		raffleID:  raffleID,
		numbers:   numbers,
		buyerRef:  BuyerRef{value: buyerRef},
		status:    status,
		createdAt: createdAt,
		expiresAt: expiresAt,
		closedAt:  closedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// HasLapsed reports whether an active hold is past its expiry at now.
func (r *Reservation) HasLapsed(now time.Time) bool {
	return r.IsActive() && !r.expiresAt.After(now)
}

func (r *Reservation) MarkSettled(now time.Time) error {
	return r.close(StatusSettled, now)
}

func (r *Reservation) MarkReleased(now time.Time) error {
	return r.close(StatusReleased, now)
}

func (r *Reservation) MarkExpired(now time.Time) error {
	return r.close(StatusExpired, now)
}

func (r *Reservation) close(status Status, now time.Time) error {
	if !r.IsActive() {
		return errs.Mark(errs.Newf("reservation %s is %s", r.id, r.status), ErrNotActive)
	}
	r.status = status
	r.closedAt = &now
	return nil
}

func (r *Reservation) Clone() *Reservation {
	c := *r
	c.numbers = slices.Clone(r.numbers)
	return &c
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RaffleID() uuid.UUID  { return r.raffleID }
func (r *Reservation) TicketNumbers() []int { return slices.Clone(r.numbers) }
func (r *Reservation) BuyerRef() string     { return r.buyerRef.String() }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }
func (r *Reservation) ClosedAt() *time.Time { return r.closedAt }
