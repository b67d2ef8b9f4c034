package ticket

import (
	"slices"
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber   = errs.Mark(errs.New("ticket number must be positive"), errs.ErrInvalidArgument)
	ErrNotAvailable    = errs.Mark(errs.New("ticket is not available"), errs.ErrTicketUnavailable)
	ErrNotReserved     = errs.Mark(errs.New("ticket is not reserved"), errs.ErrInvalidState)
	ErrReservedByOther = errs.Mark(errs.New("ticket is reserved under another reservation"), errs.ErrInvalidState)
	ErrBonusAssigned   = errs.Mark(errs.New("bonus numbers already assigned"), errs.ErrInvalidState)
)

type Ticket struct {
	raffleID      uuid.UUID
	number        int
	state         State
	buyerRef      string
	reservationID uuid.UUID
	reservedAt    *time.Time
	expiresAt     *time.Time
	paidAt        *time.Time
	bonusNumbers  []int
}

func New(raffleID uuid.UUID, number int) (*Ticket, error) {
	if number < 1 {
		return nil, ErrInvalidNumber
	}
	return &Ticket{
		raffleID: raffleID,
		number:   number,
		state:    StateAvailable,
	}, nil
}

func Reconstruct(
	raffleID uuid.UUID,
	number int,
	state State,
	buyerRef string,
	reservationID uuid.UUID,
	reservedAt, expiresAt, paidAt *time.Time,
	bonusNumbers []int,
) *Ticket {
	return &Ticket{
		raffleID:      raffleID,
		number:        number,
		state:         state,
		buyerRef:      buyerRef,
		reservationID: reservationID,
		reservedAt:    reservedAt,
		expiresAt:     expiresAt,
		paidAt:        paidAt,
		bonusNumbers:  bonusNumbers,
	}
}

func (t *Ticket) Reserve(buyerRef string, reservationID uuid.UUID, now, expiresAt time.Time) (Transition, error) {
	if t.state != StateAvailable {
		return Transition{}, errs.Mark(errs.Newf("ticket %d is %s", t.number, t.state), ErrNotAvailable)
	}
	t.state = StateReserved
	t.buyerRef = buyerRef
	t.reservationID = reservationID
	t.reservedAt = &now
	t.expiresAt = &expiresAt
	return TransitionReserve, nil
}

func (t *Ticket) Release(reservationID uuid.UUID) (Transition, error) {
	if err := t.checkReservedUnder(reservationID); err != nil {
		return Transition{}, err
	}
	t.state = StateAvailable
	t.buyerRef = ""
	t.reservationID = uuid.Nil
	t.reservedAt = nil
	t.expiresAt = nil
	return TransitionRelease, nil
}

func (t *Ticket) Settle(buyerRef string, reservationID uuid.UUID, now time.Time) (Transition, error) {
	if err := t.checkReservedUnder(reservationID); err != nil {
		return Transition{}, err
	}
	if t.buyerRef != buyerRef {
		return Transition{}, errs.Mark(errs.Newf("ticket %d is reserved for another buyer", t.number), ErrReservedByOther)
	}
	t.state = StateSold
	t.expiresAt = nil
	t.paidAt = &now
	return TransitionSettle, nil
}

// AssignBonusNumbers sets the opportunity numbers once; they never change afterwards.
func (t *Ticket) AssignBonusNumbers(numbers []int) error {
	if len(t.bonusNumbers) > 0 {
		return ErrBonusAssigned
	}
	t.bonusNumbers = slices.Clone(numbers)
	return nil
}

func (t *Ticket) checkReservedUnder(reservationID uuid.UUID) error {
	if t.state != StateReserved {
		return errs.Mark(errs.Newf("ticket %d is %s", t.number, t.state), ErrNotReserved)
	}
	if t.reservationID != reservationID {
		return errs.Mark(errs.Newf("ticket %d belongs to reservation %s", t.number, t.reservationID), ErrReservedByOther)
	}
	return nil
}

// IsDue reports whether a reserved ticket's hold has lapsed at now.
func (t *Ticket) IsDue(now time.Time) bool {
	return t.state == StateReserved && t.expiresAt != nil && !t.expiresAt.After(now)
}

func (t *Ticket) IsHeld() bool {
	return t.state != StateAvailable
}

func (t *Ticket) Clone() *Ticket {
	c := *t
	c.bonusNumbers = slices.Clone(t.bonusNumbers)
	return &c
}

func (t *Ticket) RaffleID() uuid.UUID              { return t.raffleID }
func (t *Ticket) Number() int                      { return t.number }
func (t *Ticket) State() State                     { return t.state }
func (t *Ticket) BuyerRef() string                 { return t.buyerRef }
func (t *Ticket) ReservationID() uuid.UUID         { return t.reservationID }
func (t *Ticket) ReservedAt() *time.Time           { return t.reservedAt }
func (t *Ticket) ReservationExpiresAt() *time.Time { return t.expiresAt }
func (t *Ticket) PaidAt() *time.Time               { return t.paidAt }
func (t *Ticket) BonusNumbers() []int              { return slices.Clone(t.bonusNumbers) }
