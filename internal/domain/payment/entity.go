package payment

import (
	"slices"
	"strings"
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxNoteLength = 500

var (
	ErrEmptyReason  = errs.Mark(errs.New("rejection reason is required"), errs.ErrInvalidArgument)
	ErrNoteTooLong  = errs.Mark(errs.New("decision note is too long"), errs.ErrInvalidArgument)
	ErrNoTickets    = errs.Mark(errs.New("payment must cover at least one ticket"), errs.ErrInvalidArgument)
	ErrDecided      = errs.Mark(errs.New("payment already decided"), errs.ErrAlreadyDecided)
	ErrCorruptState = errs.Mark(errs.New("payment has an unknown status"), errs.ErrInvariantViolation)
)

// Payment is a claim of funds against the tickets of one reservation.
type Payment struct {
	id            uuid.UUID
	raffleID      uuid.UUID
	reservationID uuid.UUID
	ticketNumbers []int
	amount        Money
	method        Method
	buyerRef      string
	status        Status
	createdAt     time.Time
	decidedAt     *time.Time
	decisionNote  string
}

type NewParams struct {
	RaffleID      uuid.UUID
	ReservationID uuid.UUID
	TicketNumbers []int
	Amount        Money
	Method        Method
	BuyerRef      string
}

func New(p NewParams, now time.Time) (*Payment, error) {
	if len(p.TicketNumbers) == 0 {
		return nil, ErrNoTickets
	}
	if p.Amount <= 0 {
		return nil, errs.Mark(errs.Newf("amount must be positive, got %d", p.Amount), errs.ErrInvalidArgument)
	}
	if !p.Method.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown payment method %q", p.Method), errs.ErrInvalidArgument)
	}
	numbers := slices.Clone(p.TicketNumbers)
	slices.Sort(numbers)

	return &Payment{
		id:            uuid.New(),
		raffleID:      p.RaffleID,
		reservationID: p.ReservationID,
		ticketNumbers: numbers,
		amount:        p.Amount,
		method:        p.Method,
		buyerRef:      p.BuyerRef,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func Reconstruct(
	id, raffleID, reservationID uuid.UUID,
	ticketNumbers []int,
	amount Money,
	method Method,
	buyerRef string,
	status Status,
	createdAt time.Time,
	decidedAt *time.Time,
	decisionNote string,
) *Payment {
	return &Payment{
		id:            id,
		raffleID:      raffleID,
		reservationID: reservationID,
		ticketNumbers: ticketNumbers,
		amount:        amount,
		method:        method,
		buyerRef:      buyerRef,
		status:        status,
		createdAt:     createdAt,
		decidedAt:     decidedAt,
		decisionNote:  decisionNote,
	}
}

// Confirm moves a pending payment to Confirmed. It reports false when the
// payment was already confirmed, in which case nothing changes.
func (p *Payment) Confirm(notes string, now time.Time) (bool, error) {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNoteLength {
		return false, ErrNoteTooLong
	}
	return p.decide(StatusConfirmed, notes, now)
}

// Reject moves a pending payment to Rejected. A non-empty reason is required
// even when the call turns out to be a repeat.
func (p *Payment) Reject(reason string, now time.Time) (bool, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return false, ErrEmptyReason
	}
	if len(reason) > maxNoteLength {
		return false, ErrNoteTooLong
	}
	return p.decide(StatusRejected, reason, now)
}

func (p *Payment) decide(target Status, note string, now time.Time) (bool, error) {
	switch p.status {
	case StatusPending:
		p.status = target
		p.decidedAt = &now
		p.decisionNote = note
		return true, nil
	case target:
		return false, nil
	case StatusConfirmed, StatusRejected:
		return false, errs.Mark(errs.Newf("payment %s is already %s", p.id, p.status), ErrDecided)
	default:
		return false, errs.Mark(errs.Newf("payment %s has status %q", p.id, p.status), ErrCorruptState)
	}
}

func (p *Payment) IsPending() bool {
	return p.status == StatusPending
}

func (p *Payment) Clone() *Payment {
	c := *p
	c.ticketNumbers = slices.Clone(p.ticketNumbers)
	if p.decidedAt != nil {
		at := *p.decidedAt
		c.decidedAt = &at
	}
	return &c
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) RaffleID() uuid.UUID      { return p.raffleID }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) TicketNumbers() []int     { return slices.Clone(p.ticketNumbers) }
func (p *Payment) Amount() Money            { return p.amount }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) BuyerRef() string         { return p.buyerRef }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) DecidedAt() *time.Time    { return p.decidedAt }
func (p *Payment) DecisionNote() string     { return p.decisionNote }
