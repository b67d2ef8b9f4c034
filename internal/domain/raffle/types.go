package raffle

import (
	"math"
	"time"

	"raffle-engine/internal/pkg/errs"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusSoldOut   Status = "sold_out"
	StatusDrawn     Status = "drawn"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusPaused,
		StatusSoldOut, StatusDrawn, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// externalTransitions lists the status changes an operator may request.
// SoldOut is never a target here: it is derived from inventory.
var externalTransitions = map[Status][]Status{
	StatusDraft:     {StatusScheduled, StatusActive, StatusCancelled},
	StatusScheduled: {StatusActive, StatusCancelled},
	StatusActive:    {StatusPaused, StatusDrawn, StatusCancelled},
	StatusPaused:    {StatusActive, StatusDrawn, StatusCancelled},
	StatusSoldOut:   {StatusDrawn, StatusCancelled},
	StatusDrawn:     {StatusCompleted},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range externalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

var ErrInvalidSettings = errs.Mark(errs.New("invalid raffle settings"), errs.ErrInvalidArgument)

// MaxOpportunities bounds the bonus numbers granted per purchased ticket.
const MaxOpportunities = 1000

type Settings struct {
	ReservationTime      time.Duration
	MaxTicketsPerPerson  int // 0 means unlimited
	OpportunitiesEnabled bool
	OpportunitiesCount   int
	TicketPriceCents     int64
}

func (s Settings) Validate() error {
	if s.ReservationTime <= 0 {
		return errs.Mark(errs.New("reservation time must be positive"), ErrInvalidSettings)
	}
	if s.MaxTicketsPerPerson < 0 {
		return errs.Mark(errs.New("max tickets per person cannot be negative"), ErrInvalidSettings)
	}
	if s.OpportunitiesEnabled && s.OpportunitiesCount < 1 {
		return errs.Mark(errs.New("opportunities count must be at least 1 when enabled"), ErrInvalidSettings)
	}
	if s.OpportunitiesCount < 0 || s.OpportunitiesCount > MaxOpportunities {
		return errs.Mark(errs.Newf("opportunities count %d not in [0, %d]", s.OpportunitiesCount, MaxOpportunities), ErrInvalidSettings)
	}
	if s.TicketPriceCents < 0 {
		return errs.Mark(errs.New("ticket price cannot be negative"), ErrInvalidSettings)
	}
	return nil
}

// validateFor checks that the highest bonus number, total*(count+1), still
// fits the int32 columns tickets are stored in.
func (s Settings) validateFor(total int) error {
	if int64(total)*int64(s.BonusCount()+1) > math.MaxInt32 {
		return errs.Mark(errs.Newf("%d tickets with %d opportunities each exceed the number range", total, s.BonusCount()), ErrInvalidSettings)
	}
	return nil
}

// BonusCount is the number of opportunity numbers granted per purchased ticket.
func (s Settings) BonusCount() int {
	if !s.OpportunitiesEnabled {
		return 0
	}
	return s.OpportunitiesCount
}
