package request

import (
	"errors"
	"time"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

var errSelectionRequired = errors.New("either count or numbers is required, not both")

type ReserveRequest struct {
	BuyerRef   string `json:"buyer_ref" binding:"required"`
	Count      *int   `json:"count,omitempty" binding:"omitempty,min=1"`
	Lucky      bool   `json:"lucky,omitempty"`
	Numbers    []int  `json:"numbers,omitempty" binding:"omitempty,dive,min=1"`
	TTLMinutes *int   `json:"ttl_minutes,omitempty" binding:"omitempty,min=1"`
}

func (r *ReserveRequest) ToCommand(raffleID uuid.UUID) (commands.ReserveCommand, error) {
	var sel reservation.Selection
	switch {
	case r.Count != nil && len(r.Numbers) == 0:
		sel = reservation.ByCount{Count: *r.Count, Lucky: r.Lucky}
	case r.Count == nil && len(r.Numbers) > 0:
		sel = reservation.ByNumbers{Numbers: r.Numbers}
	default:
		return commands.ReserveCommand{}, errSelectionRequired
	}

	cmd := commands.ReserveCommand{
		RaffleID:  raffleID,
		BuyerRef:  r.BuyerRef,
		Selection: sel,
	}
	if r.TTLMinutes != nil {
		cmd.TTL = time.Duration(*r.TTLMinutes) * time.Minute
	}
	return cmd, nil
}
