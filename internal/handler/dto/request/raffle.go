package request

import (
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/pkg/patch"
	"raffle-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitializeInventoryRequest struct {
	TotalTickets           int     `json:"total_tickets" binding:"required,min=1"`
	Status                 *string `json:"status,omitempty" binding:"omitempty,oneof=draft scheduled active"`
	ReservationTimeMinutes *int    `json:"reservation_time_minutes,omitempty" binding:"omitempty,min=1"`
	MaxTicketsPerPerson    *int    `json:"max_tickets_per_person,omitempty" binding:"omitempty,min=0"`
	OpportunitiesEnabled   *bool   `json:"opportunities_enabled,omitempty"`
	OpportunitiesCount     *int    `json:"opportunities_count,omitempty" binding:"omitempty,min=0,max=1000"`
	TicketPriceCents       *int64  `json:"ticket_price_cents,omitempty" binding:"omitempty,min=0"`
}

// ToCommand leaves the reservation time at zero when absent so the
// configured default applies.
func (r *InitializeInventoryRequest) ToCommand(raffleID uuid.UUID) commands.InitializeInventoryCommand {
	return commands.InitializeInventoryCommand{
		RaffleID:     raffleID,
		TotalTickets: r.TotalTickets,
		Status:       raffle.Status(patch.Coalesce(r.Status, "")),
		Settings: raffle.Settings{
			ReservationTime:      time.Duration(patch.Coalesce(r.ReservationTimeMinutes, 0)) * time.Minute,
			MaxTicketsPerPerson:  patch.Coalesce(r.MaxTicketsPerPerson, 0),
			OpportunitiesEnabled: patch.Coalesce(r.OpportunitiesEnabled, false),
			OpportunitiesCount:   patch.Coalesce(r.OpportunitiesCount, 0),
			TicketPriceCents:     patch.Coalesce(r.TicketPriceCents, 0),
		},
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *ChangeStatusRequest) ToCommand(raffleID uuid.UUID) commands.ChangeStatusCommand {
	return commands.ChangeStatusCommand{
		RaffleID: raffleID,
		Status:   raffle.Status(r.Status),
	}
}

type SweepRequest struct {
	// Now overrides the sweep time; absent means the server clock.
	Now *time.Time `json:"now,omitempty"`
}

func (r *SweepRequest) SweepTime() time.Time {
	return patch.Coalesce(r.Now, time.Time{})
}
