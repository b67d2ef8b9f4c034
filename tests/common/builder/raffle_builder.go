//go:build unit || e2e

package builder

import (
	"time"

	"raffle-engine/internal/domain/raffle"
	reqdto "raffle-engine/internal/handler/dto/request"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RaffleBuilder struct {
	RaffleID             uuid.UUID
	TotalTickets         int
	Available            int
	Reserved             int
	Sold                 int
	Status               raffle.Status
	ReservationMinutes   int
	MaxTicketsPerPerson  int
	OpportunitiesEnabled bool
	OpportunitiesCount   int
	TicketPriceCents     int64
	Now                  time.Time
}

func NewRaffleBuilder() *RaffleBuilder {
	return &RaffleBuilder{
		RaffleID:           uuid.New(),
		TotalTickets:       100,
		Available:          100,
		Status:             raffle.StatusActive,
		ReservationMinutes: 15,
		TicketPriceCents:   500,
		Now:                time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RaffleBuilder) With(mutate func(*RaffleBuilder)) *RaffleBuilder {
	mutate(b)
	return b
}

func (b *RaffleBuilder) BuildSettings() raffle.Settings {
	return raffle.Settings{
		ReservationTime:      time.Duration(b.ReservationMinutes) * time.Minute,
		MaxTicketsPerPerson:  b.MaxTicketsPerPerson,
		OpportunitiesEnabled: b.OpportunitiesEnabled,
		OpportunitiesCount:   b.OpportunitiesCount,
		TicketPriceCents:     b.TicketPriceCents,
	}
}

func (b *RaffleBuilder) BuildDomain() (*raffle.Raffle, error) {
	return raffle.New(b.RaffleID, b.TotalTickets, b.BuildSettings(), b.Status, b.Now)
}

func (b *RaffleBuilder) BuildInitializeCommand() commands.InitializeInventoryCommand {
	return commands.InitializeInventoryCommand{
		RaffleID:     b.RaffleID,
		TotalTickets: b.TotalTickets,
		Status:       b.Status,
		Settings:     b.BuildSettings(),
	}
}

func (b *RaffleBuilder) BuildInitializeRequestDTO() reqdto.InitializeInventoryRequest {
	status := b.Status.String()
	minutes := b.ReservationMinutes
	maxPerPerson := b.MaxTicketsPerPerson
	enabled := b.OpportunitiesEnabled
	count := b.OpportunitiesCount
	price := b.TicketPriceCents
	return reqdto.InitializeInventoryRequest{
		TotalTickets:           b.TotalTickets,
		Status:                 &status,
		ReservationTimeMinutes: &minutes,
		MaxTicketsPerPerson:    &maxPerPerson,
		OpportunitiesEnabled:   &enabled,
		OpportunitiesCount:     &count,
		TicketPriceCents:       &price,
	}
}

func (b *RaffleBuilder) BuildSnapshot() *queries.InventorySnapshot {
	return &queries.InventorySnapshot{
		RaffleID:             b.RaffleID,
		TotalTickets:         b.TotalTickets,
		Available:            b.Available,
		Reserved:             b.Reserved,
		Sold:                 b.Sold,
		Status:               b.Status.String(),
		ReservationMinutes:   b.ReservationMinutes,
		MaxTicketsPerPerson:  b.MaxTicketsPerPerson,
		OpportunitiesEnabled: b.OpportunitiesEnabled,
		OpportunitiesCount:   b.OpportunitiesCount,
		TicketPriceCents:     b.TicketPriceCents,
		CreatedAt:            b.Now,
		UpdatedAt:            b.Now,
	}
}
