package converter

import (
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/pgconv"
)

func RaffleToCreateParams(r *raffle.Raffle) sqlc.CreateRaffleParams {
	counts := r.Counts()
	settings := r.Settings()
	return sqlc.CreateRaffleParams{
		ID:                   r.ID(),
		TotalTickets:         int32(r.TotalTickets()),
		AvailableTickets:     int32(counts.Available),
		ReservedTickets:      int32(counts.Reserved),
		SoldTickets:          int32(counts.Sold),
		Status:               r.Status().String(),
		ReservationSeconds:   int64(settings.ReservationTime / time.Second),
		MaxTicketsPerPerson:  int32(settings.MaxTicketsPerPerson),
		OpportunitiesEnabled: settings.OpportunitiesEnabled,
		OpportunitiesCount:   int32(settings.OpportunitiesCount),
		TicketPriceCents:     settings.TicketPriceCents,
		CreatedAt:            pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RaffleToUpdateParams(r *raffle.Raffle) sqlc.UpdateRaffleParams {
	counts := r.Counts()
	return sqlc.UpdateRaffleParams{
		ID:               r.ID(),
		AvailableTickets: int32(counts.Available),
		ReservedTickets:  int32(counts.Reserved),
		SoldTickets:      int32(counts.Sold),
		Status:           r.Status().String(),
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RaffleFromRow(row sqlc.Raffles) *raffle.Raffle {
	return raffle.Reconstruct(
		row.ID,
		int(row.TotalTickets),
		ticket.Counts{
			Available: int(row.AvailableTickets),
			Reserved:  int(row.ReservedTickets),
			Sold:      int(row.SoldTickets),
		},
		raffle.Status(row.Status),
		raffle.Settings{
			ReservationTime:      time.Duration(row.ReservationSeconds) * time.Second,
			MaxTicketsPerPerson:  int(row.MaxTicketsPerPerson),
			OpportunitiesEnabled: row.OpportunitiesEnabled,
			OpportunitiesCount:   int(row.OpportunitiesCount),
			TicketPriceCents:     row.TicketPriceCents,
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
