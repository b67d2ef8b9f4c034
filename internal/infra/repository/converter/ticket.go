package converter

import (
	"raffle-engine/internal/domain/ticket"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/pkg/pgconv"
)

func TicketToUpdateParams(t *ticket.Ticket) (sqlc.UpdateTicketParams, error) {
	bonus, err := pgconv.Int32sFromInts(t.BonusNumbers())
	if err != nil {
		return sqlc.UpdateTicketParams{}, errs.Wrapf(err, "bonus numbers of ticket %d", t.Number())
	}
	return sqlc.UpdateTicketParams{
		RaffleID:             t.RaffleID(),
		Number:               int32(t.Number()),
		State:                t.State().String(),
		BuyerRef:             pgconv.StringOrNullToPgtype(t.BuyerRef()),
		ReservationID:        pgconv.UUIDOrNullToPgtype(t.ReservationID()),
		ReservedAt:           pgconv.TimePtrToPgtype(t.ReservedAt()),
		ReservationExpiresAt: pgconv.TimePtrToPgtype(t.ReservationExpiresAt()),
		PaidAt:               pgconv.TimePtrToPgtype(t.PaidAt()),
		BonusNumbers:         bonus,
	}, nil
}

func TicketFromRow(row sqlc.Tickets) *ticket.Ticket {
	var bonus []int
	if len(row.BonusNumbers) > 0 {
		bonus = pgconv.IntsFromInt32s(row.BonusNumbers)
	}
	return ticket.Reconstruct(
		row.RaffleID,
		int(row.Number),
		ticket.State(row.State),
		pgconv.StringFromPgtype(row.BuyerRef),
		pgconv.UUIDFromPgtype(row.ReservationID),
		pgconv.TimePtrFromPgtype(row.ReservedAt),
		pgconv.TimePtrFromPgtype(row.ReservationExpiresAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		bonus,
	)
}

func TicketsFromRows(rows []sqlc.Tickets) []*ticket.Ticket {
	out := make([]*ticket.Ticket, len(rows))
	for i, row := range rows {
		out[i] = TicketFromRow(row)
	}
	return out
}
