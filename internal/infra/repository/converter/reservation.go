package converter

import (
	"raffle-engine/internal/domain/reservation"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	numbers, err := pgconv.Int32sFromInts(res.TicketNumbers())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		RaffleID:      res.RaffleID(),
		BuyerRef:      res.BuyerRef(),
		TicketNumbers: numbers,
		Status:        res.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
		ExpiresAt:     pgconv.TimeToPgtype(res.ExpiresAt()),
		ClosedAt:      pgconv.TimePtrToPgtype(res.ClosedAt()),
	}, nil
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:       res.ID(),
		Status:   res.Status().String(),
		ClosedAt: pgconv.TimePtrToPgtype(res.ClosedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.RaffleID,
		pgconv.IntsFromInt32s(row.TicketNumbers),
		row.BuyerRef,
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.ClosedAt),
	)
}
