package converter

import (
	"raffle-engine/internal/domain/payment"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) (sqlc.CreatePaymentParams, error) {
	numbers, err := pgconv.Int32sFromInts(p.TicketNumbers())
	if err != nil {
		return sqlc.CreatePaymentParams{}, err
	}
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		RaffleID:      p.RaffleID(),
		ReservationID: p.ReservationID(),
		TicketNumbers: numbers,
		AmountCents:   p.Amount().Int64(),
		Method:        p.Method().String(),
		BuyerRef:      p.BuyerRef(),
		Status:        p.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		DecidedAt:     pgconv.TimePtrToPgtype(p.DecidedAt()),
		DecisionNote:  p.DecisionNote(),
	}, nil
}

func PaymentToUpdateParams(p *payment.Payment) sqlc.UpdatePaymentParams {
	return sqlc.UpdatePaymentParams{
		ID:           p.ID(),
		Status:       p.Status().String(),
		DecidedAt:    pgconv.TimePtrToPgtype(p.DecidedAt()),
		DecisionNote: p.DecisionNote(),
	}
}

func PaymentFromRow(row sqlc.Payments) *payment.Payment {
	return payment.Reconstruct(
		row.ID,
		row.RaffleID,
		row.ReservationID,
		pgconv.IntsFromInt32s(row.TicketNumbers),
		payment.Money(row.AmountCents),
		payment.Method(row.Method),
		row.BuyerRef,
		payment.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.DecidedAt),
		row.DecisionNote,
	)
}

func PaymentsFromRows(rows []sqlc.Payments) []*payment.Payment {
	out := make([]*payment.Payment, len(rows))
	for i, row := range rows {
		out[i] = PaymentFromRow(row)
	}
	return out
}
