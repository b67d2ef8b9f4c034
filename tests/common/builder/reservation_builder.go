//go:build unit || e2e

package builder

import (
	"time"

	"raffle-engine/internal/domain/reservation"
	reqdto "raffle-engine/internal/handler/dto/request"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	RaffleID      uuid.UUID
	BuyerRef      string
	TicketNumbers []int
	Status        reservation.Status
	CreatedAt     time.Time
	TTL           time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		RaffleID:      uuid.New(),
		BuyerRef:      "buyer-001",
		TicketNumbers: []int{1, 2, 3},
		Status:        reservation.StatusActive,
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		TTL:           15 * time.Minute,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		RaffleID:      b.RaffleID,
		BuyerRef:      b.BuyerRef,
		TicketNumbers: b.TicketNumbers,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		ExpiresAt:     b.CreatedAt.Add(b.TTL),
	}
}

func (b *ReservationBuilder) BuildByNumbersRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		BuyerRef: b.BuyerRef,
		Numbers:  b.TicketNumbers,
	}
}

func (b *ReservationBuilder) BuildByCountRequestDTO(lucky bool) reqdto.ReserveRequest {
	count := len(b.TicketNumbers)
	return reqdto.ReserveRequest{
		BuyerRef: b.BuyerRef,
		Count:    &count,
		Lucky:    lucky,
	}
}
