//go:build unit || e2e

package builder

import (
	"time"

	"raffle-engine/internal/domain/payment"
	reqdto "raffle-engine/internal/handler/dto/request"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID            uuid.UUID
	RaffleID      uuid.UUID
	ReservationID uuid.UUID
	TicketNumbers []int
	AmountCents   int64
	Method        payment.Method
	BuyerRef      string
	Status        payment.Status
	CreatedAt     time.Time
	DecidedAt     *time.Time
	DecisionNote  string
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:            uuid.New(),
		RaffleID:      uuid.New(),
		ReservationID: uuid.New(),
		TicketNumbers: []int{1, 2, 3},
		AmountCents:   1500,
		Method:        payment.MethodTransfer,
		BuyerRef:      "buyer-001",
		Status:        payment.StatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 12, 5, 0, 0, time.UTC),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Decided marks the payment as decided one minute after submission.
func (b *PaymentBuilder) Decided(status payment.Status, note string) *PaymentBuilder {
	at := b.CreatedAt.Add(time.Minute)
	b.Status = status
	b.DecidedAt = &at
	b.DecisionNote = note
	return b
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:            b.ID,
		RaffleID:      b.RaffleID,
		ReservationID: b.ReservationID,
		TicketNumbers: b.TicketNumbers,
		AmountCents:   b.AmountCents,
		Method:        b.Method.String(),
		BuyerRef:      b.BuyerRef,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		DecidedAt:     b.DecidedAt,
		DecisionNote:  b.DecisionNote,
	}
}

func (b *PaymentBuilder) BuildSubmitRequestDTO() reqdto.SubmitPaymentRequest {
	return reqdto.SubmitPaymentRequest{
		BuyerRef:    b.BuyerRef,
		AmountCents: b.AmountCents,
		Method:      b.Method.String(),
	}
}
