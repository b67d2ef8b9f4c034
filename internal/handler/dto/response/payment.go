package response

import (
	"time"

	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	RaffleID      uuid.UUID  `json:"raffle_id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	TicketNumbers []int      `json:"ticket_numbers"`
	AmountCents   int64      `json:"amount_cents"`
	Method        string     `json:"method"`
	BuyerRef      string     `json:"buyer_ref"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	DecisionNote  string     `json:"decision_note,omitempty"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return copyView[PaymentResponse](v)
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	return copyList[PaymentResponse](views)
}
