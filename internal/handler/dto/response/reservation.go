package response

import (
	"time"

	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	RaffleID      uuid.UUID  `json:"raffle_id"`
	BuyerRef      string     `json:"buyer_ref"`
	TicketNumbers []int      `json:"ticket_numbers"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return copyView[ReservationResponse](v)
}
