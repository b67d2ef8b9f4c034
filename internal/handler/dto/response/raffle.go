package response

import (
	"time"

	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryResponse struct {
	RaffleID             uuid.UUID `json:"raffle_id"`
	TotalTickets         int       `json:"total_tickets"`
	Available            int       `json:"available"`
	Reserved             int       `json:"reserved"`
	Sold                 int       `json:"sold"`
	Status               string    `json:"status"`
	ReservationMinutes   int       `json:"reservation_minutes"`
	MaxTicketsPerPerson  int       `json:"max_tickets_per_person"`
	OpportunitiesEnabled bool      `json:"opportunities_enabled"`
	OpportunitiesCount   int       `json:"opportunities_count"`
	TicketPriceCents     int64     `json:"ticket_price_cents"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromInventorySnapshot(s *queries.InventorySnapshot) *InventoryResponse {
	return copyView[InventoryResponse](s)
}

type ParticipantResponse struct {
	BuyerRef        string    `json:"buyer_ref"`
	TicketNumbers   []int     `json:"ticket_numbers"`
	TotalTickets    int       `json:"total_tickets"`
	PaidTickets     int       `json:"paid_tickets"`
	ReservedTickets int       `json:"reserved_tickets"`
	TotalPaidCents  int64     `json:"total_paid_cents"`
	FirstPurchaseAt time.Time `json:"first_purchase_at"`
	LastPurchaseAt  time.Time `json:"last_purchase_at"`
}

func FromParticipantViews(views []*queries.ParticipantView) []*ParticipantResponse {
	return copyList[ParticipantResponse](views)
}

type SweepResponse struct {
	RaffleID            uuid.UUID   `json:"raffle_id"`
	ReleasedTickets     int         `json:"released_tickets"`
	ExpiredReservations []uuid.UUID `json:"expired_reservations"`
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return copyView[SweepResponse](r)
}
