package queries

import (
	"time"

	"raffle-engine/internal/domain/participant"
	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type InventorySnapshot struct {
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
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	RaffleID      uuid.UUID  `json:"raffle_id"`
	BuyerRef      string     `json:"buyer_ref"`
	TicketNumbers []int      `json:"ticket_numbers"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
}

type PaymentView struct {
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

type ParticipantView struct {
	BuyerRef        string    `json:"buyer_ref"`
	TicketNumbers   []int     `json:"ticket_numbers"`
	TotalTickets    int       `json:"total_tickets"`
	PaidTickets     int       `json:"paid_tickets"`
	ReservedTickets int       `json:"reserved_tickets"`
	TotalPaidCents  int64     `json:"total_paid_cents"`
	FirstPurchaseAt time.Time `json:"first_purchase_at"`
	LastPurchaseAt  time.Time `json:"last_purchase_at"`
}

func NewInventorySnapshot(r *raffle.Raffle) *InventorySnapshot {
	counts := r.Counts()
	settings := r.Settings()
	return &InventorySnapshot{
		RaffleID:             r.ID(),
		TotalTickets:         r.TotalTickets(),
		Available:            counts.Available,
		Reserved:             counts.Reserved,
		Sold:                 counts.Sold,
		Status:               r.Status().String(),
		ReservationMinutes:   int(settings.ReservationTime / time.Minute),
		MaxTicketsPerPerson:  settings.MaxTicketsPerPerson,
		OpportunitiesEnabled: settings.OpportunitiesEnabled,
		OpportunitiesCount:   settings.OpportunitiesCount,
		TicketPriceCents:     settings.TicketPriceCents,
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:            r.ID(),
		RaffleID:      r.RaffleID(),
		BuyerRef:      r.BuyerRef(),
		TicketNumbers: r.TicketNumbers(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		ExpiresAt:     r.ExpiresAt(),
		ClosedAt:      r.ClosedAt(),
	}
}

func NewPaymentView(p *payment.Payment) *PaymentView {
	return &PaymentView{
		ID:            p.ID(),
		RaffleID:      p.RaffleID(),
		ReservationID: p.ReservationID(),
		TicketNumbers: p.TicketNumbers(),
		AmountCents:   p.Amount().Int64(),
		Method:        string(p.Method()),
		BuyerRef:      p.BuyerRef(),
		Status:        p.Status().String(),
		CreatedAt:     p.CreatedAt(),
		DecidedAt:     p.DecidedAt(),
		DecisionNote:  p.DecisionNote(),
	}
}

func NewParticipantView(p participant.Participant) *ParticipantView {
	return &ParticipantView{
		BuyerRef:        p.BuyerRef,
		TicketNumbers:   p.TicketNumbers,
		TotalTickets:    p.TotalTickets(),
		PaidTickets:     p.PaidTickets,
		ReservedTickets: p.ReservedTickets,
		TotalPaidCents:  p.TotalPaid.Int64(),
		FirstPurchaseAt: p.FirstPurchaseAt,
		LastPurchaseAt:  p.LastPurchaseAt,
	}
}
