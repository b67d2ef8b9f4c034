package shared

import (
	"context"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/domain/ticket"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// WithinRaffle runs fn while holding the raffle's exclusive write lock.
	// Everything fn writes through tx commits together or not at all.
	WithinRaffle(ctx context.Context, raffleID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly gives fn a consistent read view. Writes through tx fail.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads resolves which raffle an id belongs to, before taking its lock.
	CommandReads() CommandReads
}

type Tx interface {
	Raffles() RaffleRepository
	Tickets() TicketRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
}

type CommandReads interface {
	RaffleOfReservation(ctx context.Context, reservationID uuid.UUID) (uuid.UUID, error)
	RaffleOfPayment(ctx context.Context, paymentID uuid.UUID) (uuid.UUID, error)
	RafflesWithDueReservations(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type RaffleRepository interface {
	Create(ctx context.Context, r *raffle.Raffle) error
	FindByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error)
	Save(ctx context.Context, r *raffle.Raffle) error
}

type TicketRepository interface {
	// CreateRange inserts tickets 1..total as available.
	CreateRange(ctx context.Context, raffleID uuid.UUID, total int) error
	FindByNumbers(ctx context.Context, raffleID uuid.UUID, numbers []int) ([]*ticket.Ticket, error)
	FindByReservation(ctx context.Context, raffleID, reservationID uuid.UUID) ([]*ticket.Ticket, error)
	// AvailableNumbers lists available numbers ascending; limit <= 0 means all.
	AvailableNumbers(ctx context.Context, raffleID uuid.UUID, limit int) ([]int, error)
	ListHeld(ctx context.Context, raffleID uuid.UUID) ([]*ticket.Ticket, error)
	CountHeldByBuyer(ctx context.Context, raffleID uuid.UUID, buyerRef string) (int, error)
	CountByState(ctx context.Context, raffleID uuid.UUID) (ticket.Counts, error)
	Save(ctx context.Context, tickets ...*ticket.Ticket) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ListLapsed returns active reservations of the raffle whose expiry is at or before now.
	ListLapsed(ctx context.Context, raffleID uuid.UUID, now time.Time) ([]*reservation.Reservation, error)
	Save(ctx context.Context, r *reservation.Reservation) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*payment.Payment, error)
	// ListByRaffle returns the raffle's payments oldest first, optionally filtered by status.
	ListByRaffle(ctx context.Context, raffleID uuid.UUID, status *payment.Status) ([]*payment.Payment, error)
	Save(ctx context.Context, p *payment.Payment) error
}
