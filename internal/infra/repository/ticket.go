package repository

import (
	"context"
	"log/slog"

	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository/converter"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketQueries interface {
	CreateTickets(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateTicketsParams) (int64, error)
	GetTicketsByNumbers(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTicketsByNumbersParams) ([]sqlc.Tickets, error)
	GetTicketsByReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTicketsByReservationParams) ([]sqlc.Tickets, error)
	ListAvailableNumbers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableNumbersParams) ([]int32, error)
	ListHeldTickets(ctx context.Context, db sqlc.DBTX, raffleID uuid.UUID) ([]sqlc.Tickets, error)
	CountHeldByBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.CountHeldByBuyerParams) (int64, error)
	CountTicketsByState(ctx context.Context, db sqlc.DBTX, raffleID uuid.UUID) ([]sqlc.CountTicketsByStateRow, error)
	UpdateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTicketParams) (int64, error)
}

type TicketRepository struct {
	queries TicketQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

// CreateRange bulk-loads the raffle's tickets with COPY.
func (r *TicketRepository) CreateRange(ctx context.Context, raffleID uuid.UUID, total int) error {
	rows := make([]sqlc.CreateTicketsParams, total)
	for i := range rows {
		rows[i] = sqlc.CreateTicketsParams{
			RaffleID: raffleID,
			Number:   int32(i + 1),
			State:    ticket.StateAvailable.String(),
		}
	}
	n, err := r.queries.CreateTickets(ctx, r.db, rows)
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to create tickets", err)
	}
	if n != int64(total) {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "ticket copy was short", nil)
	}
	return nil
}

func (r *TicketRepository) FindByNumbers(ctx context.Context, raffleID uuid.UUID, numbers []int) ([]*ticket.Ticket, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	wanted, err := pgconv.Int32sFromInts(numbers)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "ticket number out of range", err)
	}
	rows, err := r.queries.GetTicketsByNumbers(ctx, r.db, sqlc.GetTicketsByNumbersParams{
		RaffleID: raffleID,
		Numbers:  wanted,
	})
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to find tickets by number", err)
	}
	return converter.TicketsFromRows(rows), nil
}

func (r *TicketRepository) FindByReservation(ctx context.Context, raffleID, reservationID uuid.UUID) ([]*ticket.Ticket, error) {
	rows, err := r.queries.GetTicketsByReservation(ctx, r.db, sqlc.GetTicketsByReservationParams{
		RaffleID:      raffleID,
		ReservationID: pgconv.UUIDToPgtype(reservationID),
	})
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to find tickets by reservation", err)
	}
	return converter.TicketsFromRows(rows), nil
}

func (r *TicketRepository) AvailableNumbers(ctx context.Context, raffleID uuid.UUID, limit int) ([]int, error) {
	params := sqlc.ListAvailableNumbersParams{RaffleID: raffleID}
	if limit > 0 {
		params.MaxRows = pgtype.Int4{Int32: int32(limit), Valid: true}
	}
	numbers, err := r.queries.ListAvailableNumbers(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list available numbers", err)
	}
	return pgconv.IntsFromInt32s(numbers), nil
}

func (r *TicketRepository) ListHeld(ctx context.Context, raffleID uuid.UUID) ([]*ticket.Ticket, error) {
	rows, err := r.queries.ListHeldTickets(ctx, r.db, raffleID)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list held tickets", err)
	}
	return converter.TicketsFromRows(rows), nil
}

func (r *TicketRepository) CountHeldByBuyer(ctx context.Context, raffleID uuid.UUID, buyerRef string) (int, error) {
	n, err := r.queries.CountHeldByBuyer(ctx, r.db, sqlc.CountHeldByBuyerParams{
		RaffleID: raffleID,
		BuyerRef: pgconv.StringOrNullToPgtype(buyerRef),
	})
	if err != nil {
		return 0, infra.WrapPgErr(slog.Default(), "failed to count tickets held by buyer", err)
	}
	return int(n), nil
}

func (r *TicketRepository) CountByState(ctx context.Context, raffleID uuid.UUID) (ticket.Counts, error) {
	rows, err := r.queries.CountTicketsByState(ctx, r.db, raffleID)
	if err != nil {
		return ticket.Counts{}, infra.WrapPgErr(slog.Default(), "failed to count tickets by state", err)
	}
	var counts ticket.Counts
	for _, row := range rows {
		counts.Add(ticket.State(row.State), int(row.Total))
	}
	return counts, nil
}

func (r *TicketRepository) Save(ctx context.Context, tickets ...*ticket.Ticket) error {
	for _, t := range tickets {
		params, err := converter.TicketToUpdateParams(t)
		if err != nil {
			return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "ticket does not fit the schema", err)
		}
		n, err := r.queries.UpdateTicket(ctx, r.db, params)
		if err != nil {
			return infra.WrapPgErr(slog.Default(), "failed to update ticket", err)
		}
		if n == 0 {
			return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "ticket not found", nil)
		}
	}
	return nil
}
