package readstore

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/infra"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OwnershipQueries interface {
	GetReservationRaffleID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	GetPaymentRaffleID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	ListRafflesWithLapsedReservations(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) ([]uuid.UUID, error)
}

// OwnershipReadStore answers which raffle a reservation or payment belongs
// to. Commands ask before they take the raffle's lock, so it reads outside
// any transaction.
type OwnershipReadStore struct {
	queries OwnershipQueries
	db      sqlc.DBTX
}

func NewOwnershipReadStore(queries OwnershipQueries, db sqlc.DBTX) *OwnershipReadStore {
	return &OwnershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *OwnershipReadStore) RaffleOfReservation(ctx context.Context, reservationID uuid.UUID) (uuid.UUID, error) {
	id, err := s.queries.GetReservationRaffleID(ctx, s.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "reservation not found", err)
		}
		return uuid.Nil, infra.WrapPgErr(slog.Default(), "failed to resolve reservation raffle", err)
	}
	return id, nil
}

func (s *OwnershipReadStore) RaffleOfPayment(ctx context.Context, paymentID uuid.UUID) (uuid.UUID, error) {
	id, err := s.queries.GetPaymentRaffleID(ctx, s.db, paymentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "payment not found", err)
		}
		return uuid.Nil, infra.WrapPgErr(slog.Default(), "failed to resolve payment raffle", err)
	}
	return id, nil
}

func (s *OwnershipReadStore) RafflesWithDueReservations(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := s.queries.ListRafflesWithLapsedReservations(ctx, s.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list raffles with lapsed reservations", err)
	}
	return ids, nil
}
