package repository

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository/converter"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListLapsedReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLapsedReservationsParams) ([]sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "reservation does not fit the schema", err)
	}
	if err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to find reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) ListLapsed(ctx context.Context, raffleID uuid.UUID, now time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListLapsedReservations(ctx, r.db, sqlc.ListLapsedReservationsParams{
		RaffleID:  raffleID,
		ExpiresAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list lapsed reservations", err)
	}
	out := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		out[i] = converter.ReservationFromRow(row)
	}
	return out, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}
