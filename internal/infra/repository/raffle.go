package repository

import (
	"context"
	"log/slog"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository/converter"
	sqlc "raffle-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RaffleQueries interface {
	CreateRaffle(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRaffleParams) error
	GetRaffle(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Raffles, error)
	UpdateRaffle(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRaffleParams) (int64, error)
}

type RaffleRepository struct {
	queries RaffleQueries
	db      sqlc.DBTX
}

func NewRaffleRepository(queries RaffleQueries, db sqlc.DBTX) *RaffleRepository {
	return &RaffleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RaffleRepository) Create(ctx context.Context, rf *raffle.Raffle) error {
	if err := r.queries.CreateRaffle(ctx, r.db, converter.RaffleToCreateParams(rf)); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to create raffle", err)
	}
	return nil
}

func (r *RaffleRepository) FindByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	row, err := r.queries.GetRaffle(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to find raffle", err)
	}
	return converter.RaffleFromRow(row), nil
}

func (r *RaffleRepository) Save(ctx context.Context, rf *raffle.Raffle) error {
	n, err := r.queries.UpdateRaffle(ctx, r.db, converter.RaffleToUpdateParams(rf))
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to update raffle", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "raffle not found", nil)
	}
	return nil
}
