package repository

import (
	"context"
	"log/slog"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository/converter"
	sqlc "raffle-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	GetPayment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	ListPaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.Payments, error)
	ListPaymentsByRaffle(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsByRaffleParams) ([]sqlc.Payments, error)
	UpdatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	params, err := converter.PaymentToCreateParams(p)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "payment does not fit the schema", err)
	}
	if err := r.queries.CreatePayment(ctx, r.db, params); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPayment(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to find payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*payment.Payment, error) {
	rows, err := r.queries.ListPaymentsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list payments by reservation", err)
	}
	return converter.PaymentsFromRows(rows), nil
}

func (r *PaymentRepository) ListByRaffle(ctx context.Context, raffleID uuid.UUID, status *payment.Status) ([]*payment.Payment, error) {
	params := sqlc.ListPaymentsByRaffleParams{RaffleID: raffleID}
	if status != nil {
		params.Status = pgtype.Text{String: status.String(), Valid: true}
	}
	rows, err := r.queries.ListPaymentsByRaffle(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list payments by raffle", err)
	}
	return converter.PaymentsFromRows(rows), nil
}

func (r *PaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	n, err := r.queries.UpdatePayment(ctx, r.db, converter.PaymentToUpdateParams(p))
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to update payment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "payment not found", nil)
	}
	return nil
}
