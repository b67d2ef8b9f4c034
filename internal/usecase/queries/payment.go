package queries

import (
	"context"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	// ListByRaffle returns the raffle's payments oldest first. A nil status lists all.
	ListByRaffle(ctx context.Context, raffleID uuid.UUID, status *payment.Status) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentQueries(uow shared.UnitOfWork) PaymentQueries {
	return &paymentQueriesImpl{uow: uow}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	var p *payment.Payment
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		p, err = tx.Payments().FindByID(ctx, id)
		return shared.NotFoundAs(err, "payment")
	})
	if err != nil {
		return nil, err
	}
	return NewPaymentView(p), nil
}

func (q *paymentQueriesImpl) ListByRaffle(ctx context.Context, raffleID uuid.UUID, status *payment.Status) ([]*PaymentView, error) {
	var rows []*payment.Payment
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Raffles().FindByID(ctx, raffleID); err != nil {
			return shared.NotFoundAs(err, "raffle")
		}
		var err error
		rows, err = tx.Payments().ListByRaffle(ctx, raffleID, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]*PaymentView, 0, len(rows))
	for _, p := range rows {
		out = append(out, NewPaymentView(p))
	}
	return out, nil
}
