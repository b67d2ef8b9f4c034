package queries

import (
	"context"

	"raffle-engine/internal/domain/participant"
	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	GetSnapshot(ctx context.Context, raffleID uuid.UUID) (*InventorySnapshot, error)
	// GetParticipants never sweeps: it shows the state left by the last write.
	GetParticipants(ctx context.Context, raffleID uuid.UUID) ([]*ParticipantView, error)
}

type inventoryQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryQueries(uow shared.UnitOfWork) InventoryQueries {
	return &inventoryQueriesImpl{uow: uow}
}

func (q *inventoryQueriesImpl) GetSnapshot(ctx context.Context, raffleID uuid.UUID) (*InventorySnapshot, error) {
	var r *raffle.Raffle
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		r, err = tx.Raffles().FindByID(ctx, raffleID)
		return shared.NotFoundAs(err, "raffle")
	})
	if err != nil {
		return nil, err
	}
	return NewInventorySnapshot(r), nil
}

func (q *inventoryQueriesImpl) GetParticipants(ctx context.Context, raffleID uuid.UUID) ([]*ParticipantView, error) {
	var (
		held     []*ticket.Ticket
		payments []*payment.Payment
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Raffles().FindByID(ctx, raffleID); err != nil {
			return shared.NotFoundAs(err, "raffle")
		}
		var err error
		if held, err = tx.Tickets().ListHeld(ctx, raffleID); err != nil {
			return err
		}
		confirmed := payment.StatusConfirmed
		payments, err = tx.Payments().ListByRaffle(ctx, raffleID, &confirmed)
		return err
	})
	if err != nil {
		return nil, err
	}

	built := participant.Build(held, payments)
	out := make([]*ParticipantView, 0, len(built))
	for _, p := range built {
		out = append(out, NewParticipantView(p))
	}
	return out, nil
}
