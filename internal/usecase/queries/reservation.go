package queries

import (
	"context"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	var res *reservation.Reservation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindByID(ctx, id)
		return shared.NotFoundAs(err, "reservation")
	})
	if err != nil {
		return nil, err
	}
	return NewReservationView(res), nil
}
