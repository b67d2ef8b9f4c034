//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	repositorymock "raffle-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_CreateAndSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	buyer, err := reservation.NewBuyerRef("carla")
	require.NoError(t, err)
	res, err := reservation.NewReservation(uuid.New(), buyer, []int{9, 2, 5}, now, 10*time.Minute)
	require.NoError(t, err)

	mockQueries.EXPECT().CreateReservation(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
			assert.Equal(t, res.ID(), arg.ID)
			assert.Equal(t, []int32{2, 5, 9}, arg.TicketNumbers)
			assert.Equal(t, "active", arg.Status)
			assert.False(t, arg.ClosedAt.Valid)
			return nil
		})
	require.NoError(t, repo.Create(ctx, res))

	require.NoError(t, res.MarkExpired(now.Add(10*time.Minute)))
	mockQueries.EXPECT().UpdateReservation(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error) {
			assert.Equal(t, "expired", arg.Status)
			assert.True(t, arg.ClosedAt.Valid)
			return 1, nil
		})
	require.NoError(t, repo.Save(ctx, res))
}

func TestReservationRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success: row is converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id, raffleID := uuid.New(), uuid.New()
		mockQueries.EXPECT().GetReservation(ctx, mockDB, id).Return(sqlc.Reservations{
			ID:            id,
			RaffleID:      raffleID,
			BuyerRef:      "dan",
			TicketNumbers: []int32{3, 4},
			Status:        "settled",
			CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
			ExpiresAt:     pgtype.Timestamptz{Time: now.Add(time.Minute), Valid: true},
			ClosedAt:      pgtype.Timestamptz{Time: now.Add(30 * time.Second), Valid: true},
		}, nil)

		res, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, raffleID, res.RaffleID())
		assert.Equal(t, "dan", res.BuyerRef())
		assert.Equal(t, []int{3, 4}, res.TicketNumbers())
		assert.Equal(t, reservation.StatusSettled, res.Status())
		require.NotNil(t, res.ClosedAt())
		assert.Equal(t, now.Add(30*time.Second), *res.ClosedAt())
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetReservation(ctx, mockDB, gomock.Any()).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_ListLapsed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	raffleID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ListLapsedReservations(ctx, mockDB, sqlc.ListLapsedReservationsParams{
		RaffleID:  raffleID,
		ExpiresAt: pgtype.Timestamptz{Time: now, Valid: true},
	}).Return([]sqlc.Reservations{
		{ID: uuid.New(), RaffleID: raffleID, BuyerRef: "a", TicketNumbers: []int32{1}, Status: "active"},
		{ID: uuid.New(), RaffleID: raffleID, BuyerRef: "b", TicketNumbers: []int32{2}, Status: "active"},
	}, nil)

	lapsed, err := repo.ListLapsed(ctx, raffleID, now)
	require.NoError(t, err)
	require.Len(t, lapsed, 2)
	assert.Equal(t, "a", lapsed[0].BuyerRef())
	assert.True(t, lapsed[1].IsActive())
}
