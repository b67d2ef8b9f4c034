//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	repositorymock "raffle-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRaffle(t *testing.T) *raffle.Raffle {
	t.Helper()
	r, err := raffle.New(uuid.New(), 100, raffle.Settings{
		ReservationTime:      15 * time.Minute,
		MaxTicketsPerPerson:  5,
		OpportunitiesEnabled: true,
		OpportunitiesCount:   2,
		TicketPriceCents:     500,
	}, raffle.StatusActive, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

// =============================================================================
// Create Raffle Tests
// =============================================================================

func TestRaffleRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRaffleQueries, *raffle.Raffle, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: raffle created with its counters and settings",
			setupMock: func(mock *repositorymock.MockRaffleQueries, r *raffle.Raffle, db sqlc.DBTX) {
				mock.EXPECT().CreateRaffle(ctx, db, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRaffleParams) error {
						assert.Equal(t, r.ID(), arg.ID)
						assert.Equal(t, int32(100), arg.TotalTickets)
						assert.Equal(t, int32(100), arg.AvailableTickets)
						assert.Equal(t, "active", arg.Status)
						assert.Equal(t, int64(900), arg.ReservationSeconds)
						assert.Equal(t, int32(2), arg.OpportunitiesCount)
						return nil
					})
			},
		},
		{
			name: "error: duplicate raffle",
			setupMock: func(mock *repositorymock.MockRaffleQueries, _ *raffle.Raffle, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateRaffle(ctx, db, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRaffleQueries, _ *raffle.Raffle, db sqlc.DBTX) {
				mock.EXPECT().CreateRaffle(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRaffleQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRaffleRepository(mockQueries, mockDB)

			r := newRaffle(t)
			tc.setupMock(mockQueries, r, mockDB)

			err := repo.Create(ctx, r)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestRaffleRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success: row is converted to the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRaffleQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRaffleRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetRaffle(ctx, mockDB, id).Return(sqlc.Raffles{
			ID:                   id,
			TotalTickets:         10,
			AvailableTickets:     6,
			ReservedTickets:      3,
			SoldTickets:          1,
			Status:               "paused",
			ReservationSeconds:   600,
			MaxTicketsPerPerson:  4,
			OpportunitiesEnabled: false,
			TicketPriceCents:     250,
			CreatedAt:            pgtype.Timestamptz{Time: created, Valid: true},
			UpdatedAt:            pgtype.Timestamptz{Time: created.Add(time.Hour), Valid: true},
		}, nil)

		r, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
		assert.Equal(t, 10, r.TotalTickets())
		assert.Equal(t, ticket.Counts{Available: 6, Reserved: 3, Sold: 1}, r.Counts())
		assert.Equal(t, raffle.StatusPaused, r.Status())
		assert.Equal(t, 10*time.Minute, r.Settings().ReservationTime)
		assert.Equal(t, 4, r.Settings().MaxTicketsPerPerson)
		assert.Equal(t, created.Add(time.Hour), r.UpdatedAt())
	})

	t.Run("error: raffle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRaffleQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRaffleRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetRaffle(ctx, mockDB, gomock.Any()).Return(sqlc.Raffles{}, pgx.ErrNoRows)

		r, err := repo.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.Nil(t, r)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Save Raffle Tests
// =============================================================================

func TestRaffleRepository_Save(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: counters updated", rows: 1},
		{name: "error: raffle row missing", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRaffleQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRaffleRepository(mockQueries, mockDB)

			r := newRaffle(t)
			require.NoError(t, r.Apply(ticket.TransitionReserve, 2, r.CreatedAt().Add(time.Minute)))

			mockQueries.EXPECT().UpdateRaffle(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateRaffleParams) (int64, error) {
					assert.Equal(t, int32(98), arg.AvailableTickets)
					assert.Equal(t, int32(2), arg.ReservedTickets)
					return tc.rows, tc.dbErr
				})

			err := repo.Save(ctx, r)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
