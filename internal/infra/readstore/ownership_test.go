//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/readstore"
	readstoremock "raffle-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestOwnershipReadStore_RaffleOfReservation(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()
	raffleID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockOwnershipQueries)
		want       uuid.UUID
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: raffle resolved",
			setupMock: func(mock *readstoremock.MockOwnershipQueries) {
				mock.EXPECT().GetReservationRaffleID(ctx, gomock.Any(), reservationID).Return(raffleID, nil)
			},
			want: raffleID,
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *readstoremock.MockOwnershipQueries) {
				mock.EXPECT().GetReservationRaffleID(ctx, gomock.Any(), reservationID).Return(uuid.Nil, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *readstoremock.MockOwnershipQueries) {
				mock.EXPECT().GetReservationRaffleID(ctx, gomock.Any(), reservationID).Return(uuid.Nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockOwnershipQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewOwnershipReadStore(mockQueries, nil)

			got, err := store.RaffleOfReservation(ctx, reservationID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOwnershipReadStore_RaffleOfPayment(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOwnershipQueries(ctrl)
	mockQueries.EXPECT().GetPaymentRaffleID(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)
	store := readstore.NewOwnershipReadStore(mockQueries, nil)

	_, err := store.RaffleOfPayment(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestOwnershipReadStore_RafflesWithDueReservations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOwnershipQueries(ctrl)
	mockQueries.EXPECT().
		ListRafflesWithLapsedReservations(ctx, gomock.Any(), pgtype.Timestamptz{Time: now, Valid: true}).
		Return(ids, nil)
	store := readstore.NewOwnershipReadStore(mockQueries, nil)

	got, err := store.RafflesWithDueReservations(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}
