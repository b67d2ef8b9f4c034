//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/repository"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	repositorymock "raffle-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPayment(t *testing.T, now time.Time) *payment.Payment {
	t.Helper()
	p, err := payment.New(payment.NewParams{
		RaffleID:      uuid.New(),
		ReservationID: uuid.New(),
		TicketNumbers: []int{1, 2},
		Amount:        payment.Money(1000),
		Method:        payment.MethodTransfer,
		BuyerRef:      "eve",
	}, now)
	require.NoError(t, err)
	return p
}

func TestPaymentRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: pending payment created"},
		{
			name:       "error: second pending payment for the reservation",
			dbErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"payments_one_pending_idx\""},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: reservation row missing",
			dbErr:      &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			p := newPayment(t, now)
			mockQueries.EXPECT().CreatePayment(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePaymentParams) error {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, int64(1000), arg.AmountCents)
					assert.Equal(t, "transfer", arg.Method)
					assert.Equal(t, "pending", arg.Status)
					assert.False(t, arg.DecidedAt.Valid)
					return tc.dbErr
				})

			err := repo.Create(ctx, p)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestPaymentRepository_ListByRaffle(t *testing.T) {
	ctx := context.Background()
	raffleID := uuid.New()
	confirmed := payment.StatusConfirmed

	testCases := []struct {
		name   string
		status *payment.Status
		want   pgtype.Text
	}{
		{name: "success: unfiltered", status: nil, want: pgtype.Text{}},
		{name: "success: filtered by status", status: &confirmed, want: pgtype.Text{String: "confirmed", Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			mockQueries.EXPECT().ListPaymentsByRaffle(ctx, mockDB, sqlc.ListPaymentsByRaffleParams{
				RaffleID: raffleID,
				Status:   tc.want,
			}).Return([]sqlc.Payments{{
				ID:            uuid.New(),
				RaffleID:      raffleID,
				ReservationID: uuid.New(),
				TicketNumbers: []int32{5},
				AmountCents:   300,
				Method:        "cash",
				BuyerRef:      "fay",
				Status:        "confirmed",
				DecisionNote:  "counted",
			}}, nil)

			payments, err := repo.ListByRaffle(ctx, raffleID, tc.status)
			require.NoError(t, err)
			require.Len(t, payments, 1)
			assert.Equal(t, payment.StatusConfirmed, payments[0].Status())
			assert.Equal(t, payment.Money(300), payments[0].Amount())
			assert.Equal(t, []int{5}, payments[0].TicketNumbers())
			assert.Equal(t, "counted", payments[0].DecisionNote())
		})
	}
}

func TestPaymentRepository_Save(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success: decision is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		p := newPayment(t, now)
		_, err := p.Reject("receipt unreadable", now.Add(time.Minute))
		require.NoError(t, err)

		mockQueries.EXPECT().UpdatePayment(ctx, mockDB, sqlc.UpdatePaymentParams{
			ID:           p.ID(),
			Status:       "rejected",
			DecidedAt:    pgtype.Timestamptz{Time: now.Add(time.Minute), Valid: true},
			DecisionNote: "receipt unreadable",
		}).Return(int64(1), nil)

		assert.NoError(t, repo.Save(ctx, p))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdatePayment(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("broken pipe"))

		err := repo.Save(ctx, newPayment(t, now))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
