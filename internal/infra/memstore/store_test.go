//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/memstore"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newStore() *memstore.Store {
	return memstore.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRaffle(t *testing.T, total int) *raffle.Raffle {
	t.Helper()
	r, err := raffle.New(uuid.New(), total, raffle.Settings{ReservationTime: 15 * time.Minute}, raffle.StatusActive, now)
	require.NoError(t, err)
	return r
}

func create(r *raffle.Raffle) func(context.Context, shared.Tx) error {
	return func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Raffles().Create(ctx, r); err != nil {
			return err
		}
		return tx.Tickets().CreateRange(ctx, r.ID(), r.TotalTickets())
	}
}

func countTickets(t *testing.T, s *memstore.Store, raffleID uuid.UUID) ticket.Counts {
	t.Helper()
	var counts ticket.Counts
	err := s.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		counts, err = tx.Tickets().CountByState(ctx, raffleID)
		return err
	})
	require.NoError(t, err)
	return counts
}

func TestWithinRaffleCommits(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	r := newRaffle(t, 5)

	require.NoError(t, s.WithinRaffle(ctx, r.ID(), create(r)))

	assert.Equal(t, ticket.Counts{Available: 5}, countTickets(t, s, r.ID()))

	err := s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Raffles().FindByID(ctx, r.ID())
		if err != nil {
			return err
		}
		assert.Equal(t, 5, got.TotalTickets())
		numbers, err := tx.Tickets().AvailableNumbers(ctx, r.ID(), 3)
		assert.Equal(t, []int{1, 2, 3}, numbers)
		return err
	})
	require.NoError(t, err)
}

func TestWithinRaffleRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	r := newRaffle(t, 5)
	boom := errors.New("boom")

	err := s.WithinRaffle(ctx, r.ID(), func(ctx context.Context, tx shared.Tx) error {
		if err := create(r)(ctx, tx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Raffles().FindByID(ctx, r.ID())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCommitHookRejects(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	r := newRaffle(t, 3)
	require.NoError(t, s.WithinRaffle(ctx, r.ID(), create(r)))

	hookErr := errors.New("disk full")
	s.SetCommitHook(func(uuid.UUID) error { return hookErr })

	err := s.WithinRaffle(ctx, r.ID(), func(ctx context.Context, tx shared.Tx) error {
		tickets, err := tx.Tickets().FindByNumbers(ctx, r.ID(), []int{1})
		if err != nil {
			return err
		}
		_, err = tickets[0].Reserve("buyer-001", uuid.New(), now, now.Add(15*time.Minute))
		require.NoError(t, err)
		return tx.Tickets().Save(ctx, tickets...)
	})
	require.ErrorIs(t, err, hookErr)

	s.SetCommitHook(nil)
	assert.Equal(t, ticket.Counts{Available: 3}, countTickets(t, s, r.ID()))
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	r := newRaffle(t, 2)

	err := s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Raffles().Create(ctx, r)
	})
	assert.True(t, infra.IsKind(err, infra.KindReadOnly))
}

func TestCreateTwiceIsDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	r := newRaffle(t, 2)
	require.NoError(t, s.WithinRaffle(ctx, r.ID(), create(r)))

	err := s.WithinRaffle(ctx, r.ID(), create(r))
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestCommandReadsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	_, err := s.CommandReads().RaffleOfReservation(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = s.CommandReads().RaffleOfPayment(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	due, err := s.CommandReads().RafflesWithDueReservations(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestCancelledContextSkipsWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := newStore().WithinRaffle(ctx, uuid.New(), func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
