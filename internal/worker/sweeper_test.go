//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/worker"
	commandsmock "raffle-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweeper(t *testing.T, interval time.Duration) (*worker.Sweeper, *commandsmock.MockSweepCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mock := commandsmock.NewMockSweepCommands(ctrl)

	cfg := config.NewTestConfig()
	cfg.Sweeper.Interval = interval
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return worker.NewSweeper(mock, cfg, logger), mock
}

func TestSweepOnce(t *testing.T) {
	t.Run("sums released tickets", func(t *testing.T) {
		s, mock := newSweeper(t, time.Second)
		mock.EXPECT().SweepAll(gomock.Any(), time.Time{}).Return([]*commands.SweepResult{
			{RaffleID: uuid.New(), ReleasedTickets: 3, ExpiredReservations: []uuid.UUID{uuid.New()}},
			{RaffleID: uuid.New(), ReleasedTickets: 0, ExpiredReservations: []uuid.UUID{}},
			{RaffleID: uuid.New(), ReleasedTickets: 2, ExpiredReservations: []uuid.UUID{uuid.New(), uuid.New()}},
		}, nil)

		assert.Equal(t, 5, s.SweepOnce(context.Background()))
	})

	t.Run("partial failure still counts the raffles that swept", func(t *testing.T) {
		s, mock := newSweeper(t, time.Second)
		mock.EXPECT().SweepAll(gomock.Any(), gomock.Any()).Return([]*commands.SweepResult{
			{RaffleID: uuid.New(), ReleasedTickets: 4, ExpiredReservations: []uuid.UUID{uuid.New()}},
		}, errs.New("lock timeout"))

		assert.Equal(t, 4, s.SweepOnce(context.Background()))
	})

	t.Run("nothing due", func(t *testing.T) {
		s, mock := newSweeper(t, time.Second)
		mock.EXPECT().SweepAll(gomock.Any(), gomock.Any()).Return(nil, nil)

		assert.Zero(t, s.SweepOnce(context.Background()))
	})
}

func TestSweeperLoop(t *testing.T) {
	s, mock := newSweeper(t, 10*time.Millisecond)

	var calls atomic.Int32
	mock.EXPECT().SweepAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]*commands.SweepResult, error) {
			calls.Add(1)
			return nil, nil
		}).MinTimes(2)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no passes after stop")
}

func TestStopWithoutStart(t *testing.T) {
	s, _ := newSweeper(t, time.Second)
	assert.NoError(t, s.Stop(context.Background()))
}
