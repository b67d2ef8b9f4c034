//go:build unit

package reservation_test

import (
	"slices"
	"testing"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRequested(t *testing.T) {
	assert.Equal(t, 4, reservation.ByCount{Count: 4}.Requested())
	assert.Equal(t, 2, reservation.ByNumbers{Numbers: []int{1, 2}}.Requested())
}

func TestLowestFirst(t *testing.T) {
	got, err := reservation.LowestFirst{}.Pick([]int{2, 5, 8, 9}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 8}, got)

	_, err = reservation.LowestFirst{}.Pick([]int{2}, 3)
	assert.True(t, errs.Is(err, errs.ErrInsufficientInventory))

	_, err = reservation.LowestFirst{}.Pick([]int{2}, 0)
	assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
}

func TestLuckyMachine(t *testing.T) {
	available := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	t.Run("picks distinct available numbers in order", func(t *testing.T) {
		m := reservation.NewLuckyMachine(1, 2)
		got, err := m.Pick(available, 4)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.True(t, slices.IsSorted(got))
		for i, n := range got {
			assert.Contains(t, available, n)
			if i > 0 {
				assert.NotEqual(t, got[i-1], n)
			}
		}
	})

	t.Run("same seed same picks", func(t *testing.T) {
		a, err := reservation.NewLuckyMachine(7, 7).Pick(available, 5)
		require.NoError(t, err)
		b, err := reservation.NewLuckyMachine(7, 7).Pick(available, 5)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := slices.Clone(available)
		_, err := (&reservation.LuckyMachine{}).Pick(in, 10)
		require.NoError(t, err)
		assert.Equal(t, available, in)
	})

	t.Run("insufficient", func(t *testing.T) {
		_, err := reservation.NewLuckyMachine(1, 1).Pick(available, 11)
		assert.True(t, errs.Is(err, errs.ErrInsufficientInventory))
	})
}
