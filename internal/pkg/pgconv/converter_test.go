//go:build unit

package pgconv_test

import (
	"math"
	"testing"

	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32sFromInts(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		got, err := pgconv.Int32sFromInts([]int{1, 1_000_000, math.MaxInt32})
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 1_000_000, math.MaxInt32}, got)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := pgconv.Int32sFromInts(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	tests := []struct {
		name string
		in   []int
	}{
		{name: "above max", in: []int{7, 3_001_000_000}},
		{name: "just above max", in: []int{math.MaxInt32 + 1}},
		{name: "below min", in: []int{math.MinInt32 - 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pgconv.Int32sFromInts(tt.in)
			assert.True(t, errs.Is(err, pgconv.ErrInt32Range))
			assert.Nil(t, got)
		})
	}
}
