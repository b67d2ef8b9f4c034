//go:build unit

package reservation_test

import (
	"strings"
	"testing"

	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuyerRef(t *testing.T) {
	b, err := reservation.NewBuyerRef("  buyer-a ")
	require.NoError(t, err)
	assert.Equal(t, "buyer-a", b.String())

	_, err = reservation.NewBuyerRef("   ")
	assert.True(t, errs.Is(err, reservation.ErrEmptyBuyerRef))

	_, err = reservation.NewBuyerRef(strings.Repeat("x", 129))
	assert.True(t, errs.Is(err, reservation.ErrBuyerRefTooLong))
}

func TestNormalizeNumbers(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    []int
		wantErr error
	}{
		{name: "sorted output", numbers: []int{7, 1, 4}, want: []int{1, 4, 7}},
		{name: "upper bound inclusive", numbers: []int{10}, want: []int{10}},
		{name: "empty", numbers: []int{}, wantErr: reservation.ErrNoNumbers},
		{name: "zero", numbers: []int{0}, wantErr: reservation.ErrNumberOutOfRange},
		{name: "above total", numbers: []int{11}, wantErr: reservation.ErrNumberOutOfRange},
		{name: "duplicate", numbers: []int{3, 2, 3}, wantErr: reservation.ErrDuplicateNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reservation.NormalizeNumbers(tt.numbers, 10)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckPersonalLimit(t *testing.T) {
	assert.NoError(t, reservation.CheckPersonalLimit(0, 100, 100))
	assert.NoError(t, reservation.CheckPersonalLimit(5, 2, 3))

	err := reservation.CheckPersonalLimit(5, 3, 3)
	assert.True(t, errs.Is(err, reservation.ErrLimitExceeded))
	assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
}
