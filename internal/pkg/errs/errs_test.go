//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"raffle-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: errs.KindUnknown},
		{name: "sentinel", err: errs.ErrNotFound, want: errs.KindNotFound},
		{
			name: "marked concrete error",
			err:  errs.Mark(errs.Newf("ticket %d is sold", 7), errs.ErrTicketUnavailable),
			want: errs.KindTicketUnavailable,
		},
		{
			name: "wrapped mark survives",
			err:  errs.Wrap(errs.Mark(errs.New("no such payment"), errs.ErrNotFound), "confirm"),
			want: errs.KindNotFound,
		},
		{
			name: "settlement failure wins over inner kind",
			err:  errs.Mark(errs.Mark(errs.New("commit"), errs.ErrInvalidState), errs.ErrSettlementFailed),
			want: errs.KindSettlementFailed,
		},
		{
			name: "invariant violation wins",
			err:  errs.Mark(errs.Mark(errs.New("counts"), errs.ErrSettlementFailed), errs.ErrInvariantViolation),
			want: errs.KindInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestMark_NilErrReturnsMarker(t *testing.T) {
	assert.Equal(t, errs.ErrInvalidArgument, errs.Mark(nil, errs.ErrInvalidArgument))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "x"))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
