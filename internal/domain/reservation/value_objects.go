package reservation

import (
	"slices"
	"strings"

	"raffle-engine/internal/pkg/errs"
)

const maxBuyerRefLength = 128

var (
	ErrEmptyBuyerRef    = errs.Mark(errs.New("buyer reference is required"), errs.ErrInvalidArgument)
	ErrBuyerRefTooLong  = errs.Mark(errs.New("buyer reference is too long"), errs.ErrInvalidArgument)
	ErrNoNumbers        = errs.Mark(errs.New("at least one ticket number is required"), errs.ErrInvalidArgument)
	ErrNumberOutOfRange = errs.Mark(errs.New("ticket number out of range"), errs.ErrInvalidArgument)
	ErrDuplicateNumber  = errs.Mark(errs.New("ticket number requested twice"), errs.ErrInvalidArgument)
	ErrLimitExceeded    = errs.Mark(errs.New("max tickets per person exceeded"), errs.ErrInvalidArgument)
)

// BuyerRef is the opaque identity of a buyer, as supplied by the caller.
type BuyerRef struct {
	value string
}

func NewBuyerRef(value string) (BuyerRef, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return BuyerRef{}, ErrEmptyBuyerRef
	}
	if len(v) > maxBuyerRefLength {
		return BuyerRef{}, ErrBuyerRefTooLong
	}
	return BuyerRef{value: v}, nil
}

func (b BuyerRef) String() string {
	return b.value
}

// NormalizeNumbers validates explicitly requested numbers against the raffle
// range and returns them sorted.
func NormalizeNumbers(numbers []int, total int) ([]int, error) {
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}
	out := slices.Clone(numbers)
	slices.Sort(out)
	for i, n := range out {
		if n < 1 || n > total {
			return nil, errs.Mark(errs.Newf("ticket number %d not in [1, %d]", n, total), ErrNumberOutOfRange)
		}
		if i > 0 && out[i-1] == n {
			return nil, errs.Mark(errs.Newf("ticket number %d requested twice", n), ErrDuplicateNumber)
		}
	}
	return out, nil
}

// CheckPersonalLimit enforces maxTicketsPerPerson over what the buyer already
// holds in the raffle plus the new request. A limit of 0 disables the check.
func CheckPersonalLimit(limit, alreadyHeld, requested int) error {
	if limit <= 0 {
		return nil
	}
	if alreadyHeld+requested > limit {
		return errs.Mark(
			errs.Newf("buyer holds %d, requested %d, limit %d", alreadyHeld, requested, limit),
			ErrLimitExceeded,
		)
	}
	return nil
}
