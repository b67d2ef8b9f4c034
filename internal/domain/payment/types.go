package payment

import "raffle-engine/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsDecided() bool {
	return s == StatusConfirmed || s == StatusRejected
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", errs.Mark(errs.Newf("unknown payment status %q", v), errs.ErrInvalidArgument)
	}
	return s, nil
}

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
	MethodMobile   Method = "mobile"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodMobile:
		return true
	default:
		return false
	}
}

func ParseMethod(v string) (Method, error) {
	m := Method(v)
	if !m.IsValid() {
		return "", errs.Mark(errs.Newf("unknown payment method %q", v), errs.ErrInvalidArgument)
	}
	return m, nil
}

// Money is an amount in minor currency units.
type Money int64

func NewMoney(minor int64) (Money, error) {
	if minor <= 0 {
		return 0, errs.Mark(errs.Newf("amount must be positive, got %d", minor), errs.ErrInvalidArgument)
	}
	return Money(minor), nil
}

func (m Money) Int64() int64 {
	return int64(m)
}
