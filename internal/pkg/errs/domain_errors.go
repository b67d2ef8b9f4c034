package errs

import "errors"

// Error kinds returned by the engine. Concrete errors carry one of these as a mark.
var (
	ErrNotFound              = errors.New("not found")
	ErrTicketUnavailable     = errors.New("ticket unavailable")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidState          = errors.New("invalid state")
	ErrReservationExpired    = errors.New("reservation expired")
	ErrAlreadyDecided        = errors.New("already decided")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrSettlementFailed      = errors.New("settlement failed")
	ErrInvariantViolation    = errors.New("invariant violation")
	ErrAlreadyInitialized    = errors.New("already initialized")
)

type Kind string

const (
	KindUnknown               Kind = "UNKNOWN"
	KindNotFound              Kind = "NOT_FOUND"
	KindTicketUnavailable     Kind = "TICKET_UNAVAILABLE"
	KindInsufficientInventory Kind = "INSUFFICIENT_INVENTORY"
	KindInvalidState          Kind = "INVALID_STATE"
	KindReservationExpired    Kind = "RESERVATION_EXPIRED"
	KindAlreadyDecided        Kind = "ALREADY_DECIDED"
	KindInvalidArgument       Kind = "INVALID_ARGUMENT"
	KindSettlementFailed      Kind = "SETTLEMENT_FAILED"
	KindInvariantViolation    Kind = "INVARIANT_VIOLATION"
	KindAlreadyInitialized    Kind = "ALREADY_INITIALIZED"
)

// Order matters: SettlementFailed and InvariantViolation wrap lower-level kinds
// and must win over them.
var kindTable = []struct {
	sentinel error
	kind     Kind
}{
	{ErrInvariantViolation, KindInvariantViolation},
	{ErrSettlementFailed, KindSettlementFailed},
	{ErrNotFound, KindNotFound},
	{ErrTicketUnavailable, KindTicketUnavailable},
	{ErrInsufficientInventory, KindInsufficientInventory},
	{ErrReservationExpired, KindReservationExpired},
	{ErrAlreadyDecided, KindAlreadyDecided},
	{ErrAlreadyInitialized, KindAlreadyInitialized},
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrInvalidState, KindInvalidState},
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindTable {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}
