package reservation

type Status string

const (
	StatusActive   Status = "active"
	StatusSettled  Status = "settled"
	StatusReleased Status = "released"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSettled, StatusReleased, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsClosed() bool {
	return s != StatusActive
}
