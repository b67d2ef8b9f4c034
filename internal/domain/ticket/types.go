package ticket

type State string

const (
	StateAvailable State = "available"
	StateReserved  State = "reserved"
	StateSold      State = "sold"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAvailable, StateReserved, StateSold:
		return true
	default:
		return false
	}
}

// Transition is one ticket moving between states. The raffle aggregate derives
// its counters from these.
type Transition struct {
	From State
	To   State
}

var (
	TransitionReserve = Transition{From: StateAvailable, To: StateReserved}
	TransitionRelease = Transition{From: StateReserved, To: StateAvailable}
	TransitionSettle  = Transition{From: StateReserved, To: StateSold}
)

type Counts struct {
	Available int
	Reserved  int
	Sold      int
}

func (c Counts) Total() int {
	return c.Available + c.Reserved + c.Sold
}

func (c *Counts) Add(s State, n int) {
	switch s {
	case StateAvailable:
		c.Available += n
	case StateReserved:
		c.Reserved += n
	case StateSold:
		c.Sold += n
	}
}

// BonusNumbers returns the extra "opportunity" numbers granted for a purchased
// ticket. They live above the sale range: number + k*total for k in 1..count,
// so they are unique across the raffle and never compete with inventory.
func BonusNumbers(number, total, count int) []int {
	if count <= 0 || total <= 0 {
		return nil
	}
	out := make([]int, count)
	for k := 1; k <= count; k++ {
		out[k-1] = number + k*total
	}
	return out
}
