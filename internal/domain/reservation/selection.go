package reservation

import (
	"math/rand/v2"
	"slices"
	"sync"

	"raffle-engine/internal/pkg/errs"
)

var (
	ErrInvalidCount          = errs.Mark(errs.New("ticket count must be positive"), errs.ErrInvalidArgument)
	ErrInsufficientInventory = errs.Mark(errs.New("not enough tickets available"), errs.ErrInsufficientInventory)
)

// Selection is how a buyer asks for tickets: either a count the engine picks,
// or explicit numbers. The set of variants is closed.
type Selection interface {
	isSelection()
	Requested() int
}

type ByCount struct {
	Count int
	// Lucky picks pseudo-random numbers instead of the lowest available ones.
	Lucky bool
}

type ByNumbers struct {
	Numbers []int
}

func (ByCount) isSelection()   {}
func (ByNumbers) isSelection() {}

func (s ByCount) Requested() int   { return s.Count }
func (s ByNumbers) Requested() int { return len(s.Numbers) }

// Picker chooses n numbers out of the available ones (ascending).
type Picker interface {
	Pick(available []int, n int) ([]int, error)
}

type LowestFirst struct{}

func (LowestFirst) Pick(available []int, n int) ([]int, error) {
	if err := checkPick(len(available), n); err != nil {
		return nil, err
	}
	return slices.Clone(available[:n]), nil
}

// LuckyMachine picks uniformly at random. It is safe for concurrent use.
type LuckyMachine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLuckyMachine returns a machine with a fixed seed, for reproducible draws.
func NewLuckyMachine(seed1, seed2 uint64) *LuckyMachine {
	return &LuckyMachine{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewRuntimeLuckyMachine draws from the runtime's randomly seeded source.
func NewRuntimeLuckyMachine() *LuckyMachine {
	return &LuckyMachine{}
}

func (m *LuckyMachine) Pick(available []int, n int) ([]int, error) {
	if err := checkPick(len(available), n); err != nil {
		return nil, err
	}
	pool := slices.Clone(available)

	m.mu.Lock()
	for i := 0; i < n; i++ {
		j := i + m.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	m.mu.Unlock()

	picked := pool[:n]
	slices.Sort(picked)
	return picked, nil
}

func (m *LuckyMachine) intN(n int) int {
	if m.rnd == nil {
		return rand.IntN(n)
	}
	return m.rnd.IntN(n)
}

func checkPick(available, n int) error {
	if n < 1 {
		return ErrInvalidCount
	}
	if available < n {
		return errs.Mark(errs.Newf("requested %d, only %d available", n, available), ErrInsufficientInventory)
	}
	return nil
}
