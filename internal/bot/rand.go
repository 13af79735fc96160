package bot

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"

	"golang.org/x/exp/rand"
)

// Rand is the only source of randomness the policy uses.
type Rand interface {
	Intn(n int) int
}

// LockedRand is a pseudo-random source safe for use by concurrent requests.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRand returns a source seeded from the operating system.
func NewRand() *LockedRand {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}

	return NewSeededRand(binary.LittleEndian.Uint64(seed[:]))
}

// NewSeededRand is deterministic, for tests and reproducible runs.
func NewSeededRand(seed uint64) *LockedRand {
	return &LockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (that *LockedRand) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}
