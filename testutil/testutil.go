package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Subset returns an ascending random subset of [0, n) where each position
// is included with probability rate.
func (r *RNG) Subset(n int, rate float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []int
	for i := range n {
		if r.rand.Float64() < rate {
			out = append(out, i)
		}
	}
	return out
}

// Oracle is a naive logical view used as ground truth in tests.
// It stores the surviving physical positions and answers every query by
// linear scan.
type Oracle struct {
	physicalLen int
	surviving   []int
}

// NewOracle creates an Oracle over n physical rows with no deletions.
func NewOracle(n int) *Oracle {
	o := &Oracle{}
	o.Reset(n)
	return o
}

// Reset restores the identity view over n physical rows.
func (o *Oracle) Reset(n int) {
	o.physicalLen = n
	o.surviving = make([]int, n)
	for i := range n {
		o.surviving[i] = i
	}
}

// Len returns the logical count.
func (o *Oracle) Len() int { return len(o.surviving) }

// Physical returns the physical position of logical position pos.
func (o *Oracle) Physical(pos int) int { return o.surviving[pos] }

// Logical returns the logical position of p, or -1 if p is not visible.
func (o *Oracle) Logical(p int) int {
	for i, s := range o.surviving {
		if s == p {
			return i
		}
	}
	return -1
}

// Delete removes logical position pos.
func (o *Oracle) Delete(pos int) int {
	p := o.surviving[pos]
	o.surviving = slices.Delete(o.surviving, pos, pos+1)
	return p
}

// DeletePhysical removes physical position p if it is visible.
func (o *Oracle) DeletePhysical(p int) bool {
	i := o.Logical(p)
	if i < 0 {
		return false
	}
	o.surviving = slices.Delete(o.surviving, i, i+1)
	return true
}

// Surviving returns a copy of the visible physical positions in logical order.
func (o *Oracle) Surviving() []int {
	return slices.Clone(o.surviving)
}
