package mapping

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowview/testutil"
)

var strategies = []struct {
	name string
	new  func(n int) Mapper
}{
	{"surviving", func(n int) Mapper { m, _ := NewSurviving(n); return m }},
	{"skip", func(n int) Mapper { m, _ := NewSkip(n); return m }},
}

func physicalOrder(t *testing.T, m Mapper) []int {
	t.Helper()
	out := make([]int, 0, m.Len())
	for i := range m.Len() {
		p, err := m.Physical(i)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestMapper_Scenarios(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(5)

			// No deletions.
			assert.Equal(t, 5, m.Len())
			p, err := m.Physical(2)
			require.NoError(t, err)
			assert.Equal(t, 2, p)

			// Delete logical 1 (physical 1).
			p, err = m.Delete(1)
			require.NoError(t, err)
			assert.Equal(t, 1, p)
			assert.Equal(t, 4, m.Len())
			assert.Equal(t, []int{0, 2, 3, 4}, physicalOrder(t, m))

			// Delete logical 1 again (now physical 2).
			p, err = m.Delete(1)
			require.NoError(t, err)
			assert.Equal(t, 2, p)
			assert.Equal(t, 3, m.Len())
			assert.Equal(t, []int{0, 3, 4}, physicalOrder(t, m))
			assert.Equal(t, []int{1, 2}, m.Deleted())

			require.NoError(t, m.Reset(5))
			assert.Equal(t, 5, m.Len())
			assert.Equal(t, 0, m.DeletedLen())
			assert.Equal(t, []int{0, 1, 2, 3, 4}, physicalOrder(t, m))
		})
	}
}

func TestMapper_BeforeFirst(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(3)
			p, err := m.Physical(BeforeFirst)
			require.NoError(t, err)
			assert.Equal(t, BeforeFirst, p)
			assert.Equal(t, BeforeFirst, m.Logical(BeforeFirst))
		})
	}
}

func TestMapper_OutOfRange(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(3)
			_, err := m.Delete(1)
			require.NoError(t, err)

			_, err = m.Physical(2)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = m.Physical(-2)
			assert.ErrorIs(t, err, ErrOutOfRange)

			_, err = m.Delete(2)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = m.Delete(BeforeFirst)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Equal(t, 2, m.Len())

			assert.Equal(t, BeforeFirst, m.Logical(3))
			assert.False(t, m.DeletePhysical(3))
			assert.False(t, m.DeletePhysical(-1))
		})
	}
}

func TestMapper_LogicalOfDeleted(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(5)
			assert.True(t, m.DeletePhysical(2))
			assert.False(t, m.DeletePhysical(2))

			assert.True(t, m.IsDeleted(2))
			assert.Equal(t, BeforeFirst, m.Logical(2))
			assert.Equal(t, 2, m.Logical(3))
			assert.Equal(t, 2, m.Rank(2))
			assert.Equal(t, 2, m.Rank(3))
			assert.Equal(t, 0, m.Rank(0))
			assert.Equal(t, 4, m.Rank(5))
		})
	}
}

func TestMapper_Seed(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(6)
			rejected := m.Seed([]int{4, 1, 9, 1, -3})
			assert.Equal(t, []int{9, -3}, rejected)
			assert.Equal(t, 4, m.Len())
			assert.Equal(t, []int{0, 2, 3, 5}, physicalOrder(t, m))
		})
	}
}

func TestMapper_RemovePhysicalScenario(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(4)
			for p := range m.PhysicalLen() {
				if p == 0 || p == 2 {
					assert.True(t, m.DeletePhysical(p))
				}
			}
			assert.Equal(t, []int{1, 3}, physicalOrder(t, m))
		})
	}
}

func TestMapper_Empty(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(0)
			assert.Equal(t, 0, m.Len())
			_, err := m.Physical(0)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Empty(t, m.Deleted())
		})
	}
}

// TestMapper_Randomized drives both strategies and the oracle through the
// same random deletions and checks every property after each step.
func TestMapper_Randomized(t *testing.T) {
	const n = 300

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			rng := testutil.NewRNG(4711)
			m := s.new(n)
			oracle := testutil.NewOracle(n)

			for step := 0; step < 250; step++ {
				before := physicalOrder(t, m)

				if rng.Float64() < 0.7 {
					k := rng.Intn(oracle.Len())
					want := oracle.Delete(k)
					got, err := m.Delete(k)
					require.NoError(t, err)
					require.Equal(t, want, got)

					after := physicalOrder(t, m)
					assert.Equal(t, before[:k], after[:k])
					assert.Equal(t, before[k+1:], after[k:])
				} else {
					p := rng.Intn(n)
					require.Equal(t, oracle.DeletePhysical(p), m.DeletePhysical(p))
				}

				require.Equal(t, n-m.DeletedLen(), m.Len())
				require.Equal(t, oracle.Surviving(), physicalOrder(t, m))

				for p := range n {
					require.Equal(t, oracle.Logical(p), m.Logical(p), "physical %d", p)
					if l := m.Logical(p); l >= 0 {
						back, err := m.Physical(l)
						require.NoError(t, err)
						require.Equal(t, p, back)
						require.Equal(t, l, m.Rank(p))
					}
				}

				if oracle.Len() == 0 {
					break
				}
			}
		})
	}
}

func TestMapper_Sweep(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(8)
			require.Equal(t, 3, m.DeletePhysical(3))

			var seen [][2]int
			removed := m.Sweep(func(p, pos int) (bool, bool) {
				seen = append(seen, [2]int{p, pos})
				return p%2 == 0, false
			})

			assert.Equal(t, 4, removed)
			assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 1}, {4, 1}, {5, 1}, {6, 2}, {7, 2}}, seen)
			assert.Equal(t, []int{1, 5, 7}, physicalOrder(t, m))
			assert.Equal(t, []int{0, 2, 3, 4, 6}, m.Deleted())
			assert.Equal(t, 1, m.Logical(5))
			assert.Equal(t, 2, m.Rank(6))
		})
	}
}

func TestMapper_SweepStop(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(6)

			visited := 0
			removed := m.Sweep(func(p, _ int) (bool, bool) {
				visited++
				return p == 1 || p == 2, p == 2
			})

			assert.Equal(t, 3, visited)
			assert.Equal(t, 2, removed)
			assert.Equal(t, []int{0, 3, 4, 5}, physicalOrder(t, m))
			assert.Equal(t, 4, m.Len())

			p, err := m.Delete(3)
			require.NoError(t, err)
			assert.Equal(t, 5, p)
		})
	}
}

// TestMapper_SweepLarge removes every other row of a large table in a single
// sweep. Deleting one by one from the surviving list is quadratic here.
func TestMapper_SweepLarge(t *testing.T) {
	const n = 200_000

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			m := s.new(n)
			removed := m.Sweep(func(p, _ int) (bool, bool) {
				return p%2 == 0, false
			})

			require.Equal(t, n/2, removed)
			require.Equal(t, n/2, m.Len())

			p, err := m.Physical(n/2 - 1)
			require.NoError(t, err)
			assert.Equal(t, n-1, p)
			assert.Equal(t, n/4, m.Logical(n/2+1))
		})
	}
}

func TestMapper_ResetTooLarge(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("physical lengths above 32 bits need 64-bit ints")
	}

	// Only the skip strategy: the surviving list would allocate 2^32 ints.
	limit := MaxPhysicalLen
	maxLen := int(limit)

	m, err := NewSkip(maxLen + 5)
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, maxLen, m.PhysicalLen())

	last := maxLen - 1
	assert.True(t, m.DeletePhysical(last))
	assert.True(t, m.IsDeleted(last))
	assert.False(t, m.IsDeleted(0))
	assert.Equal(t, maxLen-1, m.Len())

	require.NoError(t, m.Reset(4))
	assert.Equal(t, 4, m.Len())
}

func BenchmarkSweep(b *testing.B) {
	const n = 100_000

	for _, s := range strategies {
		b.Run(s.name, func(b *testing.B) {
			for b.Loop() {
				m := s.new(n)
				m.Sweep(func(p, _ int) (bool, bool) {
					return p%2 == 0, false
				})
			}
		})
	}
}

func TestDeletionSet_BeyondUint32(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit ints")
	}

	limit := MaxPhysicalLen
	maxLen := int(limit)

	d := newDeletionSet()
	require.True(t, d.add(1))

	assert.False(t, d.contains(maxLen+1))
	assert.Equal(t, 1, d.rank(maxLen+1))
}
