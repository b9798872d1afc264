package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Intn(1000)
	rng.Reset()
	b := rng.Intn(1000)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestSubset(t *testing.T) {
	rng := NewRNG(4711)

	assert.Empty(t, rng.Subset(50, 0))
	assert.Len(t, rng.Subset(50, 1), 50)

	s := rng.Subset(1000, 0.3)
	assert.IsIncreasing(t, s)
}

func TestOracle(t *testing.T) {
	o := NewOracle(5)
	assert.Equal(t, 5, o.Len())

	assert.Equal(t, 1, o.Delete(1))
	assert.Equal(t, []int{0, 2, 3, 4}, o.Surviving())
	assert.Equal(t, -1, o.Logical(1))
	assert.Equal(t, 1, o.Logical(2))

	assert.True(t, o.DeletePhysical(4))
	assert.False(t, o.DeletePhysical(4))
	assert.Equal(t, 3, o.Len())

	o.Reset(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, o.Surviving())
}
