package mapping

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// deletionSet is the set of deleted physical positions.
// It wraps a 32-bit Roaring bitmap.
type deletionSet struct {
	rb *roaring.Bitmap
}

func newDeletionSet() deletionSet {
	return deletionSet{rb: roaring.New()}
}

// add inserts p and reports whether it was newly added.
func (d deletionSet) add(p int) bool {
	return d.rb.CheckedAdd(uint32(p))
}

func (d deletionSet) contains(p int) bool {
	if p < 0 || int64(p) >= MaxPhysicalLen {
		return false
	}
	return d.rb.Contains(uint32(p))
}

// rank returns the number of deleted positions <= p.
func (d deletionSet) rank(p int) int {
	if p < 0 {
		return 0
	}
	if int64(p) >= MaxPhysicalLen {
		return d.len()
	}
	return int(d.rb.Rank(uint32(p)))
}

func (d deletionSet) len() int {
	return int(d.rb.GetCardinality())
}

func (d deletionSet) clear() {
	d.rb.Clear()
}

func (d deletionSet) toSlice() []int {
	out := make([]int, 0, d.rb.GetCardinality())
	it := d.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
