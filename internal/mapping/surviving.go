package mapping

import (
	"slices"
	"sort"
)

// Surviving maps positions through an explicit list of surviving physical
// positions. surviving[i] is the physical position of logical position i.
type Surviving struct {
	physicalLen int
	surviving   []int
	deleted     deletionSet
}

var _ Mapper = (*Surviving)(nil)

// NewSurviving creates a Surviving mapper over physicalLen rows with no
// deletions. The mapper is usable even when the error is ErrTooLarge; it
// then covers the first MaxPhysicalLen rows.
func NewSurviving(physicalLen int) (*Surviving, error) {
	m := &Surviving{deleted: newDeletionSet()}
	err := m.Reset(physicalLen)
	return m, err
}

func (m *Surviving) Len() int { return len(m.surviving) }

func (m *Surviving) PhysicalLen() int { return m.physicalLen }

func (m *Surviving) Physical(pos int) (int, error) {
	if pos == BeforeFirst {
		return BeforeFirst, nil
	}
	if pos < 0 || pos >= len(m.surviving) {
		return 0, outOfRange("logical", pos, len(m.surviving))
	}
	return m.surviving[pos], nil
}

func (m *Surviving) Logical(p int) int {
	i, found := slices.BinarySearch(m.surviving, p)
	if !found {
		return BeforeFirst
	}
	return i
}

func (m *Surviving) Rank(p int) int {
	return sort.SearchInts(m.surviving, p)
}

func (m *Surviving) IsDeleted(p int) bool {
	return m.deleted.contains(p)
}

func (m *Surviving) Delete(pos int) (int, error) {
	if pos < 0 || pos >= len(m.surviving) {
		return 0, outOfRange("logical", pos, len(m.surviving))
	}
	p := m.surviving[pos]
	m.deleted.add(p)
	m.surviving = slices.Delete(m.surviving, pos, pos+1)
	return p, nil
}

func (m *Surviving) DeletePhysical(p int) bool {
	i, found := slices.BinarySearch(m.surviving, p)
	if !found {
		return false
	}
	m.deleted.add(p)
	m.surviving = slices.Delete(m.surviving, i, i+1)
	return true
}

// Sweep compacts the surviving list in place: kept positions are written
// back at a trailing index, so the pass is O(n) however many rows it removes.
func (m *Surviving) Sweep(visit func(p, pos int) (remove, stop bool)) int {
	w, removed := 0, 0
	for r := 0; r < len(m.surviving); r++ {
		p := m.surviving[r]
		remove, stop := visit(p, w)
		if remove {
			m.deleted.add(p)
			removed++
		} else {
			m.surviving[w] = p
			w++
		}
		if stop {
			w += copy(m.surviving[w:], m.surviving[r+1:])
			break
		}
	}
	m.surviving = m.surviving[:w]
	return removed
}

func (m *Surviving) Seed(ps []int) []int {
	var rejected []int
	added := 0
	for _, p := range ps {
		if p < 0 || p >= m.physicalLen {
			rejected = append(rejected, p)
			continue
		}
		if m.deleted.add(p) {
			added++
		}
	}
	if added > 0 {
		m.rebuild()
	}
	return rejected
}

func (m *Surviving) Reset(physicalLen int) error {
	n, err := clampLen(physicalLen)
	m.physicalLen = n
	m.deleted.clear()
	m.rebuild()
	return err
}

// rebuild recomputes the surviving list from the deletion set in O(physicalLen).
func (m *Surviving) rebuild() {
	n := m.physicalLen - m.deleted.len()
	if cap(m.surviving) >= n {
		m.surviving = m.surviving[:0]
	} else {
		m.surviving = make([]int, 0, n)
	}
	for p := 0; p < m.physicalLen; p++ {
		if !m.deleted.contains(p) {
			m.surviving = append(m.surviving, p)
		}
	}
}

func (m *Surviving) Deleted() []int { return m.deleted.toSlice() }

func (m *Surviving) DeletedLen() int { return m.deleted.len() }
