package mapping

// Skip maps positions on demand by counting deleted positions below the
// target. It materializes nothing beyond the deletion set.
type Skip struct {
	physicalLen int
	deleted     deletionSet
}

var _ Mapper = (*Skip)(nil)

// NewSkip creates a Skip mapper over physicalLen rows with no deletions.
// As with NewSurviving, the mapper is usable when the error is ErrTooLarge.
func NewSkip(physicalLen int) (*Skip, error) {
	m := &Skip{deleted: newDeletionSet()}
	err := m.Reset(physicalLen)
	return m, err
}

func (m *Skip) Len() int { return m.physicalLen - m.deleted.len() }

func (m *Skip) PhysicalLen() int { return m.physicalLen }

// Physical finds the least p with p - rank(p) == pos, where rank counts
// deleted positions <= p. Starting at p = pos, each step adds the deletions
// skipped so far; p only grows and the loop stops after at most |D|+1 steps.
// The least such p is never itself deleted.
func (m *Skip) Physical(pos int) (int, error) {
	if pos == BeforeFirst {
		return BeforeFirst, nil
	}
	if pos < 0 || pos >= m.Len() {
		return 0, outOfRange("logical", pos, m.Len())
	}
	p := pos
	for {
		next := pos + m.deleted.rank(p)
		if next == p {
			return p, nil
		}
		p = next
	}
}

func (m *Skip) Logical(p int) int {
	if p < 0 || p >= m.physicalLen || m.deleted.contains(p) {
		return BeforeFirst
	}
	return p - m.deleted.rank(p)
}

func (m *Skip) Rank(p int) int {
	if p <= 0 {
		return 0
	}
	if p > m.physicalLen {
		p = m.physicalLen
	}
	return p - m.deleted.rank(p-1)
}

func (m *Skip) IsDeleted(p int) bool {
	return m.deleted.contains(p)
}

func (m *Skip) Delete(pos int) (int, error) {
	if pos < 0 || pos >= m.Len() {
		return 0, outOfRange("logical", pos, m.Len())
	}
	p, err := m.Physical(pos)
	if err != nil {
		return 0, err
	}
	m.deleted.add(p)
	return p, nil
}

func (m *Skip) DeletePhysical(p int) bool {
	if p < 0 || p >= m.physicalLen {
		return false
	}
	return m.deleted.add(p)
}

func (m *Skip) Sweep(visit func(p, pos int) (remove, stop bool)) int {
	pos, removed := 0, 0
	for p := 0; p < m.physicalLen; p++ {
		if m.deleted.contains(p) {
			continue
		}
		remove, stop := visit(p, pos)
		if remove {
			m.deleted.add(p)
			removed++
		} else {
			pos++
		}
		if stop {
			break
		}
	}
	return removed
}

func (m *Skip) Seed(ps []int) []int {
	var rejected []int
	for _, p := range ps {
		if p < 0 || p >= m.physicalLen {
			rejected = append(rejected, p)
			continue
		}
		m.deleted.add(p)
	}
	return rejected
}

func (m *Skip) Reset(physicalLen int) error {
	n, err := clampLen(physicalLen)
	m.physicalLen = n
	m.deleted.clear()
	return err
}

func (m *Skip) Deleted() []int { return m.deleted.toSlice() }

func (m *Skip) DeletedLen() int { return m.deleted.len() }
