package rowview

import (
	"fmt"
	"strconv"
)

// fakeSource is a Source over rows of strings. A nil field is unprintable.
type fakeSource struct {
	columns []string
	rows    [][]*string
	pos     int
	seeks   int
	reject  map[int]bool // physical positions Seek refuses
}

func newFakeSource(n int) *fakeSource {
	s := &fakeSource{columns: []string{"id", "name"}, pos: BeforeFirst}
	for i := range n {
		id, name := strconv.Itoa(i), fmt.Sprintf("row %d", i)
		s.rows = append(s.rows, []*string{&id, &name})
	}
	return s
}

func (s *fakeSource) Count() int { return len(s.rows) }

func (s *fakeSource) Columns() []string { return s.columns }

func (s *fakeSource) Seek(pos int) bool {
	s.seeks++
	if pos < 0 || pos >= len(s.rows) || s.reject[pos] {
		s.pos = BeforeFirst
		return false
	}
	s.pos = pos
	return true
}

func (s *fakeSource) FieldString(index int) (string, error) {
	if s.pos < 0 {
		return "", ErrOutOfRange
	}
	v := s.rows[s.pos][index]
	if v == nil {
		return "", fmt.Errorf("column %d: %w", index, ErrUnrepresentableValue)
	}
	return *v, nil
}

// id returns the id field of the current row.
func id(r Row) int {
	v, err := r.FieldString(0)
	if err != nil {
		return BeforeFirst
	}
	n, _ := strconv.Atoi(v)
	return n
}

// hugeSource reports more rows than a 32-bit deletion set can address.
type hugeSource struct {
	count int
}

func (s hugeSource) Count() int { return s.count }

func (hugeSource) Columns() []string { return []string{"id"} }

func (s hugeSource) Seek(pos int) bool { return pos >= 0 && pos < s.count }

func (hugeSource) FieldString(int) (string, error) { return "", nil }
