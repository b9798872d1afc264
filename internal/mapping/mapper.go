package mapping

import (
	"errors"
	"fmt"
)

// BeforeFirst is the position before the first row, in both spaces.
const BeforeFirst = -1

// MaxPhysicalLen is the largest physical length a Mapper can address.
// Deletion sets are 32-bit Roaring bitmaps.
const MaxPhysicalLen int64 = 1 << 32

var (
	// ErrOutOfRange is returned when a position lies outside the current bounds.
	ErrOutOfRange = errors.New("mapping: position out of range")

	// ErrTooLarge is returned when a physical length exceeds MaxPhysicalLen.
	ErrTooLarge = errors.New("mapping: physical length exceeds 32-bit positions")
)

// Mapper translates logical positions to physical positions and back while
// tracking a growing set of deleted physical positions.
type Mapper interface {
	// Len returns the logical count: physical count minus deletions.
	Len() int

	// PhysicalLen returns the size of the physical sequence.
	PhysicalLen() int

	// Physical returns the physical position of logical position pos.
	// BeforeFirst maps to BeforeFirst.
	Physical(pos int) (int, error)

	// Logical returns the logical position of physical position p,
	// or BeforeFirst if p is deleted or out of range.
	Logical(p int) int

	// Rank returns the number of surviving physical positions strictly below p.
	// For a surviving p it equals Logical(p).
	Rank(p int) int

	// IsDeleted reports whether physical position p is deleted.
	IsDeleted(p int) bool

	// Delete removes logical position pos from the view and returns the
	// physical position it mapped to.
	Delete(pos int) (int, error)

	// DeletePhysical removes physical position p from the view.
	// It reports false if p was already deleted or out of range.
	DeletePhysical(p int) bool

	// Sweep visits every surviving physical position p in ascending order
	// together with its logical position pos, counting removals made earlier
	// in the same sweep. visit reports whether to delete p and whether to stop
	// after p. Sweep runs in one pass and returns the number of deletions.
	Sweep(visit func(p, pos int) (remove, stop bool)) int

	// Seed deletes a batch of physical positions and returns the ones that
	// were out of range. Positions already deleted are ignored.
	Seed(ps []int) (rejected []int)

	// Reset empties the deletion set and adopts a new physical length.
	// A length above MaxPhysicalLen is clamped and reported as ErrTooLarge.
	Reset(physicalLen int) error

	// Deleted returns the deleted physical positions in ascending order.
	Deleted() []int

	// DeletedLen returns the size of the deletion set.
	DeletedLen() int
}

func outOfRange(kind string, pos, limit int) error {
	return fmt.Errorf("%w: %s position %d not in [0, %d)", ErrOutOfRange, kind, pos, limit)
}

// clampLen bounds n to [0, MaxPhysicalLen].
func clampLen(n int) (int, error) {
	if n < 0 {
		return 0, nil
	}
	if limit := MaxPhysicalLen; int64(n) > limit {
		return int(limit), fmt.Errorf("%w: %d > %d", ErrTooLarge, n, limit)
	}
	return n, nil
}
