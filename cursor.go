package rowview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hupe1980/rowview/internal/mapping"
)

// BeforeFirst is the position before the first row.
const BeforeFirst = mapping.BeforeFirst

var errBeforeFirst = errors.New("cursor is before the first row")

// Cursor is a deletion-filtered view over a Source.
//
// Rows are deleted from the view without touching the Source. Logical
// positions index the rows that remain; physical positions index the Source.
// A Cursor owns its deletion set and tracks the physical row it is
// positioned on.
//
// All methods are safe for concurrent use. Translations take a shared lock;
// navigation, deletion, and traversal take an exclusive lock.
type Cursor struct {
	mu       sync.RWMutex
	src      Source
	m        mapping.Mapper
	phys     int // current physical position or BeforeFirst
	strategy Strategy
	metrics  MetricsCollector
	logger   *Logger
}

// New creates a Cursor over src positioned before the first row.
func New(src Source, optFns ...Option) *Cursor {
	opts := applyOptions(optFns)

	c := &Cursor{
		src:      src,
		phys:     BeforeFirst,
		strategy: opts.strategy,
		metrics:  opts.metricsCollector,
		logger:   opts.logger.WithStrategy(opts.strategy),
	}
	n := src.Count()
	m, err := newMapper(opts.strategy, n)
	if err != nil {
		c.logger.LogSourceTooLarge(context.Background(), n, m.PhysicalLen())
	}
	c.m = m

	if len(opts.deleted) > 0 {
		rejected := c.m.Seed(opts.deleted)
		c.logger.LogSeed(context.Background(), len(opts.deleted)-len(rejected), rejected)
	}

	return c
}

func newMapper(s Strategy, n int) (mapping.Mapper, error) {
	if s == StrategySkip {
		return mapping.NewSkip(n)
	}
	return mapping.NewSurviving(n)
}

// Strategy returns the mapping strategy in use.
func (c *Cursor) Strategy() Strategy { return c.strategy }

// Columns returns the column names of the source.
func (c *Cursor) Columns() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.src.Columns()
}

// Count returns the number of rows in the view.
func (c *Cursor) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.m.Len()
}

// Physical returns the physical position of logical position pos.
// Physical(BeforeFirst) is BeforeFirst. An out-of-range pos is logged and
// reported as ErrOutOfRange.
func (c *Cursor) Physical(pos int) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, err := c.m.Physical(pos)
	if err != nil {
		c.logger.LogOutOfRange(context.Background(), "physical", pos, c.m.Len())
		c.metrics.RecordOutOfRange()
	}
	return p, translateError(err)
}

// Logical returns the logical position of physical position p, or
// BeforeFirst if p is deleted or outside the source.
func (c *Cursor) Logical(p int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.m.Logical(p)
}

// Position returns the logical position of the current row. It is
// BeforeFirst when the cursor is before the first row or when the current
// row has been deleted since the cursor moved there.
func (c *Cursor) Position() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.m.Logical(c.phys)
}

// IsBeforeFirst reports whether the cursor is positioned before the first row.
func (c *Cursor) IsBeforeFirst() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phys == BeforeFirst
}

// Deleted returns the deleted physical positions in ascending order.
func (c *Cursor) Deleted() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.m.Deleted()
}

// MoveToPosition moves the cursor to logical position pos and reports
// whether it now addresses a row. MoveToPosition(BeforeFirst) moves before
// the first row and returns false. Any other position outside [0, Count())
// is logged and leaves the cursor where it was.
func (c *Cursor) MoveToPosition(pos int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekLocked("moveToPosition", pos) == nil
}

// MoveToFirst moves the cursor to logical position 0.
func (c *Cursor) MoveToFirst() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekLocked("moveToFirst", 0) == nil
}

// MoveToLast moves the cursor to logical position Count()-1.
// On an empty view it moves before the first row and returns false.
func (c *Cursor) MoveToLast() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekLocked("moveToLast", c.m.Len()-1) == nil
}

// MoveToNext moves the cursor one row forward. If the current row was
// deleted, it moves to the row that followed it. At the end of the view it
// returns false and leaves the cursor in place.
func (c *Cursor) MoveToNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.m.Rank(c.phys + 1)
	if next >= c.m.Len() {
		return false
	}
	return c.seekLocked("moveToNext", next) == nil
}

// MoveToPrevious moves the cursor one row back. From the first row it
// moves before the first row and returns false.
func (c *Cursor) MoveToPrevious() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekLocked("moveToPrevious", c.m.Rank(c.phys)-1) == nil
}

// Move moves the cursor by offset rows relative to the current row.
// Offsets are counted from the nearest surviving neighbour when the current
// row has been deleted. Landing exactly on BeforeFirst moves before the
// first row; any other target outside the view is logged and leaves the
// cursor where it was.
func (c *Cursor) Move(offset int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var target int
	switch {
	case offset > 0:
		// base >= BeforeFirst, so n-base cannot overflow.
		base, n := c.m.Rank(c.phys+1)-1, c.m.Len()
		if offset >= n-base {
			target = n
		} else {
			target = base + offset
		}
	case offset < 0:
		target = c.m.Rank(c.phys) + offset
	default:
		return c.phys != BeforeFirst && !c.m.IsDeleted(c.phys)
	}
	return c.seekLocked("move", target) == nil
}

// seekLocked positions both the cursor and the source on logical position pos.
// Caller must hold the write lock.
func (c *Cursor) seekLocked(op string, pos int) error {
	if pos == BeforeFirst {
		c.phys = BeforeFirst
		c.src.Seek(BeforeFirst)
		return errBeforeFirst
	}

	p, err := c.m.Physical(pos)
	if err != nil {
		c.logger.LogOutOfRange(context.Background(), op, pos, c.m.Len())
		c.metrics.RecordOutOfRange()
		return translateError(err)
	}

	if err := c.seekSourceLocked(p); err != nil {
		c.logger.LogOutOfRange(context.Background(), op, pos, c.m.Len())
		c.metrics.RecordOutOfRange()
		return err
	}
	return nil
}

// seekSourceLocked moves the source to physical position p and, only if the
// source accepts it, the cursor as well.
func (c *Cursor) seekSourceLocked(p int) error {
	if !c.src.Seek(p) {
		return fmt.Errorf("%w: source rejected physical position %d", ErrOutOfRange, p)
	}
	c.phys = p
	return nil
}

// Delete removes the row at logical position pos from the view. Every row
// after it moves down one logical position. An out-of-range position is
// logged and reported as ErrOutOfRange; the view is left unchanged.
func (c *Cursor) Delete(pos int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	p, err := c.m.Delete(pos)
	err = translateError(err)

	c.logger.LogDelete(context.Background(), pos, p, err)
	c.metrics.RecordDelete(time.Since(start), err)

	return err
}

// Clear empties the deletion set and re-reads the source row count, so the
// view maps every position to itself again. A cursor that now lies beyond
// the source moves before the first row.
func (c *Cursor) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := c.m.DeletedLen()
	n := c.src.Count()
	if err := c.m.Reset(n); err != nil {
		c.logger.LogSourceTooLarge(context.Background(), n, c.m.PhysicalLen())
	}
	if c.phys >= c.m.PhysicalLen() {
		c.phys = BeforeFirst
		c.src.Seek(BeforeFirst)
	}

	c.logger.LogClear(context.Background(), dropped, c.m.Len())
	c.metrics.RecordClear(dropped)
}

// ForEach calls visit for every row of the view in ascending logical order,
// with the source positioned on that row. visit may remove the current row
// through the Iterator; the row leaves the view as soon as visit returns and
// the traversal neither skips nor repeats rows because of it. The whole
// pass is linear in the number of rows.
//
// The cursor is locked while visit runs: visit must use the Iterator, not
// the Cursor. A non-nil error from visit stops the traversal and is returned,
// as is ErrOutOfRange if the source rejects a row.
func (c *Cursor) ForEach(visit func(it *Iterator) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	it := &Iterator{Row: Row{c: c}}
	visited := 0

	var err error
	removed := c.m.Sweep(func(p, pos int) (bool, bool) {
		if err = c.seekSourceLocked(p); err != nil {
			return false, true
		}
		it.Row.pos = pos
		it.pos = pos
		it.removed = false

		err = visit(it)
		visited++
		return it.removed, err != nil
	})

	c.logger.LogTraversal(context.Background(), "forEach", visited, removed, err)
	c.metrics.RecordTraversal(visited, removed, time.Since(start))

	return err
}

// RemoveIf visits every surviving physical row in ascending order with the
// source positioned on it, and deletes the rows for which pred returns true.
// Each surviving row is visited exactly once, in one linear pass. Rows the
// source refuses to seek to are kept. It returns the number of rows removed.
//
// The cursor is locked while pred runs: pred must use the Row, not the Cursor.
func (c *Cursor) RemoveIf(pred func(r Row) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	visited := 0

	removed := c.m.Sweep(func(p, pos int) (bool, bool) {
		if c.seekSourceLocked(p) != nil {
			return false, false
		}
		visited++
		return pred(Row{c: c, pos: pos}), false
	})

	c.logger.LogTraversal(context.Background(), "removeIf", visited, removed, nil)
	c.metrics.RecordTraversal(visited, removed, time.Since(start))

	return removed
}

// DumpCurrentRow writes the fields of the current row to w as one line.
// Fields are separated by a space; see Row.Dump.
func (c *Cursor) DumpCurrentRow(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phys == BeforeFirst {
		return fmt.Errorf("%w: %w", ErrOutOfRange, errBeforeFirst)
	}
	return Row{c: c, pos: c.m.Logical(c.phys)}.Dump(w)
}

// Of moves c to logical position pos and runs fn there while holding the
// cursor lock. A failed seek, an error from fn, or a panic in fn is returned
// as an *OperationError that matches ErrOperationFailed; Of itself never
// panics.
func Of[T any](c *Cursor, pos int, fn func(r Row) (T, error)) (result T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = &OperationError{Position: pos, cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	if serr := c.seekLocked("of", pos); serr != nil {
		return result, &OperationError{Position: pos, cause: serr}
	}

	result, err = fn(Row{c: c, pos: pos})
	if err != nil {
		return result, &OperationError{Position: pos, cause: err}
	}
	return result, nil
}
