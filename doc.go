// Package rowview provides deletion-filtered views over row sequences.
//
// A [Cursor] wraps a [Source] (any sequence of rows addressed by integer
// position) and lets callers delete rows from the view without moving or
// copying the underlying data. Callers navigate logical positions; the cursor
// translates each one to the physical row it currently maps to.
//
// # Quick Start
//
//	tbl, _ := source.Query(ctx, db, "SELECT id, title FROM books")
//	c := rowview.New(tbl)
//
//	c.Delete(1)            // hide the second row
//	for c.MoveToNext() {   // walk what remains
//	    c.DumpCurrentRow(os.Stdout)
//	}
//
// # Deleting While Iterating
//
// ForEach visits the view in logical order and allows removing the current
// row; RemoveIf visits surviving physical rows and removes those matching a
// predicate:
//
//	c.ForEach(func(it *rowview.Iterator) error {
//	    if v, _ := it.FieldString(0); v == "" {
//	        return it.Remove()
//	    }
//	    return nil
//	})
//
//	c.RemoveIf(func(r rowview.Row) bool {
//	    v, _ := r.FieldString(1)
//	    return strings.HasPrefix(v, "draft")
//	})
//
// # Positions
//
// Logical positions run from 0 to Count()-1. [BeforeFirst] (-1) is the
// position before the first row. MoveToLast moves to Count()-1. Position
// reports BeforeFirst for a row that was deleted after the cursor moved onto
// it; MoveToNext and MoveToPrevious continue from its neighbours.
//
// Out-of-range navigation and deletes are logged, counted, and ignored
// rather than treated as fatal, since a caller may hold a logical position
// across deletions that shift it.
//
// # Strategies
//
// [StrategySurviving] (default) keeps the list of surviving physical
// positions: O(1) forward lookups, O(log n) reverse lookups, O(n) deletes.
// [StrategySkip] keeps only the deletion set: memory proportional to the
// number of deletions, forward lookups bounded by |D|+1 bitmap rank queries.
//
// # Concurrency
//
// A Cursor serializes all access with a read/write mutex. Callbacks passed to
// ForEach, RemoveIf, and [Of] run under the lock and must use the handle they
// receive instead of calling back into the Cursor.
package rowview
