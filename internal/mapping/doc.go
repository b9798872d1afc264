// Package mapping translates between logical and physical row positions.
//
// A physical position indexes the untouched underlying sequence. A logical
// position indexes the view that remains once a set of physical positions has
// been deleted. Deletions never move data; they only change the mapping.
//
// Two interchangeable strategies implement [Mapper]:
//
//   - [Surviving] keeps the ascending list of surviving physical positions.
//     Physical is O(1); Logical and Rank are O(log n) binary searches because
//     the list is sorted and therefore doubles as its own rank index. Delete
//     shifts the tail of the list, O(n).
//   - [Skip] keeps only the deletion set. Logical is one bitmap rank query,
//     O(log |D|). Physical runs a bounded fixed-point loop of at most |D|+1
//     rank queries. Nothing proportional to the physical size is allocated.
//
// Both strategies store the deletion set in a 32-bit Roaring bitmap, which
// bounds physical positions to the uint32 range. Reset clamps longer sources
// to MaxPhysicalLen and returns ErrTooLarge.
//
// Sweep removes many rows in one ascending pass. For [Surviving] it compacts
// the list in place, so bulk removal stays O(n) instead of O(n) per row.
//
// Mappers are not safe for concurrent use; callers provide mutual exclusion.
package mapping
