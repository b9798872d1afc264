// Package source provides rowview.Source implementations.
//
// [Table] holds rows in memory and supports random-access seeking. [Query]
// materializes the result of a database/sql query into a Table, so any
// driver (for example modernc.org/sqlite) can back a rowview.Cursor.
package source
