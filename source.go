package rowview

// Source is the physical row sequence a Cursor filters.
//
// A Source is only ever read by the Cursor. Its row count must not change
// while a Cursor uses it; Cursor.Clear re-reads Count.
type Source interface {
	// Count returns the number of physical rows.
	Count() int

	// Seek positions the source at physical row pos and reports whether pos
	// addresses a row. Seek(-1) positions before the first row.
	Seek(pos int) bool

	// Columns returns the column names of the rows.
	Columns() []string

	// FieldString renders column index of the current row as text.
	// It returns an error wrapping ErrUnrepresentableValue when the value
	// has no text form.
	FieldString(index int) (string, error)
}
