package rowview

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// Unprintable is written by Dump in place of a value that has no text form.
const Unprintable = "<unprintable>"

// Row reads the row a Cursor is positioned on. It is handed to callbacks
// that run while the cursor is locked and is only valid during that call.
type Row struct {
	c   *Cursor
	pos int // logical position, BeforeFirst once removed
}

// Position returns the logical position of the row, or BeforeFirst if the
// row has been removed.
func (r Row) Position() int {
	return r.pos
}

// PhysicalPosition returns the position of the row in the source.
func (r Row) PhysicalPosition() int {
	return r.c.phys
}

// Columns returns the column names of the source.
func (r Row) Columns() []string {
	return r.c.src.Columns()
}

// FieldString renders column index as text.
func (r Row) FieldString(index int) (string, error) {
	return r.c.src.FieldString(index)
}

// Dump writes the row's fields to w on one line, each followed by a space.
// Values without a text form are written as Unprintable. Spaces inside a
// value are written as '≥' so the line splits cleanly on ' '.
func (r Row) Dump(w io.Writer) error {
	var sb strings.Builder
	for i := range r.c.src.Columns() {
		v, err := r.c.src.FieldString(i)
		if err != nil {
			if !errors.Is(err, ErrUnrepresentableValue) {
				return err
			}
			v = Unprintable
		}
		sb.WriteString(strings.ReplaceAll(v, " ", "≥"))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// Iterator is the handle passed to ForEach callbacks.
type Iterator struct {
	Row
	pos     int
	removed bool
}

// Position returns the logical position being visited.
func (it *Iterator) Position() int {
	return it.pos
}

// Remove deletes the row being visited from the view. The row leaves the
// view when the callback returns; from here on Row.Position reports
// BeforeFirst. It returns ErrAlreadyRemoved if the row was already removed
// during this visit.
func (it *Iterator) Remove() error {
	if it.removed {
		return ErrAlreadyRemoved
	}
	c := it.c
	start := time.Now()
	it.removed = true
	it.Row.pos = BeforeFirst
	c.logger.LogDelete(context.Background(), it.pos, c.phys, nil)
	c.metrics.RecordDelete(time.Since(start), nil)
	return nil
}
