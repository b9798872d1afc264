package source

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hupe1980/rowview"
)

// Null is the text form of a nil field.
const Null = "NULL"

// Table is an in-memory Source. It is safe for concurrent reads once built,
// except that Seek moves a single shared position.
type Table struct {
	columns []string
	rows    [][]any
	pos     int
}

var _ rowview.Source = (*Table)(nil)

// NewTable creates a Table positioned before its first row.
// Every row must have one value per column.
func NewTable(columns []string, rows [][]any) (*Table, error) {
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("source: row %d has %d values, want %d", i, len(r), len(columns))
		}
	}
	return &Table{columns: columns, rows: rows, pos: rowview.BeforeFirst}, nil
}

func (t *Table) Count() int { return len(t.rows) }

func (t *Table) Columns() []string { return t.columns }

func (t *Table) Seek(pos int) bool {
	if pos < 0 || pos >= len(t.rows) {
		t.pos = rowview.BeforeFirst
		return false
	}
	t.pos = pos
	return true
}

// Value returns the raw value of column index in the current row.
func (t *Table) Value(index int) (any, error) {
	if t.pos < 0 {
		return nil, fmt.Errorf("source: no current row: %w", rowview.ErrOutOfRange)
	}
	if index < 0 || index >= len(t.columns) {
		return nil, fmt.Errorf("source: column %d not in [0, %d): %w", index, len(t.columns), rowview.ErrOutOfRange)
	}
	return t.rows[t.pos][index], nil
}

func (t *Table) FieldString(index int) (string, error) {
	v, err := t.Value(index)
	if err != nil {
		return "", err
	}
	return format(v)
}

func format(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case string:
		return x, nil
	case []byte:
		return "", fmt.Errorf("source: %d-byte blob: %w", len(x), rowview.ErrUnrepresentableValue)
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprint(x), nil
	}
}
