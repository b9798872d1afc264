package rowview

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rowview/internal/mapping"
)

var (
	// ErrOutOfRange is returned when a logical or physical position lies
	// outside the current bounds.
	ErrOutOfRange = errors.New("position out of range")

	// ErrUnrepresentableValue is returned by a Source when a field cannot be
	// rendered as text, e.g. a binary payload.
	ErrUnrepresentableValue = errors.New("value not representable as text")

	// ErrOperationFailed is returned by Of when the seek or the supplied
	// function fails.
	ErrOperationFailed = errors.New("operation failed")

	// ErrAlreadyRemoved is returned by Iterator.Remove when the current
	// element was already removed.
	ErrAlreadyRemoved = errors.New("element already removed")
)

// OperationError reports a failure captured by Of.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type OperationError struct {
	Position int
	cause    error
}

func (e *OperationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("operation at position %d failed", e.Position)
	}
	return fmt.Sprintf("operation at position %d failed: %v", e.Position, e.cause)
}

// Is makes every OperationError match ErrOperationFailed.
func (e *OperationError) Is(target error) bool { return target == ErrOperationFailed }

func (e *OperationError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mapping.ErrOutOfRange) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return err
}
