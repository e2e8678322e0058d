package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested entity is absent
	ErrNotFound = errors.New("entity not found")
	// ErrPizzaNotFound is returned when no pizza has the requested id
	ErrPizzaNotFound = fmt.Errorf("pizza: %w", ErrNotFound)
	// ErrOrderNotFound is returned when no order has the requested id
	ErrOrderNotFound = fmt.Errorf("order: %w", ErrNotFound)
	// ErrPersistence wraps every failure reported by the store
	ErrPersistence = errors.New("store persistence failure")
)

// persistenceError tags err as a store failure while keeping it unwrappable,
// so callers can still detect context.DeadlineExceeded.
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
