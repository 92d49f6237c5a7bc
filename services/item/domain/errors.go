package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrValidation indicates the submitted item fields violate domain constraints.
	ErrValidation = errors.New("validation failed")

	// ErrInternal indicates an unexpected failure. Its details are never shown to clients.
	ErrInternal = errors.New("internal error")
)

// NotFoundError reports a lookup by an id that is unknown or not an integer.
// ID holds the id exactly as the caller supplied it.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Item with ID %s does not exist", e.ID)
}

// Is makes errors.Is(err, ErrItemNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}

// ValidationError carries every failed field rule, in field order.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Details, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
