package pricing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the calculator. Callers match them
// with errors.Is.
var (
	// ErrInvalidPercentage means a discount or VAT percentage is outside [0, 100].
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

	// ErrInvalidLineItem means a line item has a negative quantity, a negative
	// unit price, or a total that does not equal unit price times quantity.
	ErrInvalidLineItem = errors.New("invalid line item")
)

// ValidationError wraps a sentinel error with the offending field.
type ValidationError struct {
	Err     error
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Field, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
