package truthtable

import (
	"fmt"
)

// TooManyVariablesError is returned when an expression references more
// distinct variables than the configured limit allows.
type TooManyVariablesError struct {
	Limit int
	Count int
}

// NewTooManyVariablesError creates a new TooManyVariablesError.
func NewTooManyVariablesError(limit, count int) error {
	return &TooManyVariablesError{Limit: limit, Count: count}
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("expression has %d distinct variables, the limit is %d", e.Count, e.Limit)
}
