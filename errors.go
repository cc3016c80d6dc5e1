package airportfta

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedTable     = errors.New("element table is not terminated within MaxElements rows")
	ErrTooManyElements       = errors.New("too many positions")
	ErrTooManyTerminals      = errors.New("too many terminals")
	ErrTooManyHelipads       = errors.New("too many helipads")
	ErrEntryPointOutOfBounds = errors.New("entry point out of bounds")
	ErrEmptyGroup            = errors.New("empty terminal or helipad group")
	ErrAlreadyInitialized    = errors.New("registry already initialized")
	ErrNotInitialized        = errors.New("registry not initialized")
)

// ValidationError reports the first state of an automaton that failed
// validation.
type ValidationError struct {
	Airport string
	Index   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("airport %q: problem with element %d", e.Airport, e.Index)
}
