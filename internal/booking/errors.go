package booking

import (
	"errors"
	"fmt"
)

// ErrCalendarNotReady means calendar authentication never succeeded at
// startup. Nothing is inserted or emailed; the operator has to fix the
// credentials and restart.
var ErrCalendarNotReady = errors.New("calendar is not authenticated")

// ValidationError rejects a request before any external call is made.
type ValidationError struct {
	Field  string
	Reason string
	// OutOfSchedule marks a date/time pair that is not a configured slot.
	OutOfSchedule bool
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
