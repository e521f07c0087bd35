package timerange

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument   = errors.New("illegal argument")
	ErrInvalidStep       = fmt.Errorf("%w: invalid step", ErrIllegalArgument)
	ErrCalendarOverflow  = errors.New("calendar overflow")
	ErrExhaustedSequence = errors.New("exhausted sequence")
	ErrNoProgress        = errors.New("no forward progress")
)

// errScheduleEnded is returned by an advance function when there are no
// further points to produce. It ends iteration without an error.
var errScheduleEnded = errors.New("schedule ended")

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// invalidStepError returns an invalid step error with a custom error
// message, which unwraps to ErrInvalidStep and ErrIllegalArgument.
func invalidStepError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidStep, message)
}

// calendarOverflowError returns a calendar overflow error with a custom
// error message, which unwraps to ErrCalendarOverflow.
func calendarOverflowError(message string) error {
	return fmt.Errorf("%w: %s", ErrCalendarOverflow, message)
}

// noProgressError returns an error that unwraps to ErrNoProgress.
func noProgressError(from, to any) error {
	return fmt.Errorf("%w: %v advanced to %v", ErrNoProgress, from, to)
}

// exhaustedSequenceError returns an error that unwraps to
// ErrExhaustedSequence.
func exhaustedSequenceError() error {
	return fmt.Errorf("%w: no more elements", ErrExhaustedSequence)
}
