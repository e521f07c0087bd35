package timerange

import (
	"fmt"
	"time"
)

func rejectStep(o options, step fmt.Stringer, reason string) error {
	o.logger.Debug("Rejected progression step", "step", step, "reason", reason)
	return invalidStepError(fmt.Sprintf("%s: %s", reason, step))
}

// Step returns the progression over r in increments of the elapsed
// duration d. It fails with ErrInvalidStep unless d is positive.
func (r InstantRange) Step(d time.Duration, opts ...Option) (*InstantProgression, error) {
	o := newOptions(opts)
	if !IsPositiveDuration(d) {
		return nil, rejectStep(o, d, "step must be positive")
	}
	return &InstantProgression{
		progression: newProgression(r.bounds, addInstant(d), o.logger, d.String()),
		step:        d,
	}, nil
}

// Step returns the progression over r in increments of the calendar
// period p. It fails with ErrInvalidStep unless p moves dates forward.
func (r DateRange) Step(p Period, opts ...Option) (*DateProgression, error) {
	o := newOptions(opts)
	if !IsPositivePeriod(p) {
		return nil, rejectStep(o, p, "step must be positive")
	}
	return &DateProgression{
		progression: newProgression(r.bounds, addDatePeriod(p), o.logger, p.String()),
		step:        p,
	}, nil
}

// StepDuration returns the progression over r in increments of the
// elapsed duration d. Each step resolves the date-time to an instant in the
// progression's location, [time.Local] unless set by [WithLocation]. It
// fails with ErrInvalidStep unless d is positive.
func (r DateTimeRange) StepDuration(d time.Duration, opts ...Option) (*DateTimeDurationProgression, error) {
	o := newOptions(opts)
	if !IsPositiveDuration(d) {
		return nil, rejectStep(o, d, "step must be positive")
	}
	return &DateTimeDurationProgression{
		progression: newProgression(r.bounds, addDateTimeDuration(d, o.location), o.logger,
			d.String()),
		step:     d,
		location: o.location,
	}, nil
}

// StepPeriod returns the progression over r in increments of the calendar
// period p, keeping the time of day. It fails with ErrInvalidStep unless p
// moves dates forward.
func (r DateTimeRange) StepPeriod(p Period, opts ...Option) (*DateTimeCalendarProgression, error) {
	o := newOptions(opts)
	if !IsPositivePeriod(p) {
		return nil, rejectStep(o, p, "step must be positive")
	}
	return &DateTimeCalendarProgression{
		progression: newProgression(r.bounds, addDateTimePeriod(p), o.logger, p.String()),
		step:        p,
	}, nil
}

// StepDateTimePeriod returns the progression over r in increments of the
// combined period p. The calendar part is applied first and the duration
// part second, in the progression's location, [time.Local] unless set by
// [WithLocation]. It fails with ErrInvalidStep unless p moves date-times
// forward in that location.
func (r DateTimeRange) StepDateTimePeriod(p DateTimePeriod, opts ...Option) (*DateTimeCombinedProgression, error) {
	o := newOptions(opts)
	if !IsPositiveDateTimePeriod(p, o.location) {
		return nil, rejectStep(o, p, fmt.Sprintf("step must be positive in %s", o.location))
	}
	return &DateTimeCombinedProgression{
		progression: newProgression(r.bounds, addDateTimeCombined(p, o.location), o.logger,
			p.String()),
		step:     p,
		location: o.location,
	}, nil
}
