package timerange

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"
)

// CronProgression is an InstantRange stepped by the fire times of a cron
// expression, evaluated in a fixed location.
//
// The expression syntax is the one accepted by [cronexpr.Parse]: five
// fields (minute to day-of-week), an optional trailing year field, an
// optional leading seconds field, and the @yearly, @monthly, @weekly,
// @daily and @hourly macros.
type CronProgression struct {
	progression[time.Time]
	expression string
	location   *time.Location
}

// StepCron returns the progression over r that produces every fire time of
// the cron expression between the range bounds. It fails with
// ErrInvalidStep when the expression cannot be parsed.
func (r InstantRange) StepCron(expression string, opts ...Option) (*CronProgression, error) {
	o := newOptions(opts)
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		o.logger.Debug("Rejected cron expression", "expression", expression, "error", err)
		return nil, invalidStepError(fmt.Sprintf("cron expression %q: %v", expression, err))
	}

	loc := o.location
	prog := newProgression(r.bounds, nextFireTime(expr, loc), o.logger, expression)
	prog.first = func(start time.Time) (time.Time, bool) {
		first := fireTimeAfter(expr, start.Add(-time.Nanosecond), loc)
		return first, !first.IsZero()
	}

	return &CronProgression{
		progression: prog,
		expression:  expression,
		location:    loc,
	}, nil
}

func nextFireTime(expr *cronexpr.Expression, loc *time.Location) advanceFunc[time.Time] {
	return func(t time.Time) (time.Time, error) {
		next := fireTimeAfter(expr, t, loc)
		if next.IsZero() {
			return time.Time{}, errScheduleEnded
		}
		return next, nil
	}
}

// fireTimeAfter returns the first fire time strictly after t, or the zero
// time when the schedule has ended.
//
// The expression is matched against the wall clock of one zone offset at a
// time, so wall times skipped by a forward transition never fire and wall
// times repeated by a backward transition fire once per occurrence.
func fireTimeAfter(expr *cronexpr.Expression, t time.Time, loc *time.Location) time.Time {
	from, at := t, t
	for {
		local := at.In(loc)
		name, offset := local.Zone()
		_, end := local.ZoneBounds()
		next := expr.Next(from.In(time.FixedZone(name, offset)))
		if next.IsZero() {
			return time.Time{}
		}
		if end.IsZero() || next.Before(end) {
			return next.In(loc)
		}
		// resume the search under the offset that starts at end
		from, at = end.Add(-time.Nanosecond), end
	}
}

// Range returns the underlying range.
func (p *CronProgression) Range() InstantRange {
	return InstantRange{p.bounds}
}

// Step returns the cron expression the progression was built from.
func (p *CronProgression) Step() string {
	return p.expression
}

// Expression is an alias for [CronProgression.Step].
func (p *CronProgression) Expression() string {
	return p.Step()
}

// Location returns the location the expression is evaluated in.
func (p *CronProgression) Location() *time.Location {
	return p.location
}
