package timerange

import (
	"iter"
	"time"

	"github.com/reugn/go-timerange/logger"
)

// progression is the sequence-production algorithm shared by every
// progression kind. It is parametrized by the advance function only.
type progression[T ordered[T]] struct {
	bounds  bounds[T]
	advance advanceFunc[T]
	logger  logger.Logger
	step    string

	// first returns the initial cursor for the given start, and false
	// when the sequence is empty. A nil first starts at the range start.
	first func(T) (T, bool)
}

func newProgression[T ordered[T]](b bounds[T], advance advanceFunc[T],
	l logger.Logger, step string) progression[T] {
	return progression[T]{
		bounds:  b,
		advance: advance,
		logger:  l,
		step:    step,
	}
}

// Iterator returns a new iterator positioned at the first point of the
// progression. Every call returns an independent iterator.
func (p progression[T]) Iterator() *Iterator[T] {
	p.logger.Trace("Creating iterator", "range", p.bounds, "step", p.step)
	start := p.bounds.start
	if p.first != nil {
		first, ok := p.first(start)
		if !ok {
			it := newIterator(start, p.bounds.end, p.advance, p.logger)
			it.done = true
			return it
		}
		start = first
	}
	return newIterator(start, p.bounds.end, p.advance, p.logger)
}

// All returns an iterator over the points of the progression. Iteration
// stops after the first error.
func (p progression[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := p.Iterator()
		for it.HasNext() {
			value, err := it.Next()
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}

// Collect returns all points of the progression.
func (p progression[T]) Collect() ([]T, error) {
	var values []T
	for value, err := range p.All() {
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}

func addInstant(d time.Duration) advanceFunc[time.Time] {
	return func(t time.Time) (time.Time, error) {
		return t.Add(d), nil
	}
}

func addDatePeriod(p Period) advanceFunc[Date] {
	return func(d Date) (Date, error) {
		return d.AddPeriod(p)
	}
}

func addDateTimePeriod(p Period) advanceFunc[DateTime] {
	return func(dt DateTime) (DateTime, error) {
		return dt.AddPeriod(p)
	}
}

func addDateTimeDuration(d time.Duration, loc *time.Location) advanceFunc[DateTime] {
	return func(dt DateTime) (DateTime, error) {
		return dt.AddDuration(d, loc)
	}
}

func addDateTimeCombined(p DateTimePeriod, loc *time.Location) advanceFunc[DateTime] {
	return func(dt DateTime) (DateTime, error) {
		return dt.AddDateTimePeriod(p, loc)
	}
}

// InstantProgression is an InstantRange stepped by an elapsed duration.
type InstantProgression struct {
	progression[time.Time]
	step time.Duration
}

// Range returns the underlying range.
func (p *InstantProgression) Range() InstantRange {
	return InstantRange{p.bounds}
}

// Step returns the step between consecutive instants.
func (p *InstantProgression) Step() time.Duration {
	return p.step
}

// DateProgression is a DateRange stepped by a calendar period.
type DateProgression struct {
	progression[Date]
	step Period
}

// Range returns the underlying range.
func (p *DateProgression) Range() DateRange {
	return DateRange{p.bounds}
}

// Step returns the step between consecutive dates.
func (p *DateProgression) Step() Period {
	return p.step
}

// DateTimeDurationProgression is a DateTimeRange stepped by an elapsed
// duration, measured in a fixed location.
type DateTimeDurationProgression struct {
	progression[DateTime]
	step     time.Duration
	location *time.Location
}

// Range returns the underlying range.
func (p *DateTimeDurationProgression) Range() DateTimeRange {
	return DateTimeRange{p.bounds}
}

// Step returns the elapsed time between consecutive date-times.
func (p *DateTimeDurationProgression) Step() time.Duration {
	return p.step
}

// Location returns the location the steps are resolved in.
func (p *DateTimeDurationProgression) Location() *time.Location {
	return p.location
}

// DateTimeCalendarProgression is a DateTimeRange stepped by a calendar
// period. The time of day never changes and no timezone is involved.
type DateTimeCalendarProgression struct {
	progression[DateTime]
	step Period
}

// Range returns the underlying range.
func (p *DateTimeCalendarProgression) Range() DateTimeRange {
	return DateTimeRange{p.bounds}
}

// Step returns the step between consecutive date-times.
func (p *DateTimeCalendarProgression) Step() Period {
	return p.step
}

// DateTimeCombinedProgression is a DateTimeRange stepped by a calendar
// period combined with a sub-day duration, resolved in a fixed location.
type DateTimeCombinedProgression struct {
	progression[DateTime]
	step     DateTimePeriod
	location *time.Location
}

// Range returns the underlying range.
func (p *DateTimeCombinedProgression) Range() DateTimeRange {
	return DateTimeRange{p.bounds}
}

// Step returns the step between consecutive date-times.
func (p *DateTimeCombinedProgression) Step() DateTimePeriod {
	return p.step
}

// Location returns the location the duration part is resolved in.
func (p *DateTimeCombinedProgression) Location() *time.Location {
	return p.location
}
