package timerange

import (
	"fmt"
	"iter"
	"time"

	"github.com/reugn/go-timerange/logger"
)

// bounds is an inclusive interval between two points. It is empty when
// start is after end.
type bounds[T ordered[T]] struct {
	start T
	end   T
}

// Start returns the lower bound of the range.
func (b bounds[T]) Start() T { return b.start }

// EndInclusive returns the upper bound of the range.
func (b bounds[T]) EndInclusive() T { return b.end }

// Contains reports whether Start() <= value <= EndInclusive().
func (b bounds[T]) Contains(value T) bool {
	return b.start.Compare(value) <= 0 && value.Compare(b.end) <= 0
}

// IsEmpty reports whether the range contains no points, that is when
// Start() is after EndInclusive().
func (b bounds[T]) IsEmpty() bool {
	return b.start.Compare(b.end) > 0
}

func (b bounds[T]) String() string {
	return fmt.Sprintf("%v..%v", b.start, b.end)
}

// InstantRange is an inclusive range of instants.
type InstantRange struct {
	bounds[time.Time]
}

// NewInstantRange returns the range [start, endInclusive]. The range is
// empty if start is after endInclusive.
func NewInstantRange(start, endInclusive time.Time) InstantRange {
	return InstantRange{bounds[time.Time]{start: start, end: endInclusive}}
}

// Iterator returns an iterator stepping one elapsed day (24h) at a time.
func (r InstantRange) Iterator() *Iterator[time.Time] {
	return r.defaultProgression().Iterator()
}

// All returns the instants of the range, one elapsed day (24h) apart.
func (r InstantRange) All() iter.Seq2[time.Time, error] {
	return r.defaultProgression().All()
}

func (r InstantRange) defaultProgression() progression[time.Time] {
	return newProgression(r.bounds, addInstant(24*time.Hour), logger.NoOpLogger{}, "24h0m0s")
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	bounds[Date]
}

// NewDateRange returns the range [start, endInclusive]. The range is empty
// if start is after endInclusive.
func NewDateRange(start, endInclusive Date) DateRange {
	return DateRange{bounds[Date]{start: start, end: endInclusive}}
}

// Iterator returns an iterator stepping one calendar day at a time.
func (r DateRange) Iterator() *Iterator[Date] {
	return r.defaultProgression().Iterator()
}

// All returns every date of the range.
func (r DateRange) All() iter.Seq2[Date, error] {
	return r.defaultProgression().All()
}

func (r DateRange) defaultProgression() progression[Date] {
	day := Period{Days: 1}
	return newProgression(r.bounds, addDatePeriod(day), logger.NoOpLogger{}, day.String())
}

// DateTimeRange is an inclusive range of calendar date-times.
type DateTimeRange struct {
	bounds[DateTime]
}

// NewDateTimeRange returns the range [start, endInclusive]. The range is
// empty if start is after endInclusive.
func NewDateTimeRange(start, endInclusive DateTime) DateTimeRange {
	return DateTimeRange{bounds[DateTime]{start: start, end: endInclusive}}
}

// Iterator returns an iterator stepping one calendar day at a time, keeping
// the time of day.
func (r DateTimeRange) Iterator() *Iterator[DateTime] {
	return r.defaultProgression().Iterator()
}

// All returns the date-times of the range one calendar day apart.
func (r DateTimeRange) All() iter.Seq2[DateTime, error] {
	return r.defaultProgression().All()
}

func (r DateTimeRange) defaultProgression() progression[DateTime] {
	day := Period{Days: 1}
	return newProgression(r.bounds, addDateTimePeriod(day), logger.NoOpLogger{}, day.String())
}
