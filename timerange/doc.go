/*
Package timerange implements inclusive ranges and steppable progressions over
three kinds of time points:

  - instants, represented by [time.Time];
  - timezone-naive calendar dates, represented by [Date];
  - timezone-naive calendar date-times, represented by [DateTime].

A range is built from two points and may be empty. A progression pairs a
range with a step and produces the ordered points from the start up to and
including the end bound:

	r := timerange.NewDateRange(
		timerange.MustDate(2024, time.February, 26),
		timerange.MustDate(2024, time.May, 15),
	)
	p, err := r.Step(timerange.Period{Months: 1})
	if err != nil {
		return err
	}
	for d, err := range p.All() {
		...
	}

Steps are either elapsed durations ([time.Duration]), calendar periods
([Period]) or combined calendar and sub-day periods ([DateTimePeriod]).
Adding an elapsed duration to a DateTime needs a [time.Location]: the value is
resolved to an instant, the duration is added, and the result is converted
back. A combined period applies its calendar part first and its duration part
second. Every step is checked for strictly forward progress when the
progression is built, so iteration always terminates.

Ranges and progressions are immutable and safe for concurrent use.
An [Iterator] is not; create one per consumer.
*/
package timerange
