package timerange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reugn/go-timerange/internal/calendar"
)

// The range of years a Date can represent.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

var (
	minEpochDay = calendar.EpochDay(MinYear, 1, 1)
	maxEpochDay = calendar.EpochDay(MaxYear, 12, 31)
)

// Date is a timezone-naive calendar date in the proleptic Gregorian
// calendar. Dates are comparable values; use [NewDate] or [ParseDate] to
// construct one. The zero value is not a valid date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, calendarOverflowError(fmt.Sprintf("year %d", year))
	}
	if month < time.January || month > time.December {
		return Date{}, illegalArgumentError(fmt.Sprintf("month %d", month))
	}
	if day < 1 || day > calendar.DaysIn(int64(year), int(month)) {
		return Date{}, illegalArgumentError(
			fmt.Sprintf("day %d of %d-%02d", day, year, month))
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics if the date is invalid.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year: year, month: month, day: day}
}

func dateFromEpochDay(epochDay int64) (Date, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return Date{}, calendarOverflowError(fmt.Sprintf("epoch day %d", epochDay))
	}
	year, month, day := calendar.FromEpochDay(epochDay)
	return Date{year: int(year), month: time.Month(month), day: day}, nil
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	return calendar.EpochDay(int64(d.year), int(d.month), d.day)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday
	wd := (d.EpochDay() + 4) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return compareInt(d.year, other.year)
	case d.month != other.month:
		return compareInt(d.month, other.month)
	default:
		return compareInt(d.day, other.day)
	}
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool { return d == other }

// String returns the ISO 8601 representation, e.g. 2024-02-26. Years
// outside of [0, 9999] carry an explicit sign.
func (d Date) String() string {
	switch {
	case d.year < 0:
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	case d.year > 9999:
		return fmt.Sprintf("+%d-%02d-%02d", d.year, d.month, d.day)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	}
}

// ParseDate parses an ISO 8601 calendar date as produced by [Date.String].
func ParseDate(s string) (Date, error) {
	sign := 1
	str := s
	if str != "" && (str[0] == '+' || str[0] == '-') {
		if str[0] == '-' {
			sign = -1
		}
		str = str[1:]
	}
	parts := strings.Split(str, "-")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 ||
		!isDigits(parts[0]) || !isDigits(parts[1]) || !isDigits(parts[2]) {
		return Date{}, illegalArgumentError(fmt.Sprintf("malformed date %q", s))
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || year < 0 {
		return Date{}, illegalArgumentError(fmt.Sprintf("malformed date %q", s))
	}
	return NewDate(sign*year, time.Month(month), day)
}

// Clock is a time of day with nanosecond precision, in the range
// [00:00, 24:00).
type Clock struct {
	nanos int64
}

// NewClock returns the Clock for the given hour, minute, second and
// nanosecond.
func NewClock(hour, minute, sec, nsec int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 ||
		sec < 0 || sec > 59 || nsec < 0 || nsec > 999_999_999 {
		return Clock{}, illegalArgumentError(
			fmt.Sprintf("time of day %02d:%02d:%02d.%09d", hour, minute, sec, nsec))
	}
	return Clock{
		nanos: int64(hour)*int64(time.Hour) + int64(minute)*int64(time.Minute) +
			int64(sec)*int64(time.Second) + int64(nsec),
	}, nil
}

// Hour returns the hour of the day, in the range [0, 23].
func (c Clock) Hour() int { return int(c.nanos / int64(time.Hour)) }

// Minute returns the minute of the hour, in the range [0, 59].
func (c Clock) Minute() int { return int(c.nanos / int64(time.Minute) % 60) }

// Second returns the second of the minute, in the range [0, 59].
func (c Clock) Second() int { return int(c.nanos / int64(time.Second) % 60) }

// Nanosecond returns the nanosecond of the second.
func (c Clock) Nanosecond() int { return int(c.nanos % int64(time.Second)) }

// SinceMidnight returns the time elapsed on a 24-hour clock since 00:00.
func (c Clock) SinceMidnight() time.Duration { return time.Duration(c.nanos) }

// Compare returns -1, 0 or +1 depending on whether c is before, equal to,
// or after other.
func (c Clock) Compare(other Clock) int { return compareInt(c.nanos, other.nanos) }

// String returns the time of day formatted as 15:04:05 with a fractional
// second only when it is not zero.
func (c Clock) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	if ns := c.Nanosecond(); ns != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	return s
}

func parseClock(s string) (Clock, error) {
	malformed := illegalArgumentError(fmt.Sprintf("malformed time of day %q", s))
	hms, frac, hasFrac := strings.Cut(s, ".")
	parts := strings.Split(hms, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, malformed
	}
	fields := make([]int, 3)
	for i, part := range parts {
		if len(part) != 2 || !isDigits(part) {
			return Clock{}, malformed
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return Clock{}, malformed
		}
		fields[i] = v
	}
	nsec := 0
	if hasFrac {
		if len(parts) != 3 || frac == "" || len(frac) > 9 || !isDigits(frac) {
			return Clock{}, malformed
		}
		v, err := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		if err != nil || v < 0 {
			return Clock{}, malformed
		}
		nsec = v
	}
	return NewClock(fields[0], fields[1], fields[2], nsec)
}

// DateTime is a timezone-naive calendar date paired with a time of day.
// DateTimes are ordered by date first and time of day second.
type DateTime struct {
	date  Date
	clock Clock
}

// NewDateTime returns the DateTime for the given calendar fields.
func NewDateTime(year int, month time.Month, day, hour, minute, sec, nsec int) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	clock, err := NewClock(hour, minute, sec, nsec)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, clock: clock}, nil
}

// MustDateTime is like NewDateTime but panics if the fields are invalid.
func MustDateTime(year int, month time.Month, day, hour, minute, sec, nsec int) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, sec, nsec)
	if err != nil {
		panic(err)
	}
	return dt
}

// DateTimeOf returns the wall clock reading of t in t's location.
func DateTimeOf(t time.Time) DateTime {
	hour, minute, sec := t.Clock()
	return DateTime{
		date: DateOf(t),
		clock: Clock{
			nanos: int64(hour)*int64(time.Hour) + int64(minute)*int64(time.Minute) +
				int64(sec)*int64(time.Second) + int64(t.Nanosecond()),
		},
	}
}

// DateTimeIn returns the wall clock reading of the instant t in loc.
// It fails with ErrCalendarOverflow when the year is not representable.
func DateTimeIn(t time.Time, loc *time.Location) (DateTime, error) {
	local := t.In(loc)
	if year := local.Year(); year < MinYear || year > MaxYear {
		return DateTime{}, calendarOverflowError(fmt.Sprintf("year %d", year))
	}
	return DateTimeOf(local), nil
}

// Date returns the date part.
func (dt DateTime) Date() Date { return dt.date }

// Clock returns the time of day part.
func (dt DateTime) Clock() Clock { return dt.clock }

// In returns the instant at which the wall clocks in loc show dt.
// When dt falls into a gap or an overlap caused by a zone transition, the
// instant is chosen by [time.Date]. In panics if loc is nil.
func (dt DateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.date.year, dt.date.month, dt.date.day,
		0, 0, 0, int(dt.clock.nanos), loc)
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to,
// or after other.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.clock.Compare(other.clock)
}

// Before reports whether dt is before other.
func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is after other.
func (dt DateTime) After(other DateTime) bool { return dt.Compare(other) > 0 }

// Equal reports whether dt and other denote the same date-time.
func (dt DateTime) Equal(other DateTime) bool { return dt == other }

// String returns the ISO 8601 representation, e.g. 2023-10-26T10:30:00.
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.clock.String()
}

// ParseDateTime parses an ISO 8601 local date-time such as
// 2023-10-26T10:30, 2023-10-26T10:30:00 or 2023-10-26T10:30:00.25.
func ParseDateTime(s string) (DateTime, error) {
	datePart, clockPart, ok := strings.Cut(s, "T")
	if !ok {
		return DateTime{}, illegalArgumentError(fmt.Sprintf("malformed date-time %q", s))
	}
	date, err := ParseDate(datePart)
	if err != nil {
		return DateTime{}, err
	}
	clock, err := parseClock(clockPart)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, clock: clock}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func compareInt[T ~int | ~int64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
