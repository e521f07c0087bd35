package timerange

import (
	"fmt"
	"time"

	"github.com/reugn/go-timerange/internal/calendar"
)

// AddPeriod returns the date p after d. Years and months are added first,
// clamping the day to the length of the resulting month, then days are
// added. It fails with ErrCalendarOverflow when the result is outside of
// [MinYear, MaxYear].
func (d Date) AddPeriod(p Period) (Date, error) {
	if p.IsZero() {
		return d, nil
	}
	overflow := func() (Date, error) {
		return Date{}, calendarOverflowError(fmt.Sprintf("%s + %s", d, p))
	}

	months, err := calendar.MulInt64(int64(p.Years), 12)
	if err != nil {
		return overflow()
	}
	if months, err = calendar.AddInt64(months, int64(p.Months)); err != nil {
		return overflow()
	}
	total, err := calendar.AddInt64(int64(d.year)*12+int64(d.month-1), months)
	if err != nil {
		return overflow()
	}
	year, month := total/12, total%12
	if month < 0 {
		year, month = year-1, month+12
	}
	if year < MinYear || year > MaxYear {
		return overflow()
	}

	day := calendar.ClampDay(year, int(month)+1, d.day)
	epochDay, err := calendar.AddInt64(calendar.EpochDay(year, int(month)+1, day), int64(p.Days))
	if err != nil {
		return overflow()
	}
	result, err := dateFromEpochDay(epochDay)
	if err != nil {
		return overflow()
	}
	return result, nil
}

// AddPeriod returns the date-time p after dt. Only the date part changes;
// the time of day is kept as is.
func (dt DateTime) AddPeriod(p Period) (DateTime, error) {
	date, err := dt.date.AddPeriod(p)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, clock: dt.clock}, nil
}

// AddDuration returns the date-time shown in loc after the elapsed
// duration d passes from dt. The value is resolved to an instant in loc,
// the duration is added and the result is converted back to loc. A nil loc
// selects [time.Local].
func (dt DateTime) AddDuration(d time.Duration, loc *time.Location) (DateTime, error) {
	if loc == nil {
		loc = time.Local
	}
	return DateTimeIn(dt.In(loc).Add(d), loc)
}

// AddDateTimePeriod returns the date-time p after dt. The calendar part of
// p is applied first, without a timezone, and the duration part is applied
// second, resolving through loc.
func (dt DateTime) AddDateTimePeriod(p DateTimePeriod, loc *time.Location) (DateTime, error) {
	result, err := dt.AddPeriod(p.Period)
	if err != nil {
		return DateTime{}, err
	}
	if p.Duration == 0 {
		return result, nil
	}
	return result.AddDuration(p.Duration, loc)
}
