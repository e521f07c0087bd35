package timerange

import "time"

// Reference points for the positivity checks of calendar steps.
var (
	epochDate     = Date{year: 1970, month: time.January, day: 1}
	epochDateTime = DateTime{date: epochDate}
)

// IsPositiveDuration reports whether d moves time strictly forward.
func IsPositiveDuration(d time.Duration) bool {
	return d > 0
}

// IsPositivePeriod reports whether p moves a date strictly forward.
// Components may have mixed signs, so the period is applied to 1970-01-01
// and the result compared with it. A period that overflows is not positive.
func IsPositivePeriod(p Period) bool {
	if p.IsZero() {
		return false
	}
	result, err := epochDate.AddPeriod(p)
	if err != nil {
		return false
	}
	return result.After(epochDate)
}

// IsPositiveDateTimePeriod reports whether p moves a date-time strictly
// forward, adding it to 1970-01-01T00:00 in loc. A nil loc selects
// [time.Local]. Across zone transitions, the same period may be positive in
// one location and not in another.
func IsPositiveDateTimePeriod(p DateTimePeriod, loc *time.Location) bool {
	if p.IsZero() {
		return false
	}
	if loc == nil {
		loc = time.Local
	}
	result, err := epochDateTime.AddDateTimePeriod(p, loc)
	if err != nil {
		return false
	}
	return result.After(epochDateTime)
}
