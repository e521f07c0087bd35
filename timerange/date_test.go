package timerange_test

import (
	"testing"
	"time"

	"github.com/reugn/go-timerange/internal/assert"
	"github.com/reugn/go-timerange/timerange"
)

func TestNewDate(t *testing.T) {
	t.Parallel()
	d, err := timerange.NewDate(2024, time.February, 29)
	assert.IsNil(t, err)
	assert.Equal(t, d.Year(), 2024)
	assert.Equal(t, d.Month(), time.February)
	assert.Equal(t, d.Day(), 29)

	_, err = timerange.NewDate(2023, time.February, 29)
	assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
	_, err = timerange.NewDate(2023, 13, 1)
	assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
	_, err = timerange.NewDate(2023, time.April, 0)
	assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
	_, err = timerange.NewDate(timerange.MaxYear+1, time.January, 1)
	assert.ErrorIs(t, err, timerange.ErrCalendarOverflow)
}

func TestMustDatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	timerange.MustDate(2023, time.June, 31)
}

func TestDateString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		date     timerange.Date
		expected string
	}{
		{timerange.MustDate(2024, time.February, 26), "2024-02-26"},
		{timerange.MustDate(7, time.July, 4), "0007-07-04"},
		{timerange.MustDate(-44, time.March, 15), "-0044-03-15"},
		{timerange.MustDate(12345, time.January, 1), "+12345-01-01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.date.String(), tt.expected)
		parsed, err := timerange.ParseDate(tt.expected)
		assert.IsNil(t, err)
		assert.Equal(t, parsed, tt.date)
	}
}

func TestParseDateInvalid(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "2024-2-26", "24-02-26", "2024/02/26", "2024-02-26T00:00", "2023-02-29", "2024-00-10",
		"2024-+5-01", "2024-05-+1", "-+202-05-01", "2024- 5-01"} {
		_, err := timerange.ParseDate(s)
		assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
	}
}

func TestDateCompare(t *testing.T) {
	t.Parallel()
	a := timerange.MustDate(2024, time.February, 26)
	b := timerange.MustDate(2024, time.March, 4)
	c := timerange.MustDate(2025, time.January, 1)

	assert.Equal(t, a.Compare(b), -1)
	assert.Equal(t, c.Compare(b), 1)
	assert.Equal(t, a.Compare(a), 0)
	assert.True(t, a.Before(b) && b.After(a), "ordering mismatch")
	assert.True(t, a.Equal(timerange.MustDate(2024, time.February, 26)), "dates must be equal")
}

func TestDateWeekday(t *testing.T) {
	t.Parallel()
	assert.Equal(t, timerange.MustDate(1970, time.January, 1).Weekday(), time.Thursday)
	assert.Equal(t, timerange.MustDate(1969, time.December, 31).Weekday(), time.Wednesday)
	assert.Equal(t, timerange.MustDate(2024, time.February, 26).Weekday(), time.Monday)
	assert.Equal(t, timerange.MustDate(2024, time.February, 26).EpochDay(), int64(19779))
}

func TestDateOf(t *testing.T) {
	t.Parallel()
	tm := time.Date(2023, time.October, 26, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, timerange.DateOf(tm), timerange.MustDate(2023, time.October, 26))
}

func TestClock(t *testing.T) {
	t.Parallel()
	c, err := timerange.NewClock(10, 30, 5, 250_000_000)
	assert.IsNil(t, err)
	assert.Equal(t, c.Hour(), 10)
	assert.Equal(t, c.Minute(), 30)
	assert.Equal(t, c.Second(), 5)
	assert.Equal(t, c.Nanosecond(), 250_000_000)
	assert.Equal(t, c.String(), "10:30:05.25")
	assert.Equal(t, c.SinceMidnight(), 10*time.Hour+30*time.Minute+5250*time.Millisecond)

	_, err = timerange.NewClock(24, 0, 0, 0)
	assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
	_, err = timerange.NewClock(0, 60, 0, 0)
	assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
}

func TestParseDateTime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected timerange.DateTime
		str      string
	}{
		{"2023-10-26T10:30", timerange.MustDateTime(2023, time.October, 26, 10, 30, 0, 0), "2023-10-26T10:30:00"},
		{"2023-10-26T10:30:00", timerange.MustDateTime(2023, time.October, 26, 10, 30, 0, 0), "2023-10-26T10:30:00"},
		{"2023-10-26T10:30:00.25", timerange.MustDateTime(2023, time.October, 26, 10, 30, 0, 250_000_000),
			"2023-10-26T10:30:00.25"},
		{"2024-02-29T23:59:59.999999999", timerange.MustDateTime(2024, time.February, 29, 23, 59, 59, 999_999_999),
			"2024-02-29T23:59:59.999999999"},
	}
	for _, tt := range tests {
		dt, err := timerange.ParseDateTime(tt.input)
		assert.IsNil(t, err)
		assert.Equal(t, dt, tt.expected)
		assert.Equal(t, dt.String(), tt.str)
	}

	for _, s := range []string{"2023-10-26 10:30", "2023-10-26T25:00", "2023-10-26T10:3", "2023-10-26T10:30.5",
		"2023-10-26T10:30:00.", "2023-10-26T10:30:00.1234567890", "2024-05-01T+1:30", "2024-05-01T10:-1",
		"2024-05-01T10:30:00.+5", "2024-05-01T10:30:00.-5", "2024-+5-01T10:30"} {
		_, err := timerange.ParseDateTime(s)
		assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
	}
}

func TestDateTimeCompare(t *testing.T) {
	t.Parallel()
	a := timerange.MustDateTime(2023, time.October, 26, 10, 30, 0, 0)
	b := timerange.MustDateTime(2023, time.October, 26, 13, 30, 0, 0)
	c := timerange.MustDateTime(2023, time.October, 27, 0, 0, 0, 0)

	assert.Equal(t, a.Compare(b), -1)
	assert.Equal(t, b.Compare(c), -1)
	assert.Equal(t, c.Compare(a), 1)
	assert.Equal(t, a.Compare(a), 0)
	assert.Equal(t, b.Date(), a.Date())
	assert.True(t, a.Clock().Compare(b.Clock()) < 0, "clock ordering mismatch")
}

func TestDateTimeInstantConversion(t *testing.T) {
	t.Parallel()
	dt := timerange.MustDateTime(2023, time.October, 26, 10, 30, 0, 0)
	tm := dt.In(time.UTC)
	assert.Equal(t, tm.Format(time.RFC3339), "2023-10-26T10:30:00Z")

	back, err := timerange.DateTimeIn(tm, time.UTC)
	assert.IsNil(t, err)
	assert.Equal(t, back, dt)

	plus2 := time.FixedZone("UTC+2", 2*60*60)
	shifted, err := timerange.DateTimeIn(tm, plus2)
	assert.IsNil(t, err)
	assert.Equal(t, shifted, timerange.MustDateTime(2023, time.October, 26, 12, 30, 0, 0))
	assert.Equal(t, timerange.DateTimeOf(tm.In(plus2)), shifted)
}

func TestDateTimeInOverflow(t *testing.T) {
	t.Parallel()
	tm := time.Date(timerange.MaxYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := timerange.DateTimeIn(tm, time.UTC)
	assert.ErrorIs(t, err, timerange.ErrCalendarOverflow)
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()
	loc, err := timerange.LoadLocation("UTC")
	assert.IsNil(t, err)
	assert.Equal(t, loc, time.UTC)

	_, err = timerange.LoadLocation("Not/AZone")
	assert.ErrorIs(t, err, timerange.ErrIllegalArgument)
}
