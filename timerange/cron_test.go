package timerange_test

import (
	"testing"
	"time"

	"github.com/reugn/go-timerange/internal/assert"
	"github.com/reugn/go-timerange/timerange"
)

func collectUTC(t *testing.T, p *timerange.CronProgression) []string {
	t.Helper()
	values, err := p.Collect()
	assert.IsNil(t, err)
	formatted := make([]string, 0, len(values))
	for _, v := range values {
		formatted = append(formatted, v.UTC().Format(time.RFC3339))
	}
	return formatted
}

func TestCronProgression(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := timerange.NewInstantRange(start, start.Add(24*time.Hour))

	p, err := r.StepCron("0 */6 * * *", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, p.Step(), "0 */6 * * *")
	assert.Equal(t, p.Expression(), "0 */6 * * *")
	assert.Equal(t, p.Location(), time.UTC)
	assert.Equal(t, p.Range(), r)

	assert.Equal(t, collectUTC(t, p), []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T06:00:00Z",
		"2024-01-01T12:00:00Z",
		"2024-01-01T18:00:00Z",
		"2024-01-02T00:00:00Z",
	})
	// restartable
	assert.Equal(t, len(collectUTC(t, p)), 5)
}

func TestCronProgressionStartBetweenFireTimes(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.January, 1, 0, 0, 30, 0, time.UTC)
	r := timerange.NewInstantRange(start, start.Add(12*time.Hour))

	p, err := r.StepCron("0 */6 * * *", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, collectUTC(t, p), []string{
		"2024-01-01T06:00:00Z",
		"2024-01-01T12:00:00Z",
	})
}

func TestCronProgressionMacro(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := timerange.NewInstantRange(start, start.Add(48*time.Hour))

	p, err := r.StepCron("@daily", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, collectUTC(t, p), []string{
		"2024-01-01T00:00:00Z",
		"2024-01-02T00:00:00Z",
		"2024-01-03T00:00:00Z",
	})
}

func TestCronProgressionLocation(t *testing.T) {
	t.Parallel()
	newYork := mustLoad(t, "America/New_York")
	start := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	r := timerange.NewInstantRange(start, start.Add(72*time.Hour))

	// 09:00 wall clock time moves from 14:00Z to 13:00Z after the DST jump
	p, err := r.StepCron("0 9 * * *", timerange.WithLocation(newYork))
	assert.IsNil(t, err)
	assert.Equal(t, collectUTC(t, p), []string{
		"2024-03-09T14:00:00Z",
		"2024-03-10T13:00:00Z",
		"2024-03-11T13:00:00Z",
	})
}

func TestCronProgressionSpringForward(t *testing.T) {
	t.Parallel()
	newYork := mustLoad(t, "America/New_York")
	// 2024-03-10 00:00 EST to 2024-03-11 07:00 EDT
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, newYork)
	r := timerange.NewInstantRange(start, start.Add(30*time.Hour))

	tests := []struct {
		expression string
		length     int
		head       []string
	}{
		{
			expression: "0 * * * *",
			length:     31,
			head: []string{
				"2024-03-10T05:00:00Z", // 00:00 EST
				"2024-03-10T06:00:00Z", // 01:00 EST
				"2024-03-10T07:00:00Z", // 03:00 EDT
				"2024-03-10T08:00:00Z",
			},
		},
		{
			expression: "*/30 * * * *",
			length:     61,
			head: []string{
				"2024-03-10T05:00:00Z",
				"2024-03-10T05:30:00Z",
				"2024-03-10T06:00:00Z",
				"2024-03-10T06:30:00Z", // 01:30 EST
				"2024-03-10T07:00:00Z", // 03:00 EDT
				"2024-03-10T07:30:00Z",
			},
		},
		{
			// 02:00 does not exist on 2024-03-10
			expression: "0 2 * * *",
			length:     1,
			head:       []string{"2024-03-11T06:00:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			p, err := r.StepCron(tt.expression, timerange.WithLocation(newYork))
			assert.IsNil(t, err)
			values := collectUTC(t, p)
			assert.Equal(t, len(values), tt.length)
			assert.Equal(t, values[:len(tt.head)], tt.head)
			for i := 1; i < len(values); i++ {
				assert.True(t, values[i-1] < values[i], "strictly increasing")
			}
		})
	}
}

func TestCronProgressionStartInSkippedHour(t *testing.T) {
	t.Parallel()
	newYork := mustLoad(t, "America/New_York")
	start := time.Date(2024, time.March, 10, 1, 30, 0, 0, newYork)
	r := timerange.NewInstantRange(start, start.Add(2*time.Hour))

	p, err := r.StepCron("0 * * * *", timerange.WithLocation(newYork))
	assert.IsNil(t, err)

	first, err := p.Iterator().Next()
	assert.IsNil(t, err)
	assert.True(t, r.Contains(first), "first fire time within the range")
	assert.Equal(t, collectUTC(t, p), []string{
		"2024-03-10T07:00:00Z", // 03:00 EDT
		"2024-03-10T08:00:00Z", // 04:00 EDT
	})
}

func TestCronProgressionFallBack(t *testing.T) {
	t.Parallel()
	newYork := mustLoad(t, "America/New_York")
	start := time.Date(2024, time.November, 3, 0, 0, 0, 0, newYork)
	r := timerange.NewInstantRange(start, start.Add(4*time.Hour))

	// 01:00 occurs twice
	p, err := r.StepCron("0 * * * *", timerange.WithLocation(newYork))
	assert.IsNil(t, err)
	assert.Equal(t, collectUTC(t, p), []string{
		"2024-11-03T04:00:00Z", // 00:00 EDT
		"2024-11-03T05:00:00Z", // 01:00 EDT
		"2024-11-03T06:00:00Z", // 01:00 EST
		"2024-11-03T07:00:00Z", // 02:00 EST
		"2024-11-03T08:00:00Z", // 03:00 EST
	})
}

func TestCronProgressionScheduleEnds(t *testing.T) {
	t.Parallel()
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := timerange.NewInstantRange(start, start.AddDate(10, 0, 0))

	// the year field limits the schedule to a single fire time
	p, err := r.StepCron("0 0 1 1 * 2024", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)

	it := p.Iterator()
	v, err := it.Next()
	assert.IsNil(t, err)
	assert.Equal(t, v.UTC().Format(time.RFC3339), "2024-01-01T00:00:00Z")
	assert.Equal(t, it.HasNext(), false)
	_, err = it.Next()
	assert.ErrorIs(t, err, timerange.ErrExhaustedSequence)
}

func TestCronProgressionEmpty(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.January, 1, 0, 30, 0, 0, time.UTC)

	// no fire time within the bounds
	r := timerange.NewInstantRange(start, start.Add(10*time.Minute))
	p, err := r.StepCron("0 * * * *", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, len(collectUTC(t, p)), 0)

	// reversed bounds
	reversed := timerange.NewInstantRange(start, start.Add(-24*time.Hour))
	p, err = reversed.StepCron("* * * * *", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, p.Iterator().HasNext(), false)

	// the schedule is over before the range starts
	p, err = r.StepCron("0 0 1 1 * 2020", timerange.WithLocation(time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, p.Iterator().HasNext(), false)
}

func TestCronProgressionInvalidExpression(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := timerange.NewInstantRange(start, start.Add(time.Hour))

	for _, expr := range []string{"", "* * *", "foo * * * *", "not a cron"} {
		p, err := r.StepCron(expr)
		assert.ErrorIs(t, err, timerange.ErrInvalidStep)
		assert.True(t, p == nil, "no progression on error")
	}
}
