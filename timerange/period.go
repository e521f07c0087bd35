package timerange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reugn/go-timerange/internal/calendar"
)

// Period is a signed amount of calendar time in years, months and days.
// A Period has no fixed length: one month may be 28 to 31 days long.
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether all components of the period are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// Negate returns the period with every component negated.
func (p Period) Negate() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// String returns the ISO 8601 representation of the period, e.g. P1Y2M3D.
// The zero period is formatted as P0D.
func (p Period) String() string {
	return formatPeriod(p, 0, "P0D")
}

// ParsePeriod parses an ISO 8601 period with no time part, such as P1M,
// P2W or P1Y-40D.
func ParsePeriod(s string) (Period, error) {
	p, err := ParseDateTimePeriod(s)
	if err != nil {
		return Period{}, err
	}
	if p.Duration != 0 {
		return Period{}, illegalArgumentError(fmt.Sprintf("period %q has a time part", s))
	}
	return p.Period, nil
}

// DateTimePeriod is a calendar Period combined with a sub-day elapsed
// Duration. When added to a DateTime, the Period is applied first and the
// Duration second.
type DateTimePeriod struct {
	Period
	Duration time.Duration
}

// IsZero reports whether both parts of the period are zero.
func (p DateTimePeriod) IsZero() bool {
	return p.Period.IsZero() && p.Duration == 0
}

// Negate returns the period with both parts negated.
func (p DateTimePeriod) Negate() DateTimePeriod {
	return DateTimePeriod{Period: p.Period.Negate(), Duration: -p.Duration}
}

// String returns the ISO 8601 representation of the period, e.g. P1DT3H.
// When no component is positive, the period is formatted with a single
// leading minus sign. The zero period is formatted as PT0S.
func (p DateTimePeriod) String() string {
	return formatPeriod(p.Period, p.Duration, "PT0S")
}

func formatPeriod(p Period, d time.Duration, zero string) string {
	if p.IsZero() && d == 0 {
		return zero
	}
	negative := p.Years <= 0 && p.Months <= 0 && p.Days <= 0 && d <= 0
	if negative {
		p, d = p.Negate(), -d
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	writeComponent(&b, int64(p.Years), 'Y')
	writeComponent(&b, int64(p.Months), 'M')
	writeComponent(&b, int64(p.Days), 'D')

	if d != 0 {
		b.WriteByte('T')
		hours := d / time.Hour
		rest := d % time.Hour
		minutes := rest / time.Minute
		rest %= time.Minute
		writeComponent(&b, int64(hours), 'H')
		writeComponent(&b, int64(minutes), 'M')
		if rest != 0 {
			b.WriteString(formatSeconds(rest))
			b.WriteByte('S')
		}
	}
	return b.String()
}

func writeComponent(b *strings.Builder, v int64, unit byte) {
	if v != 0 {
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteByte(unit)
	}
}

func formatSeconds(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	sec := int64(d / time.Second)
	nsec := int64(d % time.Second)
	if nsec == 0 {
		return sign + strconv.FormatInt(sec, 10)
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", nsec), "0")
	return fmt.Sprintf("%s%d.%s", sign, sec, frac)
}

// units in the order they are allowed to appear
var (
	dateUnits = []byte{'Y', 'M', 'W', 'D'}
	timeUnits = []byte{'H', 'M', 'S'}
)

// ParseDateTimePeriod parses an ISO 8601 duration of the form
// [-]P[nY][nM][nW][nD][T[nH][nM][n[.f]S]]. Every number may carry its own
// sign. A week is seven days. The fractional part is only permitted on
// seconds.
func ParseDateTimePeriod(s string) (DateTimePeriod, error) {
	malformed := func(reason string) error {
		return illegalArgumentError(fmt.Sprintf("malformed period %q: %s", s, reason))
	}

	str := s
	negate := false
	if str != "" && (str[0] == '-' || str[0] == '+') {
		negate = str[0] == '-'
		str = str[1:]
	}
	if str == "" || (str[0] != 'P' && str[0] != 'p') {
		return DateTimePeriod{}, malformed("missing P designator")
	}
	str = strings.ToUpper(str[1:])
	if str == "" {
		return DateTimePeriod{}, malformed("no components")
	}

	var (
		years, months, days int64
		nanos               int64
		inTime              bool
		next                int // index of the next permitted unit
		components          int
		err                 error
	)
	for str != "" {
		if str[0] == 'T' {
			if inTime {
				return DateTimePeriod{}, malformed("duplicate T designator")
			}
			inTime, next = true, 0
			str = str[1:]
			if str == "" {
				return DateTimePeriod{}, malformed("empty time part")
			}
			continue
		}

		i := 0
		if str[0] == '-' || str[0] == '+' {
			i++
		}
		for i < len(str) && (str[i] >= '0' && str[i] <= '9' || str[i] == '.') {
			i++
		}
		if i == len(str) {
			return DateTimePeriod{}, malformed("missing unit")
		}
		number, unit := str[:i], str[i]
		str = str[i+1:]

		units := dateUnits
		if inTime {
			units = timeUnits
		}
		pos := indexUnit(units, unit, next)
		if pos < 0 {
			return DateTimePeriod{}, malformed(fmt.Sprintf("unexpected unit %c", unit))
		}
		next = pos + 1
		components++

		if inTime && unit == 'S' {
			var sec int64
			if sec, err = parseSeconds(number); err != nil {
				return DateTimePeriod{}, malformed(err.Error())
			}
			if nanos, err = calendar.AddInt64(nanos, sec); err != nil {
				return DateTimePeriod{}, malformed("duration out of range")
			}
			continue
		}

		v, perr := strconv.ParseInt(number, 10, 64)
		if perr != nil {
			return DateTimePeriod{}, malformed(fmt.Sprintf("invalid number %q", number))
		}
		switch {
		case !inTime && unit == 'Y':
			years = v
		case !inTime && unit == 'M':
			months = v
		case !inTime && unit == 'W':
			var w int64
			if w, err = calendar.MulInt64(v, 7); err == nil {
				days, err = calendar.AddInt64(days, w)
			}
		case !inTime && unit == 'D':
			days, err = calendar.AddInt64(days, v)
		case unit == 'H':
			nanos, err = addScaled(nanos, v, int64(time.Hour))
		case unit == 'M':
			nanos, err = addScaled(nanos, v, int64(time.Minute))
		}
		if err != nil {
			return DateTimePeriod{}, malformed("component out of range")
		}
	}
	if components == 0 {
		return DateTimePeriod{}, malformed("no components")
	}
	for _, v := range []int64{years, months, days} {
		if v != int64(int(v)) {
			return DateTimePeriod{}, malformed("component out of range")
		}
	}

	p := DateTimePeriod{
		Period:   Period{Years: int(years), Months: int(months), Days: int(days)},
		Duration: time.Duration(nanos),
	}
	if negate {
		p = p.Negate()
	}
	return p, nil
}

func indexUnit(units []byte, unit byte, from int) int {
	for i := from; i < len(units); i++ {
		if units[i] == unit {
			return i
		}
	}
	return -1
}

func addScaled(acc, v, scale int64) (int64, error) {
	scaled, err := calendar.MulInt64(v, scale)
	if err != nil {
		return 0, err
	}
	return calendar.AddInt64(acc, scaled)
}

// parseSeconds returns the number of nanoseconds in a decimal seconds value
// with up to nine fractional digits.
func parseSeconds(number string) (int64, error) {
	neg := strings.HasPrefix(number, "-")
	number = strings.TrimLeft(number, "+-")
	whole, frac, _ := strings.Cut(number, ".")
	if whole == "" || len(frac) > 9 || strings.Contains(frac, ".") {
		return 0, fmt.Errorf("invalid seconds %q", number)
	}
	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds %q", number)
	}
	var nsec int64
	if frac != "" {
		if nsec, err = strconv.ParseInt(frac+strings.Repeat("0", 9-len(frac)), 10, 64); err != nil {
			return 0, fmt.Errorf("invalid seconds %q", number)
		}
	}
	total, err := addScaled(nsec, sec, int64(time.Second))
	if err != nil {
		return 0, err
	}
	if neg {
		total = -total
	}
	return total, nil
}
