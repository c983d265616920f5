package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jonboulle/clockwork"
)

// YearInSeconds is the length of a year, ~365.24 days, used to convert between
// years and seconds. It must be held invariant across a deployment: contracts
// compiled with the 52 week year of 31449600 seconds are not compatible.
const YearInSeconds = 31556925

// Duration type represents a whole number of seconds, as used for timestamps
// and maturities in contracts.
// Its zero value corresponds to 0 seconds.
// Duration is designed to be safe for concurrent use by multiple goroutines.
type Duration struct {
	raw int64 // seconds
}

// NewDuration returns a duration of the given number of seconds.
func NewDuration(seconds int64) Duration {
	return Duration{raw: seconds}
}

// ParseDuration converts a decimal number of years to a duration of
// trunc(years * [YearInSeconds]) seconds. The fractional second is
// truncated toward zero, the same way as for percentages.
//
// ParseDuration returns an error if:
//   - the string is not a valid decimal number;
//   - the number of seconds cannot be represented as an int64.
func ParseDuration(years string) (Duration, error) {
	secs, err := parseTruncInt64(years, yearScale)
	if err != nil {
		return Duration{}, fmt.Errorf("parsing years %q: %w", years, err)
	}
	return NewDuration(secs), nil
}

// MustParseDuration is like [ParseDuration] but panics if the string cannot be parsed.
func MustParseDuration(years string) Duration {
	t, err := ParseDuration(years)
	if err != nil {
		panic(fmt.Sprintf("ParseDuration(%q) failed: %v", years, err))
	}
	return t
}

// NewDurationFromYears is like [ParseDuration] but takes a float.
func NewDurationFromYears(years float64) (Duration, error) {
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return Duration{}, fmt.Errorf("converting float: special value %v: %w", years, ErrInvalidAmount)
	}
	t, err := ParseDuration(strconv.FormatFloat(years, 'f', -1, 64))
	if err != nil {
		return Duration{}, fmt.Errorf("converting float: %w", err)
	}
	return t, nil
}

// Now returns the current time of the clock as seconds since the Unix epoch.
// Use clockwork.NewRealClock() for the wall clock.
func Now(clock clockwork.Clock) Duration {
	return NewDuration(clock.Now().Unix())
}

// Raw returns the number of seconds.
func (t Duration) Raw() int64 {
	return t.raw
}

// Seconds returns the number of seconds.
func (t Duration) Seconds() int64 {
	return t.raw
}

// Years returns the duration in years of [YearInSeconds].
func (t Duration) Years() float64 {
	return float64(t.raw) / YearInSeconds
}

// Add returns the sum of durations t and u.
//
// Add returns an error if the result overflows an int64.
func (t Duration) Add(u Duration) (Duration, error) {
	a, b := t.raw, u.raw
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return Duration{}, fmt.Errorf("computing [%v + %v]: %w", t, u, ErrOutOfRange)
	}
	return NewDuration(a + b), nil
}

// Sub returns the difference between durations t and u.
//
// Sub returns an error if the result overflows an int64.
func (t Duration) Sub(u Duration) (Duration, error) {
	a, b := t.raw, u.raw
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		return Duration{}, fmt.Errorf("computing [%v - %v]: %w", t, u, ErrOutOfRange)
	}
	return NewDuration(a - b), nil
}

// IsZero returns:
//
//	true  if t = 0
//	false otherwise
func (t Duration) IsZero() bool {
	return t.raw == 0
}

// Cmp compares durations and returns:
//
//	-1 if t < u
//	 0 if t = u
//	+1 if t > u
func (t Duration) Cmp(u Duration) int {
	switch {
	case t.raw < u.raw:
		return -1
	case t.raw > u.raw:
		return 1
	}
	return 0
}

// Gt returns true if t > u.
func (t Duration) Gt(u Duration) bool { return t.raw > u.raw }

// Gte returns true if t >= u.
func (t Duration) Gte(u Duration) bool { return t.raw >= u.raw }

// Lt returns true if t < u.
func (t Duration) Lt(u Duration) bool { return t.raw < u.raw }

// Lte returns true if t <= u.
func (t Duration) Lte(u Duration) bool { return t.raw <= u.raw }

// Eq returns true if t = u.
func (t Duration) Eq(u Duration) bool { return t.raw == u.raw }

// String implements the [fmt.Stringer] interface and returns the number of seconds.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Duration) String() string {
	return strconv.FormatInt(t.raw, 10)
}
