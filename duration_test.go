package units

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_ZeroValue(t *testing.T) {
	got := Duration{}
	assert.True(t, got.IsZero())
	assert.Equal(t, "0", got.String())
	assert.Equal(t, 0.0, got.Years())
}

func TestParseDuration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			years string
			want  int64
		}{
			{"0", 0},
			{"1", YearInSeconds},
			{"2", 2 * YearInSeconds},
			{"0.5", 15778462},
			{"-0.5", -15778462},
			{"0.00000001", 0},
			// Beyond 19 significant digits
			{"0.99999999999999999999", YearInSeconds - 1},
			{"-0.99999999999999999999", -(YearInSeconds - 1)},
			{"1.99999999999999999999999", 2*YearInSeconds - 1},
			{"0.00000003168876461541279", 0},
		}
		for _, tt := range tests {
			got, err := ParseDuration(tt.years)
			require.NoError(t, err, "ParseDuration(%q)", tt.years)
			assert.Equal(t, tt.want, got.Seconds(), "ParseDuration(%q).Seconds()", tt.years)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			years string
			want  error
		}{
			"empty":    {"", ErrInvalidAmount},
			"letters":  {"one", ErrInvalidAmount},
			"overflow": {"1000000000000000000", ErrOutOfRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseDuration(tt.years)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("panic", func(t *testing.T) {
		assert.Panics(t, func() { MustParseDuration("one") })
	})
}

func TestNewDurationFromYears(t *testing.T) {
	got, err := NewDurationFromYears(1.5)
	require.NoError(t, err)
	assert.Equal(t, int64(47335387), got.Seconds())

	_, err = NewDurationFromYears(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDuration_Views(t *testing.T) {
	d := MustParseDuration("1")
	assert.Equal(t, int64(YearInSeconds), d.Raw())
	assert.Equal(t, int64(YearInSeconds), d.Seconds())
	assert.Equal(t, 1.0, d.Years())
	assert.Equal(t, "31556925", d.String())
	assert.Equal(t, 2.0, NewDuration(2*YearInSeconds).Years())
}

func TestDuration_Add(t *testing.T) {
	got, err := NewDuration(1).Add(NewDuration(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Seconds())

	_, err = NewDuration(math.MaxInt64).Add(NewDuration(1))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewDuration(math.MinInt64).Add(NewDuration(-1))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDuration_Sub(t *testing.T) {
	got, err := MustParseDuration("1").Sub(NewDuration(1))
	require.NoError(t, err)
	assert.Equal(t, int64(YearInSeconds-1), got.Raw())

	_, err = NewDuration(math.MinInt64).Sub(NewDuration(1))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewDuration(math.MaxInt64).Sub(NewDuration(-1))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDuration_Cmp(t *testing.T) {
	a, b := NewDuration(1), NewDuration(2)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(NewDuration(1)))
	assert.True(t, b.Gt(a))
	assert.True(t, b.Gte(a))
	assert.True(t, a.Gte(a))
	assert.True(t, a.Lt(b))
	assert.True(t, a.Lte(b))
	assert.True(t, a.Lte(a))
	assert.True(t, a.Eq(NewDuration(1)))
	assert.False(t, a.Eq(b))
}

func TestNow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1700000000, 999999999))
	assert.Equal(t, int64(1700000000), Now(clock).Seconds())

	clock.Advance(time.Second)
	assert.Equal(t, int64(1700000001), Now(clock).Seconds())

	wall := Now(clockwork.NewRealClock())
	assert.InDelta(t, time.Now().Unix(), wall.Seconds(), 5)
}
