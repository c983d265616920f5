package units

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("mustBig(%q) failed", s))
	}
	return n
}

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	assert.Equal(t, "0", got.String())
	assert.Equal(t, "0", got.Units())
	assert.Equal(t, 0, got.Decimals())
	assert.True(t, got.IsZero())
	assert.True(t, got.Eq(MustParseAmount("0", 0)))
}

func TestAmount_Interfaces(t *testing.T) {
	var i any = Amount{}
	_, ok := i.(fmt.Stringer)
	assert.True(t, ok, "%T does not implement fmt.Stringer", i)
	_, ok = i.(fmt.Formatter)
	assert.True(t, ok, "%T does not implement fmt.Formatter", i)
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value    string
			decimals int
			want     string
		}{
			{"0", 18, "0"},
			{"1", 18, "1000000000000000000"},
			{"0.5", 18, "500000000000000000"},
			{"0.1", 18, "100000000000000000"},
			{"0.000000000000000001", 18, "1"},
			{"2", 0, "2"},
			{"1.5e3", 6, "1500000000"},
			// Truncation
			{"0.123456789", 6, "123456"},
			{"1.99", 0, "1"},
			{"0.0000000000000000009", 18, "0"},
			// Range
			{maxUint256, 0, maxUint256},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.value, tt.decimals)
			require.NoError(t, err, "ParseAmount(%q, %v)", tt.value, tt.decimals)
			assert.Equal(t, tt.want, got.String(), "ParseAmount(%q, %v)", tt.value, tt.decimals)
			assert.Equal(t, tt.decimals, got.Decimals())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			value    string
			decimals int
			want     error
		}{
			"empty":      {"", 18, ErrInvalidAmount},
			"letters":    {"abc", 18, ErrInvalidAmount},
			"two points": {"1.2.3", 18, ErrInvalidAmount},
			"decimals":   {"1", -1, ErrInvalidAmount},
			"negative 1": {"-1", 18, ErrSignRange},
			"negative 2": {"-0.5", 0, ErrSignRange},
			"overflow 1": {"115792089237316195423570985008687907853269984665640564039457584007913129639936", 0, ErrOutOfRange},
			"overflow 2": {"1e60", 18, ErrOutOfRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseAmount(tt.value, tt.decimals)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestMustParseAmount(t *testing.T) {
	assert.Panics(t, func() { MustParseAmount("abc", 18) })
	assert.NotPanics(t, func() { MustParseAmount("1", 18) })
}

func TestAmount_RoundTrip(t *testing.T) {
	tests := []string{
		"1",
		"0.5",
		"123.456",
		"0.000000000000000001",
		"98765.000000000000000001",
		"1000000000000000000000000",
	}
	for _, s := range tests {
		a := MustParseAmount(s, 18)

		// Units
		b := MustParseAmount(a.Units(), 18)
		assert.True(t, a.Eq(b), "ParseAmount(%q).Units() = %q does not round-trip", s, a.Units())

		// Raw
		c, err := NewAmountFromString(a.String(), a.Decimals())
		require.NoError(t, err)
		assert.True(t, a.Eq(c) && a.SameDecimals(c), "NewAmountFromString(%q) = %v, want %v", a.String(), c, a)
	}
}

func TestAmount_Units(t *testing.T) {
	tests := []struct {
		value    string
		decimals int
		want     string
	}{
		{"1", 18, "1.0"},
		{"0", 18, "0.0"},
		{"2", 0, "2"},
		{"123.456", 18, "123.456"},
		{"0.000000000000000001", 18, "0.000000000000000001"},
	}
	for _, tt := range tests {
		got := MustParseAmount(tt.value, tt.decimals).Units()
		assert.Equal(t, tt.want, got, "ParseAmount(%q, %v).Units()", tt.value, tt.decimals)
	}
}

func TestAmount_Float64(t *testing.T) {
	tests := []struct {
		value    string
		decimals int
		want     float64
	}{
		{"1", 18, 1},
		{"2", 0, 2},
		{"0.5", 18, 0.5},
		{"123.456", 18, 123.456},
		{"0.000000000000000001", 18, 1e-18},
	}
	for _, tt := range tests {
		got := MustParseAmount(tt.value, tt.decimals).Float64()
		assert.Equal(t, tt.want, got, "ParseAmount(%q, %v).Float64()", tt.value, tt.decimals)
	}
}

func TestAmount_Display(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "0.00"},
		{"1", "1.00"},
		{"0.999", "0.99"},
		{"1234.5678", "1234.56"},
	}
	for _, tt := range tests {
		got := MustParseAmount(tt.value, 18).Display()
		assert.Equal(t, tt.want, got, "ParseAmount(%q).Display()", tt.value)
	}
}

func TestNewAmountFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f        float64
			decimals int
			want     string
		}{
			{0, 18, "0"},
			{1, 18, "1000000000000000000"},
			{0.1, 18, "100000000000000000"},
			{0.29, 2, "29"},
			{1e-7, 6, "0"},
		}
		for _, tt := range tests {
			got, err := NewAmountFromFloat64(tt.f, tt.decimals)
			require.NoError(t, err, "NewAmountFromFloat64(%v, %v)", tt.f, tt.decimals)
			assert.Equal(t, tt.want, got.String(), "NewAmountFromFloat64(%v, %v)", tt.f, tt.decimals)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			f    float64
			want error
		}{
			"nan":      {math.NaN(), ErrInvalidAmount},
			"inf":      {math.Inf(1), ErrInvalidAmount},
			"negative": {-1, ErrSignRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewAmountFromFloat64(tt.f, 18)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestNewAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := NewAmount(nil, 18)
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		raw := big.NewInt(42)
		got, err = NewAmount(raw, 18)
		require.NoError(t, err)
		raw.SetInt64(7)
		assert.Equal(t, "42", got.String(), "NewAmount must copy its argument")

		r := got.Raw()
		r.SetInt64(9)
		assert.Equal(t, "42", got.String(), "Raw must return a copy")
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			raw      *big.Int
			decimals int
			want     error
		}{
			"negative": {big.NewInt(-1), 18, ErrSignRange},
			"overflow": {pow2(256), 18, ErrOutOfRange},
			"decimals": {big.NewInt(1), -1, ErrInvalidAmount},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewAmount(tt.raw, tt.decimals)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("panic", func(t *testing.T) {
		assert.Panics(t, func() { MustNewAmount(big.NewInt(-1), 18) })
	})
}

func TestNewAmountFromString(t *testing.T) {
	got, err := NewAmountFromString("1500000", 6)
	require.NoError(t, err)
	assert.Equal(t, "1.5", got.Units())

	_, err = NewAmountFromString("1.5", 6)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewAmountFromString("-1", 6)
	assert.ErrorIs(t, err, ErrSignRange)
}

func TestAmount_Uint256(t *testing.T) {
	a := MustNewAmount(mustBig(maxUint256), 18)
	u := a.Uint256()
	assert.Equal(t, maxUint256, u.Dec())

	b, err := NewAmountFromUint256(u, 18)
	require.NoError(t, err)
	assert.True(t, a.Eq(b))

	c, err := NewAmountFromUint256(uint256.NewInt(5), 0)
	require.NoError(t, err)
	assert.Equal(t, "5", c.String())

	d, err := NewAmountFromUint256(nil, 0)
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestAmount_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"0", "0", "0"},
			{"1", "1", "2"},
			{"1.1", "2.2", "3.3"},
			{"0.000000000000000001", "0.999999999999999999", "1"},
		}
		for _, tt := range tests {
			a, b := MustParseAmount(tt.a, 18), MustParseAmount(tt.b, 18)
			got, err := a.Add(b)
			require.NoError(t, err, "%q.Add(%q)", a, b)
			want := MustParseAmount(tt.want, 18)
			assert.True(t, got.Eq(want), "%q.Add(%q) = %q, want %q", a, b, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustNewAmount(mustBig(maxUint256), 0)
		_, err := a.Add(MustNewAmount(big.NewInt(1), 0))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestAmount_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"0", "0", "0"},
			{"2", "1", "1"},
			{"3.3", "2.2", "1.1"},
		}
		for _, tt := range tests {
			a, b := MustParseAmount(tt.a, 18), MustParseAmount(tt.b, 18)
			got, err := a.Sub(b)
			require.NoError(t, err, "%q.Sub(%q)", a, b)
			want := MustParseAmount(tt.want, 18)
			assert.True(t, got.Eq(want), "%q.Sub(%q) = %q, want %q", a, b, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParseAmount("1", 18).Sub(MustParseAmount("2", 18))
		assert.ErrorIs(t, err, ErrSignRange)
	})
}

func TestAmount_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := MustNewAmount(big.NewInt(1), 18).Mul(MustNewAmount(big.NewInt(2), 18))
		require.NoError(t, err)
		assert.Equal(t, "2", got.String())
		assert.Equal(t, 18, got.Decimals())
	})

	t.Run("error", func(t *testing.T) {
		a := MustNewAmount(pow2(255), 0)
		_, err := a.Mul(MustNewAmount(big.NewInt(2), 0))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestAmount_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want int64
		}{
			{2, 2, 1},
			{7, 2, 3},
			{1, 3, 0},
			{0, 5, 0},
		}
		for _, tt := range tests {
			a, b := MustNewAmount(big.NewInt(tt.a), 18), MustNewAmount(big.NewInt(tt.b), 18)
			got, err := a.Quo(b)
			require.NoError(t, err, "%v.Quo(%v)", a, b)
			assert.Equal(t, big.NewInt(tt.want).String(), got.String(), "%v.Quo(%v)", a, b)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParseAmount("1", 18).Quo(Amount{})
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestAmount_Rescale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value    string
			from, to int
			want     string
		}{
			{"1.23456", 6, 2, "123"},
			{"1.23456", 6, 8, "123456000"},
			{"1.23456", 6, 6, "1234560"},
			{"1", 18, 0, "1"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.value, tt.from)
			got, err := a.Rescale(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String(), "%q.Rescale(%v)", a, tt.to)
			assert.Equal(t, tt.to, got.Decimals())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParseAmount("1", 18).Rescale(-1)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = MustNewAmount(mustBig(maxUint256), 0).Rescale(1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestAmount_Cmp(t *testing.T) {
	one := MustParseAmount("1", 18)
	tests := []struct {
		b                    string
		gt, gte, lt, lte, eq bool
		want                 int
	}{
		{"2", false, false, true, true, false, -1},
		{"0.5", true, true, false, false, false, 1},
		{"1", false, true, false, true, true, 0},
	}
	for _, tt := range tests {
		b := MustParseAmount(tt.b, 18)
		assert.Equal(t, tt.want, one.Cmp(b), "1.Cmp(%v)", tt.b)
		assert.Equal(t, tt.gt, one.Gt(b), "1.Gt(%v)", tt.b)
		assert.Equal(t, tt.gte, one.Gte(b), "1.Gte(%v)", tt.b)
		assert.Equal(t, tt.lt, one.Lt(b), "1.Lt(%v)", tt.b)
		assert.Equal(t, tt.lte, one.Lte(b), "1.Lte(%v)", tt.b)
		assert.Equal(t, tt.eq, one.Eq(b), "1.Eq(%v)", tt.b)
	}
}

func TestAmount_Format(t *testing.T) {
	tests := []struct {
		value    string
		decimals int
		format   string
		want     string
	}{
		{"1.5", 6, "%v", "1500000"},
		{"1.5", 6, "%s", "1500000"},
		{"1.5", 6, "%d", "1500000"},
		{"1.5", 6, "%q", "\"1500000\""},
		{"1.5", 6, "%f", "1.5"},
		{"1.239", 6, "%.2f", "1.23"},
		{"1", 6, "%.3f", "1.000"},
		{"1.5", 6, "%10v", "   1500000"},
		{"1.5", 6, "%-10v|", "1500000   |"},
		{"1.5", 6, "%x", "%!x(units.Amount=1500000)"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.value, tt.decimals)
		got := fmt.Sprintf(tt.format, a)
		assert.Equal(t, tt.want, got, "fmt.Sprintf(%q, %v)", tt.format, tt.value)
	}
}
