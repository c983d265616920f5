package units

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// X64Bits is the number of fractional bits of a 64.64 fixed point number.
const X64Bits = 64

var (
	x64Denominator = pow2(X64Bits)
	// Largest value accepted by ParseFixedX64.
	x64MaxParsed = decimal.NewFromBigInt(pow2(X64Bits-1), 0)
)

// X64Denominator returns 2^64, the implicit denominator of every [FixedX64]
// numerator. All consumers of a 64.64 value must share this denominator.
func X64Denominator() *big.Int {
	return new(big.Int).Set(x64Denominator)
}

// FixedX64 type represents a signed 64.64 fixed point number: a numerator over
// the implicit denominator 2^64, as stored by contracts in an int128.
// Decimals is a display scale, independent of the denominator.
// Its zero value corresponds to 0 with 0 decimals.
// FixedX64 is designed to be safe for concurrent use by multiple goroutines.
type FixedX64 struct {
	raw      *big.Int // numerator, never modified after construction
	decimals int
}

// NewFixedX64 wraps a numerator returned by a contract call.
// The numerator is trusted to be a valid signed 64.64 value and is not
// range checked. The raw value is copied.
func NewFixedX64(raw *big.Int, decimals int) FixedX64 {
	return FixedX64{raw: new(big.Int).Set(orZero(raw)), decimals: decimals}
}

// ParseFixedX64Raw converts an integer string to a [FixedX64] numerator.
// Besides plain base 10 integers it accepts integers written in
// scientific notation, such as "3.345867008995041e+57".
//
// ParseFixedX64Raw returns an error if the string is not an integer.
func ParseFixedX64Raw(raw string, decimals int) (FixedX64, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return FixedX64{}, fmt.Errorf("parsing numerator %q: %w", raw, err)
	}
	if !d.IsInteger() {
		return FixedX64{}, fmt.Errorf("parsing numerator %q: not an integer: %w", raw, ErrInvalidAmount)
	}
	return FixedX64{raw: d.BigInt(), decimals: decimals}, nil
}

// ParseFixedX64 converts a decimal string to a 64.64 fixed point number
// with numerator trunc(value * 2^64).
// The multiplication is done on the decimal representation, not on a float.
// Do not use it for numerators returned by contracts, see [NewFixedX64].
//
// ParseFixedX64 returns an error if:
//   - the string is not a valid decimal number;
//   - the value is negative;
//   - the value is greater than 2^63.
func ParseFixedX64(value string, decimals int) (FixedX64, error) {
	d, err := parseDecimal(value)
	if err != nil {
		return FixedX64{}, fmt.Errorf("parsing fixed point %q: %w", value, err)
	}
	if d.Sign() < 0 {
		return FixedX64{}, fmt.Errorf("parsing fixed point %q: %w", value, ErrSignRange)
	}
	if d.Cmp(x64MaxParsed) > 0 {
		return FixedX64{}, fmt.Errorf("parsing fixed point %q: %w", value, ErrOutOfRange)
	}
	raw := d.Mul(decimal.NewFromBigInt(x64Denominator, 0)).Truncate(0).BigInt()
	return FixedX64{raw: raw, decimals: decimals}, nil
}

// MustParseFixedX64 is like [ParseFixedX64] but panics if the string cannot be parsed.
func MustParseFixedX64(value string, decimals int) FixedX64 {
	x, err := ParseFixedX64(value, decimals)
	if err != nil {
		panic(fmt.Sprintf("ParseFixedX64(%q, %v) failed: %v", value, decimals, err))
	}
	return x
}

// NewFixedX64FromFloat64 is like [ParseFixedX64] but takes a float.
// The float is formatted using the smallest number of digits necessary
// to represent it exactly before being scaled.
func NewFixedX64FromFloat64(f float64, decimals int) (FixedX64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FixedX64{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidAmount)
	}
	x, err := ParseFixedX64(strconv.FormatFloat(f, 'f', -1, 64), decimals)
	if err != nil {
		return FixedX64{}, fmt.Errorf("converting float: %w", err)
	}
	return x, nil
}

// Raw returns a copy of the numerator.
func (x FixedX64) Raw() *big.Int {
	return new(big.Int).Set(orZero(x.raw))
}

// Decimals returns the display scale of the number.
func (x FixedX64) Decimals() int {
	return x.decimals
}

// Parsed returns the numerator divided by 2^64 as the nearest float.
// This is a derived view and may lose precision.
func (x FixedX64) Parsed() float64 {
	f, _ := new(big.Float).SetInt(orZero(x.raw)).Float64()
	return math.Ldexp(f, -X64Bits)
}

// Float64 returns [FixedX64.Parsed] scaled down by 10^decimals.
func (x FixedX64) Float64() float64 {
	return x.Parsed() / math.Pow10(x.decimals)
}

// Percentage returns [FixedX64.Parsed] scaled down by the basis point
// mantissa 10^4, the value reinterpreted as a [Percentage] fraction.
func (x FixedX64) Percentage() float64 {
	return x.Parsed() / math.Pow10(PercentageMantissa)
}

// Amount returns the integer part of [FixedX64.Parsed] as the raw value of
// an [Amount] with the same decimals, so that the amount's Float64 matches
// [FixedX64.Float64]. The fractional part is truncated.
//
// Amount returns an error if the number is negative, including negative
// numbers whose integer part is zero.
func (x FixedX64) Amount() (Amount, error) {
	if x.Sign() < 0 {
		return Amount{}, fmt.Errorf("converting %v to amount: %w", x, ErrSignRange)
	}
	raw := new(big.Int).Quo(orZero(x.raw), x64Denominator)
	a, err := newAmountSafe(raw, x.decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to amount: %w", x, err)
	}
	return a, nil
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x FixedX64) Sign() int {
	return orZero(x.raw).Sign()
}

// Cmp compares numerators and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x FixedX64) Cmp(y FixedX64) int {
	return orZero(x.raw).Cmp(orZero(y.raw))
}

// String implements the [fmt.Stringer] interface and returns the numerator
// as a base 10 integer.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x FixedX64) String() string {
	return orZero(x.raw).String()
}
