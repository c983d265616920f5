package units

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// DefaultDecimals is the number of decimals of a wei-denominated token.
const DefaultDecimals = 18

// Amount type represents an unsigned token amount scaled by 10^decimals,
// the way a contract stores it in a uint256.
// Its zero value corresponds to 0 with 0 decimals.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	raw      *big.Int // never modified after construction
	decimals int      // power of ten relating raw to its decimal value
}

// newAmountUnsafe creates a new amount without checking the range.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(raw *big.Int, decimals int) Amount {
	return Amount{raw: raw, decimals: decimals}
}

// newAmountSafe creates a new amount and checks that it fits into uint256.
func newAmountSafe(raw *big.Int, decimals int) (Amount, error) {
	if decimals < 0 {
		return Amount{}, fmt.Errorf("decimals %v: %w", decimals, ErrInvalidAmount)
	}
	if err := checkUint256(raw); err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(raw, decimals), nil
}

// NewAmount returns an amount with the given raw value, as used or returned
// during contract calls. The raw value is copied.
//
// NewAmount returns an error if:
//   - decimals is negative;
//   - raw is negative;
//   - raw is greater than or equal to 2^256.
func NewAmount(raw *big.Int, decimals int) (Amount, error) {
	a, err := newAmountSafe(new(big.Int).Set(orZero(raw)), decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("converting raw value: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(raw *big.Int, decimals int) Amount {
	a, err := NewAmount(raw, decimals)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", raw, decimals, err))
	}
	return a
}

// NewAmountFromString converts a base 10 integer string, such as one returned
// by a contract call, to an amount.
// See also method [Amount.String].
func NewAmountFromString(raw string, decimals int) (Amount, error) {
	r, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, fmt.Errorf("converting raw value %q: %w", raw, ErrInvalidAmount)
	}
	a, err := newAmountSafe(r, decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("converting raw value %q: %w", raw, err)
	}
	return a, nil
}

// NewAmountFromUint256 converts a 256-bit unsigned integer to an amount.
// See also method [Amount.Uint256].
func NewAmountFromUint256(raw *uint256.Int, decimals int) (Amount, error) {
	if raw == nil {
		raw = new(uint256.Int)
	}
	a, err := newAmountSafe(raw.ToBig(), decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("converting uint256: %w", err)
	}
	return a, nil
}

// ParseAmount multiplies a decimal string by 10^decimals and returns the result
// as an amount. The multiplication is exact; digits beyond the given number
// of decimals are truncated.
// The string may use scientific notation, for example "1.5e3".
//
// ParseAmount returns an error if:
//   - the string is not a valid decimal number or decimals is negative;
//   - the number is negative;
//   - the scaled result is greater than or equal to 2^256.
func ParseAmount(value string, decimals int) (Amount, error) {
	d, err := parseDecimal(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	if decimals < 0 {
		return Amount{}, fmt.Errorf("parsing amount %q: decimals %v: %w", value, decimals, ErrInvalidAmount)
	}
	if d.Sign() < 0 {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", value, ErrSignRange)
	}
	a, err := newAmountSafe(upscale(d, decimals), decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(value string, decimals int) Amount {
	a, err := ParseAmount(value, decimals)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %v) failed: %v", value, decimals, err))
	}
	return a
}

// NewAmountFromFloat64 converts a float to an amount.
// The float is first formatted using the smallest number of digits necessary
// to represent it exactly, so 0.1 is parsed as "0.1" and not as
// 0.1000000000000000055511151231257827.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if the float is a special value
// (NaN or Inf) or if [ParseAmount] fails.
func NewAmountFromFloat64(f float64, decimals int) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidAmount)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	a, err := ParseAmount(s, decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// Raw returns a copy of the raw value used in contract calls.
func (a Amount) Raw() *big.Int {
	return new(big.Int).Set(orZero(a.raw))
}

// Uint256 returns the raw value as a 256-bit unsigned integer.
// See also constructor [NewAmountFromUint256].
func (a Amount) Uint256() *uint256.Int {
	u, _ := uint256.FromBig(orZero(a.raw))
	return u
}

// Decimals returns the number of decimals of the amount.
func (a Amount) Decimals() int {
	return a.decimals
}

// Units returns the exact decimal value of the amount, raw / 10^decimals.
// Amounts with positive decimals always have a fractional part: 1 ether is "1.0".
func (a Amount) Units() string {
	return formatUnits(a.raw, a.decimals)
}

// Float64 returns the nearest binary floating-point number to [Amount.Units].
// See also constructor [NewAmountFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision than
// the amount. Use [Amount.Raw] or [Amount.Units] where exactness matters.
func (a Amount) Float64() float64 {
	f, err := strconv.ParseFloat(a.Units(), 64)
	if err != nil {
		// Only possible for values beyond the float64 range.
		return math.Inf(1)
	}
	return f
}

// Display returns the amount truncated to two decimal places, for human
// readable output.
func (a Amount) Display() string {
	d := decimal.NewFromBigInt(orZero(a.raw), -int32(a.decimals))
	return truncate(d, 2).StringFixed(2)
}

// Sign returns:
//
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return orZero(a.raw).Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// Add returns the sum of raw values of amounts a and b.
// The result has the decimals of amount a; amounts with different decimals
// are not rescaled.
//
// Add returns an error if the result is greater than or equal to 2^256.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := newAmountSafe(new(big.Int).Add(orZero(a.raw), orZero(b.raw)), a.decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

// Sub returns the difference between raw values of amounts a and b.
// The result has the decimals of amount a.
//
// Sub returns an error if b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := newAmountSafe(new(big.Int).Sub(orZero(a.raw), orZero(b.raw)), a.decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

// Mul returns the product of raw values of amounts a and b.
// The result has the decimals of amount a, no rescaling is done.
//
// Mul returns an error if the result is greater than or equal to 2^256.
func (a Amount) Mul(b Amount) (Amount, error) {
	c, err := newAmountSafe(new(big.Int).Mul(orZero(a.raw), orZero(b.raw)), a.decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return c, nil
}

// Quo returns the quotient of raw values of amounts a and b, truncated
// toward zero the same way integer division in a contract does.
// The result has the decimals of amount a.
//
// Quo returns [ErrDivisionByZero] if b is not positive.
func (a Amount) Quo(b Amount) (Amount, error) {
	if b.Sign() <= 0 {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	return newAmountUnsafe(new(big.Int).Quo(orZero(a.raw), b.raw), a.decimals), nil
}

// Rescale returns an amount with the same value expressed with the given
// number of decimals. Reducing decimals truncates the extra digits.
//
// Rescale returns an error if decimals is negative or the rescaled raw
// value is greater than or equal to 2^256.
func (a Amount) Rescale(decimals int) (Amount, error) {
	raw := orZero(a.raw)
	switch {
	case decimals > a.decimals:
		raw = new(big.Int).Mul(raw, pow10(decimals-a.decimals))
	case decimals < a.decimals:
		raw = new(big.Int).Quo(raw, pow10(a.decimals-decimals))
	}
	b, err := newAmountSafe(raw, decimals)
	if err != nil {
		return Amount{}, fmt.Errorf("rescaling %v to %v decimals: %w", a, decimals, err)
	}
	return b, nil
}

// SameDecimals returns true if amounts have the same number of decimals.
func (a Amount) SameDecimals(b Amount) bool {
	return a.decimals == b.decimals
}

// Cmp compares raw values of amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts with different decimals are compared by their raw values only,
// which is meaningless. Callers must not compare across unequal decimals,
// see method [Amount.SameDecimals].
func (a Amount) Cmp(b Amount) int {
	return orZero(a.raw).Cmp(orZero(b.raw))
}

// Gt returns true if a > b.
func (a Amount) Gt(b Amount) bool { return a.Cmp(b) > 0 }

// Gte returns true if a >= b.
func (a Amount) Gte(b Amount) bool { return a.Cmp(b) >= 0 }

// Lt returns true if a < b.
func (a Amount) Lt(b Amount) bool { return a.Cmp(b) < 0 }

// Lte returns true if a <= b.
func (a Amount) Lte(b Amount) bool { return a.Cmp(b) <= 0 }

// Eq returns true if a = b.
func (a Amount) Eq(b Amount) bool { return a.Cmp(b) == 0 }

// String implements the [fmt.Stringer] interface and returns the raw value
// as a base 10 integer, ready to be passed to a contract call.
// See also constructor [NewAmountFromString].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return orZero(a.raw).String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example          | Description         |
//	| ------ | ---------------- | ------------------- |
//	| %s, %v | 1500000          | Raw value           |
//	| %q     | "1500000"        | Quoted raw value    |
//	| %d     | 1500000          | Raw value           |
//	| %f     | 1.5              | Decimal value       |
//
// Precision is only supported for the %f verb, the value is truncated
// to the given number of decimal places.
// Width and the '-' flag are supported for all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'v', 'd':
		s = a.String()
	case 'q':
		s = strconv.Quote(a.String())
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			d := decimal.NewFromBigInt(orZero(a.raw), -int32(a.decimals))
			s = truncate(d, p).StringFixed(int32(p))
		} else {
			s = a.Units()
		}
	default:
		s = "%!" + string(verb) + "(units.Amount=" + a.String() + ")"
	}
	writePadded(state, s)
}

// writePadded writes s honoring the width and the '-' flag of the state.
func writePadded(state fmt.State, s string) {
	pad := 0
	if w, ok := state.Width(); ok && w > len(s) {
		pad = w - len(s)
	}
	buf := make([]byte, 0, len(s)+pad)
	if !state.Flag('-') {
		for i := 0; i < pad; i++ {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, s...)
	if state.Flag('-') {
		for i := 0; i < pad; i++ {
			buf = append(buf, ' ')
		}
	}
	//nolint:errcheck
	state.Write(buf)
}
