package units

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Floating type represents a native float that is truncated to a fixed number
// of decimals after every arithmetic operation, the way a contract truncates
// the result of integer division.
//
// Operations are performed on scaled integers, floor(value * 10^decimals),
// and the result is truncated once, when it is scaled back down.
// The receiver's decimals are used for both operands.
//
// Floating is designed to be safe for concurrent use by multiple goroutines.
type Floating struct {
	value    float64
	decimals int
}

var (
	// FloatingZero is 0 with [DefaultDecimals].
	FloatingZero = MustNewFloating(0, DefaultDecimals)
	// FloatingHalf is 0.5 with [DefaultDecimals].
	FloatingHalf = MustNewFloating(0.5, DefaultDecimals)
	// FloatingOne is 1 with [DefaultDecimals].
	FloatingOne = MustNewFloating(1, DefaultDecimals)
)

// NewFloating returns a floating value truncated at the given decimals.
// The value itself is stored as is; see [Floating.Normalized].
//
// NewFloating returns an error if the value is NaN or Inf or decimals is negative.
func NewFloating(value float64, decimals int) (Floating, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Floating{}, fmt.Errorf("converting float: special value %v: %w", value, ErrInvalidAmount)
	}
	if decimals < 0 {
		return Floating{}, fmt.Errorf("converting float: decimals %v: %w", decimals, ErrInvalidAmount)
	}
	return Floating{value: value, decimals: decimals}, nil
}

// MustNewFloating is like [NewFloating] but panics on an invalid value.
func MustNewFloating(value float64, decimals int) Floating {
	f, err := NewFloating(value, decimals)
	if err != nil {
		panic(fmt.Sprintf("NewFloating(%v, %v) failed: %v", value, decimals, err))
	}
	return f
}

// NewFloatingDefault is like [NewFloating] with [DefaultDecimals].
func NewFloatingDefault(value float64) (Floating, error) {
	return NewFloating(value, DefaultDecimals)
}

// Of returns a value with the decimals of f.
// It is a shorthand for passing plain floats to arithmetic operations:
//
//	f.Mul(f.Of(2))
//
// Of panics if the value is NaN or Inf.
func (f Floating) Of(value float64) Floating {
	return MustNewFloating(value, f.decimals)
}

// Raw returns the value the instance was created with.
func (f Floating) Raw() float64 {
	return f.value
}

// Decimals returns the number of decimals the value is truncated at.
func (f Floating) Decimals() int {
	return f.decimals
}

func (f Floating) dec() decimal.Decimal {
	return decimal.NewFromFloat(f.value)
}

// Normalized returns the value truncated to its decimals.
func (f Floating) Normalized() float64 {
	return truncate(f.dec(), f.decimals).InexactFloat64()
}

// ScaleFactor returns 10^decimals as a float.
func (f Floating) ScaleFactor() float64 {
	return math.Pow10(f.decimals)
}

// Scaled returns floor(value * 10^decimals), the integer used by arithmetic
// operations. The value is scaled through its shortest decimal
// representation, so 0.29 with 2 decimals scales to 29.
func (f Floating) Scaled() *big.Int {
	return f.Upscale(f.value)
}

// Upscale multiplies value by 10^decimals of f and floors it.
func (f Floating) Upscale(value float64) *big.Int {
	return decimal.NewFromFloat(value).Shift(int32(f.decimals)).Floor().BigInt()
}

// Downscale divides an integer by 10^decimals of f and truncates it to the
// decimals of f.
func (f Floating) Downscale(n *big.Int) float64 {
	d := decimal.NewFromBigInt(orZero(n), -int32(f.decimals))
	return truncate(d, f.decimals).InexactFloat64()
}

func (f Floating) downscale(n *big.Int) Floating {
	return Floating{value: f.Downscale(n), decimals: f.decimals}
}

// IsZero returns true if the scaled value is zero.
func (f Floating) IsZero() bool {
	return f.Scaled().Sign() == 0
}

// IsInfinity returns true if the scaled value does not fit into uint256,
// that is if it is greater than or equal to 2^256.
func (f Floating) IsInfinity() bool {
	s := f.Scaled()
	if s.Sign() <= 0 {
		return false
	}
	_, overflow := uint256.FromBig(s)
	return overflow
}

// Add returns the sum of f and g.
func (f Floating) Add(g Floating) Floating {
	n := new(big.Int).Add(f.Scaled(), f.Upscale(g.value))
	return f.downscale(n)
}

// Sub returns the difference between f and g.
func (f Floating) Sub(g Floating) Floating {
	n := new(big.Int).Sub(f.Scaled(), f.Upscale(g.value))
	return f.downscale(n)
}

// Mul returns the product of f and g, truncated to the decimals of f.
func (f Floating) Mul(g Floating) Floating {
	n := new(big.Int).Mul(f.Scaled(), f.Upscale(g.value))
	n.Quo(n, pow10(f.decimals))
	return f.downscale(n)
}

// MulDiv returns f * g / h, truncated to the decimals of f.
// The product is not truncated before the division.
//
// MulDiv returns [ErrDivisionByZero] if the scaled value of h is zero.
func (f Floating) MulDiv(g, h Floating) (Floating, error) {
	den := f.Upscale(h.value)
	if den.Sign() == 0 {
		return Floating{}, fmt.Errorf("computing [%v * %v / %v]: %w", f, g, h, ErrDivisionByZero)
	}
	n := new(big.Int).Mul(f.Scaled(), f.Upscale(g.value))
	n.Quo(n, den)
	return f.downscale(n), nil
}

// Quo returns f / g, truncated to the decimals of f.
//
// Quo returns [ErrDivisionByZero] if the scaled value of g is zero.
func (f Floating) Quo(g Floating) (Floating, error) {
	den := f.Upscale(g.value)
	if den.Sign() == 0 {
		return Floating{}, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}
	n := new(big.Int).Mul(f.Scaled(), pow10(f.decimals))
	n.Quo(n, den)
	return f.downscale(n), nil
}

// QuoCeil returns f / g, rounded toward positive infinity at the decimals of f.
// It is used where a contract rounds fees or remainders up.
//
// QuoCeil returns [ErrDivisionByZero] if the scaled value of g is zero.
func (f Floating) QuoCeil(g Floating) (Floating, error) {
	den := f.Upscale(g.value)
	if den.Sign() == 0 {
		return Floating{}, fmt.Errorf("computing [ceil(%v / %v)]: %w", f, g, ErrDivisionByZero)
	}
	n := new(big.Int).Mul(f.Scaled(), pow10(f.decimals))
	q, r := new(big.Int).QuoRem(n, den, new(big.Int))
	if r.Sign() != 0 && r.Sign() == den.Sign() {
		q.Add(q, big.NewInt(1))
	}
	return f.downscale(q), nil
}

// Cmp compares normalized values and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
func (f Floating) Cmp(g Floating) int {
	return f.Scaled().Cmp(f.Upscale(g.value))
}

// Fixed returns the normalized value with exactly the given number of
// decimal places. Extra digits are truncated, not rounded.
func (f Floating) Fixed(places int) string {
	d := truncate(f.dec(), min(places, f.decimals))
	return d.StringFixed(int32(places))
}

// String implements the [fmt.Stringer] interface and returns the value the
// instance was created with.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Floating) String() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}
