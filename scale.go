package units

import (
	"errors"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a decimal input cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSignRange is returned when a negative value is given where only
	// non-negative values are valid.
	ErrSignRange = errors.New("sign out of range")
	// ErrOutOfRange is returned when a magnitude exceeds the representable domain.
	ErrOutOfRange = errors.New("value out of range")
	// ErrDivisionByZero is returned when a divisor is zero or, for unsigned
	// values, not positive.
	ErrDivisionByZero = errors.New("division by zero")
)

var (
	bigZero = new(big.Int)
	bigTen  = big.NewInt(10)

	bpsScale  = decimal.New(1, PercentageMantissa)
	yearScale = decimal.NewFromInt(YearInSeconds)
)

// pow10 returns a new big integer equal to 10^n.
func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// pow2 returns a new big integer equal to 2^n.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// orZero treats a nil integer as zero.
// The result must not be modified.
func orZero(x *big.Int) *big.Int {
	if x == nil {
		return bigZero
	}
	return x
}

// checkUint256 reports whether x fits into the unsigned 256-bit domain [0, 2^256).
func checkUint256(x *big.Int) error {
	if x.Sign() < 0 {
		return ErrSignRange
	}
	if _, overflow := uint256.FromBig(x); overflow {
		return ErrOutOfRange
	}
	return nil
}

// parseDecimal parses a decimal string, including scientific notation,
// without going through a native float.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// parseTruncInt64 parses s exactly and returns trunc(s * m) as an int64.
// Truncation is toward zero and happens only after the multiplication.
func parseTruncInt64(s string, m decimal.Decimal) (int64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	n := d.Mul(m).Truncate(0).BigInt()
	if !n.IsInt64() {
		return 0, ErrOutOfRange
	}
	return n.Int64(), nil
}

// upscale returns trunc(d * 10^decimals) as an integer.
func upscale(d decimal.Decimal, decimals int) *big.Int {
	return d.Shift(int32(decimals)).Truncate(0).BigInt()
}

// truncate discards the digits of d after the given number of decimal places.
// Truncation is toward zero.
func truncate(d decimal.Decimal, decimals int) decimal.Decimal {
	return d.Truncate(int32(decimals))
}

// formatUnits returns the exact decimal representation of raw / 10^decimals.
// Trailing zeros are removed but at least one fractional digit is kept
// whenever decimals is positive.
func formatUnits(raw *big.Int, decimals int) string {
	s := decimal.NewFromBigInt(orZero(raw), -int32(decimals)).String()
	if decimals > 0 && !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
