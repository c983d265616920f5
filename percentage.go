package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

const (
	// PercentageMantissa is the power of ten used to scale percentages in contracts.
	// One unit of a raw percentage is a basis point.
	PercentageMantissa = 4

	// DefaultDisplayPrecision is the number of decimal places used by
	// [Percentage.Display] unless set by [WithDisplayPrecision].
	DefaultDisplayPrecision = 2
)

// Percentage type represents a decimal fraction scaled by 10^4, i.e.
// a number of basis points.
// Its zero value corresponds to 0 basis points.
// Percentage is designed to be safe for concurrent use by multiple goroutines.
type Percentage struct {
	raw     int64 // basis points
	prec    int   // display precision of points
	precSet bool
}

// PercentageOption configures a percentage at construction time.
type PercentageOption func(*Percentage)

// WithDisplayPrecision sets the number of decimal places used by
// [Percentage.Display]. Negative values are treated as 0.
func WithDisplayPrecision(prec int) PercentageOption {
	return func(p *Percentage) {
		p.prec = max(prec, 0)
		p.precSet = true
	}
}

func newPercentage(bps int64, opts []PercentageOption) Percentage {
	p := Percentage{raw: bps}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewPercentage returns a percentage with the given raw value in basis points,
// as used or returned during contract calls.
func NewPercentage(bps int64, opts ...PercentageOption) Percentage {
	return newPercentage(bps, opts)
}

// ParsePercentage converts a decimal fraction string to a percentage,
// for example "0.1" is 1000 basis points.
// The string is parsed exactly, whatever its number of digits, and digits
// below one basis point are truncated toward zero.
//
// ParsePercentage returns an error if:
//   - the string is not a valid decimal number;
//   - the number of basis points cannot be represented as an int64.
func ParsePercentage(fraction string, opts ...PercentageOption) (Percentage, error) {
	bps, err := parseTruncInt64(fraction, bpsScale)
	if err != nil {
		return Percentage{}, fmt.Errorf("parsing percentage %q: %w", fraction, err)
	}
	return newPercentage(bps, opts), nil
}

// MustParsePercentage is like [ParsePercentage] but panics if the string cannot be parsed.
func MustParsePercentage(fraction string, opts ...PercentageOption) Percentage {
	p, err := ParsePercentage(fraction, opts...)
	if err != nil {
		panic(fmt.Sprintf("ParsePercentage(%q) failed: %v", fraction, err))
	}
	return p
}

// NewPercentageFromFloat64 is like [ParsePercentage] but takes a float.
// The float is formatted using the smallest number of digits necessary
// to represent it exactly, so 0.0003 is exactly 3 basis points.
func NewPercentageFromFloat64(f float64, opts ...PercentageOption) (Percentage, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Percentage{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidAmount)
	}
	p, err := ParsePercentage(strconv.FormatFloat(f, 'f', -1, 64), opts...)
	if err != nil {
		return Percentage{}, fmt.Errorf("converting float: %w", err)
	}
	return p, nil
}

// Raw returns the raw value in basis points.
func (p Percentage) Raw() int64 {
	return p.raw
}

// Bps returns the number of basis points.
func (p Percentage) Bps() int64 {
	return p.raw
}

// Float64 returns the percentage as a decimal fraction, raw / 10^4.
func (p Percentage) Float64() float64 {
	return float64(p.raw) / 1e4
}

// Points returns the percentage in points, raw / 10^2.
// One point is one percent.
func (p Percentage) Points() float64 {
	return float64(p.raw) / 1e2
}

// DisplayPrecision returns the number of decimal places used by [Percentage.Display].
func (p Percentage) DisplayPrecision() int {
	if !p.precSet {
		return DefaultDisplayPrecision
	}
	return p.prec
}

// Display returns the points truncated to the display precision.
func (p Percentage) Display() string {
	prec := p.DisplayPrecision()
	d, err := decimal.New(p.raw, 2)
	if err != nil {
		return p.String()
	}
	return d.Trunc(prec).Pad(prec).String()
}

// IsZero returns:
//
//	true  if p = 0
//	false otherwise
func (p Percentage) IsZero() bool {
	return p.raw == 0
}

// Cmp compares percentages and returns:
//
//	-1 if p < q
//	 0 if p = q
//	+1 if p > q
func (p Percentage) Cmp(q Percentage) int {
	switch {
	case p.raw < q.raw:
		return -1
	case p.raw > q.raw:
		return 1
	}
	return 0
}

// String implements the [fmt.Stringer] interface and returns the raw value in
// basis points.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Percentage) String() string {
	return strconv.FormatInt(p.raw, 10)
}
