package units

import "go.uber.org/zap/zapcore"

var (
	_ zapcore.ObjectMarshaler = Amount{}
	_ zapcore.ObjectMarshaler = FixedX64{}
	_ zapcore.ObjectMarshaler = Percentage{}
	_ zapcore.ObjectMarshaler = Duration{}
	_ zapcore.ObjectMarshaler = Floating{}
)

// MarshalLogObject implements the [zapcore.ObjectMarshaler] interface,
// so amounts can be logged with zap.Object.
func (a Amount) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("raw", a.String())
	enc.AddInt("decimals", a.decimals)
	enc.AddString("units", a.Units())
	return nil
}

// MarshalLogObject implements the [zapcore.ObjectMarshaler] interface.
func (x FixedX64) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("raw", x.String())
	enc.AddInt("decimals", x.decimals)
	enc.AddFloat64("parsed", x.Parsed())
	return nil
}

// MarshalLogObject implements the [zapcore.ObjectMarshaler] interface.
func (p Percentage) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("bps", p.raw)
	enc.AddString("points", p.Display())
	return nil
}

// MarshalLogObject implements the [zapcore.ObjectMarshaler] interface.
func (t Duration) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("seconds", t.raw)
	enc.AddFloat64("years", t.Years())
	return nil
}

// MarshalLogObject implements the [zapcore.ObjectMarshaler] interface.
func (f Floating) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("raw", f.value)
	enc.AddInt("decimals", f.decimals)
	enc.AddFloat64("normalized", f.Normalized())
	return nil
}
