package units

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ json.Marshaler        = Amount{}
	_ json.Unmarshaler      = (*Amount)(nil)
	_ msgpack.CustomEncoder = Amount{}
	_ msgpack.CustomDecoder = (*Amount)(nil)
	_ json.Marshaler        = FixedX64{}
	_ json.Unmarshaler      = (*FixedX64)(nil)
	_ msgpack.CustomEncoder = FixedX64{}
	_ msgpack.CustomDecoder = (*FixedX64)(nil)
	_ json.Marshaler        = Percentage{}
	_ json.Unmarshaler      = (*Percentage)(nil)
	_ json.Marshaler        = Duration{}
	_ json.Unmarshaler      = (*Duration)(nil)
)

// rawJSON is the wire form of values backed by a big integer.
// Raw is a string since JSON numbers cannot hold 256-bit integers.
type rawJSON struct {
	Raw      string `json:"raw"`
	Decimals int    `json:"decimals"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as {"raw":"<integer>","decimals":<n>}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawJSON{Raw: a.String(), Decimals: a.decimals})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [NewAmountFromString].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v rawJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", a, err)
	}
	b, err := NewAmountFromString(v.Raw, v.Decimals)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", a, err)
	}
	*a = b
	return nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// The amount is encoded as the raw string followed by the decimals.
func (a Amount) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeString(a.String()); err != nil {
		return err
	}
	return enc.EncodeInt(int64(a.decimals))
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
func (a *Amount) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, decimals, err := decodeRawMsgpack(dec)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", a, err)
	}
	b, err := NewAmountFromString(raw, decimals)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", a, err)
	}
	*a = b
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The number is encoded as {"raw":"<numerator>","decimals":<n>}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (x FixedX64) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawJSON{Raw: x.String(), Decimals: x.decimals})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseFixedX64Raw].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (x *FixedX64) UnmarshalJSON(data []byte) error {
	var v rawJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", x, err)
	}
	y, err := ParseFixedX64Raw(v.Raw, v.Decimals)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", x, err)
	}
	*x = y
	return nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
func (x FixedX64) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeString(x.String()); err != nil {
		return err
	}
	return enc.EncodeInt(int64(x.decimals))
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
// See also constructor [ParseFixedX64Raw].
func (x *FixedX64) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, decimals, err := decodeRawMsgpack(dec)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", x, err)
	}
	y, err := ParseFixedX64Raw(raw, decimals)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", x, err)
	}
	*x = y
	return nil
}

func decodeRawMsgpack(dec *msgpack.Decoder) (string, int, error) {
	raw, err := dec.DecodeString()
	if err != nil {
		return "", 0, err
	}
	decimals, err := dec.DecodeInt()
	if err != nil {
		return "", 0, err
	}
	return raw, decimals, nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The percentage is encoded as its number of basis points.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (p Percentage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The display precision of the receiver is kept.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (p *Percentage) UnmarshalJSON(data []byte) error {
	var bps int64
	if err := json.Unmarshal(data, &bps); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", p, err)
	}
	p.raw = bps
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The duration is encoded as its number of seconds.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (t Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.raw)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (t *Duration) UnmarshalJSON(data []byte) error {
	var secs int64
	if err := json.Unmarshal(data, &secs); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", t, err)
	}
	t.raw = secs
	return nil
}
