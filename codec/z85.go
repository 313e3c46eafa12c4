package codec

import (
	"github.com/unkn0wn-root/z85"
	"github.com/unkn0wn-root/z85/armor"
)

// Z85 is a strict Codec[[]byte]: values must already be aligned to 4 bytes
// and stored text must be aligned to 5 characters. Nothing is padded.
// Typical values are fixed-size keys and digests.
type Z85 struct{}

var _ Codec[[]byte] = Z85{}

func (Z85) Encode(b []byte) ([]byte, error) { return z85.AppendEncode(nil, b) }
func (Z85) Decode(b []byte) ([]byte, error) { return z85.AppendDecode(nil, b) }

// Armored runs Inner and then armors its output, so any value becomes
// printable Z85 text regardless of the serialized length.
type Armored[V any] struct {
	Inner Codec[V]
}

func (c Armored[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return armor.AppendEncode(nil, b), nil
}

func (c Armored[V]) Decode(b []byte) (V, error) {
	payload, err := armor.DecodeBytes(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(payload)
}
