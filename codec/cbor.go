package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOROptions configures NewCBOR. The zero value gives Core Deterministic
// encoding (RFC 8949 §4.2.1), so the same value always armors to the same text.
type CBOROptions struct {
	// Unsorted trades stable output for speed: map keys keep iteration order.
	Unsorted bool
	// AllowDupKeys accepts maps with repeated keys on decode (last one wins).
	// By default such input is rejected, since it has no canonical form.
	AllowDupKeys bool
}

// CBOR serializes values using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
// Time values are encoded as RFC3339Nano.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

func NewCBOR[V any](opts CBOROptions) (CBOR[V], error) {
	eo := cbor.CoreDetEncOptions()
	if opts.Unsorted {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	do := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}
	if opts.AllowDupKeys {
		do.DupMapKey = cbor.DupMapKeyQuiet
	}
	dm, err := do.DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Meant for package-level vars.
func MustCBOR[V any](opts CBOROptions) CBOR[V] {
	c, err := NewCBOR[V](opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}
