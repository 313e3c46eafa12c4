// Package codec holds the value serializers used by store.
//
// A Codec turns a Go value into bytes and back. Most codecs here produce
// binary output (CBOR, msgpack, protobuf); wrap them in Armored to get
// printable Z85 text instead.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
