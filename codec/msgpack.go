package codec

import (
	"bytes"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

var errMsgpackTrailing = errors.New("codec: trailing bytes after msgpack value")

// Msgpack serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use. Map keys are sorted so equal values armor to
// equal text. Use `msgpack:"name"` tags for explicit field names.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode rejects input that carries anything after the first value.
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	r := bytes.NewReader(b)
	if err := msgpack.NewDecoder(r).Decode(&v); err != nil {
		return v, err
	}
	if r.Len() != 0 {
		var zero V
		return zero, errMsgpackTrailing
	}
	return v, nil
}
