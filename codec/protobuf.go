package codec

import (
	"errors"

	"google.golang.org/protobuf/proto"
)

// Protobuf serializes proto messages. Construct with NewProtobuf.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *pb.Key { return &pb.Key{} }
	det bool
}

// NewProtobuf returns a protobuf codec that builds fresh messages with ctor.
// With deterministic set, map fields are marshaled in a stable order.
func NewProtobuf[T proto.Message](ctor func() T, deterministic bool) Protobuf[T] {
	return Protobuf[T]{new: ctor, det: deterministic}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: c.det}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	if c.new == nil {
		var zero T
		return zero, errors.New("codec: protobuf codec has no constructor")
	}
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
