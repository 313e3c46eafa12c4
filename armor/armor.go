// Package armor wraps payloads of any length in a small length-prefixed frame
// and encodes the frame with Z85, yielding printable text safe for config files,
// text protocols and logs.
//
// Frame (before Z85):
//
//	"Z8" | version | pad | len(u32 be) | payload | pad zero bytes
//
// The frame is always a multiple of 4 bytes, so the strict Z85 codec never sees
// unaligned input.
package armor

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/z85"
	"github.com/unkn0wn-root/z85/internal/wire"
)

// ErrCorrupt reports Z85 text that decoded cleanly but does not hold a valid frame.
var ErrCorrupt = wire.ErrCorrupt

// EncodedLen returns the armored text length for a payload of n bytes.
func EncodedLen(n int) int { return z85.EncodedLen(wire.FrameLen(n)) }

// Encode armors payload. It never fails: the frame is aligned by construction.
func Encode(payload []byte) string {
	return string(AppendEncode(nil, payload))
}

// AppendEncode appends the armored form of payload to dst.
func AppendEncode(dst, payload []byte) []byte {
	frame := wire.EncodeFrame(payload)
	out, err := z85.AppendEncode(dst, frame)
	if err != nil {
		panic(fmt.Sprintf("armor: unaligned frame: %v", err)) // unreachable
	}
	return out
}

// Decode returns the payload carried by armored text.
// Z85 errors (length, invalid byte, overflow) are returned as is;
// a malformed frame is reported as ErrCorrupt.
func Decode(text string) ([]byte, error) {
	return DecodeBytes([]byte(text))
}

// DecodeBytes is like Decode for text held in a byte slice.
func DecodeBytes(text []byte) ([]byte, error) {
	frame, err := z85.AppendDecode(nil, text)
	if err != nil {
		return nil, err
	}
	payload, err := wire.DecodeFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("%w (%d bytes)", err, len(frame))
	}
	return payload, nil
}

// IsCorrupt reports whether err means the input was not valid armored text,
// either at the Z85 level or at the frame level.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt) ||
		errors.Is(err, z85.ErrLength) ||
		errors.Is(err, z85.ErrInvalidByte) ||
		errors.Is(err, z85.ErrOverflow)
}
