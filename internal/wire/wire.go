package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1

	// HeaderLen is the size of the frame header. It is a multiple of 4 so the
	// header never shares a Z85 block with the payload length arithmetic.
	HeaderLen = 2 + 1 + 1 + 4
)

var (
	ErrCorrupt = errors.New("armor: corrupt frame")
	magic2     = [...]byte{'Z', '8'}
)

// PadLen returns the number of zero bytes needed to align n to 4.
func PadLen(n int) int { return (4 - n%4) % 4 }

// FrameLen returns the total frame size for a payload of n bytes.
func FrameLen(n int) int { return HeaderLen + n + PadLen(n) }

// Frame: magic(2) | ver(1) | pad(1) | plen(u32 be) | payload(plen) | zero(pad)
// The total length is always a multiple of 4.
func EncodeFrame(payload []byte) []byte {
	return AppendFrame(make([]byte, 0, FrameLen(len(payload))), payload)
}

// AppendFrame appends the frame for payload to dst.
func AppendFrame(dst, payload []byte) []byte {
	pad := PadLen(len(payload))

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))

	dst = append(dst, magic2[:]...)
	dst = append(dst, version, byte(pad))
	dst = append(dst, u4[:]...)
	dst = append(dst, payload...)
	for i := 0; i < pad; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// DecodeFrame validates b and returns the payload it carries.
// The returned slice aliases b.
func DecodeFrame(b []byte) ([]byte, error) {
	if len(b) < HeaderLen || len(b)%4 != 0 {
		return nil, ErrCorrupt
	}
	if !bytes.Equal(b[:2], magic2[:]) || b[2] != version {
		return nil, ErrCorrupt
	}
	pad := int(b[3])

	plen := binary.BigEndian.Uint32(b[4:HeaderLen])
	if uint64(plen) > uint64(len(b)-HeaderLen) { // overflow-safe bound check
		return nil, ErrCorrupt
	}
	n := int(plen)
	if pad != PadLen(n) || HeaderLen+n+pad != len(b) {
		return nil, ErrCorrupt
	}

	for _, z := range b[HeaderLen+n:] {
		if z != 0 {
			return nil, ErrCorrupt
		}
	}
	return b[HeaderLen : HeaderLen+n], nil
}
