package z85

import "encoding/binary"

const (
	// Alphabet is the Z85 digit set. A character's position is its base-85 value.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"

	// BinaryBlock and TextBlock are the sizes of one aligned group.
	BinaryBlock = 4
	TextBlock   = 5

	base    = 85
	invalid = 0xFF
)

var decodeMap = buildDecodeMap(Alphabet)

// buildDecodeMap derives the reverse lookup from the alphabet.
// It panics if the alphabet is not 85 distinct bytes.
func buildDecodeMap(alphabet string) [256]byte {
	if len(alphabet) != base {
		panic("z85: alphabet must be 85 bytes long")
	}
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if m[c] != invalid {
			panic("z85: alphabet contains duplicate characters")
		}
		m[c] = byte(i)
	}
	return m
}

// EncodedLen returns the length of the Z85 encoding of n source bytes.
func EncodedLen(n int) int { return n / BinaryBlock * TextBlock }

// DecodedLen returns the length of the data decoded from n Z85 characters.
func DecodedLen(n int) int { return n / TextBlock * BinaryBlock }

// Encode encodes src into EncodedLen(len(src)) bytes of dst and returns the
// number of bytes written.
// len(src) must be a positive multiple of 4, otherwise a *LengthError is returned.
func Encode(dst, src []byte) (int, error) {
	if err := checkLen("encode", len(src), BinaryBlock); err != nil {
		return 0, err
	}
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, &ShortBufferError{Need: n, Have: len(dst)}
	}
	encodeBlocks(dst, src)
	return n, nil
}

func encodeBlocks(dst, src []byte) {
	for len(src) > 0 {
		v := binary.BigEndian.Uint32(src)
		for i := TextBlock - 1; i >= 0; i-- {
			dst[i] = Alphabet[v%base]
			v /= base
		}
		src = src[BinaryBlock:]
		dst = dst[TextBlock:]
	}
}

// EncodeToString returns the Z85 encoding of src.
func EncodeToString(src []byte) (string, error) {
	buf, err := AppendEncode(nil, src)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendEncode appends the Z85 encoding of src to dst.
// On error dst is returned unchanged.
func AppendEncode(dst, src []byte) ([]byte, error) {
	if err := checkLen("encode", len(src), BinaryBlock); err != nil {
		return dst, err
	}
	n := EncodedLen(len(src))
	out := grow(dst, n)
	encodeBlocks(out[len(dst):], src)
	return out, nil
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst and returns the
// number of bytes written.
// len(src) must be a positive multiple of 5. Bytes outside the alphabet yield an
// *InvalidByteError and blocks above 2^32-1 an *OverflowError. On error dst is
// left untouched and n is 0.
func Decode(dst, src []byte) (int, error) {
	if err := checkLen("decode", len(src), TextBlock); err != nil {
		return 0, err
	}
	n := DecodedLen(len(src))
	if len(dst) < n {
		return 0, &ShortBufferError{Need: n, Have: len(dst)}
	}
	if err := decodeBlocks(nil, src); err != nil {
		return 0, err
	}
	_ = decodeBlocks(dst, src) // validated above
	return n, nil
}

// decodeBlocks decodes aligned src into dst. A nil dst only validates.
// Blocks before a bad one are already written when dst is non-nil.
func decodeBlocks(dst, src []byte) error {
	for off := 0; off < len(src); off += TextBlock {
		var v uint64
		for i := 0; i < TextBlock; i++ {
			c := src[off+i]
			d := decodeMap[c]
			if d == invalid {
				return &InvalidByteError{Offset: off + i, Byte: c}
			}
			v = v*base + uint64(d)
		}
		if v > 0xFFFFFFFF {
			return &OverflowError{Offset: off}
		}
		if dst != nil {
			binary.BigEndian.PutUint32(dst[off/TextBlock*BinaryBlock:], uint32(v))
		}
	}
	return nil
}

// DecodeString returns the bytes represented by the Z85 string s.
func DecodeString(s string) ([]byte, error) {
	return AppendDecode(nil, []byte(s))
}

// AppendDecode appends the bytes decoded from src to dst.
// On error dst is returned unchanged, spare capacity included.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if err := checkLen("decode", len(src), TextBlock); err != nil {
		return dst, err
	}
	if err := decodeBlocks(nil, src); err != nil {
		return dst, err
	}
	out := grow(dst, DecodedLen(len(src)))
	_ = decodeBlocks(out[len(dst):], src)
	return out, nil
}

// Validate reports whether s is well-formed Z85 text without decoding it.
func Validate(s string) error {
	if err := checkLen("decode", len(s), TextBlock); err != nil {
		return err
	}
	return decodeBlocks(nil, []byte(s))
}

func checkLen(op string, n, multiple int) error {
	if n == 0 || n%multiple != 0 {
		return &LengthError{Op: op, Len: n, Multiple: multiple}
	}
	return nil
}

// grow extends b by n bytes, reallocating only when capacity is short.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b[:len(b)+n]
	}
	out := make([]byte, len(b)+n)
	copy(out, b)
	return out
}
