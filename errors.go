package z85

import (
	"errors"
	"fmt"
)

var (
	ErrLength      = errors.New("z85: misaligned input length")
	ErrInvalidByte = errors.New("z85: invalid input byte")
	ErrOverflow    = errors.New("z85: block value overflows 32 bits")
	ErrType        = errors.New("z85: unsupported input type")
	ErrShortBuffer = errors.New("z85: destination buffer too small")
)

// LengthError reports input whose length is not a positive multiple of the
// block size for the operation.
type LengthError struct {
	Op       string // "encode" or "decode"
	Len      int
	Multiple int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("z85: %s: data length %d must be a positive multiple of %d", e.Op, e.Len, e.Multiple)
}

func (e *LengthError) Is(target error) bool { return target == ErrLength }

// InvalidByteError describes a byte outside the Z85 alphabet.
type InvalidByteError struct {
	Offset int
	Byte   byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("z85: invalid input byte %#U at offset %d", rune(e.Byte), e.Offset)
}

func (e *InvalidByteError) Is(target error) bool { return target == ErrInvalidByte }

// OverflowError reports a text block whose value does not fit in 4 bytes.
// Offset is the position of the first character of the block.
type OverflowError struct {
	Offset int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("z85: block at offset %d overflows 32 bits", e.Offset)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// TypeError is returned by EncodeValue and DecodeValue when the dynamic type
// of the input is not accepted. It is raised before any parsing.
type TypeError struct {
	Op   string
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("z85: %s: expected %s, got %T", e.Op, e.Want, e.Got)
}

func (e *TypeError) Is(target error) bool { return target == ErrType }

// ShortBufferError is returned when dst cannot hold the full output.
type ShortBufferError struct {
	Need int
	Have int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("z85: destination buffer too small: need %d, got %d", e.Need, e.Have)
}

func (e *ShortBufferError) Is(target error) bool { return target == ErrShortBuffer }
