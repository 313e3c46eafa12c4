// Package z85 implements the ZeroMQ Base-85 encoding (Z85, https://rfc.zeromq.org/spec/32/).
//
// Every 4 bytes of binary input become 5 printable ASCII characters drawn from
// a fixed 85 character alphabet. Input is never padded: Encode requires a
// length that is a positive multiple of 4 and Decode a positive multiple of 5.
//
//	Encode:  [b0 b1 b2 b3] -> uint32 big endian -> 5 digits base 85, most significant first
//	Decode:  5 digits -> d0*85^4 + ... + d4 (must be <= 2^32-1) -> 4 bytes big endian
//
// Related packages:
//   - armor: length-framed envelope for payloads of any size.
//   - codec: value serializers, including Z85 and armored wrappers.
//   - store: namespaced typed store that persists values as armored Z85 text.
//
// All functions are pure and safe for concurrent use.
package z85
