package z85

// EncodeValue encodes v, which must be a []byte.
// Strings and any other dynamic type are rejected with a *TypeError.
func EncodeValue(v any) (string, error) {
	b, ok := v.([]byte)
	if !ok {
		return "", &TypeError{Op: "encode", Want: "[]byte", Got: v}
	}
	return EncodeToString(b)
}

// DecodeValue decodes v, which must be a []byte holding Z85 text.
// Strings are rejected like any other type, so text and binary are never
// mixed up at a dynamic call site. Use DecodeString for string input.
func DecodeValue(v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, &TypeError{Op: "decode", Want: "[]byte", Got: v}
	}
	return AppendDecode(nil, b)
}
