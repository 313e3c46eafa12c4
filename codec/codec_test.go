package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/z85"
	"github.com/unkn0wn-root/z85/armor"
)

type keyRecord struct {
	ID      string    `json:"id" msgpack:"id" cbor:"id"`
	Public  []byte    `json:"public" msgpack:"public" cbor:"public"`
	Created time.Time `json:"created" msgpack:"created" cbor:"created"`
}

func sample() keyRecord {
	return keyRecord{
		ID:      "curve-1",
		Public:  []byte{0x86, 0x4F, 0xD2, 0x6F, 0xB5, 0x59, 0xF7, 0x5B},
		Created: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func equalRecord(a, b keyRecord) bool {
	return a.ID == b.ID && bytes.Equal(a.Public, b.Public) && a.Created.Equal(b.Created)
}

func TestStructCodecsArmoredRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		codec Codec[keyRecord]
	}{
		{"json", JSON[keyRecord]{}},
		{"msgpack", Msgpack[keyRecord]{}},
		{"cbor-unsorted", MustCBOR[keyRecord](CBOROptions{Unsorted: true})},
		{"cbor", MustCBOR[keyRecord](CBOROptions{})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plain, err := tc.codec.Encode(sample())
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := tc.codec.Decode(plain)
			if err != nil || !equalRecord(got, sample()) {
				t.Fatalf("plain round trip: %+v, %v", got, err)
			}

			arm := Armored[keyRecord]{Inner: tc.codec}
			text, err := arm.Encode(sample())
			if err != nil {
				t.Fatalf("Armored.Encode: %v", err)
			}
			if err := z85.Validate(string(text)); err != nil {
				t.Fatalf("armored output is not Z85: %v", err)
			}
			got, err = arm.Decode(text)
			if err != nil || !equalRecord(got, sample()) {
				t.Fatalf("armored round trip: %+v, %v", got, err)
			}
		})
	}
}

func TestDefaultsArmorStably(t *testing.T) {
	m := map[string]int{"z": 1, "a": 2, "m": 3, "k": 4, "q": 5, "b": 6}
	cases := []struct {
		name  string
		codec Codec[map[string]int]
	}{
		{"cbor", MustCBOR[map[string]int](CBOROptions{})},
		{"msgpack", Msgpack[map[string]int]{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Armored[map[string]int]{Inner: tc.codec}
			first, err := c.Encode(m)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 20; i++ {
				again, _ := c.Encode(m)
				if !bytes.Equal(first, again) {
					t.Fatalf("armored %s produced %q then %q", tc.name, first, again)
				}
			}
		})
	}
}

func TestMsgpackSortsKeys(t *testing.T) {
	b, err := Msgpack[map[string]int]{}.Encode(map[string]int{"z": 1, "a": 2})
	if err != nil {
		t.Fatal(err)
	}
	// fixmap(2), fixstr(1) "a"
	if len(b) < 3 || b[0] != 0x82 || b[1] != 0xa1 || b[2] != 'a' {
		t.Fatalf("first key is not \"a\": %x", b)
	}
}

func TestMsgpackRejectsTrailingBytes(t *testing.T) {
	c := Msgpack[keyRecord]{}
	b, err := c.Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(append(b, 0xc0)); !errors.Is(err, errMsgpackTrailing) {
		t.Fatalf("want trailing-bytes error, got %v", err)
	}
}

func TestCBORDuplicateKeys(t *testing.T) {
	// {"a": 1, "a": 2}
	dup := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02}

	if _, err := MustCBOR[map[string]int](CBOROptions{}).Decode(dup); err == nil {
		t.Fatalf("duplicate map keys accepted by default")
	}
	m, err := MustCBOR[map[string]int](CBOROptions{AllowDupKeys: true}).Decode(dup)
	if err != nil || m["a"] != 2 {
		t.Fatalf("AllowDupKeys: %v, %v", m, err)
	}
}

func TestProtobuf(t *testing.T) {
	c := Armored[*wrapperspb.StringValue]{
		Inner: NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }, true),
	}
	in := wrapperspb.String("tcp://10.0.0.1:5555")
	text, err := c.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decode(text)
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("got %v want %v", out, in)
	}

	var bare Protobuf[*wrapperspb.StringValue]
	if _, err := bare.Decode(nil); err == nil {
		t.Fatalf("expected error without constructor")
	}
}

func TestZ85Strict(t *testing.T) {
	bin, _ := hex.DecodeString("864FD26FB559F75B")
	text, err := Z85{}.Encode(bin)
	if err != nil || string(text) != "HelloWorld" {
		t.Fatalf("Encode = %q, %v", text, err)
	}
	back, err := Z85{}.Decode(text)
	if err != nil || !bytes.Equal(back, bin) {
		t.Fatalf("Decode = %X, %v", back, err)
	}

	if _, err := (Z85{}).Encode([]byte("abc")); !errors.Is(err, z85.ErrLength) {
		t.Fatalf("unaligned Encode: %v", err)
	}
	if _, err := (Z85{}).Decode([]byte("abcd")); !errors.Is(err, z85.ErrLength) {
		t.Fatalf("unaligned Decode: %v", err)
	}
}

func TestArmoredRawAndString(t *testing.T) {
	b := Armored[[]byte]{Inner: Bytes{}}
	text, err := b.Encode([]byte("odd"))
	if err != nil {
		t.Fatal(err)
	}
	if out, err := b.Decode(text); err != nil || string(out) != "odd" {
		t.Fatalf("Bytes: %q, %v", out, err)
	}

	s := Armored[string]{Inner: String{}}
	text, err = s.Encode("héllo")
	if err != nil {
		t.Fatal(err)
	}
	if out, err := s.Decode(text); err != nil || out != "héllo" {
		t.Fatalf("String: %q, %v", out, err)
	}
}

func TestArmoredRejectsGarbage(t *testing.T) {
	c := Armored[string]{Inner: String{}}
	for _, in := range []string{"HelloWorld", "abc", "s#VJ~00000"} {
		if _, err := c.Decode([]byte(in)); !armor.IsCorrupt(err) {
			t.Fatalf("Decode(%q) = %v, want corrupt", in, err)
		}
	}
}

func TestArmoredPropagatesInnerError(t *testing.T) {
	c := Armored[keyRecord]{Inner: JSON[keyRecord]{}}
	text := armor.AppendEncode(nil, []byte("{not json"))
	if _, err := c.Decode(text); err == nil || armor.IsCorrupt(err) {
		t.Fatalf("want inner decode error, got %v", err)
	}
}

func TestLimit(t *testing.T) {
	c := Limit[string]{Inner: Armored[string]{Inner: String{}}, MaxDecode: 20}
	small, _ := c.Encode("ab")
	if _, err := c.Decode(small); err != nil {
		t.Fatalf("small payload rejected: %v", err)
	}
	big, _ := c.Encode("this payload is way too long")
	if _, err := c.Decode(big); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("want ErrTooLarge, got %v", err)
	}

	off := Limit[string]{Inner: String{}}
	if v, err := off.Decode(bytes.Repeat([]byte("x"), 1<<16)); err != nil || len(v) != 1<<16 {
		t.Fatalf("disabled limit: len=%d err=%v", len(v), err)
	}
}
