package ber

import "testing"

func TestParseUUID(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	raw := []byte{
		0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
		0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
	}
	data := append([]byte{0x04, byte(len(raw))}, raw...)

	v := mustDecode(t, eng, data, nil, Options{})
	os, ok := v.(*OctetString)
	if !ok {
		t.Fatalf("got %T, want *OctetString", v)
	}
	u, err := ParseUUID(os)
	if err != nil {
		t.Fatalf("ParseUUID() error = %v", err)
	}
	want := "550e8400-e29b-41d4-a716-446655440000"
	if got := u.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseUUID_WrongLength(t *testing.T) {
	_, err := ParseUUID(&OctetString{Bytes: []byte{0x01, 0x02, 0x03}})
	if err == nil {
		t.Fatal("ParseUUID() error = nil, want an error for a non-16-byte OCTET STRING")
	}
}
