package ber

import "testing"

func TestBitString_UnusedBitsOutOfRange(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	_, err := eng.Decode(NewCursor([]byte{0x03, 0x02, 0x08, 0xFF}), nil, Options{})
	if _, ok := err.(*MalformedEncodingError); !ok {
		t.Fatalf("error = %T, want *MalformedEncodingError", err)
	}
}

func TestBitString_EmptyYieldsEmptyValue(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	v := mustDecode(t, eng, []byte{0x03, 0x01, 0x00}, nil, Options{})
	bs, ok := v.(*BitString)
	if !ok {
		t.Fatalf("got %T, want *BitString", v)
	}
	if len(bs.Bytes) != 0 || bs.UnusedBits != 0 {
		t.Errorf("got Bytes=% x UnusedBits=%d, want empty/0", bs.Bytes, bs.UnusedBits)
	}
}

// Constructed BIT STRING concatenation must equal the value produced by
// the primitive form of the same content (§8 "Constructed BIT
// STRING/OCTET STRING").
func TestBitString_ConstructedMatchesPrimitive(t *testing.T) {
	eng := NewEngine(DefaultRegistry())

	primitive := []byte{0x03, 0x04, 0x00, 0xAA, 0xBB, 0xCC}
	constructed := []byte{
		0x23, 0x09,
		0x03, 0x03, 0x00, 0xAA, 0xBB,
		0x03, 0x02, 0x00, 0xCC,
	}

	pv := mustDecode(t, eng, primitive, nil, Options{})
	cv := mustDecode(t, eng, constructed, nil, Options{})

	p := pv.(*BitString)
	c := cv.(*BitString)

	if string(p.Bytes) != string(c.Bytes) {
		t.Errorf("primitive Bytes=% x, constructed Bytes=% x", p.Bytes, c.Bytes)
	}
}

func TestBitString_ConstructedIndefinite(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	data := []byte{
		0x23, 0x80,
		0x03, 0x02, 0x00, 0xAA,
		0x03, 0x02, 0x06, 0xC0,
		0x00, 0x00,
	}
	v := mustDecode(t, eng, data, nil, Options{})
	bs, ok := v.(*BitString)
	if !ok {
		t.Fatalf("got %T, want *BitString", v)
	}
	if bs.UnusedBits != 6 {
		t.Errorf("UnusedBits = %d, want 6", bs.UnusedBits)
	}
	want := []byte{0xAA, 0xC0}
	if string(bs.Bytes) != string(want) {
		t.Errorf("Bytes = % x, want % x", bs.Bytes, want)
	}
}
