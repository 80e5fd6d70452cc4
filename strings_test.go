package ber

import "testing"

func TestCharacterString_UTF8(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	data := append([]byte{0x0C, 0x05}, []byte("hello")...)
	v := mustDecode(t, eng, data, nil, Options{})
	cs, ok := v.(*CharacterString)
	if !ok {
		t.Fatalf("got %T, want *CharacterString", v)
	}
	if string(cs.Bytes) != "hello" {
		t.Errorf("Bytes = %q, want %q", cs.Bytes, "hello")
	}
}

func TestCharacterString_ConstructedSegmentsConcatenate(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	// A constructed IA5String of two primitive segments, "foo" + "bar".
	data := []byte{
		0x36, 0x0A,
		0x16, 0x03, 'f', 'o', 'o',
		0x16, 0x03, 'b', 'a', 'r',
	}
	v := mustDecode(t, eng, data, nil, Options{})
	cs, ok := v.(*CharacterString)
	if !ok {
		t.Fatalf("got %T, want *CharacterString", v)
	}
	if string(cs.Bytes) != "foobar" {
		t.Errorf("Bytes = %q, want %q", cs.Bytes, "foobar")
	}
}

func TestCharacterString_NoContentValidation(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	// PrintableString forbids most of these octets under strict X.680
	// rules, but this decoder performs no repertoire validation (§1
	// Non-goals): arbitrary bytes decode without error.
	data := []byte{0x13, 0x03, 0x00, 0xFF, 0x7E}
	v := mustDecode(t, eng, data, nil, Options{})
	cs := v.(*CharacterString)
	want := []byte{0x00, 0xFF, 0x7E}
	if string(cs.Bytes) != string(want) {
		t.Errorf("Bytes = % x, want % x", cs.Bytes, want)
	}
}

func TestTimeString_UTCTime(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	data := append([]byte{0x17, 0x0D}, []byte("930501123456")...)
	data = append(data, 'Z')
	v := mustDecode(t, eng, data, nil, Options{})
	ts, ok := v.(*TimeString)
	if !ok {
		t.Fatalf("got %T, want *TimeString", v)
	}
	if string(ts.Bytes) != "930501123456Z" {
		t.Errorf("Bytes = %q, want %q", ts.Bytes, "930501123456Z")
	}
}

func TestTimeString_GeneralizedTimeNoNormalization(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	// No calendar validation: an impossible date decodes without error,
	// byte-for-byte, matching pyasn1's default behavior.
	data := append([]byte{0x18, 0x0F}, []byte("99991332595959Z")...)
	v := mustDecode(t, eng, data, nil, Options{})
	ts := v.(*TimeString)
	if string(ts.Bytes) != "99991332595959Z" {
		t.Errorf("Bytes = %q, want %q", ts.Bytes, "99991332595959Z")
	}
}
