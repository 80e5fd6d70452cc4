package ber

import "testing"

// Options.SubstrateFunc short-circuits constructed-fragment assembly,
// handing the raw substrate straight to the caller instead of decoding it
// segment by segment (§6, §9 "Design Notes").
func TestSubstrateFunc_OverridesOctetStringAssembly(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	data := []byte{
		0x24, 0x09,
		0x04, 0x03, 0x01, 0x02, 0x03,
		0x04, 0x02, 0x04, 0x05,
	}
	var gotLen int
	opts := Options{
		SubstrateFunc: func(proto Value, substrate []byte, length int) any {
			gotLen = length
			os, _ := proto.(*OctetString)
			os.Bytes = append([]byte(nil), substrate...)
			return os
		},
	}
	v := mustDecode(t, eng, data, nil, opts)
	os, ok := v.(*OctetString)
	if !ok {
		t.Fatalf("got %T, want *OctetString", v)
	}
	if gotLen != 9 {
		t.Errorf("length passed to hook = %d, want 9", gotLen)
	}
	// The hook received the raw, unparsed substrate rather than assembled
	// segments, so its length includes every inner TLV's header octets too.
	if len(os.Bytes) != 9 {
		t.Errorf("Bytes len = %d, want 9 (raw substrate, not reassembled)", len(os.Bytes))
	}
}

func TestSubstrateFunc_NotConsultedForPrimitiveForm(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	called := false
	opts := Options{
		SubstrateFunc: func(proto Value, substrate []byte, length int) any {
			called = true
			return nil
		},
	}
	v := mustDecode(t, eng, []byte{0x04, 0x02, 0xAA, 0xBB}, nil, opts)
	os, ok := v.(*OctetString)
	if !ok {
		t.Fatalf("got %T, want *OctetString", v)
	}
	if called {
		t.Errorf("SubstrateFunc invoked for primitive-form content")
	}
	want := []byte{0xAA, 0xBB}
	if string(os.Bytes) != string(want) {
		t.Errorf("Bytes = % x, want % x", os.Bytes, want)
	}
}

func TestSubstrateFunc_FallsBackWhenResultTypeMismatches(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	data := []byte{
		0x24, 0x05,
		0x04, 0x03, 0x01, 0x02, 0x03,
	}
	opts := Options{
		SubstrateFunc: func(proto Value, substrate []byte, length int) any {
			return "not a Value" // wrong type: hook declined, ordinary assembly applies
		},
	}
	v := mustDecode(t, eng, data, nil, opts)
	os, ok := v.(*OctetString)
	if !ok {
		t.Fatalf("got %T, want *OctetString", v)
	}
	want := []byte{0x01, 0x02, 0x03}
	if string(os.Bytes) != string(want) {
		t.Errorf("Bytes = % x, want % x", os.Bytes, want)
	}
}
