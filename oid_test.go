package ber

import "testing"

func TestObjectIdentifier_Decode(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	// 1.2.840.113549 (the RSADSI arc), the textbook BER OID example.
	data := []byte{0x06, 0x06, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D}
	v := mustDecode(t, eng, data, nil, Options{})
	oid, ok := v.(*ObjectIdentifier)
	if !ok {
		t.Fatalf("got %T, want *ObjectIdentifier", v)
	}
	want := []uint64{1, 2, 840, 113549}
	if len(oid.Arcs) != len(want) {
		t.Fatalf("Arcs = %v, want %v", oid.Arcs, want)
	}
	for i := range want {
		if oid.Arcs[i] != want[i] {
			t.Errorf("Arcs[%d] = %d, want %d", i, oid.Arcs[i], want[i])
		}
	}
	if oid.Dotted == nil {
		t.Fatalf("Dotted = nil, want a parsed dot notation")
	}
	if got := oid.Dotted.String(); got != "1.2.840.113549" {
		t.Errorf("Dotted.String() = %q, want %q", got, "1.2.840.113549")
	}
}

func TestObjectIdentifier_FirstArcBoundaries(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	tests := map[string]struct {
		data []byte
		want [2]uint64
	}{
		"Arc0First": {[]byte{0x06, 0x01, 0x00}, [2]uint64{0, 0}},
		"Arc0Last":  {[]byte{0x06, 0x01, 0x27}, [2]uint64{0, 39}}, // 39 < 40 stays under arc 0
		"Arc1First": {[]byte{0x06, 0x01, 0x28}, [2]uint64{1, 0}},  // 40 is the first value of arc 1
		"Arc2First": {[]byte{0x06, 0x01, 0x50}, [2]uint64{2, 0}},  // 80 is the first value of arc 2
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := mustDecode(t, eng, tt.data, nil, Options{})
			oid := v.(*ObjectIdentifier)
			if oid.Arcs[0] != tt.want[0] || oid.Arcs[1] != tt.want[1] {
				t.Errorf("Arcs = %v, want %v", oid.Arcs[:2], tt.want)
			}
		})
	}
}

func TestObjectIdentifier_EmptyContentFails(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	_, err := eng.Decode(NewCursor([]byte{0x06, 0x00}), nil, Options{})
	if _, ok := err.(*MalformedEncodingError); !ok {
		t.Fatalf("error = %T, want *MalformedEncodingError", err)
	}
}

func TestObjectIdentifier_IndefiniteLengthRejected(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	_, err := eng.Decode(NewCursor([]byte{0x26, 0x80, 0x00, 0x00}), nil, Options{})
	if _, ok := err.(*MalformedEncodingError); !ok {
		t.Fatalf("error = %T, want *MalformedEncodingError", err)
	}
}

func TestRelativeOID_Decode(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	// The same 113549 sub-identifier, this time unanchored (RELATIVE-OID
	// never combines its first two arcs the way OBJECT IDENTIFIER does).
	data := []byte{0x0D, 0x03, 0x86, 0xF7, 0x0D}
	v := mustDecode(t, eng, data, nil, Options{})
	rel, ok := v.(*RelativeOID)
	if !ok {
		t.Fatalf("got %T, want *RelativeOID", v)
	}
	if len(rel.Arcs) != 1 || rel.Arcs[0] != 113549 {
		t.Errorf("Arcs = %v, want [113549]", rel.Arcs)
	}
}

func TestRelativeOID_MultipleArcs(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	data := []byte{0x0D, 0x02, 0x01, 0x02}
	v := mustDecode(t, eng, data, nil, Options{})
	rel := v.(*RelativeOID)
	want := []uint64{1, 2}
	if len(rel.Arcs) != len(want) {
		t.Fatalf("Arcs = %v, want %v", rel.Arcs, want)
	}
	for i := range want {
		if rel.Arcs[i] != want[i] {
			t.Errorf("Arcs[%d] = %d, want %d", i, rel.Arcs[i], want[i])
		}
	}
}
