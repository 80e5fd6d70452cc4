package ber

import "testing"

func TestReadTag_ShortForm(t *testing.T) {
	cur := NewCursor([]byte{0x30, 0xFF})
	tag, n, err := readTag(cur)
	if err != nil {
		t.Fatalf("readTag() error = %v", err)
	}
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	want := Tag{Class: ClassUniversal, Form: Constructed, Number: TagSequence}
	if tag != want {
		t.Errorf("tag = %+v, want %+v", tag, want)
	}
}

func TestReadTag_LongForm(t *testing.T) {
	// context-specific, primitive, long-form tag id 640 (continuation
	// 0x85 0x00 = 5*128 + 0).
	cur := NewCursor([]byte{0x9F, 0x85, 0x00, 0xFF})
	tag, n, err := readTag(cur)
	if err != nil {
		t.Fatalf("readTag() error = %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	want := Tag{Class: ClassContextSpecific, Form: Primitive, Number: 640}
	if tag != want {
		t.Errorf("tag = %+v, want %+v", tag, want)
	}
}

func TestReadTag_Underrun(t *testing.T) {
	cur := NewCursor([]byte{})
	_, _, err := readTag(cur)
	if _, ok := err.(*SubstrateUnderrunError); !ok {
		t.Fatalf("error = %T, want *SubstrateUnderrunError", err)
	}
}

func TestReadLength_ShortForm(t *testing.T) {
	cur := NewCursor([]byte{0x05})
	l, n, err := readLength(cur)
	if err != nil {
		t.Fatalf("readLength() error = %v", err)
	}
	if n != 1 || l.Int() != 5 {
		t.Errorf("l, n = %d, %d, want 5, 1", l.Int(), n)
	}
}

func TestReadLength_Indefinite(t *testing.T) {
	cur := NewCursor([]byte{0x80})
	l, _, err := readLength(cur)
	if err != nil {
		t.Fatalf("readLength() error = %v", err)
	}
	if !l.IsIndefinite() {
		t.Errorf("IsIndefinite() = false, want true")
	}
}

func TestReadLength_LongForm(t *testing.T) {
	// 0x82 0x01 0x00 -> long form, 2 length octets -> 256
	cur := NewCursor([]byte{0x82, 0x01, 0x00})
	l, n, err := readLength(cur)
	if err != nil {
		t.Fatalf("readLength() error = %v", err)
	}
	if n != 3 || l.Int() != 256 {
		t.Errorf("l, n = %d, %d, want 256, 3", l.Int(), n)
	}
}

func TestReadLength_Underrun(t *testing.T) {
	cur := NewCursor([]byte{0x82, 0x01})
	_, _, err := readLength(cur)
	if _, ok := err.(*SubstrateUnderrunError); !ok {
		t.Fatalf("error = %T, want *SubstrateUnderrunError", err)
	}
}
