package stream

import (
	"bytes"
	"testing"

	"berdec.dev/ber"
)

func TestCursor_ReadAdvancesAndFills(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	buf := make([]byte, 3)
	n, err := c.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 3 || c.Tell() != 3 {
		t.Errorf("n, Tell() = %d, %d, want 3, 3", n, c.Tell())
	}
}

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{1, 2, 3}))
	p := c.Peek(2)
	if string(p) != "\x01\x02" {
		t.Errorf("Peek() = % x, want 01 02", p)
	}
	if c.Tell() != 0 {
		t.Errorf("Tell() = %d, want 0", c.Tell())
	}
}

func TestCursor_AtEndOnShortReader(t *testing.T) {
	c := NewCursor(bytes.NewReader(nil))
	if !c.AtEnd() {
		t.Errorf("AtEnd() = false for an empty reader, want true")
	}
}

func TestCursor_SeekBackwardAndSince(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	mark := c.Mark()
	c.Read(make([]byte, 3))
	got := c.Since(mark)
	want := []byte{1, 2, 3}
	if string(got) != string(want) {
		t.Errorf("Since() = % x, want % x", got, want)
	}
	c.Seek(0)
	if c.Tell() != 0 {
		t.Errorf("Tell() = %d, want 0 after Seek", c.Tell())
	}
}

func TestCursor_Len(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{1, 2, 3}))
	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

// Cursor satisfies ber.Cursor and decodes a full TLV through an
// unbuffered io.Reader exactly as NewCursor(slice) would.
func TestCursor_DecodesThroughEngine(t *testing.T) {
	data := []byte{0x02, 0x01, 0x2A}
	eng := ber.NewEngine(ber.DefaultRegistry())
	c := NewCursor(bytes.NewReader(data))

	v, err := eng.Decode(c, nil, ber.Options{})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	n, ok := v.(*ber.Integer)
	if !ok {
		t.Fatalf("got %T, want *ber.Integer", v)
	}
	if got, _ := n.Int64(); got != 42 {
		t.Errorf("Int64() = %d, want 42", got)
	}
}
