package ber

import "testing"

func TestCursor_ReadAdvancesPosition(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	buf := make([]byte, 2)
	n, err := c.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 2 || c.Tell() != 2 {
		t.Errorf("n, Tell() = %d, %d, want 2, 2", n, c.Tell())
	}
}

func TestCursor_ReadShortAtEnd(t *testing.T) {
	c := NewCursor([]byte{1})
	buf := make([]byte, 3)
	n, _ := c.Read(buf)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	p := c.Peek(2)
	if string(p) != "\x01\x02" {
		t.Errorf("Peek() = % x, want 01 02", p)
	}
	if c.Tell() != 0 {
		t.Errorf("Tell() = %d, want 0 (Peek must not advance)", c.Tell())
	}
}

func TestCursor_SeekAndMarkSince(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	mark := c.Mark()
	c.Seek(3)
	got := c.Since(mark)
	want := []byte{1, 2, 3}
	if string(got) != string(want) {
		t.Errorf("Since() = % x, want % x", got, want)
	}
}

func TestCursor_AtEnd(t *testing.T) {
	c := NewCursor([]byte{1})
	if c.AtEnd() {
		t.Fatalf("AtEnd() = true before consuming any octets")
	}
	c.Seek(1)
	if !c.AtEnd() {
		t.Errorf("AtEnd() = false, want true")
	}
}

func TestCursor_Len(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestReadFull_Underrun(t *testing.T) {
	c := NewCursor([]byte{1})
	buf := make([]byte, 2)
	err := readFull(c, buf, "test")
	if _, ok := err.(*SubstrateUnderrunError); !ok {
		t.Fatalf("error = %T, want *SubstrateUnderrunError", err)
	}
}
