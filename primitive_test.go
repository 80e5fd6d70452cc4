package ber

import "testing"

func TestIntegerDecoder(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	tests := map[string]struct {
		data []byte
		want int64
	}{
		"Zero":      {[]byte{0x02, 0x01, 0x00}, 0},
		"Positive":  {[]byte{0x02, 0x01, 0x7F}, 127},
		"Negative":  {[]byte{0x02, 0x01, 0xFF}, -1},
		"MultiByte": {[]byte{0x02, 0x02, 0x01, 0x00}, 256},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := mustDecode(t, eng, tt.data, nil, Options{})
			n, ok := v.(*Integer)
			if !ok {
				t.Fatalf("got %T, want *Integer", v)
			}
			got, ok := n.Int64()
			if !ok {
				t.Fatalf("Int64() ok = false")
			}
			if got != tt.want {
				t.Errorf("Int64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntegerDecoder_EmptyContentFails(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	_, err := eng.Decode(NewCursor([]byte{0x02, 0x00}), nil, Options{})
	if _, ok := err.(*MalformedEncodingError); !ok {
		t.Fatalf("error = %T, want *MalformedEncodingError", err)
	}
}

func TestEnumeratedSharesIntegerDecoder(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	v := mustDecode(t, eng, []byte{0x0A, 0x01, 0x02}, nil, Options{})
	n, ok := v.(*Integer)
	if !ok {
		t.Fatalf("got %T, want *Integer", v)
	}
	if got, _ := n.Int64(); got != 2 {
		t.Errorf("Int64() = %d, want 2", got)
	}
}

func TestNullDecoder(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	v := mustDecode(t, eng, []byte{0x05, 0x00}, nil, Options{})
	if _, ok := v.(*Null); !ok {
		t.Fatalf("got %T, want *Null", v)
	}
}
