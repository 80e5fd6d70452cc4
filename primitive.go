package ber

import "math/big"

// Boolean is a decoded ASN.1 BOOLEAN (§4.5). Per X.690 clause 8.2.2, any
// non-zero content octet means true in BER; only DER/CER require it to be
// exactly 0xff. This decoder accepts either.
type Boolean struct {
	tagSet TagSet
	Value  bool
}

func newBoolean(ts TagSet) Value { return &Boolean{tagSet: ts} }

func (b *Boolean) TagSet() TagSet          { return b.tagSet }
func (b *Boolean) EffectiveTagSet() TagSet { return b.tagSet }
func (b *Boolean) IsInconsistent() bool    { return false }
func (b *Boolean) Clear()                  { b.Value = false }
func (b *Boolean) Clone() Value            { return &Boolean{tagSet: b.tagSet} }

type booleanDecoder struct{}

func (booleanDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if length != 1 {
		return nil, newMalformedEncoding("BOOLEAN content must be exactly one octet")
	}
	b, err := readByte(cur, "BOOLEAN content")
	if err != nil {
		return nil, err
	}
	v := valueFor[*Boolean](spec, tagSet, newBoolean)
	v.Value = b != 0
	return v, nil
}

func (booleanDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return nil, newMalformedEncoding("BOOLEAN cannot use indefinite length")
}

// Integer is a decoded ASN.1 INTEGER or ENUMERATED (§4.5): ENUMERATED
// reuses this decoder and type wholesale, exactly as pyasn1's
// IntegerDecoder backs EnumeratedDecoder, since both are two's-complement
// encoded the same way and differ only in tag.
type Integer struct {
	tagSet TagSet
	Value  *big.Int
}

func newInteger(ts TagSet) Value    { return &Integer{tagSet: ts, Value: new(big.Int)} }
func newEnumerated(ts TagSet) Value { return &Integer{tagSet: ts, Value: new(big.Int)} }

func (i *Integer) TagSet() TagSet          { return i.tagSet }
func (i *Integer) EffectiveTagSet() TagSet { return i.tagSet }
func (i *Integer) IsInconsistent() bool    { return false }
func (i *Integer) Clear()                  { i.Value.SetInt64(0) }
func (i *Integer) Clone() Value            { return &Integer{tagSet: i.tagSet, Value: new(big.Int)} }

// Int64 returns the value as an int64, or 0 with ok false if it doesn't
// fit.
func (i *Integer) Int64() (n int64, ok bool) {
	if !i.Value.IsInt64() {
		return 0, false
	}
	return i.Value.Int64(), true
}

type integerDecoder struct{}

func (integerDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if length == 0 {
		return nil, newMalformedEncoding("INTEGER content must be at least one octet")
	}
	buf := make([]byte, length)
	if err := readFull(cur, buf, "INTEGER content"); err != nil {
		return nil, err
	}
	v := valueFor[*Integer](spec, tagSet, newInteger)
	v.Value = decodeTwosComplement(buf)
	return v, nil
}

func (integerDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return nil, newMalformedEncoding("INTEGER cannot use indefinite length")
}

// decodeTwosComplement interprets buf as a big-endian two's-complement
// integer, matching pyasn1's IntegerDecoder valueDecoder routine.
func decodeTwosComplement(buf []byte) *big.Int {
	n := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		// Negative: n currently holds the unsigned magnitude of the raw
		// octets; subtract 2^(8*len(buf)) to get the signed value.
		full := new(big.Int).Lsh(big.NewInt(1), uint(len(buf))*8)
		n.Sub(n, full)
	}
	return n
}

// Null is a decoded ASN.1 NULL (§4.5). It carries no payload.
type Null struct {
	tagSet TagSet
}

func newNull(ts TagSet) Value { return &Null{tagSet: ts} }

func (n *Null) TagSet() TagSet          { return n.tagSet }
func (n *Null) EffectiveTagSet() TagSet { return n.tagSet }
func (n *Null) IsInconsistent() bool    { return false }
func (n *Null) Clear()                  {}
func (n *Null) Clone() Value            { return &Null{tagSet: n.tagSet} }

type nullDecoder struct{}

func (nullDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if length != 0 {
		return nil, newMalformedEncoding("NULL content must be empty")
	}
	return valueFor[*Null](spec, tagSet, newNull), nil
}

func (nullDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return nil, newMalformedEncoding("NULL cannot use indefinite length")
}

// valueFor clones spec's prototype when present, otherwise builds one via
// proto; every primitive decoder in this package follows this same
// two-path construction, so it is factored out once here.
func valueFor[T Value](spec Spec, tagSet TagSet, proto func(TagSet) Value) T {
	if spec != nil {
		return spec.Clone().(T)
	}
	return proto(tagSet).(T)
}
