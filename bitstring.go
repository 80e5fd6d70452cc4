package ber

// BitString is a decoded ASN.1 BIT STRING (§4.5). Bytes holds the bit
// data packed big-endian, and UnusedBits (0-7) counts how many low-order
// bits of the final byte are padding rather than data, per X.690 clause
// 8.6.
type BitString struct {
	tagSet     TagSet
	Bytes      []byte
	UnusedBits int
}

func newBitString(ts TagSet) Value { return &BitString{tagSet: ts} }

func (b *BitString) TagSet() TagSet          { return b.tagSet }
func (b *BitString) EffectiveTagSet() TagSet { return b.tagSet }
func (b *BitString) IsInconsistent() bool    { return false }
func (b *BitString) Clear()                  { b.Bytes = nil; b.UnusedBits = 0 }
func (b *BitString) Clone() Value            { return &BitString{tagSet: b.tagSet} }

type bitStringDecoder struct{}

func (bitStringDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if tagSet.Base().Form == Primitive {
		if length == 0 {
			return nil, newMalformedEncoding("BIT STRING content must include the unused-bits octet")
		}
		buf := make([]byte, length)
		if err := readFull(cur, buf, "BIT STRING content"); err != nil {
			return nil, err
		}
		unused := int(buf[0])
		if unused > 7 {
			return nil, newMalformedEncoding("BIT STRING unused-bits count out of range")
		}
		if unused > 0 && length == 1 {
			return nil, newMalformedEncoding("BIT STRING declares unused bits but has no content octets")
		}
		v := valueFor[*BitString](spec, tagSet, newBitString)
		v.Bytes = append([]byte(nil), buf[1:]...)
		v.UnusedBits = unused
		return v, nil
	}

	buf := make([]byte, length)
	if err := readFull(cur, buf, "BIT STRING constructed content"); err != nil {
		return nil, err
	}
	if v, ok := trySubstrateFunc(opts, valueFor[*BitString](spec, tagSet, newBitString), buf); ok {
		return v, nil
	}
	return assembleBitStringSegments(eng, NewCursor(buf), spec, tagSet, opts, depth)
}

func (bitStringDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	v := valueFor[*BitString](spec, tagSet, newBitString)
	var all []byte
	unused := 0
	sawSegment := false
	for {
		if cur.AtEnd() {
			return nil, newSubstrateUnderrun("BIT STRING: end-of-contents octets")
		}
		segOpts := opts
		segOpts.AllowEOO = true
		seg, err := eng.decode(cur, nil, segOpts, depth+1)
		if err != nil {
			return nil, err
		}
		if IsEOO(seg) {
			break
		}
		if sawSegment && unused != 0 {
			return nil, newMalformedEncoding("BIT STRING: only the final segment may declare unused bits")
		}
		bs, ok := seg.(*BitString)
		if !ok {
			return nil, newMalformedEncoding("BIT STRING: constructed segment must itself be a BIT STRING")
		}
		all = append(all, bs.Bytes...)
		unused = bs.UnusedBits
		sawSegment = true
	}
	v.Bytes = all
	v.UnusedBits = unused
	return v, nil
}

// assembleBitStringSegments reassembles a definite-length constructed BIT
// STRING by decoding each nested BIT STRING TLV in buf until it is
// exhausted (§4.5). Zero segments is legal and yields an empty value.
func assembleBitStringSegments(eng *Engine, buf Cursor, spec Spec, tagSet TagSet, opts Options, depth int) (Value, error) {
	v := valueFor[*BitString](spec, tagSet, newBitString)
	var all []byte
	unused := 0
	sawSegment := false
	for !buf.AtEnd() {
		if sawSegment && unused != 0 {
			return nil, newMalformedEncoding("BIT STRING: only the final segment may declare unused bits")
		}
		seg, err := eng.decode(buf, nil, opts, depth+1)
		if err != nil {
			return nil, err
		}
		bs, ok := seg.(*BitString)
		if !ok {
			return nil, newMalformedEncoding("BIT STRING: constructed segment must itself be a BIT STRING")
		}
		all = append(all, bs.Bytes...)
		unused = bs.UnusedBits
		sawSegment = true
	}
	v.Bytes = all
	v.UnusedBits = unused
	return v, nil
}
