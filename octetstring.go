package ber

// OctetString is a decoded ASN.1 OCTET STRING (§4.5). A constructed
// encoding's segments are concatenated transparently; callers never see
// the segment boundaries.
type OctetString struct {
	tagSet TagSet
	Bytes  []byte
}

func newOctetString(ts TagSet) Value { return &OctetString{tagSet: ts} }

func (o *OctetString) TagSet() TagSet          { return o.tagSet }
func (o *OctetString) EffectiveTagSet() TagSet { return o.tagSet }
func (o *OctetString) IsInconsistent() bool    { return false }
func (o *OctetString) Clear()                  { o.Bytes = nil }
func (o *OctetString) Clone() Value            { return &OctetString{tagSet: o.tagSet} }

// AsOctets satisfies the part of [Container] the open-type decoder needs
// from a leaf OCTET STRING holding raw, not-yet-interpreted bytes.
func (o *OctetString) AsOctets() ([]byte, bool) { return o.Bytes, true }

type octetStringDecoder struct{}

func (octetStringDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if tagSet.Base().Form == Primitive {
		buf := make([]byte, length)
		if err := readFull(cur, buf, "OCTET STRING content"); err != nil {
			return nil, err
		}
		v := valueFor[*OctetString](spec, tagSet, newOctetString)
		v.Bytes = buf
		return v, nil
	}

	buf := make([]byte, length)
	if err := readFull(cur, buf, "OCTET STRING constructed content"); err != nil {
		return nil, err
	}
	if v, ok := trySubstrateFunc(opts, valueFor[*OctetString](spec, tagSet, newOctetString), buf); ok {
		return v, nil
	}
	return assembleOctetStringSegments(eng, NewCursor(buf), spec, tagSet, opts, depth)
}

func (octetStringDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	v := valueFor[*OctetString](spec, tagSet, newOctetString)
	var all []byte
	for {
		if cur.AtEnd() {
			return nil, newSubstrateUnderrun("OCTET STRING: end-of-contents octets")
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
		os, ok := seg.(*OctetString)
		if !ok {
			return nil, newMalformedEncoding("OCTET STRING: constructed segment must itself be an OCTET STRING")
		}
		all = append(all, os.Bytes...)
	}
	v.Bytes = all
	return v, nil
}

// assembleOctetStringSegments reassembles a definite-length constructed
// OCTET STRING from its nested segments (§4.5).
func assembleOctetStringSegments(eng *Engine, buf Cursor, spec Spec, tagSet TagSet, opts Options, depth int) (Value, error) {
	v := valueFor[*OctetString](spec, tagSet, newOctetString)
	var all []byte
	for !buf.AtEnd() {
		seg, err := eng.decode(buf, nil, opts, depth+1)
		if err != nil {
			return nil, err
		}
		os, ok := seg.(*OctetString)
		if !ok {
			return nil, newMalformedEncoding("OCTET STRING: constructed segment must itself be an OCTET STRING")
		}
		all = append(all, os.Bytes...)
	}
	v.Bytes = all
	return v, nil
}
