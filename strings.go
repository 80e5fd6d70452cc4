package ber

// CharacterString is a decoded ASN.1 restricted or unrestricted character
// string type (UTF8String, PrintableString, IA5String, BMPString, and so
// on) (§4.5). All of these share BER's encoding rules with OCTET STRING —
// raw octets, possibly segmented under constructed form — and differ only
// in which character repertoire the octets are meant to hold, a
// constraint this decoding core does not enforce (§1 Non-goals); Bytes
// carries the undecoded octets exactly as pyasn1's string decoders do by
// default.
type CharacterString struct {
	tagSet TagSet
	Bytes  []byte
}

func newCharacterString(ts TagSet) Value { return &CharacterString{tagSet: ts} }

func (s *CharacterString) TagSet() TagSet          { return s.tagSet }
func (s *CharacterString) EffectiveTagSet() TagSet { return s.tagSet }
func (s *CharacterString) IsInconsistent() bool    { return false }
func (s *CharacterString) Clear()                  { s.Bytes = nil }
func (s *CharacterString) Clone() Value            { return &CharacterString{tagSet: s.tagSet} }
func (s *CharacterString) AsOctets() ([]byte, bool) { return s.Bytes, true }

type characterStringDecoder struct{}

func (characterStringDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	octets, err := decodeOctetLikeDefinite(cur, tagSet, length, eng, opts, depth)
	if err != nil {
		return nil, err
	}
	v := valueFor[*CharacterString](spec, tagSet, newCharacterString)
	v.Bytes = octets
	return v, nil
}

func (characterStringDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	octets, err := decodeOctetLikeIndefinite(cur, tagSet, eng, opts, depth)
	if err != nil {
		return nil, err
	}
	v := valueFor[*CharacterString](spec, tagSet, newCharacterString)
	v.Bytes = octets
	return v, nil
}

// TimeString is a decoded ASN.1 UTCTime or GeneralizedTime (§4.5). Like
// pyasn1, this decoder performs no calendar validation or normalization:
// Bytes holds exactly the octets on the wire, leaving interpretation
// (year-window rules, fractional seconds, the trailing 'Z'/offset) to the
// caller or a higher-level schema.
type TimeString struct {
	tagSet TagSet
	Bytes  []byte
}

func newTimeString(ts TagSet) Value { return &TimeString{tagSet: ts} }

func (t *TimeString) TagSet() TagSet          { return t.tagSet }
func (t *TimeString) EffectiveTagSet() TagSet { return t.tagSet }
func (t *TimeString) IsInconsistent() bool    { return false }
func (t *TimeString) Clear()                  { t.Bytes = nil }
func (t *TimeString) Clone() Value            { return &TimeString{tagSet: t.tagSet} }

type timeDecoder struct{}

func (timeDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	octets, err := decodeOctetLikeDefinite(cur, tagSet, length, eng, opts, depth)
	if err != nil {
		return nil, err
	}
	v := valueFor[*TimeString](spec, tagSet, newTimeString)
	v.Bytes = octets
	return v, nil
}

func (timeDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	octets, err := decodeOctetLikeIndefinite(cur, tagSet, eng, opts, depth)
	if err != nil {
		return nil, err
	}
	v := valueFor[*TimeString](spec, tagSet, newTimeString)
	v.Bytes = octets
	return v, nil
}

// decodeOctetLikeDefinite reads length octets directly under primitive
// form, or reassembles nested same-tag segments under constructed form —
// the encoding OCTET STRING, the character string types and the time
// types all share (§4.5).
func decodeOctetLikeDefinite(cur Cursor, tagSet TagSet, length int, eng *Engine, opts Options, depth int) ([]byte, error) {
	if tagSet.Base().Form == Primitive {
		buf := make([]byte, length)
		if err := readFull(cur, buf, "string content"); err != nil {
			return nil, err
		}
		return buf, nil
	}
	buf := make([]byte, length)
	if err := readFull(cur, buf, "constructed string content"); err != nil {
		return nil, err
	}
	sub := NewCursor(buf)
	var all []byte
	for !sub.AtEnd() {
		seg, err := eng.decode(sub, nil, opts, depth+1)
		if err != nil {
			return nil, err
		}
		octets, ok := seg.(interface{ AsOctets() ([]byte, bool) })
		if !ok {
			return nil, newMalformedEncoding("constructed string: segment does not hold octets")
		}
		b, _ := octets.AsOctets()
		all = append(all, b...)
	}
	return all, nil
}

// decodeOctetLikeIndefinite is [decodeOctetLikeDefinite]'s indefinite-length
// counterpart, stopping at the first end-of-contents marker.
func decodeOctetLikeIndefinite(cur Cursor, tagSet TagSet, eng *Engine, opts Options, depth int) ([]byte, error) {
	var all []byte
	for {
		if cur.AtEnd() {
			return nil, newSubstrateUnderrun("string: end-of-contents octets")
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
		octets, ok := seg.(interface{ AsOctets() ([]byte, bool) })
		if !ok {
			return nil, newMalformedEncoding("constructed string: segment does not hold octets")
		}
		b, _ := octets.AsOctets()
		all = append(all, b...)
	}
	return all, nil
}
