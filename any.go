package ber

// AnyValue is a decoded ASN.1 ANY (§4.5, §9 "Open-type re-entry"). It
// captures a TLV verbatim rather than interpreting it: Full holds the
// complete header-and-content octets exactly as they appeared on the
// wire (reconstructed via [Cursor.Mark]/[Cursor.Since]), and Content
// holds the value octets alone. A resolver that later learns the real
// type of an ANY field re-decodes Full under the now-known [Spec] via
// [AnyValue.Decode].
type AnyValue struct {
	tagSet  TagSet
	Full    []byte
	Content []byte
}

func newAny(ts TagSet) Value { return &AnyValue{tagSet: ts} }

func (a *AnyValue) TagSet() TagSet          { return a.tagSet }
func (a *AnyValue) EffectiveTagSet() TagSet { return a.tagSet }
func (a *AnyValue) IsInconsistent() bool    { return false }
func (a *AnyValue) Clear()                  { a.Full, a.Content = nil, nil }
func (a *AnyValue) Clone() Value            { return &AnyValue{tagSet: a.tagSet} }

// AsOctets returns the captured value octets, for the open-type resolver
// to hand back to [Engine.Decode] once the governing type is known.
func (a *AnyValue) AsOctets() ([]byte, bool) { return a.Content, true }

// Decode re-parses the captured TLV under spec, as if it had been decoded
// with spec in hand the first time. Used to resolve open types once a
// sibling field names the concrete type (§4.6, §9).
func (a *AnyValue) Decode(eng *Engine, spec Spec, opts Options) (Value, error) {
	return eng.Decode(NewCursor(a.Full), spec, opts)
}

type anyDecoder struct{}

func (anyDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	buf := make([]byte, length)
	if err := readFull(cur, buf, "ANY content"); err != nil {
		return nil, err
	}
	v := valueFor[*AnyValue](spec, tagSet, newAny)
	v.Content = buf
	v.Full = cur.Since(opts.tlvStart)
	if sv, ok := trySubstrateFunc(opts, v, buf); ok {
		return sv, nil
	}
	return v, nil
}

func (anyDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	contentStart := cur.Tell()
	for {
		if p := cur.Peek(2); len(p) == 2 && p[0] == 0x00 && p[1] == 0x00 {
			break
		}
		if cur.AtEnd() {
			return nil, newSubstrateUnderrun("ANY: end-of-contents octets")
		}
		if _, err := eng.decode(cur, nil, opts, depth+1); err != nil {
			return nil, err
		}
	}
	content := cur.Since(contentStart)
	cur.Seek(cur.Tell() + 2)

	v := valueFor[*AnyValue](spec, tagSet, newAny)
	v.Content = content
	v.Full = cur.Since(opts.tlvStart)
	if sv, ok := trySubstrateFunc(opts, v, content); ok {
		return sv, nil
	}
	return v, nil
}

// explicitTagDecoder backs a schema's own EXPLICIT-tag wrapper Spec (one
// reporting [TypeIDExplicitTag] with a single-tag TagSet and
// [Spec.ComponentType] naming the wrapped type), as an alternative to a
// Spec that simply carries a multi-tag TagSet (§4.5). Both modeling
// styles funnel into [Engine.decodeExplicitWrapper].
type explicitTagDecoder struct{}

func (explicitTagDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	return eng.decodeExplicitWrapper(cur, spec.ComponentType(), Length(length), opts, depth)
}

func (explicitTagDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return eng.decodeExplicitWrapper(cur, spec.ComponentType(), Indefinite, opts, depth)
}
