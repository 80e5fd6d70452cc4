package ber

import "sync"

// Engine is the decoding dispatch loop (§4.4). It reads one TLV at a time
// from a [Cursor], resolves a value decoder either from a caller-supplied
// [Spec] or from the wire tag alone via its [Registry], and recurses into
// nested TLVs through the same loop.
//
// An Engine is built once and reused; codello.dev/asn1/ber.Decoder plays
// the same role (its Decode method runs the identical tag/length/value
// dispatch, just over a fixed matcher table instead of a pluggable
// Registry). An *Engine is safe for concurrent use: its Registry is
// immutable after construction and its tag set cache is mutex-guarded.
type Engine struct {
	reg                         Registry
	supportIndefinite           bool
	dumpRawOnExplicitTagFailure bool

	mu          sync.Mutex
	tagSetCache map[Tag]TagSet
}

// EngineOption configures an [Engine] at construction time; see
// [WithIndefiniteLengthSupport] and [WithDumpRawOnExplicitTagFailure].
type EngineOption func(*EngineConfig)

// WithIndefiniteLengthSupport overrides [EngineConfig.SupportIndefiniteLength],
// which otherwise defaults to true.
func WithIndefiniteLengthSupport(support bool) EngineOption {
	return func(c *EngineConfig) { c.SupportIndefiniteLength = support }
}

// WithDumpRawOnExplicitTagFailure sets [EngineConfig.DumpRawOnExplicitTagFailure].
func WithDumpRawOnExplicitTagFailure(dump bool) EngineOption {
	return func(c *EngineConfig) { c.DumpRawOnExplicitTagFailure = dump }
}

// NewEngine returns an Engine backed by reg, the default configuration
// (indefinite length supported, explicit-tag fallure routes to an error)
// adjusted by any opts.
func NewEngine(reg Registry, opts ...EngineOption) *Engine {
	cfg := EngineConfig{Registry: reg, SupportIndefiniteLength: true}
	for _, o := range opts {
		o(&cfg)
	}
	return &Engine{
		reg:                         cfg.Registry,
		supportIndefinite:           cfg.SupportIndefiniteLength,
		dumpRawOnExplicitTagFailure: cfg.DumpRawOnExplicitTagFailure,
		tagSetCache:                 make(map[Tag]TagSet),
	}
}

// internTagSet returns a shared single-tag TagSet for t, avoiding a fresh
// slice allocation every time the same universal tag is decoded (§4.4).
func (e *Engine) internTagSet(t Tag) TagSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ts, ok := e.tagSetCache[t]; ok {
		return ts
	}
	ts := tagSetOf(t)
	e.tagSetCache[t] = ts
	return ts
}

// Decode reads exactly one TLV from cur and returns its decoded [Value]
// (§4.4). spec may be nil, in which case decoding falls back to the
// universal tag registry and best-effort heuristics for SEQUENCE/SET
// bodies; a non-nil spec steers IMPLICIT/EXPLICIT tagging, CHOICE
// selection and named-component matching.
//
// If opts.AllowEOO is set and the next two octets are the end-of-contents
// marker, Decode consumes them and returns [EOO] instead of attempting to
// decode a value.
func (e *Engine) Decode(cur Cursor, spec Spec, opts Options) (Value, error) {
	return e.decode(cur, spec, opts, 0)
}

// decode is the entry preamble plus stDecodeTag/stDecodeLength (§4.4).
func (e *Engine) decode(cur Cursor, spec Spec, opts Options, depth int) (Value, error) {
	if depth > opts.maxDepth() {
		return nil, newSchemaMismatch(Tag{}, "maximum nesting depth exceeded")
	}

	mark := cur.Mark()

	if opts.AllowEOO && e.supportIndefinite {
		if p := cur.Peek(2); len(p) == 2 && p[0] == 0x00 && p[1] == 0x00 {
			cur.Seek(cur.Tell() + 2)
			return EOO, nil
		}
	}

	tag, _, err := readTag(cur)
	if err != nil {
		return nil, err
	}
	tagSet := e.internTagSet(tag)

	length, _, err := readLength(cur)
	if err != nil {
		return nil, err
	}
	if length.IsIndefinite() && !e.supportIndefinite {
		return nil, errIndefiniteUnsupported
	}

	trace(tag, "decode")
	opts.tlvStart = mark
	return e.getValueDecoder(cur, spec, tag, tagSet, length, opts, depth)
}

// tagMatches compares class and number only: form is a wire-level fact
// (primitive vs. constructed) independent of how a Spec declares its base
// type's natural form, so it is never part of the comparison used to
// recognize a tag a Spec names (§4.4, §4.5 IMPLICIT tagging).
func tagMatches(wire, declared Tag) bool {
	return wire.Class == declared.Class && wire.Number == declared.Number
}

// getValueDecoder is stGetValueDecoder, branching into
// stGetValueDecoderByAsn1Spec or stGetValueDecoderByTag (§4.4).
func (e *Engine) getValueDecoder(cur Cursor, spec Spec, tag Tag, tagSet TagSet, length Length, opts Options, depth int) (Value, error) {
	if spec == nil {
		return e.getValueDecoderByTag(cur, tag, tagSet, length, opts, depth)
	}
	return e.getValueDecoderByAsn1Spec(cur, spec, tag, tagSet, length, opts, depth)
}

// getValueDecoderByAsn1Spec is stGetValueDecoderByAsn1Spec (§4.4). A Spec
// whose TagSet has more than one tag names an EXPLICIT wrapper around the
// rest of that TagSet; a single-tag Spec either names an unambiguous
// TypeID (CHOICE, ANY, SEQUENCE OF, SET OF, a schema's own EXPLICIT-tag
// wrapper type) or an ordinary IMPLICIT-taggable leaf/container type,
// resolved by the Spec's declared base tag rather than the observed wire
// tag, since IMPLICIT tagging only ever replaces class and number.
func (e *Engine) getValueDecoderByAsn1Spec(cur Cursor, spec Spec, tag Tag, tagSet TagSet, length Length, opts Options, depth int) (Value, error) {
	st := spec.TagSet()
	if st.Len() == 0 {
		// A tagless Spec (CHOICE, ANY) only makes sense dispatched by
		// TypeID, never by a declared tag.
		if entry, ok := e.reg.byType(spec.TypeID()); ok {
			return e.decodeValue(cur, spec, entry, tagSet, length, opts, depth)
		}
		return e.tryAsExplicitTag(cur, spec, tag, tagSet, length, opts, depth)
	}

	if !tagMatches(tag, st.First()) {
		return e.tryAsExplicitTag(cur, spec, tag, tagSet, length, opts, depth)
	}

	if st.Len() > 1 {
		inner := strippedSpec{Spec: spec, tagSet: st.Rest()}
		v, err := e.decodeExplicitWrapper(cur, inner, length, opts, depth)
		if err != nil {
			return nil, err
		}
		return v, nil
	}

	if id := spec.TypeID(); id != TypeIDUnspecified {
		if entry, ok := e.reg.byType(id); ok {
			return e.decodeValue(cur, spec, entry, tagSet, length, opts, depth)
		}
		return nil, newSchemaMismatch(tag, "no decoder registered for spec type id")
	}

	baseTag := Tag{Class: st.Base().Class, Form: tag.Form, Number: st.Base().Number}
	entry, ok := e.reg.byTag(tagSetOf(baseTag))
	if !ok {
		return nil, newSchemaMismatch(tag, "no decoder registered for spec's base tag")
	}
	return e.decodeValue(cur, spec, entry, tagSet, length, opts, depth)
}

// getValueDecoderByTag is stGetValueDecoderByTag (§4.4): no Spec was
// supplied, so the wire tag alone must resolve a decoder.
func (e *Engine) getValueDecoderByTag(cur Cursor, tag Tag, tagSet TagSet, length Length, opts Options, depth int) (Value, error) {
	entry, ok := e.reg.byTag(tagSet)
	if !ok {
		// A universal tag registered only under the other form is a
		// primitive/constructed mismatch, not an unknown type.
		other := tag
		other.Form = Constructed
		if tag.Form == Constructed {
			other.Form = Primitive
		}
		if _, known := e.reg.tagMap[other]; known && tag.Class == ClassUniversal {
			return nil, newMalformedEncoding(tag.String() + ": wrong form " + tag.Form.String())
		}
		return e.tryAsExplicitTag(cur, nil, tag, tagSet, length, opts, depth)
	}
	return e.decodeValue(cur, nil, entry, tagSet, length, opts, depth)
}

// tryAsExplicitTag is stTryAsExplicitTag (§4.4): a context/application/
// private constructed tag the registry (and any supplied Spec) couldn't
// resolve is, by far the most common real-world cause, an EXPLICIT tag
// wrapping exactly one inner TLV. A primitive tag cannot contain a nested
// TLV at all, and a UNIVERSAL tag is never an implicit EXPLICIT wrapper
// (the universal class is reserved for the types this package already
// registers), so the heuristic only applies to a constructed,
// non-universal tag.
func (e *Engine) tryAsExplicitTag(cur Cursor, spec Spec, tag Tag, tagSet TagSet, length Length, opts Options, depth int) (Value, error) {
	trace(tag, "try-as-explicit-tag")
	if tag.Form == Constructed && tag.Class != ClassUniversal {
		start := cur.Tell()
		v, err := e.decodeExplicitWrapper(cur, spec, length, opts, depth)
		if err == nil {
			return v, nil
		}
		cur.Seek(start)
	}
	return e.dumpRawOrError(cur, tag, tagSet, length, opts)
}

// dumpRawOrError is stDumpRawValue/stErrorCondition (§4.4).
func (e *Engine) dumpRawOrError(cur Cursor, tag Tag, tagSet TagSet, length Length, opts Options) (Value, error) {
	if !e.dumpRawOnExplicitTagFailure {
		return nil, newSchemaMismatch(tag, "no decoder resolved this tag")
	}
	entry, ok := e.reg.byType(TypeIDAny)
	if !ok {
		return nil, newSchemaMismatch(tag, "no decoder resolved this tag")
	}
	if length.IsIndefinite() {
		return entry.decoder.decodeIndefinite(cur, nil, tagSet, e, opts, 0)
	}
	return entry.decoder.decodeDefinite(cur, nil, tagSet, length.Int(), e, opts, 0)
}

// decodeValue is stDecodeValue (§4.4): entry has been resolved, dispatch
// to its definite- or indefinite-length form.
func (e *Engine) decodeValue(cur Cursor, spec Spec, entry decoderEntry, tagSet TagSet, length Length, opts Options, depth int) (Value, error) {
	if length.IsIndefinite() {
		return entry.decoder.decodeIndefinite(cur, spec, tagSet, e, opts, depth)
	}
	v, err := entry.decoder.decodeDefinite(cur, spec, tagSet, length.Int(), e, opts, depth)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// decodeExplicitWrapper decodes the content of an EXPLICIT-tag TLV: one
// inner value, matched against inner, spanning exactly length octets (or,
// in indefinite form, terminated by an end-of-contents marker) (§4.5).
func (e *Engine) decodeExplicitWrapper(cur Cursor, inner Spec, length Length, opts Options, depth int) (Value, error) {
	if length.IsIndefinite() {
		v, err := e.decode(cur, inner, opts, depth+1)
		if err != nil {
			return nil, err
		}
		eooOpts := opts
		eooOpts.AllowEOO = true
		eoo, err := e.decode(cur, nil, eooOpts, depth+1)
		if err != nil {
			return nil, err
		}
		if !IsEOO(eoo) {
			return nil, newSchemaMismatch(Tag{}, "explicit tag: missing end-of-contents octets")
		}
		return v, nil
	}

	n := length.Int()
	buf := make([]byte, n)
	if err := readFull(cur, buf, "explicit tag content"); err != nil {
		return nil, err
	}
	sub := NewCursor(buf)
	v, err := e.decode(sub, inner, opts, depth+1)
	if err != nil {
		return nil, err
	}
	if !sub.AtEnd() {
		declaredTag := Tag{}
		if inner != nil && !inner.TagSet().IsZero() {
			declaredTag = inner.TagSet().Base()
		}
		return nil, &LengthMismatchError{Tag: declaredTag, Declared: n, Consumed: sub.Tell()}
	}
	return v, nil
}

// strippedSpec presents spec with its outermost tag removed, used to
// recurse into the remainder of a multi-tag TagSet after peeling one
// EXPLICIT wrapper (§4.5).
type strippedSpec struct {
	Spec
	tagSet TagSet
}

func (s strippedSpec) TagSet() TagSet { return s.tagSet }
