package ber

// Registry is the engine's lookup table from wire tag (and, where a tag
// alone is ambiguous, from [Spec.TypeID]) to a concrete value decoder
// (§4.8). It is built once, at engine construction, and never mutated
// afterwards; an *Engine may be shared across goroutines.
//
// Registry mirrors a split seen across BER decoders between an internal
// per-tag matcher table and pyasn1's tagMap/typeMap pair: most universal types
// are resolved by tag alone, but SEQUENCE/SEQUENCE OF, SET/SET OF, CHOICE,
// ANY and EXPLICIT-tag wrapping share a tag (or have none at all) and so
// are only resolvable once a [Spec] names which one is meant.
type Registry struct {
	tagMap  map[Tag]decoderEntry
	typeMap map[TypeID]decoderEntry
}

// NewRegistry returns an empty Registry. Use [Registry.Register] and
// [Registry.RegisterType] to populate it, or [DefaultRegistry] for one
// preloaded with every universal ASN.1 type this package implements.
func NewRegistry() Registry {
	return Registry{
		tagMap:  make(map[Tag]decoderEntry),
		typeMap: make(map[TypeID]decoderEntry),
	}
}

// Register associates tag with a decoder, reachable purely by the wire
// tag with no [Spec] required (§4.8, tagMap).
func (r Registry) Register(tag Tag, d valueDecoder, proto func(TagSet) Value) {
	r.tagMap[tag] = decoderEntry{decoder: d, prototype: proto}
}

// RegisterType associates id with a decoder, consulted whenever a [Spec]
// reports that TypeID from [Spec.TypeID] (§4.8, typeMap). Used for the
// handful of types a bare tag cannot disambiguate.
func (r Registry) RegisterType(id TypeID, d valueDecoder, proto func(TagSet) Value) {
	r.typeMap[id] = decoderEntry{decoder: d, prototype: proto}
}

// byTag looks up a decoder purely by tag (§4.4, "GetValueDecoderByTag").
func (r Registry) byTag(ts TagSet) (decoderEntry, bool) {
	if ts.IsZero() {
		return decoderEntry{}, false
	}
	e, ok := r.tagMap[ts.Base()]
	if ok {
		return e, true
	}
	// A wrapper tag not itself in the registry (e.g. an application or
	// context tag the caller never resolved via a Spec) falls back to the
	// outermost observed tag, matching the base-then-outer probe order
	// common to BER decoders.
	e, ok = r.tagMap[ts.First()]
	return e, ok
}

// byType looks up a decoder by a Spec's TypeID (§4.4,
// "GetValueDecoderByAsn1Spec").
func (r Registry) byType(id TypeID) (decoderEntry, bool) {
	if id == TypeIDUnspecified {
		return decoderEntry{}, false
	}
	e, ok := r.typeMap[id]
	return e, ok
}

// DefaultRegistry returns a Registry preloaded with a decoder for every
// universal ASN.1 type this package implements (§4.5, §4.6, §4.7).
// Callers building their own type system (the berdec.dev/ber/schema
// package, or an application-specific one) normally start here and
// Register additional application/context/private tags on top.
func DefaultRegistry() Registry {
	r := NewRegistry()

	r.Register(univ(TagBoolean, Primitive), booleanDecoder{}, newBoolean)
	r.Register(univ(TagInteger, Primitive), integerDecoder{}, newInteger)
	r.Register(univ(TagEnumerated, Primitive), integerDecoder{}, newEnumerated)
	r.Register(univ(TagNull, Primitive), nullDecoder{}, newNull)
	r.Register(univ(TagReal, Primitive), realDecoder{}, newReal)

	r.Register(univ(TagBitString, Primitive), bitStringDecoder{}, newBitString)
	r.Register(univ(TagBitString, Constructed), bitStringDecoder{}, newBitString)
	r.Register(univ(TagOctetString, Primitive), octetStringDecoder{}, newOctetString)
	r.Register(univ(TagOctetString, Constructed), octetStringDecoder{}, newOctetString)

	r.Register(univ(TagObjectIdentifier, Primitive), oidDecoder{}, newObjectIdentifier)
	r.Register(univ(TagRelativeOID, Primitive), relativeOIDDecoder{}, newRelativeOID)

	// SEQUENCE and SEQUENCE OF, SET and SET OF share a tag; a single
	// decoder handles both, disambiguated by the Spec (its TypeID or named
	// types) when one is supplied, and guessed from the number of distinct
	// inner tag sets when it isn't (§4.6).
	r.Register(univ(TagSequence, Constructed), constructedDecoder{}, newSequence)
	r.Register(univ(TagSetType, Constructed), constructedDecoder{}, newSet)

	for _, tag := range []uint{
		TagUTF8String, TagNumericString, TagPrintableString, TagTeletexString,
		TagVideotexString, TagIA5String, TagGraphicString, TagVisibleString,
		TagGeneralString, TagUniversalString, TagBMPString, TagCharacterString,
		TagObjectDescriptor,
	} {
		r.Register(univ(tag, Primitive), characterStringDecoder{}, newCharacterString)
		r.Register(univ(tag, Constructed), characterStringDecoder{}, newCharacterString)
	}

	r.Register(univ(TagUTCTime, Primitive), timeDecoder{}, newTimeString)
	r.Register(univ(TagUTCTime, Constructed), timeDecoder{}, newTimeString)
	r.Register(univ(TagGeneralizedTime, Primitive), timeDecoder{}, newTimeString)
	r.Register(univ(TagGeneralizedTime, Constructed), timeDecoder{}, newTimeString)

	// CHOICE, ANY and EXPLICIT-tag wrapping carry no tag of their own (or,
	// for ANY, deliberately accept whatever tag is present) and so are
	// only reachable once a Spec names one of these TypeIDs.
	r.RegisterType(TypeIDChoice, choiceDecoder{}, nil)
	r.RegisterType(TypeIDAny, anyDecoder{}, newAny)
	r.RegisterType(TypeIDExplicitTag, explicitTagDecoder{}, nil)
	r.RegisterType(TypeIDSequence, constructedDecoder{}, newSequence)
	r.RegisterType(TypeIDSet, constructedDecoder{}, newSet)
	r.RegisterType(TypeIDSequenceOf, constructedDecoder{}, newSequenceOf)
	r.RegisterType(TypeIDSetOf, constructedDecoder{}, newSetOf)

	return r
}
