package ber

// valueDecoder is the capability every concrete ASN.1 type decoder
// implements: decode its content octets in either the definite- or
// indefinite-length form (§9 "Polymorphism"). tagSet is the one-tag set
// the engine built from this TLV's wire tag (the tags of any EXPLICIT
// wrappers around it are not included); spec is the caller-supplied
// schema for this value, or nil.
type valueDecoder interface {
	// decodeDefinite decodes exactly length content octets from cur. depth
	// is the current nesting depth, threaded through so a decoder that
	// recurses into the engine (constructed types, explicit-tag wrappers)
	// can pass depth+1 and have [Options.MaxDepth] enforced correctly.
	decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error)

	// decodeIndefinite decodes content octets from cur up to (and
	// consuming) the terminating end-of-contents marker.
	decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error)
}

// prototype returns the zero Value a decoder produces when no [Spec] was
// supplied by the caller (§3 "Value objects are created ... by cloning a
// Spec or the decoder's prototype").
type prototyper interface {
	prototype(tagSet TagSet) Value
}

// decoderEntry pairs a valueDecoder with the function used to build its
// prototype Value, as stored in a [Registry].
type decoderEntry struct {
	decoder   valueDecoder
	prototype func(tagSet TagSet) Value
}
