package ber

// Options carries the per-call knobs for [Engine.Decode] (§6). The zero
// value decodes with every optional behavior disabled, matching pyasn1's
// default keyword arguments.
type Options struct {
	// AllowEOO, when true, makes Decode check whether the next two octets
	// are the end-of-contents marker (0x00 0x00) and, if so, return the EOO
	// sentinel instead of attempting to decode a value. Only meaningful
	// together with indefinite-length support; see [EOO].
	AllowEOO bool

	// DecodeOpenTypes enables recursive resolution of SEQUENCE/SET fields
	// marked as open types (§4.6): after the enclosing container is
	// decoded, each open-type field's raw bytes are re-decoded under a Spec
	// looked up via a governing sibling value.
	DecodeOpenTypes bool

	// OpenTypes, when non-nil, is consulted before a schema's own embedded
	// open-type table for resolving an open-type field's governing value to
	// a concrete [Spec]. Caller-supplied entries take precedence.
	OpenTypes map[any]Spec

	// SubstrateFunc, when set, is a short-circuit hook: instead of parsing
	// a constructed fragment's contents, the decoder hands it the
	// prototype Value and the raw bytes spanned by the fragment. It is
	// intended for constructed-fragment collection (BIT STRING/OCTET
	// STRING/ANY segments), mirroring pyasn1's substrateFun parameter.
	SubstrateFunc func(proto Value, substrate []byte, length int) any

	// RecursiveFlag has no effect: the engine never reads it and always
	// recurses into nested TLVs, bounded by MaxDepth, whatever its value.
	// Deprecated: present only for parity with pyasn1's identically-named
	// (and identically deprecated) option.
	RecursiveFlag bool

	// MaxDepth bounds the recursion depth of nested Decode calls, guarding
	// against pathological or adversarial inputs with deeply nested
	// constructed TLVs (§9, "Recursion"). Zero means [DefaultMaxDepth].
	MaxDepth int

	// tlvStart is set internally by [Engine] to the Cursor mark recorded
	// at the start of the TLV currently being decoded, letting the ANY
	// decoder capture the complete header+content octets via
	// [Cursor.Since] rather than re-encoding a header of its own. Callers
	// constructing an Options literal never set this field.
	tlvStart int
}

// DefaultMaxDepth is used in place of Options.MaxDepth when it is zero.
const DefaultMaxDepth = 64

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// EngineConfig configures construction of an [Engine] (§6: "Engine
// construction").
type EngineConfig struct {
	// Registry supplies the tagMap/typeMap lookup tables (§4.8). Use
	// [DefaultRegistry] for the universal ASN.1 types.
	Registry Registry

	// SupportIndefiniteLength controls whether indefinite-length TLVs are
	// accepted. Defaults to true; set false to make [Engine.Decode] return
	// an [UnsupportedFeatureError] whenever it reads an indefinite length.
	SupportIndefiniteLength bool

	// DumpRawOnExplicitTagFailure selects the fallback behavior of the
	// TryAsExplicitTag state (§4.4) when even the explicit-tag heuristic
	// does not apply: false (default) routes to ErrorCondition, true
	// returns the raw TLV octets as an untagged ANY value instead of
	// failing.
	DumpRawOnExplicitTagFailure bool
}
