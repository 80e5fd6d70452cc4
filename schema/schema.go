// Package schema is a minimal, concrete implementation of the external
// ASN.1 type system berdec.dev/ber's decoding core expects from a
// [ber.Spec] (§6 "Spec is the published contract..."). The core itself
// never builds named-type tables or compiles tag maps; this package does
// that, the way an application's hand-written or code-generated schema
// would.
package schema

import "berdec.dev/ber"

// spec is the concrete, immutable [ber.Spec] every constructor in this
// package returns.
type spec struct {
	tagSet    ber.TagSet
	typeID    ber.TypeID
	component ber.Spec
	tagMap    ber.TagMap
	named     ber.NamedTypes
	proto     func() ber.Value
}

func (s *spec) TagSet() ber.TagSet           { return s.tagSet }
func (s *spec) TypeID() ber.TypeID           { return s.typeID }
func (s *spec) ComponentType() ber.Spec      { return s.component }
func (s *spec) ComponentTagMap() ber.TagMap  { return s.tagMap }
func (s *spec) NamedTypes() ber.NamedTypes   { return s.named }
func (s *spec) Clone() ber.Value             { return s.proto() }

// Universal builds a Spec for a universal-class leaf or container type
// identified by tag, producing fresh values via proto. proto receives the
// very TagSet Universal builds, so the returned Value's TagSet always
// matches the Spec's own — [ber.NewBoolean] and its siblings are the
// exported constructors the decoding core itself uses for this reason.
func Universal(tag ber.Tag, proto func(ber.TagSet) ber.Value) ber.Spec {
	ts := ber.NewTagSet(tag)
	return &spec{tagSet: ts, proto: func() ber.Value { return proto(ts) }}
}

func univTag(number uint, form ber.Form) ber.Tag {
	return ber.Tag{Class: ber.ClassUniversal, Form: form, Number: number}
}

// Boolean returns a Spec for the universal BOOLEAN type.
func Boolean() ber.Spec {
	return Universal(univTag(ber.TagBoolean, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewBoolean(ts) })
}

// Integer returns a Spec for the universal INTEGER type.
func Integer() ber.Spec {
	return Universal(univTag(ber.TagInteger, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewInteger(ts) })
}

// Enumerated returns a Spec for the universal ENUMERATED type, which
// shares INTEGER's representation and decoder.
func Enumerated() ber.Spec {
	return Universal(univTag(ber.TagEnumerated, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewEnumerated(ts) })
}

// Null returns a Spec for the universal NULL type.
func Null() ber.Spec {
	return Universal(univTag(ber.TagNull, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewNull(ts) })
}

// Real returns a Spec for the universal REAL type.
func Real() ber.Spec {
	return Universal(univTag(ber.TagReal, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewReal(ts) })
}

// OctetString returns a Spec for the universal OCTET STRING type.
func OctetString() ber.Spec {
	return Universal(univTag(ber.TagOctetString, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewOctetString(ts) })
}

// BitString returns a Spec for the universal BIT STRING type.
func BitString() ber.Spec {
	return Universal(univTag(ber.TagBitString, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewBitString(ts) })
}

// ObjectIdentifier returns a Spec for the universal OBJECT IDENTIFIER type.
func ObjectIdentifier() ber.Spec {
	return Universal(univTag(ber.TagObjectIdentifier, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewObjectIdentifier(ts) })
}

// RelativeOID returns a Spec for the universal RELATIVE-OID type.
func RelativeOID() ber.Spec {
	return Universal(univTag(ber.TagRelativeOID, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewRelativeOID(ts) })
}

// characterString returns a Spec for one of the restricted/unrestricted
// character string types, all of which share [ber.CharacterString].
func characterString(tagNumber uint) ber.Spec {
	return Universal(univTag(tagNumber, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewCharacterString(ts) })
}

func UTF8String() ber.Spec      { return characterString(ber.TagUTF8String) }
func PrintableString() ber.Spec { return characterString(ber.TagPrintableString) }
func IA5String() ber.Spec       { return characterString(ber.TagIA5String) }
func NumericString() ber.Spec   { return characterString(ber.TagNumericString) }
func VisibleString() ber.Spec   { return characterString(ber.TagVisibleString) }
func BMPString() ber.Spec       { return characterString(ber.TagBMPString) }
func UniversalString() ber.Spec { return characterString(ber.TagUniversalString) }

// UTCTime returns a Spec for the universal UTCTime type.
func UTCTime() ber.Spec {
	return Universal(univTag(ber.TagUTCTime, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewTimeString(ts) })
}

// GeneralizedTime returns a Spec for the universal GeneralizedTime type.
func GeneralizedTime() ber.Spec {
	return Universal(univTag(ber.TagGeneralizedTime, ber.Primitive), func(ts ber.TagSet) ber.Value { return ber.NewTimeString(ts) })
}

// Components builds a [ber.NamedTypes] table from types, computing the
// HasOptionalOrDefault/HasOpenTypes summary flags a constructed decoder
// needs (§4.6). Pass unique true for SET semantics (components may appear
// in any order, matched purely by tag) and false for SEQUENCE semantics
// (components must appear in declaration order).
func Components(unique bool, types ...ber.NamedType) ber.NamedTypes {
	nt := ber.NamedTypes{Types: types, TagMapUnique: unique}
	for _, t := range types {
		if t.Optional || t.Defaulted {
			nt.HasOptionalOrDefault = true
		}
		if t.OpenType {
			nt.HasOpenTypes = true
		}
	}
	return nt
}

// Sequence returns a Spec for a SEQUENCE type with the given named
// components, producing a fresh [ber.Container] via proto.
func Sequence(components ber.NamedTypes) ber.Spec {
	ts := ber.NewTagSet(univTag(ber.TagSequence, ber.Constructed))
	return &spec{
		tagSet: ts,
		typeID: ber.TypeIDSequence,
		named:  components,
		proto:  func() ber.Value { return ber.NewSequenceValue(ts) },
	}
}

// Set returns a Spec for a SET type. Callers normally build components
// via [Components] with unique=true.
func Set(components ber.NamedTypes) ber.Spec {
	ts := ber.NewTagSet(univTag(ber.TagSetType, ber.Constructed))
	return &spec{
		tagSet: ts,
		typeID: ber.TypeIDSet,
		named:  components,
		proto:  func() ber.Value { return ber.NewSequenceValue(ts) },
	}
}

// SequenceOf returns a Spec for a SEQUENCE OF element.
func SequenceOf(element ber.Spec) ber.Spec {
	ts := ber.NewTagSet(univTag(ber.TagSequence, ber.Constructed))
	return &spec{
		tagSet:    ts,
		typeID:    ber.TypeIDSequenceOf,
		component: element,
		proto:     func() ber.Value { return ber.NewSequenceOfValue(ts) },
	}
}

// SetOf returns a Spec for a SET OF element.
func SetOf(element ber.Spec) ber.Spec {
	ts := ber.NewTagSet(univTag(ber.TagSetType, ber.Constructed))
	return &spec{
		tagSet:    ts,
		typeID:    ber.TypeIDSetOf,
		component: element,
		proto:     func() ber.Value { return ber.NewSequenceOfValue(ts) },
	}
}

// Choice returns a Spec for a CHOICE type whose alternatives are
// identified by alternatives, built with [ber.NewTagMap]. CHOICE is
// tagless (§4.6), so its Clone carries a zero TagSet; the decoded
// [ber.Choice.Selected] value carries the alternative's own tag instead.
func Choice(alternatives ber.TagMap) ber.Spec {
	return &spec{
		typeID: ber.TypeIDChoice,
		tagMap: alternatives,
		proto:  func() ber.Value { return new(ber.Choice) },
	}
}

// Any returns a Spec for an untyped ANY field, matched by no particular
// tag and captured verbatim.
func Any() ber.Spec {
	ts := ber.TagSet{}
	return &spec{typeID: ber.TypeIDAny, proto: func() ber.Value { return ber.NewAnyValue(ts) }}
}

// Tagged wraps inner so that its TagSet gains tag as a new outermost
// entry (§4.5 "EXPLICIT tagging"). This is the primary way to model
// EXPLICIT tagging in this package: the engine recognizes a multi-tag
// TagSet and peels wrappers itself, with no need for a dedicated
// TypeIDExplicitTag Spec.
//
// A tagless inner Spec (CHOICE or ANY, whose TagSet is always empty)
// cannot be prepended to this way: Prepend would produce a single-tag
// TagSet indistinguishable from an ordinary tagged type, and the engine
// would dispatch straight to the inner type's own decoder at the wrapper
// tag instead of unwrapping first. Tagged detects that case and falls
// back to [Explicit]'s TypeIDExplicitTag modeling instead, which always
// unwraps via [ber.Engine.Decode]'s explicit-tag path regardless of
// whether the wrapped type carries a tag of its own.
func Tagged(tag ber.Tag, inner ber.Spec) ber.Spec {
	if inner.TagSet().Len() == 0 {
		return Explicit(tag, inner)
	}
	return &spec{
		tagSet:    inner.TagSet().Prepend(tag),
		typeID:    inner.TypeID(),
		component: inner.ComponentType(),
		tagMap:    inner.ComponentTagMap(),
		named:     inner.NamedTypes(),
		proto:     inner.Clone,
	}
}

// Explicit wraps inner using the alternate [ber.TypeIDExplicitTag]
// modeling style, for schemas that prefer to keep a wrapper Spec's own
// TagSet single-tag and name the wrapped type via ComponentType instead
// of TagSet.Prepend.
func Explicit(tag ber.Tag, inner ber.Spec) ber.Spec {
	return &spec{
		tagSet:    ber.NewTagSet(tag),
		typeID:    ber.TypeIDExplicitTag,
		component: inner,
		proto:     inner.Clone,
	}
}
