package ber

// TypeID disambiguates types whose tag sets collide at the universal
// level: SEQUENCE vs. SEQUENCE OF, SET vs. SET OF, and the inherently
// tagless CHOICE and ANY. The [Registry]'s typeMap is keyed by TypeID for
// exactly these types (§4.8); every other universal type is looked up by
// [TagSet] alone.
type TypeID int

// TypeIDs for the container types the tag alone cannot disambiguate.
const (
	TypeIDUnspecified TypeID = iota
	TypeIDSequence
	TypeIDSequenceOf
	TypeIDSet
	TypeIDSetOf
	TypeIDChoice
	TypeIDAny
	TypeIDExplicitTag
)

// Spec is the published contract the decoding core requires from the
// external ASN.1 type system (§6). The type system itself — type objects,
// tag sets, named-type tables, constraints — is an external collaborator;
// this interface is the entirety of what the core consumes
// from it. A concrete implementation (such as berdec.dev/ber/schema) is
// responsible for everything else: building named-type tables, compiling
// tag maps, enforcing constraints.
//
// Spec is intentionally read-only from the core's point of view: the core
// never mutates a Spec, only the [Value] it produces via [Spec.Clone].
type Spec interface {
	// TagSet returns the accumulated tag set that identifies this type,
	// outermost EXPLICIT wrapper first, base type last.
	TagSet() TagSet

	// TypeID returns the disambiguating type identifier used to select a
	// concrete decoder when TagSet alone is ambiguous (§4.8). Types with
	// unambiguous tag sets may return [TypeIDUnspecified].
	TypeID() TypeID

	// ComponentType returns the Spec governing every element of a
	// SEQUENCE OF/SET OF, or the wrapped Spec of a [TypeIDExplicitTag]
	// wrapper. It is nil for any other TypeID.
	ComponentType() Spec

	// ComponentTagMap returns the alternative lookup the CHOICE decoder
	// selects an alternative with. It is nil for any TypeID other than
	// TypeIDChoice/TypeIDAny; the ANY decoder does not consult it.
	ComponentTagMap() TagMap

	// NamedTypes returns the ordered component table of a SEQUENCE or SET
	// Spec, or the zero [NamedTypes] for any other TypeID.
	NamedTypes() NamedTypes

	// Clone returns a fresh, empty [Value] of the type this Spec describes,
	// ready to be filled in by a value decoder.
	Clone() Value
}

// NamedType describes one component of a SEQUENCE or SET Spec.
type NamedType struct {
	Name      string
	Spec      Spec
	Optional  bool
	Defaulted bool
	Default   Value // used when Defaulted is true and the component is absent

	// OpenType marks this component as governed by a sibling value,
	// resolved only after the whole container decodes (§4.6 "open
	// types"). OpenTypeGovernor names the sibling component whose decoded
	// value selects the concrete Spec; OpenTypeMap is the schema-embedded
	// lookup consulted when the caller's own Options.OpenTypes (§6) has no
	// entry for that value.
	OpenType         bool
	OpenTypeGovernor string
	OpenTypeMap      map[any]Spec
}

// NamedTypes is the ordered component table of a SEQUENCE/SET [Spec]
// (§6). The zero NamedTypes value (nil Types) describes a type with no
// named components, signalling the constructed decoder to fall back to
// unguided decoding for that container (§4.6).
type NamedTypes struct {
	Types []NamedType

	// TagMapUnique, when true, lets the constructed decoder resolve any
	// component purely by its effective tag set regardless of position —
	// used for SET, and for SEQUENCEs whose components all have distinct
	// tags.
	TagMapUnique bool

	// HasOptionalOrDefault is true if any component may be legitimately
	// absent from the wire encoding.
	HasOptionalOrDefault bool

	// HasOpenTypes is true if any component is marked OpenType.
	HasOpenTypes bool
}

// Len returns the number of named components.
func (n NamedTypes) Len() int { return len(n.Types) }

// At returns the component at position i.
func (n NamedTypes) At(i int) NamedType { return n.Types[i] }

// RequiredComponents returns the positions of every component that is
// neither Optional nor Defaulted.
func (n NamedTypes) RequiredComponents() []int {
	var req []int
	for i, t := range n.Types {
		if !t.Optional && !t.Defaulted {
			req = append(req, i)
		}
	}
	return req
}

// TagMapNearPosition builds a [TagMap] from position i (inclusive) to the
// end of the component table, for matching a not-yet-consumed SEQUENCE
// component against whichever of the remaining optional/defaulted
// components it turns out to be (§4.6).
func (n NamedTypes) TagMapNearPosition(i int) TagMap {
	tm := make(TagMap, 0, len(n.Types)-i)
	for j := i; j < len(n.Types); j++ {
		tm = append(tm, tagMapEntry{tagSet: n.Types[j].Spec.TagSet(), spec: n.Types[j].Spec})
	}
	return tm
}

// PositionByType returns the position of the component whose effective
// tag set equals ts, searching the entire table. Used for SET, where
// components may appear in any order.
func (n NamedTypes) PositionByType(ts TagSet) (int, bool) {
	for i, t := range n.Types {
		if t.Spec.TagSet().Equal(ts) {
			return i, true
		}
	}
	return 0, false
}

// PositionNearType returns the position, at or after i, of the component
// whose effective tag set equals ts. Used to relocate the SEQUENCE cursor
// after decoding an optional/defaulted component found via
// [NamedTypes.TagMapNearPosition].
func (n NamedTypes) PositionNearType(ts TagSet, i int) (int, bool) {
	for j := i; j < len(n.Types); j++ {
		if n.Types[j].Spec.TagSet().Equal(ts) {
			return j, true
		}
	}
	return 0, false
}

// tagMapEntry pairs a TagSet with the Spec it resolves to.
type tagMapEntry struct {
	tagSet TagSet
	spec   Spec
}

// TagMap is an ordered lookup from [TagSet] to [Spec], used to dispatch
// CHOICE alternatives (§3, §4.7). Order matters only
// in that the first matching entry wins, which never happens in a
// well-formed schema since TagSets within one TagMap are supposed to be
// distinct.
type TagMap []tagMapEntry

// NewTagMap builds a TagMap associating each given TagSet with its Spec.
// Panics if len(tagSets) != len(specs).
func NewTagMap(tagSets []TagSet, specs []Spec) TagMap {
	if len(tagSets) != len(specs) {
		panic("ber: NewTagMap: mismatched tagSets/specs length")
	}
	tm := make(TagMap, len(tagSets))
	for i := range tagSets {
		tm[i] = tagMapEntry{tagSet: tagSets[i], spec: specs[i]}
	}
	return tm
}

// Lookup returns the Spec whose entry's outermost tag matches ts's
// outermost tag, if any. Matching on the outermost tag alone (rather than
// requiring the full TagSet to match) lets an alternative that is itself
// EXPLICIT-tagged be selected from the single wire tag actually observed;
// the rest of that alternative's TagSet is peeled by the engine's normal
// dispatch once the Spec is handed back to it (§4.7).
func (m TagMap) Lookup(ts TagSet) (Spec, bool) {
	if ts.IsZero() {
		return nil, false
	}
	for _, e := range m {
		if e.tagSet.IsZero() {
			continue
		}
		if tagMatches(ts.First(), e.tagSet.First()) {
			return e.spec, true
		}
	}
	return nil, false
}
