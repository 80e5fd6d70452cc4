package ber

// Value is a decoded ASN.1 value (§3). Every concrete value the decoding
// core produces — leaves like INTEGER or OCTET STRING as well as
// internal nodes like SEQUENCE or CHOICE — implements this interface.
// Value identity is never observed by the core; equality is structural.
type Value interface {
	// TagSet returns the tag set this value was decoded under.
	TagSet() TagSet

	// Clone returns a new, independent Value of the same concrete type as
	// the receiver, with its payload reset to the type's zero value.
	Clone() Value

	// Clear resets the receiver's payload to its zero value in place.
	Clear()

	// EffectiveTagSet returns the tag set that should be used to match
	// this value against a component table or tag map: for most types this
	// is the same as TagSet, but a CHOICE value returns the effective tag
	// set of whichever alternative it holds, unwrapping transparently.
	EffectiveTagSet() TagSet

	// IsInconsistent reports whether the value is missing data a complete
	// decode should have filled in (e.g. a SEQUENCE with an unset required
	// component). The constructed decoder does not call it; it tracks
	// which required components it has seen while decoding.
	IsInconsistent() bool
}

// Container is implemented by the constructed [Value]s that hold indexed
// or named sub-components: [Sequence] (SEQUENCE, SET) and [SequenceOf]
// (SEQUENCE OF, SET OF). [Choice] does not implement it.
type Container interface {
	Value

	// SetComponentByPosition installs v as the component at position i.
	SetComponentByPosition(i int, v Value)

	// ComponentByPosition returns the component at position i, if set.
	ComponentByPosition(i int) (Value, bool)

	// ComponentByName returns the component with the given field name, if
	// set. SEQUENCE OF/SET OF containers, which have no named components,
	// always return (nil, false).
	ComponentByName(name string) (Value, bool)

	// AsOctets returns the raw, not-yet-decoded bytes stashed in an
	// open-type container field, for re-entrant decoding under a
	// resolved Spec (§9 "Open-type re-entry"). ok is false for anything
	// that isn't holding raw open-type bytes.
	AsOctets() (octets []byte, ok bool)
}

// eooValue is the unique sentinel returned in place of a Value when the
// two-octet end-of-contents marker is observed in allow-EOO mode (§3). It
// is never stored inside another Value and never leaked past the public
// boundary: every indefinite-length consumer loop checks for it
// internally (§9 "Indefinite-length + EOO").
type eooValue struct{}

func (eooValue) TagSet() TagSet          { return TagSet{} }
func (eooValue) Clone() Value            { return eooValue{} }
func (eooValue) Clear()                  {}
func (eooValue) EffectiveTagSet() TagSet { return TagSet{} }
func (eooValue) IsInconsistent() bool    { return false }

// EOO is the end-of-contents sentinel value (§3, GLOSSARY). Compare
// decoded values against EOO with ==.
var EOO Value = eooValue{}

// IsEOO reports whether v is the [EOO] sentinel.
func IsEOO(v Value) bool {
	_, ok := v.(eooValue)
	return ok
}
