package ber

import "fmt"

// The decoder reports failures using one of five error kinds (§7). Each
// kind is its own type so callers can discriminate with errors.As instead
// of string matching, in the spirit of the SyntaxError / StructuralError
// split in codello.dev/asn1/ber.decode.go.

// SubstrateUnderrunError indicates the input stream ended in the middle of
// a TLV: a short tag, a short length, a missing end-of-contents marker, or
// fewer value octets than declared.
type SubstrateUnderrunError struct {
	What string // what was being read, e.g. "length octets"
}

func (e *SubstrateUnderrunError) Error() string {
	return fmt.Sprintf("ber: substrate underrun reading %s", e.What)
}

func newSubstrateUnderrun(what string) error { return &SubstrateUnderrunError{What: what} }

// MalformedEncodingError indicates the input contains a construct BER
// forbids outright: a non-minimal OID sub-identifier, an out-of-range BIT
// STRING unused-bit count, non-empty NULL content, an illegal REAL base,
// a form (primitive/constructed) mismatch, or similar.
type MalformedEncodingError struct {
	Reason string
}

func (e *MalformedEncodingError) Error() string {
	return "ber: malformed encoding: " + e.Reason
}

func newMalformedEncoding(reason string) error { return &MalformedEncodingError{Reason: reason} }

// LengthMismatchError indicates a value decoder consumed a different
// number of octets than the TLV's declared definite length.
type LengthMismatchError struct {
	Tag      Tag
	Declared int
	Consumed int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("ber: length mismatch decoding %s: declared %d octets, consumed %d",
		e.Tag, e.Declared, e.Consumed)
}

// SchemaMismatchError indicates the decoded tag could not be resolved to
// any decoder via the tag registry, the supplied [Spec], or the
// explicit-tag fallback; or that a schema-guided decode saw more
// components than the schema allows, was missing a required component, or
// was missing its end-of-contents marker.
type SchemaMismatchError struct {
	Reason string
	Tag    Tag
}

func (e *SchemaMismatchError) Error() string {
	if e.Tag == (Tag{}) {
		return "ber: schema mismatch: " + e.Reason
	}
	return fmt.Sprintf("ber: schema mismatch for %s: %s", e.Tag, e.Reason)
}

func newSchemaMismatch(tag Tag, reason string) error {
	return &SchemaMismatchError{Tag: tag, Reason: reason}
}

// UnsupportedFeatureError indicates the input used a BER feature the
// [Engine] was configured to reject, currently only indefinite length
// when [EngineConfig.SupportIndefiniteLength] is false.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return "ber: unsupported feature: " + e.Feature
}

var errIndefiniteUnsupported = &UnsupportedFeatureError{Feature: "indefinite length"}
