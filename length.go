package ber

// Length is the decoded length of a TLV's content octets: either a
// non-negative byte count (definite form) or the [Indefinite] sentinel
// (§3). Length is a distinct type rather than a plain int so that call
// sites cannot accidentally treat an indefinite length as a byte count
// without an explicit conversion.
type Length int

// Indefinite denotes BER indefinite-length form (length octet 0x80),
// where the content is terminated by an end-of-contents marker rather
// than a declared byte count.
const Indefinite Length = -1

// IsIndefinite reports whether l represents the indefinite-length form.
func (l Length) IsIndefinite() bool { return l == Indefinite }

// Int returns l as a plain int. Callers must not call Int on an
// [Indefinite] length; use [Length.IsIndefinite] first.
func (l Length) Int() int { return int(l) }
