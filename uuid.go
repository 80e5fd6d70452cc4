package ber

import "github.com/google/uuid"

// ParseUUID interprets v's content octets as a 16-byte RFC 4122 UUID,
// the conventional BER representation of a UUID field (an OCTET STRING
// carrying the raw 128 bits, per RFC 4530). This is a convenience on top
// of the OCTET STRING decoder, not a distinct registered type: a schema
// models a UUID-valued field as an ordinary OCTET STRING and calls
// ParseUUID on the result.
func ParseUUID(v *OctetString) (uuid.UUID, error) {
	return uuid.FromBytes(v.Bytes)
}
