package ber

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/JesseCoretta/go-objectid"

	"berdec.dev/ber/internal/vlq"
)

// ObjectIdentifier is a decoded ASN.1 OBJECT IDENTIFIER (§4.5). Arcs holds
// every arc of the dotted identifier, including the synthesized first two
// (recovered from BER's combined first sub-identifier, X.690 clause
// 8.19.4). Dotted is the same value parsed by
// github.com/JesseCoretta/go-objectid, giving callers arc/depth/string
// helpers this package does not reimplement.
type ObjectIdentifier struct {
	tagSet TagSet
	Arcs   []uint64
	Dotted *objectid.DotNotation
}

func newObjectIdentifier(ts TagSet) Value { return &ObjectIdentifier{tagSet: ts} }

func (o *ObjectIdentifier) TagSet() TagSet          { return o.tagSet }
func (o *ObjectIdentifier) EffectiveTagSet() TagSet { return o.tagSet }
func (o *ObjectIdentifier) IsInconsistent() bool    { return false }
func (o *ObjectIdentifier) Clear()                  { o.Arcs = nil; o.Dotted = nil }
func (o *ObjectIdentifier) Clone() Value            { return &ObjectIdentifier{tagSet: o.tagSet} }

type oidDecoder struct{}

func (oidDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if length == 0 {
		return nil, newMalformedEncoding("OBJECT IDENTIFIER content must be at least one octet")
	}
	buf := make([]byte, length)
	if err := readFull(cur, buf, "OBJECT IDENTIFIER content"); err != nil {
		return nil, err
	}

	br := bytes.NewReader(buf)
	first, err := vlq.ReadMinimal[uint64](br)
	if err != nil {
		return nil, newMalformedEncoding("OBJECT IDENTIFIER: " + err.Error())
	}

	var arcs []uint64
	switch {
	case first < 40:
		arcs = append(arcs, 0, first)
	case first < 80:
		arcs = append(arcs, 1, first-40)
	default:
		arcs = append(arcs, 2, first-80)
	}

	for br.Len() > 0 {
		v, err := vlq.ReadMinimal[uint64](br)
		if err != nil {
			return nil, newMalformedEncoding("OBJECT IDENTIFIER: " + err.Error())
		}
		arcs = append(arcs, v)
	}

	dotted, err := objectid.NewDotNotation(joinArcs(arcs))
	if err != nil {
		return nil, newMalformedEncoding("OBJECT IDENTIFIER: " + err.Error())
	}

	v := valueFor[*ObjectIdentifier](spec, tagSet, newObjectIdentifier)
	v.Arcs = arcs
	v.Dotted = dotted
	return v, nil
}

func (oidDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return nil, newMalformedEncoding("OBJECT IDENTIFIER cannot use indefinite length")
}

// RelativeOID is a decoded ASN.1 RELATIVE-OID (§4.5). Unlike
// OBJECT IDENTIFIER, every arc is encoded independently — there is no
// combined first sub-identifier, since a RELATIVE-OID is only meaningful
// appended to some other, unstated, OID prefix (X.690 clause 8.20).
type RelativeOID struct {
	tagSet TagSet
	Arcs   []uint64
}

func newRelativeOID(ts TagSet) Value { return &RelativeOID{tagSet: ts} }

func (o *RelativeOID) TagSet() TagSet          { return o.tagSet }
func (o *RelativeOID) EffectiveTagSet() TagSet { return o.tagSet }
func (o *RelativeOID) IsInconsistent() bool    { return false }
func (o *RelativeOID) Clear()                  { o.Arcs = nil }
func (o *RelativeOID) Clone() Value            { return &RelativeOID{tagSet: o.tagSet} }

type relativeOIDDecoder struct{}

func (relativeOIDDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	if length == 0 {
		return nil, newMalformedEncoding("RELATIVE-OID content must be at least one octet")
	}
	buf := make([]byte, length)
	if err := readFull(cur, buf, "RELATIVE-OID content"); err != nil {
		return nil, err
	}

	br := bytes.NewReader(buf)
	var arcs []uint64
	for br.Len() > 0 {
		v, err := vlq.ReadMinimal[uint64](br)
		if err != nil {
			return nil, newMalformedEncoding("RELATIVE-OID: " + err.Error())
		}
		arcs = append(arcs, v)
	}

	v := valueFor[*RelativeOID](spec, tagSet, newRelativeOID)
	v.Arcs = arcs
	return v, nil
}

func (relativeOIDDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return nil, newMalformedEncoding("RELATIVE-OID cannot use indefinite length")
}

func joinArcs(arcs []uint64) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.FormatUint(a, 10)
	}
	return strings.Join(parts, ".")
}
