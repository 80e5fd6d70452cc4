package ber

// Sequence is a decoded ASN.1 SEQUENCE or SET with a named-component
// table (§4.6). Components are stored by position; names, when the
// governing [Spec] supplied any, allow lookup by field name too.
type Sequence struct {
	tagSet TagSet
	names  []string
	values []Value
}

func newSequence(ts TagSet) Value { return &Sequence{tagSet: ts} }
func newSet(ts TagSet) Value      { return &Sequence{tagSet: ts} }

func (s *Sequence) TagSet() TagSet          { return s.tagSet }
func (s *Sequence) EffectiveTagSet() TagSet { return s.tagSet }
func (s *Sequence) Clear()                  { s.values, s.names = nil, nil }
func (s *Sequence) Clone() Value            { return &Sequence{tagSet: s.tagSet} }

func (s *Sequence) IsInconsistent() bool {
	for _, v := range s.values {
		if v == nil {
			return true
		}
	}
	return false
}

func (s *Sequence) SetComponentByPosition(i int, v Value) {
	for len(s.values) <= i {
		s.values = append(s.values, nil)
	}
	s.values[i] = v
}

func (s *Sequence) ComponentByPosition(i int) (Value, bool) {
	if i < 0 || i >= len(s.values) || s.values[i] == nil {
		return nil, false
	}
	return s.values[i], true
}

func (s *Sequence) ComponentByName(name string) (Value, bool) {
	for i, n := range s.names {
		if n == name {
			return s.ComponentByPosition(i)
		}
	}
	return nil, false
}

func (s *Sequence) AsOctets() ([]byte, bool) { return nil, false }

// SequenceOf is a decoded ASN.1 SEQUENCE OF or SET OF, or the container
// produced when a constructed tag-16/17 TLV is decoded with no [Spec] and
// its members share at most one tag set (§4.6 "heuristic decoding");
// members with differing tag sets produce a [Sequence] instead.
type SequenceOf struct {
	tagSet   TagSet
	Elements []Value
}

func newSequenceOf(ts TagSet) Value { return &SequenceOf{tagSet: ts} }
func newSetOf(ts TagSet) Value      { return &SequenceOf{tagSet: ts} }

func (s *SequenceOf) TagSet() TagSet          { return s.tagSet }
func (s *SequenceOf) EffectiveTagSet() TagSet { return s.tagSet }
func (s *SequenceOf) Clear()                  { s.Elements = nil }
func (s *SequenceOf) Clone() Value            { return &SequenceOf{tagSet: s.tagSet} }
func (s *SequenceOf) IsInconsistent() bool    { return false }

func (s *SequenceOf) SetComponentByPosition(i int, v Value) {
	for len(s.Elements) <= i {
		s.Elements = append(s.Elements, nil)
	}
	s.Elements[i] = v
}

func (s *SequenceOf) ComponentByPosition(i int) (Value, bool) {
	if i < 0 || i >= len(s.Elements) || s.Elements[i] == nil {
		return nil, false
	}
	return s.Elements[i], true
}

func (s *SequenceOf) ComponentByName(string) (Value, bool) { return nil, false }
func (s *SequenceOf) AsOctets() ([]byte, bool)             { return nil, false }

// constructedDecoder backs every SEQUENCE, SEQUENCE OF, SET and SET OF
// TLV (§4.6). Tag 16 and tag 17 share this single decoder, exactly as
// pyasn1's SequenceOrSequenceOfDecoder and SetOrSetOfDecoder classes do;
// [Spec.TypeID] (or, with no Spec at all, the absence of a named-type
// table) picks which of the three decoding strategies applies.
type constructedDecoder struct{}

func (constructedDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	buf := make([]byte, length)
	if err := readFull(cur, buf, "SEQUENCE/SET content"); err != nil {
		return nil, err
	}
	sub := NewCursor(buf)
	return decodeConstructedBody(eng, sub, spec, tagSet, opts, depth, false)
}

func (constructedDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return decodeConstructedBody(eng, cur, spec, tagSet, opts, depth, true)
}

func decodeConstructedBody(eng *Engine, cur Cursor, spec Spec, tagSet TagSet, opts Options, depth int, indefinite bool) (Value, error) {
	atEnd := func() bool {
		if indefinite {
			p := cur.Peek(2)
			return len(p) == 2 && p[0] == 0x00 && p[1] == 0x00
		}
		return cur.AtEnd()
	}

	var result Value
	var err error
	switch {
	case spec != nil && (spec.TypeID() == TypeIDSequenceOf || spec.TypeID() == TypeIDSetOf):
		result, err = decodeOfBody(eng, cur, spec, tagSet, opts, depth, atEnd)
	case spec != nil && spec.NamedTypes().Len() > 0:
		result, err = decodeRecordBody(eng, cur, spec, tagSet, opts, depth, atEnd)
	default:
		result, err = decodeHeuristicBody(eng, cur, tagSet, opts, depth, atEnd)
	}
	if err != nil {
		return nil, err
	}

	if indefinite {
		cur.Seek(cur.Tell() + 2)
	} else if !atEnd() {
		return nil, newMalformedEncoding("SEQUENCE/SET: trailing octets after declared components")
	}
	return result, nil
}

// decodeOfBody decodes a homogeneous SEQUENCE OF/SET OF body: every
// element shares spec.ComponentType() (§4.6).
func decodeOfBody(eng *Engine, cur Cursor, spec Spec, tagSet TagSet, opts Options, depth int, atEnd func() bool) (Value, error) {
	container := valueFor[*SequenceOf](spec, tagSet, newSequenceOf)
	elem := spec.ComponentType()
	for !atEnd() {
		v, err := eng.decode(cur, elem, opts, depth+1)
		if err != nil {
			return nil, err
		}
		container.Elements = append(container.Elements, v)
	}
	return container, nil
}

// decodeRecordBody decodes a SEQUENCE/SET body guided by a named-type
// table (§4.6): positional matching for SEQUENCE, tag-based matching in
// any order for SET ([NamedTypes.TagMapUnique]).
func decodeRecordBody(eng *Engine, cur Cursor, spec Spec, tagSet TagSet, opts Options, depth int, atEnd func() bool) (Value, error) {
	container := valueFor[*Sequence](spec, tagSet, newSequence)
	nt := spec.NamedTypes()

	names := make([]string, nt.Len())
	for i := 0; i < nt.Len(); i++ {
		names[i] = nt.At(i).Name
	}
	container.names = names

	seen := make([]bool, nt.Len())
	pos := 0

	for !atEnd() {
		wireTag, err := peekTag(cur)
		if err != nil {
			return nil, err
		}
		wireTS := tagSetOf(wireTag)

		var idx int
		var ok bool
		if nt.TagMapUnique {
			idx, ok = nt.PositionByType(wireTS)
		} else {
			idx, ok = nt.PositionNearType(wireTS, pos)
		}

		if !ok {
			if !nt.TagMapUnique && pos < nt.Len() {
				ct := nt.At(pos)
				if ct.Optional || ct.Defaulted {
					if ct.Defaulted {
						container.SetComponentByPosition(pos, ct.Default)
						seen[pos] = true
					}
					pos++
					continue
				}
			}
			return nil, newSchemaMismatch(wireTag, "component does not match schema")
		}
		if seen[idx] {
			return nil, newSchemaMismatch(wireTag, "duplicate SET component")
		}

		ct := nt.At(idx)
		v, err := eng.decode(cur, ct.Spec, opts, depth+1)
		if err != nil {
			return nil, err
		}
		container.SetComponentByPosition(idx, v)
		seen[idx] = true
		if !nt.TagMapUnique {
			pos = idx + 1
		}
	}

	for i := 0; i < nt.Len(); i++ {
		if seen[i] {
			continue
		}
		ct := nt.At(i)
		if ct.Defaulted {
			container.SetComponentByPosition(i, ct.Default)
			continue
		}
		if ct.Optional {
			continue
		}
		return nil, newSchemaMismatch(Tag{}, "missing required component")
	}

	if err := resolveOpenTypes(eng, container, nt, opts, depth); err != nil {
		return nil, err
	}

	return container, nil
}

// resolveOpenTypes implements §4.6's open-type recursion: once every
// component of a SEQUENCE/SET has been decoded, each field marked
// OpenType has its governing sibling's value resolved to a concrete Spec
// (caller-supplied Options.OpenTypes taking precedence over the
// schema's own embedded table, per §6) and its stored raw octets
// re-decoded under that Spec (§9 "Open-type re-entry").
func resolveOpenTypes(eng *Engine, container *Sequence, nt NamedTypes, opts Options, depth int) error {
	if !nt.HasOpenTypes || (!opts.DecodeOpenTypes && len(opts.OpenTypes) == 0) {
		return nil
	}
	for i := 0; i < nt.Len(); i++ {
		ct := nt.At(i)
		if !ct.OpenType {
			continue
		}
		comp, ok := container.ComponentByPosition(i)
		if !ok {
			continue // optional and absent
		}
		governing, ok := container.ComponentByName(ct.OpenTypeGovernor)
		if !ok {
			continue
		}
		key := governingKey(governing)
		resolved, ok := opts.OpenTypes[key]
		if !ok && ct.OpenTypeMap != nil {
			resolved, ok = ct.OpenTypeMap[key]
		}
		if !ok {
			continue
		}
		newVal, err := reDecodeOpenTypeComponent(eng, comp, resolved, opts, depth)
		if err != nil {
			return err
		}
		container.SetComponentByPosition(i, newVal)
	}
	return nil
}

// reDecodeOpenTypeComponent re-decodes comp's stored raw octets under
// resolved. Open-type containers that are SEQUENCE OF/SET OF are
// recursed element-wise (§4.6), matching pyasn1's
// univ.SetOf.typeId/univ.SequenceOf.typeId special case.
func reDecodeOpenTypeComponent(eng *Engine, comp Value, resolved Spec, opts Options, depth int) (Value, error) {
	if seqOf, ok := comp.(*SequenceOf); ok {
		for i, el := range seqOf.Elements {
			nv, err := reDecodeOpenTypeComponent(eng, el, resolved, opts, depth)
			if err != nil {
				return nil, err
			}
			seqOf.Elements[i] = nv
		}
		return seqOf, nil
	}
	octetsHolder, ok := comp.(interface{ AsOctets() ([]byte, bool) })
	if !ok {
		return comp, nil
	}
	raw, ok := octetsHolder.AsOctets()
	if !ok {
		return comp, nil
	}
	return eng.decode(NewCursor(raw), resolved, opts, depth+1)
}

// governingKey reduces a decoded governing value to a comparable key for
// Options.OpenTypes / NamedType.OpenTypeMap lookup, since Go map keys must
// be concrete comparable values, unlike pyasn1's use of the ASN.1 value
// object itself as a dict key.
func governingKey(v Value) any {
	switch t := v.(type) {
	case *Integer:
		if n, ok := t.Int64(); ok {
			return n
		}
		return t.Value.String()
	case *ObjectIdentifier:
		if t.Dotted != nil {
			return t.Dotted.String()
		}
		return joinArcs(t.Arcs)
	case *OctetString:
		return string(t.Bytes)
	default:
		return v
	}
}

// decodeHeuristicBody decodes a constructed tag-16/17 TLV with no guiding
// [Spec] at all, each member decoded independently via the tag registry,
// then guesses the container's kind (§4.6 "Guess container kind
// heuristically"): more than one distinct inner tag set observed means a
// record (SEQUENCE/SET), matching pyasn1's default
// untagged-SequenceOrSequenceOfDecoder behavior of inspecting the decoded
// components' tag sets once decoding completes.
func decodeHeuristicBody(eng *Engine, cur Cursor, tagSet TagSet, opts Options, depth int, atEnd func() bool) (Value, error) {
	var elems []Value
	var distinct []TagSet
	for !atEnd() {
		v, err := eng.decode(cur, nil, opts, depth+1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)

		ts := v.TagSet()
		seen := false
		for _, d := range distinct {
			if d.Equal(ts) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, ts)
		}
	}

	if len(distinct) > 1 {
		return &Sequence{tagSet: tagSet, values: elems}, nil
	}
	return &SequenceOf{tagSet: tagSet, Elements: elems}, nil
}

// peekTag reads the tag at cur's current position and rewinds, so the
// caller can choose a component Spec before actually consuming it.
func peekTag(cur Cursor) (Tag, error) {
	mark := cur.Mark()
	t, _, err := readTag(cur)
	cur.Seek(mark)
	return t, err
}
