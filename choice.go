package ber

// Choice is a decoded ASN.1 CHOICE (§4.7). It holds whichever alternative
// the wire tag selected; CHOICE itself carries no tag ([Value.TagSet]
// returns the zero TagSet), so [Value.EffectiveTagSet] transparently
// delegates to the selected alternative, unwrapping any nested CHOICE the
// same way.
type Choice struct {
	Selected Value
}

func (c *Choice) TagSet() TagSet { return TagSet{} }

func (c *Choice) EffectiveTagSet() TagSet {
	if c.Selected == nil {
		return TagSet{}
	}
	return c.Selected.EffectiveTagSet()
}

func (c *Choice) IsInconsistent() bool { return c.Selected == nil }
func (c *Choice) Clear()               { c.Selected = nil }
func (c *Choice) Clone() Value         { return &Choice{} }

// choiceDecoder backs every CHOICE [Spec] (§4.7). A CHOICE has no tag of
// its own, so unlike every other decoder in this package it is reached
// purely through [Registry.byType] with [TypeIDChoice], never from the
// tag registry.
//
// Resolving an alternative needs to run the engine's ordinary
// IMPLICIT/EXPLICIT dispatch again — an alternative may itself be
// EXPLICIT-tagged — so rather than duplicating that logic, the decoder
// rewinds the cursor to the start of this TLV (recorded in
// Options.tlvStart by the engine) and re-enters [Engine.decode] with the
// matched alternative's Spec.
type choiceDecoder struct{}

func (choiceDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	return decodeChoiceAlternative(cur, spec, tagSet, eng, opts, depth)
}

func (choiceDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return decodeChoiceAlternative(cur, spec, tagSet, eng, opts, depth)
}

func decodeChoiceAlternative(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	tagMap := spec.ComponentTagMap()
	altSpec, ok := tagMap.Lookup(tagSet)
	if !ok {
		return nil, newSchemaMismatch(tagSet.Base(), "no CHOICE alternative matches this tag")
	}

	cur.Seek(opts.tlvStart)
	selected, err := eng.decode(cur, altSpec, opts, depth)
	if err != nil {
		return nil, err
	}
	return &Choice{Selected: selected}, nil
}
