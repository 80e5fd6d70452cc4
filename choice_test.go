package ber

import "testing"

// choiceSpec is a minimal CHOICE [Spec]: tagless, selecting an alternative
// purely from its ComponentTagMap.
type choiceSpec struct {
	tagMap TagMap
}

func (s *choiceSpec) TagSet() TagSet          { return TagSet{} }
func (s *choiceSpec) TypeID() TypeID          { return TypeIDChoice }
func (s *choiceSpec) ComponentType() Spec     { return nil }
func (s *choiceSpec) ComponentTagMap() TagMap { return s.tagMap }
func (s *choiceSpec) NamedTypes() NamedTypes  { return NamedTypes{} }
func (s *choiceSpec) Clone() Value            { return new(Choice) }

func integerAlternative() Spec {
	ts := NewTagSet(univ(TagInteger, Primitive))
	return &fakeSpec{tagSet: ts, clone: func() Value { return NewInteger(ts) }}
}

func booleanAlternative() Spec {
	ts := NewTagSet(univ(TagBoolean, Primitive))
	return &fakeSpec{tagSet: ts, clone: func() Value { return NewBoolean(ts) }}
}

func TestChoice_SelectsMatchingAlternative(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	spec := &choiceSpec{
		tagMap: NewTagMap(
			[]TagSet{NewTagSet(univ(TagInteger, Primitive)), NewTagSet(univ(TagBoolean, Primitive))},
			[]Spec{integerAlternative(), booleanAlternative()},
		),
	}

	v := mustDecode(t, eng, []byte{0x02, 0x01, 0x07}, spec, Options{})
	c, ok := v.(*Choice)
	if !ok {
		t.Fatalf("got %T, want *Choice", v)
	}
	n, ok := c.Selected.(*Integer)
	if !ok {
		t.Fatalf("Selected = %T, want *Integer", c.Selected)
	}
	if got, _ := n.Int64(); got != 7 {
		t.Errorf("Int64() = %d, want 7", got)
	}
	if c.IsInconsistent() {
		t.Errorf("IsInconsistent() = true, want false")
	}
	if got := c.EffectiveTagSet().Base().Number; got != TagInteger {
		t.Errorf("EffectiveTagSet().Base().Number = %d, want %d", got, TagInteger)
	}
}

func TestChoice_NoMatchingAlternative(t *testing.T) {
	eng := NewEngine(DefaultRegistry())
	spec := &choiceSpec{
		tagMap: NewTagMap([]TagSet{NewTagSet(univ(TagInteger, Primitive))}, []Spec{integerAlternative()}),
	}
	_, err := eng.Decode(NewCursor([]byte{0x01, 0x01, 0xFF}), spec, Options{})
	if _, ok := err.(*SchemaMismatchError); !ok {
		t.Fatalf("error = %T, want *SchemaMismatchError", err)
	}
}

func TestChoice_EmptySelectionIsInconsistent(t *testing.T) {
	c := new(Choice)
	if !c.IsInconsistent() {
		t.Errorf("IsInconsistent() = false, want true for an empty Choice")
	}
	if !c.EffectiveTagSet().IsZero() {
		t.Errorf("EffectiveTagSet() = %v, want zero TagSet", c.EffectiveTagSet())
	}
}
