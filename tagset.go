package ber

// TagSet is an ordered sequence of [Tag] values representing the tags
// accumulated while decoding a chain of EXPLICIT wrappers around a base
// type (§3). The [Engine] gives every TLV it reads a one-tag TagSet built
// from that TLV's own wire tag; a value decoded inside an EXPLICIT wrapper
// carries only its own tag, and the wrapper's tag is not prepended.
// Multi-tag TagSets come from a [Spec], where they name EXPLICIT wrappers.
//
// TagSet is a value type: Prepend returns a new TagSet and never mutates
// the receiver, so TagSets can be freely shared between recursive decode
// calls without aliasing surprises.
type TagSet struct {
	tags []Tag
}

// NewTagSet returns a TagSet over the given tags, outermost first.
func NewTagSet(tags ...Tag) TagSet {
	cp := make([]Tag, len(tags))
	copy(cp, tags)
	return TagSet{tags: cp}
}

// Len returns the number of tags accumulated in s.
func (s TagSet) Len() int { return len(s.tags) }

// Base returns the innermost (base) tag of s, i.e. the tag of the
// underlying, unwrapped type. Base panics if s is empty.
func (s TagSet) Base() Tag { return s.tags[len(s.tags)-1] }

// First returns the outermost tag of s — the tag actually observed first
// on the wire. First panics if s is empty.
func (s TagSet) First() Tag { return s.tags[0] }

// At returns the tag at position i, where 0 is the outermost tag.
func (s TagSet) At(i int) Tag { return s.tags[i] }

// Prepend returns a new TagSet consisting of t followed by every tag in s.
// This models decoding one more EXPLICIT wrapper around the value s
// already describes.
func (s TagSet) Prepend(t Tag) TagSet {
	out := make([]Tag, 0, len(s.tags)+1)
	out = append(out, t)
	out = append(out, s.tags...)
	return TagSet{tags: out}
}

// Rest returns s with its outermost tag removed. Rest panics if s is empty.
func (s TagSet) Rest() TagSet {
	out := make([]Tag, len(s.tags)-1)
	copy(out, s.tags[1:])
	return TagSet{tags: out}
}

// Equal reports whether s and o contain the same tags in the same order.
func (s TagSet) Equal(o TagSet) bool {
	if len(s.tags) != len(o.tags) {
		return false
	}
	for i, t := range s.tags {
		if t != o.tags[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether s carries no tags at all.
func (s TagSet) IsZero() bool { return len(s.tags) == 0 }

// String renders s as e.g. "[UNIVERSAL 16]" or, for nested EXPLICIT tags,
// "[0] [UNIVERSAL 2]" (outermost first).
func (s TagSet) String() string {
	if len(s.tags) == 0 {
		return "<empty tagset>"
	}
	out := s.tags[0].String()
	for _, t := range s.tags[1:] {
		out += " " + t.String()
	}
	return out
}

// tagSetOf is a convenience constructor used throughout the decoders to
// build a one-tag TagSet around a freshly decoded wire tag.
func tagSetOf(t Tag) TagSet { return NewTagSet(t) }
