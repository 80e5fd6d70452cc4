package ber

// DecodeAll is the package's public convenience entry point (§6 "Public
// entry point"): it repeatedly drives an [Engine] over cur, yielding one
// [Value] per top-level TLV until cur is exhausted. Unlike [Engine.Decode],
// which reads exactly one TLV and leaves interpreting "is there another
// value after this one" to its caller, DecodeAll is what an application
// normally reaches for when a substrate carries a concatenated sequence of
// BER-encoded values (a certificate chain, a sequence of log records, and
// so on) — mirroring pyasn1's decode.py StreamingDecoder/decode wrapper,
// layered strictly on top of the Engine it's given rather than folded
// into it.
//
// spec is applied to every value decoded; pass nil to fall back to the
// tag registry for each one. DecodeAll stops and returns a non-nil error
// as soon as any call to eng.Decode fails, discarding whatever values
// were already collected.
func DecodeAll(eng *Engine, cur Cursor, spec Spec, opts Options) ([]Value, error) {
	var values []Value
	for !cur.AtEnd() {
		v, err := eng.Decode(cur, spec, opts)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Seq returns an iterator (usable with a range-over-func "for v := range")
// that yields successive top-level values from cur, stopping at the first
// error. Callers that need the error itself should use [DecodeAll]
// instead; Seq exists for call sites that only want to range over values,
// in the style Go 1.23's range-over-func iterators favor.
func Seq(eng *Engine, cur Cursor, spec Spec, opts Options) func(yield func(Value) bool) {
	return func(yield func(Value) bool) {
		for !cur.AtEnd() {
			v, err := eng.Decode(cur, spec, opts)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
