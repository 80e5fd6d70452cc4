package ber

// trySubstrateFunc invokes opts.SubstrateFunc, when set, as a
// short-circuit for constructed-fragment collection (§6, mirroring
// pyasn1's substrateFun): instead of decoding a constructed fragment's
// segments one at a time, the caller hands the hook the prototype value
// it would otherwise have filled in and the raw substrate octets, and
// uses whatever Value the hook returns in place of the normal
// segment-by-segment assembly. ok is false when no hook is installed or
// the hook's result isn't assignable to T, in which case the caller
// should fall back to its usual assembly.
func trySubstrateFunc[T Value](opts Options, proto T, substrate []byte) (T, bool) {
	var zero T
	if opts.SubstrateFunc == nil {
		return zero, false
	}
	v, ok := opts.SubstrateFunc(proto, substrate, len(substrate)).(T)
	return v, ok
}
