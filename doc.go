// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements a decoder for ASN.1 values encoded per the Basic
// Encoding Rules (and its CER/DER refinements), as defined by [Rec. ITU-T
// X.690].
//
// # Scope
//
// This package is the decoding core only: a streaming tag/length/value
// parser (see [Cursor]), a dispatcher that picks the right value decoder
// either from a caller-supplied [Spec] or from the wire tag alone (see
// [Engine]), and the value decoders themselves for every ASN.1 universal
// type. It does not implement the ASN.1 type system (named-type tables,
// constraints, schema objects) itself — that is the job of a [Spec]
// implementation such as the one in the berdec.dev/ber/schema package.
// Nor does it encode, canonicalize DER, or validate constraints; input may
// be any valid BER, and a complete top-level value is always materialized
// in memory rather than streamed out incrementally.
//
// # Decoding
//
// An [Engine] is constructed once (it caches interned tags) and reused
// across calls. Each call to [Engine.Decode] reads exactly one top-level
// TLV from a [Cursor] and returns a [Value]:
//
//	eng := ber.NewEngine(ber.DefaultRegistry())
//	cur := ber.NewCursor(data)
//	val, err := eng.Decode(cur, nil, ber.Options{})
//
// Passing a non-nil [Spec] steers decoding: IMPLICIT and EXPLICIT tagging,
// CHOICE alternative selection, and SEQUENCE/SET named-component matching
// all require one. Decoding without a Spec falls back to the universal
// tag registry and best-effort SEQUENCE/SEQUENCE-OF heuristics (see
// [Engine.Decode]).
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package ber
