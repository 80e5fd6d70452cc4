package ber

import (
	"math"
	"math/big"
	"strconv"
)

// Real is a decoded ASN.1 REAL (§4.5). Exactly one of the three forms
// X.690 clause 8.5 defines produced it: binary (Mantissa/Base/Exponent
// set, IsSpecial/IsDecimal false), a special value (IsSpecial true,
// Special one of +Inf, -Inf, NaN or minus zero), or the ISO 6093
// character form (IsDecimal true, Decimal holding the literal digits).
type Real struct {
	tagSet TagSet

	IsSpecial bool
	Special   float64 // +Inf, -Inf, NaN, or minus zero (clause 8.5.9)

	IsDecimal bool
	Decimal   string // ISO 6093 NR1/NR2/NR3 digits, unparsed

	Mantissa *big.Int
	Base     int // 2, 8, or 16
	Exponent int
}

func newReal(ts TagSet) Value { return &Real{tagSet: ts} }

func (r *Real) TagSet() TagSet          { return r.tagSet }
func (r *Real) EffectiveTagSet() TagSet { return r.tagSet }
func (r *Real) IsInconsistent() bool    { return false }
func (r *Real) Clear()                  { *r = Real{tagSet: r.tagSet} }
func (r *Real) Clone() Value            { return &Real{tagSet: r.tagSet} }

// Float64 returns r as a float64 for every form. The decimal form's
// Decimal text is handed to strconv.ParseFloat unchanged, so ok is false
// for ISO 6093 text that is not also valid Go float syntax.
func (r *Real) Float64() (float64, bool) {
	switch {
	case r.IsSpecial:
		return r.Special, true
	case r.IsDecimal:
		f, err := strconv.ParseFloat(r.Decimal, 64)
		return f, err == nil
	default:
		if r.Mantissa == nil {
			return 0, false
		}
		m := new(big.Float).SetInt(r.Mantissa)
		base := new(big.Float).SetInt64(int64(r.Base))
		// m * base^exponent, computed via exp(exponent * ln(base)) would
		// need math/big's missing transcendental support, so for the
		// common case of base 2 (by far BER's most frequent encoding)
		// use math.Ldexp directly; base 8/16 fall back to repeated
		// multiplication, which is adequate for the magnitudes REAL
		// actually carries.
		if r.Base == 2 {
			f64, _ := m.Float64()
			return math.Ldexp(f64, r.Exponent), true
		}
		scaled := new(big.Float).Copy(m)
		if r.Exponent >= 0 {
			for i := 0; i < r.Exponent; i++ {
				scaled.Mul(scaled, base)
			}
		} else {
			for i := 0; i < -r.Exponent; i++ {
				scaled.Quo(scaled, base)
			}
		}
		f64, _ := scaled.Float64()
		return f64, true
	}
}

type realDecoder struct{}

func (realDecoder) decodeDefinite(cur Cursor, spec Spec, tagSet TagSet, length int, eng *Engine, opts Options, depth int) (Value, error) {
	v := valueFor[*Real](spec, tagSet, newReal)
	if length == 0 {
		// The empty encoding denotes the value zero (clause 8.5.2).
		v.Mantissa = big.NewInt(0)
		v.Base = 2
		return v, nil
	}

	buf := make([]byte, length)
	if err := readFull(cur, buf, "REAL content"); err != nil {
		return nil, err
	}

	first := buf[0]
	switch {
	case first&0x80 != 0: // binary form, clause 8.5.7
		return decodeBinaryReal(v, buf)
	case first&0xc0 == 0x40: // special real value, clause 8.5.8/8.5.9
		return decodeSpecialReal(v, buf)
	default: // decimal (character) form, clause 8.5.8 bit pattern 00
		v.IsDecimal = true
		v.Decimal = string(buf[1:])
		return v, nil
	}
}

func (realDecoder) decodeIndefinite(cur Cursor, spec Spec, tagSet TagSet, eng *Engine, opts Options, depth int) (Value, error) {
	return nil, newMalformedEncoding("REAL cannot use indefinite length")
}

func decodeSpecialReal(v *Real, buf []byte) (Value, error) {
	if len(buf) != 1 {
		return nil, newMalformedEncoding("REAL special value must be a single octet")
	}
	v.IsSpecial = true
	switch buf[0] {
	case 0x40:
		v.Special = math.Inf(1)
	case 0x41:
		v.Special = math.Inf(-1)
	case 0x42:
		v.Special = math.NaN()
	case 0x43:
		v.Special = math.Copysign(0, -1) // minus zero, clause 8.5.9: "-0"
	default:
		return nil, newMalformedEncoding("REAL: unrecognized special value octet")
	}
	return v, nil
}

func decodeBinaryReal(v *Real, buf []byte) (Value, error) {
	first := buf[0]
	rest := buf[1:]

	switch (first >> 4) & 0x3 {
	case 0:
		v.Base = 2
	case 1:
		v.Base = 8
	case 2:
		v.Base = 16
	default:
		return nil, newMalformedEncoding("REAL: reserved base bits in binary encoding")
	}

	scale := int((first >> 2) & 0x3)

	var expLen int
	switch first & 0x3 {
	case 0:
		expLen = 1
	case 1:
		expLen = 2
	case 2:
		expLen = 3
	default:
		if len(rest) == 0 {
			return nil, newMalformedEncoding("REAL: missing exponent length octet")
		}
		expLen = int(rest[0])
		rest = rest[1:]
	}
	if len(rest) < expLen {
		return nil, newMalformedEncoding("REAL: exponent truncated")
	}
	exponent := decodeTwosComplement(rest[:expLen])
	rest = rest[expLen:]
	if len(rest) == 0 {
		return nil, newMalformedEncoding("REAL: missing mantissa octets")
	}

	mantissa := new(big.Int).SetBytes(rest)
	mantissa.Lsh(mantissa, uint(scale))
	if first&0x40 != 0 {
		mantissa.Neg(mantissa)
	}

	v.Mantissa = mantissa
	v.Exponent = int(exponent.Int64())
	return v, nil
}
