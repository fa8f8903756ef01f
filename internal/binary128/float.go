// Package binary128 holds the storage layout of an IEEE-754 binary128 value
// and a pure-Go codec between that layout and decimal text.
//
// The codec never does arithmetic beyond exact scaling: decimal input is
// turned into an exact ratio of integers and rounded once (to nearest, ties
// to even) into the 113-bit significand, and output expands the dyadic value
// M*2^e into its exact decimal digits before rounding to the requested
// precision. This is what C compilers do for suffixed literals and what
// printf does for %Lf/%Qf, so values produced here can be compared bit for
// bit with values produced by the platform's quad runtime.
package binary128

import (
	"math"
	"math/bits"
)

// Layout constants of the binary128 interchange format.
const (
	SignificandBits = 113 // including the implicit leading bit
	FractionBits    = SignificandBits - 1
	ExponentBits    = 15
	Bias            = 1<<(ExponentBits-1) - 1 // 16383
	MaxExp          = Bias                    // largest unbiased exponent of a finite value
	MinExp          = 1 - Bias                // smallest unbiased exponent of a normal value

	expMask  = 1<<ExponentBits - 1
	fracHigh = 1<<(FractionBits-64) - 1 // fraction bits held in Hi
	signBit  = 1 << 63
)

// Float is the 16-byte storage of a binary128 value, low word first. On the
// little-endian targets this module supports, the in-memory layout matches
// C's __float128 and an IEEE-128 long double, so values cross the cgo
// boundary with a plain memcpy.
type Float struct {
	Lo uint64
	Hi uint64
}

// Complex is the storage of a C complex quad: real part then imaginary part.
type Complex struct {
	Re Float
	Im Float
}

// FromBits builds a Float from its raw words.
func FromBits(hi, lo uint64) Float { return Float{Lo: lo, Hi: hi} }

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Float {
	f := Float{Hi: expMask << (FractionBits - 64)}
	if sign < 0 {
		f.Hi |= signBit
	}
	return f
}

// NaN returns the default quiet NaN.
func NaN() Float {
	return Float{Hi: expMask<<(FractionBits-64) | 1<<(FractionBits-65)}
}

// Signbit reports whether the sign bit is set.
func (f Float) Signbit() bool { return f.Hi&signBit != 0 }

func (f Float) biasedExp() int { return int(f.Hi>>(FractionBits-64)) & expMask }

func (f Float) fraction() (hi, lo uint64) { return f.Hi & fracHigh, f.Lo }

// IsNaN reports whether f is a NaN.
func (f Float) IsNaN() bool {
	hi, lo := f.fraction()
	return f.biasedExp() == expMask && (hi|lo) != 0
}

// IsInf reports whether f is an infinity, according to sign: sign > 0
// matches +Inf, sign < 0 matches -Inf, sign == 0 matches either.
func (f Float) IsInf(sign int) bool {
	hi, lo := f.fraction()
	if f.biasedExp() != expMask || (hi|lo) != 0 {
		return false
	}
	return sign == 0 || (sign > 0) == !f.Signbit()
}

// IsFinite reports whether f is neither an infinity nor a NaN.
func (f Float) IsFinite() bool { return f.biasedExp() != expMask }

// IsSignaling reports whether f is a NaN with the quiet bit clear.
func (f Float) IsSignaling() bool {
	return f.IsNaN() && f.Hi&(1<<(FractionBits-65)) == 0
}

// IsZero reports whether f is +0 or -0.
func (f Float) IsZero() bool { return f.Hi&^signBit == 0 && f.Lo == 0 }

// IsSubnormal reports whether f is a nonzero value below the normal range.
func (f Float) IsSubnormal() bool { return f.biasedExp() == 0 && !f.IsZero() }

// Neg flips the sign bit.
func (f Float) Neg() Float {
	f.Hi ^= signBit
	return f
}

// Abs clears the sign bit.
func (f Float) Abs() Float {
	f.Hi &^= signBit
	return f
}

// Identical reports bit-for-bit equality. Unlike IEEE comparison it treats
// a NaN as identical to itself and distinguishes +0 from -0.
func (f Float) Identical(g Float) bool { return f == g }

// Identical reports bit-for-bit equality of both parts.
func (z Complex) Identical(w Complex) bool { return z == w }

// decompose returns f = (-1)^neg * mant * 2^exp for finite f. Zero yields an
// empty mantissa.
func (f Float) decompose() (neg bool, mant nat, exp int) {
	neg = f.Signbit()
	hi, lo := f.fraction()
	be := f.biasedExp()
	if be == 0 {
		return neg, natFromWords(hi, lo), MinExp - FractionBits
	}
	hi |= 1 << (FractionBits - 64)
	return neg, natFromWords(hi, lo), be - Bias - FractionBits
}

// FromFloat64 converts x exactly; every float64 is representable.
func FromFloat64(x float64) Float {
	b := math.Float64bits(x)
	sign := b & signBit
	e := int(b>>52) & 0x7ff
	frac := b & (1<<52 - 1)
	switch {
	case e == 0x7ff && frac == 0:
		return Float{Hi: sign | expMask<<(FractionBits-64)}
	case e == 0x7ff:
		// Keep the payload's top bits, including the quiet bit.
		return Float{Hi: sign | expMask<<(FractionBits-64) | frac>>4, Lo: frac << 60}
	case e == 0 && frac == 0:
		return Float{Hi: sign}
	case e == 0:
		// Subnormal double: normalise into the wider exponent range.
		shift := bits.LeadingZeros64(frac) - 11
		frac = (frac << shift) & (1<<52 - 1)
		e = 1 - shift
	}
	be := uint64(e - 1023 + Bias) //nolint:gosec // G115: always within 1..32766.
	return Float{Hi: sign | be<<(FractionBits-64) | frac>>4, Lo: frac << 60}
}

// Float64 rounds f to the nearest float64, ties to even.
func (f Float) Float64() float64 {
	switch {
	case f.IsNaN():
		return math.NaN()
	case f.IsInf(0):
		if f.Signbit() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case f.IsZero():
		return math.Copysign(0, signOf(f))
	}
	neg, mant, exp := f.decompose()
	top := mant.bitLen() - 1 + exp // unbiased exponent of the leading bit
	keep := 53
	if top < -1022 {
		keep -= -1022 - top
	}
	if keep < 0 {
		return math.Copysign(0, signOf(f))
	}
	drop := mant.bitLen() - keep
	_, v := shiftRightRoundEven(mant, drop).words()
	out := math.Ldexp(float64(v), exp+drop)
	if neg {
		out = -out
	}
	return out
}

func signOf(f Float) float64 {
	if f.Signbit() {
		return -1
	}
	return 1
}

// shiftRightRoundEven returns m / 2^n rounded to nearest, ties to even.
// A negative n shifts left.
func shiftRightRoundEven(m nat, n int) nat {
	if n <= 0 {
		return natShl(m, -n)
	}
	half := m.bit(n - 1)
	sticky := m.anyBelow(n - 1)
	q := natShr(m, n)
	if half && (sticky || q.isOdd()) {
		q = natAddSmall(q, 1)
	}
	return q
}
