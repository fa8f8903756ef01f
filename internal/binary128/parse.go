package binary128

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
)

var (
	// ErrSyntax reports text that is not a decimal floating-point literal.
	ErrSyntax = errors.New("invalid binary128 literal")
	// ErrRange reports a finite literal too large for binary128; the
	// accompanying value is the correctly signed infinity.
	ErrRange = errors.New("value out of binary128 range")
)

// Decimal exponents beyond these bounds round to infinity or zero no
// matter how many digits precede them, so the ratio is never built.
const (
	maxDecimalExp = 4933 + 1
	minDecimalExp = -4966 - 1
)

// Parse converts a C-style decimal floating-point literal into the nearest
// binary128 value, ties to even. It accepts an optional sign, digits with an
// optional fraction, an optional e/E exponent, and the words inf, infinity
// and nan in any case. Underscores between digits are ignored.
func Parse(s string) (Float, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Float{}, syntaxError(orig)
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	switch strings.ToLower(s) {
	case "inf", "infinity":
		if neg {
			return Inf(-1), nil
		}
		return Inf(1), nil
	case "nan":
		if neg {
			return NaN().Neg(), nil
		}
		return NaN(), nil
	}
	if strings.IndexByte(s, '_') >= 0 {
		s = strings.ReplaceAll(s, "_", "")
	}

	digits, fracDigits, exp10, ok := scanDecimal(s)
	if !ok {
		return Float{}, syntaxError(orig)
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return signed(Float{}, neg), nil
	}

	// Magnitude is in [10^(lead-1), 10^lead).
	lead := exp10 - fracDigits + len(digits)
	switch {
	case lead > maxDecimalExp:
		return signed(Inf(1), neg), rangeError(orig)
	case lead < minDecimalExp:
		return signed(Float{}, neg), nil
	}

	num := natFromDecimal(digits)
	den := nat{1}
	if k := exp10 - fracDigits; k >= 0 {
		num = natMul(num, natPow(10, k))
	} else {
		den = natPow(10, -k)
	}
	f, overflow := roundRatio(num, den)
	if overflow {
		return signed(Inf(1), neg), rangeError(orig)
	}
	return signed(f, neg), nil
}

// ParseLiteral is Parse for C source literals: one trailing L, l, Q or q
// suffix is accepted and ignored.
func ParseLiteral(s string) (Float, error) {
	t := strings.TrimSpace(s)
	if n := len(t); n > 1 {
		switch t[n-1] {
		case 'L', 'l', 'Q', 'q':
			if c := t[n-2]; c >= '0' && c <= '9' || c == '.' {
				t = t[:n-1]
			}
		}
	}
	f, err := Parse(t)
	if err != nil && errors.Is(err, ErrSyntax) {
		return Float{}, syntaxError(s)
	}
	return f, err
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Float {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func syntaxError(s string) error { return fmt.Errorf("%w: %q", ErrSyntax, s) }

func rangeError(s string) error { return fmt.Errorf("%w: %q", ErrRange, s) }

func signed(f Float, neg bool) Float {
	if neg {
		return f.Neg()
	}
	return f
}

// scanDecimal splits s into its digit string (integer and fraction digits
// concatenated), the number of fraction digits, and the decimal exponent.
func scanDecimal(s string) (digits string, fracDigits, exp10 int, ok bool) {
	i := 0
	var b strings.Builder
	b.Grow(len(s))
	for i < len(s) && isDigit(s[i]) {
		b.WriteByte(s[i])
		i++
	}
	intDigits := b.Len()
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			b.WriteByte(s[i])
			fracDigits++
			i++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return "", 0, 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return "", 0, 0, false
		}
		for i < len(s) && isDigit(s[i]) {
			// Saturate: anything this large is out of range either way.
			if exp10 < 1_000_000 {
				exp10 = exp10*10 + int(s[i]-'0')
			}
			i++
		}
		if expNeg {
			exp10 = -exp10
		}
	}
	if i != len(s) {
		return "", 0, 0, false
	}
	return b.String(), fracDigits, exp10, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func natFromDecimal(digits string) nat {
	var out nat
	// Nine digits at a time keep the limb multiplications few.
	for len(digits) > 0 {
		n := min(9, len(digits))
		var chunk uint32
		for _, c := range []byte(digits[:n]) {
			chunk = chunk*10 + uint32(c-'0')
		}
		out = natAddSmall(natMulSmall(out, pow10u32[n]), chunk)
		digits = digits[n:]
	}
	return out
}

var pow10u32 = [...]uint32{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// roundRatio rounds num/den (both nonzero) to the nearest binary128,
// handling the subnormal range, and reports overflow past the largest
// finite value.
func roundRatio(num, den nat) (Float, bool) {
	e0 := floorLog2Ratio(num, den)
	if e0 > MaxExp {
		return Float{}, true
	}
	// Exponent of the last significand bit; fixed at the bottom of the
	// normal range so subnormals lose precision instead of range.
	lsb := max(e0, MinExp) - FractionBits
	scaledNum, scaledDen := num, den
	if lsb <= 0 {
		scaledNum = natShl(num, -lsb)
	} else {
		scaledDen = natShl(den, lsb)
	}
	q, r := natDivMod(scaledNum, scaledDen)
	q = roundQuotientToEven(q, r, scaledDen)
	if q.bitLen() > SignificandBits {
		// Rounded up to the next power of two.
		q = natShr(q, 1)
		lsb++
	}
	return encode(q, lsb)
}

// encode packs q*2^lsb, where q has at most 113 bits and lsb is at least
// MinExp-FractionBits. It reports overflow when the value is past MaxExp.
func encode(q nat, lsb int) (Float, bool) {
	if q.isZero() {
		return Float{}, false
	}
	hi, lo := q.words()
	if q.bitLen() < SignificandBits {
		// Subnormal: exponent field stays zero.
		return Float{Hi: hi, Lo: lo}, false
	}
	be := lsb + FractionBits + Bias
	if be >= expMask {
		return Float{}, true
	}
	ube, err := safecast.Conv[uint64](be)
	if err != nil {
		return Float{}, true
	}
	return Float{Hi: ube<<(FractionBits-64) | hi&fracHigh, Lo: lo}, false
}

// floorLog2Ratio returns e such that 2^e <= num/den < 2^(e+1).
func floorLog2Ratio(num, den nat) int {
	if num.cmp(den) >= 0 {
		e := num.bitLen() - den.bitLen()
		if num.cmp(natShl(den, e)) < 0 {
			e--
		}
		return e
	}
	s := den.bitLen() - num.bitLen()
	if natShl(num, s).cmp(den) < 0 {
		s++
	}
	return -s
}

// roundQuotientToEven rounds q = floor(n/d) with remainder r to nearest,
// ties to even.
func roundQuotientToEven(q, r, d nat) nat {
	if r.isZero() {
		return q
	}
	switch natShl(r, 1).cmp(d) {
	case -1:
		return q
	case 1:
		return natAddSmall(q, 1)
	default:
		if q.isOdd() {
			return natAddSmall(q, 1)
		}
		return q
	}
}
