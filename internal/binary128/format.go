package binary128

import "strings"

// DecimalDigits is the number of significant decimal digits that always
// round-trip a binary128 value through text.
const DecimalDigits = 36

// String formats f with %.36g semantics.
func (f Float) String() string { return f.Text('g', DecimalDigits) }

// Text formats f the way C's printf formats a quad with the same verb and
// precision: 'f' (fixed), 'e'/'E' (exponent), 'g'/'G' (shortest of the two,
// trailing zeros removed). The exact decimal value is rounded once, to
// nearest with ties to even. A negative prec means 6 for 'e' and 'f' and
// DecimalDigits for 'g'. An unknown verb yields "%" followed by the verb.
func (f Float) Text(verb byte, prec int) string {
	upper := verb == 'E' || verb == 'F' || verb == 'G'
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
	default:
		return "%" + string(verb)
	}
	sign := ""
	if f.Signbit() {
		sign = "-"
	}
	switch {
	case f.IsNaN():
		return sign + caseOf("nan", upper)
	case f.IsInf(0):
		return sign + caseOf("inf", upper)
	}
	if prec < 0 {
		prec = 6
		if verb == 'g' || verb == 'G' {
			prec = DecimalDigits
		}
	}
	intDigits, fracDigits := f.exactDecimal()
	var body string
	switch verb {
	case 'f', 'F':
		body = fixed(intDigits, fracDigits, prec)
	case 'e', 'E':
		body = scientific(intDigits, fracDigits, prec, upper)
	default:
		body = general(intDigits, fracDigits, prec, upper)
	}
	return sign + body
}

func caseOf(s string, upper bool) string {
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// exactDecimal returns the integer and fraction digits of |f| with no
// rounding at all. A dyadic value M/2^n has exactly n fraction digits:
// M/2^n = M*5^n/10^n.
func (f Float) exactDecimal() (intDigits, fracDigits string) {
	_, mant, exp := f.decompose()
	if mant.isZero() {
		return "0", ""
	}
	if exp >= 0 {
		return natShl(mant, exp).decimal(), ""
	}
	n := -exp
	if tz := mant.trailingZeros(); tz > 0 {
		// Shorten the expansion by cancelling common powers of two.
		cut := min(tz, n)
		mant = natShr(mant, cut)
		n -= cut
		if n == 0 {
			return mant.decimal(), ""
		}
	}
	intPart := natShr(mant, n)
	frac := natMul(mant.lowBits(n), natPow(5, n)).decimal()
	if frac == "0" {
		return intPart.decimal(), ""
	}
	if len(frac) < n {
		frac = strings.Repeat("0", n-len(frac)) + frac
	}
	return intPart.decimal(), strings.TrimRight(frac, "0")
}

// roundDigits rounds the digit string keep+rest to len(keep) digits, ties to
// even, and reports whether a carry grew the result by one digit.
func roundDigits(keep, rest string) (string, bool) {
	if !roundsUp(keep, rest) {
		return keep, false
	}
	b := []byte(keep)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return "1" + string(b), true
}

func roundsUp(keep, rest string) bool {
	if rest == "" {
		return false
	}
	switch {
	case rest[0] > '5':
		return true
	case rest[0] < '5':
		return false
	}
	if strings.TrimRight(rest[1:], "0") != "" {
		return true
	}
	if keep == "" {
		return false
	}
	return (keep[len(keep)-1]-'0')%2 == 1
}

func fixed(intDigits, fracDigits string, prec int) string {
	if len(fracDigits) < prec {
		fracDigits += strings.Repeat("0", prec-len(fracDigits))
	}
	all := intDigits + fracDigits
	cut := len(intDigits) + prec
	rounded, _ := roundDigits(all[:cut], all[cut:])
	ip, fp := rounded[:len(rounded)-prec], rounded[len(rounded)-prec:]
	if prec == 0 {
		return ip
	}
	return ip + "." + fp
}

// significand returns the significant digits (leading zeros stripped) and
// the decimal exponent of the first one.
func significand(intDigits, fracDigits string) (string, int) {
	all := intDigits + fracDigits
	p := strings.IndexFunc(all, func(r rune) bool { return r != '0' })
	if p < 0 {
		return "", 0
	}
	return all[p:], len(intDigits) - 1 - p
}

func roundSignificant(sig string, exp, n int) (string, int) {
	if len(sig) < n {
		sig += strings.Repeat("0", n-len(sig))
	}
	rounded, carried := roundDigits(sig[:n], sig[n:])
	if carried {
		rounded = rounded[:n]
		exp++
	}
	return rounded, exp
}

func scientific(intDigits, fracDigits string, prec int, upper bool) string {
	sig, exp := significand(intDigits, fracDigits)
	if sig == "" {
		sig, exp = "0", 0
	}
	digits, exp := roundSignificant(sig, exp, prec+1)
	return mantissaText(digits) + exponentText(exp, upper)
}

func mantissaText(digits string) string {
	if len(digits) == 1 {
		return digits
	}
	return digits[:1] + "." + digits[1:]
}

func exponentText(exp int, upper bool) string {
	var b strings.Builder
	if upper {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}
	if exp < 10 {
		b.WriteByte('0')
	}
	b.WriteString(itoa(exp))
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// general follows C's %g: P significant digits, fixed notation when the
// rounded exponent X satisfies P > X >= -4, trailing zeros removed.
func general(intDigits, fracDigits string, prec int, upper bool) string {
	if prec == 0 {
		prec = 1
	}
	sig, exp := significand(intDigits, fracDigits)
	if sig == "" {
		return "0"
	}
	_, x := roundSignificant(sig, exp, prec)
	var out string
	if prec > x && x >= -4 {
		out = fixed(intDigits, fracDigits, prec-1-x)
	} else {
		out = scientific(intDigits, fracDigits, prec-1, upper)
	}
	return trimZeros(out)
}

func trimZeros(s string) string {
	mant, exp := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp = s[:i], s[i:]
	}
	if strings.IndexByte(mant, '.') >= 0 {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimSuffix(mant, ".")
	}
	return mant + exp
}
