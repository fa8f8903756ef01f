package quad

import (
	"fmt"
	"io"
	"strings"

	"fp128/internal/binary128"
)

// Float is a binary128 value in the layout C uses for the selected quad
// type.
type Float binary128.Float

// Complex is a complex quad: real part, then imaginary part.
type Complex binary128.Complex

// FromBits builds a Float from the high and low 64 bits of its encoding.
func FromBits(hi, lo uint64) Float { return Float(binary128.FromBits(hi, lo)) }

// Bits returns the high and low 64 bits of the encoding.
func (x Float) Bits() (hi, lo uint64) { return x.Hi, x.Lo }

// FromFloat64 converts v exactly.
func FromFloat64(v float64) Float { return Float(binary128.FromFloat64(v)) }

// Float64 rounds x to the nearest float64.
func (x Float) Float64() float64 { return binary128.Float(x).Float64() }

func (x Float) IsNaN() bool { return binary128.Float(x).IsNaN() }

// IsInf reports whether x is an infinity of the given sign; sign 0 matches
// either.
func (x Float) IsInf(sign int) bool { return binary128.Float(x).IsInf(sign) }

// IsFinite reports whether x is neither an infinity nor a NaN.
func (x Float) IsFinite() bool { return binary128.Float(x).IsFinite() }

// IsSignaling reports whether x is a signaling NaN.
func (x Float) IsSignaling() bool { return binary128.Float(x).IsSignaling() }

func (x Float) IsZero() bool { return binary128.Float(x).IsZero() }

func (x Float) Signbit() bool { return binary128.Float(x).Signbit() }

// Identical reports bit-for-bit equality.
func (x Float) Identical(y Float) bool { return x == y }

// Text formats x like C's printf with the given verb and precision, using
// the exact Go codec rather than the C runtime.
func (x Float) Text(verb byte, prec int) string { return binary128.Float(x).Text(verb, prec) }

// String formats x with 36 significant digits, enough to round-trip.
func (x Float) String() string { return binary128.Float(x).String() }

// Format implements fmt.Formatter for %e %E %f %F %g %G %v and %s, with
// width, precision and the '+', ' ', '-' and '0' flags.
func (x Float) Format(s fmt.State, verb rune) {
	text, ok := x.verbText(s, verb)
	if !ok {
		fmt.Fprintf(s, "%%!%c(quad.Float=%s)", verb, x.String())
		return
	}
	pad(s, text, !x.IsNaN() && !x.IsInf(0))
}

func (x Float) verbText(s fmt.State, verb rune) (string, bool) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
	case 'v', 's':
		verb = 'g'
	default:
		return "", false
	}
	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}
	text := x.Text(byte(verb), prec)
	if !strings.HasPrefix(text, "-") {
		switch {
		case s.Flag('+'):
			text = "+" + text
		case s.Flag(' '):
			text = " " + text
		}
	}
	return text, true
}

func pad(s fmt.State, text string, zeroable bool) {
	w, ok := s.Width()
	if !ok || len(text) >= w {
		_, _ = io.WriteString(s, text)
		return
	}
	n := w - len(text)
	switch {
	case s.Flag('-'):
		text += strings.Repeat(" ", n)
	case s.Flag('0') && zeroable:
		sign := ""
		if text != "" && strings.ContainsRune("+- ", rune(text[0])) {
			sign, text = text[:1], text[1:]
		}
		text = sign + strings.Repeat("0", n) + text
	default:
		text = strings.Repeat(" ", n) + text
	}
	_, _ = io.WriteString(s, text)
}

// Cmplx builds a complex quad from its parts.
func Cmplx(re, im Float) Complex {
	return Complex{Re: binary128.Float(re), Im: binary128.Float(im)}
}

// Real returns the real part without calling the runtime.
func (z Complex) Real() Float { return Float(z.Re) }

// Imag returns the imaginary part without calling the runtime.
func (z Complex) Imag() Float { return Float(z.Im) }

// Identical reports bit-for-bit equality of both parts.
func (z Complex) Identical(w Complex) bool { return z == w }

func (z Complex) String() string { return fmt.Sprintf("(%v%+vi)", z.Real(), z.Imag()) }

// Format implements fmt.Formatter as Go does for complex128: both parts
// with the same verb and precision, the imaginary part always signed.
func (z Complex) Format(s fmt.State, verb rune) {
	re, ok := z.Real().verbText(s, verb)
	if !ok {
		fmt.Fprintf(s, "%%!%c(quad.Complex=%s)", verb, z.String())
		return
	}
	im, _ := z.Imag().verbText(plusState{s}, verb)
	pad(s, "("+re+im+"i)", false)
}

// plusState forces the '+' flag so the imaginary part always carries a sign.
type plusState struct{ fmt.State }

func (p plusState) Flag(c int) bool { return c == '+' || p.State.Flag(c) }
