// Package consttab holds the named quad constants as decimal literals.
//
// Literals carry at least 36 significant digits, more than binary128 can
// hold, so the final rounding is done by whoever parses them: the C compiler
// for the suffixed literals written into the generated bindings, and the
// binary128 codec for Value.
package consttab

import (
	"strings"

	"fp128/internal/binary128"
	"fp128/internal/target"
)

// Descriptor is one named constant.
type Descriptor struct {
	Name    string // canonical name, as used by quad.Constant
	GoName  string // exported identifier in package quad
	Literal string // unsuffixed C decimal literal
	Doc     string // completes "<GoName> is ..."
}

// Tagged returns the literal with the profile's suffix, e.g. "2.71...498Q".
func (d Descriptor) Tagged(p target.Profile) string { return d.Literal + p.LiteralSuffix }

// Value parses the literal with the pure-Go codec.
func (d Descriptor) Value() (binary128.Float, error) { return binary128.ParseLiteral(d.Literal) }

// SignificantDigits counts the literal's significant decimal digits.
func (d Descriptor) SignificantDigits() int {
	mant := d.Literal
	if i := strings.IndexAny(mant, "eE"); i >= 0 {
		mant = mant[:i]
	}
	mant = strings.TrimLeft(strings.ReplaceAll(mant, ".", ""), "0")
	return len(mant)
}

var constants = []Descriptor{
	{"max", "Max", "1.18973149535723176508575932662800702e4932", "the largest finite value"},
	{"min", "Min", "3.36210314311209350626267781732175260e-4932", "the smallest positive normal value"},
	{"epsilon", "Epsilon", "1.92592994438723585305597794258492732e-34", "the difference between 1 and the next larger value"},
	{"denorm_min", "DenormMin", "6.475175119438025110924438958227646552e-4966", "the smallest positive subnormal value"},
	{"e", "E", "2.718281828459045235360287471352662498", "Euler's number"},
	{"log2e", "Log2E", "1.442695040888963407359924681001892137", "log_2 e"},
	{"log10e", "Log10E", "0.434294481903251827651128918916605082", "log_10 e"},
	{"ln2", "Ln2", "0.693147180559945309417232121458176568", "log_e 2"},
	{"ln10", "Ln10", "2.302585092994045684017991454684364208", "log_e 10"},
	{"pi", "Pi", "3.141592653589793238462643383279502884", "the circle constant"},
	{"pi_2", "Pi2", "1.570796326794896619231321691639751442", "pi/2"},
	{"pi_4", "Pi4", "0.785398163397448309615660845819875721", "pi/4"},
	{"1_pi", "InvPi", "0.318309886183790671537767526745028724", "1/pi"},
	{"2_pi", "TwoInvPi", "0.636619772367581343075535053490057448", "2/pi"},
	{"2_sqrtpi", "TwoInvSqrtPi", "1.128379167095512573896158903121545172", "2/sqrt(pi)"},
	{"sqrt2", "Sqrt2", "1.414213562373095048801688724209698079", "sqrt(2)"},
	{"sqrt1_2", "InvSqrt2", "0.707106781186547524400844362104849039", "1/sqrt(2)"},
}

// All returns every constant in table order.
func All() []Descriptor { return append([]Descriptor(nil), constants...) }

// Lookup finds a constant by canonical name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range constants {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Limit is an integer property of the binary128 format.
type Limit struct {
	Name   string
	GoName string
	Value  int
	Doc    string
}

var limits = []Limit{
	{"mant_dig", "MantDig", 113, "the number of significand bits, including the implicit one"},
	{"min_exp", "MinExp", -16381, "one more than the smallest normal binary exponent"},
	{"max_exp", "MaxExp", 16384, "one more than the largest finite binary exponent"},
	{"dig", "Dig", 33, "the number of decimal digits that survive a round trip through the format"},
	{"min_10_exp", "Min10Exp", -4931, "the smallest decimal exponent of a normal value"},
	{"max_10_exp", "Max10Exp", 4932, "the largest decimal exponent of a finite value"},
}

// Limits returns the integer limits in table order.
func Limits() []Limit { return append([]Limit(nil), limits...) }

// LookupLimit finds a limit by canonical name.
func LookupLimit(name string) (Limit, bool) {
	for _, l := range limits {
		if l.Name == name {
			return l, true
		}
	}
	return Limit{}, false
}
