package quad

import (
	"strconv"
	"strings"

	"fp128/internal/binary128"
	"fp128/internal/libquad"
	"fp128/internal/symtab"
	"fp128/internal/target"
)

// TargetProfile describes the strategy the binary was built with.
type TargetProfile = target.Profile

// Kind is the representation strategy.
type Kind = target.Kind

// The two strategies.
const (
	NativeWideFloat = target.NativeWideFloat
	SoftwareQuad    = target.SoftwareQuad
)

// Category is the call shape of an operation.
type Category = symtab.Category

// Profile returns the build's profile, including the C compiler identity.
func Profile() TargetProfile { return std.Profile() }

// Constant returns a named constant ("e", "pi_4", "max", ...) as the C
// compiler rounded its suffixed literal.
func Constant(name string) (Float, bool) {
	v, ok := libquad.Constant(name)
	return Float(v), ok
}

// Format renders x with the runtime's printf and the strategy's length
// modifier, i.e. "%.*Qf" or "%.*Lf" for verb 'f'. Verbs are f F e E g G a A;
// any other yields "%" followed by the verb. A negative prec uses the C
// default.
func Format(x Float, verb byte, prec int) string {
	s, ok := libquad.Format(binary128.Float(x), verb, prec)
	if !ok {
		return "%" + string(verb)
	}
	return s
}

// ParseError records a failed Parse.
type ParseError struct {
	Input string
	Err   error // binary128.ErrSyntax or binary128.ErrRange
}

func (e *ParseError) Error() string {
	return "quad.Parse " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts s with the runtime's string-to-quad routine (strtoflt128
// or strtold). Surrounding space is ignored; anything else left unconsumed
// is a syntax error. Overflow returns the signed infinity along with an
// error wrapping binary128.ErrRange; underflow is not an error.
//
// strtoflt128 leaves errno alone for literals just past Max that round to
// infinity, so any infinite result not spelled inf or infinity counts as
// overflow.
func Parse(s string) (Float, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Float{}, &ParseError{Input: s, Err: binary128.ErrSyntax}
	}
	v, n, _ := libquad.Parse(t)
	if n != len(t) {
		return Float{}, &ParseError{Input: s, Err: binary128.ErrSyntax}
	}
	if v.IsInf(0) && !spellsInfinity(t) {
		return Float(v), &ParseError{Input: s, Err: binary128.ErrRange}
	}
	return Float(v), nil
}

func spellsInfinity(s string) bool {
	s = strings.ToLower(strings.TrimLeft(s, "+-"))
	return s == "inf" || s == "infinity"
}
