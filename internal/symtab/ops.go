package symtab

// Operation is one canonical, representation-independent operation name.
type Operation struct {
	Name     string
	Category Category
	// Int is the C result type for RealToInt, the C type of the exponent
	// argument for RealScale and of the order argument for RealOrder, and
	// the C type of the integer out-parameter for RealIntOut and
	// RealBinaryIntOut; zero otherwise.
	Int IntType
}

func unary(names ...string) []Operation { return shaped(RealUnary, names) }

func shaped(c Category, names []string) []Operation {
	out := make([]Operation, 0, len(names))
	for _, n := range names {
		out = append(out, Operation{Name: n, Category: c})
	}
	return out
}

func withInt(c Category, t IntType, names ...string) []Operation {
	out := shaped(c, names)
	for i := range out {
		out[i].Int = t
	}
	return out
}

// operations is the canonical set in table order. Categories follow
// Categories(); names within a category are sorted.
var operations = concat(
	unary(
		"acos", "acosh", "asin", "asinh", "atan", "atanh", "cbrt", "ceil",
		"cos", "cosh", "erf", "erfc", "exp", "exp2", "expm1", "fabs",
		"floor", "j0", "j1", "lgamma", "log", "log10", "log1p", "log2",
		"logb", "nearbyint", "rint", "round", "sin", "sinh", "sqrt", "tan",
		"tanh", "tgamma", "trunc", "y0", "y1",
	),
	withInt(RealToInt, CInt, "ilogb"),
	withInt(RealToInt, CLongLong, "llrint", "llround"),
	withInt(RealToInt, CLong, "lrint", "lround"),
	shaped(ComplexToReal, []string{"cabs", "carg", "cimag", "creal"}),
	shaped(ComplexToComplex, []string{
		"cacos", "cacosh", "casin", "casinh", "catan", "catanh", "ccos",
		"ccosh", "cexp", "clog", "conj", "cproj", "csin", "csinh", "csqrt",
		"ctan", "ctanh",
	}),
	shaped(RealBinary, []string{
		"atan2", "copysign", "fdim", "fmax", "fmin", "fmod", "hypot",
		"nextafter", "pow", "remainder",
	}),
	shaped(RealTernary, []string{"fma"}),
	withInt(RealScale, CInt, "ldexp", "scalbn"),
	withInt(RealScale, CLong, "scalbln"),
	withInt(RealIntOut, CInt, "frexp"),
	shaped(RealSplit, []string{"modf"}),
	withInt(RealBinaryIntOut, CInt, "remquo"),
	shaped(RealSinCos, []string{"sincos"}),
	withInt(RealOrder, CInt, "jn", "yn"),
	shaped(ComplexBinary, []string{"cpow"}),
	shaped(StringToReal, []string{"nan"}),
)

func concat(groups ...[]Operation) []Operation {
	var out []Operation
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Operations returns a copy of the canonical set in table order.
func Operations() []Operation {
	return append([]Operation(nil), operations...)
}

// OperationsIn returns the canonical operations of one category.
func OperationsIn(c Category) []Operation {
	var out []Operation
	for _, op := range operations {
		if op.Category == c {
			out = append(out, op)
		}
	}
	return out
}

// LookupOperation finds a canonical operation by name.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
