// Package libquad binds the tagged symbols of the selected quad runtime.
//
// The per-strategy files zz_quadmath.go (amd64, libquadmath) and zz_libm.go
// (arm64 and riscv64, libm) are written by cmd/quadgen. Each one holds a C
// table of function pointers per call shape, initialised with the address
// of every tagged symbol, so a symbol the runtime lacks is a link error and
// never a runtime one. Values cross the boundary as raw storage: 16 bytes
// per quad, 32 per complex quad.
//
// Lookups here are by tagged symbol, not by canonical name. Mapping names to
// symbols is the resolver's job; this package only answers whether a symbol
// is bound and with which shape.
package libquad

import (
	"math"
	"slices"
	"unsafe"

	"fortio.org/safecast"

	"fp128/internal/binary128"
	"fp128/internal/symtab"
	"fp128/internal/target"
)

// Call shapes of the bound symbols.
type (
	RealFunc        func(x binary128.Float) binary128.Float
	IntFunc         func(x binary128.Float) int64
	ComplexRealFunc func(z binary128.Complex) binary128.Float
	ComplexFunc     func(z binary128.Complex) binary128.Complex
	BinaryFunc      func(x, y binary128.Float) binary128.Float
	TernaryFunc     func(x, y, z binary128.Float) binary128.Float
	ScaleFunc       func(x binary128.Float, n int64) binary128.Float

	// Out-parameters come back as trailing results, in C argument order.
	RealIntFunc       func(x binary128.Float) (binary128.Float, int)
	PairFunc          func(x binary128.Float) (binary128.Float, binary128.Float)
	BinaryIntFunc     func(x, y binary128.Float) (binary128.Float, int)
	OrderFunc         func(n int, x binary128.Float) binary128.Float
	ComplexBinaryFunc func(z, w binary128.Complex) binary128.Complex
	StringFunc        func(s string) binary128.Float
)

// Strategy reports which strategy the bindings were generated for.
func Strategy() target.Kind { return strategy }

// Profile returns the build's profile with the C compiler identity filled in.
func Profile() target.Profile { return target.Current().WithCompiler(CompilerID()) }

func unbound(symbol string) error {
	return &symtab.Error{Kind: symtab.ErrUnboundSymbol, Symbol: symbol}
}

// Real returns the quad -> quad function bound to symbol.
func Real(symbol string) (RealFunc, error) {
	i := slices.Index(realSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x binary128.Float) binary128.Float { return callReal(i, x) }, nil
}

// ToInt returns the quad -> integer function bound to symbol and the C type
// it returns. Results are widened to int64.
func ToInt(symbol string) (IntFunc, symtab.IntType, error) {
	if i := slices.Index(intSymbols, symbol); i >= 0 {
		return func(x binary128.Float) int64 { return int64(callInt(i, x)) }, symtab.CInt, nil
	}
	if i := slices.Index(longSymbols, symbol); i >= 0 {
		return func(x binary128.Float) int64 { return callLong(i, x) }, symtab.CLong, nil
	}
	if i := slices.Index(longLongSymbols, symbol); i >= 0 {
		return func(x binary128.Float) int64 { return callLongLong(i, x) }, symtab.CLongLong, nil
	}
	return nil, symtab.IntType{}, unbound(symbol)
}

// ComplexReal returns the complex -> quad function bound to symbol.
func ComplexReal(symbol string) (ComplexRealFunc, error) {
	i := slices.Index(complexRealSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(z binary128.Complex) binary128.Float { return callComplexReal(i, z) }, nil
}

// Complex returns the complex -> complex function bound to symbol.
func Complex(symbol string) (ComplexFunc, error) {
	i := slices.Index(complexSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(z binary128.Complex) binary128.Complex { return callComplex(i, z) }, nil
}

// Binary returns the (quad, quad) -> quad function bound to symbol.
func Binary(symbol string) (BinaryFunc, error) {
	i := slices.Index(binarySymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x, y binary128.Float) binary128.Float { return callBinary(i, x, y) }, nil
}

// Ternary returns the (quad, quad, quad) -> quad function bound to symbol.
func Ternary(symbol string) (TernaryFunc, error) {
	i := slices.Index(ternarySymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x, y, z binary128.Float) binary128.Float { return callTernary(i, x, y, z) }, nil
}

// Scale returns the (quad, integer) -> quad function bound to symbol and
// the C type of its exponent argument. Exponents outside a C int are clamped;
// any such exponent already overflows or underflows the format.
func Scale(symbol string) (ScaleFunc, symtab.IntType, error) {
	if i := slices.Index(scaleIntSymbols, symbol); i >= 0 {
		return func(x binary128.Float, n int64) binary128.Float { return callScaleInt(i, x, clampInt32(n)) }, symtab.CInt, nil
	}
	if i := slices.Index(scaleLongSymbols, symbol); i >= 0 {
		return func(x binary128.Float, n int64) binary128.Float { return callScaleLong(i, x, n) }, symtab.CLong, nil
	}
	return nil, symtab.IntType{}, unbound(symbol)
}

// RealInt returns the quad -> (quad, int) function bound to symbol; the int
// is what the call wrote through its pointer argument.
func RealInt(symbol string) (RealIntFunc, error) {
	i := slices.Index(realIntSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x binary128.Float) (binary128.Float, int) {
		r, e := callRealInt(i, x)
		return r, int(e)
	}, nil
}

// Split returns the function bound to symbol that returns one quad and
// writes another through a pointer, as modf does.
func Split(symbol string) (PairFunc, error) {
	i := slices.Index(splitSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x binary128.Float) (binary128.Float, binary128.Float) { return callSplit(i, x) }, nil
}

// SinCos returns the function bound to symbol that writes both of its
// results through pointers.
func SinCos(symbol string) (PairFunc, error) {
	i := slices.Index(sinCosSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x binary128.Float) (binary128.Float, binary128.Float) { return callSinCos(i, x) }, nil
}

// BinaryInt returns the (quad, quad) -> (quad, int) function bound to symbol.
func BinaryInt(symbol string) (BinaryIntFunc, error) {
	i := slices.Index(binaryIntSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(x, y binary128.Float) (binary128.Float, int) {
		r, q := callBinaryInt(i, x, y)
		return r, int(q)
	}, nil
}

// Order returns the (int, quad) -> quad function bound to symbol. Orders
// outside a C int are clamped.
func Order(symbol string) (OrderFunc, error) {
	i := slices.Index(orderSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(n int, x binary128.Float) binary128.Float { return callOrder(i, clampInt32(int64(n)), x) }, nil
}

// ComplexBinary returns the (complex, complex) -> complex function bound to
// symbol.
func ComplexBinary(symbol string) (ComplexBinaryFunc, error) {
	i := slices.Index(complexBinarySymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(z, w binary128.Complex) binary128.Complex { return callComplexBinary(i, z, w) }, nil
}

// FromString returns the C string -> quad function bound to symbol.
func FromString(symbol string) (StringFunc, error) {
	i := slices.Index(stringSymbols, symbol)
	if i < 0 {
		return nil, unbound(symbol)
	}
	return func(s string) binary128.Float { return callString(i, s) }, nil
}

func clampInt32(n int64) int32 {
	v, err := safecast.Conv[int32](n)
	if err == nil {
		return v
	}
	if n < 0 {
		return math.MinInt32
	}
	return math.MaxInt32
}

// Symbols returns every bound symbol, grouped by shape.
func Symbols() []string {
	return slices.Concat(
		realSymbols, intSymbols, longSymbols, longLongSymbols,
		complexRealSymbols, complexSymbols, binarySymbols, ternarySymbols,
		scaleIntSymbols, scaleLongSymbols, realIntSymbols, splitSymbols,
		binaryIntSymbols, sinCosSymbols, orderSymbols, complexBinarySymbols,
		stringSymbols,
	)
}

// Bound reports whether symbol has an entry point of any shape.
func Bound(symbol string) bool { return slices.Contains(Symbols(), symbol) }

// ConstantNames lists the constants compiled into the bindings.
func ConstantNames() []string { return slices.Clone(constantNames) }

// Constant returns a named constant as the C compiler rounded its suffixed
// literal.
func Constant(name string) (binary128.Float, bool) {
	i := slices.Index(constantNames, name)
	if i < 0 {
		return binary128.Float{}, false
	}
	return callConstant(i), true
}

// Format renders x with the runtime's printf family and the strategy's
// length modifier, i.e. "%.*<tag><verb>".
func Format(x binary128.Float, verb byte, prec int) (string, bool) {
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
	default:
		return "", false
	}
	return callFormat(x, verb, prec), true
}

// Parse converts s with the runtime's strtold/strtoflt128. It returns the
// value, how many bytes were consumed and whether errno reported ERANGE.
func Parse(s string) (v binary128.Float, consumed int, erange bool) {
	return callParse(s)
}

// Storage describes how a C floating type occupies memory, measured by
// storing -1 into zeroed storage.
type Storage struct {
	Type      string // C spelling
	Allocated int    // sizeof in C
	GoSize    int    // size of the Go mirror type, 0 when there is none
	Populated int    // bytes up to and including the one holding the sign bit
	MantDig   int    // significand bits, 0 when not reported
	Bytes     []byte // the stored -1, little-endian
}

// MeasureQuad measures the strategy's quad type.
func MeasureQuad() Storage {
	b := quadMinusOne()
	return Storage{
		Type:      Profile().ScalarType,
		Allocated: len(b),
		GoSize:    int(unsafe.Sizeof(binary128.Float{})),
		Populated: populated(b),
		MantDig:   binary128.SignificandBits,
		Bytes:     b,
	}
}

// MeasureLongDouble measures the host long double, which is the quad type on
// NativeWideFloat targets and the padded x87 format on amd64.
func MeasureLongDouble() Storage {
	b := longDoubleMinusOne()
	return Storage{
		Type:      "long double",
		Allocated: len(b),
		Populated: populated(b),
		MantDig:   longDoubleMantDig(),
		Bytes:     b,
	}
}

// populated scans from the top for the highest nonzero byte. For -1 that is
// the byte carrying the sign bit.
func populated(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			return i + 1
		}
	}
	return 0
}
