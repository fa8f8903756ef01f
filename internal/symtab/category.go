package symtab

import (
	"fmt"
	"strings"
)

// Category is the call shape of an operation.
type Category uint8

const (
	// RealUnary: quad -> quad.
	RealUnary Category = iota + 1
	// RealToInt: quad -> integer of a declared C width.
	RealToInt
	// ComplexToReal: complex quad -> quad.
	ComplexToReal
	// ComplexToComplex: complex quad -> complex quad.
	ComplexToComplex
	// RealBinary: (quad, quad) -> quad.
	RealBinary
	// RealTernary: (quad, quad, quad) -> quad.
	RealTernary
	// RealScale: (quad, integer) -> quad.
	RealScale
	// RealIntOut: quad -> quad, plus an integer written through a pointer.
	RealIntOut
	// RealSplit: quad -> quad, plus a quad written through a pointer.
	RealSplit
	// RealBinaryIntOut: (quad, quad) -> quad, plus an integer out-parameter.
	RealBinaryIntOut
	// RealSinCos: quad -> nothing, with two quad out-parameters.
	RealSinCos
	// RealOrder: (integer, quad) -> quad.
	RealOrder
	// ComplexBinary: (complex quad, complex quad) -> complex quad.
	ComplexBinary
	// StringToReal: C string -> quad.
	StringToReal
)

var categoryNames = [...]string{
	RealUnary:        "real-unary",
	RealToInt:        "real-to-int",
	ComplexToReal:    "complex-to-real",
	ComplexToComplex: "complex-to-complex",
	RealBinary:       "real-binary",
	RealTernary:      "real-ternary",
	RealScale:        "real-scale",
	RealIntOut:       "real-int-out",
	RealSplit:        "real-split",
	RealBinaryIntOut: "real-binary-int-out",
	RealSinCos:       "real-sincos",
	RealOrder:        "real-order",
	ComplexBinary:    "complex-binary",
	StringToReal:     "string-to-real",
}

func (c Category) String() string {
	if c > 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Categories lists every category in table order.
func Categories() []Category {
	return []Category{
		RealUnary, RealToInt, ComplexToReal, ComplexToComplex, RealBinary, RealTernary, RealScale,
		RealIntOut, RealSplit, RealBinaryIntOut, RealSinCos, RealOrder, ComplexBinary, StringToReal,
	}
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, &Error{Kind: ErrUnknownCategory, Name: s}
}

// IntType is a C integer type crossing the binding boundary.
type IntType struct {
	CType string
	Bits  int
}

// C integer types on the LP64 targets this module builds for.
var (
	CInt      = IntType{CType: "int", Bits: 32}
	CLong     = IntType{CType: "long", Bits: 64}
	CLongLong = IntType{CType: "long long", Bits: 64}
)

func (t IntType) String() string { return fmt.Sprintf("%s(%d)", t.CType, t.Bits) }
