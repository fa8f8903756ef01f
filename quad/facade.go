package quad

import (
	"errors"
	"fmt"

	"fp128/internal/binary128"
	"fp128/internal/libquad"
	"fp128/internal/symtab"
)

// Op is one bound operation. Exactly one of the function fields is set,
// according to the descriptor's category.
type Op struct {
	symtab.Descriptor

	Unary   func(x Float) Float
	ToInt   func(x Float) int64
	ToReal  func(z Complex) Float
	Complex func(z Complex) Complex
	Binary  func(x, y Float) Float
	Ternary func(x, y, z Float) Float
	Scale   func(x Float, n int64) Float

	// Out-parameters are trailing results, in C argument order. Pair
	// serves both RealSplit and RealSinCos.
	IntOut        func(x Float) (Float, int)
	Pair          func(x Float) (Float, Float)
	BinaryInt     func(x, y Float) (Float, int)
	Order         func(n int, x Float) Float
	ComplexBinary func(z, w Complex) Complex
	FromString    func(tag string) Float
}

// Facade is a resolved symbol table with every entry bound to the runtime.
// The package-level functions use Default; NewFacade builds others, for
// instance with a deliberately wrong mapping to prove the verifier notices.
type Facade struct {
	table *symtab.Table
	ops   map[string]*Op
}

// Option adjusts symbol resolution.
type Option = symtab.Option

// WithSymbol binds the canonical operation name to symbol instead of the
// tagged name. The symbol must be bound with the same call shape.
func WithSymbol(name, symbol string) Option { return symtab.WithSymbol(name, symbol) }

// NewFacade resolves and binds every operation for the build's profile.
func NewFacade(opts ...Option) (*Facade, error) {
	table, err := symtab.Resolve(libquad.Profile(), opts...)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	f := &Facade{table: table, ops: make(map[string]*Op, table.Len())}
	for _, d := range table.Descriptors() {
		op, err := bind(d)
		if err != nil {
			var se *symtab.Error
			if errors.As(err, &se) && se.Name == "" {
				se.Name = d.Name
			}
			return nil, err
		}
		f.ops[d.Name] = op
	}
	return f, nil
}

func bind(d symtab.Descriptor) (*Op, error) {
	op := &Op{Descriptor: d}
	switch d.Category {
	case symtab.RealUnary:
		fn, err := libquad.Real(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Unary = func(x Float) Float { return Float(fn(binary128.Float(x))) }
	case symtab.RealToInt:
		fn, _, err := libquad.ToInt(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.ToInt = func(x Float) int64 { return fn(binary128.Float(x)) }
	case symtab.ComplexToReal:
		fn, err := libquad.ComplexReal(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.ToReal = func(z Complex) Float { return Float(fn(binary128.Complex(z))) }
	case symtab.ComplexToComplex:
		fn, err := libquad.Complex(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Complex = func(z Complex) Complex { return Complex(fn(binary128.Complex(z))) }
	case symtab.RealBinary:
		fn, err := libquad.Binary(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Binary = func(x, y Float) Float { return Float(fn(binary128.Float(x), binary128.Float(y))) }
	case symtab.RealTernary:
		fn, err := libquad.Ternary(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Ternary = func(x, y, z Float) Float {
			return Float(fn(binary128.Float(x), binary128.Float(y), binary128.Float(z)))
		}
	case symtab.RealScale:
		fn, _, err := libquad.Scale(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Scale = func(x Float, n int64) Float { return Float(fn(binary128.Float(x), n)) }
	case symtab.RealIntOut:
		fn, err := libquad.RealInt(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.IntOut = func(x Float) (Float, int) {
			r, e := fn(binary128.Float(x))
			return Float(r), e
		}
	case symtab.RealSplit, symtab.RealSinCos:
		lookup := libquad.Split
		if d.Category == symtab.RealSinCos {
			lookup = libquad.SinCos
		}
		fn, err := lookup(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Pair = func(x Float) (Float, Float) {
			a, b := fn(binary128.Float(x))
			return Float(a), Float(b)
		}
	case symtab.RealBinaryIntOut:
		fn, err := libquad.BinaryInt(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.BinaryInt = func(x, y Float) (Float, int) {
			r, q := fn(binary128.Float(x), binary128.Float(y))
			return Float(r), q
		}
	case symtab.RealOrder:
		fn, err := libquad.Order(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.Order = func(n int, x Float) Float { return Float(fn(n, binary128.Float(x))) }
	case symtab.ComplexBinary:
		fn, err := libquad.ComplexBinary(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.ComplexBinary = func(z, w Complex) Complex {
			return Complex(fn(binary128.Complex(z), binary128.Complex(w)))
		}
	case symtab.StringToReal:
		fn, err := libquad.FromString(d.Symbol)
		if err != nil {
			return nil, err
		}
		op.FromString = func(tag string) Float { return Float(fn(tag)) }
	default:
		return nil, fmt.Errorf("unsupported category %s", d.Category)
	}
	return op, nil
}

// Op returns the bound operation for a canonical name.
func (f *Facade) Op(name string) (*Op, bool) {
	op, ok := f.ops[name]
	return op, ok
}

// Table returns the resolved symbol table.
func (f *Facade) Table() *symtab.Table { return f.table }

// Profile returns the profile the facade was resolved for.
func (f *Facade) Profile() TargetProfile { return f.table.Profile() }

var std = mustFacade()

func mustFacade() *Facade {
	f, err := NewFacade()
	if err != nil {
		panic(fmt.Sprintf("quad: %v", err))
	}
	return f
}

// Default returns the facade behind the package-level functions.
func Default() *Facade { return std }

func (f *Facade) mustOp(name string, c symtab.Category) *Op {
	op, ok := f.ops[name]
	if !ok || op.Category != c {
		panic(fmt.Sprintf("quad: %q is not a %s operation", name, c))
	}
	return op
}

func (f *Facade) mustUnary(name string) func(Float) Float {
	return f.mustOp(name, symtab.RealUnary).Unary
}

func (f *Facade) mustToInt(name string) func(Float) int64 {
	return f.mustOp(name, symtab.RealToInt).ToInt
}

func (f *Facade) mustToReal(name string) func(Complex) Float {
	return f.mustOp(name, symtab.ComplexToReal).ToReal
}

func (f *Facade) mustComplex(name string) func(Complex) Complex {
	return f.mustOp(name, symtab.ComplexToComplex).Complex
}

func (f *Facade) mustBinary(name string) func(Float, Float) Float {
	return f.mustOp(name, symtab.RealBinary).Binary
}

func (f *Facade) mustTernary(name string) func(Float, Float, Float) Float {
	return f.mustOp(name, symtab.RealTernary).Ternary
}

func (f *Facade) mustScale(name string) func(Float, int64) Float {
	return f.mustOp(name, symtab.RealScale).Scale
}

func (f *Facade) mustIntOut(name string) func(Float) (Float, int) {
	return f.mustOp(name, symtab.RealIntOut).IntOut
}

func (f *Facade) mustSplit(name string) func(Float) (Float, Float) {
	return f.mustOp(name, symtab.RealSplit).Pair
}

func (f *Facade) mustSinCos(name string) func(Float) (Float, Float) {
	return f.mustOp(name, symtab.RealSinCos).Pair
}

func (f *Facade) mustBinaryInt(name string) func(Float, Float) (Float, int) {
	return f.mustOp(name, symtab.RealBinaryIntOut).BinaryInt
}

func (f *Facade) mustOrder(name string) func(int, Float) Float {
	return f.mustOp(name, symtab.RealOrder).Order
}

func (f *Facade) mustComplexBinary(name string) func(Complex, Complex) Complex {
	return f.mustOp(name, symtab.ComplexBinary).ComplexBinary
}

func (f *Facade) mustFromString(name string) func(string) Float {
	return f.mustOp(name, symtab.StringToReal).FromString
}

func (f *Facade) mustConstant(name string) Float {
	v, ok := Constant(name)
	if !ok {
		panic(fmt.Sprintf("quad: no constant %q", name))
	}
	return v
}
