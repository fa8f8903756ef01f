package verify

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"fp128/internal/binary128"
	"fp128/internal/libquad"
	"fp128/internal/symtab"
	"fp128/quad"
)

type checker struct {
	facade *quad.Facade
	args   *ArgTable
	tag    string
}

func (c *checker) check(d symtab.Descriptor) Result {
	res := Result{Name: d.Name, Category: d.Category, Symbol: d.Symbol, Direct: d.Name + c.tag}
	op, ok := c.facade.Op(d.Name)
	if !ok {
		return res.fail("unbound", "")
	}
	a := c.args.For(d.Name)
	switch d.Category {
	case symtab.RealUnary:
		fn, err := libquad.Real(res.Direct)
		if err != nil {
			return res.fail(formatFloat(op.Unary(a.X)), err.Error())
		}
		return res.floats(op.Unary(a.X), quad.Float(fn(binary128.Float(a.X))))
	case symtab.RealToInt:
		fn, it, err := libquad.ToInt(res.Direct)
		if err != nil {
			return res.fail(formatInt(op.ToInt(a.X), d.Int), err.Error())
		}
		if it != d.Int {
			return res.fail(d.Int.String(), it.String())
		}
		return res.ints(op.ToInt(a.X), fn(binary128.Float(a.X)), d.Int)
	case symtab.ComplexToReal:
		fn, err := libquad.ComplexReal(res.Direct)
		if err != nil {
			return res.fail(formatFloat(op.ToReal(a.C)), err.Error())
		}
		return res.floats(op.ToReal(a.C), quad.Float(fn(binary128.Complex(a.C))))
	case symtab.ComplexToComplex:
		fn, err := libquad.Complex(res.Direct)
		if err != nil {
			return res.fail(formatComplex(op.Complex(a.C)), err.Error())
		}
		return res.complexes(op.Complex(a.C), quad.Complex(fn(binary128.Complex(a.C))))
	case symtab.RealBinary:
		fn, err := libquad.Binary(res.Direct)
		if err != nil {
			return res.fail(formatFloat(op.Binary(a.X, a.Y)), err.Error())
		}
		return res.floats(op.Binary(a.X, a.Y), quad.Float(fn(binary128.Float(a.X), binary128.Float(a.Y))))
	case symtab.RealTernary:
		fn, err := libquad.Ternary(res.Direct)
		if err != nil {
			return res.fail(formatFloat(op.Ternary(a.X, a.Y, a.Z)), err.Error())
		}
		return res.floats(op.Ternary(a.X, a.Y, a.Z),
			quad.Float(fn(binary128.Float(a.X), binary128.Float(a.Y), binary128.Float(a.Z))))
	case symtab.RealScale:
		fn, _, err := libquad.Scale(res.Direct)
		if err != nil {
			return res.fail(formatFloat(op.Scale(a.X, a.N)), err.Error())
		}
		return res.floats(op.Scale(a.X, a.N), quad.Float(fn(binary128.Float(a.X), a.N)))
	case symtab.RealIntOut:
		fn, err := libquad.RealInt(res.Direct)
		v, n := op.IntOut(a.X)
		if err != nil {
			return res.fail(formatFloatInt(v, n), err.Error())
		}
		dv, dn := fn(binary128.Float(a.X))
		return res.floatInts(v, n, quad.Float(dv), dn)
	case symtab.RealSplit, symtab.RealSinCos:
		lookup := libquad.Split
		if d.Category == symtab.RealSinCos {
			lookup = libquad.SinCos
		}
		fn, err := lookup(res.Direct)
		p, q := op.Pair(a.X)
		if err != nil {
			return res.fail(formatPair(p, q), err.Error())
		}
		dp, dq := fn(binary128.Float(a.X))
		return res.pairs(p, q, quad.Float(dp), quad.Float(dq))
	case symtab.RealBinaryIntOut:
		fn, err := libquad.BinaryInt(res.Direct)
		v, n := op.BinaryInt(a.X, a.Y)
		if err != nil {
			return res.fail(formatFloatInt(v, n), err.Error())
		}
		dv, dn := fn(binary128.Float(a.X), binary128.Float(a.Y))
		return res.floatInts(v, n, quad.Float(dv), dn)
	case symtab.RealOrder:
		fn, err := libquad.Order(res.Direct)
		n := int(a.Order)
		if err != nil {
			return res.fail(formatFloat(op.Order(n, a.X)), err.Error())
		}
		return res.floats(op.Order(n, a.X), quad.Float(fn(n, binary128.Float(a.X))))
	case symtab.ComplexBinary:
		fn, err := libquad.ComplexBinary(res.Direct)
		if err != nil {
			return res.fail(formatComplex(op.ComplexBinary(a.C, a.W)), err.Error())
		}
		return res.complexes(op.ComplexBinary(a.C, a.W), quad.Complex(fn(binary128.Complex(a.C), binary128.Complex(a.W))))
	case symtab.StringToReal:
		fn, err := libquad.FromString(res.Direct)
		if err != nil {
			return res.fail(formatFloat(op.FromString(a.Tag)), err.Error())
		}
		return res.floats(op.FromString(a.Tag), quad.Float(fn(a.Tag)))
	}
	return res.fail("unsupported category "+d.Category.String(), "")
}

func (r Result) fail(canonical, got string) Result {
	r.Status, r.Canonical, r.Got = Failed, canonical, got
	return r
}

func (r Result) floats(canonical, direct quad.Float) Result {
	if canonical.Identical(direct) {
		r.Status = Passed
		return r
	}
	return r.fail(formatFloat(canonical), formatFloat(direct))
}

// complexes compares the real and imaginary parts separately.
func (r Result) complexes(canonical, direct quad.Complex) Result {
	if canonical.Real().Identical(direct.Real()) && canonical.Imag().Identical(direct.Imag()) {
		r.Status = Passed
		return r
	}
	return r.fail(formatComplex(canonical), formatComplex(direct))
}

// pairs compares both results of a two-output call; each must match bit
// for bit.
func (r Result) pairs(c1, c2, d1, d2 quad.Float) Result {
	if c1.Identical(d1) && c2.Identical(d2) {
		r.Status = Passed
		return r
	}
	return r.fail(formatPair(c1, c2), formatPair(d1, d2))
}

// floatInts compares a quad result and the int written through the call's
// pointer argument.
func (r Result) floatInts(cv quad.Float, cn int, dv quad.Float, dn int) Result {
	if cv.Identical(dv) && cn == dn {
		r.Status = Passed
		return r
	}
	return r.fail(formatFloatInt(cv, cn), formatFloatInt(dv, dn))
}

func (r Result) ints(canonical, direct int64, t symtab.IntType) Result {
	if narrow(canonical, t) == narrow(direct, t) {
		r.Status = Passed
		return r
	}
	return r.fail(formatInt(canonical, t), formatInt(direct, t))
}

// narrow reduces v to the C type's width; a value that does not fit is kept
// whole so it can never compare equal to one that does.
func narrow(v int64, t symtab.IntType) int64 {
	if t.Bits != 32 {
		return v
	}
	n, err := safecast.Conv[int32](v)
	if err != nil {
		return v
	}
	return int64(n)
}

func formatFloat(x quad.Float) string { return fmt.Sprintf("%12.10f", x) }

func formatComplex(z quad.Complex) string {
	return "(" + formatFloat(z.Real()) + "," + formatFloat(z.Imag()) + ")"
}

func formatPair(x, y quad.Float) string {
	return "(" + formatFloat(x) + "," + formatFloat(y) + ")"
}

func formatFloatInt(x quad.Float, n int) string {
	return "(" + formatFloat(x) + "," + strconv.Itoa(n) + ")"
}

func formatInt(v int64, t symtab.IntType) string {
	return fmt.Sprintf("%12s", strconv.FormatInt(narrow(v, t), 10))
}
