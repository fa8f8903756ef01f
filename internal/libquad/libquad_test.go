package libquad

import (
	"errors"
	"testing"

	"fp128/internal/binary128"
	"fp128/internal/consttab"
	"fp128/internal/symtab"
	"fp128/internal/target"
)

func TestEveryOperationIsBound(t *testing.T) {
	p := Profile()
	for _, op := range symtab.Operations() {
		if sym := p.Symbol(op.Name); !Bound(sym) {
			t.Errorf("%s: %s is not bound", op.Name, sym)
		}
	}
	if got, want := len(Symbols()), len(symtab.Operations()); got != want {
		t.Errorf("len(Symbols()) = %d, want %d", got, want)
	}
}

func TestShapesMatchCategories(t *testing.T) {
	p := Profile()
	for _, op := range symtab.Operations() {
		sym := p.Symbol(op.Name)
		var err error
		switch op.Category {
		case symtab.RealUnary:
			_, err = Real(sym)
		case symtab.RealToInt:
			var it symtab.IntType
			_, it, err = ToInt(sym)
			if err == nil && it != op.Int {
				t.Errorf("%s returns %s, want %s", sym, it, op.Int)
			}
		case symtab.ComplexToReal:
			_, err = ComplexReal(sym)
		case symtab.ComplexToComplex:
			_, err = Complex(sym)
		case symtab.RealBinary:
			_, err = Binary(sym)
		case symtab.RealTernary:
			_, err = Ternary(sym)
		case symtab.RealScale:
			var it symtab.IntType
			_, it, err = Scale(sym)
			if err == nil && it != op.Int {
				t.Errorf("%s takes %s, want %s", sym, it, op.Int)
			}
		case symtab.RealIntOut:
			_, err = RealInt(sym)
		case symtab.RealSplit:
			_, err = Split(sym)
		case symtab.RealBinaryIntOut:
			_, err = BinaryInt(sym)
		case symtab.RealSinCos:
			_, err = SinCos(sym)
		case symtab.RealOrder:
			_, err = Order(sym)
		case symtab.ComplexBinary:
			_, err = ComplexBinary(sym)
		case symtab.StringToReal:
			_, err = FromString(sym)
		default:
			t.Errorf("%s: no lookup for %s", sym, op.Category)
		}
		if err != nil {
			t.Errorf("%s: %v", sym, err)
		}
	}
}

func TestUnboundSymbol(t *testing.T) {
	_, err := Real("cabs" + Profile().FunctionTag)
	var se *symtab.Error
	if !errors.As(err, &se) || se.Kind != symtab.ErrUnboundSymbol {
		t.Fatalf("Real(cabs) error = %v, want ErrUnboundSymbol", err)
	}
	if _, _, err := ToInt("sin"); err == nil {
		t.Error("ToInt(sin) should fail")
	}
	if _, err := Split("sincos" + Profile().FunctionTag); err == nil {
		t.Error("Split(sincos) should fail: sincos writes both results through pointers")
	}
}

func TestConstantsMatchCodec(t *testing.T) {
	names := ConstantNames()
	if len(names) != len(consttab.All()) {
		t.Fatalf("ConstantNames() has %d entries, want %d", len(names), len(consttab.All()))
	}
	for _, d := range consttab.All() {
		got, ok := Constant(d.Name)
		if !ok {
			t.Errorf("Constant(%q) missing", d.Name)
			continue
		}
		want, err := d.Value()
		if err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		if !got.Identical(want) {
			t.Errorf("Constant(%q) = %#016x:%#016x, want %#016x:%#016x", d.Name, got.Hi, got.Lo, want.Hi, want.Lo)
		}
	}
}

func TestFormatAndParse(t *testing.T) {
	e, _ := Constant("e")
	s, ok := Format(e, 'f', 33)
	if !ok || s != "2.718281828459045235360287471352662" {
		t.Errorf("Format(e) = %q, %v", s, ok)
	}
	if _, ok := Format(e, 'd', 3); ok {
		t.Error("Format accepted verb 'd'")
	}
	v, n, erange := Parse("2.5xyz")
	if n != 3 || erange || !v.Identical(binary128.MustParse("2.5")) {
		t.Errorf("Parse(2.5xyz) = %v, %d, %v", v, n, erange)
	}
	v, _, erange = Parse("1e99999")
	if !erange || !v.IsInf(1) {
		t.Errorf("Parse(1e99999) = %v, erange=%v", v, erange)
	}
}

func TestCalls(t *testing.T) {
	p := Profile()
	two := binary128.FromFloat64(2)
	sqrt, err := Real(p.Symbol("sqrt"))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Constant("sqrt2")
	if got := sqrt(two); !got.Identical(want) {
		t.Errorf("sqrt(2) = %v, want %v", got, want)
	}
	ldexp, _, err := Scale(p.Symbol("ldexp"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ldexp(two, 1<<40); !got.IsInf(1) {
		t.Errorf("ldexp(2, 2^40) = %v, want +Inf", got)
	}
	if got := ldexp(two, -(1 << 40)); !got.IsZero() {
		t.Errorf("ldexp(2, -2^40) = %v, want 0", got)
	}
}

func TestOutParamCalls(t *testing.T) {
	p := Profile()
	frexp, err := RealInt(p.Symbol("frexp"))
	if err != nil {
		t.Fatal(err)
	}
	if frac, exp := frexp(binary128.FromFloat64(-12)); !frac.Identical(binary128.FromFloat64(-0.75)) || exp != 4 {
		t.Errorf("frexp(-12) = %v, %d; want -0.75, 4", frac, exp)
	}
	modf, err := Split(p.Symbol("modf"))
	if err != nil {
		t.Fatal(err)
	}
	if frac, whole := modf(binary128.FromFloat64(3.25)); !frac.Identical(binary128.FromFloat64(0.25)) || !whole.Identical(binary128.FromFloat64(3)) {
		t.Errorf("modf(3.25) = %v, %v; want 0.25, 3", frac, whole)
	}
	nan, err := FromString(p.Symbol("nan"))
	if err != nil {
		t.Fatal(err)
	}
	if got := nan(""); !got.IsNaN() {
		t.Errorf("nan(\"\") = %v, want NaN", got)
	}
}

func TestMeasureQuad(t *testing.T) {
	s := MeasureQuad()
	if s.Allocated != 16 || s.GoSize != 16 {
		t.Errorf("quad storage = %d bytes, Go mirror %d", s.Allocated, s.GoSize)
	}
	if s.Populated != 16 {
		t.Errorf("populated = %d, want 16", s.Populated)
	}
	if s.Bytes[15] != 0xbf || s.Bytes[14] != 0xff {
		t.Errorf("-1 stored as % x", s.Bytes)
	}
}

func TestMeasureLongDouble(t *testing.T) {
	s := MeasureLongDouble()
	want := 16
	if Strategy() == target.SoftwareQuad {
		// x87 extended: 64-bit significand plus sign and exponent.
		want = 10
	}
	if s.Populated != want {
		t.Errorf("long double populated = %d, want %d (% x)", s.Populated, want, s.Bytes)
	}
	if s.Allocated < s.Populated {
		t.Errorf("long double allocated %d < populated %d", s.Allocated, s.Populated)
	}
}

func TestPopulated(t *testing.T) {
	tests := []struct {
		in   []byte
		want int
	}{
		{nil, 0},
		{[]byte{0, 0, 0}, 0},
		{[]byte{1, 0, 0}, 1},
		{[]byte{0, 0, 0x80, 0xbf, 0, 0}, 4},
	}
	for _, tt := range tests {
		if got := populated(tt.in); got != tt.want {
			t.Errorf("populated(% x) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampInt32(t *testing.T) {
	if clampInt32(5) != 5 || clampInt32(1<<40) != 1<<31-1 || clampInt32(-(1 << 40)) != -1<<31 {
		t.Error("clampInt32 does not saturate")
	}
}
