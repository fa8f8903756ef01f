package quad

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"unsafe"

	"fp128/internal/binary128"
	"fp128/internal/consttab"
	"fp128/internal/symtab"
)

const eDigits = "2.718281828459045235360287471352662"

func f64(v float64) Float { return FromFloat64(v) }

func TestStorageSize(t *testing.T) {
	if got := unsafe.Sizeof(Float{}); got != 16 {
		t.Fatalf("sizeof(Float) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(Complex{}); got != 32 {
		t.Fatalf("sizeof(Complex) = %d, want 32", got)
	}
}

func TestProfileMatchesArch(t *testing.T) {
	p := Profile()
	want := map[string]Kind{"amd64": SoftwareQuad, "arm64": NativeWideFloat, "riscv64": NativeWideFloat}[runtime.GOARCH]
	if p.Kind != want {
		t.Fatalf("Profile().Kind = %s on %s, want %s", p.Kind, runtime.GOARCH, want)
	}
	if p.Compiler == "" {
		t.Error("Profile().Compiler is empty")
	}
}

func TestConstantsMatchLiterals(t *testing.T) {
	for _, d := range consttab.All() {
		t.Run(d.Name, func(t *testing.T) {
			got, ok := Constant(d.Name)
			if !ok {
				t.Fatalf("Constant(%q) missing", d.Name)
			}
			want, err := d.Value()
			if err != nil {
				t.Fatalf("literal %q: %v", d.Literal, err)
			}
			if !binary128.Float(got).Identical(want) {
				t.Errorf("Constant(%q) = %v, literal rounds to %v", d.Name, got, want)
			}
		})
	}
	if _, ok := Constant("tau"); ok {
		t.Error("Constant(tau) should not exist")
	}
}

func TestFormatE(t *testing.T) {
	if got := Format(E, 'f', 33); got != eDigits {
		t.Errorf("Format(E, 'f', 33) = %q, want %q", got, eDigits)
	}
	if got := fmt.Sprintf("%.33f", E); got != eDigits {
		t.Errorf("Sprintf(%%.33f, E) = %q, want %q", got, eDigits)
	}
	if got := Format(E, 'k', 3); got != "%k" {
		t.Errorf("Format with unknown verb = %q", got)
	}
}

func TestFormatAgreesWithText(t *testing.T) {
	values := []Float{Pi, Pi4, Max, Min, DenormMin, Epsilon, f64(-0.1), f64(1e300)}
	for _, x := range values {
		for _, verb := range []byte{'f', 'e', 'g'} {
			for _, prec := range []int{0, 5, 33} {
				if verb == 'f' && x.Float64() > 1e100 {
					continue
				}
				c, g := Format(x, verb, prec), x.Text(verb, prec)
				if c != g {
					t.Errorf("%v %c %d: runtime %q, codec %q", x, verb, prec, c, g)
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2.718281828459045235360287471352662498")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.Identical(E) {
		t.Errorf("Parse(e) = %v, want %v", got, E)
	}
	if got, err := Parse("  0.5 "); err != nil || !got.Identical(f64(0.5)) {
		t.Errorf("Parse(\"  0.5 \") = %v, %v", got, err)
	}
	if got, err := Parse("1e-5000"); err != nil || !got.IsZero() {
		t.Errorf("Parse(1e-5000) = %v, %v; want 0, nil", got, err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "abc", "1.5x", "1 2"} {
		_, err := Parse(s)
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Input != s {
			t.Errorf("Parse(%q) error = %v, want *ParseError", s, err)
		}
		if !errors.Is(err, binary128.ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", s, err)
		}
	}
	for _, s := range []string{"-1e5000", "1.1897314953572317650857593266280071e4932"} {
		got, err := Parse(s)
		if !errors.Is(err, binary128.ErrRange) {
			t.Errorf("Parse(%s) error = %v, want ErrRange", s, err)
		}
		if !got.IsInf(0) {
			t.Errorf("Parse(%s) = %v, want an infinity", s, got)
		}
	}
}

func TestParseInfinity(t *testing.T) {
	for _, s := range []string{"inf", "-INF", "+Infinity"} {
		got, err := Parse(s)
		if err != nil || !got.IsInf(0) {
			t.Errorf("Parse(%q) = %v, %v; want an infinity, nil", s, got, err)
		}
	}
	if got, err := Parse("1.18973149535723176508575932662800702e4932"); err != nil || !got.Identical(Max) {
		t.Errorf("Parse(max) = %v, %v; want Max, nil", got, err)
	}
}

func TestExactResults(t *testing.T) {
	tests := []struct {
		name string
		got  Float
		want Float
	}{
		{"sqrt", Sqrt(f64(4)), f64(2)},
		{"fabs", Fabs(f64(-3.5)), f64(3.5)},
		{"ceil", Ceil(Pi), f64(4)},
		{"floor", Floor(Pi), f64(3)},
		{"trunc", Trunc(f64(-2.7)), f64(-2)},
		{"fmax", Fmax(f64(1), f64(2)), f64(2)},
		{"ldexp", Ldexp(f64(1), 3), f64(8)},
		{"scalbln", Scalbln(f64(3), -1), f64(1.5)},
		{"fma", Fma(f64(2), f64(3), f64(4)), f64(10)},
		{"cabs", Cabs(Cmplx(f64(3), f64(4))), f64(5)},
		{"creal", Creal(Cmplx(f64(1), f64(2))), f64(1)},
		{"cimag", Cimag(Cmplx(f64(1), f64(2))), f64(2)},
		{"exp zero", Exp(Float{}), f64(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Identical(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIntegerResults(t *testing.T) {
	if got := Ilogb(f64(8)); got != 3 {
		t.Errorf("Ilogb(8) = %d", got)
	}
	if got := Lround(f64(2.5)); got != 3 {
		t.Errorf("Lround(2.5) = %d", got)
	}
	if got := Llrint(f64(2.5)); got != 2 {
		t.Errorf("Llrint(2.5) = %d", got)
	}
}

func TestOutParamResults(t *testing.T) {
	if frac, exp := Frexp(f64(8)); !frac.Identical(f64(0.5)) || exp != 4 {
		t.Errorf("Frexp(8) = %v, %d; want 0.5, 4", frac, exp)
	}
	if frac, whole := Modf(f64(-2.5)); !frac.Identical(f64(-0.5)) || !whole.Identical(f64(-2)) {
		t.Errorf("Modf(-2.5) = %v, %v; want -0.5, -2", frac, whole)
	}
	if rem, quo := Remquo(f64(7), f64(2)); !rem.Identical(f64(-1)) || quo&7 != 4 {
		t.Errorf("Remquo(7, 2) = %v, %d; want -1 and quotient bits 4", rem, quo)
	}
	if s, c := Sincos(Float{}); !s.IsZero() || !c.Identical(f64(1)) {
		t.Errorf("Sincos(0) = %v, %v; want 0, 1", s, c)
	}
	s, c := Sincos(Pi4)
	if !s.Identical(Sin(Pi4)) || !c.Identical(Cos(Pi4)) {
		t.Errorf("Sincos(pi/4) = %v, %v; want %v, %v", s, c, Sin(Pi4), Cos(Pi4))
	}
}

func TestOrderResults(t *testing.T) {
	if got := Jn(0, Pi4); !got.Identical(J0(Pi4)) {
		t.Errorf("Jn(0, pi/4) = %v, want J0 = %v", got, J0(Pi4))
	}
	if got := Yn(1, Pi4); !got.Identical(Y1(Pi4)) {
		t.Errorf("Yn(1, pi/4) = %v, want Y1 = %v", got, Y1(Pi4))
	}
}

func TestCpowAndNan(t *testing.T) {
	if got := Cpow(Cmplx(f64(2), Float{}), Complex{}); !got.Real().Identical(f64(1)) {
		t.Errorf("Cpow(2, 0) = %v, want real part 1", got)
	}
	n := Nan("")
	if !n.IsNaN() || n.IsSignaling() || n.IsFinite() {
		t.Errorf("Nan(\"\") = %v, want a quiet NaN", n)
	}
}

func TestConj(t *testing.T) {
	z := Conj(Cmplx(f64(1), f64(2)))
	if !z.Identical(Cmplx(f64(1), f64(-2))) {
		t.Errorf("Conj(1+2i) = %v", z)
	}
}

func TestOverrideRebindsOperation(t *testing.T) {
	sym := Profile().Symbol("sin")
	f, err := NewFacade(WithSymbol("cos", sym))
	if err != nil {
		t.Fatalf("NewFacade: %v", err)
	}
	op, ok := f.Op("cos")
	if !ok || !op.Overridden || op.Symbol != sym {
		t.Fatalf("Op(cos) = %+v, %v", op, ok)
	}
	if got := op.Unary(Pi4); !got.Identical(Sin(Pi4)) {
		t.Errorf("overridden cos(pi/4) = %v, want sin(pi/4) = %v", got, Sin(Pi4))
	}
}

func TestOverrideWrongShape(t *testing.T) {
	_, err := NewFacade(WithSymbol("sin", Profile().Symbol("cabs")))
	var se *symtab.Error
	if !errors.As(err, &se) || se.Kind != symtab.ErrUnboundSymbol || se.Name != "sin" {
		t.Fatalf("NewFacade error = %v, want unbound symbol for sin", err)
	}
	other := "q"
	if Profile().FunctionTag == "q" {
		other = "l"
	}
	_, err = NewFacade(WithSymbol("sin", "sin"+other))
	if !errors.As(err, &se) || se.Kind != symtab.ErrUnboundSymbol || se.Symbol != "sin"+other {
		t.Fatalf("NewFacade with the other strategy's tag: error = %v, want unbound symbol", err)
	}
	_, err = NewFacade(WithSymbol("tan2", "atan2q"))
	if !errors.As(err, &se) || se.Kind != symtab.ErrUnknownOperation {
		t.Fatalf("NewFacade error = %v, want unknown operation", err)
	}
}

func TestDefaultCoversEveryOperation(t *testing.T) {
	for _, op := range symtab.Operations() {
		bound, ok := Default().Op(op.Name)
		if !ok {
			t.Errorf("Default() lacks %s", op.Name)
			continue
		}
		if bound.Symbol != Profile().Symbol(op.Name) {
			t.Errorf("%s bound to %s", op.Name, bound.Symbol)
		}
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		format string
		arg    any
		want   string
	}{
		{"%12.10f", Pi, "3.1415926536"},
		{"%14.10f", Pi, "  3.1415926536"},
		{"%-8.2f|", Pi, "3.14    |"},
		{"%08.3f", f64(-1.5), "-001.500"},
		{"%+.1f", Pi, "+3.1"},
		{"% .1e", Pi, " 3.1e+00"},
		{"%v", f64(0.5), "0.5"},
		{"%s", f64(-2), "-2"},
		{"%.3g", f64(1234.5), "1.23e+03"},
		{"%6.1f", binary128Inf(), "   inf"},
		{"%d", f64(1), "%!d(quad.Float=1)"},
		{"%.1f", Cmplx(f64(1), f64(-2)), "(1.0-2.0i)"},
		{"%v", Cmplx(f64(1), f64(2)), "(1+2i)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func binary128Inf() Float { return Float(binary128.Inf(1)) }

func TestLimits(t *testing.T) {
	if MantDig != binary128.SignificandBits {
		t.Errorf("MantDig = %d", MantDig)
	}
	if Dig != 33 || MaxExp != 16384 || MinExp != -16381 {
		t.Errorf("limits = %d %d %d", Dig, MaxExp, MinExp)
	}
}

func BenchmarkSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Sin(Pi4)
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Format(E, 'f', 33)
	}
}
