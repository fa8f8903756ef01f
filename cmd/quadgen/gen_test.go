package main

import (
	"go/format"
	"strings"
	"testing"

	"fp128/internal/consttab"
	"fp128/internal/symtab"
)

func TestBindings_ReferenceEveryTaggedSymbol(t *testing.T) {
	for _, s := range strategies() {
		t.Run(s.file, func(t *testing.T) {
			out, err := bindings(s)
			if err != nil {
				t.Fatal(err)
			}
			src := string(out)
			for _, op := range symtab.Operations() {
				sym := s.profile.Symbol(op.Name)
				if !strings.Contains(src, "\t("+sym+"),\n") {
					t.Errorf("C table lacks %s", sym)
				}
				if !strings.Contains(src, "\t\""+sym+"\",\n") {
					t.Errorf("Go symbol list lacks %s", sym)
				}
			}
			for _, c := range consttab.All() {
				if !strings.Contains(src, c.Tagged(s.profile)+",") {
					t.Errorf("constant %s not emitted with suffix %s", c.Name, s.profile.LiteralSuffix)
				}
			}
			if !strings.Contains(src, "//go:build "+s.build+"\n") {
				t.Errorf("missing build constraint %q", s.build)
			}
			if strings.Contains(src, "$") {
				t.Error("unfilled placeholder in output")
			}
		})
	}
}

func TestBindings_StrategySpecifics(t *testing.T) {
	want := map[string][]string{
		"zz_quadmath.go": {"quadmath_snprintf(buf", "strtoflt128(s", `"%.*Q?"`, "-1.0Q;", "typedef __float128 fp128_t;", "const strategy = target.SoftwareQuad"},
		"zz_libm.go":     {"snprintf(buf", "strtold(s", `"%.*L?"`, "-1.0L;", "typedef long double fp128_t;", "const strategy = target.NativeWideFloat", "#cgo CFLAGS: -D_GNU_SOURCE\n"},
	}
	for _, s := range strategies() {
		out, err := bindings(s)
		if err != nil {
			t.Fatal(err)
		}
		for _, frag := range want[s.file] {
			if !strings.Contains(string(out), frag) {
				t.Errorf("%s lacks %q", s.file, frag)
			}
		}
	}
}

func TestFacade_OneFunctionPerOperation(t *testing.T) {
	out, err := facade()
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	for _, op := range symtab.Operations() {
		if !strings.Contains(src, "\nfunc "+exported(op.Name)+"(") {
			t.Errorf("no facade function for %s", op.Name)
		}
	}
	for _, frag := range []string{
		"func Ilogb(x Float) int { return int(ilogbFn(x)) }",
		"func Llround(x Float) int64 { return llroundFn(x) }",
		"func Ldexp(x Float, n int) Float { return ldexpFn(x, int64(n)) }",
		"func Scalbln(x Float, n int64) Float { return scalblnFn(x, n) }",
		"func Cabs(z Complex) Float { return cabsFn(z) }",
		"func Fma(x, y, z Float) Float { return fmaFn(x, y, z) }",
		"func Frexp(x Float) (Float, int) { return frexpFn(x) }",
		"func Modf(x Float) (Float, Float) { return modfFn(x) }",
		"func Remquo(x, y Float) (Float, int) { return remquoFn(x, y) }",
		"func Sincos(x Float) (Float, Float) { return sincosFn(x) }",
		"func Jn(n int, x Float) Float { return jnFn(n, x) }",
		"func Cpow(z, w Complex) Complex { return cpowFn(z, w) }",
		"func Nan(tag string) Float { return nanFn(tag) }",
		"var sincosFn = std.mustSinCos(\"sincos\")",
		"// Sin calls sinq (SoftwareQuad) or sinl (NativeWideFloat).",
		"var E = std.mustConstant(\"e\")",
		"const MantDig = 113",
	} {
		if !strings.Contains(src, frag) {
			t.Errorf("facade lacks %q", frag)
		}
	}
}

func TestBindings_OutParamShapes(t *testing.T) {
	for _, s := range strategies() {
		out, err := bindings(s)
		if err != nil {
			t.Fatal(err)
		}
		for _, frag := range []string{
			"typedef fp128_t (*fp128_real_int_fn)(fp128_t, int *);",
			"typedef fp128_t (*fp128_split_fn)(fp128_t, fp128_t *);",
			"typedef fp128_t (*fp128_binary_int_fn)(fp128_t, fp128_t, int *);",
			"typedef void (*fp128_sincos_fn)(fp128_t, fp128_t *, fp128_t *);",
			"typedef fp128_t (*fp128_order_fn)(int, fp128_t);",
			"typedef fp128c_t (*fp128_complex_binary_fn)(fp128c_t, fp128c_t);",
			"typedef fp128_t (*fp128_string_fn)(const char *);",
			"v = fp128_real_int[i](a, &e);",
			"fp128_sincos[i](a, &vs, &vc);",
		} {
			if !strings.Contains(string(out), frag) {
				t.Errorf("%s lacks %q", s.file, frag)
			}
		}
	}
}

func TestOutput_IsGofmtStable(t *testing.T) {
	files, err := render(".")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		again, err := format.Source(f.data)
		if err != nil {
			t.Fatalf("%s: %v", f.path, err)
		}
		if string(again) != string(f.data) {
			t.Errorf("%s changes under gofmt", f.path)
		}
	}
}

func TestExported(t *testing.T) {
	for in, want := range map[string]string{"log1p": "Log1p", "j0": "J0", "cabs": "Cabs", "nextafter": "Nextafter", "sincos": "Sincos"} {
		if got := exported(in); got != want {
			t.Errorf("exported(%q) = %q, want %q", in, got, want)
		}
	}
}
