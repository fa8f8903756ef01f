package main

import (
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"fp128/internal/consttab"
	"fp128/internal/symtab"
	"fp128/internal/target"
)

const generatedHeader = "// Code generated by quadgen. DO NOT EDIT.\n\n"

// strategy is one generated binding file.
type strategy struct {
	file     string
	build    string
	profile  target.Profile
	ldflags  string
	defines  []string
	includes []string
	mantDig  string // C macro holding the significand width
	snprintf string
	strtod   string
}

func strategies() []strategy {
	return []strategy{
		{
			file:     "zz_quadmath.go",
			build:    "amd64",
			profile:  target.MustSelect("amd64", false),
			ldflags:  "-lquadmath",
			includes: []string{"errno.h", "quadmath.h", "stdlib.h", "string.h"},
			mantDig:  "FLT128_MANT_DIG",
			snprintf: "quadmath_snprintf",
			strtod:   "strtoflt128",
		},
		{
			file:     "zz_libm.go",
			build:    "arm64 || riscv64",
			profile:  target.MustSelect("arm64", false),
			ldflags:  "-lm",
			defines:  []string{"_GNU_SOURCE"}, // sincosl
			includes: []string{"complex.h", "errno.h", "float.h", "math.h", "stdio.h", "stdlib.h", "string.h"},
			mantDig:  "LDBL_MANT_DIG",
			snprintf: "snprintf",
			strtod:   "strtold",
		},
	}
}

// shape is one C function-pointer table and its index-aligned Go slice.
type shape struct {
	table  string
	goVar  string
	ret    string
	params string
	match  func(symtab.Operation) bool
}

func inCategory(c symtab.Category) func(symtab.Operation) bool {
	return func(op symtab.Operation) bool { return op.Category == c }
}

func withInt(c symtab.Category, t symtab.IntType) func(symtab.Operation) bool {
	return func(op symtab.Operation) bool { return op.Category == c && op.Int == t }
}

var shapes = []shape{
	{"fp128_real", "realSymbols", "fp128_t", "fp128_t", inCategory(symtab.RealUnary)},
	{"fp128_int", "intSymbols", "int", "fp128_t", withInt(symtab.RealToInt, symtab.CInt)},
	{"fp128_long", "longSymbols", "long", "fp128_t", withInt(symtab.RealToInt, symtab.CLong)},
	{"fp128_llong", "longLongSymbols", "long long", "fp128_t", withInt(symtab.RealToInt, symtab.CLongLong)},
	{"fp128_creal", "complexRealSymbols", "fp128_t", "fp128c_t", inCategory(symtab.ComplexToReal)},
	{"fp128_complex", "complexSymbols", "fp128c_t", "fp128c_t", inCategory(symtab.ComplexToComplex)},
	{"fp128_binary", "binarySymbols", "fp128_t", "fp128_t, fp128_t", inCategory(symtab.RealBinary)},
	{"fp128_ternary", "ternarySymbols", "fp128_t", "fp128_t, fp128_t, fp128_t", inCategory(symtab.RealTernary)},
	{"fp128_scale_int", "scaleIntSymbols", "fp128_t", "fp128_t, int", withInt(symtab.RealScale, symtab.CInt)},
	{"fp128_scale_long", "scaleLongSymbols", "fp128_t", "fp128_t, long", withInt(symtab.RealScale, symtab.CLong)},
	{"fp128_real_int", "realIntSymbols", "fp128_t", "fp128_t, int *", inCategory(symtab.RealIntOut)},
	{"fp128_split", "splitSymbols", "fp128_t", "fp128_t, fp128_t *", inCategory(symtab.RealSplit)},
	{"fp128_binary_int", "binaryIntSymbols", "fp128_t", "fp128_t, fp128_t, int *", inCategory(symtab.RealBinaryIntOut)},
	{"fp128_sincos", "sinCosSymbols", "void", "fp128_t, fp128_t *, fp128_t *", inCategory(symtab.RealSinCos)},
	{"fp128_order", "orderSymbols", "fp128_t", "int, fp128_t", inCategory(symtab.RealOrder)},
	{"fp128_complex_binary", "complexBinarySymbols", "fp128c_t", "fp128c_t, fp128c_t", inCategory(symtab.ComplexBinary)},
	{"fp128_string", "stringSymbols", "fp128_t", "const char *", inCategory(symtab.StringToReal)},
}

func (s shape) symbols(p target.Profile) []string {
	var out []string
	for _, op := range symtab.Operations() {
		if s.match(op) {
			out = append(out, p.Symbol(op.Name))
		}
	}
	return out
}

// cTrampolines copy raw storage in and out of the typed C calls.
const cTrampolines = `static void fp128_call_real(int i, const void *x, void *r) {
	fp128_t a, v;
	memcpy(&a, x, sizeof a);
	v = fp128_real[i](a);
	memcpy(r, &v, sizeof v);
}

static int fp128_call_int(int i, const void *x) {
	fp128_t a;
	memcpy(&a, x, sizeof a);
	return fp128_int[i](a);
}

static long fp128_call_long(int i, const void *x) {
	fp128_t a;
	memcpy(&a, x, sizeof a);
	return fp128_long[i](a);
}

static long long fp128_call_llong(int i, const void *x) {
	fp128_t a;
	memcpy(&a, x, sizeof a);
	return fp128_llong[i](a);
}

static void fp128_call_creal(int i, const void *z, void *r) {
	fp128c_t a;
	fp128_t v;
	memcpy(&a, z, sizeof a);
	v = fp128_creal[i](a);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_complex(int i, const void *z, void *r) {
	fp128c_t a, v;
	memcpy(&a, z, sizeof a);
	v = fp128_complex[i](a);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_binary(int i, const void *x, const void *y, void *r) {
	fp128_t a, b, v;
	memcpy(&a, x, sizeof a);
	memcpy(&b, y, sizeof b);
	v = fp128_binary[i](a, b);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_ternary(int i, const void *x, const void *y, const void *z, void *r) {
	fp128_t a, b, c, v;
	memcpy(&a, x, sizeof a);
	memcpy(&b, y, sizeof b);
	memcpy(&c, z, sizeof c);
	v = fp128_ternary[i](a, b, c);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_scale_int(int i, const void *x, int n, void *r) {
	fp128_t a, v;
	memcpy(&a, x, sizeof a);
	v = fp128_scale_int[i](a, n);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_scale_long(int i, const void *x, long n, void *r) {
	fp128_t a, v;
	memcpy(&a, x, sizeof a);
	v = fp128_scale_long[i](a, n);
	memcpy(r, &v, sizeof v);
}

static int fp128_call_real_int(int i, const void *x, void *r) {
	fp128_t a, v;
	int e = 0;
	memcpy(&a, x, sizeof a);
	v = fp128_real_int[i](a, &e);
	memcpy(r, &v, sizeof v);
	return e;
}

static void fp128_call_split(int i, const void *x, void *r, void *out) {
	fp128_t a, v, o = 0;
	memcpy(&a, x, sizeof a);
	v = fp128_split[i](a, &o);
	memcpy(r, &v, sizeof v);
	memcpy(out, &o, sizeof o);
}

static int fp128_call_binary_int(int i, const void *x, const void *y, void *r) {
	fp128_t a, b, v;
	int q = 0;
	memcpy(&a, x, sizeof a);
	memcpy(&b, y, sizeof b);
	v = fp128_binary_int[i](a, b, &q);
	memcpy(r, &v, sizeof v);
	return q;
}

static void fp128_call_sincos(int i, const void *x, void *s, void *c) {
	fp128_t a, vs = 0, vc = 0;
	memcpy(&a, x, sizeof a);
	fp128_sincos[i](a, &vs, &vc);
	memcpy(s, &vs, sizeof vs);
	memcpy(c, &vc, sizeof vc);
}

static void fp128_call_order(int i, int n, const void *x, void *r) {
	fp128_t a, v;
	memcpy(&a, x, sizeof a);
	v = fp128_order[i](n, a);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_complex_binary(int i, const void *z, const void *w, void *r) {
	fp128c_t a, b, v;
	memcpy(&a, z, sizeof a);
	memcpy(&b, w, sizeof b);
	v = fp128_complex_binary[i](a, b);
	memcpy(r, &v, sizeof v);
}

static void fp128_call_string(int i, const char *s, void *r) {
	fp128_t v;
	v = fp128_string[i](s);
	memcpy(r, &v, sizeof v);
}
`

// cRuntime covers constants, text conversion and the storage check. The
// $-placeholders are filled per strategy.
const cRuntime = `static void fp128_constant(int i, void *r) {
	memcpy(r, &fp128_constants[i], sizeof(fp128_t));
}

static int fp128_format(char *buf, size_t n, char verb, int prec, const void *x) {
	char pattern[] = "%.*$TAG?";
	fp128_t a;
	pattern[sizeof pattern - 2] = verb;
	memcpy(&a, x, sizeof a);
	return $SNPRINTF(buf, n, pattern, prec, a);
}

static int fp128_parse(const char *s, void *r, int *erange) {
	char *end;
	fp128_t v;
	errno = 0;
	v = $STRTOD(s, &end);
	*erange = errno == ERANGE;
	memcpy(r, &v, sizeof v);
	return (int)(end - s);
}

static size_t fp128_size(void) { return sizeof(fp128_t); }

static void fp128_minus_one(void *r) {
	union { fp128_t v; unsigned char b[sizeof(fp128_t)]; } u;
	memset(&u, 0, sizeof u);
	u.v = -1.0$SUFFIX;
	memcpy(r, u.b, sizeof u.b);
}
`

// goCalls is identical for every strategy; only the preamble differs.
const goCalls = `func callReal(i int, x binary128.Float) (r binary128.Float) {
	C.fp128_call_real(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&r))
	return r
}

func callInt(i int, x binary128.Float) int32 {
	return int32(C.fp128_call_int(C.int(i), unsafe.Pointer(&x)))
}

func callLong(i int, x binary128.Float) int64 {
	return int64(C.fp128_call_long(C.int(i), unsafe.Pointer(&x)))
}

func callLongLong(i int, x binary128.Float) int64 {
	return int64(C.fp128_call_llong(C.int(i), unsafe.Pointer(&x)))
}

func callComplexReal(i int, z binary128.Complex) (r binary128.Float) {
	C.fp128_call_creal(C.int(i), unsafe.Pointer(&z), unsafe.Pointer(&r))
	return r
}

func callComplex(i int, z binary128.Complex) (r binary128.Complex) {
	C.fp128_call_complex(C.int(i), unsafe.Pointer(&z), unsafe.Pointer(&r))
	return r
}

func callBinary(i int, x, y binary128.Float) (r binary128.Float) {
	C.fp128_call_binary(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&r))
	return r
}

func callTernary(i int, x, y, z binary128.Float) (r binary128.Float) {
	C.fp128_call_ternary(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z), unsafe.Pointer(&r))
	return r
}

func callScaleInt(i int, x binary128.Float, n int32) (r binary128.Float) {
	C.fp128_call_scale_int(C.int(i), unsafe.Pointer(&x), C.int(n), unsafe.Pointer(&r))
	return r
}

func callScaleLong(i int, x binary128.Float, n int64) (r binary128.Float) {
	C.fp128_call_scale_long(C.int(i), unsafe.Pointer(&x), C.long(n), unsafe.Pointer(&r))
	return r
}

func callRealInt(i int, x binary128.Float) (r binary128.Float, e int32) {
	e = int32(C.fp128_call_real_int(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&r)))
	return r, e
}

func callSplit(i int, x binary128.Float) (r, out binary128.Float) {
	C.fp128_call_split(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&r), unsafe.Pointer(&out))
	return r, out
}

func callBinaryInt(i int, x, y binary128.Float) (r binary128.Float, q int32) {
	q = int32(C.fp128_call_binary_int(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&r)))
	return r, q
}

func callSinCos(i int, x binary128.Float) (s, c binary128.Float) {
	C.fp128_call_sincos(C.int(i), unsafe.Pointer(&x), unsafe.Pointer(&s), unsafe.Pointer(&c))
	return s, c
}

func callOrder(i int, n int32, x binary128.Float) (r binary128.Float) {
	C.fp128_call_order(C.int(i), C.int(n), unsafe.Pointer(&x), unsafe.Pointer(&r))
	return r
}

func callComplexBinary(i int, z, w binary128.Complex) (r binary128.Complex) {
	C.fp128_call_complex_binary(C.int(i), unsafe.Pointer(&z), unsafe.Pointer(&w), unsafe.Pointer(&r))
	return r
}

func callString(i int, s string) (r binary128.Float) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	C.fp128_call_string(C.int(i), cs, unsafe.Pointer(&r))
	return r
}

func callConstant(i int) (r binary128.Float) {
	C.fp128_constant(C.int(i), unsafe.Pointer(&r))
	return r
}

func callFormat(x binary128.Float, verb byte, prec int) string {
	n := C.fp128_format(nil, 0, C.char(verb), C.int(prec), unsafe.Pointer(&x))
	if n < 0 {
		return ""
	}
	buf := make([]byte, int(n)+1)
	C.fp128_format((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)), C.char(verb), C.int(prec), unsafe.Pointer(&x))
	return string(buf[:n])
}

func callParse(s string) (r binary128.Float, consumed int, erange bool) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	var er C.int
	n := C.fp128_parse(cs, unsafe.Pointer(&r), &er)
	return r, int(n), er != 0
}

func quadMinusOne() []byte {
	b := make([]byte, int(C.fp128_size()))
	C.fp128_minus_one(unsafe.Pointer(&b[0]))
	return b
}
`

// bindings renders one libquad strategy file.
func bindings(s strategy) ([]byte, error) {
	p := s.profile
	var b strings.Builder
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "//go:build %s\n\npackage libquad\n\n/*\n", s.build)
	fmt.Fprintf(&b, "#cgo LDFLAGS: %s\n", s.ldflags)
	for _, d := range s.defines {
		fmt.Fprintf(&b, "#cgo CFLAGS: -D%s\n", d)
	}
	for _, inc := range s.includes {
		fmt.Fprintf(&b, "#include <%s>\n", inc)
	}
	fmt.Fprintf(&b, "\ntypedef %s fp128_t;\ntypedef %s fp128c_t;\n\n", p.ScalarType, p.ComplexType)
	b.WriteString("_Static_assert(sizeof(fp128_t) == 16, \"quad storage must be 16 bytes\");\n")
	fmt.Fprintf(&b, "_Static_assert(%s == 113, \"quad must carry a 113-bit significand\");\n\n", s.mantDig)

	for _, sh := range shapes {
		fmt.Fprintf(&b, "typedef %s (*%s_fn)(%s);\n", sh.ret, sh.table, sh.params)
	}
	b.WriteString("\n")
	for _, sh := range shapes {
		syms := sh.symbols(p)
		if len(syms) == 0 {
			return nil, fmt.Errorf("%s: no operations for table %s", s.file, sh.table)
		}
		// Parentheses keep function-like macros from expanding.
		fmt.Fprintf(&b, "static const %s_fn %s[] = {\n", sh.table, sh.table)
		for _, sym := range syms {
			fmt.Fprintf(&b, "\t(%s),\n", sym)
		}
		b.WriteString("};\n\n")
	}
	b.WriteString(cTrampolines)

	b.WriteString("\nstatic const fp128_t fp128_constants[] = {\n")
	for _, c := range consttab.All() {
		fmt.Fprintf(&b, "\t%s,\n", c.Tagged(p))
	}
	b.WriteString("};\n\n")
	b.WriteString(strings.NewReplacer(
		"$TAG", p.FormatTag,
		"$SNPRINTF", s.snprintf,
		"$STRTOD", s.strtod,
		"$SUFFIX", p.LiteralSuffix,
	).Replace(cRuntime))
	b.WriteString("*/\nimport \"C\"\n\n")

	b.WriteString("import (\n\t\"unsafe\"\n\n\t\"fp128/internal/binary128\"\n\t\"fp128/internal/target\"\n)\n\n")
	fmt.Fprintf(&b, "const strategy = target.%s\n\n", p.Kind)
	for _, sh := range shapes {
		writeStrings(&b, sh.goVar, sh.symbols(p))
	}
	var names []string
	for _, c := range consttab.All() {
		names = append(names, c.Name)
	}
	writeStrings(&b, "constantNames", names)
	b.WriteString(goCalls)

	return gofmt(s.file, b.String())
}

func writeStrings(b *strings.Builder, name string, values []string) {
	fmt.Fprintf(b, "var %s = []string{\n", name)
	for _, v := range values {
		fmt.Fprintf(b, "\t%q,\n", v)
	}
	b.WriteString("}\n\n")
}

// exported turns a C name into a Go identifier: "log1p" -> "Log1p".
func exported(name string) string {
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// facade renders quad/zz_facade.go: one forwarding function per operation,
// then the constants and limits.
func facade() ([]byte, error) {
	sw := target.MustSelect("amd64", false)
	nw := target.MustSelect("arm64", false)

	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("package quad\n")
	for _, op := range symtab.Operations() {
		goName := exported(op.Name)
		fn := op.Name + "Fn"
		fmt.Fprintf(&b, "\nvar %s = std.%s(%q)\n\n", fn, binder(op), op.Name)
		fmt.Fprintf(&b, "// %s calls %s (%s) or %s (%s).\n", goName, sw.Symbol(op.Name), sw.Kind, nw.Symbol(op.Name), nw.Kind)
		fmt.Fprintf(&b, "func %s%s\n", goName, body(op, fn))
	}
	for _, c := range consttab.All() {
		fmt.Fprintf(&b, "\n// %s is %s.\nvar %s = std.mustConstant(%q)\n", c.GoName, c.Doc, c.GoName, c.Name)
	}
	for _, l := range consttab.Limits() {
		fmt.Fprintf(&b, "\n// %s is %s.\nconst %s = %d\n", l.GoName, l.Doc, l.GoName, l.Value)
	}
	return gofmt("zz_facade.go", b.String())
}

func binder(op symtab.Operation) string {
	switch op.Category {
	case symtab.RealUnary:
		return "mustUnary"
	case symtab.RealToInt:
		return "mustToInt"
	case symtab.ComplexToReal:
		return "mustToReal"
	case symtab.ComplexToComplex:
		return "mustComplex"
	case symtab.RealBinary:
		return "mustBinary"
	case symtab.RealTernary:
		return "mustTernary"
	case symtab.RealScale:
		return "mustScale"
	case symtab.RealIntOut:
		return "mustIntOut"
	case symtab.RealSplit:
		return "mustSplit"
	case symtab.RealBinaryIntOut:
		return "mustBinaryInt"
	case symtab.RealSinCos:
		return "mustSinCos"
	case symtab.RealOrder:
		return "mustOrder"
	case symtab.ComplexBinary:
		return "mustComplexBinary"
	case symtab.StringToReal:
		return "mustFromString"
	}
	panic(fmt.Sprintf("quadgen: no binder for %s", op.Category))
}

// body renders the signature and body of the forwarding function. C int
// maps to Go int; C long and long long map to int64.
func body(op symtab.Operation, fn string) string {
	switch op.Category {
	case symtab.RealUnary:
		return fmt.Sprintf("(x Float) Float { return %s(x) }", fn)
	case symtab.RealToInt:
		if op.Int == symtab.CInt {
			return fmt.Sprintf("(x Float) int { return int(%s(x)) }", fn)
		}
		return fmt.Sprintf("(x Float) int64 { return %s(x) }", fn)
	case symtab.ComplexToReal:
		return fmt.Sprintf("(z Complex) Float { return %s(z) }", fn)
	case symtab.ComplexToComplex:
		return fmt.Sprintf("(z Complex) Complex { return %s(z) }", fn)
	case symtab.RealBinary:
		return fmt.Sprintf("(x, y Float) Float { return %s(x, y) }", fn)
	case symtab.RealTernary:
		return fmt.Sprintf("(x, y, z Float) Float { return %s(x, y, z) }", fn)
	case symtab.RealScale:
		if op.Int == symtab.CInt {
			return fmt.Sprintf("(x Float, n int) Float { return %s(x, int64(n)) }", fn)
		}
		return fmt.Sprintf("(x Float, n int64) Float { return %s(x, n) }", fn)
	case symtab.RealIntOut:
		return fmt.Sprintf("(x Float) (Float, int) { return %s(x) }", fn)
	case symtab.RealSplit, symtab.RealSinCos:
		return fmt.Sprintf("(x Float) (Float, Float) { return %s(x) }", fn)
	case symtab.RealBinaryIntOut:
		return fmt.Sprintf("(x, y Float) (Float, int) { return %s(x, y) }", fn)
	case symtab.RealOrder:
		return fmt.Sprintf("(n int, x Float) Float { return %s(n, x) }", fn)
	case symtab.ComplexBinary:
		return fmt.Sprintf("(z, w Complex) Complex { return %s(z, w) }", fn)
	case symtab.StringToReal:
		return fmt.Sprintf("(tag string) Float { return %s(tag) }", fn)
	}
	panic(fmt.Sprintf("quadgen: no body for %s", op.Category))
}

func gofmt(name, src string) ([]byte, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("%s: generated code does not parse: %w", name, err)
	}
	return out, nil
}
