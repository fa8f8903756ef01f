package symtab

import (
	"errors"
	"strings"
	"testing"

	"fp128/internal/target"
)

func TestOperations_CategoryCounts(t *testing.T) {
	want := map[Category]int{
		RealUnary:        37,
		RealToInt:        5,
		ComplexToReal:    4,
		ComplexToComplex: 17,
		RealBinary:       10,
		RealTernary:      1,
		RealScale:        3,
		RealIntOut:       1,
		RealSplit:        1,
		RealBinaryIntOut: 1,
		RealSinCos:       1,
		RealOrder:        2,
		ComplexBinary:    1,
		StringToReal:     1,
	}
	total := 0
	for _, c := range Categories() {
		got := len(OperationsIn(c))
		if got != want[c] {
			t.Errorf("%s: %d operations, want %d", c, got, want[c])
		}
		total += got
	}
	if total != len(Operations()) {
		t.Errorf("categories cover %d operations, table has %d", total, len(Operations()))
	}
}

func TestOperations_NamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, op := range Operations() {
		if seen[op.Name] {
			t.Errorf("duplicate operation %q", op.Name)
		}
		seen[op.Name] = true
	}
}

func TestOperations_IntWidths(t *testing.T) {
	tests := map[string]IntType{
		"ilogb":   CInt,
		"lrint":   CLong,
		"lround":  CLong,
		"llrint":  CLongLong,
		"llround": CLongLong,
		"ldexp":   CInt,
		"scalbn":  CInt,
		"scalbln": CLong,
	}
	for name, want := range tests {
		op, ok := LookupOperation(name)
		if !ok {
			t.Fatalf("missing operation %q", name)
		}
		if op.Int != want {
			t.Errorf("%s: int type %v, want %v", name, op.Int, want)
		}
	}
	if op, _ := LookupOperation("sin"); op.Int != (IntType{}) {
		t.Errorf("sin has an int type %v", op.Int)
	}
}

func TestResolve_TagsEverySymbol(t *testing.T) {
	for _, arch := range []string{"amd64", "arm64", "riscv64"} {
		p := target.MustSelect(arch, false)
		tab, err := Resolve(p)
		if err != nil {
			t.Fatalf("%s: %v", arch, err)
		}
		if tab.Len() != len(Operations()) {
			t.Fatalf("%s: %d descriptors", arch, tab.Len())
		}
		for _, d := range tab.Descriptors() {
			if d.Symbol != d.Name+p.FunctionTag {
				t.Errorf("%s: %s resolved to %q", arch, d.Name, d.Symbol)
			}
			if d.Overridden {
				t.Errorf("%s: %s marked overridden", arch, d.Name)
			}
		}
	}
}

func TestResolve_KnownSymbols(t *testing.T) {
	sw := MustResolve(target.MustSelect("amd64", false))
	nw := MustResolve(target.MustSelect("arm64", false))
	for _, tt := range []struct {
		tab  *Table
		name string
		want string
	}{
		{sw, "sin", "sinq"},
		{sw, "csqrt", "csqrtq"},
		{sw, "llround", "llroundq"},
		{nw, "sin", "sinl"},
		{nw, "cabs", "cabsl"},
		{nw, "atan2", "atan2l"},
	} {
		got, err := tt.tab.Symbol(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("Symbol(%q) = %q, %v; want %q", tt.name, got, err, tt.want)
		}
	}
}

func TestResolve_OverrideChangesOneEntry(t *testing.T) {
	p := target.MustSelect("amd64", false)
	base := MustResolve(p)
	tab, err := Resolve(p, WithSymbol("cos", "sinq"))
	if err != nil {
		t.Fatal(err)
	}
	changed := 0
	for i, d := range tab.Descriptors() {
		if d.Symbol != base.Descriptors()[i].Symbol {
			changed++
			if d.Name != "cos" || d.Symbol != "sinq" || !d.Overridden {
				t.Errorf("unexpected change %+v", d)
			}
		}
	}
	if changed != 1 {
		t.Fatalf("%d entries changed, want 1", changed)
	}
	if ov := tab.Overrides(); len(ov) != 1 || ov[0].Name != "cos" {
		t.Fatalf("Overrides() = %+v", ov)
	}
}

func TestResolve_Errors(t *testing.T) {
	p := target.MustSelect("arm64", false)
	tests := []struct {
		name string
		p    target.Profile
		opts []Option
		want ErrorKind
	}{
		{"unknown override", p, []Option{WithSymbol("sine", "sinl")}, ErrUnknownOperation},
		{"empty override", p, []Option{WithSymbol("sin", "")}, ErrEmptySymbol},
		{"no tag", target.Profile{Arch: "arm64"}, nil, ErrNoFunctionTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.p, tt.opts...)
			var se *Error
			if !errors.As(err, &se) || se.Kind != tt.want {
				t.Fatalf("Resolve error = %v, want kind %d", err, tt.want)
			}
		})
	}
}

func TestTable_ByCategoryKeepsOrder(t *testing.T) {
	tab := MustResolve(target.MustSelect("riscv64", false))
	var names []string
	for _, d := range tab.ByCategory(ComplexToReal) {
		names = append(names, d.Name)
	}
	if got := strings.Join(names, ","); got != "cabs,carg,cimag,creal" {
		t.Fatalf("ByCategory(ComplexToReal) = %s", got)
	}
	if _, ok := tab.Lookup("nope"); ok {
		t.Fatal("Lookup(nope) succeeded")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCategory("quaternion"); err == nil {
		t.Error("ParseCategory(quaternion) succeeded")
	}
}
