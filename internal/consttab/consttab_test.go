package consttab

import (
	"strings"
	"testing"

	"fp128/internal/binary128"
	"fp128/internal/target"
)

func TestLiterals_CarryEnoughDigits(t *testing.T) {
	for _, d := range All() {
		if n := d.SignificantDigits(); n < 36 {
			t.Errorf("%s: %d significant digits, want at least 36", d.Name, n)
		}
	}
}

func TestValue_KnownBitPatterns(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo uint64
	}{
		{"max", 0x7ffeffffffffffff, 0xffffffffffffffff},
		{"min", 0x0001000000000000, 0},
		{"epsilon", 0x3f8f000000000000, 0},
		{"denorm_min", 0, 1},
		{"e", 0x40005bf0a8b14576, 0x95355fb8ac404e7a},
		{"pi", 0x4000921fb54442d1, 0x8469898cc51701b8},
		{"pi_4", 0x3ffe921fb54442d1, 0x8469898cc51701b8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("missing constant %q", tt.name)
			}
			v, err := d.Value()
			if err != nil {
				t.Fatal(err)
			}
			if want := binary128.FromBits(tt.hi, tt.lo); !v.Identical(want) {
				t.Fatalf("%s = %#016x:%#016x, want %#016x:%#016x", tt.name, v.Hi, v.Lo, tt.hi, tt.lo)
			}
		})
	}
}

func TestValue_AllParse(t *testing.T) {
	for _, d := range All() {
		v, err := d.Value()
		if err != nil {
			t.Errorf("%s: %v", d.Name, err)
			continue
		}
		if v.IsInf(0) || v.IsNaN() || v.IsZero() || v.Signbit() {
			t.Errorf("%s parsed to %v", d.Name, v)
		}
	}
}

func TestTagged_UsesProfileSuffix(t *testing.T) {
	d, _ := Lookup("pi")
	if got := d.Tagged(target.MustSelect("amd64", false)); !strings.HasSuffix(got, "884Q") {
		t.Errorf("software literal = %q", got)
	}
	if got := d.Tagged(target.MustSelect("arm64", false)); !strings.HasSuffix(got, "884L") {
		t.Errorf("native literal = %q", got)
	}
}

func TestLimits_MatchFormat(t *testing.T) {
	want := map[string]int{
		"mant_dig": binary128.SignificandBits,
		"min_exp":  binary128.MinExp + 1,
		"max_exp":  binary128.MaxExp + 1,
		"dig":      33,
	}
	for name, v := range want {
		l, ok := LookupLimit(name)
		if !ok || l.Value != v {
			t.Errorf("%s = %d (found %v), want %d", name, l.Value, ok, v)
		}
	}
	if len(Limits()) != 6 {
		t.Errorf("%d limits, want 6", len(Limits()))
	}
}

func TestNames_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range All() {
		if seen[d.Name] || seen[d.GoName] {
			t.Errorf("duplicate name %s/%s", d.Name, d.GoName)
		}
		seen[d.Name], seen[d.GoName] = true, true
	}
}
