// Package target decides which quad-precision strategy a build uses.
//
// The decision is made once per GOARCH by a build-constrained file; there is
// no runtime switch between strategies and no fallback when neither applies.
package target

import (
	"fmt"
	"strings"
)

// Kind is the quad representation strategy.
type Kind uint8

const (
	// NativeWideFloat: C long double already is IEEE-754 binary128.
	NativeWideFloat Kind = iota + 1
	// SoftwareQuad: __float128 from libquadmath; long double is narrower.
	SoftwareQuad
)

func (k Kind) String() string {
	switch k {
	case NativeWideFloat:
		return "NativeWideFloat"
	case SoftwareQuad:
		return "SoftwareQuad"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind accepts the Kind names and the short forms "native" and
// "software", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nativewidefloat", "native":
		return NativeWideFloat, nil
	case "softwarequad", "software":
		return SoftwareQuad, nil
	}
	return 0, &SelectError{Kind: SelectErrUnknownKind, Value: s}
}

// Profile is everything downstream code needs to know about the selected
// strategy. It is fixed for the lifetime of a build.
type Profile struct {
	Arch     string // GOARCH
	Triple   string // e.g. "x86_64-linux-gnu"
	Compiler string // C compiler identity, empty until filled by the bindings
	Kind     Kind

	LiteralSuffix string // appended to C float literals: "L" or "Q"
	FormatTag     string // printf length modifier: "L" or "Q"
	FunctionTag   string // appended to libm names: "l" or "q"

	Runtime     string // shared object providing the tagged symbols
	Header      string // C header declaring them
	ScalarType  string // C spelling of the quad type
	ComplexType string // C spelling of the complex quad type
}

// WithCompiler returns a copy of p carrying the C compiler identity.
func (p Profile) WithCompiler(id string) Profile {
	p.Compiler = id
	return p
}

// Symbol returns the tagged runtime symbol for a canonical operation name.
func (p Profile) Symbol(name string) string { return name + p.FunctionTag }

func (p Profile) String() string {
	s := fmt.Sprintf("%s/%s (suffix %s, format %%%s, tag %s, %s)",
		p.Arch, p.Kind, p.LiteralSuffix, p.FormatTag, p.FunctionTag, p.Runtime)
	if p.Compiler != "" {
		s += " " + p.Compiler
	}
	return s
}

var triples = map[string]string{
	"amd64":   "x86_64-linux-gnu",
	"arm64":   "aarch64-linux-gnu",
	"riscv64": "riscv64-linux-gnu",
}

// binary128LongDouble lists the architectures whose ABI defines long double
// as IEEE-754 binary128.
var binary128LongDouble = map[string]bool{
	"arm64":   true,
	"riscv64": true,
}

// narrowLongDouble lists architectures that are recognised but whose long
// double is plain double and that have no quad runtime to fall back on.
var narrowLongDouble = map[string]bool{
	"arm":    true,
	"mips":   true,
	"mipsle": true,
}

// Select maps an architecture and the compiler's advertised long double
// semantics onto exactly one profile. A compiler that advertises an IEEE-128
// long double wins regardless of the architecture; amd64 uses libquadmath;
// everything else is refused.
func Select(arch string, longDoubleIEEE128 bool) (Profile, error) {
	arch = strings.TrimSpace(arch)
	if arch == "" {
		return Profile{}, &SelectError{Kind: SelectErrEmptyArch}
	}
	if longDoubleIEEE128 || binary128LongDouble[arch] {
		return native(arch), nil
	}
	if arch == "amd64" {
		return software(arch), nil
	}
	if narrowLongDouble[arch] {
		return Profile{}, &SelectError{Kind: SelectErrNarrowLongDouble, Value: arch}
	}
	return Profile{}, &SelectError{Kind: SelectErrUnknownArch, Value: arch}
}

// MustSelect is Select for inputs fixed at build time.
func MustSelect(arch string, longDoubleIEEE128 bool) Profile {
	p, err := Select(arch, longDoubleIEEE128)
	if err != nil {
		panic(err)
	}
	return p
}

func tripleOf(arch string) string {
	if t, ok := triples[arch]; ok {
		return t
	}
	return arch + "-unknown-linux-gnu"
}

func native(arch string) Profile {
	return Profile{
		Arch:          arch,
		Triple:        tripleOf(arch),
		Kind:          NativeWideFloat,
		LiteralSuffix: "L",
		FormatTag:     "L",
		FunctionTag:   "l",
		Runtime:       "libm.so.6",
		Header:        "math.h",
		ScalarType:    "long double",
		ComplexType:   "long double _Complex",
	}
}

func software(arch string) Profile {
	return Profile{
		Arch:          arch,
		Triple:        tripleOf(arch),
		Kind:          SoftwareQuad,
		LiteralSuffix: "Q",
		FormatTag:     "Q",
		FunctionTag:   "q",
		Runtime:       "libquadmath.so.0",
		Header:        "quadmath.h",
		ScalarType:    "__float128",
		ComplexType:   "__complex128",
	}
}

// Current returns the profile this binary was built for.
func Current() Profile { return MustSelect(hostArch, hostLongDoubleIEEE128) }
