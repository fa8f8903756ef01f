package verify

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"fp128/internal/symtab"
	"fp128/quad"
)

//go:embed args.toml
var defaultArgs string

// Args are the inputs of one check. X is the real argument of unary and
// scale operations and the first of binary and ternary ones; Y and Z follow.
// C and W are the complex arguments, N the scale exponent, Order the order
// of jn and yn, and Tag the string handed to nan.
type Args struct {
	X, Y, Z quad.Float
	C, W    quad.Complex
	N       int64
	Order   int64
	Tag     string
}

// argSpec is one TOML table. Empty fields inherit from [default].
type argSpec struct {
	Real    string   `toml:"real"`
	Second  string   `toml:"second"`
	Third   string   `toml:"third"`
	Complex []string `toml:"complex"`
	Scale   *int64   `toml:"scale"`

	SecondComplex []string `toml:"second_complex"`
	Order         *int64   `toml:"order"`
	Tag           *string  `toml:"tag"`
}

type argsFile struct {
	Default  argSpec            `toml:"default"`
	Override map[string]argSpec `toml:"override"`
}

// ArgTable maps operations to their arguments.
type ArgTable struct {
	def  argSpec
	over map[string]argSpec
}

// DefaultArgs returns the built-in table: pi/4, 1 and 1/sqrt(2) for reals,
// 1+2i and 0.5-1i for complex, 3 for scale exponents, 2 for Bessel orders,
// an empty nan tag, and pi for acosh.
func DefaultArgs() *ArgTable {
	t := &ArgTable{over: make(map[string]argSpec)}
	if err := t.Merge("args.toml", defaultArgs); err != nil {
		panic(fmt.Sprintf("verify: built-in arguments: %v", err))
	}
	return t
}

// Merge overlays a TOML document on the table. Fields set in the document
// replace the current ones; everything else is kept. The merged table is
// validated before it replaces the old one.
func (t *ArgTable) Merge(name, doc string) error {
	var f argsFile
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", name, strings.Join(keys, ", "))
	}

	next := &ArgTable{def: overlay(t.def, f.Default), over: maps.Clone(t.over)}
	if next.over == nil {
		next.over = make(map[string]argSpec)
	}
	for op, spec := range f.Override {
		if _, ok := symtab.LookupOperation(op); !ok {
			return fmt.Errorf("%s: override: %w", name, &symtab.Error{Kind: symtab.ErrUnknownOperation, Name: op})
		}
		next.over[op] = overlay(next.over[op], spec)
	}
	if err := next.validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*t = *next
	return nil
}

func overlay(base, top argSpec) argSpec {
	if top.Real != "" {
		base.Real = top.Real
	}
	if top.Second != "" {
		base.Second = top.Second
	}
	if top.Third != "" {
		base.Third = top.Third
	}
	if top.Complex != nil {
		base.Complex = top.Complex
	}
	if top.Scale != nil {
		base.Scale = top.Scale
	}
	if top.SecondComplex != nil {
		base.SecondComplex = top.SecondComplex
	}
	if top.Order != nil {
		base.Order = top.Order
	}
	if top.Tag != nil {
		base.Tag = top.Tag
	}
	return base
}

func (t *ArgTable) validate() error {
	if _, err := resolve(t.def); err != nil {
		return fmt.Errorf("default: %w", err)
	}
	for _, op := range slices.Sorted(maps.Keys(t.over)) {
		if _, err := resolve(overlay(t.def, t.over[op])); err != nil {
			return fmt.Errorf("override.%s: %w", op, err)
		}
	}
	return nil
}

// For returns the arguments used for the named operation.
func (t *ArgTable) For(name string) Args {
	spec := t.def
	if o, ok := t.over[name]; ok {
		spec = overlay(spec, o)
	}
	a, err := resolve(spec)
	if err != nil {
		// Merge validated every combination.
		panic(fmt.Sprintf("verify: arguments for %s: %v", name, err))
	}
	return a
}

// Overridden lists the operations with their own arguments, sorted.
func (t *ArgTable) Overridden() []string { return slices.Sorted(maps.Keys(t.over)) }

var errIncomplete = errors.New("incomplete argument set")

func resolve(s argSpec) (Args, error) {
	if s.Real == "" || s.Second == "" || s.Third == "" || s.Scale == nil || s.Order == nil || s.Tag == nil {
		return Args{}, errIncomplete
	}
	if len(s.Complex) != 2 {
		return Args{}, fmt.Errorf("complex needs [re, im], got %d values", len(s.Complex))
	}
	if len(s.SecondComplex) != 2 {
		return Args{}, fmt.Errorf("second_complex needs [re, im], got %d values", len(s.SecondComplex))
	}
	var a Args
	var err error
	fields := []struct {
		dst *quad.Float
		src string
	}{
		{&a.X, s.Real}, {&a.Y, s.Second}, {&a.Z, s.Third},
	}
	for _, f := range fields {
		if *f.dst, err = value(f.src); err != nil {
			return Args{}, err
		}
	}
	if a.C, err = complexValue(s.Complex); err != nil {
		return Args{}, err
	}
	if a.W, err = complexValue(s.SecondComplex); err != nil {
		return Args{}, err
	}
	a.N = *s.Scale
	a.Order = *s.Order
	a.Tag = *s.Tag
	return a, nil
}

func complexValue(parts []string) (quad.Complex, error) {
	re, err := value(parts[0])
	if err != nil {
		return quad.Complex{}, err
	}
	im, err := value(parts[1])
	if err != nil {
		return quad.Complex{}, err
	}
	return quad.Cmplx(re, im), nil
}

// value accepts a constant name or anything quad.Parse accepts.
func value(s string) (quad.Float, error) {
	if v, ok := quad.Constant(s); ok {
		return v, nil
	}
	return quad.Parse(s)
}
