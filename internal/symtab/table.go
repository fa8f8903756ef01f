// Package symtab binds canonical operation names to the tagged symbols of
// the selected quad runtime.
//
// The binding is a plain concatenation of the canonical name and the
// profile's function tag ("sin" + "q" = "sinq"). Resolve never checks that a
// symbol exists: the generated cgo bindings reference every tagged symbol, so
// a missing one is a link failure of the whole build.
package symtab

import (
	"fp128/internal/target"
)

// Descriptor is one resolved operation.
type Descriptor struct {
	Operation
	Symbol string
	// Overridden is set when the symbol came from WithSymbol instead of the
	// profile's tag.
	Overridden bool
}

// Table is the immutable resolution of every canonical operation for one
// profile.
type Table struct {
	profile target.Profile
	descs   []Descriptor
	index   map[string]int
}

type config struct {
	overrides map[string]string
	order     []string
}

// Option adjusts resolution.
type Option func(*config)

// WithSymbol binds name to symbol instead of name+tag. Unknown names are
// reported by Resolve.
func WithSymbol(name, symbol string) Option {
	return func(c *config) {
		if _, seen := c.overrides[name]; !seen {
			c.order = append(c.order, name)
		}
		c.overrides[name] = symbol
	}
}

// Resolve builds the table for p.
func Resolve(p target.Profile, opts ...Option) (*Table, error) {
	if p.FunctionTag == "" {
		return nil, &Error{Kind: ErrNoFunctionTag, Name: p.Arch}
	}
	cfg := config{overrides: make(map[string]string)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := &Table{
		profile: p,
		descs:   make([]Descriptor, 0, len(operations)),
		index:   make(map[string]int, len(operations)),
	}
	for _, op := range operations {
		d := Descriptor{Operation: op, Symbol: p.Symbol(op.Name)}
		if sym, ok := cfg.overrides[op.Name]; ok {
			if sym == "" {
				return nil, &Error{Kind: ErrEmptySymbol, Name: op.Name}
			}
			d.Symbol = sym
			d.Overridden = true
		}
		t.index[op.Name] = len(t.descs)
		t.descs = append(t.descs, d)
	}
	for _, name := range cfg.order {
		if _, ok := t.index[name]; !ok {
			return nil, &Error{Kind: ErrUnknownOperation, Name: name}
		}
	}
	return t, nil
}

// MustResolve is Resolve for a profile known to be valid.
func MustResolve(p target.Profile, opts ...Option) *Table {
	t, err := Resolve(p, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Profile returns the profile the table was resolved for.
func (t *Table) Profile() target.Profile { return t.profile }

// Len returns the number of operations.
func (t *Table) Len() int { return len(t.descs) }

// Lookup returns the descriptor for a canonical name.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	i, ok := t.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return t.descs[i], true
}

// Symbol returns the resolved symbol for name, or an *Error.
func (t *Table) Symbol(name string) (string, error) {
	d, ok := t.Lookup(name)
	if !ok {
		return "", &Error{Kind: ErrUnknownOperation, Name: name}
	}
	return d.Symbol, nil
}

// Descriptors returns a copy of all descriptors in table order.
func (t *Table) Descriptors() []Descriptor {
	return append([]Descriptor(nil), t.descs...)
}

// ByCategory returns the descriptors of one category in table order.
func (t *Table) ByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range t.descs {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Overrides returns the descriptors whose symbol was set by WithSymbol.
func (t *Table) Overrides() []Descriptor {
	var out []Descriptor
	for _, d := range t.descs {
		if d.Overridden {
			out = append(out, d)
		}
	}
	return out
}
