// Package audit looks up every resolved symbol in the runtime library at
// run time, independently of the link-time bindings.
package audit

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"

	"fp128/internal/symtab"
)

// Entry is the lookup of one symbol.
type Entry struct {
	symtab.Descriptor
	Addr uintptr
	Err  error
}

// Found reports whether the library exports the symbol.
func (e Entry) Found() bool { return e.Err == nil && e.Addr != 0 }

// Result collects the lookups for one library.
type Result struct {
	Library string
	Entries []Entry
	Missing int
}

// Run opens library and resolves every symbol of t in table order.
func Run(t *symtab.Table, library string) (res *Result, err error) {
	handle, err := purego.Dlopen(library, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", library, err)
	}
	defer func() {
		if cerr := purego.Dlclose(handle); cerr != nil {
			err = errors.Join(err, fmt.Errorf("dlclose %s: %w", library, cerr))
		}
	}()

	res = &Result{Library: library}
	for _, d := range t.Descriptors() {
		addr, err := purego.Dlsym(handle, d.Symbol)
		e := Entry{Descriptor: d, Addr: addr, Err: err}
		if !e.Found() {
			res.Missing++
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}
