package audit

import (
	"testing"

	"fp128/internal/libquad"
	"fp128/internal/symtab"
)

func TestRunFindsEverySymbol(t *testing.T) {
	p := libquad.Profile()
	res, err := Run(symtab.MustResolve(p), p.Runtime)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, e := range res.Entries {
		if !e.Found() {
			t.Errorf("%s: %v", e.Symbol, e.Err)
		}
	}
	if res.Missing != 0 || len(res.Entries) != len(symtab.Operations()) {
		t.Errorf("missing=%d entries=%d", res.Missing, len(res.Entries))
	}
}

func TestRunReportsMissingSymbol(t *testing.T) {
	p := libquad.Profile()
	table := symtab.MustResolve(p, symtab.WithSymbol("sin", "fp128_no_such_symbol"))
	res, err := Run(table, p.Runtime)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Missing != 1 {
		t.Fatalf("missing = %d, want 1", res.Missing)
	}
	for _, e := range res.Entries {
		if e.Name == "sin" && e.Found() {
			t.Error("bogus symbol was found")
		}
	}
}

func TestRunMissingLibrary(t *testing.T) {
	if _, err := Run(symtab.MustResolve(libquad.Profile()), "libfp128-does-not-exist.so"); err == nil {
		t.Fatal("Run succeeded on a missing library")
	}
}
