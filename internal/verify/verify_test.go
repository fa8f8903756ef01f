package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"fp128/internal/libquad"
	"fp128/internal/symtab"
	"fp128/internal/target"
	"fp128/quad"
)

// Every operation plus the parse and format checks.
var wantChecks = len(symtab.Operations()) + 2

func TestRunDefault(t *testing.T) {
	rep, err := Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, f := range rep.Failed() {
		t.Errorf("%s failed: canonical=%s direct=%s", f.Name, f.Canonical, f.Got)
	}
	if rep.Passes != wantChecks || rep.Failures != 0 || rep.ExitCode() != 0 {
		t.Errorf("passes=%d failures=%d, want %d and 0", rep.Passes, rep.Failures, wantChecks)
	}
	if rep.Stopped {
		t.Error("run stopped at the storage check")
	}
	if rep.Quad.Allocated != 16 {
		t.Errorf("quad storage = %d bytes", rep.Quad.Allocated)
	}
}

func TestWrongOverrideFailsOnce(t *testing.T) {
	f, err := quad.NewFacade(quad.WithSymbol("cos", quad.Profile().Symbol("exp")))
	if err != nil {
		t.Fatalf("NewFacade: %v", err)
	}
	rep, err := Run(context.Background(), Options{Facade: f})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Failures != 1 || rep.ExitCode() != 1 {
		t.Fatalf("failures = %d, want 1", rep.Failures)
	}
	if rep.Passes != wantChecks-1 {
		t.Errorf("passes = %d, want %d", rep.Passes, wantChecks-1)
	}
	failed := rep.Failed()[0]
	if failed.Name != "cos" || failed.Direct != quad.Profile().Symbol("cos") {
		t.Errorf("failed check = %+v", failed)
	}
	if failed.Canonical == failed.Got {
		t.Errorf("failure shows identical values %q", failed.Got)
	}
}

func TestWrongOrderOverrideFailsOnce(t *testing.T) {
	f, err := quad.NewFacade(quad.WithSymbol("jn", quad.Profile().Symbol("yn")))
	if err != nil {
		t.Fatalf("NewFacade: %v", err)
	}
	rep, err := Run(context.Background(), Options{Facade: f})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Failures != 1 || rep.Failed()[0].Name != "jn" {
		t.Fatalf("failures = %+v, want jn only", rep.Failed())
	}
}

func TestOutParamsComparedBitForBit(t *testing.T) {
	one, two := quad.FromFloat64(1), quad.FromFloat64(2)
	negZero := quad.FromBits(1<<63, 0)
	tests := []struct {
		name string
		res  Result
		want Status
	}{
		{"pair equal", Result{}.pairs(one, two, one, two), Passed},
		{"pair second differs", Result{}.pairs(one, two, one, one), Failed},
		{"pair signed zero", Result{}.pairs(one, quad.Float{}, one, negZero), Failed},
		{"float int equal", Result{}.floatInts(one, 4, one, 4), Passed},
		{"int differs", Result{}.floatInts(one, 4, one, 5), Failed},
		{"float differs", Result{}.floatInts(one, 4, two, 4), Failed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.res.Status != tt.want {
				t.Fatalf("status = %s, want %s", tt.res.Status, tt.want)
			}
			if tt.want == Failed && tt.res.Canonical == tt.res.Got {
				t.Errorf("failure shows identical values %q", tt.res.Got)
			}
		})
	}
}

func TestParseCheckFailures(t *testing.T) {
	tests := []struct {
		name    string
		literal string
	}{
		{"wrong value", "2.5"},
		{"syntax", "bogus"},
		{"overflow", "1e99999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &Report{}
			r := &runner{ctx: context.Background(), rep: rep}
			r.record(r.ctx, checkParseOf(tt.literal, quad.E))
			if rep.Failures != 1 || rep.Passes != 0 {
				t.Fatalf("failures=%d passes=%d, want 1 and 0", rep.Failures, rep.Passes)
			}
			res := rep.Results[0]
			if res.Name != "parse" || res.Canonical == "" || !strings.HasPrefix(res.Got, "2.71828") {
				t.Errorf("result = %+v", res)
			}
		})
	}
	if res := checkParseOf(eLiteral, quad.E); res.Status != Passed {
		t.Errorf("parse of e = %+v", res)
	}
}

func TestFormatCheckFailure(t *testing.T) {
	var buf bytes.Buffer
	rep := &Report{}
	r := &runner{ctx: context.Background(), rep: rep, obs: NewReporter(&buf, false, false)}
	r.record(r.ctx, checkFormatOf(quad.Pi, eFixed33))
	if rep.Failures != 1 || len(rep.Results) != 1 {
		t.Fatalf("failures=%d results=%d, want 1 and 1", rep.Failures, len(rep.Results))
	}
	res := rep.Results[0]
	if !strings.HasPrefix(res.Canonical, "3.14159") || !strings.HasPrefix(res.Got, "3.14159") {
		t.Errorf("result = %+v, want both renderings of pi", res)
	}
	want := "*** format FAILED: canonical=" + res.Canonical + " direct=" + res.Got + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if res := checkFormatOf(quad.E, eFixed33); res.Status != Passed {
		t.Errorf("format of e = %+v", res)
	}
}

func TestRunUnknownArch(t *testing.T) {
	_, err := Run(context.Background(), Options{Arch: "mips"})
	var se *target.SelectError
	if !errors.As(err, &se) || se.Value != "mips" {
		t.Fatalf("Run(mips) error = %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := Run(ctx, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if len(rep.Results) != 0 {
		t.Errorf("cancelled run recorded %d results", len(rep.Results))
	}
}

func TestDirectTag(t *testing.T) {
	for arch, want := range map[string]string{"amd64": "q", "arm64": "l", "riscv64": "l"} {
		if got, err := directTag(arch); err != nil || got != want {
			t.Errorf("directTag(%s) = %q, %v", arch, got, err)
		}
	}
}

func TestReporterOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, false)
	rep, err := Run(context.Background(), Options{Observer: r})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r.Summary(rep)
	out := buf.String()
	for _, want := range []string{"targeting", "sin passed", "format passed", fmt.Sprintf("*** %d passes, 0 failures ***", wantChecks)} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("uncoloured reporter wrote escape sequences")
	}
}

func TestReporterQuietShowsFailuresOnly(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)
	r.Result(Result{Name: "sin", Status: Passed})
	r.Result(Result{Name: "cos", Status: Failed, Canonical: "1", Got: "2"})
	if got, want := buf.String(), "*** cos FAILED: canonical=1 direct=2\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		passes, failures int
		want             string
	}{
		{79, 0, "*** 79 passes, 0 failures ***"},
		{1, 1, "*** 1 pass, 1 failure ***"},
		{0, 1, "*** 0 passes, 1 failure ***"},
	}
	for _, tt := range tests {
		if got := SummaryLine(&Report{Passes: tt.passes, Failures: tt.failures}); got != tt.want {
			t.Errorf("SummaryLine(%d, %d) = %q", tt.passes, tt.failures, got)
		}
	}
}

func TestStorageFailureStops(t *testing.T) {
	rep := &Report{Quad: libquad.Storage{Allocated: 10, GoSize: 16}}
	r := &runner{ctx: context.Background(), rep: rep}
	if r.checkStorage() {
		t.Fatal("10-byte storage accepted")
	}
	if rep.Failures != 1 || rep.Results[0].Name != "storage" {
		t.Errorf("report = %+v", rep)
	}
}

func TestDefaultArgs(t *testing.T) {
	args := DefaultArgs()
	a := args.For("sin")
	if !a.X.Identical(quad.Pi4) || !a.Z.Identical(quad.InvSqrt2) || a.N != 3 {
		t.Errorf("default args = %+v", a)
	}
	if !a.Y.Identical(quad.FromFloat64(1)) {
		t.Errorf("second = %v, want 1", a.Y)
	}
	if !a.C.Identical(quad.Cmplx(quad.FromFloat64(1), quad.FromFloat64(2))) {
		t.Errorf("complex = %v, want 1+2i", a.C)
	}
	if !a.W.Identical(quad.Cmplx(quad.FromFloat64(0.5), quad.FromFloat64(-1))) {
		t.Errorf("second complex = %v, want 0.5-1i", a.W)
	}
	if a.Order != 2 || a.Tag != "" {
		t.Errorf("order = %d, tag = %q; want 2 and empty", a.Order, a.Tag)
	}
	acosh := args.For("acosh")
	if !acosh.X.Identical(quad.Pi) || !acosh.Y.Identical(a.Y) {
		t.Errorf("acosh args = %+v", acosh)
	}
	if got := args.Overridden(); len(got) != 1 || got[0] != "acosh" {
		t.Errorf("Overridden() = %v", got)
	}
}

func TestMergeArgs(t *testing.T) {
	args := DefaultArgs()
	err := args.Merge("extra.toml", `
[default]
scale = -2
order = 5

[override.log]
real = "2.5"
complex = ["0", "-1"]
`)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if got := args.For("ldexp").N; got != -2 {
		t.Errorf("scale = %d, want -2", got)
	}
	log := args.For("log")
	if !log.X.Identical(quad.FromFloat64(2.5)) || log.N != -2 {
		t.Errorf("log args = %+v", log)
	}
	if got := args.For("yn"); got.Order != 5 || got.Tag != "" {
		t.Errorf("yn args = %+v, want order 5 and the default tag", got)
	}
	if !args.For("acosh").X.Identical(quad.Pi) {
		t.Error("merge dropped the acosh override")
	}
}

func TestMergeArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad toml", "[default\n"},
		{"unknown key", "[default]\nradius = 2\n"},
		{"unknown operation", "[override.sine]\nreal = \"1\"\n"},
		{"bad value", "[default]\nreal = \"one\"\n"},
		{"short complex", "[override.cexp]\ncomplex = [\"1\"]\n"},
		{"short second complex", "[override.cpow]\nsecond_complex = [\"1\", \"2\", \"3\"]\n"},
		{"order not an integer", "[override.jn]\norder = \"two\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := DefaultArgs()
			if err := args.Merge("x.toml", tt.doc); err == nil {
				t.Fatal("Merge succeeded")
			}
			if !args.For("sin").X.Identical(quad.Pi4) {
				t.Error("failed merge changed the table")
			}
		})
	}
}

func BenchmarkRun(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Run(context.Background(), Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
