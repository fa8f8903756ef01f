// Package verify checks that every canonical quad operation reaches the same
// entry point as the directly named runtime symbol.
//
// A run has three stages. The storage check confirms the quad type occupies
// 16 bytes; if it does not, the run stops with one failure. Then every
// operation is called twice with the same arguments, once through the
// facade and once through the symbol the harness derives on its own from
// GOARCH, and the results are compared bit for bit. Finally the canonical
// parser and both formatters are checked against e.
package verify

import (
	"context"
	"fmt"
	"runtime"

	"fp128/internal/libquad"
	"fp128/internal/observ"
	"fp128/internal/symtab"
	"fp128/internal/target"
	"fp128/internal/trace"
	"fp128/quad"
)

// Status is the outcome of one check.
type Status uint8

const (
	Passed Status = iota + 1
	Failed
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "FAILED"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Result is one check.
type Result struct {
	Name     string
	Category symtab.Category // zero for the storage and I/O checks
	Symbol   string          // symbol behind the facade
	Direct   string          // symbol called directly
	Status   Status
	// Canonical and Got are the formatted values of a failed check.
	Canonical string
	Got       string
}

// Report is the outcome of a run.
type Report struct {
	Profile    target.Profile
	Quad       libquad.Storage
	LongDouble libquad.Storage
	Results    []Result
	Passes     int
	Failures   int
	// Stopped is set when the storage check failed and nothing else ran.
	Stopped bool
	Timings observ.Report
}

// ExitCode is the number of failures.
func (r *Report) ExitCode() int { return r.Failures }

// Failed returns the failed results.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == Failed {
			out = append(out, res)
		}
	}
	return out
}

// Observer receives each result as soon as it is known.
type Observer interface {
	Header(p target.Profile, q, ld libquad.Storage)
	Result(r Result)
}

// Options configure a run. The zero value checks quad.Default() with the
// built-in arguments on the running architecture.
type Options struct {
	Facade   *quad.Facade
	Args     *ArgTable
	Arch     string
	Observer Observer
}

const (
	eLiteral = "2.718281828459045235360287471352662498"
	eFixed33 = "2.718281828459045235360287471352662"
)

// Run performs the checks in table order. It stops early only when the
// storage check fails or ctx is cancelled between categories; in the latter
// case the partial report is returned with ctx's error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Facade == nil {
		opts.Facade = quad.Default()
	}
	if opts.Args == nil {
		opts.Args = DefaultArgs()
	}
	if opts.Arch == "" {
		opts.Arch = runtime.GOARCH
	}
	tag, err := directTag(opts.Arch)
	if err != nil {
		return nil, err
	}

	ctx, span := trace.Start(ctx, trace.ScopeRun, "verify")
	rep := &Report{
		Profile:    opts.Facade.Profile(),
		Quad:       libquad.MeasureQuad(),
		LongDouble: libquad.MeasureLongDouble(),
	}
	defer func() {
		span.WithExtra("passes", fmt.Sprint(rep.Passes)).
			WithExtra("failures", fmt.Sprint(rep.Failures)).
			End(rep.Profile.Kind.String())
	}()
	timer := observ.NewTimer()
	defer func() { rep.Timings = timer.Report() }()
	r := &runner{ctx: ctx, rep: rep, obs: opts.Observer}
	if r.obs != nil {
		r.obs.Header(rep.Profile, rep.Quad, rep.LongDouble)
	}

	idx := timer.Begin("storage")
	ok := r.checkStorage()
	timer.End(idx, fmt.Sprintf("%d of %d bytes populated", rep.Quad.Populated, rep.Quad.Allocated))
	if !ok {
		rep.Stopped = true
		return rep, nil
	}

	c := &checker{facade: opts.Facade, args: opts.Args, tag: tag}
	for _, cat := range symtab.Categories() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		descs := opts.Facade.Table().ByCategory(cat)
		if len(descs) == 0 {
			continue
		}
		idx := timer.Begin(cat.String())
		cctx, cspan := trace.Start(ctx, trace.ScopeCategory, cat.String())
		before := rep.Failures
		for _, d := range descs {
			r.record(cctx, c.check(d))
		}
		note := fmt.Sprintf("%d checks, %d failures", len(descs), rep.Failures-before)
		cspan.End(note)
		timer.End(idx, note)
	}

	idx = timer.Begin("io")
	cctx, cspan := trace.Start(ctx, trace.ScopeCategory, "io")
	r.record(cctx, checkParseOf(eLiteral, quad.E))
	r.record(cctx, checkFormatOf(quad.E, eFixed33))
	cspan.End("")
	timer.End(idx, "parse, format")
	return rep, nil
}

// directTag derives the symbol suffix from the architecture alone, without
// going through the target profile the facade was resolved with.
func directTag(arch string) (string, error) {
	switch arch {
	case "amd64":
		return "q", nil
	case "arm64", "riscv64":
		return "l", nil
	}
	return "", &target.SelectError{Kind: target.SelectErrUnknownArch, Value: arch}
}

type runner struct {
	ctx context.Context
	rep *Report
	obs Observer
}

func (r *runner) record(ctx context.Context, res Result) {
	r.rep.Results = append(r.rep.Results, res)
	if res.Status == Passed {
		r.rep.Passes++
	} else {
		r.rep.Failures++
	}
	detail := res.Status.String()
	if res.Status == Failed {
		detail += ": canonical=" + res.Canonical + " direct=" + res.Got
	}
	trace.Point(ctx, trace.ScopeCheck, res.Name, detail)
	if r.obs != nil {
		r.obs.Result(res)
	}
}

func (r *runner) checkStorage() bool {
	q := r.rep.Quad
	if q.Allocated == 16 && q.GoSize == 16 {
		trace.Point(r.ctx, trace.ScopeCheck, "storage",
			fmt.Sprintf("%d bytes allocated, %d populated", q.Allocated, q.Populated))
		return true
	}
	res := Result{
		Name:      "storage",
		Status:    Failed,
		Canonical: fmt.Sprintf("%d bytes", q.Allocated),
		Got:       fmt.Sprintf("%d bytes", q.GoSize),
	}
	r.record(r.ctx, res)
	return false
}

// checkParseOf parses literal with the runtime and wants the bits of want.
func checkParseOf(literal string, want quad.Float) Result {
	res := Result{Name: "parse", Status: Passed}
	got, err := quad.Parse(literal)
	switch {
	case err != nil:
		res.Status, res.Canonical, res.Got = Failed, err.Error(), fmt.Sprintf("%.33f", want)
	case !got.Identical(want):
		res.Status, res.Canonical, res.Got = Failed, fmt.Sprintf("%.33f", got), fmt.Sprintf("%.33f", want)
	}
	return res
}

// checkFormatOf renders x to 33 places with the runtime's printf and with
// the Go formatter; both must produce want. A failure shows the two
// renderings.
func checkFormatOf(x quad.Float, want string) Result {
	res := Result{Name: "format", Status: Passed}
	c := quad.Format(x, 'f', 33)
	g := fmt.Sprintf("%.33f", x)
	if c != want || g != want {
		res.Status, res.Canonical, res.Got = Failed, c, g
	}
	return res
}
