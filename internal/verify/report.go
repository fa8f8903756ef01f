package verify

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fp128/internal/libquad"
	"fp128/internal/target"
)

// Reporter prints a run as it happens: a header, one line per failure (and
// per pass when verbose), then the summary.
type Reporter struct {
	w       io.Writer
	verbose bool
	pass    *color.Color
	fail    *color.Color
	dim     *color.Color
}

// NewReporter writes to w. Colour escapes are emitted only when colored is
// set, independent of fatih/color's own terminal detection.
func NewReporter(w io.Writer, verbose, colored bool) *Reporter {
	r := &Reporter{
		w:       w,
		verbose: verbose,
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.pass, r.fail, r.dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Header prints the compiler, the target and both storage measurements.
func (r *Reporter) Header(p target.Profile, q, ld libquad.Storage) {
	compiler := p.Compiler
	if compiler == "" {
		compiler = "unknown C compiler"
	}
	fmt.Fprintf(r.w, "%s targeting %s (%s)\n", compiler, p.Triple, p.Kind)
	r.storage(ld)
	r.storage(q)
}

func (r *Reporter) storage(s libquad.Storage) {
	line := fmt.Sprintf("sizeof(%s) = %d bytes - %d bits", s.Type, s.Allocated, 8*s.Allocated)
	if s.Populated != s.Allocated {
		line += fmt.Sprintf(", %d populated", s.Populated)
	}
	fmt.Fprintln(r.w, r.dim.Sprint(line))
}

// Result prints one check.
func (r *Reporter) Result(res Result) {
	switch {
	case res.Status == Failed:
		fmt.Fprintln(r.w, r.fail.Sprintf("*** %s FAILED: canonical=%s direct=%s", res.Name, res.Canonical, res.Got))
	case r.verbose:
		fmt.Fprintln(r.w, r.pass.Sprintf("%s passed", res.Name))
	}
}

// Summary prints the closing line.
func (r *Reporter) Summary(rep *Report) {
	if rep.Stopped {
		fmt.Fprintln(r.w, r.fail.Sprint("*** quad storage is not 16 bytes; nothing else was checked ***"))
	}
	c := r.pass
	if rep.Failures > 0 {
		c = r.fail
	}
	fmt.Fprintln(r.w, c.Sprint(SummaryLine(rep)))
}

// SummaryLine renders "*** N passes, M failures ***" with singular forms
// for counts of one.
func SummaryLine(rep *Report) string {
	return fmt.Sprintf("*** %d %s, %d %s ***",
		rep.Passes, plural(rep.Passes, "pass", "passes"),
		rep.Failures, plural(rep.Failures, "failure", "failures"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
