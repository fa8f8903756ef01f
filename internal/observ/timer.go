// Package observ records wall-clock time per stage of a verification run.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Stage is one timed stretch of work.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects stages in the order they begin. It is not safe for
// concurrent use.
type Timer struct {
	stages []Stage
}

// NewTimer returns an empty Timer.
func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 10)} }

// Begin starts a stage and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.stages = append(t.stages, Stage{Name: name, Start: time.Now()})
	return len(t.stages) - 1
}

// End closes the stage at idx. Unknown indices are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur = time.Since(s.Start)
	s.Note = note
}

// StageReport is a stage in milliseconds.
type StageReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is the serialisable form of a Timer.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report converts the recorded stages.
func (t *Timer) Report() Report {
	if t == nil || len(t.stages) == 0 {
		return Report{}
	}
	r := Report{Stages: make([]StageReport, len(t.stages))}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		r.Stages[i] = StageReport{Name: s.Name, DurationMS: toMillis(s.Dur), Note: s.Note}
	}
	r.TotalMS = toMillis(total)
	return r
}

// Summary renders the report as an aligned table.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, s := range r.Stages {
		fmt.Fprintf(&b, "  %-20s %8.3f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			b.WriteString("  // " + s.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %8.3f ms\n", "total", r.TotalMS)
	return b.String()
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
