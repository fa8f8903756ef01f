package observ

import (
	"strings"
	"testing"
)

func TestTimerRecordsStagesInOrder(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("storage")
	b := tm.Begin("real-unary")
	tm.End(b, "37 checks")
	tm.End(a, "")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Stages) != 2 || r.Stages[0].Name != "storage" || r.Stages[1].Note != "37 checks" {
		t.Fatalf("report = %+v", r)
	}
	if r.TotalMS < r.Stages[0].DurationMS {
		t.Errorf("total %.3f below a stage %.3f", r.TotalMS, r.Stages[0].DurationMS)
	}
}

func TestEmptyReport(t *testing.T) {
	var tm *Timer
	if r := tm.Report(); len(r.Stages) != 0 || r.TotalMS != 0 {
		t.Errorf("nil timer report = %+v", r)
	}
}

func TestSummary(t *testing.T) {
	r := Report{TotalMS: 1.5, Stages: []StageReport{{Name: "io", DurationMS: 1.5, Note: "2 checks"}}}
	s := r.Summary()
	for _, want := range []string{"timings:\n", "io", "1.500 ms  // 2 checks", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary lacks %q:\n%s", want, s)
		}
	}
}
