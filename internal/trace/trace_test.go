package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevel_ShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeRun, false},
		{LevelError, ScopeRun, false},
		{LevelPhase, ScopeRun, true},
		{LevelPhase, ScopeCategory, false},
		{LevelDetail, ScopeCategory, true},
		{LevelDetail, ScopeCheck, false},
		{LevelDebug, ScopeCheck, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelError, LevelPhase, LevelDetail, LevelDebug} {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) succeeded")
	}
}

func TestStreamTracer_NestedSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, run := Start(ctx, ScopeRun, "run")
	cctx, cat := Start(ctx, ScopeCategory, "real-unary")
	_, check := Start(cctx, ScopeCheck, "check:sin") // filtered at detail
	check.End("")
	cat.WithExtra("passes", "37").End("")
	run.End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if strings.Contains(out, "check:sin") {
		t.Errorf("check scope leaked at detail level:\n%s", out)
	}
	if !strings.Contains(lines[2], "{passes=37}") {
		t.Errorf("extra missing from %q", lines[2])
	}
	if !strings.Contains(lines[3], "run (ok)") {
		t.Errorf("detail missing from %q", lines[3])
	}
	if cat.ID() == 0 || check.ID() != 0 {
		t.Errorf("span ids: category %d, check %d", cat.ID(), check.ID())
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)
	Point(ctx, ScopeCheck, "check:cos", "FAILED")

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["scope"] != "check" || ev["detail"] != "FAILED" {
		t.Errorf("unexpected event %v", ev)
	}
}

func TestRingTracer_ErrorLevelKeepsEverything(t *testing.T) {
	ring := NewRingTracer(3, LevelError)
	for _, name := range []string{"a", "b", "c", "d"} {
		Begin(ring, ScopeCheck, name, 0)
	}
	snap := ring.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot has %d events, want 3", len(snap))
	}
	if snap[0].Name != "b" || snap[2].Name != "d" {
		t.Errorf("snapshot order %s..%s, want b..d", snap[0].Name, snap[2].Name)
	}
	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestNew_BothModeExposesRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeRun, "run", 0).End("")
	ring, ok := Ring(tr)
	if !ok {
		t.Fatal("no ring behind a both-mode tracer")
	}
	if n := len(ring.Snapshot()); n != 2 {
		t.Errorf("ring holds %d events, want 2", n)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("stream:\n%s", buf.String())
	}
}

func TestNew_OffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Fatal("LevelOff tracer is enabled")
	}
	if s := Begin(tr, ScopeRun, "run", 0); s.ID() != 0 {
		t.Fatal("nop tracer recorded a span")
	}
}

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should yield Nop")
	}
	if CurrentSpan(context.Background()) != 0 {
		t.Fatal("empty context should have no span")
	}
}
