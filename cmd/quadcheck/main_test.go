package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fp128/internal/version"
)

func TestReadColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    colorMode
		wantErr bool
	}{
		{"", colorAuto, false},
		{"AUTO", colorAuto, false},
		{" on ", colorOn, false},
		{"off", colorOff, false},
		{"always", "", true},
	}
	for _, tt := range tests {
		got, err := readColorMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("readColorMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestExitStatus(t *testing.T) {
	if err := exitStatus(0); err != nil {
		t.Errorf("exitStatus(0) = %v", err)
	}
	var code exitError
	if err := exitStatus(3); !errors.As(err, &code) || code != 3 {
		t.Errorf("exitStatus(3) = %v", err)
	}
	if err := exitStatus(1000); !errors.As(err, &code) || code != 255 {
		t.Errorf("exitStatus(1000) = %v, want 255", err)
	}
}

func TestRootTakesAtMostOneArg(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"verbose"}, false},
		{[]string{"a", "b"}, true},
	}
	for _, tt := range tests {
		if err := rootCmd.Args(rootCmd, tt.args); (err != nil) != tt.wantErr {
			t.Errorf("Args(%q) = %v, wantErr %v", tt.args, err, tt.wantErr)
		}
	}
}

func TestTableAlignsByDisplayWidth(t *testing.T) {
	var tab table
	tab.add("NAME", "SYMBOL")
	tab.add("sin", "sinq")
	tab.add("π/4", "pi_4")
	var buf bytes.Buffer
	if err := tab.write(&buf); err != nil {
		t.Fatal(err)
	}
	want := "NAME  SYMBOL\nsin   sinq\nπ/4   pi_4\n"
	if got := buf.String(); got != want {
		t.Errorf("table =\n%s\nwant\n%s", got, want)
	}
}

func TestTableTrimsEmptyTrailingCells(t *testing.T) {
	var tab table
	tab.add("a", "")
	tab.add("bbb", "x")
	var buf bytes.Buffer
	if err := tab.write(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a\nbbb  x\n" {
		t.Errorf("table = %q", got)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.2.3"}
	if err := renderVersionJSON(&buf, info, versionOptions{showHash: true}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if payload.Tool != "quadcheck" || payload.Version != "1.2.3" || payload.GitCommit != "unknown" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Strategy == "" || strings.Contains(buf.String(), "build_date") {
		t.Errorf("payload = %s", buf.String())
	}
}

func TestRenderProfilePretty(t *testing.T) {
	var buf bytes.Buffer
	p := profilePayload{Arch: "amd64", Triple: "x86_64-linux-gnu", FormatTag: "Q", FunctionTag: "q", Runtime: "libquadmath.so.0"}
	if err := renderProfilePretty(&buf, p); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"amd64 (x86_64-linux-gnu)", "%Qf", "<name>q from libquadmath.so.0"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, buf.String())
		}
	}
}
