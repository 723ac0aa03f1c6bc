package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunExplicitCountAllPrecisions(t *testing.T) {
	out, err := runCmd(t, "405B")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "Required GPU Memory[parameters: 405.0B]" {
		t.Fatalf("header = %q", lines[0])
	}
}

func TestRunExplicitCountSinglePrecision(t *testing.T) {
	out, err := runCmd(t, "7000000000", "-p", "16")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Required GPU Memory[parameters: 7.0B, precision: 16]: 15.65 GB\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestRunRejectsBadPrecision(t *testing.T) {
	if _, err := runCmd(t, "7B", "-p", "64"); err == nil {
		t.Fatalf("expected error for precision 64")
	}
}

func TestRunRequiresArg(t *testing.T) {
	if _, err := runCmd(t); err == nil {
		t.Fatalf("expected error without arguments")
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("VRAMFIT_TEST_KEY", "v")
	if envOr("VRAMFIT_TEST_KEY", "d") != "v" {
		t.Fatalf("env value not used")
	}
	if envOr("VRAMFIT_TEST_MISSING", "d") != "d" {
		t.Fatalf("fallback not used")
	}
}
