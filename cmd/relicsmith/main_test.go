package main

import (
	"testing"
)

func TestGradeCmdFlags(t *testing.T) {
	cmd := newGradeCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}

	for _, flag := range []string{"inventory", "config", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestRankCmdFlags(t *testing.T) {
	cmd := newRankCmd()
	f := cmd.Flags()

	limit, _ := f.GetInt("limit")
	if limit != 0 {
		t.Errorf("default limit = %d, want 0 (deferred to config)", limit)
	}

	for _, flag := range []string{"inventory", "config", "output", "limit"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestOptimizeCmdFlags(t *testing.T) {
	cmd := newOptimizeCmd()
	f := cmd.Flags()

	for _, flag := range []string{"inventory", "sets", "config", "output", "shape", "primary-set", "secondary-set"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestRendererFor(t *testing.T) {
	for _, format := range []string{"", "text", "json", "markdown"} {
		if _, err := rendererFor(format); err != nil {
			t.Errorf("rendererFor(%q) returned error: %v", format, err)
		}
	}
	if _, err := rendererFor("yaml"); err == nil {
		t.Error("rendererFor(yaml) should fail")
	}
}
