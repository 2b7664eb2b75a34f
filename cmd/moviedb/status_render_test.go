package main

import (
	"io"
	"testing"
)

func TestRenderStatusLine(t *testing.T) {
	if got := renderStatusLine(statusOK, "Added movie 3", false); got != "[OK] Added movie 3" {
		t.Fatalf("unexpected plain line %q", got)
	}
	colored := renderStatusLine(statusWarn, "kept rating", true)
	if colored != ansiYellow+"[WARN] kept rating"+ansiReset {
		t.Fatalf("unexpected colored line %q", colored)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
