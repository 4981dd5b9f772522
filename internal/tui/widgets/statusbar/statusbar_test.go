package statusbar

import (
	"strings"
	"testing"

	"coderun/internal/tui/state"
)

func TestIdleLine(t *testing.T) {
	sb := NewStatusBar()
	out := sb.View(state.NewAppState(), "http://localhost:8080/api/code", "", "")
	if !strings.Contains(out, "Idle") {
		t.Fatalf("expected Idle phase in status line: %q", out)
	}
	if !strings.Contains(out, "http://localhost:8080/api/code") {
		t.Fatalf("expected endpoint in status line: %q", out)
	}
}

func TestRunningLineWithNotice(t *testing.T) {
	sb := NewStatusBar()
	s := state.BeginRun(state.NewAppState())
	out := sb.View(s, "http://x/api/code", "⠋", "Result copied")
	if !strings.Contains(out, "Running") {
		t.Fatalf("expected Running phase: %q", out)
	}
	if !strings.Contains(out, "Result copied") {
		t.Fatalf("expected notice: %q", out)
	}
}
