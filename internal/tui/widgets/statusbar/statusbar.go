package statusbar

import (
	"strings"

	"coderun/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: run phase, endpoint, and an
// optional transient notice (e.g. clipboard feedback).
func (StatusBar) View(s state.AppState, endpoint, spinner, notice string) string {
	phase := "Idle"
	if s.Phase == state.Running {
		phase = spinner + " Running"
	}
	parts := []string{phase, "→ " + endpoint}
	if notice != "" {
		parts = append(parts, notice)
	}
	return strings.Join(parts, "  ")
}
