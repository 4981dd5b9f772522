package examples

import (
	"fmt"
	"strings"
)

type Panel struct{}

func NewPanel() Panel { return Panel{} }

// Static sample programs with the output the endpoint produces for them.
// No state dependency; the panel renders the same on every frame.
var samples = []struct {
	code     string
	response string
}{
	{"let identity = fn(x) { x; }; identity(5);", "5"},
	{"let identity = fn(x) { return x; }; identity(5);", "5"},
	{"let double = fn(x) { x * 2; }; double(5);", "10"},
	{"let add = fn(x, y) { x + y; }; add(5, 5);", "10"},
	{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", "20"},
	{"fn(x) { x; }(5)", "5"},
}

// View renders the example/help panel.
func (Panel) View() string {
	var b strings.Builder
	b.WriteString("Examples:\n")
	for _, s := range samples {
		fmt.Fprintf(&b, "\n  Code:     %s\n", s.code)
		fmt.Fprintf(&b, "  Response: %s\n", s.response)
	}
	return b.String()
}
