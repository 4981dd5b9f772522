package banner

import (
	"github.com/charmbracelet/lipgloss"
)

type Kind int

const (
	Info Kind = iota
	Error
)

var (
	infoStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "31", Dark: "45"}).
			Foreground(lipgloss.AdaptiveColor{Light: "31", Dark: "45"}).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).
			Padding(0, 1)
)

type Banner struct{}

func NewBanner() Banner { return Banner{} }

// View renders one transient notification. The caller decides visibility;
// an invisible banner renders as nothing.
func (Banner) View(kind Kind, text string, visible bool) string {
	if !visible {
		return ""
	}
	switch kind {
	case Error:
		return errorStyle.Render("✗ " + text)
	default:
		return infoStyle.Render("ℹ " + text)
	}
}
