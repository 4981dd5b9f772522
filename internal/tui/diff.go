package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	diffLabel   = lipgloss.NewStyle().Bold(true)
	diffFaint   = lipgloss.NewStyle().Faint(true)
)

// renderUnifiedDiff shows what changed in the buffer since the last run,
// with line- and char-level highlights.
func renderUnifiedDiff(lastRun, current string) string {
	if lastRun == "" {
		return "No run yet\n"
	}
	if lastRun == current {
		return "No changes since last run\n"
	}
	// Heuristic: if line counts match, do per-line char highlight; otherwise show raw blocks.
	bLines := strings.Split(lastRun, "\n")
	aLines := strings.Split(current, "\n")
	var sb strings.Builder
	if len(bLines) == len(aLines) && len(bLines) > 0 {
		for i := 0; i < len(bLines); i++ {
			bl := bLines[i]
			al := aLines[i]
			if bl == al {
				if strings.TrimSpace(bl) == "" {
					continue
				}
				sb.WriteString("  ")
				sb.WriteString(diffFaint.Render(bl))
				sb.WriteString("\n")
				continue
			}
			// char-level on pair
			d := dmp.New()
			diffs := d.DiffMain(bl, al, false)
			d.DiffCleanupSemantic(diffs)
			sb.WriteString(diffDelLine.Render("- "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffDelete:
					sb.WriteString(diffDelChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(diffDelLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
			sb.WriteString(diffAddLine.Render("+ "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffInsert:
					sb.WriteString(diffAddChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(diffAddLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
		return sb.String()
	}
	// Fallback: show raw blocks
	sb.WriteString(diffLabel.Render("LAST RUN") + "\n")
	for _, l := range bLines {
		sb.WriteString(diffDelLine.Render("- ") + l + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(diffLabel.Render("BUFFER") + "\n")
	for _, l := range aLines {
		sb.WriteString(diffAddLine.Render("+ ") + l + "\n")
	}
	return sb.String()
}
