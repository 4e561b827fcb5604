package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar draws done/total as a bar of at least five cells followed by
// the percentage. The filled part uses the success color.
func ProgressBar(done, total, width int) string {
	width = max(width, 5)
	var ratio float64
	if total > 0 {
		ratio = min(float64(done)/float64(total), 1)
	}
	filled := int(ratio * float64(width))
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		current.Success.Render(strings.Repeat("█", filled)),
		current.Muted.Render(strings.Repeat("░", width-filled)),
	)
	return fmt.Sprintf("%s %3d%%", bar, int(ratio*100))
}

// OneLine folds line breaks and runs of whitespace into single spaces so
// the text fits a one-row cell.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PanelString frames lines in a box using the current theme.
func PanelString(lines []string) string {
	box := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box to w.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}
