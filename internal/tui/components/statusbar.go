package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and the current stage name on the right.
func RenderStatusBar(width int, stageName string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if stageName != "" {
		right = stageName + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
