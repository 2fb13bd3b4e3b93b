package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/tui/theme"
)

// Tab is a single entry in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Overview", Key: '1'},
	{Name: "Budget", Key: '2'},
	{Name: "Debts", Key: '3'},
	{Name: "Plan", Key: '4'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts,
			dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]")+
				inactiveStyle.Render(tab.Name))
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
