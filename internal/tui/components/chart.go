package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode block sparkline, resampled to fit width.
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	// Resample by picking evenly spaced points so long series fit.
	points := values
	if len(values) > width {
		if width == 1 {
			return Sparkline(values[len(values)-1:], width, color)
		}
		points = make([]float64, width)
		for i := range points {
			points[i] = values[i*(len(values)-1)/(width-1)]
		}
	}

	peak := points[0]
	for _, v := range points[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range points {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// ProgressBar renders a filled/empty bar with a trailing percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	var barColor lipgloss.Color
	switch {
	case pct >= 0.8:
		barColor = t.Green
	case pct >= 0.4:
		barColor = t.Accent
	default:
		barColor = t.Orange
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// segmentPalette cycles through wedge colors for the budget bar.
func segmentPalette() []lipgloss.Color {
	t := theme.Active
	return []lipgloss.Color{t.Red, t.Blue, t.Yellow, t.Green, t.Orange, t.Magenta}
}

// SegmentBar renders budget items as one colored bar with a legend,
// one segment per item. With grayscale set, all segments use a single
// muted color.
func SegmentBar(items []model.BudgetItem, width int, grayscale bool) string {
	t := theme.Active
	palette := segmentPalette()

	var total model.Money
	for _, item := range items {
		total += item.Amount
	}
	if total <= 0 || width < len(items) {
		return ""
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var bar strings.Builder
	var legend strings.Builder
	used := 0
	for i, item := range items {
		segment := int(float64(item.Amount) / float64(total) * float64(width))
		if segment < 1 {
			segment = 1
		}
		if i == len(items)-1 {
			segment = width - used
			if segment < 1 {
				segment = 1
			}
		}
		used += segment

		color := palette[i%len(palette)]
		if grayscale {
			color = t.TextMuted
		}
		style := lipgloss.NewStyle().Foreground(color)
		bar.WriteString(style.Render(strings.Repeat("█", segment)))

		share := float64(item.Amount) / float64(total) * 100
		legend.WriteString(fmt.Sprintf("%s %s %s\n",
			style.Render("■"),
			nameStyle.Render(item.Name),
			mutedStyle.Render(fmt.Sprintf("%s (%.1f%%)", item.Amount, share)),
		))
	}

	return bar.String() + "\n\n" + strings.TrimRight(legend.String(), "\n")
}
