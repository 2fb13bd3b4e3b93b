package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorPurple    = lipgloss.Color("#8B7EC8")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	passStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	failStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// segmentPalette cycles through wedge colors for the budget
// distribution bar, one per category.
var segmentPalette = []lipgloss.Color{
	ColorRed, ColorBlue, ColorYellow, ColorGreen, ColorOrange, ColorPurple,
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row of
// just "---" renders as a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeBorder("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		writeBorder("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeBorder("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeBorder("╰", "┴", "╯")

	return b.String()
}

// RenderCriteria renders a stage checklist with pass/fail marks.
func RenderCriteria(criteria []plan.Criterion) string {
	var b strings.Builder
	for _, c := range criteria {
		mark := failStyle.Render(PassMark(false))
		if c.Passed {
			mark = passStyle.Render(PassMark(true))
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, valueStyle.Render(c.Label)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("      target %s, currently %s", c.Target, c.Actual)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDistribution renders the budget breakdown as a single colored
// bar, the terminal stand-in for the donut chart: one segment per
// item, colors cycling through the palette.
func RenderDistribution(items []model.BudgetItem, width int, grayscale bool) string {
	var total model.Money
	for _, item := range items {
		total += item.Amount
	}
	if total <= 0 || width < len(items) {
		return ""
	}

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

		color := segmentPalette[i%len(segmentPalette)]
		if grayscale {
			color = ColorTextMuted
		}
		style := lipgloss.NewStyle().Foreground(color)
		bar.WriteString(style.Render(strings.Repeat("█", segment)))

		legend.WriteString(fmt.Sprintf("  %s %s %s (%s)\n",
			style.Render("■"),
			valueStyle.Render(item.Name),
			mutedStyle.Render(item.Amount.String()),
			mutedStyle.Render(FormatPercent(float64(item.Amount)/float64(total))),
		))
	}

	return "  " + bar.String() + "\n\n" + legend.String()
}

// RenderHorizontalBar renders one labeled horizontal bar scaled to maxValue.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return passStyle.Render(strings.Repeat("█", barLen)) +
		dimStyle.Render(strings.Repeat("░", maxWidth-barLen))
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}
