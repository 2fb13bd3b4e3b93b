// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/theirongolddev/stageward/internal/model"
)

// FormatMoney renders cents as "$1,234.56".
func FormatMoney(m model.Money) string {
	return m.String()
}

// FormatMoneyCompact renders large amounts with suffixes for chart
// labels. e.g., $1,234.56 -> "$1.2K", $2,500,000.00 -> "$2.5M"
func FormatMoneyCompact(m model.Money) string {
	dollars := m.Dollars()
	abs := math.Abs(dollars)

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", dollars/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", dollars/1_000)
	case abs >= 100:
		return fmt.Sprintf("$%.0f", dollars)
	default:
		return fmt.Sprintf("$%.2f", dollars)
	}
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRatio renders a needs-to-excess style ratio, e.g. "1.8 : 1".
// Infinite ratios (no excess income) render as "n/a".
func FormatRatio(r float64) string {
	if math.IsInf(r, 1) || math.IsNaN(r) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f : 1", r)
}

// FormatMonths renders a month count as "2y 3m" past a year, "8m" below.
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years := months / 12
	rem := months % 12
	if years > 0 {
		return fmt.Sprintf("%dy %dm", years, rem)
	}
	return fmt.Sprintf("%dm", rem)
}

// PassMark returns the checklist mark for a criterion.
func PassMark(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}
