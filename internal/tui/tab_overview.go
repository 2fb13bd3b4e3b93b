package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/tui/components"
	"github.com/theirongolddev/stageward/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.ev.Ratios

	var b strings.Builder

	cards := []struct{ Label, Value, Note string }{
		{"Income", cli.FormatMoney(a.profile.MonthlyIncome), "per month"},
		{"Excess", cli.FormatMoney(r.ExcessIncome), "needs ratio " + cli.FormatRatio(r.NeedsToExcess)},
		{"Emergency Fund", cli.FormatMoney(a.profile.EmergencyFund), fmt.Sprintf("%.1f months of needs", r.EmergencyMonths)},
		{"Debt", cli.FormatMoneyCompact(model.TotalDebtBalance(a.debts)), fmt.Sprintf("%s/mo interest", cli.FormatMoneyCompact(model.TotalMonthlyInterest(a.debts)))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	left := components.ContentCard(
		fmt.Sprintf("Stage %d · %s", int(a.ev.Stage), a.ev.Stage),
		a.renderStageChecklist(),
		halves[0],
	)
	right := components.ContentCard("Stage Ladder", a.renderStageLadder(), halves[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	if len(a.snapshots) >= 2 {
		balances := make([]float64, len(a.snapshots))
		for i, snap := range a.snapshots {
			balances[i] = float64(snap.DebtBalance)
		}
		inner := components.CardInnerWidth(cw)
		sparkColor := t.Accent
		if a.grayscale {
			sparkColor = t.TextMuted
		}
		first := a.snapshots[0]
		last := a.snapshots[len(a.snapshots)-1]
		trend := components.Sparkline(balances, inner, sparkColor) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf(
				"%s → %s over %d snapshots",
				cli.FormatMoneyCompact(first.DebtBalance),
				cli.FormatMoneyCompact(last.DebtBalance),
				len(a.snapshots)))
		b.WriteString(components.ContentCard("Debt Trend", trend, cw))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStageChecklist shows the current stage's criteria with
// pass/fail marks and a progress bar in the Independence stage.
func (a App) renderStageChecklist() string {
	t := theme.Active

	passStyle := lipgloss.NewStyle().Foreground(t.Green)
	failStyle := lipgloss.NewStyle().Foreground(t.Red)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(a.ev.Stage.Description()))
	b.WriteString("\n\n")
	for _, c := range a.ev.Criteria {
		mark := failStyle.Render(cli.PassMark(false))
		if c.Passed {
			mark = passStyle.Render(cli.PassMark(true))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, labelStyle.Render(c.Label)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("   target %s, currently %s", c.Target, c.Actual)))
		b.WriteString("\n")
	}

	if a.ev.FIREProgress > 0 {
		b.WriteString("\n")
		b.WriteString(components.ProgressBar(a.ev.FIREProgress, 24))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderStageLadder shows all four stages with the current one marked.
func (a App) renderStageLadder() string {
	t := theme.Active

	currentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	stages := []model.Stage{
		model.StageSurvival,
		model.StageStability,
		model.StageDebtPayoff,
		model.StageIndependence,
	}

	var b strings.Builder
	for _, s := range stages {
		line := fmt.Sprintf("%d  %s", int(s), s)
		switch {
		case s == a.ev.Stage:
			b.WriteString(currentStyle.Render("▶ " + line))
		case s < a.ev.Stage:
			b.WriteString(doneStyle.Render("  " + line + " " + cli.PassMark(true)))
		default:
			b.WriteString(todoStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
