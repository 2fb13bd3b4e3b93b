package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/plan"
	"github.com/theirongolddev/stageward/internal/tui/components"
	"github.com/theirongolddev/stageward/internal/tui/theme"
)

func (a App) renderPlanTab(cw int) string {
	var b strings.Builder

	if len(a.debts) > 0 {
		b.WriteString(a.renderDebtCurveCard(cw))
		b.WriteString("\n")
	}
	b.WriteString(a.renderFIRECard(cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	targets := components.ContentCard("Thresholds", a.renderTargets(), halves[0])
	rates := components.ContentCard("Assumptions", a.renderRates(), halves[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, targets, rates))
	b.WriteString("\n")

	return b.String()
}

// renderDebtCurveCard charts the combined balance under the current
// strategy with all excess income thrown at the debts.
func (a App) renderDebtCurveCard(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	schedule, err := plan.PayoffAll(a.debts, extraPayment(a.ev.Ratios.ExcessIncome), a.debtsTab.strategy)
	if err != nil {
		body := "Payoff never finishes at the current payments."
		if errors.Is(err, plan.ErrInterestExceedsPayment) {
			body = "Minimum payments do not cover monthly interest."
		}
		return components.ContentCard("Debt Payoff", errStyle.Render(body), cw)
	}

	inner := components.CardInnerWidth(cw)
	sparkColor := t.Green
	if a.grayscale {
		sparkColor = t.TextMuted
	}

	balances := make([]float64, len(schedule.Balances))
	for i, bal := range schedule.Balances {
		balances[i] = float64(bal)
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s strategy, debt free in ", schedule.Strategy)))
	b.WriteString(valueStyle.Render(cli.FormatMonths(schedule.Months)))
	b.WriteString("\n\n")
	b.WriteString(components.Sparkline(balances, inner, sparkColor))

	return components.ContentCard("Debt Payoff", b.String(), cw)
}

func (a App) renderFIRECard(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)

	if a.profile.DesiredPassiveIncome <= 0 {
		hint := mutedStyle.Render("Set a passive income goal to project financial independence:\n") +
			mutedStyle.Render("`stageward profile set --passive-income 3000`")
		return components.ContentCard("Financial Independence", hint, cw)
	}

	in := plan.FIREInput{
		PassiveIncome:     a.profile.DesiredPassiveIncome,
		Portfolio:         a.profile.Portfolio,
		MonthlyDeposit:    a.profile.MonthlyDeposit,
		GrowthRatePercent: a.cfg.FIRE.GrowthRatePercent,
		SafeRatePercent:   a.cfg.FIRE.SafeRatePercent,
	}

	proj, err := plan.ProjectFIRE(in)
	switch {
	case errors.Is(err, plan.ErrAlreadyAtTarget):
		target := plan.FIRETarget(in.PassiveIncome, in.SafeRatePercent)
		body := goodStyle.Render("Your portfolio already sustains "+cli.FormatMoney(in.PassiveIncome)+"/month.") +
			"\n" + mutedStyle.Render("Target was "+cli.FormatMoney(target)+".")
		return components.ContentCard("Financial Independence", body, cw)
	case errors.Is(err, plan.ErrNeverReachesTarget):
		body := mutedStyle.Render("With no deposits and no growth the projection never converges.\n") +
			mutedStyle.Render("Set a monthly deposit with `stageward profile set --deposit`.")
		return components.ContentCard("Financial Independence", body, cw)
	case err != nil:
		return components.ContentCard("Financial Independence", mutedStyle.Render(err.Error()), cw)
	}

	inner := components.CardInnerWidth(cw)
	sparkColor := t.Blue
	if a.grayscale {
		sparkColor = t.TextMuted
	}

	balances := make([]float64, len(proj.Balances))
	for i, bal := range proj.Balances {
		balances[i] = float64(bal)
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render("Target "))
	b.WriteString(valueStyle.Render(cli.FormatMoney(proj.Target)))
	b.WriteString(mutedStyle.Render(" reached in "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d years", proj.Years)))
	b.WriteString("\n\n")
	b.WriteString(components.Sparkline(balances, inner, sparkColor))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s now → %s at target",
		cli.FormatMoneyCompact(a.profile.Portfolio),
		cli.FormatMoneyCompact(proj.Balances[len(proj.Balances)-1]))))

	return components.ContentCard("Financial Independence", b.String(), cw)
}

func (a App) renderTargets() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	rows := []struct{ label, value string }{
		{"Needs to excess", fmt.Sprintf("at most %.1f : 1", a.targets.NeedsToExcess)},
		{"Emergency fund", fmt.Sprintf("%.0f months of needs", a.targets.EmergencyFundMonths)},
		{"High-interest line", fmt.Sprintf("%.0f%% APR", a.targets.HighAPRPercent)},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", r.label)))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Edit in config.toml"))

	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderRates() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	growth := a.cfg.FIRE.GrowthRatePercent
	if growth <= 0 {
		growth = plan.DefaultGrowthRatePercent
	}
	safe := a.cfg.FIRE.SafeRatePercent
	if safe <= 0 {
		safe = growth
	}

	rows := []struct{ label, value string }{
		{"Growth rate", fmt.Sprintf("%.1f%%/year", growth)},
		{"Safe rate", fmt.Sprintf("%.1f%%/year", safe)},
		{"Monthly deposit", cli.FormatMoney(a.profile.MonthlyDeposit)},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", r.label)))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
