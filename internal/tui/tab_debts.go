package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
	"github.com/theirongolddev/stageward/internal/store"
	"github.com/theirongolddev/stageward/internal/tui/components"
	"github.com/theirongolddev/stageward/internal/tui/theme"
)

// debtsState holds the Debts tab's cursor and payoff strategy.
type debtsState struct {
	cursor   int
	strategy plan.Strategy
}

func (a App) handleDebtsKey(key string) (tea.Model, tea.Cmd) {
	sorted := a.sortedDebts()

	switch key {
	case "j", "down":
		if a.debtsTab.cursor < len(sorted)-1 {
			a.debtsTab.cursor++
		}
	case "k", "up":
		if a.debtsTab.cursor > 0 {
			a.debtsTab.cursor--
		}
	case "s":
		if a.debtsTab.strategy == plan.Avalanche {
			a.debtsTab.strategy = plan.Snowball
		} else {
			a.debtsTab.strategy = plan.Avalanche
		}
	case "x":
		if a.debtsTab.cursor < len(sorted) {
			name := sorted[a.debtsTab.cursor].Name
			a.status = "Removed " + name
			return a, mutateCmd(a.dbPath, func(s *store.Store) error {
				_, err := s.DeleteDebt(name)
				return err
			})
		}
	}
	return a, nil
}

func (a App) sortedDebts() []model.Debt {
	if a.debtsTab.strategy == plan.Snowball {
		return model.SortSnowball(a.debts)
	}
	return model.SortAvalanche(a.debts)
}

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active

	var b strings.Builder

	if len(a.debts) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No debts tracked. Add one with `stageward debt add`.")
		b.WriteString(components.ContentCard("Debts", hint, cw))
		return b.String()
	}

	cards := []struct{ Label, Value, Note string }{
		{"Balance", cli.FormatMoneyCompact(model.TotalDebtBalance(a.debts)), fmt.Sprintf("%d debts", len(a.debts))},
		{"Interest", cli.FormatMoney(model.TotalMonthlyInterest(a.debts)), "per month"},
		{"Minimums", cli.FormatMoney(model.TotalMinimumPayments(a.debts)), "per month"},
		{"Extra", cli.FormatMoney(extraPayment(a.ev.Ratios.ExcessIncome)), "excess toward payoff"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	title := fmt.Sprintf("Debts · %s order", a.debtsTab.strategy)
	b.WriteString(components.ContentCard(title, a.renderDebtList(cw), cw))
	b.WriteString("\n")
	b.WriteString(a.renderSelectedDebtCard(cw))
	b.WriteString("\n")
	b.WriteString(a.renderPayoffCard(cw))

	return b.String()
}

// renderSelectedDebtCard shows the cursor debt paid down on its own
// minimum payment, no extra.
func (a App) renderSelectedDebtCard(cw int) string {
	t := theme.Active
	sorted := a.sortedDebts()
	if a.debtsTab.cursor >= len(sorted) {
		return ""
	}
	d := sorted[a.debtsTab.cursor]

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	schedule, err := plan.PayoffOne(d, 0)
	if err != nil {
		body := errStyle.Render(fmt.Sprintf("%s never clears: %s/month interest exceeds the payment.",
			d.Name, cli.FormatMoney(d.MonthlyInterest())))
		return components.ContentCard(d.Name, body, cw)
	}

	inner := components.CardInnerWidth(cw)
	sparkColor := t.Cyan
	if a.grayscale {
		sparkColor = t.TextMuted
	}

	balances := make([]float64, len(schedule.Balances))
	for i, bal := range schedule.Balances {
		balances[i] = float64(bal)
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render("Cleared in "))
	b.WriteString(valueStyle.Render(cli.FormatMonths(schedule.Months)))
	b.WriteString(mutedStyle.Render(" on minimums, "))
	b.WriteString(valueStyle.Render(cli.FormatMoney(schedule.InterestPaid)))
	b.WriteString(mutedStyle.Render(" in interest"))
	b.WriteString("\n")
	b.WriteString(components.Sparkline(balances, inner, sparkColor))

	return components.ContentCard(d.Name, b.String(), cw)
}

func (a App) renderDebtList(cw int) string {
	t := theme.Active
	sorted := a.sortedDebts()

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	inner := components.CardInnerWidth(cw)
	nameW := inner - 40
	if nameW < 10 {
		nameW = 10
	}

	highAPRBps := int(a.targets.HighAPRPercent * 100)

	var b strings.Builder
	b.WriteString(" " + mutedStyle.Render(fmt.Sprintf("%-*s %10s %8s %10s %8s",
		nameW, "", "balance", "apr", "payment", "interest")))
	b.WriteString("\n")
	for i, d := range sorted {
		mark := " "
		if d.APRBps > highAPRBps {
			mark = warnStyle.Render("!")
		}
		line := fmt.Sprintf("%-*s %10s %7.2f%% %10s %8s",
			nameW, truncate(d.Name, nameW),
			cli.FormatMoneyCompact(d.Balance),
			d.APRPercent(),
			cli.FormatMoney(d.Payment),
			cli.FormatMoneyCompact(d.MonthlyInterest()))
		style := rowStyle
		if i == a.debtsTab.cursor {
			style = selStyle
		}
		b.WriteString(mark + style.Render(line))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderPayoffCard(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	extra := extraPayment(a.ev.Ratios.ExcessIncome)
	schedule, err := plan.PayoffAll(a.debts, extra, a.debtsTab.strategy)
	if err != nil {
		body := errStyle.Render("Payoff never finishes at the current payments.")
		if errors.Is(err, plan.ErrInterestExceedsPayment) {
			body = errStyle.Render("Minimum payments do not cover monthly interest.") +
				"\n" + mutedStyle.Render("Raise payments or the balance only grows.")
		}
		return components.ContentCard("Payoff", body, cw)
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
	b.WriteString(mutedStyle.Render("Debt free in "))
	b.WriteString(valueStyle.Render(cli.FormatMonths(schedule.Months)))
	b.WriteString(mutedStyle.Render(", paying "))
	b.WriteString(valueStyle.Render(cli.FormatMoney(schedule.TotalInterest)))
	b.WriteString(mutedStyle.Render(" in interest"))
	b.WriteString("\n")
	if len(schedule.Order) > 1 {
		b.WriteString(mutedStyle.Render("Order: " + strings.Join(schedule.Order, ", then ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.Sparkline(balances, inner, sparkColor))

	return components.ContentCard("Payoff", b.String(), cw)
}

// extraPayment is the excess income available beyond minimum payments.
func extraPayment(excess model.Money) model.Money {
	if excess < 0 {
		return 0
	}
	return excess
}
