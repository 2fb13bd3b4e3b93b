package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/store"
	"github.com/theirongolddev/stageward/internal/tui/components"
	"github.com/theirongolddev/stageward/internal/tui/theme"
)

// budgetState holds the Budget tab's cursor and inline add form.
type budgetState struct {
	cursor int

	adding  bool
	inputs  []textinput.Model // name, amount, kind
	focus   int
	formErr string
}

func newBudgetForm() []textinput.Model {
	name := textinput.New()
	name.Placeholder = "rent"
	name.CharLimit = 40
	name.Width = 24
	name.Focus()

	amount := textinput.New()
	amount.Placeholder = "1500"
	amount.CharLimit = 12
	amount.Width = 24

	kind := textinput.New()
	kind.Placeholder = "need, want, or savings"
	kind.CharLimit = 8
	kind.Width = 24

	return []textinput.Model{name, amount, kind}
}

func (a App) handleBudgetKey(key string) (tea.Model, tea.Cmd) {
	items := a.budget.Sorted()

	switch key {
	case "j", "down":
		if a.budgetTab.cursor < len(items)-1 {
			a.budgetTab.cursor++
		}
	case "k", "up":
		if a.budgetTab.cursor > 0 {
			a.budgetTab.cursor--
		}
	case "a":
		a.budgetTab.adding = true
		a.budgetTab.inputs = newBudgetForm()
		a.budgetTab.focus = 0
		a.budgetTab.formErr = ""
		return a, textinput.Blink
	case "x":
		if a.budgetTab.cursor < len(items) {
			name := items[a.budgetTab.cursor].Name
			a.status = "Removed " + name
			return a, mutateCmd(a.dbPath, func(s *store.Store) error {
				_, err := s.DeleteBudgetItem(name)
				return err
			})
		}
	}
	return a, nil
}

func (a App) updateBudgetForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.budgetTab.adding = false
		return a, nil

	case "enter", "tab":
		if msg.String() == "enter" && a.budgetTab.focus == len(a.budgetTab.inputs)-1 {
			return a.submitBudgetForm()
		}
		a.budgetTab.inputs[a.budgetTab.focus].Blur()
		a.budgetTab.focus = (a.budgetTab.focus + 1) % len(a.budgetTab.inputs)
		a.budgetTab.inputs[a.budgetTab.focus].Focus()
		return a, textinput.Blink

	case "shift+tab":
		a.budgetTab.inputs[a.budgetTab.focus].Blur()
		a.budgetTab.focus = (a.budgetTab.focus - 1 + len(a.budgetTab.inputs)) % len(a.budgetTab.inputs)
		a.budgetTab.inputs[a.budgetTab.focus].Focus()
		return a, textinput.Blink
	}

	var cmd tea.Cmd
	a.budgetTab.inputs[a.budgetTab.focus], cmd = a.budgetTab.inputs[a.budgetTab.focus].Update(msg)
	return a, cmd
}

func (a App) submitBudgetForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(a.budgetTab.inputs[0].Value())
	if name == "" {
		a.budgetTab.formErr = "name is required"
		return a, nil
	}

	amount, err := model.ParseMoney(a.budgetTab.inputs[1].Value())
	if err != nil || amount < 0 {
		a.budgetTab.formErr = "amount must be a non-negative number"
		return a, nil
	}

	kindRaw := strings.TrimSpace(a.budgetTab.inputs[2].Value())
	if kindRaw == "" {
		kindRaw = "need"
	}
	kind, err := model.ParseItemKind(kindRaw)
	if err != nil {
		a.budgetTab.formErr = err.Error()
		return a, nil
	}

	item := model.BudgetItem{Name: name, Amount: amount, Kind: kind}
	a.budgetTab.adding = false
	a.status = "Saved " + name
	return a, mutateCmd(a.dbPath, func(s *store.Store) error {
		return s.UpsertBudgetItem(item)
	})
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	items := a.budget.Sorted()

	var b strings.Builder

	needs := a.budget.Needs()
	wants := a.budget.Wants()
	savings := a.budget.Savings()
	cards := []struct{ Label, Value, Note string }{
		{"Needs", cli.FormatMoney(needs), shareNote(needs, a.profile.MonthlyIncome)},
		{"Wants", cli.FormatMoney(wants), shareNote(wants, a.profile.MonthlyIncome)},
		{"Savings", cli.FormatMoney(savings), shareNote(savings, a.profile.MonthlyIncome)},
		{"Excess", cli.FormatMoney(a.ev.Ratios.ExcessIncome), "after minimum payments"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(items) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No budget categories yet. Press [a] to add one.")
		b.WriteString(components.ContentCard("Budget", hint, cw))
	} else {
		b.WriteString(components.ContentCard("Monthly Budget", a.renderBudgetList(items, cw), cw))
		b.WriteString("\n")

		inner := components.CardInnerWidth(cw)
		if dist := components.SegmentBar(items, inner, a.grayscale); dist != "" {
			b.WriteString(components.ContentCard("Distribution", dist, cw))
		}
	}

	if a.budgetTab.adding {
		b.WriteString("\n")
		b.WriteString(a.renderBudgetForm(cw))
	}

	return b.String()
}

func (a App) renderBudgetList(items []model.BudgetItem, cw int) string {
	t := theme.Active

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	kindStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	inner := components.CardInnerWidth(cw)
	nameW := inner - 30
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	for i, item := range items {
		line := fmt.Sprintf("%-*s %-8s %12s",
			nameW, truncate(item.Name, nameW), item.Kind, cli.FormatMoney(item.Amount))
		style := rowStyle
		if i == a.budgetTab.cursor {
			style = selStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(kindStyle.Render(fmt.Sprintf("%-*s %-8s %12s",
		nameW, "total", "", cli.FormatMoney(a.budget.Total()))))

	return b.String()
}

func (a App) renderBudgetForm(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	labels := []string{"Name", "Amount", "Kind"}
	var b strings.Builder
	for i, in := range a.budgetTab.inputs {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", labels[i])))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if a.budgetTab.formErr != "" {
		b.WriteString(errStyle.Render(a.budgetTab.formErr))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("enter to save, esc to cancel"))

	return components.ContentCard("Add Category", b.String(), cw)
}

func shareNote(part, whole model.Money) string {
	if whole <= 0 {
		return ""
	}
	return fmt.Sprintf("%.0f%% of income", float64(part)/float64(whole)*100)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
