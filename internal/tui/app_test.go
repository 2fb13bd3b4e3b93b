package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/stageward/internal/config"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp(t *testing.T) App {
	t.Helper()

	a := NewApp("test.db", config.DefaultConfig())

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.Update(dataLoadedMsg{
		profile: model.Profile{
			MonthlyIncome: 500000,
			EmergencyFund: 600000,
		},
		budget: model.Budget{Items: []model.BudgetItem{
			{Name: "rent", Amount: 150000, Kind: model.KindNeed},
			{Name: "groceries", Amount: 50000, Kind: model.KindNeed},
			{Name: "fun", Amount: 40000, Kind: model.KindWant},
		}},
		debts: []model.Debt{
			{Name: "card", Balance: 200000, APRBps: 2200, Payment: 10000},
			{Name: "car", Balance: 800000, APRBps: 500, Payment: 25000},
		},
	})
	return m.(App)
}

func TestTabNavigation(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(key("3"))
	a = m.(App)
	if a.activeTab != tabDebts {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabDebts)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != tabPlan {
		t.Fatalf("activeTab = %d after tab, want %d", a.activeTab, tabPlan)
	}

	// Wraps around from the last tab
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != tabOverview {
		t.Fatalf("activeTab = %d after wrap, want %d", a.activeTab, tabOverview)
	}
}

func TestEvaluationRecomputedOnLoad(t *testing.T) {
	a := loadedApp(t)

	// Positive excess, 3 months of fund: stuck in Stability.
	if a.ev.Stage != model.StageStability {
		t.Fatalf("stage = %v, want %v", a.ev.Stage, model.StageStability)
	}
	if a.ev.Ratios.ExcessIncome != 225000 {
		t.Fatalf("excess = %d, want 225000", a.ev.Ratios.ExcessIncome)
	}
}

func TestHelpToggleSwallowsNextKey(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(key("?"))
	a = m.(App)
	if !a.showHelp {
		t.Fatal("help not shown after ?")
	}

	// Any key dismisses help without acting on the current tab.
	m, _ = a.Update(key("3"))
	a = m.(App)
	if a.showHelp {
		t.Fatal("help still shown")
	}
	if a.activeTab != tabOverview {
		t.Fatalf("activeTab = %d, key should only dismiss help", a.activeTab)
	}
}

func TestBudgetCursorClamped(t *testing.T) {
	a := loadedApp(t)
	a.activeTab = tabBudget

	for i := 0; i < 10; i++ {
		m, _ := a.Update(key("j"))
		a = m.(App)
	}
	if a.budgetTab.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (last item)", a.budgetTab.cursor)
	}

	for i := 0; i < 10; i++ {
		m, _ := a.Update(key("k"))
		a = m.(App)
	}
	if a.budgetTab.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.budgetTab.cursor)
	}
}

func TestStrategyToggle(t *testing.T) {
	a := loadedApp(t)
	a.activeTab = tabDebts

	if got := a.sortedDebts()[0].Name; got != "card" {
		t.Fatalf("avalanche front = %q, want card", got)
	}

	m, _ := a.Update(key("s"))
	a = m.(App)
	if a.debtsTab.strategy != plan.Snowball {
		t.Fatalf("strategy = %v, want snowball", a.debtsTab.strategy)
	}
	if got := a.sortedDebts()[0].Name; got != "card" {
		t.Fatalf("snowball front = %q, want card (smallest balance)", got)
	}
}

func TestBudgetFormValidation(t *testing.T) {
	a := loadedApp(t)
	a.activeTab = tabBudget

	m, _ := a.Update(key("a"))
	a = m.(App)
	if !a.budgetTab.adding {
		t.Fatal("form not open after a")
	}

	// Empty name rejected on submit from the last field.
	a.budgetTab.focus = len(a.budgetTab.inputs) - 1
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if !a.budgetTab.adding {
		t.Fatal("form closed despite empty name")
	}
	if a.budgetTab.formErr == "" {
		t.Fatal("no validation error for empty name")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.budgetTab.adding {
		t.Fatal("esc did not close the form")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := NewApp("test.db", config.DefaultConfig())
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	a = m.(App)

	if !strings.Contains(a.View(), "too narrow") {
		t.Fatal("narrow terminal view missing warning")
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	a := loadedApp(t)

	for tab := tabOverview; tab <= tabPlan; tab++ {
		a.activeTab = tab
		if a.View() == "" {
			t.Fatalf("tab %d rendered empty", tab)
		}
	}
}
