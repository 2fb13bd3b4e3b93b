// Package tui provides the interactive Bubble Tea dashboard for stageward.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/stageward/internal/config"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
	"github.com/theirongolddev/stageward/internal/store"
	"github.com/theirongolddev/stageward/internal/tui/components"
	"github.com/theirongolddev/stageward/internal/tui/theme"
)

// dataLoadedMsg carries a full snapshot of the stored position.
type dataLoadedMsg struct {
	profile   model.Profile
	budget    model.Budget
	debts     []model.Debt
	snapshots []model.Snapshot
}

// dataErrMsg reports a failed load or save.
type dataErrMsg struct {
	err error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath  string
	cfg     config.Config
	targets plan.Targets

	// Position as loaded from the store
	profile   model.Profile
	budget    model.Budget
	debts     []model.Debt
	snapshots []model.Snapshot

	// Derived on every data change
	ev plan.Evaluation

	loaded  bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	grayscale bool
	status    string

	budgetTab budgetState
	debtsTab  debtsState
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 110
)

// NewApp creates the dashboard model.
func NewApp(dbPath string, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)

	return App{
		dbPath:  dbPath,
		cfg:     cfg,
		targets: cfg.PlanTargets(),
		debtsTab: debtsState{
			strategy: plan.Avalanche,
		},
	}
}

// Init kicks off the initial data load.
func (a App) Init() tea.Cmd {
	return loadDataCmd(a.dbPath)
}

// loadDataCmd reads the full position from the store.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return dataErrMsg{err}
		}
		defer func() { _ = s.Close() }()

		var msg dataLoadedMsg
		if msg.profile, err = s.Profile(); err != nil {
			return dataErrMsg{err}
		}
		if msg.budget, err = s.Budget(); err != nil {
			return dataErrMsg{err}
		}
		if msg.debts, err = s.Debts(); err != nil {
			return dataErrMsg{err}
		}
		if msg.snapshots, err = s.Snapshots(); err != nil {
			return dataErrMsg{err}
		}
		return msg
	}
}

// mutateCmd applies a store mutation, then reloads. Mutations are rare
// and small, so reloading everything keeps derived state simple.
func mutateCmd(dbPath string, fn func(*store.Store) error) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return dataErrMsg{err}
		}
		if err := fn(s); err != nil {
			_ = s.Close()
			return dataErrMsg{err}
		}
		if err := s.Close(); err != nil {
			return dataErrMsg{err}
		}
		return loadDataCmd(dbPath)()
	}
}

// recompute re-runs the stage engine after any data change.
func (a *App) recompute() {
	a.ev = plan.Evaluate(a.profile, a.budget, a.debts, a.targets)
	if a.budgetTab.cursor >= len(a.budget.Items) {
		a.budgetTab.cursor = len(a.budget.Items) - 1
	}
	if a.budgetTab.cursor < 0 {
		a.budgetTab.cursor = 0
	}
	if a.debtsTab.cursor >= len(a.debts) {
		a.debtsTab.cursor = len(a.debts) - 1
	}
	if a.debtsTab.cursor < 0 {
		a.debtsTab.cursor = 0
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		a.profile = msg.profile
		a.budget = msg.budget
		a.debts = msg.debts
		a.snapshots = msg.snapshots
		a.loaded = true
		a.loadErr = nil
		a.recompute()
		return a, nil

	case dataErrMsg:
		a.loadErr = msg.err
		a.loaded = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// The budget add form captures all other input while open.
	if a.activeTab == tabBudget && a.budgetTab.adding {
		return a.updateBudgetForm(msg)
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.status = ""

	switch key {
	case "q", "esc":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "g":
		a.grayscale = !a.grayscale
		return a, nil
	case "r":
		return a, loadDataCmd(a.dbPath)
	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabBudget:
		return a.handleBudgetKey(key)
	case tabDebts:
		return a.handleDebtsKey(key)
	}
	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabBudget
	tabDebts
	tabPlan
)

// View renders the full dashboard.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  stageward needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return "\n  Loading..."
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render("Error: "+a.loadErr.Error()) + "\n\n  Press q to quit.\n"
	}
	if a.showHelp {
		return a.viewHelp()
	}

	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(a.renderHeader(cw))
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(cw))
	case tabBudget:
		b.WriteString(a.renderBudgetTab(cw))
	case tabDebts:
		b.WriteString(a.renderDebtsTab(cw))
	case tabPlan:
		b.WriteString(a.renderPlanTab(cw))
	}

	content := b.String()

	// Pin the status bar to the bottom of the terminal.
	lines := strings.Count(content, "\n") + 1
	for i := lines; i < a.height-1; i++ {
		content += "\n"
	}
	content += components.RenderStatusBar(a.width, a.ev.Stage.String())

	return content
}

func (a App) contentWidth() int {
	cw := a.width - 2
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) renderHeader(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	stageStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	left := " " + titleStyle.Render("◆ stageward")
	right := mutedStyle.Render("Stage "+fmt.Sprintf("%d", int(a.ev.Stage))+" · ") +
		stageStyle.Render(a.ev.Stage.String()) + " "
	if a.status != "" {
		right = mutedStyle.Render(a.status) + " "
	}

	padding := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

func (a App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"1-4", "jump to tab"},
		{"tab / shift+tab", "next / previous tab"},
		{"j / k", "move selection"},
		{"a", "add budget category (Budget tab)"},
		{"x", "delete selected item (Budget and Debts tabs)"},
		{"s", "toggle payoff strategy (Debts tab)"},
		{"g", "toggle grayscale charts"},
		{"r", "reload from disk"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-16s", r.key)),
			descStyle.Render(r.desc)))
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("  Press any key to close."))

	return components.ContentCard("Keys", b.String(), 50)
}
