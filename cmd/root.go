// Package cmd implements the stageward command-line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/config"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
	"github.com/theirongolddev/stageward/internal/store"
)

var (
	flagDBPath string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "stageward",
	Short: "Stages of personal finance planner",
	Long: "Track your budget, debts, and savings; see which stage of personal\n" +
		"finance you're in and what it takes to reach the next one.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Database path (default XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress hints and progress output")
}

// position is everything a command needs to evaluate the stage model.
type position struct {
	Config  config.Config
	Profile model.Profile
	Budget  model.Budget
	Debts   []model.Debt
}

// Evaluate runs the stage engine on this position.
func (p *position) Evaluate() plan.Evaluation {
	return plan.Evaluate(p.Profile, p.Budget, p.Debts, p.Config.PlanTargets())
}

func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "stageward.db")
	}
	return store.DefaultPath()
}

// openStore opens the database, honoring the --db flag and config.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file shouldn't lock the user out of their data.
		fmt.Fprintf(os.Stderr, "  warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	s, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// loadPosition reads the full position from the database.
func loadPosition() (*position, error) {
	s, cfg, err := openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	return readPosition(s, cfg)
}

func readPosition(s *store.Store, cfg config.Config) (*position, error) {
	profile, err := s.Profile()
	if err != nil {
		return nil, err
	}
	budget, err := s.Budget()
	if err != nil {
		return nil, err
	}
	debts, err := s.Debts()
	if err != nil {
		return nil, err
	}

	return &position{Config: cfg, Profile: profile, Budget: budget, Debts: debts}, nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	if pos.Profile.MonthlyIncome == 0 && len(pos.Budget.Items) == 0 {
		fmt.Println()
		fmt.Println("  No data yet. Get started:")
		fmt.Println()
		fmt.Println("    stageward setup                          interactive setup")
		fmt.Println("    stageward profile set --income 5200      set monthly income")
		fmt.Println("    stageward budget add rent 1500 --kind need")
		fmt.Println()
		return nil
	}

	ev := pos.Evaluate()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STAGE %d  %s", int(ev.Stage), ev.Stage)))
	fmt.Println()
	fmt.Printf("  %s\n\n", ev.Stage.Description())

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "This Month",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", cli.FormatMoney(pos.Profile.MonthlyIncome)},
			{"Needs", cli.FormatMoney(pos.Budget.Needs())},
			{"Wants", cli.FormatMoney(pos.Budget.Wants())},
			{"Debt payments", cli.FormatMoney(model.TotalMinimumPayments(pos.Debts))},
			{"---"},
			{"Excess income", cli.FormatMoney(ev.Ratios.ExcessIncome)},
		},
	}))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Ratios",
		Headers: []string{"Ratio", "Value"},
		Rows: [][]string{
			{"Needs to excess", cli.FormatRatio(ev.Ratios.NeedsToExcess)},
			{"Emergency fund", fmt.Sprintf("%.1f months", ev.Ratios.EmergencyMonths)},
			{"Debt interest burden", cli.FormatPercent(ev.Ratios.DebtInterestBurden)},
		},
	}))

	fmt.Println("  Next stage checklist")
	fmt.Print(cli.RenderCriteria(ev.Criteria))
	fmt.Println()

	if !flagQuiet {
		fmt.Println("  Run `stageward tui` for the interactive dashboard.")
		fmt.Println()
	}

	return nil
}
