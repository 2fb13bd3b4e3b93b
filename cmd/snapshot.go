package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record a snapshot of your current position",
	Long: "Snapshots capture income, budget totals, emergency fund, and debt at a\n" +
		"point in time. Take one a month and `snapshot list` shows your progress.",
	RunE: runSnapshot,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show snapshot history with month-over-month deltas",
	RunE:  runSnapshotList,
}

func init() {
	snapshotCmd.AddCommand(snapshotListCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	pos, err := readPosition(s, cfg)
	if err != nil {
		return err
	}

	ev := pos.Evaluate()
	snap := model.Snapshot{
		TakenAt:       time.Now(),
		MonthlyIncome: pos.Profile.MonthlyIncome,
		Needs:         pos.Budget.Needs(),
		Wants:         pos.Budget.Wants(),
		Savings:       pos.Budget.Savings(),
		EmergencyFund: pos.Profile.EmergencyFund,
		DebtBalance:   model.TotalDebtBalance(pos.Debts),
		DebtInterest:  model.TotalMonthlyInterest(pos.Debts),
		Stage:         ev.Stage,
	}

	if err := s.SaveSnapshot(snap); err != nil {
		return err
	}

	fmt.Printf("  Snapshot recorded: stage %d (%s), %s debt, %s emergency fund.\n",
		int(snap.Stage), snap.Stage, snap.DebtBalance, snap.EmergencyFund)
	return nil
}

func runSnapshotList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	snaps, err := s.Snapshots()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No snapshots yet. Record one with `stageward snapshot`.")
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for i, snap := range snaps {
		debtDelta := ""
		if i > 0 {
			diff := snap.DebtBalance - snaps[i-1].DebtBalance
			switch {
			case diff < 0:
				debtDelta = "-" + cli.FormatMoneyCompact(-diff)
			case diff > 0:
				debtDelta = "+" + cli.FormatMoneyCompact(diff)
			}
		}
		rows = append(rows, []string{
			snap.TakenAt.Local().Format("2006-01-02"),
			fmt.Sprintf("%d %s", int(snap.Stage), snap.Stage),
			cli.FormatMoney(snap.EmergencyFund),
			cli.FormatMoney(snap.DebtBalance),
			debtDelta,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Snapshots",
		Headers: []string{"Date", "Stage", "Emergency Fund", "Debt", "Change"},
		Rows:    rows,
	}))

	// Debt trend across history.
	if len(snaps) > 1 {
		values := make([]float64, len(snaps))
		for i, snap := range snaps {
			values[i] = float64(snap.DebtBalance)
		}
		fmt.Printf("  Debt trend: %s\n", cli.RenderSparkline(values))
	}
	fmt.Println()
	return nil
}
