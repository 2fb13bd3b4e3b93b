package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
)

var (
	flagFireIncome  string
	flagFireDeposit string
)

var fireCmd = &cobra.Command{
	Use:   "fire",
	Short: "Project years until your portfolio funds your passive income goal",
	Example: `  stageward fire
  stageward fire --passive-income 3500 --deposit 800`,
	RunE: runFire,
}

func init() {
	fireCmd.Flags().StringVar(&flagFireIncome, "passive-income", "", "Override the passive income goal for this run")
	fireCmd.Flags().StringVar(&flagFireDeposit, "deposit", "", "Override the monthly deposit for this run")
	rootCmd.AddCommand(fireCmd)
}

func runFire(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	input := plan.FIREInput{
		PassiveIncome:     pos.Profile.DesiredPassiveIncome,
		Portfolio:         pos.Profile.Portfolio,
		MonthlyDeposit:    pos.Profile.MonthlyDeposit,
		GrowthRatePercent: pos.Config.FIRE.GrowthRatePercent,
		SafeRatePercent:   pos.Config.FIRE.SafeRatePercent,
	}

	if flagFireIncome != "" {
		if input.PassiveIncome, err = model.ParseMoney(flagFireIncome); err != nil {
			return fmt.Errorf("--passive-income: %w", err)
		}
	}
	if flagFireDeposit != "" {
		if input.MonthlyDeposit, err = model.ParseMoney(flagFireDeposit); err != nil {
			return fmt.Errorf("--deposit: %w", err)
		}
	}

	if input.PassiveIncome <= 0 {
		fmt.Println()
		fmt.Println("  No passive income goal set.")
		fmt.Println("  Set one with `stageward profile set --passive-income 3000`")
		fmt.Println()
		return nil
	}

	proj, err := plan.ProjectFIRE(input)
	if errors.Is(err, plan.ErrAlreadyAtTarget) {
		fmt.Println()
		fmt.Println("  Your portfolio already covers the goal. You're there.")
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FIRE PROJECTION"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Passive income goal", cli.FormatMoney(input.PassiveIncome) + "/month"},
			{"Target portfolio", cli.FormatMoney(proj.Target)},
			{"Starting portfolio", cli.FormatMoney(input.Portfolio)},
			{"Monthly deposit", cli.FormatMoney(input.MonthlyDeposit)},
			{"Growth rate", fmt.Sprintf("%.1f%%", input.GrowthRatePercent)},
			{"---"},
			{"Years to target", fmt.Sprintf("%d", proj.Years)},
		},
	}))

	values := make([]float64, len(proj.Balances))
	for i, b := range proj.Balances {
		values[i] = float64(b)
	}
	fmt.Printf("  %s\n", cli.RenderSparkline(values))
	fmt.Printf("  %s now, %s in year %d\n\n",
		cli.FormatMoneyCompact(proj.Balances[0]),
		cli.FormatMoneyCompact(proj.Balances[len(proj.Balances)-1]),
		proj.Years)
	return nil
}
