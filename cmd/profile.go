package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
)

var (
	flagIncome        string
	flagEmergencyFund string
	flagPortfolio     string
	flagDeposit       string
	flagPassiveGoal   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update income, savings, and investment numbers",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Example: `  stageward profile set --income 5200
  stageward profile set --emergency-fund 9000 --portfolio 15000`,
	RunE: runProfileSet,
}

func init() {
	profileSetCmd.Flags().StringVar(&flagIncome, "income", "", "Monthly take-home income")
	profileSetCmd.Flags().StringVar(&flagEmergencyFund, "emergency-fund", "", "Current emergency fund balance")
	profileSetCmd.Flags().StringVar(&flagPortfolio, "portfolio", "", "Current investment portfolio balance")
	profileSetCmd.Flags().StringVar(&flagDeposit, "deposit", "", "Monthly investment deposit")
	profileSetCmd.Flags().StringVar(&flagPassiveGoal, "passive-income", "", "Desired monthly passive income")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Profile",
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Monthly income", cli.FormatMoney(pos.Profile.MonthlyIncome)},
			{"Emergency fund", cli.FormatMoney(pos.Profile.EmergencyFund)},
			{"Portfolio", cli.FormatMoney(pos.Profile.Portfolio)},
			{"Monthly deposit", cli.FormatMoney(pos.Profile.MonthlyDeposit)},
			{"Passive income goal", cli.FormatMoney(pos.Profile.DesiredPassiveIncome)},
		},
	}))
	fmt.Println()
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, err := s.Profile()
	if err != nil {
		return err
	}

	changed := false
	set := func(raw string, dst *model.Money, label string) error {
		if raw == "" {
			return nil
		}
		amount, err := model.ParseMoney(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if amount < 0 {
			return fmt.Errorf("%s: amount is negative", label)
		}
		*dst = amount
		changed = true
		return nil
	}

	if err := set(flagIncome, &profile.MonthlyIncome, "--income"); err != nil {
		return err
	}
	if err := set(flagEmergencyFund, &profile.EmergencyFund, "--emergency-fund"); err != nil {
		return err
	}
	if err := set(flagPortfolio, &profile.Portfolio, "--portfolio"); err != nil {
		return err
	}
	if err := set(flagDeposit, &profile.MonthlyDeposit, "--deposit"); err != nil {
		return err
	}
	if err := set(flagPassiveGoal, &profile.DesiredPassiveIncome, "--passive-income"); err != nil {
		return err
	}

	if !changed {
		return cmd.Help()
	}

	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("  Profile updated.")
	return nil
}
