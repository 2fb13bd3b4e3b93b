package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/config"
	"github.com/theirongolddev/stageward/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, err := s.Profile()
	if err != nil {
		return err
	}

	incomeIn := moneyInput(profile.MonthlyIncome)
	fundIn := moneyInput(profile.EmergencyFund)
	portfolioIn := moneyInput(profile.Portfolio)
	passiveIn := moneyInput(profile.DesiredPassiveIncome)
	theme := cfg.Appearance.Theme

	validateMoney := func(s string) error {
		if s == "" {
			return nil
		}
		amount, err := model.ParseMoney(s)
		if err != nil {
			return err
		}
		if amount < 0 {
			return fmt.Errorf("amount must not be negative")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly take-home income").
				Description("After taxes, the number that hits your account.").
				Placeholder("5200").
				Value(&incomeIn).
				Validate(validateMoney),
			huh.NewInput().
				Title("Emergency fund balance").
				Description("Savings you could draw on tomorrow.").
				Placeholder("0").
				Value(&fundIn).
				Validate(validateMoney),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Investment portfolio balance").
				Placeholder("0").
				Value(&portfolioIn).
				Validate(validateMoney),
			huh.NewInput().
				Title("Passive income goal per month").
				Description("For the FIRE projection. Leave blank to skip.").
				Placeholder("3000").
				Value(&passiveIn).
				Validate(validateMoney),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	setMoney(&profile.MonthlyIncome, incomeIn)
	setMoney(&profile.EmergencyFund, fundIn)
	setMoney(&profile.Portfolio, portfolioIn)
	setMoney(&profile.DesiredPassiveIncome, passiveIn)

	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	cfg.Appearance.Theme = theme
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Next: add your budget with `stageward budget add rent 1500 --kind need`")
	fmt.Println()
	return nil
}

// moneyInput pre-fills a form field; zero shows as empty, not "0.00".
func moneyInput(m model.Money) string {
	if m == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", m.Dollars())
}

func setMoney(dst *model.Money, raw string) {
	if raw == "" {
		return
	}
	// Validated by the form already.
	if amount, err := model.ParseMoney(raw); err == nil {
		*dst = amount
	}
}
