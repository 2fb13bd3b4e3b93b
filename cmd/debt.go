package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
)

var (
	flagExtraPayment string
	flagStrategy     string
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage debts and project payoff schedules",
	RunE:  runDebtList,
}

var debtAddCmd = &cobra.Command{
	Use:   "add <name> <balance> <apr%> <payment>",
	Short: "Add or update a debt",
	Example: `  stageward debt add card 4200 21.99 150
  stageward debt add "car loan" 9000 5.5 250`,
	Args: cobra.ExactArgs(4),
	RunE: runDebtAdd,
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List debts with interest cost",
	RunE:  runDebtList,
}

var debtRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtRemove,
}

var debtPayoffCmd = &cobra.Command{
	Use:   "payoff [name]",
	Short: "Project payoff time, rolling payments debt to debt",
	Long: "Without a name, projects the combined payoff of every debt under the\n" +
		"chosen strategy. With a name, projects that single debt.",
	Example: `  stageward debt payoff
  stageward debt payoff --strategy snowball --extra 200
  stageward debt payoff card --extra 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDebtPayoff,
}

func init() {
	debtPayoffCmd.Flags().StringVar(&flagExtraPayment, "extra", "", "Extra monthly payment beyond the minimums")
	debtPayoffCmd.Flags().StringVar(&flagStrategy, "strategy", "avalanche", "Payoff order: avalanche or snowball")

	debtCmd.AddCommand(debtAddCmd)
	debtCmd.AddCommand(debtListCmd)
	debtCmd.AddCommand(debtRemoveCmd)
	debtCmd.AddCommand(debtPayoffCmd)
	rootCmd.AddCommand(debtCmd)
}

func runDebtAdd(_ *cobra.Command, args []string) error {
	name := args[0]

	balance, err := model.ParseMoney(args[1])
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	aprPercent, err := strconv.ParseFloat(args[2], 64)
	if err != nil || aprPercent < 0 || aprPercent > 400 {
		return fmt.Errorf("apr: %q is not a valid percentage", args[2])
	}
	payment, err := model.ParseMoney(args[3])
	if err != nil {
		return fmt.Errorf("payment: %w", err)
	}
	if balance < 0 || payment < 0 {
		return fmt.Errorf("balance and payment must not be negative")
	}

	d := model.Debt{
		Name:    name,
		Balance: balance,
		APRBps:  int(aprPercent*100 + 0.5),
		Payment: payment,
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.UpsertDebt(d); err != nil {
		return err
	}

	fmt.Printf("  %s: %s at %.2f%%, %s/month (%s/month interest)\n",
		d.Name, d.Balance, d.APRPercent(), d.Payment, d.MonthlyInterest())
	return nil
}

func runDebtList(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	if len(pos.Debts) == 0 {
		fmt.Println("\n  No debts on file. That's the goal!")
		return nil
	}

	highAPRBps := int(pos.Config.PlanTargets().HighAPRPercent * 100)

	rows := make([][]string, 0, len(pos.Debts)+2)
	for _, d := range model.SortAvalanche(pos.Debts) {
		name := d.Name
		if d.APRBps > highAPRBps {
			name += " *"
		}
		rows = append(rows, []string{
			name,
			cli.FormatMoney(d.Balance),
			fmt.Sprintf("%.2f%%", d.APRPercent()),
			cli.FormatMoney(d.Payment),
			cli.FormatMoney(d.MonthlyInterest()),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatMoney(model.TotalDebtBalance(pos.Debts)),
		"",
		cli.FormatMoney(model.TotalMinimumPayments(pos.Debts)),
		cli.FormatMoney(model.TotalMonthlyInterest(pos.Debts)),
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debts",
		Headers: []string{"Debt", "Balance", "APR", "Payment", "Interest/mo"},
		Rows:    rows,
	}))
	fmt.Println("  * above the high-interest threshold; blocks the Debt Payoff stage")
	fmt.Println()
	return nil
}

func runDebtRemove(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	existed, err := s.DeleteDebt(args[0])
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("no debt named %q", args[0])
	}

	fmt.Printf("  Removed %s.\n", args[0])
	return nil
}

func runDebtPayoff(_ *cobra.Command, args []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}
	if len(pos.Debts) == 0 {
		fmt.Println("\n  No debts on file. That's the goal!")
		return nil
	}

	var extra model.Money
	if flagExtraPayment != "" {
		extra, err = model.ParseMoney(flagExtraPayment)
		if err != nil {
			return fmt.Errorf("--extra: %w", err)
		}
	}

	if len(args) == 1 {
		return payoffSingle(pos, args[0], extra)
	}
	return payoffCombined(pos, extra)
}

func payoffSingle(pos *position, name string, extra model.Money) error {
	var target *model.Debt
	for i := range pos.Debts {
		if pos.Debts[i].Name == name {
			target = &pos.Debts[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no debt named %q", name)
	}

	schedule, err := plan.PayoffOne(*target, extra)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF  %s", target.Name)))
	fmt.Println()
	fmt.Printf("  Paid off in %s paying %s/month\n",
		cli.FormatMonths(schedule.Months), cli.FormatMoney(target.Payment+extra))
	fmt.Printf("  Total interest: %s\n\n", cli.FormatMoney(schedule.InterestPaid))
	printBalanceCurve(schedule.Balances)
	return nil
}

func payoffCombined(pos *position, extra model.Money) error {
	strategy, err := plan.ParseStrategy(flagStrategy)
	if err != nil {
		return err
	}

	schedule, err := plan.PayoffAll(pos.Debts, extra, strategy)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF  %s", schedule.Strategy)))
	fmt.Println()
	fmt.Printf("  Order: %s\n", strings.Join(schedule.Order, ", then "))
	fmt.Printf("  Debt-free in %s\n", cli.FormatMonths(schedule.Months))
	fmt.Printf("  Total interest: %s\n\n", cli.FormatMoney(schedule.TotalInterest))
	printBalanceCurve(schedule.Balances)

	// Show what the other ordering costs, the original dashboard's
	// side-by-side scenario comparison.
	other := plan.Snowball
	if strategy == plan.Snowball {
		other = plan.Avalanche
	}
	if alt, err := plan.PayoffAll(pos.Debts, extra, other); err == nil {
		delta := alt.TotalInterest - schedule.TotalInterest
		if delta > 0 {
			fmt.Printf("  (%s would cost %s more interest)\n\n", other, cli.FormatMoney(delta))
		} else if delta < 0 {
			fmt.Printf("  (%s would save %s interest)\n\n", other, cli.FormatMoney(-delta))
		}
	}
	return nil
}

// printBalanceCurve renders a monthly balance series as a sparkline
// with endpoint labels.
func printBalanceCurve(balances []model.Money) {
	if len(balances) == 0 {
		return
	}
	values := make([]float64, len(balances))
	for i, b := range balances {
		values[i] = float64(b)
	}
	fmt.Printf("  %s\n", cli.RenderSparkline(values))
	fmt.Printf("  %s now, %s at the end\n\n",
		cli.FormatMoneyCompact(balances[0]),
		cli.FormatMoneyCompact(balances[len(balances)-1]))
}
