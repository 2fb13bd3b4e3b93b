package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
)

var flagItemKind string

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage monthly budget categories",
	RunE:  runBudgetList,
}

var budgetAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add or update a budget category",
	Example: `  stageward budget add rent 1500 --kind need
  stageward budget add dining 250 --kind want
  stageward budget add "index fund" 500 --kind savings`,
	Args: cobra.ExactArgs(2),
	RunE: runBudgetAdd,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budget categories with their share of spending",
	RunE:  runBudgetList,
}

var budgetRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a budget category",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetRemove,
}

func init() {
	budgetAddCmd.Flags().StringVarP(&flagItemKind, "kind", "k", "need", "Category kind: need, want, or savings")

	budgetCmd.AddCommand(budgetAddCmd)
	budgetCmd.AddCommand(budgetListCmd)
	budgetCmd.AddCommand(budgetRemoveCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	amount, err := model.ParseMoney(args[1])
	if err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("amount is negative")
	}

	kind, err := model.ParseItemKind(flagItemKind)
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.UpsertBudgetItem(model.BudgetItem{Name: name, Amount: amount, Kind: kind}); err != nil {
		return err
	}

	fmt.Printf("  %s: %s/month (%s)\n", name, amount, kind)
	return nil
}

func runBudgetList(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	if len(pos.Budget.Items) == 0 {
		fmt.Println("\n  No budget categories. Add one with `stageward budget add`.")
		return nil
	}

	items := pos.Budget.Sorted()

	rows := make([][]string, 0, len(items)+2)
	for _, item := range items {
		rows = append(rows, []string{item.Name, item.Kind.String(), cli.FormatMoney(item.Amount)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", cli.FormatMoney(pos.Budget.Total())})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly Budget",
		Headers: []string{"Category", "Kind", "Amount"},
		Rows:    rows,
	}))

	fmt.Print(cli.RenderDistribution(items, 50, false))
	fmt.Println()

	fmt.Printf("  Needs %s   Wants %s   Savings %s\n\n",
		cli.FormatMoney(pos.Budget.Needs()),
		cli.FormatMoney(pos.Budget.Wants()),
		cli.FormatMoney(pos.Budget.Savings()),
	)
	return nil
}

func runBudgetRemove(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	existed, err := s.DeleteBudgetItem(args[0])
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("no budget category named %q", args[0])
	}

	fmt.Printf("  Removed %s.\n", args[0])
	return nil
}
