package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/planfile"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export profile, budget, and debts to a YAML plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a YAML plan file, replacing profile, budget, and debts",
	Long: "Replaces the stored profile, budget, and debts with the plan file's\n" +
		"contents. Snapshot history is kept.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := "stageward-plan.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	pos, err := loadPosition()
	if err != nil {
		return err
	}

	f := planfile.File{
		Profile: pos.Profile,
		Budget:  pos.Budget,
		Debts:   pos.Debts,
	}
	if err := planfile.WriteFile(path, f); err != nil {
		return err
	}

	fmt.Printf("  Exported %d budget categories and %d debts to %s\n",
		len(pos.Budget.Items), len(pos.Debts), path)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := planfile.LoadFile(args[0])
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.ReplaceAll(f.Profile, f.Budget, f.Debts); err != nil {
		return err
	}

	fmt.Printf("  Imported %d budget categories and %d debts from %s\n",
		len(f.Budget.Items), len(f.Debts), args[0])
	return nil
}
