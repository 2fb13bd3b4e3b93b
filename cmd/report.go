package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/report"
)

var flagReportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an HTML report of your current position",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "report.html", "Output path")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	ev := pos.Evaluate()
	if err := report.Write(flagReportOut, ev, pos.Budget, pos.Debts); err != nil {
		return err
	}

	fmt.Printf("  Report written to %s\n", flagReportOut)
	return nil
}
