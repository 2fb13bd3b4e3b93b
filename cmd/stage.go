package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/stageward/internal/cli"
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Show your current stage and what the next one takes",
	RunE:  runStage,
}

func init() {
	rootCmd.AddCommand(stageCmd)
}

func runStage(_ *cobra.Command, _ []string) error {
	pos, err := loadPosition()
	if err != nil {
		return err
	}

	ev := pos.Evaluate()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STAGE %d  %s", int(ev.Stage), ev.Stage)))
	fmt.Println()
	fmt.Printf("  %s\n\n", ev.Stage.Description())
	fmt.Print(cli.RenderCriteria(ev.Criteria))

	if ev.FIREProgress > 0 {
		fmt.Println()
		fmt.Printf("  FIRE progress  %s %s\n",
			cli.RenderHorizontalBar(ev.FIREProgress, 1, 30),
			cli.FormatPercent(ev.FIREProgress))
	}
	fmt.Println()
	return nil
}
