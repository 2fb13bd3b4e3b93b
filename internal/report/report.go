// Package report renders a self-contained HTML report of the current
// financial position.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/theirongolddev/stageward/internal/cli"
	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
)

//go:embed template.html
var templateHTML string

var reportTemplate = template.Must(template.New("report").Parse(templateHTML))

// segmentColors matches the CLI distribution palette.
var segmentColors = []string{
	"#D14D41", "#4385BE", "#D0A215", "#879A39", "#DA702C", "#8B7EC8",
}

type budgetSegment struct {
	Name         string
	Amount       string
	Share        string
	WidthPercent float64
	Color        string
}

type debtRow struct {
	Name    string
	Balance string
	APR     string
	Payment string
	Payoff  string
}

type reportData struct {
	GeneratedAt      time.Time
	StageNumber      int
	Stage            string
	StageDescription string
	Criteria         []plan.Criterion

	ExcessIncome       string
	NeedsToExcess      string
	EmergencyMonths    string
	DebtInterestBurden string

	BudgetSegments []budgetSegment
	Debts          []debtRow
}

// Write renders the report for the given position to path.
func Write(path string, ev plan.Evaluation, budget model.Budget, debts []model.Debt) error {
	data := reportData{
		GeneratedAt:      time.Now(),
		StageNumber:      int(ev.Stage),
		Stage:            ev.Stage.String(),
		StageDescription: ev.Stage.Description(),
		Criteria:         ev.Criteria,

		ExcessIncome:       cli.FormatMoney(ev.Ratios.ExcessIncome),
		NeedsToExcess:      cli.FormatRatio(ev.Ratios.NeedsToExcess),
		EmergencyMonths:    fmt.Sprintf("%.1f months", ev.Ratios.EmergencyMonths),
		DebtInterestBurden: cli.FormatPercent(ev.Ratios.DebtInterestBurden),
	}

	total := budget.Total()
	if total > 0 {
		for i, item := range budget.Sorted() {
			share := float64(item.Amount) / float64(total)
			data.BudgetSegments = append(data.BudgetSegments, budgetSegment{
				Name:         item.Name,
				Amount:       item.Amount.String(),
				Share:        cli.FormatPercent(share),
				WidthPercent: share * 100,
				Color:        segmentColors[i%len(segmentColors)],
			})
		}
	}

	for _, d := range debts {
		payoff := "never clears"
		if schedule, err := plan.PayoffOne(d, 0); err == nil {
			payoff = cli.FormatMonths(schedule.Months)
		}
		data.Debts = append(data.Debts, debtRow{
			Name:    d.Name,
			Balance: d.Balance.String(),
			APR:     fmt.Sprintf("%.2f%%", d.APRPercent()),
			Payment: d.Payment.String(),
			Payoff:  payoff,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
