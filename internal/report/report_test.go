package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/stageward/internal/model"
	"github.com/theirongolddev/stageward/internal/plan"
)

func TestWrite(t *testing.T) {
	profile := model.Profile{
		MonthlyIncome: 500000,
		EmergencyFund: 600000,
	}
	var budget model.Budget
	budget.Upsert(model.BudgetItem{Name: "rent", Amount: 150000, Kind: model.KindNeed})
	budget.Upsert(model.BudgetItem{Name: "dining", Amount: 30000, Kind: model.KindWant})
	debts := []model.Debt{
		{Name: "card", Balance: 420000, APRBps: 2199, Payment: 25000},
	}

	ev := plan.Evaluate(profile, budget, debts, plan.DefaultTargets())

	path := filepath.Join(t.TempDir(), "report.html")
	if err := Write(path, ev, budget, debts); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		ev.Stage.String(),
		"rent",
		"dining",
		"card",
		"21.99%",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWrite_DebtThatNeverClears(t *testing.T) {
	// $20 against 25% APR on $1000 can't outrun interest.
	debts := []model.Debt{
		{Name: "card", Balance: 100000, APRBps: 2500, Payment: 2000},
	}
	ev := plan.Evaluate(model.Profile{MonthlyIncome: 100000}, model.Budget{}, debts, plan.DefaultTargets())

	path := filepath.Join(t.TempDir(), "report.html")
	if err := Write(path, ev, model.Budget{}, debts); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "never clears") {
		t.Error("report should flag a debt that never clears")
	}
}
