package plan

import (
	"math"
	"testing"

	"github.com/theirongolddev/stageward/internal/model"
)

func dollars(d int64) model.Money { return model.Money(d * 100) }

func testBudget(needs, wants, savings int64) model.Budget {
	var b model.Budget
	b.Upsert(model.BudgetItem{Name: "rent", Amount: dollars(needs), Kind: model.KindNeed})
	b.Upsert(model.BudgetItem{Name: "fun", Amount: dollars(wants), Kind: model.KindWant})
	b.Upsert(model.BudgetItem{Name: "brokerage", Amount: dollars(savings), Kind: model.KindSavings})
	return b
}

func TestComputeRatios(t *testing.T) {
	profile := model.Profile{
		MonthlyIncome: dollars(5000),
		EmergencyFund: dollars(6000),
	}
	budget := testBudget(2000, 500, 300)
	debts := []model.Debt{
		{Name: "card", Balance: dollars(1000), APRBps: 2400, Payment: dollars(100)},
	}

	r := ComputeRatios(profile, budget, debts)

	// 5000 - 2000 - 500 - 100 = 2400; savings is not an expense.
	if r.ExcessIncome != dollars(2400) {
		t.Errorf("ExcessIncome = %s, want %s", r.ExcessIncome, dollars(2400))
	}
	if math.Abs(r.NeedsToExcess-2000.0/2400.0) > 1e-9 {
		t.Errorf("NeedsToExcess = %.4f, want %.4f", r.NeedsToExcess, 2000.0/2400.0)
	}
	if math.Abs(r.EmergencyMonths-3.0) > 1e-9 {
		t.Errorf("EmergencyMonths = %.2f, want 3", r.EmergencyMonths)
	}
	// 24% APR on $1000 is $20/month interest; burden = 20/5000.
	if math.Abs(r.DebtInterestBurden-20.0/5000.0) > 1e-9 {
		t.Errorf("DebtInterestBurden = %.5f, want %.5f", r.DebtInterestBurden, 20.0/5000.0)
	}
}

func TestComputeRatios_NoExcess(t *testing.T) {
	profile := model.Profile{MonthlyIncome: dollars(3000)}
	budget := testBudget(2500, 600, 0)

	r := ComputeRatios(profile, budget, nil)

	if r.ExcessIncome != dollars(-100) {
		t.Errorf("ExcessIncome = %s, want %s", r.ExcessIncome, dollars(-100))
	}
	if !math.IsInf(r.NeedsToExcess, 1) {
		t.Errorf("NeedsToExcess = %.2f, want +Inf", r.NeedsToExcess)
	}
}

func TestEvaluate_Survival(t *testing.T) {
	profile := model.Profile{MonthlyIncome: dollars(3000)}
	budget := testBudget(2500, 600, 0)

	ev := Evaluate(profile, budget, nil, DefaultTargets())

	if ev.Stage != model.StageSurvival {
		t.Fatalf("Stage = %s, want Survival", ev.Stage)
	}
	if len(ev.Criteria) != 1 || ev.Criteria[0].Passed {
		t.Fatalf("expected one failing criterion, got %+v", ev.Criteria)
	}
}

func TestEvaluate_StabilityBlockedByFund(t *testing.T) {
	profile := model.Profile{MonthlyIncome: dollars(5000)}
	budget := testBudget(2000, 500, 0)

	ev := Evaluate(profile, budget, nil, DefaultTargets())

	if ev.Stage != model.StageStability {
		t.Fatalf("Stage = %s, want Stability", ev.Stage)
	}
	// Ratio criterion passes (0.8:1), fund criterion fails.
	if !ev.Criteria[0].Passed {
		t.Errorf("needs-to-excess criterion failed: %+v", ev.Criteria[0])
	}
	if ev.Criteria[1].Passed {
		t.Errorf("emergency fund criterion passed with no fund: %+v", ev.Criteria[1])
	}
}

func TestEvaluate_DebtPayoffGatesOnHighAPR(t *testing.T) {
	profile := model.Profile{
		MonthlyIncome: dollars(5000),
		EmergencyFund: dollars(12000), // 6 months of $2000 needs
	}
	budget := testBudget(2000, 500, 0)
	debts := []model.Debt{
		{Name: "card", Balance: dollars(4000), APRBps: 2199, Payment: dollars(150)},
		{Name: "mortgage", Balance: dollars(200000), APRBps: 350, Payment: dollars(900)},
	}

	ev := Evaluate(profile, budget, debts, DefaultTargets())
	if ev.Stage != model.StageDebtPayoff {
		t.Fatalf("Stage = %s, want Debt Payoff", ev.Stage)
	}

	// Clearing the card advances the stage; the 3.5% mortgage does not block.
	debts[0].Balance = 0
	ev = Evaluate(profile, budget, debts, DefaultTargets())
	if ev.Stage != model.StageIndependence {
		t.Fatalf("Stage after clearing card = %s, want Independence", ev.Stage)
	}
}

func TestEvaluate_BufferBeforeDebt(t *testing.T) {
	// High-interest debt but no emergency fund: still Stability.
	profile := model.Profile{MonthlyIncome: dollars(5000)}
	budget := testBudget(2000, 500, 0)
	debts := []model.Debt{
		{Name: "card", Balance: dollars(4000), APRBps: 2199, Payment: dollars(150)},
	}

	ev := Evaluate(profile, budget, debts, DefaultTargets())
	if ev.Stage != model.StageStability {
		t.Fatalf("Stage = %s, want Stability", ev.Stage)
	}
}

func TestEvaluate_FIREProgress(t *testing.T) {
	profile := model.Profile{
		MonthlyIncome:        dollars(6000),
		EmergencyFund:        dollars(12000),
		Portfolio:            dollars(15000),
		DesiredPassiveIncome: dollars(100),
	}
	budget := testBudget(2000, 500, 1000)

	ev := Evaluate(profile, budget, nil, DefaultTargets())
	if ev.Stage != model.StageIndependence {
		t.Fatalf("Stage = %s, want Independence", ev.Stage)
	}
	// Target at the default 4% safe rate: 1200 * 100 / 4 = $30,000.
	if math.Abs(ev.FIREProgress-0.5) > 1e-9 {
		t.Errorf("FIREProgress = %.3f, want 0.5", ev.FIREProgress)
	}
}

func TestEvaluate_FIREProgressHonorsSafeRate(t *testing.T) {
	profile := model.Profile{
		MonthlyIncome:        dollars(6000),
		EmergencyFund:        dollars(12000),
		Portfolio:            dollars(15000),
		DesiredPassiveIncome: dollars(100),
	}
	budget := testBudget(2000, 500, 1000)

	// At 8% the target halves to 1200 * 100 / 8 = $15,000, so the
	// portfolio is exactly there.
	targets := DefaultTargets()
	targets.SafeRatePercent = 8

	ev := Evaluate(profile, budget, nil, targets)
	if math.Abs(ev.FIREProgress-1.0) > 1e-9 {
		t.Errorf("FIREProgress = %.3f, want 1.0", ev.FIREProgress)
	}
	if len(ev.Criteria) != 1 || !ev.Criteria[0].Passed {
		t.Errorf("criteria = %+v, want a single passed portfolio criterion", ev.Criteria)
	}
	if want := dollars(15000).String(); ev.Criteria[0].Target != want {
		t.Errorf("criterion target = %q, want %q", ev.Criteria[0].Target, want)
	}
}
