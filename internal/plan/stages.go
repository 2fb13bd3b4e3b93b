package plan

import (
	"fmt"
	"math"

	"github.com/theirongolddev/stageward/internal/model"
)

// Targets are the configurable stage thresholds.
type Targets struct {
	NeedsToExcess       float64 // stage 1 passes at or below this
	EmergencyFundMonths float64 // stage 1 passes at or above this
	HighAPRPercent      float64 // debt above this APR blocks stage 2
	SafeRatePercent     float64 // annual yield behind the FIRE target
}

// DefaultTargets returns the model's canonical thresholds: the 2-to-1
// needs-to-excess target, a six-month emergency fund, 6% APR as the
// high-interest line, and the default safe withdrawal rate.
func DefaultTargets() Targets {
	return Targets{
		NeedsToExcess:       2.0,
		EmergencyFundMonths: 6,
		HighAPRPercent:      6,
		SafeRatePercent:     DefaultSafeRatePercent,
	}
}

// Criterion is one pass/fail line of a stage checklist.
type Criterion struct {
	Label  string
	Target string
	Actual string
	Passed bool
}

// Evaluation is the result of running the stage engine.
type Evaluation struct {
	Stage    model.Stage
	Ratios   Ratios
	Criteria []Criterion // criteria for the *current* stage

	// FIREProgress is portfolio / FIRE target, only meaningful in the
	// Independence stage (0 when no passive income goal is set).
	FIREProgress float64
}

// Evaluate determines the current stage. Stages gate strictly: a user
// with high-interest debt but no emergency fund is in Stability, not
// Debt Payoff, because the buffer comes first.
func Evaluate(profile model.Profile, budget model.Budget, debts []model.Debt, targets Targets) Evaluation {
	r := ComputeRatios(profile, budget, debts)

	ev := Evaluation{Ratios: r}

	survival := survivalCriteria(r)
	if !allPassed(survival) {
		ev.Stage = model.StageSurvival
		ev.Criteria = survival
		return ev
	}

	stability := stabilityCriteria(r, targets)
	if !allPassed(stability) {
		ev.Stage = model.StageStability
		ev.Criteria = stability
		return ev
	}

	payoff := payoffCriteria(debts, targets)
	if !allPassed(payoff) {
		ev.Stage = model.StageDebtPayoff
		ev.Criteria = payoff
		return ev
	}

	ev.Stage = model.StageIndependence
	ev.Criteria = independenceCriteria(profile, targets)
	if target := FIRETarget(profile.DesiredPassiveIncome, targets.SafeRatePercent); target > 0 {
		ev.FIREProgress = float64(profile.Portfolio) / float64(target)
	}
	return ev
}

func survivalCriteria(r Ratios) []Criterion {
	return []Criterion{{
		Label:  "Excess income",
		Target: "above $0.00",
		Actual: r.ExcessIncome.String(),
		Passed: r.ExcessIncome > 0,
	}}
}

func stabilityCriteria(r Ratios, targets Targets) []Criterion {
	needsActual := "n/a"
	if !math.IsInf(r.NeedsToExcess, 1) {
		needsActual = fmt.Sprintf("%.1f : 1", r.NeedsToExcess)
	}
	return []Criterion{
		{
			Label:  "Needs to excess ratio",
			Target: fmt.Sprintf("at most %.1f : 1", targets.NeedsToExcess),
			Actual: needsActual,
			Passed: r.NeedsToExcess <= targets.NeedsToExcess,
		},
		{
			Label:  "Emergency fund",
			Target: fmt.Sprintf("%.0f months of needs", targets.EmergencyFundMonths),
			Actual: fmt.Sprintf("%.1f months", r.EmergencyMonths),
			Passed: r.EmergencyMonths >= targets.EmergencyFundMonths,
		},
	}
}

func payoffCriteria(debts []model.Debt, targets Targets) []Criterion {
	highAPRBps := int(targets.HighAPRPercent * 100)
	var blocking int
	var blockingBalance model.Money
	for _, d := range debts {
		if d.Balance > 0 && d.APRBps > highAPRBps {
			blocking++
			blockingBalance += d.Balance
		}
	}
	actual := "none"
	if blocking > 0 {
		actual = fmt.Sprintf("%d debts, %s", blocking, blockingBalance)
	}
	return []Criterion{{
		Label:  fmt.Sprintf("Debt above %.0f%% APR", targets.HighAPRPercent),
		Target: "none remaining",
		Actual: actual,
		Passed: blocking == 0,
	}}
}

func independenceCriteria(profile model.Profile, targets Targets) []Criterion {
	target := FIRETarget(profile.DesiredPassiveIncome, targets.SafeRatePercent)
	if target <= 0 {
		return []Criterion{{
			Label:  "Passive income goal",
			Target: "set a monthly goal",
			Actual: "not set",
		}}
	}
	return []Criterion{{
		Label:  "Portfolio vs FIRE target",
		Target: target.String(),
		Actual: profile.Portfolio.String(),
		Passed: profile.Portfolio >= target,
	}}
}

func allPassed(criteria []Criterion) bool {
	for _, c := range criteria {
		if !c.Passed {
			return false
		}
	}
	return true
}
