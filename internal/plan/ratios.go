// Package plan computes the ratios, stage evaluation, and projections
// that the stages-of-personal-finance model is built on.
package plan

import (
	"math"

	"github.com/theirongolddev/stageward/internal/model"
)

// Ratios are the four numbers the stage engine looks at.
type Ratios struct {
	// ExcessIncome is income minus needs, wants, and debt minimum
	// payments. Savings contributions are funded *from* excess, so
	// they are not subtracted.
	ExcessIncome model.Money

	// NeedsToExcess is needs / excess. +Inf when excess is zero or
	// negative (the ratio is undefined without excess).
	NeedsToExcess float64

	// EmergencyMonths is how many months of needs the emergency fund
	// covers. An emergency budget drops wants, so the divisor is
	// needs, not total expenses.
	EmergencyMonths float64

	// DebtInterestBurden is total monthly debt interest as a fraction
	// of monthly income.
	DebtInterestBurden float64
}

// ComputeRatios derives the stage ratios from the current position.
func ComputeRatios(profile model.Profile, budget model.Budget, debts []model.Debt) Ratios {
	needs := budget.Needs()
	excess := profile.MonthlyIncome - budget.Expenses() - model.TotalMinimumPayments(debts)

	r := Ratios{ExcessIncome: excess}

	if excess > 0 {
		r.NeedsToExcess = float64(needs) / float64(excess)
	} else {
		r.NeedsToExcess = math.Inf(1)
	}

	if needs > 0 {
		r.EmergencyMonths = float64(profile.EmergencyFund) / float64(needs)
	} else if profile.EmergencyFund > 0 {
		r.EmergencyMonths = math.Inf(1)
	}

	if profile.MonthlyIncome > 0 {
		r.DebtInterestBurden = float64(model.TotalMonthlyInterest(debts)) / float64(profile.MonthlyIncome)
	}

	return r
}
