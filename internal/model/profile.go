package model

import "time"

// Profile holds the numbers that do not live in the budget: income and
// the savings/investment side of the picture.
type Profile struct {
	MonthlyIncome Money
	EmergencyFund Money

	// Investment inputs for the FIRE projection.
	Portfolio            Money
	MonthlyDeposit       Money
	DesiredPassiveIncome Money
}

// Snapshot is a dated capture of the whole financial position, recorded
// so the user can see stage progress over time. Stage is the stage at
// capture time, not an authority; the engine always recomputes.
type Snapshot struct {
	TakenAt time.Time

	MonthlyIncome Money
	Needs         Money
	Wants         Money
	Savings       Money
	EmergencyFund Money

	DebtBalance  Money
	DebtInterest Money

	Stage Stage
}
