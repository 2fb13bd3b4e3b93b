package model

import "sort"

// Debt is one outstanding balance with a fixed APR and a planned
// monthly payment. APR is stored in basis points so 19.99% is 1999.
type Debt struct {
	Name    string
	Balance Money
	APRBps  int
	Payment Money
}

// APRPercent returns the APR as a percentage, e.g. 19.99.
func (d Debt) APRPercent() float64 {
	return float64(d.APRBps) / 100
}

// MonthlyInterest returns one month of interest on the current balance:
// APR × balance / 1200, rounded to the nearest cent.
func (d Debt) MonthlyInterest() Money {
	interest := float64(d.APRBps) / 100 * float64(d.Balance) / 1200
	return Money(interest + 0.5)
}

// TotalDebtBalance sums the balances of all debts.
func TotalDebtBalance(debts []Debt) Money {
	var total Money
	for _, d := range debts {
		total += d.Balance
	}
	return total
}

// TotalMonthlyInterest sums one month of interest across all debts.
func TotalMonthlyInterest(debts []Debt) Money {
	var total Money
	for _, d := range debts {
		total += d.MonthlyInterest()
	}
	return total
}

// TotalMinimumPayments sums the planned monthly payments.
func TotalMinimumPayments(debts []Debt) Money {
	var total Money
	for _, d := range debts {
		total += d.Payment
	}
	return total
}

// SortAvalanche orders debts highest APR first (ties: larger balance
// first) and returns a new slice.
func SortAvalanche(debts []Debt) []Debt {
	out := make([]Debt, len(debts))
	copy(out, debts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].APRBps != out[j].APRBps {
			return out[i].APRBps > out[j].APRBps
		}
		return out[i].Balance > out[j].Balance
	})
	return out
}

// SortSnowball orders debts smallest balance first (ties: higher APR
// first) and returns a new slice.
func SortSnowball(debts []Debt) []Debt {
	out := make([]Debt, len(debts))
	copy(out, debts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Balance != out[j].Balance {
			return out[i].Balance < out[j].Balance
		}
		return out[i].APRBps > out[j].APRBps
	})
	return out
}
