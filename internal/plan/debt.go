package plan

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/stageward/internal/model"
)

// ErrInterestExceedsPayment means the payment cannot outrun the
// interest, so the balance never clears.
var ErrInterestExceedsPayment = errors.New("interest meets or exceeds payment")

// ErrNeverClears means the combined schedule passed the first-month
// interest check but still failed to finish within a century, which
// can happen when a back-of-the-queue debt outgrows the pool.
var ErrNeverClears = errors.New("payoff does not finish within 100 years")

// Strategy picks the payoff ordering when working multiple debts.
type Strategy int

const (
	// Avalanche pays highest-APR debt first; cheapest in total interest.
	Avalanche Strategy = iota
	// Snowball pays smallest balance first; fastest first win.
	Snowball
)

func (s Strategy) String() string {
	if s == Snowball {
		return "snowball"
	}
	return "avalanche"
}

// ParseStrategy parses "avalanche" or "snowball".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "avalanche", "":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (want avalanche or snowball)", s)
}

// PayoffSchedule is the payoff projection for a single debt.
type PayoffSchedule struct {
	Months       int
	InterestPaid model.Money
	Balances     []model.Money // running monthly balance, final element 0
}

// PayoffOne projects paying a single debt with its planned payment plus
// extra. Interest accrues monthly at APR × balance / 1200 and is
// recomputed on each new balance.
func PayoffOne(d model.Debt, extra model.Money) (PayoffSchedule, error) {
	payment := d.Payment + extra
	balance := d.Balance

	interest := d.MonthlyInterest()
	if payment <= interest {
		return PayoffSchedule{}, fmt.Errorf("%s: %w (%s interest vs %s payment)",
			d.Name, ErrInterestExceedsPayment, interest, payment)
	}

	var schedule PayoffSchedule
	for balance > 0 {
		schedule.Balances = append(schedule.Balances, balance)
		schedule.InterestPaid += interest
		balance = balance + interest - payment
		interest = model.Money(float64(d.APRBps)/100*float64(balance)/1200 + 0.5)
	}
	schedule.Balances = append(schedule.Balances, 0)
	schedule.Months = len(schedule.Balances) - 1
	return schedule, nil
}

// StrategySchedule is a combined payoff projection across all debts,
// rolling each cleared debt's payment into the next debt in order.
type StrategySchedule struct {
	Strategy      Strategy
	Order         []string // payoff order by debt name
	Months        int
	TotalInterest model.Money
	Balances      []model.Money // running total balance, final element 0
}

// PayoffAll projects paying every debt under the given strategy. Extra
// and freed-up payments always go to the frontmost unpaid debt.
func PayoffAll(debts []model.Debt, extra model.Money, strategy Strategy) (StrategySchedule, error) {
	if len(debts) == 0 {
		return StrategySchedule{Strategy: strategy, Balances: []model.Money{0}}, nil
	}

	var ordered []model.Debt
	if strategy == Snowball {
		ordered = model.SortSnowball(debts)
	} else {
		ordered = model.SortAvalanche(debts)
	}

	schedule := StrategySchedule{Strategy: strategy}
	for _, d := range ordered {
		schedule.Order = append(schedule.Order, d.Name)
	}

	totalPayment := model.TotalMinimumPayments(debts) + extra
	if totalPayment <= model.TotalMonthlyInterest(debts) {
		return StrategySchedule{}, fmt.Errorf("combined: %w", ErrInterestExceedsPayment)
	}

	balances := make([]model.Money, len(ordered))
	for i, d := range ordered {
		balances[i] = d.Balance
	}

	// Bounded: the guard above guarantees progress, but a bug here
	// would otherwise spin forever.
	const maxMonths = 1200

	remaining := func() model.Money {
		var total model.Money
		for _, b := range balances {
			total += b
		}
		return total
	}

	for total := remaining(); total > 0; total = remaining() {
		if len(schedule.Balances) > maxMonths {
			return StrategySchedule{}, fmt.Errorf("combined: %w", ErrNeverClears)
		}
		schedule.Balances = append(schedule.Balances, total)

		// Accrue interest.
		for i, d := range ordered {
			if balances[i] <= 0 {
				continue
			}
			interest := model.Money(float64(d.APRBps)/100*float64(balances[i])/1200 + 0.5)
			balances[i] += interest
			schedule.TotalInterest += interest
		}

		// Minimum payments, collecting freed payments from cleared debts.
		pool := extra
		for i, d := range ordered {
			if balances[i] <= 0 {
				pool += d.Payment
				continue
			}
			pay := d.Payment
			if pay > balances[i] {
				pool += pay - balances[i]
				pay = balances[i]
			}
			balances[i] -= pay
		}

		// Pool goes to the frontmost unpaid debt, overflowing forward.
		for i := range ordered {
			if pool <= 0 {
				break
			}
			if balances[i] <= 0 {
				continue
			}
			pay := pool
			if pay > balances[i] {
				pay = balances[i]
			}
			balances[i] -= pay
			pool -= pay
		}
	}

	schedule.Balances = append(schedule.Balances, 0)
	schedule.Months = len(schedule.Balances) - 1
	return schedule, nil
}
