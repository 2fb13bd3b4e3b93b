package plan

import (
	"errors"

	"github.com/theirongolddev/stageward/internal/model"
)

// Default annual yields, in percent. The safe rate is what the
// portfolio is assumed to return once you are living off it.
const (
	DefaultGrowthRatePercent = 7
	DefaultSafeRatePercent   = 4
)

// ErrAlreadyAtTarget means the portfolio already covers the passive
// income goal.
var ErrAlreadyAtTarget = errors.New("portfolio already at FIRE target")

// ErrNeverReachesTarget means the projection cannot converge (no
// deposits and no growth).
var ErrNeverReachesTarget = errors.New("projection never reaches FIRE target")

// FIREInput holds the projection inputs.
type FIREInput struct {
	PassiveIncome  model.Money // desired monthly passive income
	Portfolio      model.Money // starting balance
	MonthlyDeposit model.Money

	GrowthRatePercent float64 // annual yield while accumulating; default 7
	SafeRatePercent   float64 // annual yield while withdrawing; defaults to growth rate
}

// FIREProjection is the result of a FIRE projection.
type FIREProjection struct {
	Years    int
	Target   model.Money
	Balances []model.Money // running annual balance, element 0 = start
}

// FIRETarget is the portfolio needed for the passive income goal at
// the given safe rate: 1200 × income / rate. A zero rate falls back
// to the default safe rate.
func FIRETarget(passiveIncome model.Money, safeRatePercent float64) model.Money {
	if passiveIncome <= 0 {
		return 0
	}
	if safeRatePercent <= 0 {
		safeRatePercent = DefaultSafeRatePercent
	}
	return model.Money(1200*float64(passiveIncome)/safeRatePercent + 0.5)
}

// ProjectFIRE computes years until the portfolio sustains the passive
// income goal, with the running annual balance series.
func ProjectFIRE(in FIREInput) (FIREProjection, error) {
	rate := in.GrowthRatePercent
	if rate <= 0 {
		rate = DefaultGrowthRatePercent
	}
	safeRate := in.SafeRatePercent
	if safeRate <= 0 {
		safeRate = rate
	}

	target := FIRETarget(in.PassiveIncome, safeRate)
	if target <= 0 {
		return FIREProjection{}, errors.New("passive income goal not set")
	}
	if in.Portfolio >= target {
		return FIREProjection{}, ErrAlreadyAtTarget
	}
	if in.MonthlyDeposit <= 0 && (rate <= 0 || in.Portfolio <= 0) {
		return FIREProjection{}, ErrNeverReachesTarget
	}

	const maxYears = 200

	balance := in.Portfolio
	balances := []model.Money{}
	for balance < target {
		if len(balances) > maxYears {
			return FIREProjection{}, ErrNeverReachesTarget
		}
		balances = append(balances, balance)
		gain := model.Money(rate*float64(balance)/100 + 0.5)
		balance += gain + 12*in.MonthlyDeposit
	}
	balances = append(balances, balance)

	return FIREProjection{
		Years:    len(balances) - 1,
		Target:   target,
		Balances: balances,
	}, nil
}
