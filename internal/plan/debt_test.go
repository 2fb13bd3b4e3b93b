package plan

import (
	"errors"
	"testing"

	"github.com/theirongolddev/stageward/internal/model"
)

func TestPayoffOne_ZeroAPR(t *testing.T) {
	d := model.Debt{Name: "loan", Balance: dollars(1000), APRBps: 0, Payment: dollars(100)}

	schedule, err := PayoffOne(d, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule.Months != 10 {
		t.Errorf("Months = %d, want 10", schedule.Months)
	}
	if schedule.InterestPaid != 0 {
		t.Errorf("InterestPaid = %s, want $0.00", schedule.InterestPaid)
	}
	if got := len(schedule.Balances); got != 11 {
		t.Errorf("len(Balances) = %d, want 11", got)
	}
	if schedule.Balances[0] != dollars(1000) {
		t.Errorf("Balances[0] = %s, want %s", schedule.Balances[0], dollars(1000))
	}
	if last := schedule.Balances[len(schedule.Balances)-1]; last != 0 {
		t.Errorf("final balance = %s, want $0.00", last)
	}
}

func TestPayoffOne_ExtraPaymentShortens(t *testing.T) {
	d := model.Debt{Name: "card", Balance: dollars(1000), APRBps: 2500, Payment: dollars(50)}

	base, err := PayoffOne(d, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	faster, err := PayoffOne(d, dollars(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if faster.Months >= base.Months {
		t.Errorf("extra payment did not shorten payoff: %d vs %d months", faster.Months, base.Months)
	}
	if faster.InterestPaid >= base.InterestPaid {
		t.Errorf("extra payment did not reduce interest: %s vs %s", faster.InterestPaid, base.InterestPaid)
	}
}

func TestPayoffOne_InterestExceedsPayment(t *testing.T) {
	// 25% APR on $1000 accrues $20.83/month; a $20 payment never clears.
	d := model.Debt{Name: "card", Balance: dollars(1000), APRBps: 2500, Payment: dollars(20)}

	_, err := PayoffOne(d, 0)
	if !errors.Is(err, ErrInterestExceedsPayment) {
		t.Fatalf("err = %v, want ErrInterestExceedsPayment", err)
	}
}

func TestPayoffAll_CenturyCapIsDistinctError(t *testing.T) {
	// $1/month against $2,000 at zero APR passes the first-month
	// interest check but takes 2000 months, well past the cap.
	debts := []model.Debt{
		{Name: "glacier", Balance: dollars(2000), APRBps: 0, Payment: 100},
	}

	_, err := PayoffAll(debts, 0, Avalanche)
	if !errors.Is(err, ErrNeverClears) {
		t.Fatalf("err = %v, want ErrNeverClears", err)
	}
	if errors.Is(err, ErrInterestExceedsPayment) {
		t.Fatalf("err = %v, must not report an interest shortfall", err)
	}
}

func TestPayoffAll_Rollover(t *testing.T) {
	debts := []model.Debt{
		{Name: "small", Balance: dollars(100), APRBps: 0, Payment: dollars(50)},
		{Name: "large", Balance: dollars(500), APRBps: 0, Payment: dollars(50)},
	}

	schedule, err := PayoffAll(debts, 0, Snowball)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schedule.Order[0] != "small" || schedule.Order[1] != "large" {
		t.Fatalf("snowball order = %v, want [small large]", schedule.Order)
	}
	// $600 total at $100/month; after month 2 the small debt's payment
	// rolls into the large one, so total throughput stays $100/month.
	if schedule.Months != 6 {
		t.Errorf("Months = %d, want 6", schedule.Months)
	}
	if schedule.Balances[0] != dollars(600) {
		t.Errorf("Balances[0] = %s, want %s", schedule.Balances[0], dollars(600))
	}
}

func TestPayoffAll_OrderByStrategy(t *testing.T) {
	debts := []model.Debt{
		{Name: "big-cheap", Balance: dollars(5000), APRBps: 400, Payment: dollars(200)},
		{Name: "small-dear", Balance: dollars(800), APRBps: 2500, Payment: dollars(100)},
	}

	avalanche, err := PayoffAll(debts, 0, Avalanche)
	if err != nil {
		t.Fatalf("avalanche: %v", err)
	}
	if avalanche.Order[0] != "small-dear" {
		t.Errorf("avalanche pays %s first, want small-dear", avalanche.Order[0])
	}

	snowball, err := PayoffAll(debts, 0, Snowball)
	if err != nil {
		t.Fatalf("snowball: %v", err)
	}
	if snowball.Order[0] != "small-dear" {
		t.Errorf("snowball pays %s first, want small-dear", snowball.Order[0])
	}

	// Avalanche never pays more total interest than snowball.
	if avalanche.TotalInterest > snowball.TotalInterest {
		t.Errorf("avalanche interest %s > snowball interest %s",
			avalanche.TotalInterest, snowball.TotalInterest)
	}
}

func TestPayoffAll_Empty(t *testing.T) {
	schedule, err := PayoffAll(nil, 0, Avalanche)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule.Months != 0 {
		t.Errorf("Months = %d, want 0", schedule.Months)
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy(""); err != nil || s != Avalanche {
		t.Errorf("ParseStrategy(\"\") = %v, %v; want Avalanche", s, err)
	}
	if s, err := ParseStrategy("snowball"); err != nil || s != Snowball {
		t.Errorf("ParseStrategy(snowball) = %v, %v; want Snowball", s, err)
	}
	if _, err := ParseStrategy("hybrid"); err == nil {
		t.Error("ParseStrategy(hybrid) succeeded, want error")
	}
}
