package plan

import (
	"errors"
	"testing"
)

func TestFIRETarget(t *testing.T) {
	// $100/month at a 4% safe rate needs 1200 * 100 / 4 = $30,000.
	got := FIRETarget(dollars(100), 4)
	if got != dollars(30000) {
		t.Errorf("FIRETarget = %s, want %s", got, dollars(30000))
	}

	// Zero rate falls back to the default safe rate.
	if FIRETarget(dollars(100), 0) != dollars(30000) {
		t.Error("zero safe rate did not use default")
	}

	if FIRETarget(0, 4) != 0 {
		t.Error("zero goal should produce zero target")
	}
}

func TestProjectFIRE(t *testing.T) {
	proj, err := ProjectFIRE(FIREInput{
		PassiveIncome:     dollars(100),
		Portfolio:         dollars(10000),
		MonthlyDeposit:    dollars(100),
		GrowthRatePercent: 7,
		SafeRatePercent:   4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if proj.Target != dollars(30000) {
		t.Errorf("Target = %s, want %s", proj.Target, dollars(30000))
	}
	if proj.Years != len(proj.Balances)-1 {
		t.Errorf("Years = %d, want len(Balances)-1 = %d", proj.Years, len(proj.Balances)-1)
	}
	if proj.Balances[0] != dollars(10000) {
		t.Errorf("Balances[0] = %s, want starting portfolio", proj.Balances[0])
	}
	if last := proj.Balances[len(proj.Balances)-1]; last < proj.Target {
		t.Errorf("final balance %s below target %s", last, proj.Target)
	}

	// Balances strictly increase: growth plus deposits every year.
	for i := 1; i < len(proj.Balances); i++ {
		if proj.Balances[i] <= proj.Balances[i-1] {
			t.Fatalf("balance did not grow at year %d: %s -> %s",
				i, proj.Balances[i-1], proj.Balances[i])
		}
	}
}

func TestProjectFIRE_SafeRateDefaultsToGrowthRate(t *testing.T) {
	// Matches the prototype: omitted safe rate means safe rate = growth
	// rate, so a 7% growth run targets 1200 * 100 / 7.
	proj, err := ProjectFIRE(FIREInput{
		PassiveIncome:     dollars(100),
		Portfolio:         dollars(1000),
		MonthlyDeposit:    dollars(200),
		GrowthRatePercent: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := FIRETarget(dollars(100), 7)
	if proj.Target != want {
		t.Errorf("Target = %s, want %s", proj.Target, want)
	}
}

func TestProjectFIRE_AlreadyAtTarget(t *testing.T) {
	_, err := ProjectFIRE(FIREInput{
		PassiveIncome:   dollars(100),
		Portfolio:       dollars(50000),
		SafeRatePercent: 4,
	})
	if !errors.Is(err, ErrAlreadyAtTarget) {
		t.Fatalf("err = %v, want ErrAlreadyAtTarget", err)
	}
}

func TestProjectFIRE_NoGoal(t *testing.T) {
	_, err := ProjectFIRE(FIREInput{Portfolio: dollars(1000)})
	if err == nil {
		t.Fatal("expected error for missing passive income goal")
	}
}

func TestProjectFIRE_NeverConverges(t *testing.T) {
	_, err := ProjectFIRE(FIREInput{
		PassiveIncome:   dollars(100),
		Portfolio:       0,
		MonthlyDeposit:  0,
		SafeRatePercent: 4,
	})
	if !errors.Is(err, ErrNeverReachesTarget) {
		t.Fatalf("err = %v, want ErrNeverReachesTarget", err)
	}
}
