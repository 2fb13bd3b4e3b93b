package model

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want Money
		ok   bool
	}{
		{"1234.56", 123456, true},
		{"$1,234.56", 123456, true},
		{"1200", 120000, true},
		{"0.5", 50, true},
		{".75", 75, true},
		{"-42.10", -4210, true},
		{"", 0, false},
		{"12.345", 0, false},
		{"abc", 0, false},
		{"--5", 0, false},
		{"-+5", 0, false},
		{"+5", 0, false},
		{"5.-5", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseMoney(%q) error: %v", tc.in, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseMoney(%q) succeeded with %v, want error", tc.in, got)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		in   Money
		want string
	}{
		{123456, "$1,234.56"},
		{100, "$1.00"},
		{5, "$0.05"},
		{-4210, "-$42.10"},
		{123456789, "$1,234,567.89"},
		{0, "$0.00"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Money(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBudgetTotals(t *testing.T) {
	var b Budget
	b.Upsert(BudgetItem{Name: "rent", Amount: 150000, Kind: KindNeed})
	b.Upsert(BudgetItem{Name: "groceries", Amount: 40000, Kind: KindNeed})
	b.Upsert(BudgetItem{Name: "dining", Amount: 20000, Kind: KindWant})
	b.Upsert(BudgetItem{Name: "index fund", Amount: 50000, Kind: KindSavings})

	if b.Needs() != 190000 {
		t.Errorf("Needs = %d, want 190000", b.Needs())
	}
	if b.Expenses() != 210000 {
		t.Errorf("Expenses = %d, want 210000", b.Expenses())
	}
	if b.Total() != 260000 {
		t.Errorf("Total = %d, want 260000", b.Total())
	}

	// Upsert replaces by name.
	b.Upsert(BudgetItem{Name: "rent", Amount: 160000, Kind: KindNeed})
	if b.Needs() != 200000 {
		t.Errorf("Needs after upsert = %d, want 200000", b.Needs())
	}
	if len(b.Items) != 4 {
		t.Errorf("len(Items) = %d, want 4", len(b.Items))
	}

	if !b.Remove("dining") {
		t.Error("Remove(dining) = false, want true")
	}
	if b.Remove("dining") {
		t.Error("second Remove(dining) = true, want false")
	}
}

func TestDebtMonthlyInterest(t *testing.T) {
	// 25% APR on $1000: 25 * 100000 / 1200 / 100 = $20.83.
	d := Debt{Balance: 100000, APRBps: 2500}
	if got := d.MonthlyInterest(); got != 2083 {
		t.Errorf("MonthlyInterest = %d, want 2083", got)
	}

	zero := Debt{Balance: 100000, APRBps: 0}
	if zero.MonthlyInterest() != 0 {
		t.Error("zero-APR debt accrued interest")
	}
}

func TestDebtSortOrders(t *testing.T) {
	debts := []Debt{
		{Name: "a", Balance: 500000, APRBps: 400},
		{Name: "b", Balance: 80000, APRBps: 2500},
		{Name: "c", Balance: 120000, APRBps: 1800},
	}

	av := SortAvalanche(debts)
	if av[0].Name != "b" || av[1].Name != "c" || av[2].Name != "a" {
		t.Errorf("avalanche order = [%s %s %s], want [b c a]", av[0].Name, av[1].Name, av[2].Name)
	}

	sn := SortSnowball(debts)
	if sn[0].Name != "b" || sn[1].Name != "c" || sn[2].Name != "a" {
		t.Errorf("snowball order = [%s %s %s], want [b c a]", sn[0].Name, sn[1].Name, sn[2].Name)
	}

	// Inputs untouched.
	if debts[0].Name != "a" {
		t.Error("sort mutated input slice")
	}
}
