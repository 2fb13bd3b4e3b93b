package planfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/stageward/internal/model"
)

const samplePlan = `profile:
  monthly_income: "5200.00"
  emergency_fund: "9000.00"
  portfolio: "15000.00"
  monthly_deposit: "500.00"
  desired_passive_income: "3000.00"
budget:
  - name: rent
    amount: "1500.00"
    kind: need
  - name: dining
    amount: "250.00"
    kind: want
debts:
  - name: card
    balance: "4200.00"
    apr: 21.99
    payment: "150.00"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	require.Equal(t, model.Money(520000), f.Profile.MonthlyIncome)
	require.Equal(t, model.Money(300000), f.Profile.DesiredPassiveIncome)

	require.Len(t, f.Budget.Items, 2)
	require.Equal(t, model.Money(150000), f.Budget.Needs())
	require.Equal(t, model.Money(25000), f.Budget.Wants())

	require.Len(t, f.Debts, 1)
	require.Equal(t, 2199, f.Debts[0].APRBps)
	require.Equal(t, model.Money(420000), f.Debts[0].Balance)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bad yaml", "budget: ["},
		{"missing name", "budget:\n  - amount: \"10.00\"\n    kind: need"},
		{"bad kind", "budget:\n  - name: x\n    amount: \"10.00\"\n    kind: luxury"},
		{"negative amount", "budget:\n  - name: x\n    amount: \"-10.00\"\n    kind: need"},
		{"duplicate item", "budget:\n  - name: x\n    amount: \"10.00\"\n    kind: need\n  - name: x\n    amount: \"20.00\"\n    kind: want"},
		{"apr out of range", "debts:\n  - name: d\n    balance: \"10.00\"\n    apr: 900\n    payment: \"5.00\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			require.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, f, again)
}

func TestWriteLoadFile(t *testing.T) {
	f, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, WriteFile(path, f))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, f, loaded)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
