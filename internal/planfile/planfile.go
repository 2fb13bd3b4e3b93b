// Package planfile reads and writes the YAML plan file format used by
// `stageward export` and `stageward import`.
package planfile

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/stageward/internal/model"
)

// File is a full exportable plan: profile, budget, and debts.
type File struct {
	Profile model.Profile
	Budget  model.Budget
	Debts   []model.Debt
}

type yamlFile struct {
	Profile yamlProfile `yaml:"profile"`
	Budget  []yamlItem  `yaml:"budget"`
	Debts   []yamlDebt  `yaml:"debts"`
}

type yamlProfile struct {
	MonthlyIncome        string `yaml:"monthly_income,omitempty"`
	EmergencyFund        string `yaml:"emergency_fund,omitempty"`
	Portfolio            string `yaml:"portfolio,omitempty"`
	MonthlyDeposit       string `yaml:"monthly_deposit,omitempty"`
	DesiredPassiveIncome string `yaml:"desired_passive_income,omitempty"`
}

type yamlItem struct {
	Name   string `yaml:"name"`
	Amount string `yaml:"amount"`
	Kind   string `yaml:"kind"`
}

type yamlDebt struct {
	Name       string  `yaml:"name"`
	Balance    string  `yaml:"balance"`
	APRPercent float64 `yaml:"apr"`
	Payment    string  `yaml:"payment"`
}

// Parse decodes and validates a plan file payload.
func Parse(data []byte) (File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return File{}, fmt.Errorf("planfile: payload is empty")
	}

	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return File{}, fmt.Errorf("planfile: decode: %w", err)
	}

	var f File
	var err error

	if f.Profile.MonthlyIncome, err = parseAmount(raw.Profile.MonthlyIncome); err != nil {
		return File{}, fmt.Errorf("planfile: profile.monthly_income: %w", err)
	}
	if f.Profile.EmergencyFund, err = parseAmount(raw.Profile.EmergencyFund); err != nil {
		return File{}, fmt.Errorf("planfile: profile.emergency_fund: %w", err)
	}
	if f.Profile.Portfolio, err = parseAmount(raw.Profile.Portfolio); err != nil {
		return File{}, fmt.Errorf("planfile: profile.portfolio: %w", err)
	}
	if f.Profile.MonthlyDeposit, err = parseAmount(raw.Profile.MonthlyDeposit); err != nil {
		return File{}, fmt.Errorf("planfile: profile.monthly_deposit: %w", err)
	}
	if f.Profile.DesiredPassiveIncome, err = parseAmount(raw.Profile.DesiredPassiveIncome); err != nil {
		return File{}, fmt.Errorf("planfile: profile.desired_passive_income: %w", err)
	}

	seen := make(map[string]bool)
	for i, item := range raw.Budget {
		if item.Name == "" {
			return File{}, fmt.Errorf("planfile: budget[%d]: name is required", i)
		}
		if seen[item.Name] {
			return File{}, fmt.Errorf("planfile: budget: duplicate item %q", item.Name)
		}
		seen[item.Name] = true

		amount, err := parseAmount(item.Amount)
		if err != nil {
			return File{}, fmt.Errorf("planfile: budget %q: %w", item.Name, err)
		}
		if amount < 0 {
			return File{}, fmt.Errorf("planfile: budget %q: amount is negative", item.Name)
		}
		kind, err := model.ParseItemKind(item.Kind)
		if err != nil {
			return File{}, fmt.Errorf("planfile: budget %q: %w", item.Name, err)
		}
		f.Budget.Items = append(f.Budget.Items, model.BudgetItem{
			Name: item.Name, Amount: amount, Kind: kind,
		})
	}

	seenDebt := make(map[string]bool)
	for i, d := range raw.Debts {
		if d.Name == "" {
			return File{}, fmt.Errorf("planfile: debts[%d]: name is required", i)
		}
		if seenDebt[d.Name] {
			return File{}, fmt.Errorf("planfile: debts: duplicate debt %q", d.Name)
		}
		seenDebt[d.Name] = true

		balance, err := parseAmount(d.Balance)
		if err != nil {
			return File{}, fmt.Errorf("planfile: debt %q: %w", d.Name, err)
		}
		payment, err := parseAmount(d.Payment)
		if err != nil {
			return File{}, fmt.Errorf("planfile: debt %q: %w", d.Name, err)
		}
		if d.APRPercent < 0 || d.APRPercent > 400 {
			return File{}, fmt.Errorf("planfile: debt %q: apr %.2f out of range", d.Name, d.APRPercent)
		}
		f.Debts = append(f.Debts, model.Debt{
			Name:    d.Name,
			Balance: balance,
			APRBps:  int(math.Round(d.APRPercent * 100)),
			Payment: payment,
		})
	}

	return f, nil
}

// LoadFile reads and parses a plan file from disk.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("planfile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("planfile: %s: %w", path, err)
	}
	return f, nil
}

// Marshal encodes a plan as YAML. Budget items and debts are written
// name-sorted so exports diff cleanly.
func Marshal(f File) ([]byte, error) {
	raw := yamlFile{
		Profile: yamlProfile{
			MonthlyIncome:        encodeAmount(f.Profile.MonthlyIncome),
			EmergencyFund:        encodeAmount(f.Profile.EmergencyFund),
			Portfolio:            encodeAmount(f.Profile.Portfolio),
			MonthlyDeposit:       encodeAmount(f.Profile.MonthlyDeposit),
			DesiredPassiveIncome: encodeAmount(f.Profile.DesiredPassiveIncome),
		},
	}

	items := make([]model.BudgetItem, len(f.Budget.Items))
	copy(items, f.Budget.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	for _, item := range items {
		raw.Budget = append(raw.Budget, yamlItem{
			Name:   item.Name,
			Amount: encodeAmount(item.Amount),
			Kind:   item.Kind.String(),
		})
	}

	debts := make([]model.Debt, len(f.Debts))
	copy(debts, f.Debts)
	sort.Slice(debts, func(i, j int) bool { return debts[i].Name < debts[j].Name })
	for _, d := range debts {
		raw.Debts = append(raw.Debts, yamlDebt{
			Name:       d.Name,
			Balance:    encodeAmount(d.Balance),
			APRPercent: d.APRPercent(),
			Payment:    encodeAmount(d.Payment),
		})
	}

	return yaml.Marshal(raw)
}

// WriteFile marshals and writes a plan file.
func WriteFile(path string, f File) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("planfile: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("planfile: write %s: %w", path, err)
	}
	return nil
}

// parseAmount treats an empty field as zero; Parse money otherwise.
func parseAmount(s string) (model.Money, error) {
	if s == "" {
		return 0, nil
	}
	return model.ParseMoney(s)
}

// encodeAmount writes cents as "1234.56" without currency decoration.
func encodeAmount(m model.Money) string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
