// Package model defines domain types for stageward budgets, debts, and stages.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in cents. All domain arithmetic happens on cents;
// floats only appear at the formatting and simulation boundaries.
type Money int64

// ParseMoney parses user input like "1234.56", "$1,234.56", or "1200"
// into cents. At most two decimal places are accepted.
func ParseMoney(s string) (Money, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(cleaned, "-") {
		neg = true
		cleaned = cleaned[1:]
	}
	// Only digits and one decimal point may remain; ParseInt would
	// otherwise accept a second sign ("--5" must not parse as +$5).
	if strings.ContainsAny(cleaned, "+-") {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	whole := cleaned
	frac := ""
	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		whole, frac = cleaned[:i], cleaned[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	total := dollars*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}

// Dollars returns the amount as a float64 dollar value.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// String formats as "$1,234.56". Negative amounts render as "-$12.00".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(v/100), v%100)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
