package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/stageward/internal/model"
)

func TestFormatMoneyCompact(t *testing.T) {
	cases := []struct {
		in   model.Money
		want string
	}{
		{123456, "$1.2K"},
		{250000000, "$2.5M"},
		{15000, "$150"},
		{999, "$9.99"},
		{0, "$0.00"},
	}
	for _, tc := range cases {
		if got := FormatMoneyCompact(tc.in); got != tc.want {
			t.Errorf("FormatMoneyCompact(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(1.75); got != "1.8 : 1" {
		t.Errorf("FormatRatio(1.75) = %q, want \"1.8 : 1\"", got)
	}
	if got := FormatRatio(math.Inf(1)); got != "n/a" {
		t.Errorf("FormatRatio(+Inf) = %q, want n/a", got)
	}
}

func TestFormatMonths(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{8, "8m"},
		{12, "1y 0m"},
		{27, "2y 3m"},
	}
	for _, tc := range cases {
		if got := FormatMonths(tc.in); got != tc.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderTableShape(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Budget",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"rent", "$1,500.00"},
			{"---"},
			{"TOTAL", "$1,500.00"},
		},
	})

	if !strings.Contains(out, "Budget") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "rent") || !strings.Contains(out, "$1,500.00") {
		t.Error("missing row content")
	}
	// One header separator plus the explicit "---" separator.
	if got := strings.Count(out, "├"); got != 2 {
		t.Errorf("separator count = %d, want 2", got)
	}
}

func TestRenderDistribution(t *testing.T) {
	items := []model.BudgetItem{
		{Name: "rent", Amount: 150000, Kind: model.KindNeed},
		{Name: "dining", Amount: 50000, Kind: model.KindWant},
	}

	out := RenderDistribution(items, 40, false)
	if !strings.Contains(out, "rent") || !strings.Contains(out, "dining") {
		t.Error("legend missing item names")
	}
	if !strings.Contains(out, "75.0%") || !strings.Contains(out, "25.0%") {
		t.Error("legend missing shares")
	}

	if RenderDistribution(nil, 40, false) != "" {
		t.Error("empty distribution should render nothing")
	}
}

func TestRenderSparklineBounds(t *testing.T) {
	out := RenderSparkline([]float64{0, 5, 10})
	runes := []rune(out)
	if len(runes) != 3 {
		t.Fatalf("len = %d, want 3", len(runes))
	}
	if runes[2] != '█' {
		t.Errorf("peak rune = %q, want full block", runes[2])
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty input should render nothing")
	}
}
