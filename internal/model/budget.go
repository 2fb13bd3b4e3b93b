package model

import (
	"fmt"
	"sort"
	"strings"
)

// ItemKind classifies a budget item.
type ItemKind int

const (
	KindNeed ItemKind = iota
	KindWant
	KindSavings
)

// String returns the lowercase name used in storage and plan files.
func (k ItemKind) String() string {
	switch k {
	case KindNeed:
		return "need"
	case KindWant:
		return "want"
	case KindSavings:
		return "savings"
	default:
		return "unknown"
	}
}

// ParseItemKind parses "need", "want", or "savings" (case-insensitive).
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "need", "needs":
		return KindNeed, nil
	case "want", "wants":
		return KindWant, nil
	case "savings", "saving":
		return KindSavings, nil
	}
	return 0, fmt.Errorf("unknown budget kind %q (want need, want, or savings)", s)
}

// BudgetItem is one monthly budget category.
type BudgetItem struct {
	Name   string
	Amount Money
	Kind   ItemKind
}

// Budget is the set of monthly budget items. Item names are unique.
type Budget struct {
	Items []BudgetItem
}

// Upsert inserts an item or replaces the item with the same name.
func (b *Budget) Upsert(item BudgetItem) {
	for i := range b.Items {
		if b.Items[i].Name == item.Name {
			b.Items[i] = item
			return
		}
	}
	b.Items = append(b.Items, item)
}

// Remove deletes the named item, reporting whether it existed.
func (b *Budget) Remove(name string) bool {
	for i := range b.Items {
		if b.Items[i].Name == name {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return true
		}
	}
	return false
}

// TotalByKind sums item amounts for one kind.
func (b Budget) TotalByKind(kind ItemKind) Money {
	var total Money
	for _, item := range b.Items {
		if item.Kind == kind {
			total += item.Amount
		}
	}
	return total
}

// Needs returns total monthly necessary spending.
func (b Budget) Needs() Money { return b.TotalByKind(KindNeed) }

// Wants returns total monthly discretionary spending.
func (b Budget) Wants() Money { return b.TotalByKind(KindWant) }

// Savings returns total planned monthly saving.
func (b Budget) Savings() Money { return b.TotalByKind(KindSavings) }

// Expenses returns needs + wants, the spending that excess income is
// measured against.
func (b Budget) Expenses() Money { return b.Needs() + b.Wants() }

// Total sums every item regardless of kind.
func (b Budget) Total() Money {
	var total Money
	for _, item := range b.Items {
		total += item.Amount
	}
	return total
}

// Sorted returns items ordered by amount descending, name ascending on
// ties. Rendering code relies on this being stable.
func (b Budget) Sorted() []BudgetItem {
	items := make([]BudgetItem, len(b.Items))
	copy(items, b.Items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Amount != items[j].Amount {
			return items[i].Amount > items[j].Amount
		}
		return items[i].Name < items[j].Name
	})
	return items
}
