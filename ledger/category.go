// Package ledger defines the domain types shared by the storage and report
// layers: categories, transactions, and the income/expense kind.
package ledger

import (
	"fmt"
	"strings"
)

// Kind indicates the direction of a monetary flow.
type Kind string

const (
	// KindIncome represents money coming in.
	KindIncome Kind = "income"
	// KindExpense represents money going out.
	KindExpense Kind = "expense"
)

// ParseKind maps a form label ("Income" or "Expense", case-insensitive) to a
// Kind. This is the boundary contract with the entry form, which presents
// capitalized labels while the store persists lowercase kinds.
func ParseKind(label string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	default:
		return "", fmt.Errorf("unknown kind label: %q", label)
	}
}

// DefaultColor is the display color assigned to categories without one.
const DefaultColor = "#808080"

// FallbackCategory is the catch-all category every transaction resolves to
// when its category name matches nothing. It is seeded on first startup and
// never removed, so the resolution in AddTransaction can rely on it.
const FallbackCategory = "Other"

// Category represents a bucket transactions are grouped under.
type Category struct {
	Name  string
	Kind  Kind
	Color string
	ID    int64
}

// DefaultCategories are seeded once, when the categories table is empty.
// Transactions only ever reference these nine; there is no API to create,
// update, or delete categories afterward.
var DefaultCategories = []Category{
	{Name: "Alimentação", Kind: KindExpense, Color: "#FF5733"},
	{Name: "Transporte", Kind: KindExpense, Color: "#33A8FF"},
	{Name: "Moradia", Kind: KindExpense, Color: "#33FF57"},
	{Name: "Lazer", Kind: KindExpense, Color: "#FF33A8"},
	{Name: "Saúde", Kind: KindExpense, Color: "#A833FF"},
	{Name: "Educação", Kind: KindExpense, Color: "#FFFF33"},
	{Name: "Salário", Kind: KindIncome, Color: "#33FFA8"},
	{Name: "Investimentos", Kind: KindIncome, Color: "#A8FF33"},
	{Name: FallbackCategory, Kind: KindExpense, Color: DefaultColor},
}
