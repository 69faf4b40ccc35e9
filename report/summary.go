// Package report derives summary views from a transaction snapshot. Every
// function is pure: it takes the snapshot (or a filtered slice of it) and
// returns a new structure, never touching the store.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"financas/ledger"
)

// Totals holds the period sums the dashboard metrics are built from.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Sum computes income, expense, and balance totals over the snapshot.
// An empty snapshot yields all zeros.
func Sum(transactions []ledger.Transaction) Totals {
	var income, expense decimal.Decimal
	for _, txn := range transactions {
		switch txn.Kind {
		case ledger.KindIncome:
			income = income.Add(txn.Amount)
		case ledger.KindExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ByCategory filters the snapshot to the given kind, sums amounts per
// category, and returns the groups sorted by total descending. Ties keep the
// order categories were first encountered in the snapshot.
func ByCategory(transactions []ledger.Transaction, kind ledger.Kind) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, txn := range transactions {
		if txn.Kind != kind {
			continue
		}
		if _, seen := sums[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		sums[txn.Category] = sums[txn.Category].Add(txn.Amount)
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, CategoryTotal{Category: name, Total: sums[name]})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}

// PercentOfIncome expresses the balance as a percentage of income, the delta
// shown next to the balance metric. Zero income yields zero rather than a
// division error.
func PercentOfIncome(balance, income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Div(income).Mul(decimal.NewFromInt(100))
}
