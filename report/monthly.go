package report

import (
	"sort"
	"time"

	"financas/ledger"
)

// Report is the monthly report view: period totals, both per-category
// breakdowns, and the month's transactions in chronological order. Rendering
// (tables, charts, CSV download) belongs to the caller.
type Report struct {
	Transactions []ledger.Transaction
	ByExpense    []CategoryTotal
	ByIncome     []CategoryTotal
	Totals       Totals
	Year         int
	Month        time.Month
}

// Monthly builds the report for one year/month from the full snapshot.
func Monthly(transactions []ledger.Transaction, year int, month time.Month) Report {
	monthTxns := FilterByYearMonth(transactions, year, month)

	ordered := make([]ledger.Transaction, len(monthTxns))
	copy(ordered, monthTxns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	return Report{
		Year:         year,
		Month:        month,
		Totals:       Sum(monthTxns),
		ByExpense:    ByCategory(monthTxns, ledger.KindExpense),
		ByIncome:     ByCategory(monthTxns, ledger.KindIncome),
		Transactions: ordered,
	}
}
