package report

import (
	"sort"
	"time"

	"financas/ledger"
)

// FilterByDateRange keeps transactions with start <= date <= end. Both bounds
// are inclusive; only the calendar date of each bound is considered.
func FilterByDateRange(transactions []ledger.Transaction, start, end time.Time) []ledger.Transaction {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var filtered []ledger.Transaction
	for _, txn := range transactions {
		day := truncateToDay(txn.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

// FilterByYearMonth keeps transactions falling in the given year and month.
func FilterByYearMonth(transactions []ledger.Transaction, year int, month time.Month) []ledger.Transaction {
	var filtered []ledger.Transaction
	for _, txn := range transactions {
		if txn.Date.Year() == year && txn.Date.Month() == month {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// FilterByKind keeps transactions of the given kind. It backs the report
// page's "all / income only / expenses only" selector.
func FilterByKind(transactions []ledger.Transaction, kind ledger.Kind) []ledger.Transaction {
	var filtered []ledger.Transaction
	for _, txn := range transactions {
		if txn.Kind == kind {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// DistinctYears returns the years present in the snapshot, newest first,
// matching the order of the report page's year selector.
func DistinctYears(transactions []ledger.Transaction) []int {
	seen := make(map[int]bool)
	var years []int
	for _, txn := range transactions {
		if year := txn.Date.Year(); !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// DistinctMonths returns the months with transactions in the given year,
// ascending.
func DistinctMonths(transactions []ledger.Transaction, year int) []time.Month {
	seen := make(map[time.Month]bool)
	var months []time.Month
	for _, txn := range transactions {
		if txn.Date.Year() != year {
			continue
		}
		if month := txn.Date.Month(); !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// Latest returns the first n transactions of the snapshot. The store already
// orders snapshots most recent first, so this is the dashboard's "last N
// transactions" table.
func Latest(transactions []ledger.Transaction, n int) []ledger.Transaction {
	if n < 0 {
		n = 0
	}
	if n > len(transactions) {
		n = len(transactions)
	}
	return transactions[:n]
}

// MonthRange returns the first and last day of a month, the default bounds of
// the dashboard date filter.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	end = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
