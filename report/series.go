package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financas/ledger"
)

// DailyPoint is one bar-chart row: both kinds summed for a single date.
type DailyPoint struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailySeries groups the snapshot by date, sums each kind, and returns one
// point per date in ascending order. Dates with only one kind get a zero for
// the other, so every date present in the input appears exactly once.
func DailySeries(transactions []ledger.Transaction) []DailyPoint {
	byDate := make(map[time.Time]*DailyPoint)
	var dates []time.Time

	for _, txn := range transactions {
		day := time.Date(txn.Date.Year(), txn.Date.Month(), txn.Date.Day(), 0, 0, 0, 0, time.UTC)
		point, ok := byDate[day]
		if !ok {
			point = &DailyPoint{Date: day}
			byDate[day] = point
			dates = append(dates, day)
		}
		switch txn.Kind {
		case ledger.KindIncome:
			point.Income = point.Income.Add(txn.Amount)
		case ledger.KindExpense:
			point.Expense = point.Expense.Add(txn.Amount)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	series := make([]DailyPoint, 0, len(dates))
	for _, day := range dates {
		series = append(series, *byDate[day])
	}
	return series
}
