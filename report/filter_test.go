package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financas/ledger"
)

func txnOn(date time.Time, description string) ledger.Transaction {
	return ledger.Transaction{
		Date:        date,
		Description: description,
		Amount:      decimal.NewFromInt(1),
		Category:    "Lazer",
		Kind:        ledger.KindExpense,
	}
}

func TestFilterByDateRange(t *testing.T) {
	jan := func(day int) time.Time { return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC) }
	snapshot := []ledger.Transaction{
		txnOn(jan(1), "start"),
		txnOn(jan(15), "middle"),
		txnOn(jan(31), "end"),
		txnOn(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "after"),
	}

	t.Run("both bounds inclusive", func(t *testing.T) {
		filtered := FilterByDateRange(snapshot, jan(1), jan(31))
		require.Len(t, filtered, 3)
		assert.Equal(t, "start", filtered[0].Description)
		assert.Equal(t, "end", filtered[2].Description)
	})

	t.Run("empty range", func(t *testing.T) {
		filtered := FilterByDateRange(snapshot, jan(2), jan(14))
		assert.Empty(t, filtered)
	})

	t.Run("ignores time-of-day on bounds", func(t *testing.T) {
		lateBound := time.Date(2024, time.January, 15, 23, 59, 0, 0, time.UTC)
		filtered := FilterByDateRange(snapshot, lateBound, lateBound)
		require.Len(t, filtered, 1)
		assert.Equal(t, "middle", filtered[0].Description)
	})
}

func TestFilterByYearMonth(t *testing.T) {
	snapshot := []ledger.Transaction{
		txnOn(time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC), "old"),
		txnOn(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), "this march"),
		txnOn(time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC), "april"),
	}

	filtered := FilterByYearMonth(snapshot, 2024, time.March)
	require.Len(t, filtered, 1)
	assert.Equal(t, "this march", filtered[0].Description)
}

func TestFilterByKind(t *testing.T) {
	snapshot := []ledger.Transaction{
		{Date: time.Now(), Description: "in", Amount: decimal.NewFromInt(1), Kind: ledger.KindIncome},
		{Date: time.Now(), Description: "out", Amount: decimal.NewFromInt(1), Kind: ledger.KindExpense},
	}

	income := FilterByKind(snapshot, ledger.KindIncome)
	require.Len(t, income, 1)
	assert.Equal(t, "in", income[0].Description)
}

func TestDistinctYears(t *testing.T) {
	snapshot := []ledger.Transaction{
		txnOn(time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC), "a"),
		txnOn(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), "b"),
		txnOn(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), "c"),
		txnOn(time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), "d"),
	}

	assert.Equal(t, []int{2024, 2023, 2022}, DistinctYears(snapshot))
}

func TestDistinctMonths(t *testing.T) {
	snapshot := []ledger.Transaction{
		txnOn(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), "a"),
		txnOn(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "b"),
		txnOn(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), "c"),
		txnOn(time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), "other year"),
	}

	assert.Equal(t, []time.Month{time.February, time.November}, DistinctMonths(snapshot, 2024))
}

func TestLatest(t *testing.T) {
	snapshot := []ledger.Transaction{
		txnOn(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), "newest"),
		txnOn(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), "middle"),
		txnOn(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "oldest"),
	}

	t.Run("takes the head of the snapshot", func(t *testing.T) {
		latest := Latest(snapshot, 2)
		require.Len(t, latest, 2)
		assert.Equal(t, "newest", latest[0].Description)
	})

	t.Run("n larger than snapshot", func(t *testing.T) {
		assert.Len(t, Latest(snapshot, 10), 3)
	})

	t.Run("negative n", func(t *testing.T) {
		assert.Empty(t, Latest(snapshot, -1))
	})
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		wantEnd int
	}{
		{name: "thirty-one days", year: 2024, month: time.March, wantEnd: 31},
		{name: "leap february", year: 2024, month: time.February, wantEnd: 29},
		{name: "plain february", year: 2023, month: time.February, wantEnd: 28},
		{name: "december wraps the year", year: 2024, month: time.December, wantEnd: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			assert.Equal(t, time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(tt.year, tt.month, tt.wantEnd, 0, 0, 0, 0, time.UTC), end)
		})
	}
}
