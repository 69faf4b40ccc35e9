package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded income or expense. This is also
// the snapshot row shape returned by the store: Category carries the resolved
// category name from the join, not the raw name supplied at insert time.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Kind        Kind
	Amount      decimal.Decimal
	ID          int64
}
