package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"financas/ledger"
)

// AddTransaction inserts a new transaction. The category is resolved by exact
// name; unknown names silently land in the "Other" category. Amount and
// description are stored as given; input validation belongs to the entry
// form, not the store.
func (s *SQLiteStore) AddTransaction(ctx context.Context, txn ledger.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	categoryID, err := s.resolveCategoryID(ctx, txn.Category)
	if err != nil {
		return fmt.Errorf("%w: resolve category: %w", ErrWriteFailed, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO transactions (date, description, amount, category_id, kind)
		VALUES (?, ?, ?, ?, ?)`,
		txn.Date.Format("2006-01-02"),
		txn.Description,
		txn.Amount.String(),
		categoryID,
		string(txn.Kind),
	)
	if err != nil {
		return fmt.Errorf("%w: insert transaction: %w", ErrWriteFailed, err)
	}

	slog.Info("transaction saved",
		"date", txn.Date.Format("2006-01-02"),
		"description", txn.Description,
		"amount", txn.Amount.String(),
		"kind", txn.Kind)
	return nil
}

// ListTransactions returns the full snapshot, joined with categories for the
// display name, most recent first (date descending, insertion order breaking
// ties). A read failure is swallowed into an empty snapshot: the dashboard
// treats "no transactions" and "read failed" the same way, so the error is
// logged here rather than surfaced. See DESIGN.md for the reasoning.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.date, t.description, t.amount, c.name, t.kind
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC, t.id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		slog.Warn("failed to query transactions, returning empty snapshot", "error", err)
		return []ledger.Transaction{}, nil
	}
	defer func() { _ = rows.Close() }()

	var transactions []ledger.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			slog.Warn("failed to scan transaction, returning empty snapshot", "error", scanErr)
			return []ledger.Transaction{}, nil
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		slog.Warn("failed to iterate transactions, returning empty snapshot", "error", err)
		return []ledger.Transaction{}, nil
	}

	if transactions == nil {
		transactions = []ledger.Transaction{}
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

func scanTransaction(rows *sql.Rows) (ledger.Transaction, error) {
	var (
		txn      ledger.Transaction
		date     time.Time
		amount   string
		category *string
		kind     string
	)

	if err := rows.Scan(&txn.ID, &date, &txn.Description, &amount, &category, &kind); err != nil {
		return ledger.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	// Calendar date only, no time component.
	txn.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var err error
	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	// LEFT JOIN: a dangling category_id yields NULL for the name.
	if category != nil {
		txn.Category = *category
	}
	txn.Kind = ledger.Kind(kind)
	return txn, nil
}
