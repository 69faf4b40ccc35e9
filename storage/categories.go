package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"financas/ledger"
)

// ListCategories returns all categories ordered by name.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]ledger.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, kind, color
		FROM categories
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query categories: %w", ErrReadFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var categories []ledger.Category
	for rows.Next() {
		var cat ledger.Category
		var kind string
		if err := rows.Scan(&cat.ID, &cat.Name, &kind, &cat.Color); err != nil {
			return nil, fmt.Errorf("%w: scan category: %w", ErrReadFailed, err)
		}
		cat.Kind = ledger.Kind(kind)
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate categories: %w", ErrReadFailed, err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// resolveCategoryID maps a category name to its id. Unknown names resolve to
// the catch-all "Other" category rather than failing the write; "Other" is
// guaranteed to exist by the seed migration.
func (s *SQLiteStore) resolveCategoryID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("%w: query category %q: %w", ErrReadFailed, name, err)
	}

	slog.Debug("unknown category, falling back", "name", name, "fallback", ledger.FallbackCategory)

	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name = ?`, ledger.FallbackCategory).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: fallback category %q missing: %w", ErrReadFailed, ledger.FallbackCategory, err)
	}
	return id, nil
}
