package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"teamboard/internal/core/domain"
)

// now is second-precision UTC so MySQL DATETIME and SQLite round-trip the
// same value.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func paginate(query string, page *domain.Page) (string, []any) {
	if page == nil {
		return query, nil
	}
	return query + " LIMIT ? OFFSET ?", []any{page.Limit, page.Offset()}
}

// table and column are always package constants, never request input.
func count(ctx context.Context, db *sqlx.DB, table string) (int, error) {
	var total int
	if err := db.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}

func exists(ctx context.Context, db *sqlx.DB, table, column, value string, excludeID uint64) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE LOWER(%s) = LOWER(?) AND id <> ?", table, column)

	var total int
	if err := db.GetContext(ctx, &total, query, value, excludeID); err != nil {
		return false, fmt.Errorf("check %s.%s: %w", table, column, err)
	}
	return total > 0, nil
}

func deleteByID(ctx context.Context, db *sqlx.DB, table string, id uint64, notFound error) error {
	result, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
