package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/nkoroi/county-league/internal/domain/storage"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func uniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqUniqueViolation {
		return false
	}
	return constraint == "" || strings.Contains(pqErr.Constraint, constraint)
}

func foreignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// markDeleted and markRestored flip the soft-delete flags shared by every
// table that carries them.
func markDeleted(ctx context.Context, db sqlx.ExecerContext, table string, id int64) error {
	return setDeletedFlags(ctx, db, table, id, true)
}

func markRestored(ctx context.Context, db sqlx.ExecerContext, table string, id int64) error {
	return setDeletedFlags(ctx, db, table, id, false)
}

func setDeletedFlags(ctx context.Context, db sqlx.ExecerContext, table string, id int64, deleted bool) error {
	query := fmt.Sprintf(
		"UPDATE %s SET is_deleted = $1, is_active = $2, updated_at = NOW() WHERE id = $3",
		table,
	)
	result, err := db.ExecContext(ctx, query, deleted, !deleted, id)
	if err != nil {
		return fmt.Errorf("update %s delete flags: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update %s delete flags: %w", table, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// deleteRow removes a row outright. inUse is returned when a foreign key
// still points at the row.
func deleteRow(ctx context.Context, db sqlx.ExecerContext, table string, id int64, inUse error) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		if foreignKeyViolation(err) && inUse != nil {
			return inUse
		}
		return fmt.Errorf("delete %s row: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete %s row: %w", table, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
