package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/auditlog"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type auditLogTableModel struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Action    string    `db:"action"`
	ActionID  *int64    `db:"action_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m auditLogTableModel) toDomain() auditlog.Entry {
	return auditlog.Entry{
		ID:        m.ID,
		UserID:    m.UserID,
		Action:    m.Action,
		ActionID:  m.ActionID,
		CreatedAt: m.CreatedAt,
	}
}

type AuditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Append(ctx context.Context, e *auditlog.Entry) error {
	query, args, err := qb.InsertInto("admin_logs").
		Columns("user_id", "action", "action_id").
		Values(e.UserID, e.Action, e.ActionID).
		Returning("id", "created_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build append admin log query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("append admin log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]auditlog.Entry, error) {
	builder := qb.Select("*").From("admin_logs").OrderBy("id DESC")
	if limit > 0 {
		builder.Limit(limit)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list admin logs query: %w", err)
	}

	var rows []auditLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list admin logs: %w", err)
	}

	out := make([]auditlog.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
