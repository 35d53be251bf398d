package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/nkoroi/county-league/internal/domain/auditlog"
	"github.com/nkoroi/county-league/internal/platform/logging"
)

const auditWriteTimeout = 5 * time.Second

// AuditLogger records privileged actions off the request path. Writes are
// handed to a small worker pool; a failed write is logged, never surfaced
// to the caller.
type AuditLogger struct {
	repo   auditlog.Repository
	pool   *ants.Pool
	logger *logging.Logger

	pending sync.WaitGroup
}

func NewAuditLogger(repo auditlog.Repository, workers int, logger *logging.Logger) (*AuditLogger, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create audit worker pool: %w", err)
	}

	return &AuditLogger{
		repo:   repo,
		pool:   pool,
		logger: logger,
	}, nil
}

// Record enqueues one entry. The request context is not carried into the
// write; an admin action is recorded even when the caller disconnects.
func (a *AuditLogger) Record(userID int64, action string, actionID *int64) {
	if a == nil || a.repo == nil {
		return
	}

	entry := auditlog.Entry{UserID: userID, Action: action, ActionID: actionID}
	a.pending.Add(1)
	err := a.pool.Submit(func() {
		defer a.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		if err := a.repo.Append(ctx, &entry); err != nil {
			a.logger.ErrorContext(ctx, "append admin log",
				"error", err,
				"action", entry.Action,
				"user_id", entry.UserID,
			)
		}
	})
	if err != nil {
		a.pending.Done()
		a.logger.Error("submit admin log write", "error", err, "action", action)
	}
}

func (a *AuditLogger) ListRecent(ctx context.Context, limit int) ([]auditlog.Entry, error) {
	entries, err := a.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list admin logs: %w", err)
	}
	return entries, nil
}

// Close drains pending writes and releases the pool.
func (a *AuditLogger) Close() {
	if a == nil || a.pool == nil {
		return
	}
	a.pending.Wait()
	a.pool.Release()
}
