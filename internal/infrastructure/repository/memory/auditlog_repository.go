package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/auditlog"
)

type AuditLogRepository struct {
	store *Store
}

func (s *Store) AuditLogs() *AuditLogRepository {
	return &AuditLogRepository{store: s}
}

func (r *AuditLogRepository) Append(_ context.Context, e *auditlog.Entry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID("admin_logs")
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e.ActionID = cloneInt64Ptr(e.ActionID)
	s.audits = append(s.audits, *e)

	return nil
}

func (r *AuditLogRepository) ListRecent(_ context.Context, limit int) ([]auditlog.Entry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.audits) {
		limit = len(s.audits)
	}

	out := make([]auditlog.Entry, 0, limit)
	for i := len(s.audits) - 1; i >= 0 && len(out) < limit; i-- {
		e := s.audits[i]
		e.ActionID = cloneInt64Ptr(e.ActionID)
		out = append(out, e)
	}
	return out, nil
}
