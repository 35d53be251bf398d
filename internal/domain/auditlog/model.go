package auditlog

import "time"

// Entry records one privileged action. Action is a short verb phrase like
// "create_county", ActionID points at the affected row when there is one.
type Entry struct {
	ID        int64
	UserID    int64
	Action    string
	ActionID  *int64
	CreatedAt time.Time
}
