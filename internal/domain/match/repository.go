package match

import "context"

// Repository persists matches and their satellite records. List filters
// soft-deleted rows, GetByID does not.
type Repository interface {
	Create(ctx context.Context, m *Match) error
	GetByID(ctx context.Context, id int64) (*Match, error)
	List(ctx context.Context) ([]Match, error)
	UpdateScore(ctx context.Context, id int64, u ScoreUpdate) (*Match, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error

	AddLineup(ctx context.Context, l *Lineup) error
	ListLineupsByMatch(ctx context.Context, matchID int64) ([]Lineup, error)
	AddStats(ctx context.Context, s *Stats) error
	ListStatsByMatch(ctx context.Context, matchID int64) ([]Stats, error)
	AddEvent(ctx context.Context, e *Event) error
	ListEventsByMatch(ctx context.Context, matchID int64) ([]Event, error)
}
