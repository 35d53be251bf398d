package standing

import "context"

// Repository upserts are keyed on (competition_id, team_id); a second write
// for the same pair replaces the counters instead of inserting a row. The
// row's ID and timestamps are filled in place.
type Repository interface {
	Upsert(ctx context.Context, s *Standing) error
	ListByCompetition(ctx context.Context, competitionID int64) ([]Standing, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Standing, error)
}
