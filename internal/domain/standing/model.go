package standing

import (
	"fmt"
	"time"
)

// Standing is an independently written table row for a team inside a
// competition. It is not derived from match results; the score-update path
// never touches it.
type Standing struct {
	ID            int64
	CompetitionID int64
	TeamID        int64
	Played        int
	Won           int
	Drawn         int
	Lost          int
	GoalsFor      int
	GoalsAgainst  int
	Points        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	IsActive      bool
	IsDeleted     bool
}

func (s Standing) Validate() error {
	if s.CompetitionID <= 0 {
		return fmt.Errorf("competition id is required")
	}
	if s.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if s.Played < 0 || s.Won < 0 || s.Drawn < 0 || s.Lost < 0 {
		return fmt.Errorf("match counters cannot be negative")
	}
	if s.GoalsFor < 0 || s.GoalsAgainst < 0 || s.Points < 0 {
		return fmt.Errorf("goal and point counters cannot be negative")
	}

	return nil
}
