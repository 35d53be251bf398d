package squad

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDuplicateMembership reports a second roster entry for the same
// (team, player, season) triple.
var ErrDuplicateMembership = errors.New("player is already in the squad for this season")

// Membership is a player's roster assignment to a team for a season; it is
// distinct from a single match's lineup entry.
type Membership struct {
	ID          int64
	TeamID      int64
	PlayerID    int64
	SquadNumber int
	Season      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsActive    bool
	IsDeleted   bool
}

func (m Membership) Validate() error {
	if m.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if m.PlayerID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(m.Season) == "" {
		return fmt.Errorf("season is required")
	}

	return nil
}
