package team

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInUse reports a hard delete blocked by rows that still reference the
// team (matches, squads, lineups, standings).
var ErrInUse = errors.New("team is referenced by other records")

// Team is a football club. Logo is a blob-store relative path
// ("uploads/<filename>") and may be empty. CountyID is optional.
type Team struct {
	ID        int64
	Name      string
	Logo      string
	CountyID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	IsDeleted bool
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Update lists every mutable team field; nil means unchanged.
type Update struct {
	Name     *string
	Logo     *string
	CountyID *int64
}
