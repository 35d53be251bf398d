package news

import (
	"fmt"
	"strings"
	"time"
)

// Article is an editorial item, optionally linked to a team, a match or a
// competition. Links are nullable and severed (set to null) rather than
// cascading when the referenced record is hard-deleted.
type Article struct {
	ID            int64
	Title         string
	Content       string
	Image         string
	AuthorID      *int64
	TeamID        *int64
	MatchID       *int64
	CompetitionID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	IsActive      bool
	IsDeleted     bool
}

func (a Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(a.Content) == "" {
		return fmt.Errorf("content is required")
	}

	return nil
}
