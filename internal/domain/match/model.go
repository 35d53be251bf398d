package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFullTime  Status = "FT"
)

var (
	ErrSameTeam       = errors.New("home and away team must differ")
	ErrTeamNotInMatch = errors.New("team is not part of this match")
	ErrInUse          = errors.New("match is referenced by other records")
)

// Match is a fixture between two distinct teams, optionally inside a
// competition. Date and time are kept as the opaque strings clients send;
// they are never parsed.
type Match struct {
	ID            int64
	CompetitionID *int64
	HomeTeamID    int64
	AwayTeamID    int64
	HomeScore     int
	AwayScore     int
	AddedTime     int
	ExtraTime     int
	Status        Status
	MatchDate     string
	MatchTime     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	IsActive      bool
	IsDeleted     bool
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("home team id is required")
	}
	if m.AwayTeamID <= 0 {
		return fmt.Errorf("away team id is required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return ErrSameTeam
	}
	if strings.TrimSpace(m.MatchDate) == "" {
		return fmt.Errorf("match date is required")
	}
	if strings.TrimSpace(m.MatchTime) == "" {
		return fmt.Errorf("match time is required")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("match status %q is invalid", m.Status)
	}

	return nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFullTime:
		return true
	default:
		return false
	}
}

// ScoreUpdate is the explicit field set the score endpoint may touch.
type ScoreUpdate struct {
	HomeScore int
	AwayScore int
	AddedTime int
	ExtraTime int
	Status    Status
}

func (u ScoreUpdate) Validate() error {
	if u.HomeScore < 0 || u.AwayScore < 0 {
		return fmt.Errorf("scores cannot be negative")
	}
	if u.AddedTime < 0 || u.ExtraTime < 0 {
		return fmt.Errorf("added and extra time cannot be negative")
	}
	if !u.Status.Valid() {
		return fmt.Errorf("match status %q is invalid", u.Status)
	}

	return nil
}

// Lineup is a player's participation record for one specific match.
type Lineup struct {
	ID         int64
	MatchID    int64
	TeamID     int64
	PlayerID   int64
	IsStarting bool
	Position   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsActive   bool
	IsDeleted  bool
}

func (l Lineup) Validate() error {
	if l.MatchID <= 0 {
		return fmt.Errorf("match id is required")
	}
	if l.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if l.PlayerID <= 0 {
		return fmt.Errorf("player id is required")
	}

	return nil
}

// Stats is one team's statistics sheet for one match.
type Stats struct {
	ID             int64
	MatchID        int64
	TeamID         int64
	Possession     float64
	ShotsOnTarget  int
	ShotsOffTarget int
	Corners        int
	Fouls          int
	YellowCards    int
	RedCards       int
	Saves          int
	Offsides       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IsActive       bool
	IsDeleted      bool
}

func (s Stats) Validate() error {
	if s.MatchID <= 0 {
		return fmt.Errorf("match id is required")
	}
	if s.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if s.Possession < 0 || s.Possession > 100 {
		return fmt.Errorf("possession must be between 0 and 100")
	}

	return nil
}

type EventType string

const (
	EventGoal         EventType = "goal"
	EventAssist       EventType = "assist"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
)

// eventTimePattern accepts minute labels like "45", "90" and stoppage-time
// labels like "45+2".
var eventTimePattern = regexp.MustCompile(`^[0-9]{1,3}(\+[0-9]{1,2})?$`)

// Event is a timestamped in-match occurrence attributed to a team and a
// player.
type Event struct {
	ID        int64
	MatchID   int64
	TeamID    int64
	PlayerID  int64
	Type      EventType
	EventTime string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	IsDeleted bool
}

func (e Event) Validate() error {
	if e.MatchID <= 0 {
		return fmt.Errorf("match id is required")
	}
	if e.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if e.PlayerID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("event type %q is invalid", e.Type)
	}
	if !eventTimePattern.MatchString(e.EventTime) {
		return fmt.Errorf("event time %q is invalid", e.EventTime)
	}

	return nil
}

func (t EventType) Valid() bool {
	switch t {
	case EventGoal, EventAssist, EventYellowCard, EventRedCard, EventSubstitution:
		return true
	default:
		return false
	}
}
