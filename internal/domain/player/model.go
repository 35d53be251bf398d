package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var ErrInUse = errors.New("player is referenced by other records")

// Player is a registered footballer. Photo is a blob-store relative path
// and may be empty.
type Player struct {
	ID          int64
	FirstName   string
	LastName    string
	Position    Position
	Nationality string
	Photo       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsActive    bool
	IsDeleted   bool
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("position %q is invalid", p.Position)
	}

	return nil
}

func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	default:
		return false
	}
}

type Update struct {
	FirstName   *string
	LastName    *string
	Position    *Position
	Nationality *string
	Photo       *string
}
