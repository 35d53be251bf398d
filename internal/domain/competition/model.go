package competition

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeLeague   Type = "league"
	TypeKnockout Type = "knockout"
)

var ErrInUse = errors.New("competition is referenced by other records")

// Competition is a tournament a set of matches belongs to.
type Competition struct {
	ID        int64
	Name      string
	Season    string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	IsDeleted bool
}

func (c Competition) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition name is required")
	}
	if strings.TrimSpace(c.Season) == "" {
		return fmt.Errorf("competition season is required")
	}
	if !c.Type.Valid() {
		return fmt.Errorf("competition type %q is invalid", c.Type)
	}

	return nil
}

func (t Type) Valid() bool {
	switch t {
	case TypeLeague, TypeKnockout:
		return true
	default:
		return false
	}
}
