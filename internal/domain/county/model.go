package county

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNameTaken = errors.New("county name is already registered")

// County is a geographic region teams can belong to.
type County struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	IsDeleted bool
}

func (c County) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("county name is required")
	}

	return nil
}
