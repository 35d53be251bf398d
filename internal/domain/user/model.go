package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var (
	ErrEmailTaken    = errors.New("email is already registered")
	ErrPhoneTaken    = errors.New("phone is already registered")
	ErrUsernameTaken = errors.New("username is already registered")
)

// User is a registered account. PasswordHash never leaves the store and
// usecase layers; HTTP DTOs have no field for it.
type User struct {
	ID           int64
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	IsActive     bool
	IsDeleted    bool
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(u.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("role %q is invalid", u.Role)
	}

	return nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Update is the explicit set of mutable user fields. A nil field is left
// untouched; there is no way to address any other column.
type Update struct {
	Username *string
	Email    *string
	Phone    *string
	Role     *Role
}
