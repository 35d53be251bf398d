// Package storage holds the error vocabulary shared by every repository
// implementation.
package storage

import "errors"

// ErrNotFound is returned by repository methods that target a single row
// when no row matches.
var ErrNotFound = errors.New("record not found")
