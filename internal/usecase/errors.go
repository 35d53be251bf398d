package usecase

import (
	"errors"
	"fmt"

	"github.com/nkoroi/county-league/internal/domain/storage"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("resource not found")
	ErrAuth       = errors.New("authentication failed")
	ErrForbidden  = errors.New("forbidden")
)

// wrapRepoErr translates repository errors into the service error
// vocabulary: missing rows become ErrNotFound, any error listed in
// conflicts becomes ErrConflict, the rest pass through wrapped with op.
func wrapRepoErr(op string, err error, conflicts ...error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return fmt.Errorf("%w: %v", ErrConflict, conflict)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
