package usecase

import (
	"context"
	"fmt"

	"github.com/nkoroi/county-league/internal/domain/user"
)

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id int64) (*user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.Get")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	account, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get user", err)
	}
	return account, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.List")
	defer span.End()

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int64, upd user.Update) (*user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.Update")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, fmt.Errorf("%w: role %q is invalid", ErrValidation, *upd.Role)
	}

	updated, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, wrapRepoErr("update user", err,
			user.ErrEmailTaken, user.ErrPhoneTaken, user.ErrUsernameTaken)
	}
	return updated, nil
}

func (s *UserService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "UserService.SoftDelete")
	defer span.End()

	if err := s.users.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete user", err)
	}
	return nil
}

func (s *UserService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "UserService.Restore")
	defer span.End()

	if err := s.users.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore user", err)
	}
	return nil
}

func (s *UserService) HardDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "UserService.HardDelete")
	defer span.End()

	if err := s.users.HardDelete(ctx, id); err != nil {
		return wrapRepoErr("hard delete user", err)
	}
	return nil
}
