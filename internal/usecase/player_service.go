package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/player"
)

type CreatePlayerInput struct {
	FirstName   string
	LastName    string
	Position    player.Position
	Nationality string
	Photo       string
}

type PlayerService struct {
	players player.Repository
}

func NewPlayerService(players player.Repository) *PlayerService {
	return &PlayerService{players: players}
}

func (s *PlayerService) Create(ctx context.Context, in CreatePlayerInput) (*player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Create")
	defer span.End()

	p := player.Player{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Position:    in.Position,
		Nationality: strings.TrimSpace(in.Nationality),
		Photo:       strings.TrimSpace(in.Photo),
		IsActive:    true,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.players.Create(ctx, &p); err != nil {
		return nil, wrapRepoErr("create player", err)
	}
	return &p, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (*player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Get")
	defer span.End()

	p, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get player", err)
	}
	return p, nil
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.List")
	defer span.End()

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) Update(ctx context.Context, id int64, upd player.Update) (*player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Update")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrValidation)
	}
	if upd.Position != nil && !upd.Position.Valid() {
		return nil, fmt.Errorf("%w: position %q is invalid", ErrValidation, *upd.Position)
	}

	updated, err := s.players.Update(ctx, id, upd)
	if err != nil {
		return nil, wrapRepoErr("update player", err)
	}
	return updated, nil
}

func (s *PlayerService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.SoftDelete")
	defer span.End()

	if err := s.players.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete player", err)
	}
	return nil
}

func (s *PlayerService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Restore")
	defer span.End()

	if err := s.players.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore player", err)
	}
	return nil
}

func (s *PlayerService) HardDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.HardDelete")
	defer span.End()

	if err := s.players.HardDelete(ctx, id); err != nil {
		return wrapRepoErr("hard delete player", err, player.ErrInUse)
	}
	return nil
}
