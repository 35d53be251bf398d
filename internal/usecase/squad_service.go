package usecase

import (
	"context"
	"fmt"

	"github.com/nkoroi/county-league/internal/domain/squad"
	"github.com/nkoroi/county-league/internal/domain/views"
)

type AddToSquadInput struct {
	TeamID      int64
	PlayerID    int64
	SquadNumber int
	Season      string
}

type SquadService struct {
	squads squad.Repository
	views  views.Reader
}

func NewSquadService(squads squad.Repository, viewReader views.Reader) *SquadService {
	return &SquadService{squads: squads, views: viewReader}
}

func (s *SquadService) Add(ctx context.Context, in AddToSquadInput) (*squad.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "SquadService.Add")
	defer span.End()

	m := squad.Membership{
		TeamID:      in.TeamID,
		PlayerID:    in.PlayerID,
		SquadNumber: in.SquadNumber,
		Season:      in.Season,
		IsActive:    true,
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.squads.Create(ctx, &m); err != nil {
		return nil, wrapRepoErr("add squad membership", err, squad.ErrDuplicateMembership)
	}
	return &m, nil
}

// TeamSquad returns the squad view: team fields, memberships with
// players resolved, and the team's matches and standings unexpanded.
func (s *SquadService) TeamSquad(ctx context.Context, teamID int64) (*views.TeamSquadView, error) {
	ctx, span := startUsecaseSpan(ctx, "SquadService.TeamSquad")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrValidation)
	}

	view, err := s.views.TeamSquad(ctx, teamID)
	if err != nil {
		return nil, wrapRepoErr("get team squad", err)
	}
	return view, nil
}

func (s *SquadService) Remove(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "SquadService.Remove")
	defer span.End()

	if err := s.squads.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("remove squad membership", err)
	}
	return nil
}

func (s *SquadService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "SquadService.Restore")
	defer span.End()

	if err := s.squads.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore squad membership", err)
	}
	return nil
}
