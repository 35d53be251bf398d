package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/team"
	"github.com/nkoroi/county-league/internal/domain/views"
)

type CreateTeamInput struct {
	Name     string
	Logo     string
	CountyID *int64
}

type TeamService struct {
	teams team.Repository
	views views.Reader
}

func NewTeamService(teams team.Repository, viewReader views.Reader) *TeamService {
	return &TeamService{teams: teams, views: viewReader}
}

func (s *TeamService) Create(ctx context.Context, in CreateTeamInput) (*team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Create")
	defer span.End()

	t := team.Team{
		Name:     strings.TrimSpace(in.Name),
		Logo:     strings.TrimSpace(in.Logo),
		CountyID: in.CountyID,
		IsActive: true,
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.teams.Create(ctx, &t); err != nil {
		return nil, wrapRepoErr("create team", err)
	}
	return &t, nil
}

// Detail returns the team with its county resolved.
func (s *TeamService) Detail(ctx context.Context, id int64) (*views.TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Detail")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrValidation)
	}

	detail, err := s.views.TeamDetail(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get team detail", err)
	}
	return detail, nil
}

func (s *TeamService) List(ctx context.Context) ([]views.TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.List")
	defer span.End()

	teams, err := s.views.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, upd team.Update) (*team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Update")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrValidation)
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: team name cannot be empty", ErrValidation)
	}

	updated, err := s.teams.Update(ctx, id, upd)
	if err != nil {
		return nil, wrapRepoErr("update team", err)
	}
	return updated, nil
}

func (s *TeamService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "TeamService.SoftDelete")
	defer span.End()

	if err := s.teams.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete team", err)
	}
	return nil
}

func (s *TeamService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Restore")
	defer span.End()

	if err := s.teams.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore team", err)
	}
	return nil
}

func (s *TeamService) HardDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "TeamService.HardDelete")
	defer span.End()

	if err := s.teams.HardDelete(ctx, id); err != nil {
		return wrapRepoErr("hard delete team", err, team.ErrInUse)
	}
	return nil
}
