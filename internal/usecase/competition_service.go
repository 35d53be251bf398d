package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/views"
)

type CreateCompetitionInput struct {
	Name   string
	Season string
	Type   competition.Type
}

// UpsertStandingInput is a full standings row write; the table is
// maintained explicitly, not derived from match scores.
type UpsertStandingInput struct {
	CompetitionID int64
	TeamID        int64
	Played        int
	Won           int
	Drawn         int
	Lost          int
	GoalsFor      int
	GoalsAgainst  int
	Points        int
}

type CompetitionService struct {
	competitions competition.Repository
	standings    standing.Repository
	views        views.Reader
}

func NewCompetitionService(
	competitions competition.Repository,
	standings standing.Repository,
	viewReader views.Reader,
) *CompetitionService {
	return &CompetitionService{
		competitions: competitions,
		standings:    standings,
		views:        viewReader,
	}
}

func (s *CompetitionService) Create(ctx context.Context, in CreateCompetitionInput) (*competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.Create")
	defer span.End()

	c := competition.Competition{
		Name:     strings.TrimSpace(in.Name),
		Season:   strings.TrimSpace(in.Season),
		Type:     in.Type,
		IsActive: true,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.competitions.Create(ctx, &c); err != nil {
		return nil, wrapRepoErr("create competition", err)
	}
	return &c, nil
}

func (s *CompetitionService) Get(ctx context.Context, id int64) (*competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.Get")
	defer span.End()

	c, err := s.competitions.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get competition", err)
	}
	return c, nil
}

// List returns every live competition together with the matches played
// under it, from one store snapshot.
func (s *CompetitionService) List(ctx context.Context) ([]views.CompetitionWithMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.List")
	defer span.End()

	out, err := s.views.ListCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return out, nil
}

func (s *CompetitionService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.SoftDelete")
	defer span.End()

	if err := s.competitions.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete competition", err)
	}
	return nil
}

func (s *CompetitionService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.Restore")
	defer span.End()

	if err := s.competitions.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore competition", err)
	}
	return nil
}

func (s *CompetitionService) HardDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.HardDelete")
	defer span.End()

	if err := s.competitions.HardDelete(ctx, id); err != nil {
		return wrapRepoErr("hard delete competition", err, competition.ErrInUse)
	}
	return nil
}

func (s *CompetitionService) UpsertStanding(ctx context.Context, in UpsertStandingInput) (*standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.UpsertStanding")
	defer span.End()

	st := standing.Standing{
		CompetitionID: in.CompetitionID,
		TeamID:        in.TeamID,
		Played:        in.Played,
		Won:           in.Won,
		Drawn:         in.Drawn,
		Lost:          in.Lost,
		GoalsFor:      in.GoalsFor,
		GoalsAgainst:  in.GoalsAgainst,
		Points:        in.Points,
		IsActive:      true,
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.standings.Upsert(ctx, &st); err != nil {
		return nil, wrapRepoErr("upsert standing", err)
	}
	return &st, nil
}

// Standings returns the ordered table with teams resolved.
func (s *CompetitionService) Standings(ctx context.Context, competitionID int64) ([]views.StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "CompetitionService.Standings")
	defer span.End()

	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id is required", ErrValidation)
	}

	rows, err := s.views.CompetitionStandings(ctx, competitionID)
	if err != nil {
		return nil, wrapRepoErr("get competition standings", err)
	}
	return rows, nil
}
