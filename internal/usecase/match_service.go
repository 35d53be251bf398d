package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/views"
)

type CreateMatchInput struct {
	CompetitionID *int64
	HomeTeamID    int64
	AwayTeamID    int64
	MatchDate     string
	MatchTime     string
	Status        match.Status
}

type AddLineupInput struct {
	MatchID    int64
	TeamID     int64
	PlayerID   int64
	IsStarting bool
	Position   string
}

type AddStatsInput struct {
	MatchID        int64
	TeamID         int64
	Possession     float64
	ShotsOnTarget  int
	ShotsOffTarget int
	Corners        int
	Fouls          int
	YellowCards    int
	RedCards       int
	Saves          int
	Offsides       int
}

type AddEventInput struct {
	MatchID   int64
	TeamID    int64
	PlayerID  int64
	Type      match.EventType
	EventTime string
}

type MatchService struct {
	matches match.Repository
	views   views.Reader
}

func NewMatchService(matches match.Repository, viewReader views.Reader) *MatchService {
	return &MatchService{matches: matches, views: viewReader}
}

func (s *MatchService) Create(ctx context.Context, in CreateMatchInput) (*match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Create")
	defer span.End()

	status := in.Status
	if status == "" {
		status = match.StatusScheduled
	}

	m := match.Match{
		CompetitionID: in.CompetitionID,
		HomeTeamID:    in.HomeTeamID,
		AwayTeamID:    in.AwayTeamID,
		Status:        status,
		MatchDate:     strings.TrimSpace(in.MatchDate),
		MatchTime:     strings.TrimSpace(in.MatchTime),
		IsActive:      true,
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.matches.Create(ctx, &m); err != nil {
		return nil, wrapRepoErr("create match", err)
	}
	return &m, nil
}

// Detail returns the match with teams and competition resolved.
func (s *MatchService) Detail(ctx context.Context, id int64) (*views.MatchWithRefs, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Detail")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrValidation)
	}

	detail, err := s.views.MatchDetail(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get match detail", err)
	}
	return detail, nil
}

func (s *MatchService) ListDetails(ctx context.Context) ([]views.MatchWithRefs, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListDetails")
	defer span.End()

	details, err := s.views.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match details: %w", err)
	}
	return details, nil
}

// UpdateScore writes the explicit score field set and nothing else.
func (s *MatchService) UpdateScore(ctx context.Context, id int64, u match.ScoreUpdate) (*match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.UpdateScore")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrValidation)
	}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	updated, err := s.matches.UpdateScore(ctx, id, u)
	if err != nil {
		return nil, wrapRepoErr("update match score", err)
	}
	return updated, nil
}

func (s *MatchService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SoftDelete")
	defer span.End()

	if err := s.matches.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete match", err)
	}
	return nil
}

func (s *MatchService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Restore")
	defer span.End()

	if err := s.matches.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore match", err)
	}
	return nil
}

func (s *MatchService) HardDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "MatchService.HardDelete")
	defer span.End()

	if err := s.matches.HardDelete(ctx, id); err != nil {
		return wrapRepoErr("hard delete match", err, match.ErrInUse)
	}
	return nil
}

func (s *MatchService) AddLineup(ctx context.Context, in AddLineupInput) (*match.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.AddLineup")
	defer span.End()

	l := match.Lineup{
		MatchID:    in.MatchID,
		TeamID:     in.TeamID,
		PlayerID:   in.PlayerID,
		IsStarting: in.IsStarting,
		Position:   strings.TrimSpace(in.Position),
		IsActive:   true,
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.matches.AddLineup(ctx, &l); err != nil {
		if errors.Is(err, match.ErrTeamNotInMatch) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, wrapRepoErr("add match lineup", err)
	}
	return &l, nil
}

func (s *MatchService) Lineups(ctx context.Context, matchID int64) ([]match.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Lineups")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrValidation)
	}

	lineups, err := s.matches.ListLineupsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match lineups: %w", err)
	}
	return lineups, nil
}

func (s *MatchService) AddStats(ctx context.Context, in AddStatsInput) (*match.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.AddStats")
	defer span.End()

	st := match.Stats{
		MatchID:        in.MatchID,
		TeamID:         in.TeamID,
		Possession:     in.Possession,
		ShotsOnTarget:  in.ShotsOnTarget,
		ShotsOffTarget: in.ShotsOffTarget,
		Corners:        in.Corners,
		Fouls:          in.Fouls,
		YellowCards:    in.YellowCards,
		RedCards:       in.RedCards,
		Saves:          in.Saves,
		Offsides:       in.Offsides,
		IsActive:       true,
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.matches.AddStats(ctx, &st); err != nil {
		return nil, wrapRepoErr("add match stats", err)
	}
	return &st, nil
}

func (s *MatchService) Stats(ctx context.Context, matchID int64) ([]match.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Stats")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrValidation)
	}

	stats, err := s.matches.ListStatsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match stats: %w", err)
	}
	return stats, nil
}

func (s *MatchService) AddEvent(ctx context.Context, in AddEventInput) (*match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.AddEvent")
	defer span.End()

	e := match.Event{
		MatchID:   in.MatchID,
		TeamID:    in.TeamID,
		PlayerID:  in.PlayerID,
		Type:      in.Type,
		EventTime: strings.TrimSpace(in.EventTime),
		IsActive:  true,
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.matches.AddEvent(ctx, &e); err != nil {
		return nil, wrapRepoErr("add match event", err)
	}
	return &e, nil
}

func (s *MatchService) Events(ctx context.Context, matchID int64) ([]match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Events")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrValidation)
	}

	events, err := s.matches.ListEventsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	return events, nil
}
