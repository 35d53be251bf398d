package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/usecase"
)

type matchFixture struct {
	store   *memory.Store
	matches *usecase.MatchService
	homeID  int64
	awayID  int64
}

func newMatchFixture(t *testing.T) matchFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	teamSvc := usecase.NewTeamService(store.Teams(), store.Views())

	home, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: "Vihiga United"})
	require.NoError(t, err)
	away, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: "Muhoroni Youth"})
	require.NoError(t, err)

	return matchFixture{
		store:   store,
		matches: usecase.NewMatchService(store.Matches(), store.Views()),
		homeID:  home.ID,
		awayID:  away.ID,
	}
}

func (f matchFixture) createMatch(t *testing.T) *match.Match {
	t.Helper()
	m, err := f.matches.Create(context.Background(), usecase.CreateMatchInput{
		HomeTeamID: f.homeID,
		AwayTeamID: f.awayID,
		MatchDate:  "2026-09-12",
		MatchTime:  "16:00",
	})
	require.NoError(t, err)
	return m
}

func TestMatchCreateRejectsSameTeam(t *testing.T) {
	f := newMatchFixture(t)

	_, err := f.matches.Create(context.Background(), usecase.CreateMatchInput{
		HomeTeamID: f.homeID,
		AwayTeamID: f.homeID,
		MatchDate:  "2026-09-12",
		MatchTime:  "16:00",
	})
	require.ErrorIs(t, err, usecase.ErrValidation)
}

func TestMatchScoreUpdateIsLimitedToScoreFields(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)
	m := f.createMatch(t)

	updated, err := f.matches.UpdateScore(ctx, m.ID, match.ScoreUpdate{
		HomeScore: 2,
		AwayScore: 1,
		AddedTime: 4,
		Status:    match.StatusFullTime,
	})
	require.NoError(t, err)
	require.Equal(t, 2, updated.HomeScore)
	require.Equal(t, match.StatusFullTime, updated.Status)
	require.Equal(t, m.MatchDate, updated.MatchDate, "score path must not touch scheduling fields")
	require.Equal(t, m.HomeTeamID, updated.HomeTeamID)

	_, err = f.matches.UpdateScore(ctx, m.ID, match.ScoreUpdate{HomeScore: -1, Status: match.StatusLive})
	require.ErrorIs(t, err, usecase.ErrValidation)

	_, err = f.matches.UpdateScore(ctx, m.ID, match.ScoreUpdate{Status: "paused"})
	require.ErrorIs(t, err, usecase.ErrValidation)
}

func TestAddLineupRejectsForeignTeam(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)
	m := f.createMatch(t)

	teamSvc := usecase.NewTeamService(f.store.Teams(), f.store.Views())
	outsider, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: "Third Team"})
	require.NoError(t, err)

	playerSvc := usecase.NewPlayerService(f.store.Players())
	p, err := playerSvc.Create(ctx, usecase.CreatePlayerInput{
		FirstName: "Brian", LastName: "Musa", Position: "GK",
	})
	require.NoError(t, err)

	_, err = f.matches.AddLineup(ctx, usecase.AddLineupInput{
		MatchID:  m.ID,
		TeamID:   outsider.ID,
		PlayerID: p.ID,
	})
	require.ErrorIs(t, err, usecase.ErrValidation)

	lineup, err := f.matches.AddLineup(ctx, usecase.AddLineupInput{
		MatchID:    m.ID,
		TeamID:     f.homeID,
		PlayerID:   p.ID,
		IsStarting: true,
		Position:   "GK",
	})
	require.NoError(t, err)
	require.True(t, lineup.IsStarting)
}

func TestAddEventValidatesTimeLabel(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)
	m := f.createMatch(t)

	playerSvc := usecase.NewPlayerService(f.store.Players())
	p, err := playerSvc.Create(ctx, usecase.CreatePlayerInput{
		FirstName: "Kevin", LastName: "Odhiambo", Position: "FW",
	})
	require.NoError(t, err)

	_, err = f.matches.AddEvent(ctx, usecase.AddEventInput{
		MatchID: m.ID, TeamID: f.homeID, PlayerID: p.ID,
		Type: match.EventGoal, EventTime: "around halftime",
	})
	require.ErrorIs(t, err, usecase.ErrValidation)

	created, err := f.matches.AddEvent(ctx, usecase.AddEventInput{
		MatchID: m.ID, TeamID: f.homeID, PlayerID: p.ID,
		Type: match.EventGoal, EventTime: "45+2",
	})
	require.NoError(t, err)

	events, err := f.matches.Events(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, created.ID, events[0].ID)
}
