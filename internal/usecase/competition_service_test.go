package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/usecase"
)

func TestCompetitionCreateValidatesType(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := usecase.NewCompetitionService(store.Competitions(), store.Standings(), store.Views())

	_, err := svc.Create(ctx, usecase.CreateCompetitionInput{
		Name: "County Shield", Season: "2026", Type: "friendly",
	})
	require.ErrorIs(t, err, usecase.ErrValidation)

	c, err := svc.Create(ctx, usecase.CreateCompetitionInput{
		Name: "County Shield", Season: "2026", Type: competition.TypeKnockout,
	})
	require.NoError(t, err)
	require.NotZero(t, c.ID)
}

func TestStandingsUpsertAndOrdering(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	teamSvc := usecase.NewTeamService(store.Teams(), store.Views())
	svc := usecase.NewCompetitionService(store.Competitions(), store.Standings(), store.Views())

	comp, err := svc.Create(ctx, usecase.CreateCompetitionInput{
		Name: "Nyanza Regional League", Season: "2026", Type: competition.TypeLeague,
	})
	require.NoError(t, err)

	var teamIDs []int64
	for _, name := range []string{"Gusii FC", "Shabana FC", "Muhoroni Youth"} {
		tm, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: name})
		require.NoError(t, err)
		teamIDs = append(teamIDs, tm.ID)
	}

	// Same points for the first two; goal difference must break the tie.
	rows := []usecase.UpsertStandingInput{
		{CompetitionID: comp.ID, TeamID: teamIDs[0], Played: 3, Won: 2, Drawn: 0, Lost: 1, GoalsFor: 5, GoalsAgainst: 4, Points: 6},
		{CompetitionID: comp.ID, TeamID: teamIDs[1], Played: 3, Won: 2, Drawn: 0, Lost: 1, GoalsFor: 7, GoalsAgainst: 2, Points: 6},
		{CompetitionID: comp.ID, TeamID: teamIDs[2], Played: 3, Won: 3, Drawn: 0, Lost: 0, GoalsFor: 6, GoalsAgainst: 1, Points: 9},
	}
	for _, in := range rows {
		_, err := svc.UpsertStanding(ctx, in)
		require.NoError(t, err)
	}

	table, err := svc.Standings(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, table, 3)
	require.Equal(t, "Muhoroni Youth", table[0].Team.Name)
	require.Equal(t, "Shabana FC", table[1].Team.Name)
	require.Equal(t, "Gusii FC", table[2].Team.Name)

	// A second write for the same pair replaces the row instead of adding one.
	_, err = svc.UpsertStanding(ctx, usecase.UpsertStandingInput{
		CompetitionID: comp.ID, TeamID: teamIDs[0],
		Played: 4, Won: 3, Drawn: 0, Lost: 1, GoalsFor: 9, GoalsAgainst: 4, Points: 9,
	})
	require.NoError(t, err)

	table, err = svc.Standings(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, table, 3)
	require.Equal(t, "Gusii FC", table[0].Team.Name, "updated goal difference should move the team up")
}

func TestStandingRejectsInconsistentRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := usecase.NewCompetitionService(store.Competitions(), store.Standings(), store.Views())

	comp, err := svc.Create(ctx, usecase.CreateCompetitionInput{
		Name: "Western League", Season: "2026", Type: competition.TypeLeague,
	})
	require.NoError(t, err)

	_, err = svc.UpsertStanding(ctx, usecase.UpsertStandingInput{
		CompetitionID: comp.ID, TeamID: 0,
		Played: 1, Won: 1, Points: 3,
	})
	require.ErrorIs(t, err, usecase.ErrValidation)
}
