package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkoroi/county-league/internal/domain/team"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/usecase"
)

func TestTeamCreateAndDetail(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	countySvc := usecase.NewCountyService(store.Counties())
	teamSvc := usecase.NewTeamService(store.Teams(), store.Views())

	c, err := countySvc.Create(ctx, "Bungoma")
	require.NoError(t, err)

	created, err := teamSvc.Create(ctx, usecase.CreateTeamInput{
		Name:     "Bungoma Superstars",
		CountyID: &c.ID,
	})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	detail, err := teamSvc.Detail(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, detail.Team.ID)
	require.NotNil(t, detail.County)
	require.Equal(t, "Bungoma", detail.County.Name)
}

func TestTeamCreateRequiresName(t *testing.T) {
	store := memory.NewStore()
	teamSvc := usecase.NewTeamService(store.Teams(), store.Views())

	_, err := teamSvc.Create(context.Background(), usecase.CreateTeamInput{Name: "   "})
	require.ErrorIs(t, err, usecase.ErrValidation)
}

func TestTeamUpdateTouchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	teamSvc := usecase.NewTeamService(store.Teams(), store.Views())

	created, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: "Nzoia Sugar", Logo: "uploads/nzoia.png"})
	require.NoError(t, err)

	newName := "Nzoia Sugar FC"
	updated, err := teamSvc.Update(ctx, created.ID, team.Update{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, "uploads/nzoia.png", updated.Logo, "unset fields stay untouched")

	empty := " "
	_, err = teamSvc.Update(ctx, created.ID, team.Update{Name: &empty})
	require.ErrorIs(t, err, usecase.ErrValidation)
}

func TestTeamSoftDeleteHidesFromListings(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	teamSvc := usecase.NewTeamService(store.Teams(), store.Views())

	created, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: "Kibera Black Stars"})
	require.NoError(t, err)

	require.NoError(t, teamSvc.SoftDelete(ctx, created.ID))

	details, err := teamSvc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, details)

	_, err = teamSvc.Detail(ctx, created.ID)
	require.ErrorIs(t, err, usecase.ErrNotFound)

	require.NoError(t, teamSvc.Restore(ctx, created.ID))
	details, err = teamSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
}
