package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/require"

	"github.com/nkoroi/county-league/internal/domain/user"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/infrastructure/token"
	"github.com/nkoroi/county-league/internal/usecase"
)

func newAuthService(t *testing.T) (*usecase.AuthService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	tokens, err := token.NewManager("test-secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	svc, err := usecase.NewAuthService(store.Users(), tokens)
	require.NoError(t, err)
	return svc, store
}

func registerInput(email string) usecase.RegisterInput {
	return usecase.RegisterInput{
		Username: "wafula",
		Email:    email,
		Phone:    "+254700111222",
		Password: "correct horse",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	created, err := svc.Register(ctx, registerInput("Wafula@Example.com"))
	require.NoError(t, err)
	require.Equal(t, "wafula@example.com", created.Email, "email should be stored lowercased")
	require.Equal(t, "user", string(created.Role), "role defaults to plain user")
	require.NotEqual(t, "correct horse", created.PasswordHash)

	account, pair, err := svc.Login(ctx, "wafula@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, created.ID, account.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	verified, err := svc.VerifyAccess(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, created.ID, verified.ID)
}

func TestRegisterHonorsRequestedRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	in := registerInput("chair@example.com")
	in.Role = user.RoleAdmin
	created, err := svc.Register(ctx, in)
	require.NoError(t, err)
	require.Equal(t, user.RoleAdmin, created.Role)

	bad := registerInput("bogus@example.com")
	bad.Phone = "+254700111333"
	bad.Username = "bogus"
	bad.Role = "superuser"
	_, err = svc.Register(ctx, bad)
	require.ErrorIs(t, err, usecase.ErrValidation)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	in := registerInput("short@example.com")
	in.Password = "short"
	_, err := svc.Register(context.Background(), in)
	require.ErrorIs(t, err, usecase.ErrValidation)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthService(t)

	created, err := svc.Register(ctx, registerInput("omondi@example.com"))
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "omondi@example.com", "not the password")
	_, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "not the password")
	require.ErrorIs(t, wrongPassword, usecase.ErrAuth)
	require.ErrorIs(t, unknownEmail, usecase.ErrAuth)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"login failure text must not reveal whether the account exists")

	require.NoError(t, store.Users().SoftDelete(ctx, created.ID))
	_, _, deleted := svc.Login(ctx, "omondi@example.com", "correct horse")
	require.ErrorIs(t, deleted, usecase.ErrAuth)
	require.Equal(t, wrongPassword.Error(), deleted.Error())
}

func TestRefreshRotatesPair(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	created, err := svc.Register(ctx, registerInput("akinyi@example.com"))
	require.NoError(t, err)

	_, pair, err := svc.Login(ctx, "akinyi@example.com", "correct horse")
	require.NoError(t, err)

	account, next, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, created.ID, account.ID)
	require.NotEmpty(t, next.AccessToken)

	// An access token is not accepted on the refresh path.
	_, _, err = svc.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, usecase.ErrAuth)
}

func TestConcurrentRegistrationKeepsEmailUnique(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthService(t)

	const attempts = 8
	var succeeded atomic.Int64

	var wg conc.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Go(func() {
			in := registerInput("race@example.com")
			if _, err := svc.Register(ctx, in); err == nil {
				succeeded.Add(1)
			}
		})
	}
	wg.Wait()

	require.Equal(t, int64(1), succeeded.Load(), "exactly one registration may win")

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
