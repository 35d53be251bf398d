package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nkoroi/county-league/internal/domain/user"
)

// TokenManager issues and verifies the bearer tokens the API hands out.
type TokenManager interface {
	IssueAccess(userID int64) (string, error)
	IssueRefresh(userID int64) (string, error)
	VerifyAccess(raw string) (int64, error)
	VerifyRefresh(raw string) (int64, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	Password string
	Role     user.Role
}

type AuthService struct {
	users  user.Repository
	tokens TokenManager

	// dummyHash keeps the compare cost identical when the email is
	// unknown, so login timing does not reveal account existence.
	dummyHash []byte
}

func NewAuthService(users user.Repository, tokens TokenManager) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("county-league-no-such-user"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &AuthService{
		users:     users,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Register creates an account. The role defaults to plain user unless
// the caller asks for admin, which is how a fresh deployment gets its
// first admin account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Register")
	defer span.End()

	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	role := in.Role
	if role == "" {
		role = user.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := user.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := newUser.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.users.Create(ctx, &newUser); err != nil {
		return nil, wrapRepoErr("register user", err,
			user.ErrEmailTaken, user.ErrPhoneTaken, user.ErrUsernameTaken)
	}

	return &newUser, nil
}

// Login verifies credentials and issues a token pair. Unknown email, bad
// password and disabled account all fail with the same ErrAuth.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, TokenPair, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, TokenPair{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, TokenPair{}, fmt.Errorf("%w: bad credentials", ErrAuth)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: bad credentials", ErrAuth)
	}
	if account.IsDeleted || !account.IsActive {
		return nil, TokenPair{}, fmt.Errorf("%w: bad credentials", ErrAuth)
	}

	pair, err := s.issuePair(account.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return account, pair, nil
}

// Refresh exchanges a refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*user.User, TokenPair, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Refresh")
	defer span.End()

	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: invalid refresh token", ErrAuth)
	}

	account, err := s.Resolve(ctx, userID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.issuePair(account.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return account, pair, nil
}

// Resolve maps a verified token subject to a live account.
func (s *AuthService) Resolve(ctx context.Context, userID int64) (*user.User, error) {
	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: account unavailable", ErrAuth)
	}
	if account.IsDeleted || !account.IsActive {
		return nil, fmt.Errorf("%w: account unavailable", ErrAuth)
	}
	return account, nil
}

// VerifyAccess checks a bearer token and returns the live account.
func (s *AuthService) VerifyAccess(ctx context.Context, raw string) (*user.User, error) {
	userID, err := s.tokens.VerifyAccess(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", ErrAuth)
	}
	return s.Resolve(ctx, userID)
}

func (s *AuthService) issuePair(userID int64) (TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
