// Package token issues and verifies the signed bearer tokens the HTTP API
// authenticates with.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("token: invalid token")
	ErrWrongType    = errors.New("token: wrong token type")
)

// Claims is the verified identity carried by a token.
type Claims struct {
	UserID int64
	Type   string
}

// Manager signs HS256 tokens. Access tokens authenticate requests,
// refresh tokens may only be exchanged for new token pairs.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token: secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token: ttls must be positive")
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

func (m *Manager) IssueAccess(userID int64) (string, error) {
	return m.issue(userID, TypeAccess, m.accessTTL)
}

func (m *Manager) IssueRefresh(userID int64) (string, error) {
	return m.issue(userID, TypeRefresh, m.refreshTTL)
}

func (m *Manager) issue(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(userID, 10),
		"token_type": tokenType,
		"iat":        jwt.NewNumericDate(now),
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// VerifyAccess returns the user id carried by a valid access token.
func (m *Manager) VerifyAccess(raw string) (int64, error) {
	claims, err := m.Verify(raw, TypeAccess)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// VerifyRefresh returns the user id carried by a valid refresh token.
func (m *Manager) VerifyRefresh(raw string) (int64, error) {
	claims, err := m.Verify(raw, TypeRefresh)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// Verify checks signature and expiry and enforces the expected token
// type. All failures collapse to ErrInvalidToken or ErrWrongType so
// callers leak nothing about why a token was rejected.
func (m *Manager) Verify(raw, wantType string) (Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return Claims{}, ErrInvalidToken
	}

	tokenType, _ := mapClaims["token_type"].(string)
	if tokenType == "" {
		return Claims{}, ErrInvalidToken
	}
	if tokenType != wantType {
		return Claims{}, ErrWrongType
	}

	return Claims{UserID: userID, Type: tokenType}, nil
}
