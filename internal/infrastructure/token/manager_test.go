package token

import (
	"errors"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager("test-secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	raw, err := m.IssueAccess(42)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	claims, err := m.Verify(raw, TypeAccess)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected user id: %d", claims.UserID)
	}
	if claims.Type != TypeAccess {
		t.Fatalf("unexpected token type: %s", claims.Type)
	}
}

func TestVerifyRejectsRefreshAsAccess(t *testing.T) {
	m := newTestManager(t)

	raw, err := m.IssueRefresh(42)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	if _, err := m.Verify(raw, TypeAccess); !errors.Is(err, ErrWrongType) {
		t.Fatalf("expected ErrWrongType, got %v", err)
	}
	if _, err := m.Verify(raw, TypeRefresh); err != nil {
		t.Fatalf("verify as refresh: %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(t)
	issuedAt := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	raw, err := m.IssueAccess(7)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := m.Verify(raw, TypeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager("other-secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}

	raw, err := other.IssueAccess(7)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	if _, err := m.Verify(raw, TypeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify("not-a-token", TypeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
