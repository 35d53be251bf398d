package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/nkoroi/county-league/internal/usecase"
)

func pinResponseClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := responseNow
	responseNow = func() time.Time { return at }
	t.Cleanup(func() { responseNow = prev })
}

func TestWriteSuccess_Envelope(t *testing.T) {
	pinResponseClock(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, payload{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["msg"].(string); got != "ok" {
		t.Fatalf("expected msg=ok, got %v", body["msg"])
	}
	if got, _ := body["status"].(string); got != "ok" {
		t.Fatalf("expected payload key to survive, got %v", body["status"])
	}
	if got, _ := body["time_stamp"].(string); got != "2025-03-14T09:26:53Z" {
		t.Fatalf("unexpected time_stamp: %v", body["time_stamp"])
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_MapsKnownKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"validation", fmt.Errorf("%w: bad payload", usecase.ErrValidation), http.StatusBadRequest, "validation_error"},
		{"conflict", fmt.Errorf("%w: email taken", usecase.ErrConflict), http.StatusConflict, "conflict"},
		{"not found", fmt.Errorf("%w: team 9", usecase.ErrNotFound), http.StatusNotFound, "not_found"},
		{"auth", fmt.Errorf("%w: bad token", usecase.ErrAuth), http.StatusUnauthorized, "auth_error"},
		{"forbidden", fmt.Errorf("%w: admin only", usecase.ErrForbidden), http.StatusForbidden, "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var body map[string]any
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if got, _ := body["error"].(string); got != tt.wantReason {
				t.Fatalf("expected error=%q, got %v", tt.wantReason, body["error"])
			}
			if got, _ := body["msg"].(string); got != tt.err.Error() {
				t.Fatalf("expected msg=%q, got %v", tt.err.Error(), body["msg"])
			}
		})
	}
}

func TestWriteError_UnknownKindHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["msg"].(string); got != "internal server error" {
		t.Fatalf("expected fixed internal message, got %v", body["msg"])
	}
	if got, _ := body["error"].(string); got != "internal_error" {
		t.Fatalf("expected error=internal_error, got %v", body["error"])
	}
}
