package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/nkoroi/county-league/internal/usecase"
)

// payload is the per-endpoint key set merged into the response envelope.
type payload map[string]any

type mappedError struct {
	HTTPStatus int
	Reason     string
}

// responseNow is swapped in tests to pin the envelope timestamp.
var responseNow = time.Now

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body payload) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(body); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"msg":"internal server error","error":"internal_error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeSuccess merges data into the envelope and stamps msg/time_stamp.
func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data payload) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	body := make(payload, len(data)+2)
	for k, v := range data {
		body[k] = v
	}
	body["msg"] = "ok"
	body["time_stamp"] = responseNow().UTC().Format(time.RFC3339)

	writeJSON(ctx, w, status, body)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped, known := mapError(err)
	if !known {
		writeInternalError(ctx, w)
		return
	}

	writeJSON(ctx, w, mapped.HTTPStatus, payload{
		"msg":        err.Error(),
		"error":      mapped.Reason,
		"time_stamp": responseNow().UTC().Format(time.RFC3339),
	})
}

// writeInternalError renders the fixed 500 body. Internal failure detail
// never reaches the client.
func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, payload{
		"msg":        "internal server error",
		"error":      "internal_error",
		"time_stamp": responseNow().UTC().Format(time.RFC3339),
	})
}

func mapError(err error) (mappedError, bool) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "validation_error"}, true
	case errors.Is(err, usecase.ErrConflict):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "conflict"}, true
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "not_found"}, true
	case errors.Is(err, usecase.ErrAuth):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "auth_error"}, true
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{HTTPStatus: http.StatusForbidden, Reason: "forbidden"}, true
	default:
		return mappedError{}, false
	}
}
