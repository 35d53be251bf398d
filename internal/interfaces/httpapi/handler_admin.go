package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

const defaultAuditLogLimit = 50

// GetAuditLog lists the most recent admin actions, newest first.
// ?limit=N caps the page; zero or absent falls back to the default.
func (h *Handler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuditLog")
	defer span.End()

	limit := defaultAuditLogLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(ctx, w, invalidField("limit"))
			return
		}
		limit = n
	}

	entries, err := h.audit.ListRecent(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "list audit log", err)
		return
	}

	items := make([]auditEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, auditEntryToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"logs": items})
}
