package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/nkoroi/county-league/internal/platform/blobstore"
	"github.com/nkoroi/county-league/internal/platform/logging"
	"github.com/nkoroi/county-league/internal/usecase"
)

// maxJSONBody bounds request body decoding.
const maxJSONBody = 1 << 20

// FileStore is the blob backend behind uploads and the raw file route.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
	Open(name string) (*os.File, error)
}

type Handler struct {
	auth         *usecase.AuthService
	users        *usecase.UserService
	counties     *usecase.CountyService
	teams        *usecase.TeamService
	players      *usecase.PlayerService
	squads       *usecase.SquadService
	competitions *usecase.CompetitionService
	matches      *usecase.MatchService
	news         *usecase.NewsService
	media        *usecase.MediaService
	audit        *usecase.AuditLogger
	blobs        FileStore

	maxUploadBytes int64
	logger         *logging.Logger
	validator      *validator.Validate
}

type HandlerConfig struct {
	Auth         *usecase.AuthService
	Users        *usecase.UserService
	Counties     *usecase.CountyService
	Teams        *usecase.TeamService
	Players      *usecase.PlayerService
	Squads       *usecase.SquadService
	Competitions *usecase.CompetitionService
	Matches      *usecase.MatchService
	News         *usecase.NewsService
	Media        *usecase.MediaService
	Audit        *usecase.AuditLogger
	Blobs        FileStore

	MaxUploadBytes int64
	Logger         *logging.Logger
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		auth:           cfg.Auth,
		users:          cfg.Users,
		counties:       cfg.Counties,
		teams:          cfg.Teams,
		players:        cfg.Players,
		squads:         cfg.Squads,
		competitions:   cfg.Competitions,
		matches:        cfg.Matches,
		news:           cfg.News,
		media:          cfg.Media,
		audit:          cfg.Audit,
		blobs:          cfg.Blobs,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, payload{"status": "ok"})
}

// ServeUpload streams a stored blob back. The store rejects names that
// would escape the upload directory.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeUpload")
	defer span.End()

	name := r.PathValue("filename")
	f, err := h.blobs.Open(name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			writeError(ctx, w, fmt.Errorf("%w: file %q", usecase.ErrNotFound, name))
			return
		}
		h.logger.ErrorContext(ctx, "open upload failed", "file", name, "error", err)
		writeInternalError(ctx, w)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.ErrorContext(ctx, "stat upload failed", "file", name, "error", err)
		writeInternalError(ctx, w)
		return
	}

	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// decodeJSON reads a JSON body into dst, rejecting unknown keys and
// validating struct tags.
func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	dec := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrValidation, err)
	}
	return h.validateRequest(r, dst)
}

func (h *Handler) validateRequest(r *http.Request, req any) error {
	if err := h.validator.StructCtx(r.Context(), req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("validate request: %w", err)
		}
		return fmt.Errorf("%w: %v", usecase.ErrValidation, err)
	}
	return nil
}

// saveOptionalFile stores one multipart file if the field is present.
// An absent file is fine; a present file with a disallowed extension is
// rejected before any entity referencing it is created.
func (h *Handler) saveOptionalFile(r *http.Request, field string) (string, error) {
	f, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("%w: read %s file: %v", usecase.ErrValidation, field, err)
	}
	defer f.Close()

	if !blobstore.Allowed(header.Filename) {
		return "", fmt.Errorf("%w: %s file type is not allowed", usecase.ErrValidation, field)
	}

	ref, err := h.blobs.Save(header.Filename, f)
	if err != nil {
		return "", fmt.Errorf("save %s file: %w", field, err)
	}
	return ref, nil
}

func invalidField(name string) error {
	return fmt.Errorf("%w: field %q is invalid", usecase.ErrValidation, name)
}

func requiredForm(r *http.Request, fields ...string) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		v := strings.TrimSpace(r.FormValue(field))
		if v == "" {
			return nil, fmt.Errorf("%w: all fields required", usecase.ErrValidation)
		}
		values[field] = v
	}
	return values, nil
}

// recordAudit writes an admin-log entry for the acting principal. No
// principal means the route was registered without auth; skip silently.
func (h *Handler) recordAudit(ctx context.Context, action string, actionID *int64) {
	if h.audit == nil {
		return
	}
	principal, ok := principalFromContext(ctx)
	if !ok {
		return
	}
	h.audit.Record(principal.ID, action, actionID)
}

// fail renders a service error. Taxonomy errors pass through to the
// envelope mapping; anything else is logged and collapsed to the fixed
// internal body.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if _, known := mapError(err); known {
		writeError(ctx, w, err)
		return
	}
	h.logger.ErrorContext(ctx, op+" failed", "error", err)
	writeInternalError(ctx, w)
}
