package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nkoroi/county-league/internal/usecase"
)

type createNewsRequest struct {
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	Image         string `json:"image,omitempty"`
	TeamID        *int64 `json:"team_id,omitempty" validate:"omitempty,gt=0"`
	MatchID       *int64 `json:"match_id,omitempty" validate:"omitempty,gt=0"`
	CompetitionID *int64 `json:"competition_id,omitempty" validate:"omitempty,gt=0"`
}

// CreateNews publishes an article attributed to the calling admin.
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	var req createNewsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var authorID *int64
	if principal, ok := principalFromContext(ctx); ok {
		authorID = &principal.ID
	}

	article, err := h.news.Create(ctx, usecase.CreateNewsInput{
		Title:         req.Title,
		Content:       req.Content,
		Image:         req.Image,
		AuthorID:      authorID,
		TeamID:        req.TeamID,
		MatchID:       req.MatchID,
		CompetitionID: req.CompetitionID,
	})
	if err != nil {
		h.fail(ctx, w, "create news", err)
		return
	}

	h.recordAudit(ctx, "create_news", &article.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"news": newsToDTO(*article)})
}

func (h *Handler) GetAllNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllNews")
	defer span.End()

	articles, err := h.news.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list news", err)
		return
	}

	items := make([]newsDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsToDTO(a))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"news": items})
}

type newsIDRequest struct {
	NewsID int64 `json:"news_id" validate:"required,gt=0"`
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	var req newsIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.news.SoftDelete(ctx, req.NewsID); err != nil {
		h.fail(ctx, w, "delete news", err)
		return
	}

	h.recordAudit(ctx, "delete_news", &req.NewsID)
	writeSuccess(ctx, w, http.StatusOK, payload{"news_id": req.NewsID})
}

func (h *Handler) RestoreNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreNews")
	defer span.End()

	var req newsIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.news.Restore(ctx, req.NewsID); err != nil {
		h.fail(ctx, w, "restore news", err)
		return
	}

	h.recordAudit(ctx, "restore_news", &req.NewsID)
	writeSuccess(ctx, w, http.StatusOK, payload{"news_id": req.NewsID})
}

// UploadMedia stores a multipart file and its metadata row.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadMedia")
	defer span.End()

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, invalidField("file"))
		return
	}
	defer file.Close()

	matchID, err := optionalFormID(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := optionalFormID(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := optionalFormID(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var uploadedBy *int64
	if principal, ok := principalFromContext(ctx); ok {
		uploadedBy = &principal.ID
	}

	item, err := h.media.Upload(ctx, usecase.UploadMediaInput{
		FileName:   header.Filename,
		Content:    file,
		Caption:    strings.TrimSpace(r.FormValue("caption")),
		MatchID:    matchID,
		TeamID:     teamID,
		PlayerID:   playerID,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		h.fail(ctx, w, "upload media", err)
		return
	}

	h.recordAudit(ctx, "upload_media", &item.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"media": mediaToDTO(*item)})
}

func (h *Handler) GetMatchMedia(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchMedia")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.media.ListByMatch(ctx, req.MatchID)
	if err != nil {
		h.fail(ctx, w, "list match media", err)
		return
	}

	dtos := make([]mediaDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, mediaToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"media": dtos})
}

func optionalFormID(r *http.Request, field string) (*int64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, invalidField(field)
	}
	return &id, nil
}
