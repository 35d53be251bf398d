package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/team"
	"github.com/nkoroi/county-league/internal/usecase"
)

// RegisterTeam creates a team from multipart form data. A logo with a
// disallowed extension fails the whole request; no team row is written.
func (h *Handler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterTeam")
	defer span.End()

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	fields, err := requiredForm(r, "name")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// The form field carries the county id but keeps the bare name
	// clients already send.
	var countyID *int64
	if raw := strings.TrimSpace(r.FormValue("county")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(ctx, w, invalidField("county"))
			return
		}
		countyID = &id
	}

	logo, err := h.saveOptionalFile(r, "logo")
	if err != nil {
		h.fail(ctx, w, "save team logo", err)
		return
	}

	created, err := h.teams.Create(ctx, usecase.CreateTeamInput{
		Name:     fields["name"],
		Logo:     logo,
		CountyID: countyID,
	})
	if err != nil {
		h.fail(ctx, w, "register team", err)
		return
	}

	detail, err := h.teams.Detail(ctx, created.ID)
	if err != nil {
		h.fail(ctx, w, "get created team detail", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, payload{
		"team":      teamToDTO(*created),
		"team_data": teamDetailToDTO(*detail),
	})
}

func (h *Handler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllTeams")
	defer span.End()

	teams, err := h.teams.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams", err)
		return
	}

	items := make([]teamSummaryDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamSummaryToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"teams": items})
}

type teamIDRequest struct {
	TeamID int64 `json:"team_id" validate:"required,gt=0"`
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	var req teamIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.teams.Detail(ctx, req.TeamID)
	if err != nil {
		h.fail(ctx, w, "get team", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload{"team": teamDetailToDTO(*detail)})
}

type updateTeamRequest struct {
	TeamID   int64   `json:"team_id" validate:"required,gt=0"`
	Name     *string `json:"name,omitempty"`
	Logo     *string `json:"logo,omitempty"`
	CountyID *int64  `json:"county_id,omitempty"`
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	var req updateTeamRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teams.Update(ctx, req.TeamID, team.Update{
		Name:     req.Name,
		Logo:     req.Logo,
		CountyID: req.CountyID,
	})
	if err != nil {
		h.fail(ctx, w, "update team", err)
		return
	}

	h.recordAudit(ctx, "update_team", &updated.ID)
	writeSuccess(ctx, w, http.StatusOK, payload{"team": teamToDTO(*updated)})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	var req teamIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teams.SoftDelete(ctx, req.TeamID); err != nil {
		h.fail(ctx, w, "delete team", err)
		return
	}

	h.recordAudit(ctx, "delete_team", &req.TeamID)
	writeSuccess(ctx, w, http.StatusOK, payload{"team_id": req.TeamID})
}

func (h *Handler) RestoreTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreTeam")
	defer span.End()

	var req teamIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teams.Restore(ctx, req.TeamID); err != nil {
		h.fail(ctx, w, "restore team", err)
		return
	}

	h.recordAudit(ctx, "restore_team", &req.TeamID)
	writeSuccess(ctx, w, http.StatusOK, payload{"team_id": req.TeamID})
}

// RemoveTeam is the destructive delete. Referencing squads, matches or
// standings block it.
func (h *Handler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveTeam")
	defer span.End()

	var req teamIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teams.HardDelete(ctx, req.TeamID); err != nil {
		h.fail(ctx, w, "remove team", err)
		return
	}

	h.recordAudit(ctx, "remove_team", &req.TeamID)
	writeSuccess(ctx, w, http.StatusOK, payload{"team_id": req.TeamID})
}

// RegisterPlayer creates a player from multipart form data. Photo
// handling mirrors RegisterTeam.
func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	fields, err := requiredForm(r, "first_name", "last_name", "position")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	photo, err := h.saveOptionalFile(r, "photo")
	if err != nil {
		h.fail(ctx, w, "save player photo", err)
		return
	}

	created, err := h.players.Create(ctx, usecase.CreatePlayerInput{
		FirstName:   fields["first_name"],
		LastName:    fields["last_name"],
		Position:    player.Position(fields["position"]),
		Nationality: strings.TrimSpace(r.FormValue("nationality")),
		Photo:       photo,
	})
	if err != nil {
		h.fail(ctx, w, "register player", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, payload{"player": playerToDTO(*created)})
}

func (h *Handler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllPlayers")
	defer span.End()

	players, err := h.players.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list players", err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"players": items})
}

type updatePlayerRequest struct {
	PlayerID    int64   `json:"player_id" validate:"required,gt=0"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Position    *string `json:"position,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	Photo       *string `json:"photo,omitempty"`
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	var req updatePlayerRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	upd := player.Update{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
		Photo:       req.Photo,
	}
	if req.Position != nil {
		pos := player.Position(*req.Position)
		upd.Position = &pos
	}

	updated, err := h.players.Update(ctx, req.PlayerID, upd)
	if err != nil {
		h.fail(ctx, w, "update player", err)
		return
	}

	h.recordAudit(ctx, "update_player", &updated.ID)
	writeSuccess(ctx, w, http.StatusOK, payload{"player": playerToDTO(*updated)})
}

type playerIDRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	var req playerIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.players.SoftDelete(ctx, req.PlayerID); err != nil {
		h.fail(ctx, w, "delete player", err)
		return
	}

	h.recordAudit(ctx, "delete_player", &req.PlayerID)
	writeSuccess(ctx, w, http.StatusOK, payload{"player_id": req.PlayerID})
}

func (h *Handler) RestorePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestorePlayer")
	defer span.End()

	var req playerIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.players.Restore(ctx, req.PlayerID); err != nil {
		h.fail(ctx, w, "restore player", err)
		return
	}

	h.recordAudit(ctx, "restore_player", &req.PlayerID)
	writeSuccess(ctx, w, http.StatusOK, payload{"player_id": req.PlayerID})
}

type addToSquadRequest struct {
	TeamID      int64  `json:"team_id" validate:"required,gt=0"`
	PlayerID    int64  `json:"player_id" validate:"required,gt=0"`
	SquadNumber int    `json:"squad_number" validate:"required,gt=0"`
	Season      string `json:"season" validate:"required"`
}

func (h *Handler) AddToSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddToSquad")
	defer span.End()

	var req addToSquadRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.squads.Add(ctx, usecase.AddToSquadInput{
		TeamID:      req.TeamID,
		PlayerID:    req.PlayerID,
		SquadNumber: req.SquadNumber,
		Season:      req.Season,
	})
	if err != nil {
		h.fail(ctx, w, "add to squad", err)
		return
	}

	h.recordAudit(ctx, "add_to_squard", &m.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"squad": squadMembershipToDTO(*m)})
}

func (h *Handler) GetTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSquad")
	defer span.End()

	var req teamIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.squads.TeamSquad(ctx, req.TeamID)
	if err != nil {
		h.fail(ctx, w, "get team squad", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload{"team_squad": teamSquadViewToDTO(*view)})
}

type createCountyRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) CreateCounty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCounty")
	defer span.End()

	var req createCountyRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.counties.Create(ctx, req.Name)
	if err != nil {
		h.fail(ctx, w, "create county", err)
		return
	}

	h.recordAudit(ctx, "create_county", &created.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"county": countyToDTO(*created)})
}

func (h *Handler) GetAllCounties(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllCounties")
	defer span.End()

	counties, err := h.counties.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list counties", err)
		return
	}

	items := make([]countyDTO, 0, len(counties))
	for _, c := range counties {
		items = append(items, countyToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"counties": items})
}
