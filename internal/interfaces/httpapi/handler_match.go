package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/usecase"
)

type createCompetitionRequest struct {
	Name   string `json:"name" validate:"required"`
	Season string `json:"season" validate:"required"`
	Types  string `json:"types" validate:"required"`
}

func (h *Handler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCompetition")
	defer span.End()

	var req createCompetitionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.competitions.Create(ctx, usecase.CreateCompetitionInput{
		Name:   req.Name,
		Season: req.Season,
		Type:   competition.Type(req.Types),
	})
	if err != nil {
		h.fail(ctx, w, "create competition", err)
		return
	}

	h.recordAudit(ctx, "create_competition", &created.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"competition": competitionToDTO(*created)})
}

func (h *Handler) GetCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitions")
	defer span.End()

	competitions, err := h.competitions.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list competitions", err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	comMatches := make(map[int64][]matchDTO, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c.Competition))
		matches := make([]matchDTO, 0, len(c.Matches))
		for _, m := range c.Matches {
			matches = append(matches, matchToDTO(m))
		}
		comMatches[c.Competition.ID] = matches
	}
	writeSuccess(ctx, w, http.StatusOK, payload{
		"competitions": items,
		"com_matches":  comMatches,
	})
}

type createMatchRequest struct {
	CompetitionID *int64 `json:"competition_id,omitempty"`
	HomeTeamID    int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID    int64  `json:"away_team_id" validate:"required,gt=0"`
	MatchDate     string `json:"match_date" validate:"required"`
	MatchTime     string `json:"match_time" validate:"required"`
	MatchStatus   string `json:"match_status,omitempty"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matches.Create(ctx, usecase.CreateMatchInput{
		CompetitionID: req.CompetitionID,
		HomeTeamID:    req.HomeTeamID,
		AwayTeamID:    req.AwayTeamID,
		MatchDate:     req.MatchDate,
		MatchTime:     req.MatchTime,
		Status:        match.Status(req.MatchStatus),
	})
	if err != nil {
		h.fail(ctx, w, "create match", err)
		return
	}

	h.recordAudit(ctx, "create_match", &created.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"match": matchToDTO(*created)})
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatches")
	defer span.End()

	matches, err := h.matches.ListDetails(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches", err)
		return
	}

	items := make([]matchViewDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchViewToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"matches": items})
}

type updateMatchScoreRequest struct {
	MatchID     int64  `json:"match_id" validate:"required,gt=0"`
	HomeScore   int    `json:"home_score" validate:"gte=0"`
	AwayScore   int    `json:"away_score" validate:"gte=0"`
	MatchStatus string `json:"match_status" validate:"required"`
	AddedTime   int    `json:"added_time" validate:"gte=0"`
	ExtraTime   int    `json:"extra_time" validate:"gte=0"`
}

func (h *Handler) UpdateMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchScore")
	defer span.End()

	var req updateMatchScoreRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matches.UpdateScore(ctx, req.MatchID, match.ScoreUpdate{
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
		AddedTime: req.AddedTime,
		ExtraTime: req.ExtraTime,
		Status:    match.Status(req.MatchStatus),
	})
	if err != nil {
		h.fail(ctx, w, "update match score", err)
		return
	}

	h.recordAudit(ctx, "update_match_score", &updated.ID)
	writeSuccess(ctx, w, http.StatusOK, payload{"match": matchToDTO(*updated)})
}

type matchIDRequest struct {
	MatchID int64 `json:"match_id" validate:"required,gt=0"`
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matches.SoftDelete(ctx, req.MatchID); err != nil {
		h.fail(ctx, w, "delete match", err)
		return
	}

	h.recordAudit(ctx, "delete_match", &req.MatchID)
	writeSuccess(ctx, w, http.StatusOK, payload{"match_id": req.MatchID})
}

func (h *Handler) RestoreMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreMatch")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matches.Restore(ctx, req.MatchID); err != nil {
		h.fail(ctx, w, "restore match", err)
		return
	}

	h.recordAudit(ctx, "restore_match", &req.MatchID)
	writeSuccess(ctx, w, http.StatusOK, payload{"match_id": req.MatchID})
}

func (h *Handler) RemoveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveMatch")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matches.HardDelete(ctx, req.MatchID); err != nil {
		h.fail(ctx, w, "remove match", err)
		return
	}

	h.recordAudit(ctx, "remove_match", &req.MatchID)
	writeSuccess(ctx, w, http.StatusOK, payload{"match_id": req.MatchID})
}

type addLineupRequest struct {
	MatchID    int64  `json:"match_id" validate:"required,gt=0"`
	TeamID     int64  `json:"team_id" validate:"required,gt=0"`
	PlayerID   int64  `json:"player_id" validate:"required,gt=0"`
	IsStarting bool   `json:"is_starting"`
	Position   string `json:"position,omitempty"`
}

func (h *Handler) AddMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchLineup")
	defer span.End()

	var req addLineupRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lineup, err := h.matches.AddLineup(ctx, usecase.AddLineupInput{
		MatchID:    req.MatchID,
		TeamID:     req.TeamID,
		PlayerID:   req.PlayerID,
		IsStarting: req.IsStarting,
		Position:   req.Position,
	})
	if err != nil {
		h.fail(ctx, w, "add match lineup", err)
		return
	}

	h.recordAudit(ctx, "add_match_lineup", &lineup.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"lineup": lineupToDTO(*lineup)})
}

func (h *Handler) GetMatchLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchLineups")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lineups, err := h.matches.Lineups(ctx, req.MatchID)
	if err != nil {
		h.fail(ctx, w, "get match lineups", err)
		return
	}

	items := make([]lineupDTO, 0, len(lineups))
	for _, l := range lineups {
		items = append(items, lineupToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"lineups": items})
}

type addMatchStatsRequest struct {
	MatchID        int64   `json:"match_id" validate:"required,gt=0"`
	TeamID         int64   `json:"team_id" validate:"required,gt=0"`
	Possession     float64 `json:"possession" validate:"gte=0,lte=100"`
	ShotsOnTarget  int     `json:"shots_on_target" validate:"gte=0"`
	ShotsOffTarget int     `json:"shots_off_target" validate:"gte=0"`
	Corners        int     `json:"corners" validate:"gte=0"`
	Fouls          int     `json:"fouls" validate:"gte=0"`
	YellowCards    int     `json:"yellow_cards" validate:"gte=0"`
	RedCards       int     `json:"red_cards" validate:"gte=0"`
	Saves          int     `json:"saves" validate:"gte=0"`
	Offsides       int     `json:"offsides" validate:"gte=0"`
}

func (h *Handler) AddMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchStats")
	defer span.End()

	var req addMatchStatsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.matches.AddStats(ctx, usecase.AddStatsInput{
		MatchID:        req.MatchID,
		TeamID:         req.TeamID,
		Possession:     req.Possession,
		ShotsOnTarget:  req.ShotsOnTarget,
		ShotsOffTarget: req.ShotsOffTarget,
		Corners:        req.Corners,
		Fouls:          req.Fouls,
		YellowCards:    req.YellowCards,
		RedCards:       req.RedCards,
		Saves:          req.Saves,
		Offsides:       req.Offsides,
	})
	if err != nil {
		h.fail(ctx, w, "add match stats", err)
		return
	}

	h.recordAudit(ctx, "add_match_stats", &stats.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"stats": statsToDTO(*stats)})
}

func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStats")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.matches.Stats(ctx, req.MatchID)
	if err != nil {
		h.fail(ctx, w, "get match stats", err)
		return
	}

	items := make([]statsDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, statsToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"stats": items})
}

type addMatchEventRequest struct {
	MatchID   int64  `json:"match_id" validate:"required,gt=0"`
	TeamID    int64  `json:"team_id" validate:"required,gt=0"`
	PlayerID  int64  `json:"player_id" validate:"required,gt=0"`
	EventType string `json:"event_type" validate:"required"`
	EventTime string `json:"event_time" validate:"required"`
}

func (h *Handler) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchEvent")
	defer span.End()

	var req addMatchEventRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	event, err := h.matches.AddEvent(ctx, usecase.AddEventInput{
		MatchID:   req.MatchID,
		TeamID:    req.TeamID,
		PlayerID:  req.PlayerID,
		Type:      match.EventType(req.EventType),
		EventTime: req.EventTime,
	})
	if err != nil {
		h.fail(ctx, w, "add match event", err)
		return
	}

	h.recordAudit(ctx, "add_match_event", &event.ID)
	writeSuccess(ctx, w, http.StatusCreated, payload{"event": eventToDTO(*event)})
}

func (h *Handler) GetMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchEvents")
	defer span.End()

	var req matchIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.matches.Events(ctx, req.MatchID)
	if err != nil {
		h.fail(ctx, w, "get match events", err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"events": items})
}

type upsertStandingRequest struct {
	CompetitionID int64 `json:"competition_id" validate:"required,gt=0"`
	TeamID        int64 `json:"team_id" validate:"required,gt=0"`
	Played        int   `json:"played" validate:"gte=0"`
	Won           int   `json:"won" validate:"gte=0"`
	Drawn         int   `json:"drawn" validate:"gte=0"`
	Lost          int   `json:"lost" validate:"gte=0"`
	GoalsFor      int   `json:"goals_for" validate:"gte=0"`
	GoalsAgainst  int   `json:"goals_against" validate:"gte=0"`
	Points        int   `json:"points" validate:"gte=0"`
}

func (h *Handler) UpsertStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertStanding")
	defer span.End()

	var req upsertStandingRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	st, err := h.competitions.UpsertStanding(ctx, usecase.UpsertStandingInput{
		CompetitionID: req.CompetitionID,
		TeamID:        req.TeamID,
		Played:        req.Played,
		Won:           req.Won,
		Drawn:         req.Drawn,
		Lost:          req.Lost,
		GoalsFor:      req.GoalsFor,
		GoalsAgainst:  req.GoalsAgainst,
		Points:        req.Points,
	})
	if err != nil {
		h.fail(ctx, w, "upsert standing", err)
		return
	}

	h.recordAudit(ctx, "upsert_standing", &st.ID)
	writeSuccess(ctx, w, http.StatusOK, payload{"standing": standingToDTO(*st)})
}

// GetStandings renders the ordered table for ?competition_id=N.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	raw := strings.TrimSpace(r.URL.Query().Get("competition_id"))
	competitionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || competitionID <= 0 {
		writeError(ctx, w, invalidField("competition_id"))
		return
	}

	rows, err := h.competitions.Standings(ctx, competitionID)
	if err != nil {
		h.fail(ctx, w, "get standings", err)
		return
	}

	items := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingRowToDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"standings": items})
}
