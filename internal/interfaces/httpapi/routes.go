package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /uploads/{filename}", handler.ServeUpload)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /auths/register_user", handler.RegisterUser)
	mux.HandleFunc("POST /auths/user_login", handler.UserLogin)
	mux.HandleFunc("POST /auths/refresh_token", handler.RefreshToken)

	mux.HandleFunc("POST /teams/register_team", handler.RegisterTeam)
	mux.HandleFunc("GET /teams/get_all_teams", handler.GetAllTeams)
	mux.HandleFunc("POST /teams/get_team", handler.GetTeam)
	mux.HandleFunc("POST /teams/register_player", handler.RegisterPlayer)
	mux.HandleFunc("GET /teams/get_all_players", handler.GetAllPlayers)
	// The squad route name carries a historical misspelling clients rely on.
	mux.HandleFunc("POST /teams/get_team_squard", handler.GetTeamSquad)
	mux.HandleFunc("GET /teams/get_all_counties", handler.GetAllCounties)

	mux.HandleFunc("GET /teams/get_matches", handler.GetMatches)
	mux.HandleFunc("GET /teams/get_competitions", handler.GetCompetitions)
	mux.HandleFunc("GET /teams/get_standings", handler.GetStandings)
	mux.HandleFunc("POST /teams/get_match_lineups", handler.GetMatchLineups)
	mux.HandleFunc("POST /teams/get_match_stats", handler.GetMatchStats)
	mux.HandleFunc("POST /teams/get_match_events", handler.GetMatchEvents)

	mux.HandleFunc("GET /news/get_all_news", handler.GetAllNews)
	mux.HandleFunc("POST /media/get_match_media", handler.GetMatchMedia)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /users/get_user", RequireAuth(verifier, http.HandlerFunc(handler.GetUser)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(verifier, h)
	}

	mux.Handle("GET /users/get_all_users", admin(handler.ListUsers))
	mux.Handle("POST /users/update_user", admin(handler.UpdateUser))
	mux.Handle("POST /users/delete_user", admin(handler.DeleteUser))
	mux.Handle("POST /users/restore_user", admin(handler.RestoreUser))

	mux.Handle("POST /teams/create_county", admin(handler.CreateCounty))
	mux.Handle("POST /teams/update_team", admin(handler.UpdateTeam))
	mux.Handle("POST /teams/delete_team", admin(handler.DeleteTeam))
	mux.Handle("POST /teams/restore_team", admin(handler.RestoreTeam))
	mux.Handle("POST /teams/remove_team", admin(handler.RemoveTeam))
	mux.Handle("POST /teams/update_player", admin(handler.UpdatePlayer))
	mux.Handle("POST /teams/delete_player", admin(handler.DeletePlayer))
	mux.Handle("POST /teams/restore_player", admin(handler.RestorePlayer))
	mux.Handle("POST /teams/add_to_squard", admin(handler.AddToSquad))

	mux.Handle("POST /teams/create_competition", admin(handler.CreateCompetition))
	mux.Handle("POST /teams/create_match", admin(handler.CreateMatch))
	mux.Handle("POST /teams/update_match_score", admin(handler.UpdateMatchScore))
	mux.Handle("POST /teams/delete_match", admin(handler.DeleteMatch))
	mux.Handle("POST /teams/restore_match", admin(handler.RestoreMatch))
	mux.Handle("POST /teams/remove_match", admin(handler.RemoveMatch))
	mux.Handle("POST /teams/add_match_lineup", admin(handler.AddMatchLineup))
	mux.Handle("POST /teams/add_match_stats", admin(handler.AddMatchStats))
	mux.Handle("POST /teams/add_match_event", admin(handler.AddMatchEvent))
	mux.Handle("POST /teams/upsert_standing", admin(handler.UpsertStanding))

	mux.Handle("POST /news/create_news", admin(handler.CreateNews))
	mux.Handle("POST /news/delete_news", admin(handler.DeleteNews))
	mux.Handle("POST /news/restore_news", admin(handler.RestoreNews))

	mux.Handle("POST /media/upload_media", admin(handler.UploadMedia))

	mux.Handle("GET /admin/get_audit_log", admin(handler.GetAuditLog))
}
