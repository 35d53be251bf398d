package httpapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/team"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/infrastructure/token"
	"github.com/nkoroi/county-league/internal/platform/blobstore"
	"github.com/nkoroi/county-league/internal/platform/logging"
	"github.com/nkoroi/county-league/internal/usecase"
)

type apiFixture struct {
	router http.Handler
	store  *memory.Store
	users  *usecase.UserService
	audit  *usecase.AuditLogger
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := memory.NewStore()
	viewReader := store.Views()

	tokens, err := token.NewManager("test-secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	auth, err := usecase.NewAuthService(store.Users(), tokens)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}

	blobs, err := blobstore.New(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("new blobstore: %v", err)
	}

	logger := logging.NewNop()
	audit, err := usecase.NewAuditLogger(store.AuditLogs(), 2, logger)
	if err != nil {
		t.Fatalf("new audit logger: %v", err)
	}
	t.Cleanup(audit.Close)

	users := usecase.NewUserService(store.Users())
	handler := NewHandler(HandlerConfig{
		Auth:           auth,
		Users:          users,
		Counties:       usecase.NewCountyService(store.Counties()),
		Teams:          usecase.NewTeamService(store.Teams(), viewReader),
		Players:        usecase.NewPlayerService(store.Players()),
		Squads:         usecase.NewSquadService(store.Squads(), viewReader),
		Competitions:   usecase.NewCompetitionService(store.Competitions(), store.Standings(), viewReader),
		Matches:        usecase.NewMatchService(store.Matches(), viewReader),
		News:           usecase.NewNewsService(store.News()),
		Media:          usecase.NewMediaService(store.Media(), blobs),
		Audit:          audit,
		Blobs:          blobs,
		MaxUploadBytes: 1 << 20,
		Logger:         logger,
	})

	return &apiFixture{
		router: NewRouter(handler, auth, logger, []string{"*"}),
		store:  store,
		users:  users,
		audit:  audit,
	}
}

func (f *apiFixture) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func (f *apiFixture) registerAndLogin(t *testing.T, username, email, password string) (int64, string) {
	t.Helper()
	return f.registerAndLoginAs(t, username, email, password, "")
}

func (f *apiFixture) registerAndLoginAs(t *testing.T, username, email, password, role string) (int64, string) {
	t.Helper()

	form := url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
		"phone":    {"+254712345678"},
	}
	if role != "" {
		form.Set("role", role)
	}
	req := httptest.NewRequest(http.MethodPost, "/auths/register_user", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, body := f.do(t, req)
	if status != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d (%v)", status, body)
	}

	login := `{"email":"` + email + `","password":"` + password + `"}`
	req = httptest.NewRequest(http.MethodPost, "/auths/user_login", strings.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	status, body = f.do(t, req)
	if status != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d (%v)", status, body)
	}

	accessToken, _ := body["access_token"].(string)
	if accessToken == "" {
		t.Fatalf("login: missing access_token in %v", body)
	}
	account, _ := body["user"].(map[string]any)
	id, _ := account["id"].(float64)
	if id <= 0 {
		t.Fatalf("login: missing user id in %v", body)
	}
	return int64(id), accessToken
}

func TestRouter_RegisterLoginAndGetUser(t *testing.T) {
	f := newAPIFixture(t)

	_, accessToken := f.registerAndLogin(t, "akinyi", "akinyi@example.com", "correct horse")

	req := httptest.NewRequest(http.MethodGet, "/users/get_user", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	status, body := f.do(t, req)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%v)", status, body)
	}

	account, _ := body["user"].(map[string]any)
	if got, _ := account["username"].(string); got != "akinyi" {
		t.Fatalf("expected username akinyi, got %v", account["username"])
	}
	if got, _ := account["role"].(string); got != "user" {
		t.Fatalf("role must default to user, got %v", account["role"])
	}
	if _, ok := account["password"]; ok {
		t.Fatal("password material must never appear in a response")
	}
}

func TestRouter_RegisterDuplicateEmailConflicts(t *testing.T) {
	f := newAPIFixture(t)

	f.registerAndLogin(t, "akinyi", "akinyi@example.com", "correct horse")

	form := url.Values{
		"username": {"otieno"},
		"email":    {"akinyi@example.com"},
		"password": {"another pass"},
		"phone":    {"+254798765432"},
	}
	req := httptest.NewRequest(http.MethodPost, "/auths/register_user", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, body := f.do(t, req)
	if status != http.StatusConflict {
		t.Fatalf("expected status 409, got %d (%v)", status, body)
	}
	if got, _ := body["error"].(string); got != "conflict" {
		t.Fatalf("expected error=conflict, got %v", body["error"])
	}
}

func TestRouter_GetUserWithoutTokenIsRejected(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, httptest.NewRequest(http.MethodGet, "/users/get_user", nil))
	if status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d (%v)", status, body)
	}
	if got, _ := body["error"].(string); got != "auth_error" {
		t.Fatalf("expected error=auth_error, got %v", body["error"])
	}
}

func TestRouter_AdminRouteForbiddenForPlainUser(t *testing.T) {
	f := newAPIFixture(t)

	_, accessToken := f.registerAndLogin(t, "baraka", "baraka@example.com", "sekret pass")

	req := httptest.NewRequest(http.MethodPost, "/teams/create_county", strings.NewReader(`{"name":"Kisumu"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	status, body := f.do(t, req)
	if status != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d (%v)", status, body)
	}
}

func TestRouter_AdminFlowRecordsAudit(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	// Registering with role=admin is how a fresh deployment gets its
	// first admin account.
	userID, accessToken := f.registerAndLoginAs(t, "chebet", "chebet@example.com", "long enough", "admin")

	req := httptest.NewRequest(http.MethodPost, "/teams/create_county", strings.NewReader(`{"name":"Vihiga"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	status, body := f.do(t, req)
	if status != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%v)", status, body)
	}

	status, body = f.do(t, httptest.NewRequest(http.MethodGet, "/teams/get_all_counties", nil))
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%v)", status, body)
	}
	counties, _ := body["counties"].([]any)
	if len(counties) != 1 {
		t.Fatalf("expected one county, got %v", body["counties"])
	}

	// Audit writes are asynchronous; drain before reading.
	f.audit.Close()
	entries, err := f.audit.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list audit entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	if entries[0].Action != "create_county" || entries[0].UserID != userID {
		t.Fatalf("unexpected audit entry: %+v", entries[0])
	}
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%v)", status, body)
	}
	if got, _ := body["status"].(string); got != "ok" {
		t.Fatalf("expected status=ok, got %v", body["status"])
	}
}

func TestRouter_UnknownJSONFieldRejected(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/teams/get_team", strings.NewReader(`{"team_id":1,"bogus":true}`))
	req.Header.Set("Content-Type", "application/json")
	status, body := f.do(t, req)
	if status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%v)", status, body)
	}
	if got, _ := body["error"].(string); got != "validation_error" {
		t.Fatalf("expected error=validation_error, got %v", body["error"])
	}
}

func TestRouter_GetCompetitionsIncludesMatches(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	home := team.Team{Name: "Gor Mahia", IsActive: true}
	if err := f.store.Teams().Create(ctx, &home); err != nil {
		t.Fatalf("create home team: %v", err)
	}
	away := team.Team{Name: "AFC Leopards", IsActive: true}
	if err := f.store.Teams().Create(ctx, &away); err != nil {
		t.Fatalf("create away team: %v", err)
	}
	comp := competition.Competition{Name: "County Cup", Season: "2026", Type: competition.TypeKnockout, IsActive: true}
	if err := f.store.Competitions().Create(ctx, &comp); err != nil {
		t.Fatalf("create competition: %v", err)
	}
	m := match.Match{
		CompetitionID: &comp.ID,
		HomeTeamID:    home.ID,
		AwayTeamID:    away.ID,
		Status:        match.StatusScheduled,
		MatchDate:     "2026-10-03",
		MatchTime:     "15:00",
		IsActive:      true,
	}
	if err := f.store.Matches().Create(ctx, &m); err != nil {
		t.Fatalf("create match: %v", err)
	}

	status, body := f.do(t, httptest.NewRequest(http.MethodGet, "/teams/get_competitions", nil))
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%v)", status, body)
	}

	competitions, _ := body["competitions"].([]any)
	if len(competitions) != 1 {
		t.Fatalf("expected one competition, got %v", body["competitions"])
	}
	comMatches, _ := body["com_matches"].(map[string]any)
	matches, _ := comMatches[strconv.FormatInt(comp.ID, 10)].([]any)
	if len(matches) != 1 {
		t.Fatalf("expected the competition's match listed, got %v", body["com_matches"])
	}
	row, _ := matches[0].(map[string]any)
	if got, _ := row["home_team_id"].(float64); int64(got) != home.ID {
		t.Fatalf("expected home_team_id %d, got %v", home.ID, row["home_team_id"])
	}
}

func TestRouter_RegisterTeamRejectsBadLogoType(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", "Bandari FC"); err != nil {
		t.Fatalf("write name field: %v", err)
	}
	part, err := mw.CreateFormFile("logo", "crest.exe")
	if err != nil {
		t.Fatalf("create logo part: %v", err)
	}
	if _, err := part.Write([]byte("not an image")); err != nil {
		t.Fatalf("write logo part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/teams/register_team", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	status, body := f.do(t, req)
	if status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%v)", status, body)
	}
	if got, _ := body["error"].(string); got != "validation_error" {
		t.Fatalf("expected error=validation_error, got %v", body["error"])
	}

	teams, err := f.store.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no team row written, got %d", len(teams))
	}
}
