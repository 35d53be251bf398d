package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/nkoroi/county-league/internal/config"
	"github.com/nkoroi/county-league/internal/domain/auditlog"
	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/media"
	"github.com/nkoroi/county-league/internal/domain/news"
	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/squad"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/team"
	"github.com/nkoroi/county-league/internal/domain/user"
	"github.com/nkoroi/county-league/internal/domain/views"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/memory"
	"github.com/nkoroi/county-league/internal/infrastructure/repository/postgres"
	"github.com/nkoroi/county-league/internal/infrastructure/token"
	"github.com/nkoroi/county-league/internal/interfaces/httpapi"
	"github.com/nkoroi/county-league/internal/platform/blobstore"
	"github.com/nkoroi/county-league/internal/platform/logging"
	"github.com/nkoroi/county-league/internal/usecase"
)

// stores bundles every repository behind one backend choice.
type stores struct {
	users        user.Repository
	counties     county.Repository
	teams        team.Repository
	players      player.Repository
	squads       squad.Repository
	competitions competition.Repository
	standings    standing.Repository
	matches      match.Repository
	news         news.Repository
	media        media.Repository
	auditLogs    auditlog.Repository
	views        views.Reader

	close func() error
}

func openStores(cfg config.Config) (*stores, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		st := memory.NewStore()
		return &stores{
			users:        st.Users(),
			counties:     st.Counties(),
			teams:        st.Teams(),
			players:      st.Players(),
			squads:       st.Squads(),
			competitions: st.Competitions(),
			standings:    st.Standings(),
			matches:      st.Matches(),
			news:         st.News(),
			media:        st.Media(),
			auditLogs:    st.AuditLogs(),
			views:        st.Views(),
			close:        func() error { return nil },
		}, nil

	case config.StorePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:        postgres.NewUserRepository(db),
			counties:     postgres.NewCountyRepository(db),
			teams:        postgres.NewTeamRepository(db),
			players:      postgres.NewPlayerRepository(db),
			squads:       postgres.NewSquadRepository(db),
			competitions: postgres.NewCompetitionRepository(db),
			standings:    postgres.NewStandingRepository(db),
			matches:      postgres.NewMatchRepository(db),
			news:         postgres.NewNewsRepository(db),
			media:        postgres.NewMediaRepository(db),
			auditLogs:    postgres.NewAuditLogRepository(db),
			views:        postgres.NewViewRepository(db),
			close:        db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// NewHTTPServer wires everything and returns the server plus a shutdown
// hook that drains pending audit writes and closes the store.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	st, err := openStores(cfg)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	if err != nil {
		_ = st.close()
		return nil, nil, fmt.Errorf("build token manager: %w", err)
	}

	authSvc, err := usecase.NewAuthService(st.users, tokens)
	if err != nil {
		_ = st.close()
		return nil, nil, fmt.Errorf("build auth service: %w", err)
	}

	blobs, err := blobstore.New(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		_ = st.close()
		return nil, nil, fmt.Errorf("build blob store: %w", err)
	}

	audit, err := usecase.NewAuditLogger(st.auditLogs, cfg.AuditWorkers, logger)
	if err != nil {
		_ = st.close()
		return nil, nil, fmt.Errorf("build audit logger: %w", err)
	}

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Auth:           authSvc,
		Users:          usecase.NewUserService(st.users),
		Counties:       usecase.NewCountyService(st.counties),
		Teams:          usecase.NewTeamService(st.teams, st.views),
		Players:        usecase.NewPlayerService(st.players),
		Squads:         usecase.NewSquadService(st.squads, st.views),
		Competitions:   usecase.NewCompetitionService(st.competitions, st.standings, st.views),
		Matches:        usecase.NewMatchService(st.matches, st.views),
		News:           usecase.NewNewsService(st.news),
		Media:          usecase.NewMediaService(st.media, blobs),
		Audit:          audit,
		Blobs:          blobs,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Logger:         logger,
	})

	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = st.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	shutdown := func(context.Context) error {
		audit.Close()
		return st.close()
	}

	return server, shutdown, nil
}
