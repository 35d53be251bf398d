package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type matchTableModel struct {
	ID            int64     `db:"id"`
	CompetitionID *int64    `db:"competition_id"`
	HomeTeamID    int64     `db:"home_team_id"`
	AwayTeamID    int64     `db:"away_team_id"`
	HomeScore     int       `db:"home_score"`
	AwayScore     int       `db:"away_score"`
	AddedTime     int       `db:"added_time"`
	ExtraTime     int       `db:"extra_time"`
	Status        string    `db:"status"`
	MatchDate     string    `db:"match_date"`
	MatchTime     string    `db:"match_time"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	IsActive      bool      `db:"is_active"`
	IsDeleted     bool      `db:"is_deleted"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		AddedTime:     m.AddedTime,
		ExtraTime:     m.ExtraTime,
		Status:        match.Status(m.Status),
		MatchDate:     m.MatchDate,
		MatchTime:     m.MatchTime,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		IsActive:      m.IsActive,
		IsDeleted:     m.IsDeleted,
	}
}

type matchInsertModel struct {
	CompetitionID *int64 `db:"competition_id"`
	HomeTeamID    int64  `db:"home_team_id"`
	AwayTeamID    int64  `db:"away_team_id"`
	HomeScore     int    `db:"home_score"`
	AwayScore     int    `db:"away_score"`
	AddedTime     int    `db:"added_time"`
	ExtraTime     int    `db:"extra_time"`
	Status        string `db:"status"`
	MatchDate     string `db:"match_date"`
	MatchTime     string `db:"match_time"`
	IsActive      bool   `db:"is_active"`
}

type lineupTableModel struct {
	ID         int64     `db:"id"`
	MatchID    int64     `db:"match_id"`
	TeamID     int64     `db:"team_id"`
	PlayerID   int64     `db:"player_id"`
	IsStarting bool      `db:"is_starting"`
	Position   string    `db:"position"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	IsActive   bool      `db:"is_active"`
	IsDeleted  bool      `db:"is_deleted"`
}

func (m lineupTableModel) toDomain() match.Lineup {
	return match.Lineup{
		ID:         m.ID,
		MatchID:    m.MatchID,
		TeamID:     m.TeamID,
		PlayerID:   m.PlayerID,
		IsStarting: m.IsStarting,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		IsActive:   m.IsActive,
		IsDeleted:  m.IsDeleted,
	}
}

type statsTableModel struct {
	ID             int64     `db:"id"`
	MatchID        int64     `db:"match_id"`
	TeamID         int64     `db:"team_id"`
	Possession     float64   `db:"possession"`
	ShotsOnTarget  int       `db:"shots_on_target"`
	ShotsOffTarget int       `db:"shots_off_target"`
	Corners        int       `db:"corners"`
	Fouls          int       `db:"fouls"`
	YellowCards    int       `db:"yellow_cards"`
	RedCards       int       `db:"red_cards"`
	Saves          int       `db:"saves"`
	Offsides       int       `db:"offsides"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	IsActive       bool      `db:"is_active"`
	IsDeleted      bool      `db:"is_deleted"`
}

func (m statsTableModel) toDomain() match.Stats {
	return match.Stats{
		ID:             m.ID,
		MatchID:        m.MatchID,
		TeamID:         m.TeamID,
		Possession:     m.Possession,
		ShotsOnTarget:  m.ShotsOnTarget,
		ShotsOffTarget: m.ShotsOffTarget,
		Corners:        m.Corners,
		Fouls:          m.Fouls,
		YellowCards:    m.YellowCards,
		RedCards:       m.RedCards,
		Saves:          m.Saves,
		Offsides:       m.Offsides,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		IsActive:       m.IsActive,
		IsDeleted:      m.IsDeleted,
	}
}

type eventTableModel struct {
	ID        int64     `db:"id"`
	MatchID   int64     `db:"match_id"`
	TeamID    int64     `db:"team_id"`
	PlayerID  int64     `db:"player_id"`
	Type      string    `db:"event_type"`
	EventTime string    `db:"event_time"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	IsActive  bool      `db:"is_active"`
	IsDeleted bool      `db:"is_deleted"`
}

func (m eventTableModel) toDomain() match.Event {
	return match.Event{
		ID:        m.ID,
		MatchID:   m.MatchID,
		TeamID:    m.TeamID,
		PlayerID:  m.PlayerID,
		Type:      match.EventType(m.Type),
		EventTime: m.EventTime,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		IsActive:  m.IsActive,
		IsDeleted: m.IsDeleted,
	}
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m *match.Match) error {
	insertModel := matchInsertModel{
		CompetitionID: m.CompetitionID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		AddedTime:     m.AddedTime,
		ExtraTime:     m.ExtraTime,
		Status:        string(m.Status),
		MatchDate:     m.MatchDate,
		MatchTime:     m.MatchTime,
		IsActive:      m.IsActive,
	}
	query, args, err := qb.InsertModel("matches", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("create match: %w", err)
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (*match.Match, error) {
	query, args, err := qb.Select("*").From("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get match: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("match_date DESC", "match_time DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) UpdateScore(ctx context.Context, id int64, u match.ScoreUpdate) (*match.Match, error) {
	query, args, err := qb.Update("matches").
		Set("home_score", u.HomeScore).
		Set("away_score", u.AwayScore).
		Set("added_time", u.AddedTime).
		Set("extra_time", u.ExtraTime).
		Set("status", string(u.Status)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Returning("*").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build update match score query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("update match score: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *MatchRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "matches", id)
}

func (r *MatchRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "matches", id)
}

func (r *MatchRepository) HardDelete(ctx context.Context, id int64) error {
	// Lineups, stats and events cascade with the row.
	return deleteRow(ctx, r.db, "matches", id, match.ErrInUse)
}

func (r *MatchRepository) AddLineup(ctx context.Context, l *match.Lineup) error {
	matchRow, err := r.GetByID(ctx, l.MatchID)
	if err != nil {
		return err
	}
	if l.TeamID != matchRow.HomeTeamID && l.TeamID != matchRow.AwayTeamID {
		return match.ErrTeamNotInMatch
	}

	query, args, err := qb.InsertInto("match_lineups").
		Columns("match_id", "team_id", "player_id", "is_starting", "position", "is_active").
		Values(l.MatchID, l.TeamID, l.PlayerID, l.IsStarting, l.Position, l.IsActive).
		Returning("id", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add lineup query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("add lineup: %w", err)
	}

	return nil
}

func (r *MatchRepository) ListLineupsByMatch(ctx context.Context, matchID int64) ([]match.Lineup, error) {
	query, args, err := qb.Select("*").From("match_lineups").
		Where(qb.Eq("match_id", matchID), qb.Eq("is_deleted", false)).
		OrderBy("team_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}

	out := make([]match.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) AddStats(ctx context.Context, st *match.Stats) error {
	query, args, err := qb.InsertInto("match_stats").
		Columns("match_id", "team_id", "possession", "shots_on_target", "shots_off_target",
			"corners", "fouls", "yellow_cards", "red_cards", "saves", "offsides", "is_active").
		Values(st.MatchID, st.TeamID, st.Possession, st.ShotsOnTarget, st.ShotsOffTarget,
			st.Corners, st.Fouls, st.YellowCards, st.RedCards, st.Saves, st.Offsides, st.IsActive).
		Returning("id", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add match stats query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("add match stats: %w", err)
	}

	return nil
}

func (r *MatchRepository) ListStatsByMatch(ctx context.Context, matchID int64) ([]match.Stats, error) {
	query, args, err := qb.Select("*").From("match_stats").
		Where(qb.Eq("match_id", matchID), qb.Eq("is_deleted", false)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match stats query: %w", err)
	}

	var rows []statsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match stats: %w", err)
	}

	out := make([]match.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) AddEvent(ctx context.Context, e *match.Event) error {
	query, args, err := qb.InsertInto("match_events").
		Columns("match_id", "team_id", "player_id", "event_type", "event_time", "is_active").
		Values(e.MatchID, e.TeamID, e.PlayerID, string(e.Type), e.EventTime, e.IsActive).
		Returning("id", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add match event query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("add match event: %w", err)
	}

	return nil
}

func (r *MatchRepository) ListEventsByMatch(ctx context.Context, matchID int64) ([]match.Event, error) {
	query, args, err := qb.Select("*").From("match_events").
		Where(qb.Eq("match_id", matchID), qb.Eq("is_deleted", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
