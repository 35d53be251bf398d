package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type standingTableModel struct {
	ID            int64     `db:"id"`
	CompetitionID int64     `db:"competition_id"`
	TeamID        int64     `db:"team_id"`
	Played        int       `db:"played"`
	Won           int       `db:"won"`
	Drawn         int       `db:"drawn"`
	Lost          int       `db:"lost"`
	GoalsFor      int       `db:"goals_for"`
	GoalsAgainst  int       `db:"goals_against"`
	Points        int       `db:"points"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	IsActive      bool      `db:"is_active"`
	IsDeleted     bool      `db:"is_deleted"`
}

func (m standingTableModel) toDomain() standing.Standing {
	return standing.Standing{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		TeamID:        m.TeamID,
		Played:        m.Played,
		Won:           m.Won,
		Drawn:         m.Drawn,
		Lost:          m.Lost,
		GoalsFor:      m.GoalsFor,
		GoalsAgainst:  m.GoalsAgainst,
		Points:        m.Points,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		IsActive:      m.IsActive,
		IsDeleted:     m.IsDeleted,
	}
}

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) Upsert(ctx context.Context, st *standing.Standing) error {
	query, args, err := qb.InsertInto("standings").
		Columns("competition_id", "team_id", "played", "won", "drawn", "lost",
			"goals_for", "goals_against", "points", "is_active").
		Values(st.CompetitionID, st.TeamID, st.Played, st.Won, st.Drawn, st.Lost,
			st.GoalsFor, st.GoalsAgainst, st.Points, st.IsActive).
		Suffix(`ON CONFLICT (competition_id, team_id) DO UPDATE SET
			played = EXCLUDED.played,
			won = EXCLUDED.won,
			drawn = EXCLUDED.drawn,
			lost = EXCLUDED.lost,
			goals_for = EXCLUDED.goals_for,
			goals_against = EXCLUDED.goals_against,
			points = EXCLUDED.points,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()`).
		Returning("id", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert standing query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("upsert standing: %w", err)
	}

	return nil
}

func (r *StandingRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]standing.Standing, error) {
	return r.list(ctx, qb.Eq("competition_id", competitionID),
		"points DESC", "(goals_for - goals_against) DESC", "goals_for DESC")
}

func (r *StandingRepository) ListByTeam(ctx context.Context, teamID int64) ([]standing.Standing, error) {
	return r.list(ctx, qb.Eq("team_id", teamID), "competition_id")
}

func (r *StandingRepository) list(ctx context.Context, cond qb.Condition, orderBy ...string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(cond).
		OrderBy(orderBy...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
