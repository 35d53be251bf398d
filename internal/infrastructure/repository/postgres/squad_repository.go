package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/squad"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type squadTableModel struct {
	ID          int64     `db:"id"`
	TeamID      int64     `db:"team_id"`
	PlayerID    int64     `db:"player_id"`
	SquadNumber int       `db:"squad_number"`
	Season      string    `db:"season"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	IsActive    bool      `db:"is_active"`
	IsDeleted   bool      `db:"is_deleted"`
}

func (m squadTableModel) toDomain() squad.Membership {
	return squad.Membership{
		ID:          m.ID,
		TeamID:      m.TeamID,
		PlayerID:    m.PlayerID,
		SquadNumber: m.SquadNumber,
		Season:      m.Season,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		IsActive:    m.IsActive,
		IsDeleted:   m.IsDeleted,
	}
}

type squadInsertModel struct {
	TeamID      int64  `db:"team_id"`
	PlayerID    int64  `db:"player_id"`
	SquadNumber int    `db:"squad_number"`
	Season      string `db:"season"`
	IsActive    bool   `db:"is_active"`
}

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) Create(ctx context.Context, m *squad.Membership) error {
	insertModel := squadInsertModel{
		TeamID:      m.TeamID,
		PlayerID:    m.PlayerID,
		SquadNumber: m.SquadNumber,
		Season:      m.Season,
		IsActive:    m.IsActive,
	}
	query, args, err := qb.InsertModel("team_squads", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create squad membership query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		switch {
		case uniqueViolation(err, "team_squads_membership"):
			return squad.ErrDuplicateMembership
		case foreignKeyViolation(err):
			return storage.ErrNotFound
		}
		return fmt.Errorf("create squad membership: %w", err)
	}

	return nil
}

func (r *SquadRepository) ListByTeam(ctx context.Context, teamID int64) ([]squad.Membership, error) {
	query, args, err := qb.Select("*").From("team_squads").
		Where(qb.Eq("team_id", teamID), qb.Eq("is_deleted", false)).
		OrderBy("squad_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list squad memberships query: %w", err)
	}

	var rows []squadTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list squad memberships: %w", err)
	}

	out := make([]squad.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SquadRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "team_squads", id)
}

func (r *SquadRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "team_squads", id)
}

func (r *SquadRepository) HardDelete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "team_squads", id, nil)
}
