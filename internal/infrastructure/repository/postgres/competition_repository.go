package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type competitionTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Season    string    `db:"season"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	IsActive  bool      `db:"is_active"`
	IsDeleted bool      `db:"is_deleted"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:        m.ID,
		Name:      m.Name,
		Season:    m.Season,
		Type:      competition.Type(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		IsActive:  m.IsActive,
		IsDeleted: m.IsDeleted,
	}
}

type competitionInsertModel struct {
	Name     string `db:"name"`
	Season   string `db:"season"`
	Type     string `db:"type"`
	IsActive bool   `db:"is_active"`
}

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) Create(ctx context.Context, c *competition.Competition) error {
	insertModel := competitionInsertModel{
		Name:     c.Name,
		Season:   c.Season,
		Type:     string(c.Type),
		IsActive: c.IsActive,
	}
	query, args, err := qb.InsertModel("competitions", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create competition query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("create competition: %w", err)
	}

	return nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (*competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get competition: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("season DESC", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "competitions", id)
}

func (r *CompetitionRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "competitions", id)
}

func (r *CompetitionRepository) HardDelete(ctx context.Context, id int64) error {
	// Standings restrict the delete, matches and news drop the link.
	return deleteRow(ctx, r.db, "competitions", id, competition.ErrInUse)
}
