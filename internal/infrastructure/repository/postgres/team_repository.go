package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/team"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Logo      string    `db:"logo"`
	CountyID  *int64    `db:"county_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	IsActive  bool      `db:"is_active"`
	IsDeleted bool      `db:"is_deleted"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		Logo:      m.Logo,
		CountyID:  m.CountyID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		IsActive:  m.IsActive,
		IsDeleted: m.IsDeleted,
	}
}

type teamInsertModel struct {
	Name     string `db:"name"`
	Logo     string `db:"logo"`
	CountyID *int64 `db:"county_id"`
	IsActive bool   `db:"is_active"`
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	insertModel := teamInsertModel{
		Name:     t.Name,
		Logo:     t.Logo,
		CountyID: t.CountyID,
		IsActive: t.IsActive,
	}
	query, args, err := qb.InsertModel("teams", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create team query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("create team: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	query, args, err := qb.Select("*").From("teams").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, id int64, upd team.Update) (*team.Team, error) {
	builder := qb.Update("teams").SetExpr("updated_at", "NOW()").Where(qb.Eq("id", id))
	if upd.Name != nil {
		builder.Set("name", *upd.Name)
	}
	if upd.Logo != nil {
		builder.Set("logo", *upd.Logo)
	}
	if upd.CountyID != nil {
		builder.Set("county_id", *upd.CountyID)
	}

	query, args, err := builder.Returning("*").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) || foreignKeyViolation(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("update team: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *TeamRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "teams", id)
}

func (r *TeamRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "teams", id)
}

func (r *TeamRepository) HardDelete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "teams", id, team.ErrInUse)
}
