package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type countyTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	IsActive  bool      `db:"is_active"`
	IsDeleted bool      `db:"is_deleted"`
}

func (m countyTableModel) toDomain() county.County {
	return county.County{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		IsActive:  m.IsActive,
		IsDeleted: m.IsDeleted,
	}
}

type CountyRepository struct {
	db *sqlx.DB
}

func NewCountyRepository(db *sqlx.DB) *CountyRepository {
	return &CountyRepository{db: db}
}

func (r *CountyRepository) Create(ctx context.Context, c *county.County) error {
	query, args, err := qb.InsertInto("counties").
		Columns("name", "is_active").
		Values(c.Name, c.IsActive).
		Returning("id", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build create county query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if uniqueViolation(err, "counties_name") {
			return county.ErrNameTaken
		}
		return fmt.Errorf("create county: %w", err)
	}

	return nil
}

func (r *CountyRepository) GetByID(ctx context.Context, id int64) (*county.County, error) {
	query, args, err := qb.Select("*").From("counties").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get county query: %w", err)
	}

	var row countyTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get county: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *CountyRepository) List(ctx context.Context) ([]county.County, error) {
	query, args, err := qb.Select("*").From("counties").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list counties query: %w", err)
	}

	var rows []countyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list counties: %w", err)
	}

	out := make([]county.County, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CountyRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "counties", id)
}

func (r *CountyRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "counties", id)
}

func (r *CountyRepository) HardDelete(ctx context.Context, id int64) error {
	// teams.county_id is ON DELETE SET NULL, nothing blocks the delete.
	return deleteRow(ctx, r.db, "counties", id, nil)
}
