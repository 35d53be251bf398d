package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID          int64     `db:"id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Position    string    `db:"position"`
	Nationality string    `db:"nationality"`
	Photo       string    `db:"photo"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	IsActive    bool      `db:"is_active"`
	IsDeleted   bool      `db:"is_deleted"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Position:    player.Position(m.Position),
		Nationality: m.Nationality,
		Photo:       m.Photo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		IsActive:    m.IsActive,
		IsDeleted:   m.IsDeleted,
	}
}

type playerInsertModel struct {
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Position    string `db:"position"`
	Nationality string `db:"nationality"`
	Photo       string `db:"photo"`
	IsActive    bool   `db:"is_active"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p *player.Player) error {
	insertModel := playerInsertModel{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Position:    string(p.Position),
		Nationality: p.Nationality,
		Photo:       p.Photo,
		IsActive:    p.IsActive,
	}
	query, args, err := qb.InsertModel("players", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*player.Player, error) {
	query, args, err := qb.Select("*").From("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, id int64, upd player.Update) (*player.Player, error) {
	builder := qb.Update("players").SetExpr("updated_at", "NOW()").Where(qb.Eq("id", id))
	if upd.FirstName != nil {
		builder.Set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		builder.Set("last_name", *upd.LastName)
	}
	if upd.Position != nil {
		builder.Set("position", string(*upd.Position))
	}
	if upd.Nationality != nil {
		builder.Set("nationality", *upd.Nationality)
	}
	if upd.Photo != nil {
		builder.Set("photo", *upd.Photo)
	}

	query, args, err := builder.Returning("*").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("update player: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *PlayerRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "players", id)
}

func (r *PlayerRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "players", id)
}

func (r *PlayerRepository) HardDelete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "players", id, player.ErrInUse)
}
