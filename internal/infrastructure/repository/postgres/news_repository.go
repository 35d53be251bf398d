package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/news"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type newsTableModel struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Content       string    `db:"content"`
	Image         string    `db:"image"`
	AuthorID      *int64    `db:"author_id"`
	TeamID        *int64    `db:"team_id"`
	MatchID       *int64    `db:"match_id"`
	CompetitionID *int64    `db:"competition_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	IsActive      bool      `db:"is_active"`
	IsDeleted     bool      `db:"is_deleted"`
}

func (m newsTableModel) toDomain() news.Article {
	return news.Article{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Image:         m.Image,
		AuthorID:      m.AuthorID,
		TeamID:        m.TeamID,
		MatchID:       m.MatchID,
		CompetitionID: m.CompetitionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		IsActive:      m.IsActive,
		IsDeleted:     m.IsDeleted,
	}
}

type newsInsertModel struct {
	Title         string `db:"title"`
	Content       string `db:"content"`
	Image         string `db:"image"`
	AuthorID      *int64 `db:"author_id"`
	TeamID        *int64 `db:"team_id"`
	MatchID       *int64 `db:"match_id"`
	CompetitionID *int64 `db:"competition_id"`
	IsActive      bool   `db:"is_active"`
}

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, a *news.Article) error {
	insertModel := newsInsertModel{
		Title:         a.Title,
		Content:       a.Content,
		Image:         a.Image,
		AuthorID:      a.AuthorID,
		TeamID:        a.TeamID,
		MatchID:       a.MatchID,
		CompetitionID: a.CompetitionID,
		IsActive:      a.IsActive,
	}
	query, args, err := qb.InsertModel("news", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create news query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("create news: %w", err)
	}

	return nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*news.Article, error) {
	query, args, err := qb.Select("*").From("news").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get news query: %w", err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get news: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *NewsRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "news", id)
}

func (r *NewsRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "news", id)
}

func (r *NewsRepository) HardDelete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "news", id, nil)
}
