package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/media"
	"github.com/nkoroi/county-league/internal/domain/storage"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type mediaTableModel struct {
	ID         int64     `db:"id"`
	FileRef    string    `db:"file_ref"`
	FileType   string    `db:"file_type"`
	Caption    string    `db:"caption"`
	MatchID    *int64    `db:"match_id"`
	TeamID     *int64    `db:"team_id"`
	PlayerID   *int64    `db:"player_id"`
	UploadedBy *int64    `db:"uploaded_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	IsActive   bool      `db:"is_active"`
	IsDeleted  bool      `db:"is_deleted"`
}

func (m mediaTableModel) toDomain() media.Item {
	return media.Item{
		ID:         m.ID,
		FileRef:    m.FileRef,
		FileType:   media.FileType(m.FileType),
		Caption:    m.Caption,
		MatchID:    m.MatchID,
		TeamID:     m.TeamID,
		PlayerID:   m.PlayerID,
		UploadedBy: m.UploadedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		IsActive:   m.IsActive,
		IsDeleted:  m.IsDeleted,
	}
}

type mediaInsertModel struct {
	FileRef    string `db:"file_ref"`
	FileType   string `db:"file_type"`
	Caption    string `db:"caption"`
	MatchID    *int64 `db:"match_id"`
	TeamID     *int64 `db:"team_id"`
	PlayerID   *int64 `db:"player_id"`
	UploadedBy *int64 `db:"uploaded_by"`
	IsActive   bool   `db:"is_active"`
}

type MediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, i *media.Item) error {
	insertModel := mediaInsertModel{
		FileRef:    i.FileRef,
		FileType:   string(i.FileType),
		Caption:    i.Caption,
		MatchID:    i.MatchID,
		TeamID:     i.TeamID,
		PlayerID:   i.PlayerID,
		UploadedBy: i.UploadedBy,
		IsActive:   i.IsActive,
	}
	query, args, err := qb.InsertModel("match_media", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create media query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt); err != nil {
		if foreignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("create media: %w", err)
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*media.Item, error) {
	query, args, err := qb.Select("*").From("match_media").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get media query: %w", err)
	}

	var row mediaTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *MediaRepository) ListByMatch(ctx context.Context, matchID int64) ([]media.Item, error) {
	query, args, err := qb.Select("*").From("match_media").
		Where(qb.Eq("match_id", matchID), qb.Eq("is_deleted", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list media query: %w", err)
	}

	var rows []mediaTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	out := make([]media.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MediaRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "match_media", id)
}

func (r *MediaRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "match_media", id)
}

func (r *MediaRepository) HardDelete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "match_media", id, nil)
}
