package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/user"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

type userTableModel struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	IsActive     bool      `db:"is_active"`
	IsDeleted    bool      `db:"is_deleted"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Role:         user.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		IsActive:     m.IsActive,
		IsDeleted:    m.IsDeleted,
	}
}

type userInsertModel struct {
	Username     string `db:"username"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	insertModel := userInsertModel{
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
	}
	query, args, err := qb.InsertModel("users", insertModel, "id", "created_at", "updated_at")
	if err != nil {
		return fmt.Errorf("build create user query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		switch {
		case uniqueViolation(err, "users_email"):
			return user.ErrEmailTaken
		case uniqueViolation(err, "users_phone"):
			return user.ErrPhoneTaken
		case uniqueViolation(err, "users_username"):
			return user.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, qb.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.getOne(ctx, qb.Eq("phone", phone))
}

func (r *UserRepository) getOne(ctx context.Context, cond qb.Condition) (*user.User, error) {
	query, args, err := qb.Select("*").From("users").Where(cond).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("is_deleted", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, upd user.Update) (*user.User, error) {
	builder := qb.Update("users").SetExpr("updated_at", "NOW()").Where(qb.Eq("id", id))
	if upd.Username != nil {
		builder.Set("username", *upd.Username)
	}
	if upd.Email != nil {
		builder.Set("email", *upd.Email)
	}
	if upd.Phone != nil {
		builder.Set("phone", *upd.Phone)
	}
	if upd.Role != nil {
		builder.Set("role", string(*upd.Role))
	}

	query, args, err := builder.Returning("*").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build update user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		switch {
		case isNotFound(err):
			return nil, storage.ErrNotFound
		case uniqueViolation(err, "users_email"):
			return nil, user.ErrEmailTaken
		case uniqueViolation(err, "users_phone"):
			return nil, user.ErrPhoneTaken
		case uniqueViolation(err, "users_username"):
			return nil, user.ErrUsernameTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	return markDeleted(ctx, r.db, "users", id)
}

func (r *UserRepository) Restore(ctx context.Context, id int64) error {
	return markRestored(ctx, r.db, "users", id)
}

func (r *UserRepository) HardDelete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "users", id, nil)
}
