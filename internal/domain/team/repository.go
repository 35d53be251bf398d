package team

import "context"

type Repository interface {
	Create(ctx context.Context, t *Team) error
	GetByID(ctx context.Context, id int64) (*Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, id int64, update Update) (*Team, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
