package news

import "context"

type Repository interface {
	Create(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id int64) (*Article, error)
	List(ctx context.Context) ([]Article, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
