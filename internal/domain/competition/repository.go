package competition

import "context"

type Repository interface {
	Create(ctx context.Context, c *Competition) error
	GetByID(ctx context.Context, id int64) (*Competition, error)
	List(ctx context.Context) ([]Competition, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
