package county

import "context"

type Repository interface {
	Create(ctx context.Context, c *County) error
	GetByID(ctx context.Context, id int64) (*County, error)
	List(ctx context.Context) ([]County, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
