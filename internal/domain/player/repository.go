package player

import "context"

type Repository interface {
	Create(ctx context.Context, p *Player) error
	GetByID(ctx context.Context, id int64) (*Player, error)
	List(ctx context.Context) ([]Player, error)
	Update(ctx context.Context, id int64, update Update) (*Player, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
