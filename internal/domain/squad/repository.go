package squad

import "context"

type Repository interface {
	Create(ctx context.Context, m *Membership) error
	ListByTeam(ctx context.Context, teamID int64) ([]Membership, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
