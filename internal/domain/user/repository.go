package user

import "context"

// Repository describes user persistence needs from use cases. Create fills
// the ID and timestamps in place. Lookups by email/phone include
// soft-deleted rows so uniqueness holds across the whole table; List
// filters them out.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int64, update Update) (*User, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
