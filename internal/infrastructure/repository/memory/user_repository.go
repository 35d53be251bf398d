package memory

import (
	"context"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailTaken
		}
		if existing.Phone != "" && existing.Phone == u.Phone {
			return user.ErrPhoneTaken
		}
		if strings.EqualFold(existing.Username, u.Username) {
			return user.ErrUsernameTaken
		}
	}

	u.ID = s.nextID("users")
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *UserRepository) GetByPhone(_ context.Context, phone string) (*user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Phone != "" && u.Phone == phone {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		if u := s.users[id]; !u.IsDeleted {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, upd user.Update) (*user.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if upd.Username != nil {
		for otherID, other := range s.users {
			if otherID != id && strings.EqualFold(other.Username, *upd.Username) {
				return nil, user.ErrUsernameTaken
			}
		}
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		for otherID, other := range s.users {
			if otherID != id && strings.EqualFold(other.Email, *upd.Email) {
				return nil, user.ErrEmailTaken
			}
		}
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		for otherID, other := range s.users {
			if otherID != id && other.Phone != "" && other.Phone == *upd.Phone {
				return nil, user.ErrPhoneTaken
			}
		}
		u.Phone = *upd.Phone
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}

	u.UpdatedAt = s.now()
	s.users[id] = u
	return &u, nil
}

func (r *UserRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.IsDeleted = true
	u.IsActive = false
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (r *UserRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.IsDeleted = false
	u.IsActive = true
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (r *UserRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}

	// Authored content outlives its author.
	for artID, art := range s.news {
		if art.AuthorID != nil && *art.AuthorID == id {
			art.AuthorID = nil
			s.news[artID] = art
		}
	}
	for itemID, item := range s.media {
		if item.UploadedBy != nil && *item.UploadedBy == id {
			item.UploadedBy = nil
			s.media[itemID] = item
		}
	}

	delete(s.users, id)
	return nil
}
