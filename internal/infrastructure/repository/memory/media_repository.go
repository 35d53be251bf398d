package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/media"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type MediaRepository struct {
	store *Store
}

func (s *Store) Media() *MediaRepository {
	return &MediaRepository{store: s}
}

func (r *MediaRepository) Create(_ context.Context, i *media.Item) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if i.MatchID != nil {
		if _, ok := s.matches[*i.MatchID]; !ok {
			return storage.ErrNotFound
		}
	}
	if i.TeamID != nil {
		if _, ok := s.teams[*i.TeamID]; !ok {
			return storage.ErrNotFound
		}
	}
	if i.PlayerID != nil {
		if _, ok := s.players[*i.PlayerID]; !ok {
			return storage.ErrNotFound
		}
	}

	i.ID = s.nextID("match_media")
	if i.CreatedAt.IsZero() {
		i.CreatedAt = s.now()
	}
	i.UpdatedAt = i.CreatedAt
	i.MatchID = cloneInt64Ptr(i.MatchID)
	i.TeamID = cloneInt64Ptr(i.TeamID)
	i.PlayerID = cloneInt64Ptr(i.PlayerID)
	i.UploadedBy = cloneInt64Ptr(i.UploadedBy)
	s.media[i.ID] = *i

	return nil
}

func (r *MediaRepository) GetByID(_ context.Context, id int64) (*media.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.media[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneMediaItem(i), nil
}

func (r *MediaRepository) ListByMatch(_ context.Context, matchID int64) ([]media.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]media.Item, 0)
	for _, id := range sortedIDs(s.media) {
		i := s.media[id]
		if i.IsDeleted || i.MatchID == nil || *i.MatchID != matchID {
			continue
		}
		out = append(out, *cloneMediaItem(i))
	}
	return out, nil
}

func (r *MediaRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.media[id]
	if !ok {
		return storage.ErrNotFound
	}
	i.IsDeleted = true
	i.IsActive = false
	i.UpdatedAt = s.now()
	s.media[id] = i
	return nil
}

func (r *MediaRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.media[id]
	if !ok {
		return storage.ErrNotFound
	}
	i.IsDeleted = false
	i.IsActive = true
	i.UpdatedAt = s.now()
	s.media[id] = i
	return nil
}

func (r *MediaRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.media, id)
	return nil
}

func cloneMediaItem(i media.Item) *media.Item {
	i.MatchID = cloneInt64Ptr(i.MatchID)
	i.TeamID = cloneInt64Ptr(i.TeamID)
	i.PlayerID = cloneInt64Ptr(i.PlayerID)
	i.UploadedBy = cloneInt64Ptr(i.UploadedBy)
	return &i
}
