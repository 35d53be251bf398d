package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/news"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type NewsRepository struct {
	store *Store
}

func (s *Store) News() *NewsRepository {
	return &NewsRepository{store: s}
}

func (r *NewsRepository) Create(_ context.Context, a *news.Article) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.TeamID != nil {
		if _, ok := s.teams[*a.TeamID]; !ok {
			return storage.ErrNotFound
		}
	}
	if a.MatchID != nil {
		if _, ok := s.matches[*a.MatchID]; !ok {
			return storage.ErrNotFound
		}
	}
	if a.CompetitionID != nil {
		if _, ok := s.competitions[*a.CompetitionID]; !ok {
			return storage.ErrNotFound
		}
	}

	a.ID = s.nextID("news")
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	a.UpdatedAt = a.CreatedAt
	a.AuthorID = cloneInt64Ptr(a.AuthorID)
	a.TeamID = cloneInt64Ptr(a.TeamID)
	a.MatchID = cloneInt64Ptr(a.MatchID)
	a.CompetitionID = cloneInt64Ptr(a.CompetitionID)
	s.news[a.ID] = *a

	return nil
}

func (r *NewsRepository) GetByID(_ context.Context, id int64) (*news.Article, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.news[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneArticle(a), nil
}

func (r *NewsRepository) List(_ context.Context) ([]news.Article, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]news.Article, 0, len(s.news))
	ids := sortedIDs(s.news)
	// Newest first.
	for i := len(ids) - 1; i >= 0; i-- {
		if a := s.news[ids[i]]; !a.IsDeleted {
			out = append(out, *cloneArticle(a))
		}
	}
	return out, nil
}

func (r *NewsRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.news[id]
	if !ok {
		return storage.ErrNotFound
	}
	a.IsDeleted = true
	a.IsActive = false
	a.UpdatedAt = s.now()
	s.news[id] = a
	return nil
}

func (r *NewsRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.news[id]
	if !ok {
		return storage.ErrNotFound
	}
	a.IsDeleted = false
	a.IsActive = true
	a.UpdatedAt = s.now()
	s.news[id] = a
	return nil
}

func (r *NewsRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.news[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.news, id)
	return nil
}

func cloneArticle(a news.Article) *news.Article {
	a.AuthorID = cloneInt64Ptr(a.AuthorID)
	a.TeamID = cloneInt64Ptr(a.TeamID)
	a.MatchID = cloneInt64Ptr(a.MatchID)
	a.CompetitionID = cloneInt64Ptr(a.CompetitionID)
	return &a
}
