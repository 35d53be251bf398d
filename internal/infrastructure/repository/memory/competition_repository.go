package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type CompetitionRepository struct {
	store *Store
}

func (s *Store) Competitions() *CompetitionRepository {
	return &CompetitionRepository{store: s}
}

func (r *CompetitionRepository) Create(_ context.Context, c *competition.Competition) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID("competitions")
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c.UpdatedAt = c.CreatedAt
	s.competitions[c.ID] = *c

	return nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, id int64) (*competition.Competition, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.competitions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]competition.Competition, 0, len(s.competitions))
	for _, id := range sortedIDs(s.competitions) {
		if c := s.competitions[id]; !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CompetitionRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.competitions[id]
	if !ok {
		return storage.ErrNotFound
	}
	c.IsDeleted = true
	c.IsActive = false
	c.UpdatedAt = s.now()
	s.competitions[id] = c
	return nil
}

func (r *CompetitionRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.competitions[id]
	if !ok {
		return storage.ErrNotFound
	}
	c.IsDeleted = false
	c.IsActive = true
	c.UpdatedAt = s.now()
	s.competitions[id] = c
	return nil
}

func (r *CompetitionRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.competitions[id]; !ok {
		return storage.ErrNotFound
	}

	for _, st := range s.standings {
		if st.CompetitionID == id {
			return competition.ErrInUse
		}
	}

	// Matches fall back to friendlies, news loses the link.
	for matchID, m := range s.matches {
		if m.CompetitionID != nil && *m.CompetitionID == id {
			m.CompetitionID = nil
			s.matches[matchID] = m
		}
	}
	for artID, art := range s.news {
		if art.CompetitionID != nil && *art.CompetitionID == id {
			art.CompetitionID = nil
			s.news[artID] = art
		}
	}

	delete(s.competitions, id)
	return nil
}
