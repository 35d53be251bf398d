package memory

import (
	"context"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type CountyRepository struct {
	store *Store
}

func (s *Store) Counties() *CountyRepository {
	return &CountyRepository{store: s}
}

func (r *CountyRepository) Create(_ context.Context, c *county.County) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.counties {
		if strings.EqualFold(existing.Name, c.Name) {
			return county.ErrNameTaken
		}
	}

	c.ID = s.nextID("counties")
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c.UpdatedAt = c.CreatedAt
	s.counties[c.ID] = *c

	return nil
}

func (r *CountyRepository) GetByID(_ context.Context, id int64) (*county.County, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.counties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (r *CountyRepository) List(_ context.Context) ([]county.County, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]county.County, 0, len(s.counties))
	for _, id := range sortedIDs(s.counties) {
		if c := s.counties[id]; !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CountyRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counties[id]
	if !ok {
		return storage.ErrNotFound
	}
	c.IsDeleted = true
	c.IsActive = false
	c.UpdatedAt = s.now()
	s.counties[id] = c
	return nil
}

func (r *CountyRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counties[id]
	if !ok {
		return storage.ErrNotFound
	}
	c.IsDeleted = false
	c.IsActive = true
	c.UpdatedAt = s.now()
	s.counties[id] = c
	return nil
}

func (r *CountyRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counties[id]; !ok {
		return storage.ErrNotFound
	}

	// Teams keep existing without a county.
	for teamID, t := range s.teams {
		if t.CountyID != nil && *t.CountyID == id {
			t.CountyID = nil
			s.teams[teamID] = t
		}
	}

	delete(s.counties, id)
	return nil
}
