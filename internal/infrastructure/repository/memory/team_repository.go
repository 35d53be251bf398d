package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (s *Store) Teams() *TeamRepository {
	return &TeamRepository{store: s}
}

func (r *TeamRepository) Create(_ context.Context, t *team.Team) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.CountyID != nil {
		if _, ok := s.counties[*t.CountyID]; !ok {
			return storage.ErrNotFound
		}
	}

	t.ID = s.nextID("teams")
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	t.UpdatedAt = t.CreatedAt
	t.CountyID = cloneInt64Ptr(t.CountyID)
	s.teams[t.ID] = *t

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (*team.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	t.CountyID = cloneInt64Ptr(t.CountyID)
	return &t, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, 0, len(s.teams))
	for _, id := range sortedIDs(s.teams) {
		t := s.teams[id]
		if t.IsDeleted {
			continue
		}
		t.CountyID = cloneInt64Ptr(t.CountyID)
		out = append(out, t)
	}
	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, id int64, upd team.Update) (*team.Team, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Logo != nil {
		t.Logo = *upd.Logo
	}
	if upd.CountyID != nil {
		if _, ok := s.counties[*upd.CountyID]; !ok {
			return nil, storage.ErrNotFound
		}
		t.CountyID = cloneInt64Ptr(upd.CountyID)
	}

	t.UpdatedAt = s.now()
	s.teams[id] = t
	t.CountyID = cloneInt64Ptr(t.CountyID)
	return &t, nil
}

func (r *TeamRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return storage.ErrNotFound
	}
	t.IsDeleted = true
	t.IsActive = false
	t.UpdatedAt = s.now()
	s.teams[id] = t
	return nil
}

func (r *TeamRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return storage.ErrNotFound
	}
	t.IsDeleted = false
	t.IsActive = true
	t.UpdatedAt = s.now()
	s.teams[id] = t
	return nil
}

func (r *TeamRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return storage.ErrNotFound
	}

	for _, m := range s.squads {
		if m.TeamID == id {
			return team.ErrInUse
		}
	}
	for _, m := range s.matches {
		if m.HomeTeamID == id || m.AwayTeamID == id {
			return team.ErrInUse
		}
	}
	for _, st := range s.standings {
		if st.TeamID == id {
			return team.ErrInUse
		}
	}

	for artID, art := range s.news {
		if art.TeamID != nil && *art.TeamID == id {
			art.TeamID = nil
			s.news[artID] = art
		}
	}
	for itemID, item := range s.media {
		if item.TeamID != nil && *item.TeamID == id {
			item.TeamID = nil
			s.media[itemID] = item
		}
	}

	delete(s.teams, id)
	return nil
}
