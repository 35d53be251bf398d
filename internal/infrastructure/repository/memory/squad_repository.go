package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/squad"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type SquadRepository struct {
	store *Store
}

func (s *Store) Squads() *SquadRepository {
	return &SquadRepository{store: s}
}

func (r *SquadRepository) Create(_ context.Context, m *squad.Membership) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[m.TeamID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.players[m.PlayerID]; !ok {
		return storage.ErrNotFound
	}
	// A soft-deleted membership does not block re-adding the player.
	for _, existing := range s.squads {
		if existing.TeamID == m.TeamID && existing.PlayerID == m.PlayerID &&
			existing.Season == m.Season && !existing.IsDeleted {
			return squad.ErrDuplicateMembership
		}
	}

	m.ID = s.nextID("team_squads")
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	m.UpdatedAt = m.CreatedAt
	s.squads[m.ID] = *m

	return nil
}

func (r *SquadRepository) ListByTeam(_ context.Context, teamID int64) ([]squad.Membership, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]squad.Membership, 0)
	for _, id := range sortedIDs(s.squads) {
		m := s.squads[id]
		if m.TeamID == teamID && !m.IsDeleted {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *SquadRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.squads[id]
	if !ok {
		return storage.ErrNotFound
	}
	m.IsDeleted = true
	m.IsActive = false
	m.UpdatedAt = s.now()
	s.squads[id] = m
	return nil
}

func (r *SquadRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.squads[id]
	if !ok {
		return storage.ErrNotFound
	}
	m.IsDeleted = false
	m.IsActive = true
	m.UpdatedAt = s.now()
	s.squads[id] = m
	return nil
}

func (r *SquadRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.squads[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.squads, id)
	return nil
}
