package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type PlayerRepository struct {
	store *Store
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

func (r *PlayerRepository) Create(_ context.Context, p *player.Player) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID("players")
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	p.UpdatedAt = p.CreatedAt
	s.players[p.ID] = *p

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (*player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(s.players))
	for _, id := range sortedIDs(s.players) {
		if p := s.players[id]; !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, id int64, upd player.Update) (*player.Player, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.Position != nil {
		p.Position = *upd.Position
	}
	if upd.Nationality != nil {
		p.Nationality = *upd.Nationality
	}
	if upd.Photo != nil {
		p.Photo = *upd.Photo
	}

	p.UpdatedAt = s.now()
	s.players[id] = p
	return &p, nil
}

func (r *PlayerRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.IsDeleted = true
	p.IsActive = false
	p.UpdatedAt = s.now()
	s.players[id] = p
	return nil
}

func (r *PlayerRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.IsDeleted = false
	p.IsActive = true
	p.UpdatedAt = s.now()
	s.players[id] = p
	return nil
}

func (r *PlayerRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return storage.ErrNotFound
	}

	for _, m := range s.squads {
		if m.PlayerID == id {
			return player.ErrInUse
		}
	}
	for _, l := range s.lineups {
		if l.PlayerID == id {
			return player.ErrInUse
		}
	}
	for _, e := range s.events {
		if e.PlayerID == id {
			return player.ErrInUse
		}
	}

	for itemID, item := range s.media {
		if item.PlayerID != nil && *item.PlayerID == id {
			item.PlayerID = nil
			s.media[itemID] = item
		}
	}

	delete(s.players, id)
	return nil
}
