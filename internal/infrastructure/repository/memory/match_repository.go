package memory

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type MatchRepository struct {
	store *Store
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{store: s}
}

func (r *MatchRepository) Create(_ context.Context, m *match.Match) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[m.HomeTeamID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.teams[m.AwayTeamID]; !ok {
		return storage.ErrNotFound
	}
	if m.CompetitionID != nil {
		if _, ok := s.competitions[*m.CompetitionID]; !ok {
			return storage.ErrNotFound
		}
	}

	m.ID = s.nextID("matches")
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	m.UpdatedAt = m.CreatedAt
	m.CompetitionID = cloneInt64Ptr(m.CompetitionID)
	s.matches[m.ID] = *m

	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (*match.Match, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.CompetitionID = cloneInt64Ptr(m.CompetitionID)
	return &m, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Match, 0, len(s.matches))
	for _, id := range sortedIDs(s.matches) {
		m := s.matches[id]
		if m.IsDeleted {
			continue
		}
		m.CompetitionID = cloneInt64Ptr(m.CompetitionID)
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) UpdateScore(_ context.Context, id int64, u match.ScoreUpdate) (*match.Match, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	m.HomeScore = u.HomeScore
	m.AwayScore = u.AwayScore
	m.AddedTime = u.AddedTime
	m.ExtraTime = u.ExtraTime
	m.Status = u.Status
	m.UpdatedAt = s.now()
	s.matches[id] = m

	m.CompetitionID = cloneInt64Ptr(m.CompetitionID)
	return &m, nil
}

func (r *MatchRepository) SoftDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return storage.ErrNotFound
	}
	m.IsDeleted = true
	m.IsActive = false
	m.UpdatedAt = s.now()
	s.matches[id] = m
	return nil
}

func (r *MatchRepository) Restore(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return storage.ErrNotFound
	}
	m.IsDeleted = false
	m.IsActive = true
	m.UpdatedAt = s.now()
	s.matches[id] = m
	return nil
}

func (r *MatchRepository) HardDelete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[id]; !ok {
		return storage.ErrNotFound
	}

	// Satellite rows go with the match, editorial links are severed.
	for lineupID, l := range s.lineups {
		if l.MatchID == id {
			delete(s.lineups, lineupID)
		}
	}
	for statsID, st := range s.stats {
		if st.MatchID == id {
			delete(s.stats, statsID)
		}
	}
	for eventID, e := range s.events {
		if e.MatchID == id {
			delete(s.events, eventID)
		}
	}
	for artID, art := range s.news {
		if art.MatchID != nil && *art.MatchID == id {
			art.MatchID = nil
			s.news[artID] = art
		}
	}
	for itemID, item := range s.media {
		if item.MatchID != nil && *item.MatchID == id {
			item.MatchID = nil
			s.media[itemID] = item
		}
	}

	delete(s.matches, id)
	return nil
}

func (r *MatchRepository) AddLineup(_ context.Context, l *match.Lineup) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[l.MatchID]
	if !ok {
		return storage.ErrNotFound
	}
	if l.TeamID != m.HomeTeamID && l.TeamID != m.AwayTeamID {
		return match.ErrTeamNotInMatch
	}
	if _, ok := s.players[l.PlayerID]; !ok {
		return storage.ErrNotFound
	}

	l.ID = s.nextID("match_lineups")
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	l.UpdatedAt = l.CreatedAt
	s.lineups[l.ID] = *l

	return nil
}

func (r *MatchRepository) ListLineupsByMatch(_ context.Context, matchID int64) ([]match.Lineup, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Lineup, 0)
	for _, id := range sortedIDs(s.lineups) {
		if l := s.lineups[id]; l.MatchID == matchID && !l.IsDeleted {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *MatchRepository) AddStats(_ context.Context, st *match.Stats) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[st.MatchID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.teams[st.TeamID]; !ok {
		return storage.ErrNotFound
	}

	st.ID = s.nextID("match_stats")
	if st.CreatedAt.IsZero() {
		st.CreatedAt = s.now()
	}
	st.UpdatedAt = st.CreatedAt
	s.stats[st.ID] = *st

	return nil
}

func (r *MatchRepository) ListStatsByMatch(_ context.Context, matchID int64) ([]match.Stats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Stats, 0)
	for _, id := range sortedIDs(s.stats) {
		if st := s.stats[id]; st.MatchID == matchID && !st.IsDeleted {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *MatchRepository) AddEvent(_ context.Context, e *match.Event) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[e.MatchID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.teams[e.TeamID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.players[e.PlayerID]; !ok {
		return storage.ErrNotFound
	}

	e.ID = s.nextID("match_events")
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e.UpdatedAt = e.CreatedAt
	s.events[e.ID] = *e

	return nil
}

func (r *MatchRepository) ListEventsByMatch(_ context.Context, matchID int64) ([]match.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Event, 0)
	for _, id := range sortedIDs(s.events) {
		if e := s.events[id]; e.MatchID == matchID && !e.IsDeleted {
			out = append(out, e)
		}
	}
	return out, nil
}
