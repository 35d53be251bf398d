package memory

import (
	"context"
	"sort"

	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/storage"
)

type StandingRepository struct {
	store *Store
}

func (s *Store) Standings() *StandingRepository {
	return &StandingRepository{store: s}
}

func (r *StandingRepository) Upsert(_ context.Context, st *standing.Standing) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.competitions[st.CompetitionID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.teams[st.TeamID]; !ok {
		return storage.ErrNotFound
	}

	for id, existing := range s.standings {
		if existing.CompetitionID == st.CompetitionID && existing.TeamID == st.TeamID {
			st.ID = id
			st.CreatedAt = existing.CreatedAt
			st.UpdatedAt = s.now()
			s.standings[id] = *st
			return nil
		}
	}

	st.ID = s.nextID("standings")
	if st.CreatedAt.IsZero() {
		st.CreatedAt = s.now()
	}
	st.UpdatedAt = st.CreatedAt
	s.standings[st.ID] = *st

	return nil
}

func (r *StandingRepository) ListByCompetition(_ context.Context, competitionID int64) ([]standing.Standing, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for _, id := range sortedIDs(s.standings) {
		if st := s.standings[id]; st.CompetitionID == competitionID {
			out = append(out, st)
		}
	}
	sortStandings(out)
	return out, nil
}

func (r *StandingRepository) ListByTeam(_ context.Context, teamID int64) ([]standing.Standing, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for _, id := range sortedIDs(s.standings) {
		if st := s.standings[id]; st.TeamID == teamID {
			out = append(out, st)
		}
	}
	return out, nil
}

// sortStandings orders a table by points, then goal difference, then
// goals scored.
func sortStandings(rows []standing.Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		gdI := rows[i].GoalsFor - rows[i].GoalsAgainst
		gdJ := rows[j].GoalsFor - rows[j].GoalsAgainst
		if gdI != gdJ {
			return gdI > gdJ
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})
}
