package memory

import (
	"context"
	"sort"

	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/views"
)

// ViewReader serves cross-entity reads. Every method takes the shared
// read lock once, so all referenced rows come from one snapshot.
type ViewReader struct {
	store *Store
}

func (s *Store) Views() *ViewReader {
	return &ViewReader{store: s}
}

func (r *ViewReader) TeamDetail(_ context.Context, teamID int64) (*views.TeamDetail, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[teamID]
	if !ok || t.IsDeleted {
		return nil, storage.ErrNotFound
	}
	t.CountyID = cloneInt64Ptr(t.CountyID)

	detail := views.TeamDetail{
		Team:      t,
		Squad:     s.squadSlotsLocked(teamID),
		Matches:   s.teamMatchesExpandedLocked(teamID),
		Lineups:   s.teamLineupsLocked(teamID),
		Standings: s.teamStandingsLocked(teamID),
	}
	if t.CountyID != nil {
		if c, ok := s.counties[*t.CountyID]; ok {
			detail.County = &c
		}
	}
	return &detail, nil
}

func (r *ViewReader) ListTeams(_ context.Context) ([]views.TeamSummary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]views.TeamSummary, 0, len(s.teams))
	for _, id := range sortedIDs(s.teams) {
		t := s.teams[id]
		if t.IsDeleted {
			continue
		}
		t.CountyID = cloneInt64Ptr(t.CountyID)

		summary := views.TeamSummary{Team: t}
		if t.CountyID != nil {
			if c, ok := s.counties[*t.CountyID]; ok {
				summary.County = &c
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

func (r *ViewReader) TeamSquad(_ context.Context, teamID int64) (*views.TeamSquadView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[teamID]
	if !ok || t.IsDeleted {
		return nil, storage.ErrNotFound
	}
	t.CountyID = cloneInt64Ptr(t.CountyID)

	return &views.TeamSquadView{
		Team:      t,
		Squad:     s.squadSlotsLocked(teamID),
		Matches:   s.teamMatchesLocked(teamID),
		Standings: s.teamStandingsLocked(teamID),
	}, nil
}

func (s *Store) squadSlotsLocked(teamID int64) []views.SquadSlot {
	out := make([]views.SquadSlot, 0)
	for _, id := range sortedIDs(s.squads) {
		m := s.squads[id]
		if m.TeamID != teamID || m.IsDeleted {
			continue
		}
		p, ok := s.players[m.PlayerID]
		if !ok {
			continue
		}
		out = append(out, views.SquadSlot{
			TeamID:      m.TeamID,
			PlayerID:    m.PlayerID,
			SquadNumber: m.SquadNumber,
			Season:      m.Season,
			Player:      p,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SquadNumber < out[j].SquadNumber })
	return out
}

func (s *Store) teamMatchesLocked(teamID int64) []match.Match {
	out := make([]match.Match, 0)
	for _, id := range sortedIDs(s.matches) {
		m := s.matches[id]
		if m.IsDeleted || (m.HomeTeamID != teamID && m.AwayTeamID != teamID) {
			continue
		}
		m.CompetitionID = cloneInt64Ptr(m.CompetitionID)
		out = append(out, m)
	}
	return out
}

func (s *Store) teamMatchesExpandedLocked(teamID int64) []views.MatchWithRefs {
	out := make([]views.MatchWithRefs, 0)
	for _, m := range s.teamMatchesLocked(teamID) {
		detail, err := s.matchDetailLocked(m.ID)
		if err != nil {
			continue
		}
		out = append(out, *detail)
	}
	return out
}

func (s *Store) teamLineupsLocked(teamID int64) []match.Lineup {
	out := make([]match.Lineup, 0)
	for _, id := range sortedIDs(s.lineups) {
		l := s.lineups[id]
		if l.TeamID != teamID || l.IsDeleted {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *Store) teamStandingsLocked(teamID int64) []standing.Standing {
	out := make([]standing.Standing, 0)
	for _, id := range sortedIDs(s.standings) {
		st := s.standings[id]
		if st.TeamID != teamID || st.IsDeleted {
			continue
		}
		out = append(out, st)
	}
	return out
}

func (r *ViewReader) ListMatches(_ context.Context) ([]views.MatchWithRefs, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]views.MatchWithRefs, 0, len(s.matches))
	for _, id := range sortedIDs(s.matches) {
		if s.matches[id].IsDeleted {
			continue
		}
		detail, err := s.matchDetailLocked(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}

func (r *ViewReader) MatchDetail(_ context.Context, matchID int64) (*views.MatchWithRefs, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[matchID]
	if !ok || m.IsDeleted {
		return nil, storage.ErrNotFound
	}
	return s.matchDetailLocked(matchID)
}

func (s *Store) matchDetailLocked(matchID int64) (*views.MatchWithRefs, error) {
	m, ok := s.matches[matchID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.CompetitionID = cloneInt64Ptr(m.CompetitionID)

	home, ok := s.teams[m.HomeTeamID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	away, ok := s.teams[m.AwayTeamID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	detail := views.MatchWithRefs{Match: m, HomeTeam: home, AwayTeam: away}
	if m.CompetitionID != nil {
		if c, ok := s.competitions[*m.CompetitionID]; ok {
			detail.Competition = &c
		}
	}
	return &detail, nil
}

func (r *ViewReader) ListCompetitions(_ context.Context) ([]views.CompetitionWithMatches, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]views.CompetitionWithMatches, 0, len(s.competitions))
	for _, id := range sortedIDs(s.competitions) {
		c := s.competitions[id]
		if c.IsDeleted {
			continue
		}
		out = append(out, views.CompetitionWithMatches{
			Competition: c,
			Matches:     s.competitionMatchesLocked(id),
		})
	}
	return out, nil
}

func (s *Store) competitionMatchesLocked(competitionID int64) []match.Match {
	out := make([]match.Match, 0)
	for _, id := range sortedIDs(s.matches) {
		m := s.matches[id]
		if m.IsDeleted || m.CompetitionID == nil || *m.CompetitionID != competitionID {
			continue
		}
		m.CompetitionID = cloneInt64Ptr(m.CompetitionID)
		out = append(out, m)
	}
	return out
}

func (r *ViewReader) CompetitionStandings(_ context.Context, competitionID int64) ([]views.StandingRow, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.competitions[competitionID]; !ok || c.IsDeleted {
		return nil, storage.ErrNotFound
	}

	rows := make([]standing.Standing, 0)
	for _, id := range sortedIDs(s.standings) {
		if st := s.standings[id]; st.CompetitionID == competitionID && !st.IsDeleted {
			rows = append(rows, st)
		}
	}
	sortStandings(rows)

	out := make([]views.StandingRow, 0, len(rows))
	for _, st := range rows {
		t, ok := s.teams[st.TeamID]
		if !ok {
			continue
		}
		out = append(out, views.StandingRow{Standing: st, Team: t})
	}
	return out, nil
}
