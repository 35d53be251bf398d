package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/squad"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/team"
)

func seedTeam(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	tm := team.Team{Name: name, IsActive: true}
	if err := s.Teams().Create(context.Background(), &tm); err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return tm.ID
}

func seedPlayer(t *testing.T, s *Store, last string) int64 {
	t.Helper()
	p := player.Player{FirstName: "Test", LastName: last, Position: player.PositionMidfielder, IsActive: true}
	if err := s.Players().Create(context.Background(), &p); err != nil {
		t.Fatalf("create player %s: %v", last, err)
	}
	return p.ID
}

func newCompetition(t *testing.T, s *Store) int64 {
	t.Helper()
	c := competition.Competition{Name: "County League", Season: "2026", Type: competition.TypeLeague, IsActive: true}
	if err := s.Competitions().Create(context.Background(), &c); err != nil {
		t.Fatalf("create competition: %v", err)
	}
	return c.ID
}

func TestTeamSoftDeleteFiltersListNotGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id := seedTeam(t, s, "Gusii FC")

	if err := s.Teams().SoftDelete(ctx, id); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	teams, err := s.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected soft-deleted team hidden from list, got %d rows", len(teams))
	}

	got, err := s.Teams().GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if !got.IsDeleted {
		t.Fatal("expected is_deleted flag set on direct fetch")
	}

	if err := s.Teams().Restore(ctx, id); err != nil {
		t.Fatalf("restore: %v", err)
	}
	teams, err = s.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list after restore: %v", err)
	}
	if len(teams) != 1 || !teams[0].IsActive {
		t.Fatalf("expected restored active team, got %+v", teams)
	}
}

func TestCountyHardDeleteDetachesTeams(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	c := county.County{Name: "Kisumu", IsActive: true}
	if err := s.Counties().Create(ctx, &c); err != nil {
		t.Fatalf("create county: %v", err)
	}

	tm := team.Team{Name: "Lakeside FC", CountyID: &c.ID, IsActive: true}
	if err := s.Teams().Create(ctx, &tm); err != nil {
		t.Fatalf("create team: %v", err)
	}

	if err := s.Counties().HardDelete(ctx, c.ID); err != nil {
		t.Fatalf("hard delete county: %v", err)
	}

	got, err := s.Teams().GetByID(ctx, tm.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.CountyID != nil {
		t.Fatalf("expected county link severed, got %v", *got.CountyID)
	}
}

func TestCountyCreateRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := county.County{Name: "Nakuru", IsActive: true}
	if err := s.Counties().Create(ctx, &first); err != nil {
		t.Fatalf("create county: %v", err)
	}

	dup := county.County{Name: "nakuru", IsActive: true}
	if err := s.Counties().Create(ctx, &dup); !errors.Is(err, county.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestSquadRejectsDuplicateMembershipPerSeason(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	teamID := seedTeam(t, s, "Mathare United")
	playerID := seedPlayer(t, s, "Otieno")

	first := squad.Membership{TeamID: teamID, PlayerID: playerID, SquadNumber: 8, Season: "2026", IsActive: true}
	if err := s.Squads().Create(ctx, &first); err != nil {
		t.Fatalf("create membership: %v", err)
	}

	dup := squad.Membership{TeamID: teamID, PlayerID: playerID, SquadNumber: 10, Season: "2026", IsActive: true}
	if err := s.Squads().Create(ctx, &dup); !errors.Is(err, squad.ErrDuplicateMembership) {
		t.Fatalf("expected ErrDuplicateMembership, got %v", err)
	}

	nextSeason := squad.Membership{TeamID: teamID, PlayerID: playerID, SquadNumber: 8, Season: "2027", IsActive: true}
	if err := s.Squads().Create(ctx, &nextSeason); err != nil {
		t.Fatalf("create next-season membership: %v", err)
	}

	if err := s.Squads().SoftDelete(ctx, first.ID); err != nil {
		t.Fatalf("soft delete membership: %v", err)
	}
	readd := squad.Membership{TeamID: teamID, PlayerID: playerID, SquadNumber: 11, Season: "2026", IsActive: true}
	if err := s.Squads().Create(ctx, &readd); err != nil {
		t.Fatalf("expected re-add after soft delete, got %v", err)
	}
}

func TestTeamHardDeleteRestrictedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	teamID := seedTeam(t, s, "Ulinzi Stars")
	playerID := seedPlayer(t, s, "Wanjala")

	m := squad.Membership{TeamID: teamID, PlayerID: playerID, SquadNumber: 4, Season: "2026", IsActive: true}
	if err := s.Squads().Create(ctx, &m); err != nil {
		t.Fatalf("create membership: %v", err)
	}

	if err := s.Teams().HardDelete(ctx, teamID); !errors.Is(err, team.ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}

	if err := s.Squads().HardDelete(ctx, m.ID); err != nil {
		t.Fatalf("delete membership: %v", err)
	}
	if err := s.Teams().HardDelete(ctx, teamID); err != nil {
		t.Fatalf("hard delete team: %v", err)
	}
	if _, err := s.Teams().GetByID(ctx, teamID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingUpsertKeyedByCompetitionAndTeam(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	teamID := seedTeam(t, s, "Shabana FC")

	comp := newCompetition(t, s)

	first := standing.Standing{CompetitionID: comp, TeamID: teamID, Played: 1, Won: 1, Points: 3, IsActive: true}
	if err := s.Standings().Upsert(ctx, &first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := standing.Standing{CompetitionID: comp, TeamID: teamID, Played: 2, Won: 1, Drawn: 1, Points: 4, IsActive: true}
	if err := s.Standings().Upsert(ctx, &second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected upsert to reuse row %d, got %d", first.ID, second.ID)
	}

	rows, err := s.Standings().ListByCompetition(ctx, comp)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(rows) != 1 || rows[0].Points != 4 {
		t.Fatalf("unexpected standings: %+v", rows)
	}
}

func TestMatchHardDeleteCascadesSatellites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	home := seedTeam(t, s, "Home FC")
	away := seedTeam(t, s, "Away FC")
	playerID := seedPlayer(t, s, "Mutua")

	m := match.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     match.StatusScheduled,
		MatchDate:  "2026-09-05",
		MatchTime:  "15:00",
		IsActive:   true,
	}
	if err := s.Matches().Create(ctx, &m); err != nil {
		t.Fatalf("create match: %v", err)
	}

	e := match.Event{MatchID: m.ID, TeamID: home, PlayerID: playerID, Type: match.EventGoal, EventTime: "45+2", IsActive: true}
	if err := s.Matches().AddEvent(ctx, &e); err != nil {
		t.Fatalf("add event: %v", err)
	}

	if err := s.Matches().HardDelete(ctx, m.ID); err != nil {
		t.Fatalf("hard delete match: %v", err)
	}

	events, err := s.Matches().ListEventsByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected events removed with match, got %d", len(events))
	}
}

func TestViewReaderResolvesTeamDetail(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	c := county.County{Name: "Kakamega", IsActive: true}
	if err := s.Counties().Create(ctx, &c); err != nil {
		t.Fatalf("create county: %v", err)
	}
	tm := team.Team{Name: "Homeboyz", CountyID: &c.ID, IsActive: true}
	if err := s.Teams().Create(ctx, &tm); err != nil {
		t.Fatalf("create team: %v", err)
	}

	detail, err := s.Views().TeamDetail(ctx, tm.ID)
	if err != nil {
		t.Fatalf("team detail: %v", err)
	}
	if detail.County == nil || detail.County.Name != "Kakamega" {
		t.Fatalf("expected county resolved, got %+v", detail.County)
	}
}

func TestViewReaderCompetitionStandingsSkipsSoftDeleted(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	comp := newCompetition(t, s)
	alive := seedTeam(t, s, "Alive FC")
	gone := seedTeam(t, s, "Gone FC")

	st := standing.Standing{CompetitionID: comp, TeamID: alive, Played: 1, Won: 1, Points: 3, IsActive: true}
	if err := s.Standings().Upsert(ctx, &st); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	deleted := standing.Standing{CompetitionID: comp, TeamID: gone, Played: 1, Lost: 1, IsDeleted: true}
	if err := s.Standings().Upsert(ctx, &deleted); err != nil {
		t.Fatalf("upsert deleted: %v", err)
	}

	rows, err := s.Views().CompetitionStandings(ctx, comp)
	if err != nil {
		t.Fatalf("competition standings: %v", err)
	}
	if len(rows) != 1 || rows[0].Team.ID != alive {
		t.Fatalf("expected only the live row, got %+v", rows)
	}
}

func TestViewReaderListsCompetitionMatches(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	comp := newCompetition(t, s)
	home := seedTeam(t, s, "Home FC")
	away := seedTeam(t, s, "Away FC")

	m := match.Match{
		CompetitionID: &comp,
		HomeTeamID:    home,
		AwayTeamID:    away,
		Status:        match.StatusScheduled,
		MatchDate:     "2026-09-12",
		MatchTime:     "16:00",
		IsActive:      true,
	}
	if err := s.Matches().Create(ctx, &m); err != nil {
		t.Fatalf("create match: %v", err)
	}
	friendly := match.Match{
		HomeTeamID: away,
		AwayTeamID: home,
		Status:     match.StatusScheduled,
		MatchDate:  "2026-09-19",
		MatchTime:  "16:00",
		IsActive:   true,
	}
	if err := s.Matches().Create(ctx, &friendly); err != nil {
		t.Fatalf("create friendly: %v", err)
	}

	out, err := s.Views().ListCompetitions(ctx)
	if err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one competition, got %d", len(out))
	}
	if got := out[0].Matches; len(got) != 1 || got[0].ID != m.ID {
		t.Fatalf("expected only the competition's match, got %+v", got)
	}
}
