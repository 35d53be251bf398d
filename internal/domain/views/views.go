// Package views exposes read-only aggregations that join several entities.
// Every method resolves all of its referenced records from a single
// consistent snapshot of the store.
package views

import (
	"context"

	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/team"
)

// TeamSummary is a team together with its resolved county, if any.
type TeamSummary struct {
	Team   team.Team
	County *county.County
}

// TeamDetail is the full team aggregation: county, squad, every match
// the team appears in (home or away, with the opposing side resolved),
// its lineup records and its standings rows. References are expanded
// exactly one hop.
type TeamDetail struct {
	Team      team.Team
	County    *county.County
	Squad     []SquadSlot
	Matches   []MatchWithRefs
	Lineups   []match.Lineup
	Standings []standing.Standing
}

// TeamSquadView is the squad-centric aggregation: team fields, the squad
// with player detail, and the team's matches and standings unexpanded.
type TeamSquadView struct {
	Team      team.Team
	Squad     []SquadSlot
	Matches   []match.Match
	Standings []standing.Standing
}

// SquadSlot is one squad membership with its player resolved.
type SquadSlot struct {
	TeamID      int64
	PlayerID    int64
	SquadNumber int
	Season      string
	Player      player.Player
}

// MatchWithRefs is a match with its teams and competition resolved.
type MatchWithRefs struct {
	Match       match.Match
	HomeTeam    team.Team
	AwayTeam    team.Team
	Competition *competition.Competition
}

// CompetitionWithMatches is a competition with every match played under it.
type CompetitionWithMatches struct {
	Competition competition.Competition
	Matches     []match.Match
}

// StandingRow is a standings entry with its team resolved.
type StandingRow struct {
	Standing standing.Standing
	Team     team.Team
}

// Reader answers cross-entity reads. Implementations must not observe
// writes that land mid-call.
type Reader interface {
	TeamDetail(ctx context.Context, teamID int64) (*TeamDetail, error)
	ListTeams(ctx context.Context) ([]TeamSummary, error)
	TeamSquad(ctx context.Context, teamID int64) (*TeamSquadView, error)
	ListMatches(ctx context.Context) ([]MatchWithRefs, error)
	ListCompetitions(ctx context.Context) ([]CompetitionWithMatches, error)
	MatchDetail(ctx context.Context, matchID int64) (*MatchWithRefs, error)
	CompetitionStandings(ctx context.Context, competitionID int64) ([]StandingRow, error)
}
