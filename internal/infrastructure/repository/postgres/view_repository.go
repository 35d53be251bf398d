package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/storage"
	"github.com/nkoroi/county-league/internal/domain/views"
	qb "github.com/nkoroi/county-league/internal/platform/querybuilder"
)

// ViewRepository answers cross-entity reads. Each call runs inside one
// repeatable-read read-only transaction so every referenced row comes
// from the same snapshot.
type ViewRepository struct {
	db *sqlx.DB
}

func NewViewRepository(db *sqlx.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

func (r *ViewRepository) inSnapshot(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return fmt.Errorf("begin view tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit view tx: %w", err)
	}

	return nil
}

func (r *ViewRepository) TeamDetail(ctx context.Context, teamID int64) (*views.TeamDetail, error) {
	var out *views.TeamDetail
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		teamRow, err := liveTeamTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		detail := views.TeamDetail{Team: teamRow.toDomain()}
		detail.County, err = countyRefTx(ctx, tx, teamRow.CountyID)
		if err != nil {
			return err
		}
		detail.Squad, err = squadSlotsTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		teamMatches, err := teamMatchesTx(ctx, tx, teamID)
		if err != nil {
			return err
		}
		detail.Matches = make([]views.MatchWithRefs, 0, len(teamMatches))
		for _, row := range teamMatches {
			expanded, err := matchRefsTx(ctx, tx, row)
			if err != nil {
				return err
			}
			detail.Matches = append(detail.Matches, *expanded)
		}

		detail.Lineups, err = teamLineupsTx(ctx, tx, teamID)
		if err != nil {
			return err
		}
		detail.Standings, err = teamStandingsTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		out = &detail
		return nil
	})
	return out, err
}

func (r *ViewRepository) ListTeams(ctx context.Context) ([]views.TeamSummary, error) {
	var out []views.TeamSummary
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").From("teams").
			Where(qb.Eq("is_deleted", false)).
			OrderBy("id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build list teams query: %w", err)
		}

		var teamRows []teamTableModel
		if err := tx.SelectContext(ctx, &teamRows, query, args...); err != nil {
			return fmt.Errorf("list teams: %w", err)
		}

		countyQuery, countyArgs, err := qb.Select("*").From("counties").ToSQL()
		if err != nil {
			return fmt.Errorf("build list counties query: %w", err)
		}
		var countyRows []countyTableModel
		if err := tx.SelectContext(ctx, &countyRows, countyQuery, countyArgs...); err != nil {
			return fmt.Errorf("list counties for teams: %w", err)
		}
		counties := make(map[int64]countyTableModel, len(countyRows))
		for _, row := range countyRows {
			counties[row.ID] = row
		}

		out = make([]views.TeamSummary, 0, len(teamRows))
		for _, row := range teamRows {
			summary := views.TeamSummary{Team: row.toDomain()}
			if row.CountyID != nil {
				if c, ok := counties[*row.CountyID]; ok {
					cc := c.toDomain()
					summary.County = &cc
				}
			}
			out = append(out, summary)
		}
		return nil
	})
	return out, err
}

func (r *ViewRepository) TeamSquad(ctx context.Context, teamID int64) (*views.TeamSquadView, error) {
	var out *views.TeamSquadView
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		teamRow, err := liveTeamTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		view := views.TeamSquadView{Team: teamRow.toDomain()}
		view.Squad, err = squadSlotsTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		matchRows, err := teamMatchesTx(ctx, tx, teamID)
		if err != nil {
			return err
		}
		view.Matches = make([]match.Match, 0, len(matchRows))
		for _, row := range matchRows {
			view.Matches = append(view.Matches, row.toDomain())
		}

		view.Standings, err = teamStandingsTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		out = &view
		return nil
	})
	return out, err
}

func liveTeamTx(ctx context.Context, tx *sqlx.Tx, teamID int64) (teamTableModel, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID), qb.Eq("is_deleted", false)).
		ToSQL()
	if err != nil {
		return teamTableModel{}, fmt.Errorf("build team query: %w", err)
	}

	var row teamTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamTableModel{}, storage.ErrNotFound
		}
		return teamTableModel{}, fmt.Errorf("get team: %w", err)
	}
	return row, nil
}

func countyRefTx(ctx context.Context, tx *sqlx.Tx, countyID *int64) (*county.County, error) {
	if countyID == nil {
		return nil, nil
	}

	query, args, err := qb.Select("*").From("counties").Where(qb.Eq("id", *countyID)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build county ref query: %w", err)
	}
	var row countyTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get county ref: %w", err)
	}

	c := row.toDomain()
	return &c, nil
}

func squadSlotsTx(ctx context.Context, tx *sqlx.Tx, teamID int64) ([]views.SquadSlot, error) {
	const query = `
		SELECT ts.team_id, ts.player_id, ts.squad_number, ts.season,
		       p.id AS "player.id", p.first_name AS "player.first_name",
		       p.last_name AS "player.last_name", p.position AS "player.position",
		       p.nationality AS "player.nationality", p.photo AS "player.photo",
		       p.created_at AS "player.created_at", p.updated_at AS "player.updated_at",
		       p.is_active AS "player.is_active", p.is_deleted AS "player.is_deleted"
		FROM team_squads ts
		JOIN players p ON p.id = ts.player_id
		WHERE ts.team_id = $1 AND ts.is_deleted = FALSE
		ORDER BY ts.squad_number, ts.id`

	var rows []squadSlotRow
	if err := tx.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list team squad: %w", err)
	}

	out := make([]views.SquadSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, views.SquadSlot{
			TeamID:      row.TeamID,
			PlayerID:    row.PlayerID,
			SquadNumber: row.SquadNumber,
			Season:      row.Season,
			Player:      row.Player.toDomain(),
		})
	}
	return out, nil
}

func teamMatchesTx(ctx context.Context, tx *sqlx.Tx, teamID int64) ([]matchTableModel, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID),
			qb.Eq("is_deleted", false),
		).
		OrderBy("match_date DESC", "match_time DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team matches query: %w", err)
	}

	var rows []matchTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team matches: %w", err)
	}
	return rows, nil
}

func teamLineupsTx(ctx context.Context, tx *sqlx.Tx, teamID int64) ([]match.Lineup, error) {
	query, args, err := qb.Select("*").From("match_lineups").
		Where(qb.Eq("team_id", teamID), qb.Eq("is_deleted", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team lineups query: %w", err)
	}

	var rows []lineupTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team lineups: %w", err)
	}

	out := make([]match.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func teamStandingsTx(ctx context.Context, tx *sqlx.Tx, teamID int64) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.Eq("team_id", teamID), qb.Eq("is_deleted", false)).
		OrderBy("competition_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team standings query: %w", err)
	}

	var rows []standingTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type squadSlotRow struct {
	TeamID      int64            `db:"team_id"`
	PlayerID    int64            `db:"player_id"`
	SquadNumber int              `db:"squad_number"`
	Season      string           `db:"season"`
	Player      playerTableModel `db:"player"`
}

func (r *ViewRepository) ListMatches(ctx context.Context) ([]views.MatchWithRefs, error) {
	var out []views.MatchWithRefs
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").From("matches").
			Where(qb.Eq("is_deleted", false)).
			OrderBy("match_date DESC", "match_time DESC", "id DESC").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build list match views query: %w", err)
		}

		var matchRows []matchTableModel
		if err := tx.SelectContext(ctx, &matchRows, query, args...); err != nil {
			return fmt.Errorf("list match views: %w", err)
		}

		out = make([]views.MatchWithRefs, 0, len(matchRows))
		for _, row := range matchRows {
			detail, err := matchRefsTx(ctx, tx, row)
			if err != nil {
				return err
			}
			out = append(out, *detail)
		}
		return nil
	})
	return out, err
}

func (r *ViewRepository) MatchDetail(ctx context.Context, matchID int64) (*views.MatchWithRefs, error) {
	var out *views.MatchWithRefs
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").From("matches").
			Where(qb.Eq("id", matchID), qb.Eq("is_deleted", false)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build match detail query: %w", err)
		}

		var row matchTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			if isNotFound(err) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("get match detail: %w", err)
		}

		detail, err := matchRefsTx(ctx, tx, row)
		if err != nil {
			return err
		}
		out = detail
		return nil
	})
	return out, err
}

func matchRefsTx(ctx context.Context, tx *sqlx.Tx, row matchTableModel) (*views.MatchWithRefs, error) {
	detail := views.MatchWithRefs{Match: row.toDomain()}

	homeQuery, homeArgs, err := qb.Select("*").From("teams").Where(qb.Eq("id", row.HomeTeamID)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build match home team query: %w", err)
	}
	var homeRow teamTableModel
	if err := tx.GetContext(ctx, &homeRow, homeQuery, homeArgs...); err != nil {
		return nil, fmt.Errorf("get match home team: %w", err)
	}
	detail.HomeTeam = homeRow.toDomain()

	awayQuery, awayArgs, err := qb.Select("*").From("teams").Where(qb.Eq("id", row.AwayTeamID)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build match away team query: %w", err)
	}
	var awayRow teamTableModel
	if err := tx.GetContext(ctx, &awayRow, awayQuery, awayArgs...); err != nil {
		return nil, fmt.Errorf("get match away team: %w", err)
	}
	detail.AwayTeam = awayRow.toDomain()

	if row.CompetitionID != nil {
		compQuery, compArgs, err := qb.Select("*").From("competitions").Where(qb.Eq("id", *row.CompetitionID)).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build match competition query: %w", err)
		}
		var compRow competitionTableModel
		if err := tx.GetContext(ctx, &compRow, compQuery, compArgs...); err != nil {
			if !isNotFound(err) {
				return nil, fmt.Errorf("get match competition: %w", err)
			}
		} else {
			c := compRow.toDomain()
			detail.Competition = &c
		}
	}

	return &detail, nil
}

func (r *ViewRepository) ListCompetitions(ctx context.Context) ([]views.CompetitionWithMatches, error) {
	var out []views.CompetitionWithMatches
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		compQuery, compArgs, err := qb.Select("*").From("competitions").
			Where(qb.Eq("is_deleted", false)).
			OrderBy("id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build list competitions query: %w", err)
		}

		var compRows []competitionTableModel
		if err := tx.SelectContext(ctx, &compRows, compQuery, compArgs...); err != nil {
			return fmt.Errorf("list competitions: %w", err)
		}

		out = make([]views.CompetitionWithMatches, 0, len(compRows))
		for _, compRow := range compRows {
			matchQuery, matchArgs, err := qb.Select("*").From("matches").
				Where(qb.Eq("competition_id", compRow.ID), qb.Eq("is_deleted", false)).
				OrderBy("match_date DESC", "match_time DESC", "id DESC").
				ToSQL()
			if err != nil {
				return fmt.Errorf("build competition matches query: %w", err)
			}

			var matchRows []matchTableModel
			if err := tx.SelectContext(ctx, &matchRows, matchQuery, matchArgs...); err != nil {
				return fmt.Errorf("list competition matches: %w", err)
			}

			matches := make([]match.Match, 0, len(matchRows))
			for _, row := range matchRows {
				matches = append(matches, row.toDomain())
			}
			out = append(out, views.CompetitionWithMatches{
				Competition: compRow.toDomain(),
				Matches:     matches,
			})
		}
		return nil
	})
	return out, err
}

func (r *ViewRepository) CompetitionStandings(ctx context.Context, competitionID int64) ([]views.StandingRow, error) {
	var out []views.StandingRow
	err := r.inSnapshot(ctx, func(tx *sqlx.Tx) error {
		existsQuery, existsArgs, err := qb.Select("id").From("competitions").
			Where(qb.Eq("id", competitionID), qb.Eq("is_deleted", false)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build competition exists query: %w", err)
		}
		var id int64
		if err := tx.GetContext(ctx, &id, existsQuery, existsArgs...); err != nil {
			if isNotFound(err) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("check competition exists: %w", err)
		}

		const query = `
			SELECT s.*,
			       t.id AS "team.id", t.name AS "team.name", t.logo AS "team.logo",
			       t.county_id AS "team.county_id",
			       t.created_at AS "team.created_at", t.updated_at AS "team.updated_at",
			       t.is_active AS "team.is_active", t.is_deleted AS "team.is_deleted"
			FROM standings s
			JOIN teams t ON t.id = s.team_id
			WHERE s.competition_id = $1 AND s.is_deleted = FALSE
			ORDER BY s.points DESC, (s.goals_for - s.goals_against) DESC, s.goals_for DESC`

		var rows []standingRowJoin
		if err := tx.SelectContext(ctx, &rows, query, competitionID); err != nil {
			return fmt.Errorf("list competition standings: %w", err)
		}

		out = make([]views.StandingRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, views.StandingRow{
				Standing: row.standingTableModel.toDomain(),
				Team:     row.Team.toDomain(),
			})
		}
		return nil
	})
	return out, err
}

type standingRowJoin struct {
	standingTableModel
	Team teamTableModel `db:"team"`
}
