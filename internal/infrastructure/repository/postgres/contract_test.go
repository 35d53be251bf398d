package postgres

import (
	"github.com/nkoroi/county-league/internal/domain/auditlog"
	"github.com/nkoroi/county-league/internal/domain/competition"
	"github.com/nkoroi/county-league/internal/domain/county"
	"github.com/nkoroi/county-league/internal/domain/match"
	"github.com/nkoroi/county-league/internal/domain/media"
	"github.com/nkoroi/county-league/internal/domain/news"
	"github.com/nkoroi/county-league/internal/domain/player"
	"github.com/nkoroi/county-league/internal/domain/squad"
	"github.com/nkoroi/county-league/internal/domain/standing"
	"github.com/nkoroi/county-league/internal/domain/team"
	"github.com/nkoroi/county-league/internal/domain/user"
	"github.com/nkoroi/county-league/internal/domain/views"
)

// Each repository must satisfy its domain contract.
var (
	_ user.Repository        = (*UserRepository)(nil)
	_ county.Repository      = (*CountyRepository)(nil)
	_ team.Repository        = (*TeamRepository)(nil)
	_ player.Repository      = (*PlayerRepository)(nil)
	_ squad.Repository       = (*SquadRepository)(nil)
	_ competition.Repository = (*CompetitionRepository)(nil)
	_ standing.Repository    = (*StandingRepository)(nil)
	_ match.Repository       = (*MatchRepository)(nil)
	_ news.Repository        = (*NewsRepository)(nil)
	_ media.Repository       = (*MediaRepository)(nil)
	_ auditlog.Repository    = (*AuditLogRepository)(nil)
	_ views.Reader           = (*ViewRepository)(nil)
)
