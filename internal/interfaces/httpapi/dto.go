package httpapi

import (
	"time"

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

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// userDTO deliberately has no password hash field.
type userDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	IsActive  bool   `json:"is_active"`
	IsDeleted bool   `json:"is_deleted"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: isoTime(u.CreatedAt),
		UpdatedAt: isoTime(u.UpdatedAt),
		IsActive:  u.IsActive,
		IsDeleted: u.IsDeleted,
	}
}

type countyDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	IsActive  bool   `json:"is_active"`
	IsDeleted bool   `json:"is_deleted"`
}

func countyToDTO(c county.County) countyDTO {
	return countyDTO{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: isoTime(c.CreatedAt),
		UpdatedAt: isoTime(c.UpdatedAt),
		IsActive:  c.IsActive,
		IsDeleted: c.IsDeleted,
	}
}

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo,omitempty"`
	CountyID  *int64 `json:"county_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	IsActive  bool   `json:"is_active"`
	IsDeleted bool   `json:"is_deleted"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		Logo:      t.Logo,
		CountyID:  t.CountyID,
		CreatedAt: isoTime(t.CreatedAt),
		UpdatedAt: isoTime(t.UpdatedAt),
		IsActive:  t.IsActive,
		IsDeleted: t.IsDeleted,
	}
}

type teamSummaryDTO struct {
	Team   teamDTO    `json:"team"`
	County *countyDTO `json:"county"`
}

func teamSummaryToDTO(s views.TeamSummary) teamSummaryDTO {
	dto := teamSummaryDTO{Team: teamToDTO(s.Team)}
	if s.County != nil {
		c := countyToDTO(*s.County)
		dto.County = &c
	}
	return dto
}

type teamDetailDTO struct {
	Team      teamDTO        `json:"team"`
	County    *countyDTO     `json:"county"`
	Squad     []squadSlotDTO `json:"squad"`
	Matches   []matchViewDTO `json:"matches"`
	Lineups   []lineupDTO    `json:"lineups"`
	Standings []standingDTO  `json:"standings"`
}

func teamDetailToDTO(d views.TeamDetail) teamDetailDTO {
	dto := teamDetailDTO{
		Team:      teamToDTO(d.Team),
		Squad:     make([]squadSlotDTO, 0, len(d.Squad)),
		Matches:   make([]matchViewDTO, 0, len(d.Matches)),
		Lineups:   make([]lineupDTO, 0, len(d.Lineups)),
		Standings: make([]standingDTO, 0, len(d.Standings)),
	}
	if d.County != nil {
		c := countyToDTO(*d.County)
		dto.County = &c
	}
	for _, s := range d.Squad {
		dto.Squad = append(dto.Squad, squadSlotToDTO(s))
	}
	for _, m := range d.Matches {
		dto.Matches = append(dto.Matches, matchViewToDTO(m))
	}
	for _, l := range d.Lineups {
		dto.Lineups = append(dto.Lineups, lineupToDTO(l))
	}
	for _, s := range d.Standings {
		dto.Standings = append(dto.Standings, standingToDTO(s))
	}
	return dto
}

type teamSquadViewDTO struct {
	Team      teamDTO        `json:"team"`
	Squad     []squadSlotDTO `json:"squad"`
	Matches   []matchDTO     `json:"matches"`
	Standings []standingDTO  `json:"standings"`
}

func teamSquadViewToDTO(v views.TeamSquadView) teamSquadViewDTO {
	dto := teamSquadViewDTO{
		Team:      teamToDTO(v.Team),
		Squad:     make([]squadSlotDTO, 0, len(v.Squad)),
		Matches:   make([]matchDTO, 0, len(v.Matches)),
		Standings: make([]standingDTO, 0, len(v.Standings)),
	}
	for _, s := range v.Squad {
		dto.Squad = append(dto.Squad, squadSlotToDTO(s))
	}
	for _, m := range v.Matches {
		dto.Matches = append(dto.Matches, matchToDTO(m))
	}
	for _, s := range v.Standings {
		dto.Standings = append(dto.Standings, standingToDTO(s))
	}
	return dto
}

type playerDTO struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality,omitempty"`
	Photo       string `json:"photo,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	IsActive    bool   `json:"is_active"`
	IsDeleted   bool   `json:"is_deleted"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Position:    string(p.Position),
		Nationality: p.Nationality,
		Photo:       p.Photo,
		CreatedAt:   isoTime(p.CreatedAt),
		UpdatedAt:   isoTime(p.UpdatedAt),
		IsActive:    p.IsActive,
		IsDeleted:   p.IsDeleted,
	}
}

type squadMembershipDTO struct {
	ID          int64  `json:"id"`
	TeamID      int64  `json:"team_id"`
	PlayerID    int64  `json:"player_id"`
	SquadNumber int    `json:"squad_number"`
	Season      string `json:"season"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	IsActive    bool   `json:"is_active"`
	IsDeleted   bool   `json:"is_deleted"`
}

func squadMembershipToDTO(m squad.Membership) squadMembershipDTO {
	return squadMembershipDTO{
		ID:          m.ID,
		TeamID:      m.TeamID,
		PlayerID:    m.PlayerID,
		SquadNumber: m.SquadNumber,
		Season:      m.Season,
		CreatedAt:   isoTime(m.CreatedAt),
		UpdatedAt:   isoTime(m.UpdatedAt),
		IsActive:    m.IsActive,
		IsDeleted:   m.IsDeleted,
	}
}

type squadSlotDTO struct {
	TeamID      int64     `json:"team_id"`
	PlayerID    int64     `json:"player_id"`
	SquadNumber int       `json:"squad_number"`
	Season      string    `json:"season"`
	Player      playerDTO `json:"player_data"`
}

func squadSlotToDTO(s views.SquadSlot) squadSlotDTO {
	return squadSlotDTO{
		TeamID:      s.TeamID,
		PlayerID:    s.PlayerID,
		SquadNumber: s.SquadNumber,
		Season:      s.Season,
		Player:      playerToDTO(s.Player),
	}
}

type competitionDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Season    string `json:"season"`
	Types     string `json:"types"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	IsActive  bool   `json:"is_active"`
	IsDeleted bool   `json:"is_deleted"`
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{
		ID:        c.ID,
		Name:      c.Name,
		Season:    c.Season,
		Types:     string(c.Type),
		CreatedAt: isoTime(c.CreatedAt),
		UpdatedAt: isoTime(c.UpdatedAt),
		IsActive:  c.IsActive,
		IsDeleted: c.IsDeleted,
	}
}

type matchDTO struct {
	ID            int64  `json:"id"`
	CompetitionID *int64 `json:"competition_id"`
	HomeTeamID    int64  `json:"home_team_id"`
	AwayTeamID    int64  `json:"away_team_id"`
	HomeScore     int    `json:"home_score"`
	AwayScore     int    `json:"away_score"`
	AddedTime     int    `json:"added_time"`
	ExtraTime     int    `json:"extra_time"`
	Status        string `json:"status"`
	MatchDate     string `json:"match_date"`
	MatchTime     string `json:"match_time"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	IsActive      bool   `json:"is_active"`
	IsDeleted     bool   `json:"is_deleted"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		AddedTime:     m.AddedTime,
		ExtraTime:     m.ExtraTime,
		Status:        string(m.Status),
		MatchDate:     m.MatchDate,
		MatchTime:     m.MatchTime,
		CreatedAt:     isoTime(m.CreatedAt),
		UpdatedAt:     isoTime(m.UpdatedAt),
		IsActive:      m.IsActive,
		IsDeleted:     m.IsDeleted,
	}
}

// matchViewDTO nests the one-hop references. A missing reference renders
// as an empty descriptor, never as an error.
type matchViewDTO struct {
	Match       matchDTO        `json:"match"`
	HomeTeam    teamDTO         `json:"home_team"`
	AwayTeam    teamDTO         `json:"away_team"`
	Competition *competitionDTO `json:"competition"`
}

func matchViewToDTO(m views.MatchWithRefs) matchViewDTO {
	dto := matchViewDTO{
		Match:    matchToDTO(m.Match),
		HomeTeam: teamToDTO(m.HomeTeam),
		AwayTeam: teamToDTO(m.AwayTeam),
	}
	if m.Competition != nil {
		c := competitionToDTO(*m.Competition)
		dto.Competition = &c
	}
	return dto
}

type lineupDTO struct {
	ID         int64  `json:"id"`
	MatchID    int64  `json:"match_id"`
	TeamID     int64  `json:"team_id"`
	PlayerID   int64  `json:"player_id"`
	IsStarting bool   `json:"is_starting"`
	Position   string `json:"position,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func lineupToDTO(l match.Lineup) lineupDTO {
	return lineupDTO{
		ID:         l.ID,
		MatchID:    l.MatchID,
		TeamID:     l.TeamID,
		PlayerID:   l.PlayerID,
		IsStarting: l.IsStarting,
		Position:   l.Position,
		CreatedAt:  isoTime(l.CreatedAt),
		UpdatedAt:  isoTime(l.UpdatedAt),
	}
}

type statsDTO struct {
	ID             int64   `json:"id"`
	MatchID        int64   `json:"match_id"`
	TeamID         int64   `json:"team_id"`
	Possession     float64 `json:"possession"`
	ShotsOnTarget  int     `json:"shots_on_target"`
	ShotsOffTarget int     `json:"shots_off_target"`
	Corners        int     `json:"corners"`
	Fouls          int     `json:"fouls"`
	YellowCards    int     `json:"yellow_cards"`
	RedCards       int     `json:"red_cards"`
	Saves          int     `json:"saves"`
	Offsides       int     `json:"offsides"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func statsToDTO(s match.Stats) statsDTO {
	return statsDTO{
		ID:             s.ID,
		MatchID:        s.MatchID,
		TeamID:         s.TeamID,
		Possession:     s.Possession,
		ShotsOnTarget:  s.ShotsOnTarget,
		ShotsOffTarget: s.ShotsOffTarget,
		Corners:        s.Corners,
		Fouls:          s.Fouls,
		YellowCards:    s.YellowCards,
		RedCards:       s.RedCards,
		Saves:          s.Saves,
		Offsides:       s.Offsides,
		CreatedAt:      isoTime(s.CreatedAt),
		UpdatedAt:      isoTime(s.UpdatedAt),
	}
}

type eventDTO struct {
	ID        int64  `json:"id"`
	MatchID   int64  `json:"match_id"`
	TeamID    int64  `json:"team_id"`
	PlayerID  int64  `json:"player_id"`
	EventType string `json:"event_type"`
	EventTime string `json:"event_time"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func eventToDTO(e match.Event) eventDTO {
	return eventDTO{
		ID:        e.ID,
		MatchID:   e.MatchID,
		TeamID:    e.TeamID,
		PlayerID:  e.PlayerID,
		EventType: string(e.Type),
		EventTime: e.EventTime,
		CreatedAt: isoTime(e.CreatedAt),
		UpdatedAt: isoTime(e.UpdatedAt),
	}
}

type standingDTO struct {
	ID            int64  `json:"id"`
	CompetitionID int64  `json:"competition_id"`
	TeamID        int64  `json:"team_id"`
	Played        int    `json:"played"`
	Won           int    `json:"won"`
	Drawn         int    `json:"drawn"`
	Lost          int    `json:"lost"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
	Points        int    `json:"points"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func standingToDTO(s standing.Standing) standingDTO {
	return standingDTO{
		ID:            s.ID,
		CompetitionID: s.CompetitionID,
		TeamID:        s.TeamID,
		Played:        s.Played,
		Won:           s.Won,
		Drawn:         s.Drawn,
		Lost:          s.Lost,
		GoalsFor:      s.GoalsFor,
		GoalsAgainst:  s.GoalsAgainst,
		Points:        s.Points,
		CreatedAt:     isoTime(s.CreatedAt),
		UpdatedAt:     isoTime(s.UpdatedAt),
	}
}

type standingRowDTO struct {
	Standing standingDTO `json:"standing"`
	Team     teamDTO     `json:"team"`
}

func standingRowToDTO(r views.StandingRow) standingRowDTO {
	return standingRowDTO{
		Standing: standingToDTO(r.Standing),
		Team:     teamToDTO(r.Team),
	}
}

type newsDTO struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Image         string `json:"image,omitempty"`
	AuthorID      *int64 `json:"author_id"`
	TeamID        *int64 `json:"team_id"`
	MatchID       *int64 `json:"match_id"`
	CompetitionID *int64 `json:"competition_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	IsActive      bool   `json:"is_active"`
	IsDeleted     bool   `json:"is_deleted"`
}

func newsToDTO(a news.Article) newsDTO {
	return newsDTO{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		Image:         a.Image,
		AuthorID:      a.AuthorID,
		TeamID:        a.TeamID,
		MatchID:       a.MatchID,
		CompetitionID: a.CompetitionID,
		CreatedAt:     isoTime(a.CreatedAt),
		UpdatedAt:     isoTime(a.UpdatedAt),
		IsActive:      a.IsActive,
		IsDeleted:     a.IsDeleted,
	}
}

type mediaDTO struct {
	ID         int64  `json:"id"`
	FilePath   string `json:"file_path"`
	FileType   string `json:"file_type"`
	Caption    string `json:"caption,omitempty"`
	MatchID    *int64 `json:"match_id"`
	TeamID     *int64 `json:"team_id"`
	PlayerID   *int64 `json:"player_id"`
	UploadedBy *int64 `json:"uploaded_by"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func mediaToDTO(i media.Item) mediaDTO {
	return mediaDTO{
		ID:         i.ID,
		FilePath:   i.FileRef,
		FileType:   string(i.FileType),
		Caption:    i.Caption,
		MatchID:    i.MatchID,
		TeamID:     i.TeamID,
		PlayerID:   i.PlayerID,
		UploadedBy: i.UploadedBy,
		CreatedAt:  isoTime(i.CreatedAt),
		UpdatedAt:  isoTime(i.UpdatedAt),
	}
}

type auditEntryDTO struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Action    string `json:"action"`
	ActionID  *int64 `json:"action_id"`
	CreatedAt string `json:"created_at"`
}

func auditEntryToDTO(e auditlog.Entry) auditEntryDTO {
	return auditEntryDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action,
		ActionID:  e.ActionID,
		CreatedAt: isoTime(e.CreatedAt),
	}
}
