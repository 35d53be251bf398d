// Package memory backs every repository interface with in-process maps.
// One Store holds all entities behind a single lock so cross-entity reads
// observe one consistent snapshot, mirroring what the SQL implementation
// gets from a transaction.
package memory

import (
	"sort"
	"sync"
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
)

type Store struct {
	mu sync.RWMutex

	users        map[int64]user.User
	counties     map[int64]county.County
	teams        map[int64]team.Team
	players      map[int64]player.Player
	squads       map[int64]squad.Membership
	competitions map[int64]competition.Competition
	standings    map[int64]standing.Standing
	matches      map[int64]match.Match
	lineups      map[int64]match.Lineup
	stats        map[int64]match.Stats
	events       map[int64]match.Event
	news         map[int64]news.Article
	media        map[int64]media.Item
	audits       []auditlog.Entry

	seqs map[string]int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]user.User),
		counties:     make(map[int64]county.County),
		teams:        make(map[int64]team.Team),
		players:      make(map[int64]player.Player),
		squads:       make(map[int64]squad.Membership),
		competitions: make(map[int64]competition.Competition),
		standings:    make(map[int64]standing.Standing),
		matches:      make(map[int64]match.Match),
		lineups:      make(map[int64]match.Lineup),
		stats:        make(map[int64]match.Stats),
		events:       make(map[int64]match.Event),
		news:         make(map[int64]news.Article),
		media:        make(map[int64]media.Item),
		seqs:         make(map[string]int64),
		now:          time.Now,
	}
}

// nextID is called with the write lock held.
func (s *Store) nextID(table string) int64 {
	s.seqs[table]++
	return s.seqs[table]
}

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
