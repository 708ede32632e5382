package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/rugby-league/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	byID          map[string]team.Team
	teamsByLeague map[string][]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[string]team.Team, len(teams))
	teamsByLeague := make(map[string][]string)
	for _, t := range teams {
		byID[t.ID] = t
		teamsByLeague[t.LeagueID] = append(teamsByLeague[t.LeagueID], t.ID)
	}

	return &TeamRepository{
		byID:          byID,
		teamsByLeague: teamsByLeague,
	}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.teamsByLeague[leagueID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}
