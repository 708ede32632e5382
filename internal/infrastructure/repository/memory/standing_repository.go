package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/rugby-league/internal/domain/standing"
)

type StandingRepository struct {
	mu   sync.RWMutex
	rows map[string]standing.Standing
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{rows: make(map[string]standing.Standing)}
}

func standingKey(leagueID, teamID string) string {
	return leagueID + "|" + teamID
}

func (r *StandingRepository) ListByLeague(_ context.Context, leagueID string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []standing.Standing
	for _, row := range r.rows {
		if row.LeagueID == leagueID {
			out = append(out, row)
		}
	}

	return out, nil
}

func (r *StandingRepository) Upsert(_ context.Context, st standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// transient rank never stored
	st.Position = 0
	r.rows[standingKey(st.LeagueID, st.TeamID)] = st

	return nil
}
