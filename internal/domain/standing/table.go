package standing

import (
	"sort"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
)

// ComputeTable builds fresh standings for one league from its
// fixtures and their results.
//
// Only completed fixtures belonging to leagueID contribute. A
// completed fixture without a result is skipped. Teams are seeded
// into the table in first-appearance order across the fixture list,
// so sides without any completed result still show a zeroed row.
func ComputeTable(leagueID string, fixtures []fixture.Fixture, resultByFixture map[string]result.Result) []Standing {
	acc := map[string]*Standing{}
	var order []string

	seed := func(teamID string) *Standing {
		st, ok := acc[teamID]
		if !ok {
			st = &Standing{LeagueID: leagueID, TeamID: teamID}
			acc[teamID] = st
			order = append(order, teamID)
		}
		return st
	}

	for _, fx := range fixtures {
		if fx.LeagueID != leagueID {
			continue
		}

		home := seed(fx.HomeTeamID)
		away := seed(fx.AwayTeamID)

		if !fx.Status.CountsForStandings() {
			continue
		}
		res, ok := resultByFixture[fx.ID]
		if !ok {
			continue
		}

		applyResult(home, res.HomeScore, res.AwayScore, result.TryCount(res.HomeScorers))
		applyResult(away, res.AwayScore, res.HomeScore, result.TryCount(res.AwayScorers))
	}

	table := make([]Standing, 0, len(order))
	for _, teamID := range order {
		table = append(table, *acc[teamID])
	}

	Rank(table)

	return table
}

func applyResult(st *Standing, scored, conceded, tries int) {
	st.Played++
	st.PointsFor += scored
	st.PointsAgainst += conceded
	st.PointsDifference = st.PointsFor - st.PointsAgainst

	switch {
	case scored > conceded:
		st.Won++
		st.Points += WinPoints
	case scored == conceded:
		st.Drawn++
		st.Points += DrawPoints
	default:
		st.Lost++
		if scored+LosingBonusMargin >= conceded {
			st.BonusPoints++
			st.Points++
		}
	}

	if tries >= TryBonusThreshold {
		st.BonusPoints++
		st.Points++
	}
}

// Rank orders the table by points, then points difference, then
// points for, and stamps 1-based positions. The sort is stable so
// fully tied teams keep their incoming order.
func Rank(table []Standing) {
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.PointsDifference != b.PointsDifference {
			return a.PointsDifference > b.PointsDifference
		}
		return a.PointsFor > b.PointsFor
	})

	for i := range table {
		table[i].Position = i + 1
	}
}
