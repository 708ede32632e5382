package standing

// Points awarded per match outcome, rugby league rules.
const (
	WinPoints  = 4
	DrawPoints = 2

	// LosingBonusMargin is the maximum losing margin that still
	// earns the loser a bonus point.
	LosingBonusMargin = 7

	// TryBonusThreshold is the minimum number of tries in a match
	// that earns a team an attacking bonus point.
	TryBonusThreshold = 4
)

// Standing is one team's accumulated league record.
//
// Position is derived at read time from the ranked table and is
// never persisted.
type Standing struct {
	LeagueID         string
	TeamID           string
	Played           int
	Won              int
	Drawn            int
	Lost             int
	PointsFor        int
	PointsAgainst    int
	PointsDifference int
	BonusPoints      int
	Points           int

	Position int
}
