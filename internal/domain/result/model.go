package result

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Scorer event types as they appear on the wire.
const (
	ScoreTry        = "try"
	ScoreConversion = "conversion"
	ScorePenalty    = "penalty"
	ScoreDropGoal   = "dropGoal"
)

// PenaltyTryPlayer is the placeholder player name recorded when a
// penalty try is awarded instead of an individual score.
const PenaltyTryPlayer = "Penalty Try"

// Scorer is one scoring event within a fixture result.
type Scorer struct {
	Player     string `json:"player"`
	Type       string `json:"type"`
	Points     int    `json:"points"`
	Minute     *int   `json:"minute,omitempty"`
	PenaltyTry bool   `json:"penaltyTry,omitempty"`
}

// Result is the final score of a completed fixture, with the
// per-side scoring events that produced it.
type Result struct {
	ID          string
	FixtureID   string
	HomeScore   int
	AwayScore   int
	HomeScorers []Scorer
	AwayScorers []Scorer
}

func (r Result) Validate() error {
	if r.FixtureID == "" {
		return fmt.Errorf("result fixture id is required")
	}
	if r.HomeScore < 0 || r.AwayScore < 0 {
		return fmt.Errorf("result scores must not be negative")
	}

	return nil
}

// TryCount returns how many try scoring events the list holds. A
// penalty try counts like any other try.
func TryCount(scorers []Scorer) int {
	n := 0
	for _, s := range scorers {
		if s.Type == ScoreTry {
			n++
		}
	}

	return n
}

// DecodeScorers parses a stored scorer list. Accepts a plain JSON
// array, a double-encoded JSON string holding an array, or null.
func DecodeScorers(raw []byte) ([]Scorer, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []Scorer{}, nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := sonic.UnmarshalString(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("decode scorers outer string: %w", err)
		}
		trimmed = strings.TrimSpace(inner)
		if trimmed == "" || trimmed == "null" {
			return []Scorer{}, nil
		}
	}

	var scorers []Scorer
	if err := sonic.UnmarshalString(trimmed, &scorers); err != nil {
		return nil, fmt.Errorf("decode scorers array: %w", err)
	}
	if scorers == nil {
		scorers = []Scorer{}
	}

	return scorers, nil
}
