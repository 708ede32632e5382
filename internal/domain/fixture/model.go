package fixture

import (
	"fmt"
	"time"
)

// Status tracks a fixture through its lifecycle. Only completed
// fixtures contribute to the standings table.
type Status int

const (
	StatusScheduled Status = iota
	StatusUnderway
	StatusCompleted
	StatusCancelled
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusUnderway:
		return "underway"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseStatus converts a wire status string into a Status.
func ParseStatus(raw string) (Status, error) {
	switch raw {
	case "scheduled":
		return StatusScheduled, nil
	case "underway":
		return StatusUnderway, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	case "abandoned":
		return StatusAbandoned, nil
	default:
		return StatusScheduled, fmt.Errorf("unknown fixture status %q", raw)
	}
}

// CountsForStandings reports whether a fixture in this status may
// contribute a result to the standings computation.
func (s Status) CountsForStandings() bool {
	return s == StatusCompleted
}

// Fixture is a single match between two teams of the same league.
type Fixture struct {
	ID         string
	LeagueID   string
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	Venue      string
	Status     Status
}

func (f Fixture) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fixture id is required")
	}
	if f.LeagueID == "" {
		return fmt.Errorf("fixture league id is required")
	}
	if f.HomeTeamID == "" || f.AwayTeamID == "" {
		return fmt.Errorf("fixture requires both home and away team ids")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture home and away teams must differ")
	}

	return nil
}
