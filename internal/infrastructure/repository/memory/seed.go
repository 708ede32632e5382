package memory

import (
	"time"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/team"
)

const (
	LeagueIDSuperLeague  = "eng-super-league"
	LeagueIDChampionship = "eng-championship"

	SeedSeason     = "2025-26"
	ArchivedSeason = "2024-25"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDSuperLeague, Name: "Super League", Season: SeedSeason},
		{ID: LeagueIDChampionship, Name: "Championship", Season: ArchivedSeason},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "sl-wigan", LeagueID: LeagueIDSuperLeague, Name: "Wigan Warriors", Short: "WIG"},
		{ID: "sl-leeds", LeagueID: LeagueIDSuperLeague, Name: "Leeds Rhinos", Short: "LEE"},
		{ID: "sl-sthelens", LeagueID: LeagueIDSuperLeague, Name: "St Helens", Short: "STH"},
		{ID: "sl-warrington", LeagueID: LeagueIDSuperLeague, Name: "Warrington Wolves", Short: "WAR"},
		{ID: "ch-fev", LeagueID: LeagueIDChampionship, Name: "Featherstone Rovers", Short: "FEV"},
		{ID: "ch-york", LeagueID: LeagueIDChampionship, Name: "York Knights", Short: "YRK"},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fx-sl-001",
			LeagueID:   LeagueIDSuperLeague,
			HomeTeamID: "sl-wigan",
			AwayTeamID: "sl-leeds",
			KickoffAt:  time.Date(2026, 2, 13, 20, 0, 0, 0, time.UTC),
			Venue:      "The Brick Community Stadium",
			Status:     fixture.StatusCompleted,
		},
		{
			ID:         "fx-sl-002",
			LeagueID:   LeagueIDSuperLeague,
			HomeTeamID: "sl-sthelens",
			AwayTeamID: "sl-warrington",
			KickoffAt:  time.Date(2026, 2, 14, 17, 30, 0, 0, time.UTC),
			Venue:      "Totally Wicked Stadium",
			Status:     fixture.StatusCompleted,
		},
		{
			ID:         "fx-sl-003",
			LeagueID:   LeagueIDSuperLeague,
			HomeTeamID: "sl-leeds",
			AwayTeamID: "sl-sthelens",
			KickoffAt:  time.Date(2026, 2, 20, 20, 0, 0, 0, time.UTC),
			Venue:      "Headingley",
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "fx-sl-004",
			LeagueID:   LeagueIDSuperLeague,
			HomeTeamID: "sl-warrington",
			AwayTeamID: "sl-wigan",
			KickoffAt:  time.Date(2026, 2, 21, 15, 0, 0, 0, time.UTC),
			Venue:      "Halliwell Jones Stadium",
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "fx-ch-001",
			LeagueID:   LeagueIDChampionship,
			HomeTeamID: "ch-fev",
			AwayTeamID: "ch-york",
			KickoffAt:  time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC),
			Venue:      "Post Office Road",
			Status:     fixture.StatusCompleted,
		},
	}
}

func SeedResults() []result.Result {
	minute := func(m int) *int { return &m }

	return []result.Result{
		{
			ID:        "res-sl-001",
			FixtureID: "fx-sl-001",
			HomeScore: 26,
			AwayScore: 20,
			HomeScorers: []result.Scorer{
				{Player: "Jai Field", Type: result.ScoreTry, Points: 4, Minute: minute(12)},
				{Player: "Harry Smith", Type: result.ScoreConversion, Points: 2, Minute: minute(13)},
				{Player: "Bevan French", Type: result.ScoreTry, Points: 4, Minute: minute(29)},
				{Player: "Harry Smith", Type: result.ScoreConversion, Points: 2, Minute: minute(30)},
				{Player: "Liam Marshall", Type: result.ScoreTry, Points: 4, Minute: minute(47)},
				{Player: "Harry Smith", Type: result.ScoreConversion, Points: 2, Minute: minute(48)},
				{Player: "Jake Wardle", Type: result.ScoreTry, Points: 4, Minute: minute(66)},
				{Player: "Harry Smith", Type: result.ScoreConversion, Points: 2, Minute: minute(67)},
				{Player: "Harry Smith", Type: result.ScorePenalty, Points: 2, Minute: minute(75)},
			},
			AwayScorers: []result.Scorer{
				{Player: "Ash Handley", Type: result.ScoreTry, Points: 4, Minute: minute(20)},
				{Player: "Brodie Croft", Type: result.ScoreConversion, Points: 2, Minute: minute(21)},
				{Player: "Harry Newman", Type: result.ScoreTry, Points: 4, Minute: minute(55)},
				{Player: "Brodie Croft", Type: result.ScoreConversion, Points: 2, Minute: minute(56)},
				{Player: "Lachie Miller", Type: result.ScoreTry, Points: 4, Minute: minute(71)},
				{Player: "Brodie Croft", Type: result.ScoreConversion, Points: 2, Minute: minute(72)},
				{Player: "Brodie Croft", Type: result.ScorePenalty, Points: 2, Minute: minute(78)},
			},
		},
		{
			ID:        "res-sl-002",
			FixtureID: "fx-sl-002",
			HomeScore: 18,
			AwayScore: 18,
			HomeScorers: []result.Scorer{
				{Player: "Jack Welsby", Type: result.ScoreTry, Points: 4, Minute: minute(8)},
				{Player: "Mark Percival", Type: result.ScoreConversion, Points: 2, Minute: minute(9)},
				{Player: "Penalty Try", Type: result.ScoreTry, Points: 4, Minute: minute(33), PenaltyTry: true},
				{Player: "Mark Percival", Type: result.ScoreConversion, Points: 2, Minute: minute(34)},
				{Player: "Mark Percival", Type: result.ScorePenalty, Points: 2, Minute: minute(52)},
				{Player: "Mark Percival", Type: result.ScorePenalty, Points: 2, Minute: minute(64)},
				{Player: "Jonny Lomax", Type: result.ScoreDropGoal, Points: 1, Minute: minute(77)},
				{Player: "Jonny Lomax", Type: result.ScoreDropGoal, Points: 1, Minute: minute(79)},
			},
			AwayScorers: []result.Scorer{
				{Player: "Matt Dufty", Type: result.ScoreTry, Points: 4, Minute: minute(15)},
				{Player: "Josh Thewlis", Type: result.ScoreConversion, Points: 2, Minute: minute(16)},
				{Player: "George Williams", Type: result.ScoreTry, Points: 4, Minute: minute(41)},
				{Player: "Josh Thewlis", Type: result.ScoreConversion, Points: 2, Minute: minute(42)},
				{Player: "Josh Thewlis", Type: result.ScorePenalty, Points: 2, Minute: minute(60)},
				{Player: "Josh Thewlis", Type: result.ScorePenalty, Points: 2, Minute: minute(70)},
				{Player: "Josh Thewlis", Type: result.ScorePenalty, Points: 2, Minute: minute(74)},
			},
		},
		{
			ID:        "res-ch-001",
			FixtureID: "fx-ch-001",
			HomeScore: 30,
			AwayScore: 12,
		},
	}
}
