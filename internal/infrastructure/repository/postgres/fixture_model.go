package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID        int64        `db:"id"`
	PublicID  string       `db:"public_id"`
	LeagueID  string       `db:"league_public_id"`
	HomeTeam  string       `db:"home_team_public_id"`
	AwayTeam  string       `db:"away_team_public_id"`
	KickoffAt sql.NullTime `db:"kickoff_at"`
	Venue     string       `db:"venue"`
	Status    string       `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt *time.Time   `db:"deleted_at"`
}

type fixtureInsertModel struct {
	PublicID  string     `db:"public_id"`
	LeagueID  string     `db:"league_public_id"`
	HomeTeam  string     `db:"home_team_public_id"`
	AwayTeam  string     `db:"away_team_public_id"`
	KickoffAt *time.Time `db:"kickoff_at"`
	Venue     string     `db:"venue"`
	Status    string     `db:"status"`
}
