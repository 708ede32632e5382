package postgres

import "time"

type standingTableModel struct {
	ID               int64      `db:"id"`
	LeagueID         string     `db:"league_public_id"`
	TeamID           string     `db:"team_public_id"`
	Played           int        `db:"played"`
	Won              int        `db:"won"`
	Drawn            int        `db:"drawn"`
	Lost             int        `db:"lost"`
	PointsFor        int        `db:"points_for"`
	PointsAgainst    int        `db:"points_against"`
	PointsDifference int        `db:"points_difference"`
	BonusPoints      int        `db:"bonus_points"`
	Points           int        `db:"points"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

type standingInsertModel struct {
	LeagueID         string `db:"league_public_id"`
	TeamID           string `db:"team_public_id"`
	Played           int    `db:"played"`
	Won              int    `db:"won"`
	Drawn            int    `db:"drawn"`
	Lost             int    `db:"lost"`
	PointsFor        int    `db:"points_for"`
	PointsAgainst    int    `db:"points_against"`
	PointsDifference int    `db:"points_difference"`
	BonusPoints      int    `db:"bonus_points"`
	Points           int    `db:"points"`
}
