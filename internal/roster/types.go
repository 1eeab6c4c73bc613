package roster

import (
	"database/sql"
	"errors"
	"sync"
)

// store handles all database operations for the roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Sentinel errors returned when a write references a missing row.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrStatNotFound   = errors.New("stat entry not found")
)

// Player is a member of the tracked team.
type Player struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Jersey    *int    `json:"jersey,omitempty"`
	Position  *string `json:"position,omitempty"`
	PhotoPath *string `json:"photo_path,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// Match is a single fixture from the tracked team's calendar. Date is a
// zero-padded YYYY-MM-DD string so date ranges compare lexicographically.
// HomeScore/AwayScore are nil while the match is pending.
type Match struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Opponent  *string `json:"opponent,omitempty"`
	IsHome    bool    `json:"is_home"`
	HomeScore *int    `json:"home_score,omitempty"`
	AwayScore *int    `json:"away_score,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// StatEntry records one player's line for one match. Multiple entries for the
// same (player, match) pair are permitted; aggregations sum them all.
type StatEntry struct {
	ID          int64 `json:"id"`
	PlayerID    int64 `json:"player_id"`
	MatchID     int64 `json:"match_id"`
	Goals       int   `json:"goals"`
	Assists     int   `json:"assists"`
	Appearances *int  `json:"appearances,omitempty"`
	CreatedAt   int64 `json:"created_at"`
}

// StatInput is the write-side shape for a stat entry. Minutes is the legacy
// field name for Appearances; when both are supplied Appearances wins.
type StatInput struct {
	PlayerID    int64 `json:"player_id"`
	MatchID     int64 `json:"match_id"`
	Goals       int   `json:"goals"`
	Assists     int   `json:"assists"`
	Appearances *int  `json:"appearances,omitempty"`
	Minutes     *int  `json:"minutes,omitempty"`
}

// normalizedAppearances resolves the legacy minutes field into the canonical
// appearances attribute.
func (in StatInput) normalizedAppearances() *int {
	if in.Appearances != nil {
		return in.Appearances
	}
	return in.Minutes
}

// DateRange bounds a match query. Empty strings mean unbounded; both bounds
// are inclusive and compared lexicographically against the match date.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether the given ISO date falls inside the range.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}
