// Package stats turns raw per-player, per-match records into rankings and a
// team win/draw/loss record. Every operation is a pure reducer over a
// read-only snapshot of the roster store; none of them fail at runtime on
// empty, all-zero or all-pending input.
package stats

import "github.com/Dmorales2498/Entes-Stats/internal/roster"

// Reader is the read-only slice of the roster store the engine consumes.
type Reader interface {
	ListPlayers() ([]roster.Player, error)
	ListMatches(r roster.DateRange) ([]roster.Match, error)
	ListStatsForPlayer(playerID int64) ([]roster.StatEntry, error)
	ListAllStats() ([]roster.StatEntry, error)
}

// Engine computes totals, team records, rankings and match history.
type Engine struct {
	store Reader
}

// New creates a new Engine reading from the given store.
func New(store Reader) *Engine {
	return &Engine{store: store}
}
