package notifier

import (
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For a match recorded with a final scoreline
	SendResultNotification(match *roster.Match, summary stats.MatchSummary, record stats.TeamRecord, dryRun bool) error
	// For posting a ranking to the team channel
	SendLeaderboard(metric stats.Metric, entries []stats.RankingEntry, dryRun bool) error
	// For posting the running team record
	SendTeamRecord(record stats.TeamRecord, dryRun bool) error
}
