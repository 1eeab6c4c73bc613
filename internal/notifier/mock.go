package notifier

import (
	"sync"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendResultNotificationFunc func(match *roster.Match, summary stats.MatchSummary, record stats.TeamRecord, dryRun bool) error
	SendLeaderboardFunc        func(metric stats.Metric, entries []stats.RankingEntry, dryRun bool) error
	SendTeamRecordFunc         func(record stats.TeamRecord, dryRun bool) error

	// Call records
	SendResultNotificationCalls []struct {
		Match  *roster.Match
		Record stats.TeamRecord
		DryRun bool
	}
	SendLeaderboardCalls []struct {
		Metric  stats.Metric
		Entries []stats.RankingEntry
		DryRun  bool
	}
	SendTeamRecordCalls []struct {
		Record stats.TeamRecord
		DryRun bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendTeamRecordCalls = nil
}

func (m *Mock) SendResultNotification(match *roster.Match, summary stats.MatchSummary, record stats.TeamRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct {
		Match  *roster.Match
		Record stats.TeamRecord
		DryRun bool
	}{match, record, dryRun})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, summary, record, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(metric stats.Metric, entries []stats.RankingEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, struct {
		Metric  stats.Metric
		Entries []stats.RankingEntry
		DryRun  bool
	}{metric, entries, dryRun})
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(metric, entries, dryRun)
	}
	return nil
}

func (m *Mock) SendTeamRecord(record stats.TeamRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTeamRecordCalls = append(m.SendTeamRecordCalls, struct {
		Record stats.TeamRecord
		DryRun bool
	}{record, dryRun})
	if m.SendTeamRecordFunc != nil {
		return m.SendTeamRecordFunc(record, dryRun)
	}
	return nil
}
