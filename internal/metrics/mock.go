package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchesRecorded     int
	statEntriesRecorded int
	playersDeleted      int
	reportsServed       int
	reportDurations     []float64
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		reportDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncStatEntriesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statEntriesRecorded++
}

func (m *Mock) IncPlayersDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersDeleted++
}

func (m *Mock) IncReportsServed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportsServed++
}

func (m *Mock) ObserveReportDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportDurations = append(m.reportDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// StatEntriesRecorded returns the number of times IncStatEntriesRecorded was called.
func (m *Mock) StatEntriesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statEntriesRecorded
}

// PlayersDeleted returns the number of times IncPlayersDeleted was called.
func (m *Mock) PlayersDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersDeleted
}

// ReportsServed returns the number of times IncReportsServed was called.
func (m *Mock) ReportsServed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reportsServed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
