package roster

import (
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreatePlayerFunc       func(name string, jersey *int, position *string) (*Player, error)
	GetPlayerFunc          func(id int64) (*Player, error)
	UpdatePlayerFunc       func(id int64, name *string, jersey *int, position *string) (*Player, error)
	SetPlayerPhotoFunc     func(id int64, path string) error
	DeletePlayerFunc       func(id int64) error
	ListPlayersFunc        func() ([]Player, error)
	CreateMatchFunc        func(date string, opponent *string, isHome bool, homeScore, awayScore *int) (*Match, error)
	GetMatchFunc           func(id int64) (*Match, error)
	DeleteMatchFunc        func(id int64) error
	ListMatchesFunc        func(r DateRange) ([]Match, error)
	AddStatEntryFunc       func(in StatInput) (*StatEntry, error)
	GetStatEntryFunc       func(id int64) (*StatEntry, error)
	UpdateStatEntryFunc    func(id int64, goals, assists int, appearances *int) (*StatEntry, error)
	DeleteStatEntryFunc    func(id int64) error
	ListStatsForPlayerFunc func(playerID int64) ([]StatEntry, error)
	ListStatsForMatchFunc  func(matchID int64) ([]StatEntry, error)
	ListAllStatsFunc       func() ([]StatEntry, error)

	// Call records
	CreatePlayerCalls    []string
	DeletePlayerCalls    []int64
	CreateMatchCalls     []string
	DeleteMatchCalls     []int64
	AddStatEntryCalls    []StatInput
	UpdateStatEntryCalls []int64
	DeleteStatEntryCalls []int64
	ClearCalls           int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = nil
	m.DeletePlayerCalls = nil
	m.CreateMatchCalls = nil
	m.DeleteMatchCalls = nil
	m.AddStatEntryCalls = nil
	m.UpdateStatEntryCalls = nil
	m.DeleteStatEntryCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) CreatePlayer(name string, jersey *int, position *string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, name)
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(name, jersey, position)
	}
	return &Player{Name: name, Jersey: jersey, Position: position}, nil
}

func (m *MockStore) GetPlayer(id int64) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) UpdatePlayer(id int64, name *string, jersey *int, position *string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, name, jersey, position)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) SetPlayerPhoto(id int64, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetPlayerPhotoFunc != nil {
		return m.SetPlayerPhotoFunc(id, path)
	}
	return nil
}

func (m *MockStore) DeletePlayer(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) CreateMatch(date string, opponent *string, isHome bool, homeScore, awayScore *int) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, date)
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(date, opponent, isHome, homeScore, awayScore)
	}
	return &Match{Date: date, Opponent: opponent, IsHome: isHome, HomeScore: homeScore, AwayScore: awayScore}, nil
}

func (m *MockStore) GetMatch(id int64) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(id)
	}
	return nil, ErrMatchNotFound
}

func (m *MockStore) DeleteMatch(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, id)
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(id)
	}
	return nil
}

func (m *MockStore) ListMatches(r DateRange) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(r)
	}
	return nil, nil
}

func (m *MockStore) AddStatEntry(in StatInput) (*StatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddStatEntryCalls = append(m.AddStatEntryCalls, in)
	if m.AddStatEntryFunc != nil {
		return m.AddStatEntryFunc(in)
	}
	return &StatEntry{PlayerID: in.PlayerID, MatchID: in.MatchID, Goals: in.Goals, Assists: in.Assists, Appearances: in.normalizedAppearances()}, nil
}

func (m *MockStore) GetStatEntry(id int64) (*StatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatEntryFunc != nil {
		return m.GetStatEntryFunc(id)
	}
	return nil, ErrStatNotFound
}

func (m *MockStore) UpdateStatEntry(id int64, goals, assists int, appearances *int) (*StatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatEntryCalls = append(m.UpdateStatEntryCalls, id)
	if m.UpdateStatEntryFunc != nil {
		return m.UpdateStatEntryFunc(id, goals, assists, appearances)
	}
	return nil, ErrStatNotFound
}

func (m *MockStore) DeleteStatEntry(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteStatEntryCalls = append(m.DeleteStatEntryCalls, id)
	if m.DeleteStatEntryFunc != nil {
		return m.DeleteStatEntryFunc(id)
	}
	return nil
}

func (m *MockStore) ListStatsForPlayer(playerID int64) ([]StatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListStatsForPlayerFunc != nil {
		return m.ListStatsForPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) ListStatsForMatch(matchID int64) ([]StatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListStatsForMatchFunc != nil {
		return m.ListStatsForMatchFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) ListAllStats() ([]StatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListAllStatsFunc != nil {
		return m.ListAllStatsFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}
