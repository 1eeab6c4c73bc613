package roster

// Store defines the interface for interacting with the team's data. It is the
// sole owner and mutator of players, matches and stat entries; everything
// downstream reads immutable snapshots.
type Store interface {
	CreatePlayer(name string, jersey *int, position *string) (*Player, error)
	GetPlayer(id int64) (*Player, error)
	UpdatePlayer(id int64, name *string, jersey *int, position *string) (*Player, error)
	SetPlayerPhoto(id int64, path string) error
	DeletePlayer(id int64) error
	ListPlayers() ([]Player, error)

	CreateMatch(date string, opponent *string, isHome bool, homeScore, awayScore *int) (*Match, error)
	GetMatch(id int64) (*Match, error)
	DeleteMatch(id int64) error
	ListMatches(r DateRange) ([]Match, error)

	AddStatEntry(in StatInput) (*StatEntry, error)
	GetStatEntry(id int64) (*StatEntry, error)
	UpdateStatEntry(id int64, goals, assists int, appearances *int) (*StatEntry, error)
	DeleteStatEntry(id int64) error
	ListStatsForPlayer(playerID int64) ([]StatEntry, error)
	ListStatsForMatch(matchID int64) ([]StatEntry, error)
	ListAllStats() ([]StatEntry, error)

	Clear()
}
