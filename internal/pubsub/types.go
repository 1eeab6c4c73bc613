package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchRecorded EventType = "match-recorded"
	EventStatsUpdated  EventType = "stats-updated"
	EventPlayerDeleted EventType = "player-deleted"
)

// MatchRecordedEvent is published when a scoreline is recorded for a match.
type MatchRecordedEvent struct {
	MatchID int64  `msgpack:"match_id"`
	Date    string `msgpack:"date"`
	Outcome string `msgpack:"outcome"`
}

// StatsUpdatedEvent is published when a player's stat line changes.
type StatsUpdatedEvent struct {
	PlayerID int64 `msgpack:"player_id"`
	MatchID  int64 `msgpack:"match_id"`
}

// PlayerDeletedEvent is published when a player and their stats are removed.
type PlayerDeletedEvent struct {
	PlayerID int64 `msgpack:"player_id"`
}
