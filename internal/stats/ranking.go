package stats

import (
	"fmt"
	"sort"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
)

// Metric selects which total a ranking is sorted by.
type Metric string

const (
	MetricGoals         Metric = "goals"
	MetricAssists       Metric = "assists"
	MetricContributions Metric = "contributions"
)

// ParseMetric validates a metric name supplied by a caller.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricGoals, MetricAssists, MetricContributions:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown ranking metric %q", s)
}

// RankingEntry is one leaderboard row.
type RankingEntry struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Value      int    `json:"value"`
}

// TopBy ranks every known player by the chosen metric. Players without stat
// entries appear with value 0, so nobody is silently dropped. Order is
// descending by value with ties broken by ascending player id, which keeps
// rankings reproducible. A limit <= 0 returns all rows.
func (e *Engine) TopBy(metric Metric, limit int) ([]RankingEntry, error) {
	players, err := e.store.ListPlayers()
	if err != nil {
		return nil, err
	}
	entries, err := e.store.ListAllStats()
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[int64][]roster.StatEntry, len(players))
	for _, entry := range entries {
		byPlayer[entry.PlayerID] = append(byPlayer[entry.PlayerID], entry)
	}

	ranking := make([]RankingEntry, 0, len(players))
	for _, p := range players {
		totals := reduceTotals(byPlayer[p.ID])
		var value int
		switch metric {
		case MetricGoals:
			value = totals.Goals
		case MetricAssists:
			value = totals.Assists
		case MetricContributions:
			value = totals.Contributions
		}
		ranking = append(ranking, RankingEntry{PlayerID: p.ID, PlayerName: p.Name, Value: value})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Value != ranking[j].Value {
			return ranking[i].Value > ranking[j].Value
		}
		return ranking[i].PlayerID < ranking[j].PlayerID
	})

	if limit > 0 && limit < len(ranking) {
		ranking = ranking[:limit]
	}
	return ranking, nil
}
