package stats_test

import (
	"testing"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func historyStore() *roster.MockStore {
	store := roster.NewMock()
	store.ListMatchesFunc = func(r roster.DateRange) ([]roster.Match, error) {
		matches := []roster.Match{
			{ID: 1, Date: "2025-09-01", Opponent: strPtr("Raptors"), IsHome: true, HomeScore: intPtr(3), AwayScore: intPtr(1)},
			{ID: 2, Date: "2025-09-08", Opponent: strPtr("Lobos"), IsHome: false, HomeScore: intPtr(2), AwayScore: intPtr(0)},
			{ID: 3, Date: "2025-09-08", Opponent: strPtr("Lobos B"), IsHome: true, HomeScore: intPtr(1), AwayScore: intPtr(1)},
			{ID: 4, Date: "2025-09-15", Opponent: strPtr("Águilas"), IsHome: true},
		}
		var out []roster.Match
		for _, m := range matches {
			if r.Contains(m.Date) {
				out = append(out, m)
			}
		}
		return out, nil
	}
	return store
}

func TestMatchHistoryOrdering(t *testing.T) {
	engine := stats.New(historyStore())

	history, err := engine.MatchHistory(roster.DateRange{}, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)

	// Most recent first; same-date matches keep insertion order.
	assert.Equal(t, int64(4), history[0].MatchID)
	assert.Equal(t, int64(2), history[1].MatchID)
	assert.Equal(t, int64(3), history[2].MatchID)
	assert.Equal(t, int64(1), history[3].MatchID)
}

func TestMatchHistoryPerspectiveAndOutcome(t *testing.T) {
	engine := stats.New(historyStore())

	history, err := engine.MatchHistory(roster.DateRange{}, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)

	pending := history[0]
	assert.Equal(t, stats.OutcomePending, pending.Outcome)
	assert.Nil(t, pending.TrackedGoals)
	assert.Nil(t, pending.OpponentGoals)

	// Away loss: stored 2-0 reads as 0-2 from the tracked perspective.
	awayLoss := history[1]
	assert.False(t, awayLoss.IsHome)
	assert.Equal(t, 0, *awayLoss.TrackedGoals)
	assert.Equal(t, 2, *awayLoss.OpponentGoals)
	assert.Equal(t, stats.OutcomeLoss, awayLoss.Outcome)

	assert.Equal(t, stats.OutcomeDraw, history[2].Outcome)
	assert.Equal(t, stats.OutcomeWin, history[3].Outcome)
	assert.Equal(t, "Raptors", history[3].Opponent)
}

func TestMatchHistoryLimitAndRange(t *testing.T) {
	engine := stats.New(historyStore())

	t.Run("limit keeps the most recent", func(t *testing.T) {
		history, err := engine.MatchHistory(roster.DateRange{}, 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "2025-09-15", history[0].Date)
		assert.Equal(t, "2025-09-08", history[1].Date)
	})

	t.Run("date range filters before limiting", func(t *testing.T) {
		history, err := engine.MatchHistory(roster.DateRange{Start: "2025-09-01", End: "2025-09-08"}, 0)
		require.NoError(t, err)
		assert.Len(t, history, 3)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		history, err := engine.MatchHistory(roster.DateRange{Start: "2030-01-01"}, 0)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
