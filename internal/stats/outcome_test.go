package stats_test

import (
	"testing"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		tracked  *int
		opponent *int
		want     stats.Outcome
	}{
		{"both nil is pending", nil, nil, stats.OutcomePending},
		{"tracked nil is pending", nil, intPtr(2), stats.OutcomePending},
		{"opponent nil is pending", intPtr(2), nil, stats.OutcomePending},
		{"more goals is a win", intPtr(3), intPtr(1), stats.OutcomeWin},
		{"equal goals is a draw", intPtr(2), intPtr(2), stats.OutcomeDraw},
		{"zero-zero is a draw", intPtr(0), intPtr(0), stats.OutcomeDraw},
		{"fewer goals is a loss", intPtr(0), intPtr(2), stats.OutcomeLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.Classify(tt.tracked, tt.opponent))
		})
	}
}

func TestResolveScoreline(t *testing.T) {
	t.Run("home match keeps orientation", func(t *testing.T) {
		m := roster.Match{IsHome: true, HomeScore: intPtr(3), AwayScore: intPtr(1)}
		tracked, opponent := stats.ResolveScoreline(m)
		assert.Equal(t, 3, *tracked)
		assert.Equal(t, 1, *opponent)
	})

	t.Run("away match swaps scores", func(t *testing.T) {
		m := roster.Match{IsHome: false, HomeScore: intPtr(2), AwayScore: intPtr(0)}
		tracked, opponent := stats.ResolveScoreline(m)
		assert.Equal(t, 0, *tracked)
		assert.Equal(t, 2, *opponent)
	})

	t.Run("no scoreline yields nils", func(t *testing.T) {
		tracked, opponent := stats.ResolveScoreline(roster.Match{IsHome: true})
		assert.Nil(t, tracked)
		assert.Nil(t, opponent)
	})

	t.Run("lone home score passes through for home match", func(t *testing.T) {
		m := roster.Match{IsHome: true, HomeScore: intPtr(1)}
		tracked, opponent := stats.ResolveScoreline(m)
		assert.Equal(t, 1, *tracked)
		assert.Nil(t, opponent)
		// Either side nil still classifies as pending.
		assert.Equal(t, stats.OutcomePending, stats.Classify(tracked, opponent))
	})

	t.Run("lone home score maps to opponent for away match", func(t *testing.T) {
		m := roster.Match{IsHome: false, HomeScore: intPtr(1)}
		tracked, opponent := stats.ResolveScoreline(m)
		assert.Nil(t, tracked)
		assert.Equal(t, 1, *opponent)
		assert.Equal(t, stats.OutcomePending, stats.Classify(tracked, opponent))
	})
}
