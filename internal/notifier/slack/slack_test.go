package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/Dmorales2498/Entes-Stats/internal/metrics"
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	postMessageCalls       int
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	m.postMessageCalls++
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return channelID, "12345.67890", nil
}

func intPtr(i int) *int { return &i }

func sampleMatch() (*roster.Match, stats.MatchSummary, stats.TeamRecord) {
	opponent := "Atletico Ríos"
	match := &roster.Match{
		ID:        1,
		Date:      "2026-03-14",
		Opponent:  &opponent,
		IsHome:    true,
		HomeScore: intPtr(3),
		AwayScore: intPtr(1),
	}
	summary := stats.MatchSummary{
		MatchID:       1,
		Date:          "2026-03-14",
		Opponent:      opponent,
		IsHome:        true,
		TrackedGoals:  intPtr(3),
		OpponentGoals: intPtr(1),
		Outcome:       stats.OutcomeWin,
	}
	record := stats.TeamRecord{
		Played: 1, Wins: 1,
		GoalsFor: 3, GoalsAgainst: 1, GoalDiff: 2,
		Points: 3,
	}
	return match, summary, record
}

func TestSendResultNotification(t *testing.T) {
	api := &mockSlackAPI{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C12345", "Entes FC", m)

	match, summary, record := sampleMatch()
	err := n.SendResultNotification(match, summary, record, false)
	require.NoError(t, err)

	assert.Equal(t, 1, api.postMessageCalls)
	assert.Equal(t, 1, m.SlackNotifSent())
	assert.Equal(t, 0, m.SlackNotifFailed())
}

func TestSendResultNotificationDryRun(t *testing.T) {
	api := &mockSlackAPI{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C12345", "Entes FC", m)

	match, summary, record := sampleMatch()
	err := n.SendResultNotification(match, summary, record, true)
	require.NoError(t, err)

	assert.Equal(t, 0, api.postMessageCalls, "dry run should not hit the Slack API")
	assert.Equal(t, 0, m.SlackNotifSent())
}

func TestSendResultNotificationFailure(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return "", "", errors.New("channel_not_found")
		},
	}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C12345", "Entes FC", m)

	match, summary, record := sampleMatch()
	err := n.SendResultNotification(match, summary, record, false)
	require.Error(t, err)

	assert.Equal(t, 1, m.SlackNotifFailed())
	assert.Equal(t, 0, m.SlackNotifSent())
}

func TestSendLeaderboard(t *testing.T) {
	api := &mockSlackAPI{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C12345", "Entes FC", m)

	entries := []stats.RankingEntry{
		{PlayerID: 2, PlayerName: "Leo", Value: 7},
		{PlayerID: 5, PlayerName: "Kun", Value: 4},
	}
	err := n.SendLeaderboard(stats.MetricGoals, entries, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.postMessageCalls)
	assert.Equal(t, 1, m.SlackNotifSent())
}

func TestSendLeaderboardEmpty(t *testing.T) {
	api := &mockSlackAPI{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C12345", "Entes FC", m)

	err := n.SendLeaderboard(stats.MetricAssists, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.postMessageCalls)
}

func TestSendTeamRecord(t *testing.T) {
	api := &mockSlackAPI{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C12345", "Entes FC", m)

	record := stats.TeamRecord{Played: 4, Wins: 2, Draws: 1, Losses: 1, GoalsFor: 8, GoalsAgainst: 5, GoalDiff: 3, Points: 7}
	err := n.SendTeamRecord(record, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.postMessageCalls)
	assert.Equal(t, 1, m.SlackNotifSent())
}

func TestFormatResultNotificationBlocks(t *testing.T) {
	n := NewNotifierWithAPI(&mockSlackAPI{}, "C12345", "Entes FC", metrics.NewMock())

	match, summary, record := sampleMatch()
	msg := n.formatResultNotification(match, summary, record)

	require.NotEmpty(t, msg.Blocks.BlockSet)
	header, ok := msg.Blocks.BlockSet[0].(*slack.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "won")
}
