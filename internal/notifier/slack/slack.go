package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dmorales2498/Entes-Stats/internal/metrics"
	"github.com/Dmorales2498/Entes-Stats/internal/notifier"
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	teamName  string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID, teamName string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		teamName:  teamName,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID, teamName string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		teamName:  teamName,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendResultNotification posts a recorded scoreline and the running record.
func (s *Notifier) SendResultNotification(match *roster.Match, summary stats.MatchSummary, record stats.TeamRecord, dryRun bool) error {
	msg := s.formatResultNotification(match, summary, record)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendLeaderboard posts a ranking to the team channel.
func (s *Notifier) SendLeaderboard(metric stats.Metric, entries []stats.RankingEntry, dryRun bool) error {
	msg := s.formatLeaderboard(metric, entries)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendTeamRecord posts the team's running W/D/L record.
func (s *Notifier) SendTeamRecord(record stats.TeamRecord, dryRun bool) error {
	msg := s.formatTeamRecord(record)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}
